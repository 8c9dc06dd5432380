// Package wire encodes and decodes the JSON envelopes exchanged with the
// Unity editor plugin. Frames are newline-delimited JSON objects; the
// command name is an opaque string, so legacy "GET_SCENE_INFO" commands
// and newer "manage_scene" commands travel identically.
package wire

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FrameDelim terminates every frame in both directions.
const FrameDelim = '\n'

// Command is the request envelope sent to the editor.
type Command struct {
	Type   string         `json:"type"`
	Params map[string]any `json:"params"`
}

// Encode serializes a command to its wire bytes, without the frame
// delimiter. Top-level params whose value is nil are dropped before
// transmission; keys listed in keepNull are sent as explicit null
// (some handlers distinguish "absent" from "null", e.g. a null console
// message count meaning "all").
func Encode(cmdType string, params map[string]any, keepNull ...string) ([]byte, error) {
	if cmdType == "" {
		return nil, fmt.Errorf("empty command type")
	}

	keep := make(map[string]bool, len(keepNull))
	for _, k := range keepNull {
		keep[k] = true
	}

	pruned := make(map[string]any, len(params))
	for k, v := range params {
		if v == nil && !keep[k] {
			continue
		}
		pruned[k] = v
	}

	data, err := json.Marshal(Command{Type: cmdType, Params: pruned})
	if err != nil {
		return nil, fmt.Errorf("serializing %s command: %w", cmdType, err)
	}
	return data, nil
}

// Decode parses one response frame. The envelope must be a JSON object;
// anything else is a protocol violation. A non-empty "error" field marks
// a remote failure, which is data rather than a transport error: callers
// read it from the Result.
func Decode(data []byte) (Result, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return Result{}, fmt.Errorf("%w: response is not a JSON object", ErrProtocol)
	}

	var fields map[string]any
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrProtocol, err)
	}

	res := Result{Fields: fields}
	if msg, ok := fields["error"].(string); ok && msg != "" {
		res.remoteErr = msg
	}
	return res, nil
}

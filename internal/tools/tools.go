// Package tools registers the MCP tool surface. Every tool is a thin
// wrapper over one or a few editor commands: normalize arguments, send,
// translate the outcome into text. Failures are always returned as tool
// results, never as Go errors to the MCP layer.
package tools

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/yujijaao116/unity-mcp-hy3d/internal/logging"
	"github.com/yujijaao116/unity-mcp-hy3d/internal/unity"
	"github.com/yujijaao116/unity-mcp-hy3d/internal/wire"
)

// sendFunc delivers one command to the editor. Tests substitute a stub.
type sendFunc func(cmdType string, params map[string]any, keepNull ...string) (wire.Result, error)

// Registry holds the shared dependencies of all tool handlers.
type Registry struct {
	send sendFunc
	log  *slog.Logger
}

// New builds a Registry that sends commands through the provider's
// connection.
func New(p *unity.Provider) *Registry {
	return &Registry{
		send: func(cmdType string, params map[string]any, keepNull ...string) (wire.Result, error) {
			conn, err := p.Get()
			if err != nil {
				return wire.Result{}, err
			}
			return conn.SendCommand(cmdType, params, keepNull...)
		},
		log: logging.WithComponent("tools"),
	}
}

// Register adds every tool and prompt to the server.
func (r *Registry) Register(s *server.MCPServer) {
	r.registerSceneTools(s)
	r.registerGameObjectTools(s)
	r.registerObjectTools(s)
	r.registerAssetTools(s)
	r.registerScriptTools(s)
	r.registerMaterialTools(s)
	r.registerEditorTools(s)
	r.registerManageTools(s)
	r.registerConsoleTools(s)
	r.registerMenuTools(s)
	registerPrompts(s)
}

// failure renders a failed operation the way every tool reports it:
// "Error <doing>: <cause>". Transport and remote failures read the same
// to the caller.
func failure(doing string, err error) *mcp.CallToolResult {
	return mcp.NewToolResultError(fmt.Sprintf("Error %s: %v", doing, err))
}

// remoteFailure is failure for errors the editor reported as data.
func remoteFailure(doing string, res wire.Result) *mcp.CallToolResult {
	return mcp.NewToolResultError(fmt.Sprintf("Error %s: %s", doing, res.RemoteErr()))
}

// jsonText renders a value as indented JSON tool output.
func jsonText(v any) *mcp.CallToolResult {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error rendering response: %v", err))
	}
	return mcp.NewToolResultText(string(data))
}

// Schema property shorthands. The MCP input schemas are plain JSON
// Schema objects; these keep the per-tool declarations readable.

func strParam(desc string) map[string]any {
	return map[string]any{"type": "string", "description": desc}
}

func numParam(desc string) map[string]any {
	return map[string]any{"type": "number", "description": desc}
}

func intParam(desc string) map[string]any {
	return map[string]any{"type": "integer", "description": desc}
}

func boolParam(desc string) map[string]any {
	return map[string]any{"type": "boolean", "description": desc}
}

func vecParam(desc string) map[string]any {
	return map[string]any{
		"type":        "array",
		"items":       map[string]any{"type": "number"},
		"description": desc,
	}
}

func arrParam(itemType, desc string) map[string]any {
	return map[string]any{
		"type":        "array",
		"items":       map[string]any{"type": itemType},
		"description": desc,
	}
}

func objParam(desc string) map[string]any {
	return map[string]any{"type": "object", "description": desc}
}

func schema(props map[string]any, required ...string) mcp.ToolInputSchema {
	return mcp.ToolInputSchema{Type: "object", Properties: props, Required: required}
}

// floatSlice coerces a JSON array argument into floats. Returns false
// when the value is present but not a numeric array.
func floatSlice(v any) ([]float64, bool) {
	items, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]float64, 0, len(items))
	for _, item := range items {
		f, ok := item.(float64)
		if !ok {
			return nil, false
		}
		out = append(out, f)
	}
	return out, true
}

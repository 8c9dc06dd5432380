package tools

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yujijaao116/unity-mcp-hy3d/internal/wire"
)

func TestBuildRejectsInvalidPlatform(t *testing.T) {
	r, calls := newTestRegistry(func(sentCall) (wire.Result, error) {
		return wire.OkResult(nil), nil
	})

	res, err := r.handleBuild(t.Context(), callReq(map[string]any{
		"platform":   "ps5",
		"build_path": filepath.Join(t.TempDir(), "game"),
	}))
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if !res.IsError {
		t.Fatal("IsError = false for invalid platform")
	}
	if got := textOf(t, res); !strings.Contains(got, "not a valid platform") {
		t.Fatalf("text = %q", got)
	}
	if len(*calls) != 0 {
		t.Fatal("EDITOR_CONTROL sent despite invalid platform")
	}
}

func TestBuildRejectsMissingDirectory(t *testing.T) {
	r, calls := newTestRegistry(func(sentCall) (wire.Result, error) {
		return wire.OkResult(nil), nil
	})

	missing := filepath.Join(t.TempDir(), "no-such-dir", "game")
	res, err := r.handleBuild(t.Context(), callReq(map[string]any{
		"platform":   "linux",
		"build_path": missing,
	}))
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if got := textOf(t, res); !strings.Contains(got, "does not exist") {
		t.Fatalf("text = %q", got)
	}
	if len(*calls) != 0 {
		t.Fatal("EDITOR_CONTROL sent despite missing build directory")
	}
}

func TestBuildSendsNestedParams(t *testing.T) {
	r, calls := newTestRegistry(func(c sentCall) (wire.Result, error) {
		return wire.OkResult(map[string]any{"message": "Build completed successfully"}), nil
	})

	buildPath := filepath.Join(t.TempDir(), "game")
	res, err := r.handleBuild(t.Context(), callReq(map[string]any{
		"platform":   "Linux",
		"build_path": buildPath,
	}))
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if got := textOf(t, res); got != "Build completed successfully" {
		t.Fatalf("text = %q", got)
	}

	c := (*calls)[0]
	if c.cmdType != "EDITOR_CONTROL" {
		t.Fatalf("command = %q, want EDITOR_CONTROL", c.cmdType)
	}
	if got := c.params["command"]; got != "BUILD" {
		t.Fatalf("command param = %v, want BUILD", got)
	}
	nested, ok := c.params["params"].(map[string]any)
	if !ok {
		t.Fatalf("params = %v, want nested object", c.params["params"])
	}
	if nested["platform"] != "linux" {
		t.Fatalf("platform = %v, want lowercased linux", nested["platform"])
	}
	if nested["buildPath"] != buildPath {
		t.Fatalf("buildPath = %v, want %v", nested["buildPath"], buildPath)
	}
}

func TestExecuteCommandSuggestsSimilar(t *testing.T) {
	r, _ := newTestRegistry(func(c sentCall) (wire.Result, error) {
		if c.params["command"] == "GET_AVAILABLE_COMMANDS" {
			return wire.OkResult(map[string]any{
				"commands": []any{"Edit/Preferences", "Edit/Project Settings"},
			}), nil
		}
		return wire.Result{}, fmt.Errorf("unexpected command %v", c.params["command"])
	})

	res, err := r.handleExecuteCommand(t.Context(), callReq(map[string]any{
		"command_name": "Preferences",
	}))
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	got := textOf(t, res)
	if !strings.Contains(got, "Command 'Preferences' not found.") {
		t.Fatalf("text = %q", got)
	}
	if !strings.Contains(got, "Edit/Preferences") {
		t.Fatalf("text = %q, want a suggestion for Edit/Preferences", got)
	}
}

func TestExecuteCommandSkipsValidation(t *testing.T) {
	r, calls := newTestRegistry(func(c sentCall) (wire.Result, error) {
		return wire.OkResult(map[string]any{"message": "Done"}), nil
	})

	res, err := r.handleExecuteCommand(t.Context(), callReq(map[string]any{
		"command_name":     "Custom/DoThing",
		"validate_command": false,
	}))
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if got := textOf(t, res); got != "Done" {
		t.Fatalf("text = %q", got)
	}
	if len(*calls) != 1 {
		t.Fatalf("call count = %d, want 1 (no validation round trip)", len(*calls))
	}
	nested, _ := (*calls)[0].params["params"].(map[string]any)
	if nested["commandName"] != "Custom/DoThing" {
		t.Fatalf("commandName = %v", nested["commandName"])
	}
}

func TestPlayPassesThroughMessage(t *testing.T) {
	r, calls := newTestRegistry(func(sentCall) (wire.Result, error) {
		return wire.OkResult(map[string]any{}), nil
	})

	got := r.editorControl("PLAY", nil, "Entered play mode", "entering play mode")
	if text := textOf(t, got); text != "Entered play mode" {
		t.Fatalf("text = %q, want fallback message", text)
	}
	if (*calls)[0].params["command"] != "PLAY" {
		t.Fatalf("command = %v, want PLAY", (*calls)[0].params["command"])
	}
}

package tools

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// validBuildPlatforms the editor plugin knows how to target.
var validBuildPlatforms = []string{"windows", "mac", "linux", "android", "ios", "webgl"}

func (r *Registry) registerEditorTools(s *server.MCPServer) {
	type editorAction struct {
		name, desc, command, fallback, doing string
	}
	for _, a := range []editorAction{
		{"undo", "Undo the last action performed in the Unity editor.", "UNDO", "Undo performed successfully", "performing undo"},
		{"redo", "Redo the last undone action in the Unity editor.", "REDO", "Redo performed successfully", "performing redo"},
		{"play", "Start the game in play mode within the Unity editor.", "PLAY", "Entered play mode", "entering play mode"},
		{"pause", "Pause the game while in play mode.", "PAUSE", "Game paused", "pausing game"},
		{"stop", "Stop the game and exit play mode.", "STOP", "Exited play mode", "stopping game"},
	} {
		a := a
		s.AddTool(mcp.Tool{
			Name:        a.name,
			Description: a.desc,
			InputSchema: schema(map[string]any{}),
		}, func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return r.editorControl(a.command, nil, a.fallback, a.doing), nil
		})
	}

	s.AddTool(mcp.Tool{
		Name:        "build",
		Description: "Build the project for a specified platform.",
		InputSchema: schema(map[string]any{
			"platform":   strParam("Target platform (windows, mac, linux, android, ios, webgl)."),
			"build_path": strParam("Path where the build should be saved."),
		}, "platform", "build_path"),
	}, r.handleBuild)

	s.AddTool(mcp.Tool{
		Name:        "execute_command",
		Description: "Execute a specific editor command or custom script within the Unity editor.",
		InputSchema: schema(map[string]any{
			"command_name":     strParam(`Name of the editor command to execute (e.g., "Edit/Preferences").`),
			"validate_command": boolParam("Validate the command exists before executing (default: true)."),
		}, "command_name"),
	}, r.handleExecuteCommand)
}

// editorControl sends one EDITOR_CONTROL command and renders the outcome.
func (r *Registry) editorControl(command string, params map[string]any, fallback, doing string) *mcp.CallToolResult {
	payload := map[string]any{"command": command}
	if params != nil {
		payload["params"] = params
	}
	res, err := r.send("EDITOR_CONTROL", payload)
	if err != nil {
		return failure(doing, err)
	}
	if !res.Ok() {
		return remoteFailure(doing, res)
	}
	return mcp.NewToolResultText(res.Message(fallback))
}

func (r *Registry) handleBuild(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	platform, err := request.RequireString("platform")
	if err != nil {
		return failure("building project", err), nil
	}
	buildPath, err := request.RequireString("build_path")
	if err != nil {
		return failure("building project", err), nil
	}

	valid := false
	for _, p := range validBuildPlatforms {
		if strings.EqualFold(platform, p) {
			valid = true
			break
		}
	}
	if !valid {
		return mcp.NewToolResultError(fmt.Sprintf("Error: '%s' is not a valid platform. Valid platforms are: %s",
			platform, strings.Join(validBuildPlatforms, ", "))), nil
	}

	buildDir := filepath.Dir(buildPath)
	if _, err := os.Stat(buildDir); os.IsNotExist(err) {
		return mcp.NewToolResultError(fmt.Sprintf("Error: Build directory '%s' does not exist. Please create it first.", buildDir)), nil
	}
	if !pathWritable(buildDir) {
		return mcp.NewToolResultError(fmt.Sprintf("Error: Build directory '%s' is not writable.", buildDir)), nil
	}
	if info, err := os.Stat(buildPath); err == nil {
		kind := "file"
		if info.IsDir() {
			kind = "directory"
		}
		if !pathWritable(buildPath) {
			return mcp.NewToolResultError(fmt.Sprintf("Error: Existing build %s '%s' is not writable.", kind, buildPath)), nil
		}
	}

	return r.editorControl("BUILD", map[string]any{
		"platform":  strings.ToLower(platform),
		"buildPath": buildPath,
	}, "Build completed successfully", "building project"), nil
}

func (r *Registry) handleExecuteCommand(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	commandName, err := request.RequireString("command_name")
	if err != nil {
		return failure("executing command", err), nil
	}

	if request.GetBool("validate_command", true) {
		res, err := r.send("EDITOR_CONTROL", map[string]any{"command": "GET_AVAILABLE_COMMANDS"})
		if err != nil {
			return failure("executing command", err), nil
		}
		available := make([]string, 0)
		for _, item := range res.List("commands") {
			if s, ok := item.(string); ok {
				available = append(available, s)
			}
		}
		if len(available) > 0 && !contains(available, commandName) {
			return mcp.NewToolResultError(fmt.Sprintf("Error: Command '%s' not found.%s",
				commandName, suggestCommands(available, commandName))), nil
		}
	}

	return r.editorControl("EXECUTE_COMMAND", map[string]any{
		"commandName": commandName,
	}, fmt.Sprintf("Executed command: %s", commandName), "executing command"), nil
}

func contains(items []string, want string) bool {
	for _, item := range items {
		if item == want {
			return true
		}
	}
	return false
}

// suggestCommands builds a "Did you mean" hint from case-insensitive
// substring matches, capped at five suggestions.
func suggestCommands(available []string, name string) string {
	var similar []string
	lower := strings.ToLower(name)
	for _, cmd := range available {
		if strings.Contains(strings.ToLower(cmd), lower) {
			similar = append(similar, cmd)
		}
	}
	if len(similar) == 0 {
		return ""
	}
	if len(similar) > 5 {
		return fmt.Sprintf(" Did you mean one of these: %s or others?", strings.Join(similar[:5], ", "))
	}
	return fmt.Sprintf(" Did you mean one of these: %s?", strings.Join(similar, ", "))
}

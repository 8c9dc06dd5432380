package tools

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func (r *Registry) registerScriptTools(s *server.MCPServer) {
	s.AddTool(mcp.Tool{
		Name:        "view_script",
		Description: "View the contents of a Unity script file.",
		InputSchema: schema(map[string]any{
			"script_path": strParam("Path to the script file relative to the Assets folder."),
		}, "script_path"),
	}, r.handleViewScript)

	s.AddTool(mcp.Tool{
		Name:        "create_script",
		Description: "Create a new Unity script file.",
		InputSchema: schema(map[string]any{
			"script_name": strParam("Name of the script (without .cs extension)."),
			"script_type": strParam("Type of script (default: MonoBehaviour)."),
			"namespace":   strParam("Optional namespace for the script."),
			"template":    strParam("Optional custom template to use."),
		}, "script_name"),
	}, r.handleCreateScript)

	s.AddTool(mcp.Tool{
		Name:        "update_script",
		Description: "Update the contents of an existing Unity script.",
		InputSchema: schema(map[string]any{
			"script_path": strParam("Path to the script file relative to the Assets folder."),
			"content":     strParam("New content for the script."),
		}, "script_path", "content"),
	}, r.handleUpdateScript)

	s.AddTool(mcp.Tool{
		Name:        "list_scripts",
		Description: "List all script files in a specified folder.",
		InputSchema: schema(map[string]any{
			"folder_path": strParam("Path to the folder to search (default: Assets)."),
		}),
	}, r.handleListScripts)

	s.AddTool(mcp.Tool{
		Name:        "attach_script",
		Description: "Attach a script component to a GameObject.",
		InputSchema: schema(map[string]any{
			"object_name": strParam("Name of the target GameObject in the scene."),
			"script_name": strParam("Name of the script to attach, with or without the .cs extension."),
		}, "object_name", "script_name"),
	}, r.handleAttachScript)
}

func (r *Registry) handleViewScript(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	scriptPath, err := request.RequireString("script_path")
	if err != nil {
		return failure("viewing script", err), nil
	}

	res, err := r.send("VIEW_SCRIPT", map[string]any{"script_path": scriptPath})
	if err != nil {
		return failure("viewing script", err), nil
	}
	if !res.Ok() {
		return remoteFailure("viewing script", res), nil
	}
	return mcp.NewToolResultText(res.StringField("content", "Script not found")), nil
}

func (r *Registry) handleCreateScript(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	scriptName, err := request.RequireString("script_name")
	if err != nil {
		return failure("creating script", err), nil
	}
	args := request.GetArguments()

	res, err := r.send("CREATE_SCRIPT", map[string]any{
		"script_name": scriptName,
		"script_type": request.GetString("script_type", "MonoBehaviour"),
		"namespace":   args["namespace"],
		"template":    args["template"],
	})
	if err != nil {
		return failure("creating script", err), nil
	}
	if !res.Ok() {
		return remoteFailure("creating script", res), nil
	}
	return mcp.NewToolResultText(res.Message("Script created successfully")), nil
}

func (r *Registry) handleUpdateScript(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	scriptPath, err := request.RequireString("script_path")
	if err != nil {
		return failure("updating script", err), nil
	}
	content, err := request.RequireString("content")
	if err != nil {
		return failure("updating script", err), nil
	}

	res, err := r.send("UPDATE_SCRIPT", map[string]any{
		"script_path": scriptPath,
		"content":     content,
	})
	if err != nil {
		return failure("updating script", err), nil
	}
	if !res.Ok() {
		return remoteFailure("updating script", res), nil
	}
	return mcp.NewToolResultText(res.Message("Script updated successfully")), nil
}

func (r *Registry) handleListScripts(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	res, err := r.send("LIST_SCRIPTS", map[string]any{
		"folder_path": request.GetString("folder_path", "Assets"),
	})
	if err != nil {
		return failure("listing scripts", err), nil
	}
	if !res.Ok() {
		return remoteFailure("listing scripts", res), nil
	}

	items := res.List("scripts")
	if len(items) == 0 {
		return mcp.NewToolResultText("No scripts found in the specified folder"), nil
	}
	scripts := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			scripts = append(scripts, s)
		}
	}
	return mcp.NewToolResultText(strings.Join(scripts, "\n")), nil
}

func (r *Registry) handleAttachScript(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	objectName, err := request.RequireString("object_name")
	if err != nil {
		return failure("attaching script", err), nil
	}
	scriptName, err := request.RequireString("script_name")
	if err != nil {
		return failure("attaching script", err), nil
	}

	res, err := r.send("ATTACH_SCRIPT", map[string]any{
		"object_name": objectName,
		"script_name": scriptName,
	})
	if err != nil {
		return failure("attaching script", err), nil
	}
	if !res.Ok() {
		return remoteFailure("attaching script", res), nil
	}
	return mcp.NewToolResultText(res.Message("Script attached successfully")), nil
}

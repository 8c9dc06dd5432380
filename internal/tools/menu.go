package tools

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func (r *Registry) registerMenuTools(s *server.MCPServer) {
	s.AddTool(mcp.Tool{
		Name:        "execute_menu_item",
		Description: `Executes a Unity Editor menu item via its path (e.g., "File/Save Project").`,
		InputSchema: schema(map[string]any{
			"menu_path":  strParam("The full path of the menu item to execute."),
			"action":     strParam("The operation to perform (default: 'execute')."),
			"parameters": objParam("Optional parameters for the menu item (rarely used)."),
		}, "menu_path"),
	}, r.handleExecuteMenuItem)
}

func (r *Registry) handleExecuteMenuItem(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	menuPath, err := request.RequireString("menu_path")
	if err != nil {
		return failure("executing menu item", err), nil
	}

	parameters := request.GetArguments()["parameters"]
	if parameters == nil {
		parameters = map[string]any{}
	}

	return r.manage("executing menu item", "execute_menu_item", map[string]any{
		"action":     strings.ToLower(request.GetString("action", "execute")),
		"menuPath":   menuPath,
		"parameters": parameters,
	}, "Menu item executed successfully.", "An unknown error occurred executing the menu item."), nil
}

package tools

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func (r *Registry) registerConsoleTools(s *server.MCPServer) {
	s.AddTool(mcp.Tool{
		Name:        "read_console",
		Description: "Gets messages from or clears the Unity Editor console.",
		InputSchema: schema(map[string]any{
			"action":             strParam("Operation ('get' or 'clear', default: 'get')."),
			"types":              arrParam("string", "Message types to get ('error', 'warning', 'log', 'all')."),
			"count":              intParam("Max messages to return (omit for all matching)."),
			"filter_text":        strParam("Text filter for messages."),
			"since_timestamp":    strParam("Get messages after this ISO 8601 timestamp."),
			"format":             strParam("Output format ('plain', 'detailed', 'json'; default: 'detailed')."),
			"include_stacktrace": boolParam("Include stack traces in detailed/json formats (default: true)."),
		}),
	}, r.handleReadConsole)
}

func (r *Registry) handleReadConsole(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	types := args["types"]
	if types == nil {
		types = []string{"error", "warning", "log"}
	}

	// The console handler distinguishes a null count ("return all
	// matching messages") from an absent one, so count always goes on
	// the wire.
	params := map[string]any{
		"action":            strings.ToLower(request.GetString("action", "get")),
		"types":             types,
		"count":             args["count"],
		"filterText":        args["filter_text"],
		"sinceTimestamp":    args["since_timestamp"],
		"format":            strings.ToLower(request.GetString("format", "detailed")),
		"includeStacktrace": request.GetBool("include_stacktrace", true),
	}

	return r.manage("reading console", "read_console", params,
		"Console operation successful.", "An unknown error occurred reading the console.", "count"), nil
}

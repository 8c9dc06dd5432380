package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func (r *Registry) registerMaterialTools(s *server.MCPServer) {
	s.AddTool(mcp.Tool{
		Name:        "set_material",
		Description: "Apply or create a material for a game object.",
		InputSchema: schema(map[string]any{
			"object_name":   strParam("Target game object."),
			"material_name": strParam("Optional material name."),
			"color":         vecParam("Optional [R, G, B] or [R, G, B, A] values in the 0.0-1.0 range."),
		}, "object_name"),
	}, r.handleSetMaterial)
}

func (r *Registry) handleSetMaterial(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	objectName, err := request.RequireString("object_name")
	if err != nil {
		return failure("setting material", err), nil
	}
	args := request.GetArguments()

	params := map[string]any{"object_name": objectName}
	if name := request.GetString("material_name", ""); name != "" {
		params["material_name"] = name
	}
	if raw, ok := args["color"]; ok {
		color, ok := floatSlice(raw)
		if !ok {
			return mcp.NewToolResultError("Error setting material: color components must be numbers"), nil
		}
		if len(color) != 3 && len(color) != 4 {
			return mcp.NewToolResultError(fmt.Sprintf("Error setting material: color must have 3 or 4 components, got %d", len(color))), nil
		}
		for _, ch := range color {
			if ch < 0 || ch > 1 {
				return mcp.NewToolResultError(fmt.Sprintf("Error setting material: color component %v out of range [0, 1]", ch)), nil
			}
		}
		params["color"] = color
	}

	res, err := r.send("SET_MATERIAL", params)
	if err != nil {
		return failure("setting material", err), nil
	}
	if !res.Ok() {
		return remoteFailure("setting material", res), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Applied material to %s: %s", objectName, res.StringField("material_name", "unknown"))), nil
}

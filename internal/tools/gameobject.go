package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func (r *Registry) registerGameObjectTools(s *server.MCPServer) {
	s.AddTool(mcp.Tool{
		Name:        "create_object",
		Description: "Create a game object in the Unity scene (CUBE, SPHERE, CYLINDER, CAPSULE, PLANE, EMPTY, CAMERA, LIGHT).",
		InputSchema: schema(map[string]any{
			"type":              strParam("Object type (default: CUBE)."),
			"name":              strParam("Optional name for the game object."),
			"location":          vecParam("[x, y, z] position (defaults to [0, 0, 0])."),
			"rotation":          vecParam("[x, y, z] rotation in degrees (defaults to [0, 0, 0])."),
			"scale":             vecParam("[x, y, z] scale factors (defaults to [1, 1, 1])."),
			"replace_if_exists": boolParam("Replace an existing object with the same name (default: false)."),
		}),
	}, r.handleCreateObject)

	s.AddTool(mcp.Tool{
		Name:        "modify_object",
		Description: "Modify a game object's transform, visibility, parent, components, or properties.",
		InputSchema: schema(map[string]any{
			"name":             strParam("Name of the game object to modify."),
			"location":         vecParam("Optional [x, y, z] position."),
			"rotation":         vecParam("Optional [x, y, z] rotation in degrees."),
			"scale":            vecParam("Optional [x, y, z] scale factors."),
			"visible":          boolParam("Optional visibility toggle."),
			"set_parent":       strParam("Optional name of the parent object to set."),
			"add_component":    strParam(`Optional component type to add (e.g., "Rigidbody").`),
			"remove_component": strParam("Optional component type to remove."),
			"set_property":     objParam("Optional {component, property, value} to set."),
		}, "name"),
	}, r.handleModifyObject)

	s.AddTool(mcp.Tool{
		Name:        "delete_object",
		Description: "Remove a game object from the scene.",
		InputSchema: schema(map[string]any{
			"name":           strParam("Name of the game object to delete."),
			"ignore_missing": boolParam("Silently ignore a missing object (default: false)."),
		}, "name"),
	}, r.handleDeleteObject)
}

// objectExists asks the editor whether any object matches the name.
func (r *Registry) objectExists(name string) (bool, error) {
	res, err := r.send("FIND_OBJECTS_BY_NAME", map[string]any{"name": name})
	if err != nil {
		return false, err
	}
	return len(res.List("objects")) > 0, nil
}

// hasComponent reports whether the named component type is attached.
func (r *Registry) hasComponent(objectName, componentType string) (bool, error) {
	res, err := r.send("GET_OBJECT_PROPERTIES", map[string]any{"name": objectName})
	if err != nil {
		return false, err
	}
	for _, item := range res.List("components") {
		comp, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if comp["type"] == componentType {
			return true, nil
		}
	}
	return false, nil
}

func (r *Registry) handleCreateObject(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	objType := strings.ToUpper(request.GetString("type", "CUBE"))
	name := request.GetString("name", "")
	args := request.GetArguments()

	if name != "" {
		exists, err := r.objectExists(name)
		if err != nil {
			return failure("creating game object", err), nil
		}
		if exists {
			if !request.GetBool("replace_if_exists", false) {
				return mcp.NewToolResultText(fmt.Sprintf("Object with name '%s' already exists. Use replace_if_exists=true to replace it.", name)), nil
			}
			if _, err := r.send("DELETE_OBJECT", map[string]any{"name": name}); err != nil {
				return failure("creating game object", err), nil
			}
		}
	}

	params := map[string]any{
		"type":     objType,
		"location": defaultVec(args["location"], []float64{0, 0, 0}),
		"rotation": defaultVec(args["rotation"], []float64{0, 0, 0}),
		"scale":    defaultVec(args["scale"], []float64{1, 1, 1}),
	}
	if name != "" {
		params["name"] = name
	}

	res, err := r.send("CREATE_OBJECT", params)
	if err != nil {
		return failure("creating game object", err), nil
	}
	if !res.Ok() {
		return remoteFailure("creating game object", res), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Created %s game object: %s", objType, res.StringField("name", name))), nil
}

// defaultVec passes a provided vector through, falling back when absent.
func defaultVec(v any, fallback []float64) any {
	if v == nil {
		return fallback
	}
	return v
}

func (r *Registry) handleModifyObject(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return failure("modifying game object", err), nil
	}
	args := request.GetArguments()

	exists, err := r.objectExists(name)
	if err != nil {
		return failure("modifying game object", err), nil
	}
	if !exists {
		return mcp.NewToolResultText(fmt.Sprintf("Object with name '%s' not found in the scene.", name)), nil
	}

	if parent, ok := args["set_parent"].(string); ok {
		parentExists, err := r.objectExists(parent)
		if err != nil {
			return failure("modifying game object", err), nil
		}
		if !parentExists {
			return mcp.NewToolResultText(fmt.Sprintf("Parent object '%s' not found in the scene.", parent)), nil
		}
	}

	if comp, ok := args["add_component"].(string); ok {
		attached, err := r.hasComponent(name, comp)
		if err != nil {
			return failure("modifying game object", err), nil
		}
		if attached {
			return mcp.NewToolResultText(fmt.Sprintf("Component '%s' is already attached to '%s'.", comp, name)), nil
		}
	}

	if comp, ok := args["remove_component"].(string); ok {
		attached, err := r.hasComponent(name, comp)
		if err != nil {
			return failure("modifying game object", err), nil
		}
		if !attached {
			return mcp.NewToolResultText(fmt.Sprintf("Component '%s' is not attached to '%s'.", comp, name)), nil
		}
	}

	params := map[string]any{"name": name}
	for _, key := range []string{"location", "rotation", "scale", "visible", "set_parent", "add_component", "remove_component", "set_property"} {
		if v, ok := args[key]; ok {
			params[key] = v
		}
	}

	res, err := r.send("MODIFY_OBJECT", params)
	if err != nil {
		return failure("modifying game object", err), nil
	}
	if !res.Ok() {
		return remoteFailure("modifying game object", res), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Modified game object: %s", res.StringField("name", name))), nil
}

func (r *Registry) handleDeleteObject(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return failure("deleting game object", err), nil
	}

	exists, err := r.objectExists(name)
	if err != nil {
		return failure("deleting game object", err), nil
	}
	if !exists {
		if request.GetBool("ignore_missing", false) {
			return mcp.NewToolResultText(fmt.Sprintf("No object named '%s' found to delete. Ignoring.", name)), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("Error: Object '%s' not found in the scene.", name)), nil
	}

	if _, err := r.send("DELETE_OBJECT", map[string]any{"name": name}); err != nil {
		return failure("deleting game object", err), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Deleted game object: %s", name)), nil
}

package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func (r *Registry) registerObjectTools(s *server.MCPServer) {
	s.AddTool(mcp.Tool{
		Name:        "get_object_properties",
		Description: "Get all properties of a specified game object, including its components and their values.",
		InputSchema: schema(map[string]any{
			"name": strParam("Name of the game object to inspect."),
		}, "name"),
	}, r.handleGetObjectProperties)

	s.AddTool(mcp.Tool{
		Name:        "get_component_properties",
		Description: "Get properties of a specific component on a game object.",
		InputSchema: schema(map[string]any{
			"object_name":    strParam("Name of the game object."),
			"component_type": strParam("Type of the component to inspect."),
		}, "object_name", "component_type"),
	}, r.handleGetComponentProperties)

	s.AddTool(mcp.Tool{
		Name:        "find_objects_by_name",
		Description: "Find game objects in the scene by name (partial matches are supported).",
		InputSchema: schema(map[string]any{
			"name": strParam("Name to search for."),
		}, "name"),
	}, r.handleFindObjectsByName)

	s.AddTool(mcp.Tool{
		Name:        "find_objects_by_tag",
		Description: "Find game objects in the scene by tag.",
		InputSchema: schema(map[string]any{
			"tag": strParam("Tag to search for."),
		}, "tag"),
	}, r.handleFindObjectsByTag)

	s.AddTool(mcp.Tool{
		Name:        "get_hierarchy",
		Description: "Get the current hierarchy of game objects in the scene as a tree structure.",
		InputSchema: schema(map[string]any{}),
	}, r.handleGetHierarchy)

	s.AddTool(mcp.Tool{
		Name:        "select_object",
		Description: "Select a game object in the Unity Editor.",
		InputSchema: schema(map[string]any{
			"name": strParam("Name of the object to select."),
		}, "name"),
	}, r.handleSelectObject)

	s.AddTool(mcp.Tool{
		Name:        "get_selected_object",
		Description: "Get the currently selected game object in the Unity Editor.",
		InputSchema: schema(map[string]any{}),
	}, r.handleGetSelectedObject)

	s.AddTool(mcp.Tool{
		Name:        "execute_context_menu_item",
		Description: "Execute a [ContextMenu] method on a component of a given game object.",
		InputSchema: schema(map[string]any{
			"object_name":       strParam("Name of the game object."),
			"component":         strParam("Name of the component type."),
			"context_menu_item": strParam("Name of the context menu item to execute."),
		}, "object_name", "component", "context_menu_item"),
	}, r.handleExecuteContextMenuItem)
}

func (r *Registry) handleGetObjectProperties(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return failure("getting object properties", err), nil
	}

	res, err := r.send("GET_OBJECT_PROPERTIES", map[string]any{"name": name})
	if err != nil {
		return failure("getting object properties", err), nil
	}
	if !res.Ok() {
		return remoteFailure("getting object properties", res), nil
	}
	return jsonText(res.Fields), nil
}

func (r *Registry) handleGetComponentProperties(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	objectName, err := request.RequireString("object_name")
	if err != nil {
		return failure("getting component properties", err), nil
	}
	componentType, err := request.RequireString("component_type")
	if err != nil {
		return failure("getting component properties", err), nil
	}

	res, err := r.send("GET_COMPONENT_PROPERTIES", map[string]any{
		"object_name":    objectName,
		"component_type": componentType,
	})
	if err != nil {
		return failure("getting component properties", err), nil
	}
	if !res.Ok() {
		return remoteFailure("getting component properties", res), nil
	}
	return jsonText(res.Fields), nil
}

func (r *Registry) handleFindObjectsByName(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return failure("finding objects", err), nil
	}

	res, err := r.send("FIND_OBJECTS_BY_NAME", map[string]any{"name": name})
	if err != nil {
		return failure("finding objects", err), nil
	}
	if !res.Ok() {
		return remoteFailure("finding objects", res), nil
	}
	objects := res.List("objects")
	if objects == nil {
		objects = []any{}
	}
	return jsonText(objects), nil
}

func (r *Registry) handleFindObjectsByTag(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tag, err := request.RequireString("tag")
	if err != nil {
		return failure("finding objects", err), nil
	}

	res, err := r.send("FIND_OBJECTS_BY_TAG", map[string]any{"tag": tag})
	if err != nil {
		return failure("finding objects", err), nil
	}
	if !res.Ok() {
		return remoteFailure("finding objects", res), nil
	}
	objects := res.List("objects")
	if objects == nil {
		objects = []any{}
	}
	return jsonText(objects), nil
}

func (r *Registry) handleGetHierarchy(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	res, err := r.send("GET_HIERARCHY", nil)
	if err != nil {
		return failure("getting hierarchy", err), nil
	}
	if !res.Ok() {
		return remoteFailure("getting hierarchy", res), nil
	}
	return jsonText(res.Fields), nil
}

func (r *Registry) handleSelectObject(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return failure("selecting object", err), nil
	}

	res, err := r.send("SELECT_OBJECT", map[string]any{"name": name})
	if err != nil {
		return failure("selecting object", err), nil
	}
	if !res.Ok() {
		return remoteFailure("selecting object", res), nil
	}
	return jsonText(res.Fields), nil
}

func (r *Registry) handleGetSelectedObject(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	res, err := r.send("GET_SELECTED_OBJECT", nil)
	if err != nil {
		return failure("getting selected object", err), nil
	}
	if !res.Ok() {
		return remoteFailure("getting selected object", res), nil
	}
	selected := res.Fields["selected"]
	if selected == nil {
		return mcp.NewToolResultText("No object is currently selected."), nil
	}
	return jsonText(selected), nil
}

func (r *Registry) handleExecuteContextMenuItem(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	objectName, err := request.RequireString("object_name")
	if err != nil {
		return failure("executing context menu item", err), nil
	}
	component, err := request.RequireString("component")
	if err != nil {
		return failure("executing context menu item", err), nil
	}
	menuItem, err := request.RequireString("context_menu_item")
	if err != nil {
		return failure("executing context menu item", err), nil
	}

	exists, err := r.objectExists(objectName)
	if err != nil {
		return failure("executing context menu item", err), nil
	}
	if !exists {
		return mcp.NewToolResultText(fmt.Sprintf("Object with name '%s' not found in the scene.", objectName)), nil
	}

	attached, err := r.hasComponent(objectName, component)
	if err != nil {
		return failure("executing context menu item", err), nil
	}
	if !attached {
		return mcp.NewToolResultText(fmt.Sprintf("Component '%s' is not attached to object '%s'.", component, objectName)), nil
	}

	res, err := r.send("EXECUTE_CONTEXT_MENU_ITEM", map[string]any{
		"object_name":       objectName,
		"component":         component,
		"context_menu_item": menuItem,
	})
	if err != nil {
		return failure("executing context menu item", err), nil
	}
	if !res.Ok() {
		return remoteFailure("executing context menu item", res), nil
	}
	return jsonText(res.Fields), nil
}

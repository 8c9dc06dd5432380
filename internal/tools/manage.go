package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// manage sends one manage-family command and renders the uniform
// {success, message, data} envelope those tools return. Transport
// failures and remote failures both come back as success=false rather
// than tool errors.
func (r *Registry) manage(doing, cmdType string, params map[string]any, okMsg, failMsg string, keepNull ...string) *mcp.CallToolResult {
	res, err := r.send(cmdType, params, keepNull...)
	if err != nil {
		r.log.Warn("manage command failed", "command", cmdType, "err", err)
		return jsonText(map[string]any{
			"success": false,
			"message": fmt.Sprintf("Error %s: %v", doing, err),
		})
	}
	if !res.Ok() {
		return jsonText(map[string]any{
			"success": false,
			"message": res.StringField("error", failMsg),
		})
	}
	return jsonText(map[string]any{
		"success": true,
		"message": res.Message(okMsg),
		"data":    res.Data(),
	})
}

func (r *Registry) registerManageTools(s *server.MCPServer) {
	s.AddTool(mcp.Tool{
		Name:        "manage_scene",
		Description: "Manages Unity scenes: load, save, create, get hierarchy, and related operations.",
		InputSchema: schema(map[string]any{
			"action":      strParam("Operation (e.g., 'load', 'save', 'create', 'get_hierarchy')."),
			"name":        strParam("Scene name (no extension) for create/load/save."),
			"path":        strParam(`Asset path for scene operations (default: "Assets/").`),
			"build_index": intParam("Build index for load/build settings actions."),
		}, "action"),
	}, r.handleManageScene)

	s.AddTool(mcp.Tool{
		Name:        "manage_gameobject",
		Description: "Manages GameObjects: create, modify, delete, find, and component operations.",
		InputSchema: schema(map[string]any{
			"action":               strParam("Operation (e.g., 'create', 'modify', 'find', 'add_component')."),
			"target":               strParam("GameObject identifier (name, path, or instance ID) for modify/delete/component actions."),
			"search_method":        strParam("How to find objects ('by_name', 'by_id', 'by_path', 'by_tag', 'by_layer', 'by_component')."),
			"name":                 strParam("GameObject name, required for 'create'."),
			"tag":                  strParam("Tag to assign during creation."),
			"parent":               strParam("Name or ID of the parent."),
			"position":             vecParam("[x, y, z] position."),
			"rotation":             vecParam("[x, y, z] Euler angles."),
			"scale":                vecParam("[x, y, z] scale."),
			"components_to_add":    arrParam("string", "Component names to add, or objects with properties."),
			"primitive_type":       strParam("Create a primitive (Cube, Sphere, etc.) instead of an empty object."),
			"save_as_prefab":       boolParam("Save the created object as a prefab (default: false)."),
			"prefab_path":          strParam(`Full path to save the prefab (e.g., "Assets/Prefabs/MyObject.prefab"). Overrides prefab_folder.`),
			"prefab_folder":        strParam(`Default folder when prefab_path is not set (default: "Assets/Prefabs").`),
			"new_name":             strParam("New name for 'modify'."),
			"new_parent":           strParam("New parent name or ID for 'modify'."),
			"set_active":           boolParam("Active state for 'modify'."),
			"new_tag":              strParam("New tag for 'modify'."),
			"new_layer":            strParam("New layer name or number for 'modify'."),
			"components_to_remove": arrParam("string", "Component types to remove."),
			"component_properties": objParam(`Properties per component: { "ComponentName": { "propName": value } }.`),
			"search_term":          strParam("Search term used with search_method."),
			"find_all":             boolParam("Find all matches instead of just the first (default: false)."),
			"search_in_children":   boolParam("Limit the search scope to children (default: false)."),
			"search_inactive":      boolParam("Include inactive GameObjects (default: false)."),
			"component_name":       strParam("Target component for component actions."),
		}, "action"),
	}, r.handleManageGameObject)

	s.AddTool(mcp.Tool{
		Name:        "manage_editor",
		Description: "Controls and queries the Unity editor's state and settings.",
		InputSchema: schema(map[string]any{
			"action":              strParam("Operation (e.g., 'play', 'pause', 'get_state', 'set_active_tool', 'add_tag')."),
			"wait_for_completion": boolParam("Wait for certain actions to finish."),
			"tool_name":           strParam("Tool name for 'set_active_tool'."),
			"tag_name":            strParam("Tag name for 'add_tag'/'remove_tag'."),
			"layer_name":          strParam("Layer name for 'add_layer'/'remove_layer'."),
		}, "action"),
	}, r.handleManageEditor)

	s.AddTool(mcp.Tool{
		Name:        "manage_script",
		Description: "Manages C# scripts in Unity: create, read, update, delete.",
		InputSchema: schema(map[string]any{
			"action":      strParam("Operation ('create', 'read', 'update', 'delete')."),
			"name":        strParam("Script name (no .cs extension)."),
			"path":        strParam(`Asset path (default: "Assets/").`),
			"contents":    strParam("C# code for 'create'/'update'."),
			"script_type": strParam("Type hint (e.g., 'MonoBehaviour')."),
			"namespace":   strParam("Script namespace."),
		}, "action", "name"),
	}, r.handleManageScript)

	s.AddTool(mcp.Tool{
		Name:        "manage_asset",
		Description: "Performs asset operations in Unity: import, create, modify, delete, search, and more.",
		InputSchema: schema(map[string]any{
			"action":            strParam("Operation to perform (e.g., 'import', 'create', 'search')."),
			"path":              strParam(`Asset path (e.g., "Materials/MyMaterial.mat") or search scope.`),
			"asset_type":        strParam("Asset type (e.g., 'Material', 'Folder'), required for 'create'."),
			"properties":        objParam("Properties for 'create'/'modify'."),
			"destination":       strParam("Target path for 'duplicate'/'move'."),
			"generate_preview":  boolParam("Generate a preview image (default: false)."),
			"search_pattern":    strParam("Search pattern (e.g., '*.prefab')."),
			"filter_type":       strParam("Asset type filter for search."),
			"filter_date_after": strParam("Only assets modified after this ISO 8601 timestamp."),
			"page_size":         intParam("Page size for search results."),
			"page_number":       intParam("Page number for search results."),
		}, "action", "path"),
	}, r.handleManageAsset)
}

func (r *Registry) handleManageScene(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	action, err := request.RequireString("action")
	if err != nil {
		return failure("managing scene", err), nil
	}
	args := request.GetArguments()

	return r.manage("managing scene", "manage_scene", map[string]any{
		"action":     action,
		"name":       args["name"],
		"path":       args["path"],
		"buildIndex": args["build_index"],
	}, "Scene operation successful.", "An unknown error occurred during scene management."), nil
}

func (r *Registry) handleManageGameObject(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	action, err := request.RequireString("action")
	if err != nil {
		return failure("managing GameObject", err), nil
	}
	args := request.GetArguments()

	params := map[string]any{
		"action":              action,
		"target":              args["target"],
		"searchMethod":        args["search_method"],
		"name":                args["name"],
		"tag":                 args["tag"],
		"parent":              args["parent"],
		"position":            args["position"],
		"rotation":            args["rotation"],
		"scale":               args["scale"],
		"componentsToAdd":     args["components_to_add"],
		"primitiveType":       args["primitive_type"],
		"saveAsPrefab":        args["save_as_prefab"],
		"prefabPath":          args["prefab_path"],
		"newName":             args["new_name"],
		"newParent":           args["new_parent"],
		"setActive":           args["set_active"],
		"newTag":              args["new_tag"],
		"newLayer":            args["new_layer"],
		"componentsToRemove":  args["components_to_remove"],
		"componentProperties": args["component_properties"],
		"searchTerm":          args["search_term"],
		"findAll":             args["find_all"],
		"searchInChildren":    args["search_in_children"],
		"searchInactive":      args["search_inactive"],
		"componentName":       args["component_name"],
	}

	// The editor plugin only ever sees the final prefabPath; the folder
	// is a client-side default used to derive it.
	if action == "create" && request.GetBool("save_as_prefab", false) {
		prefabPath := request.GetString("prefab_path", "")
		if prefabPath == "" {
			name := request.GetString("name", "")
			if name == "" {
				return jsonText(map[string]any{
					"success": false,
					"message": "Cannot create default prefab path: 'name' parameter is missing.",
				}), nil
			}
			folder := request.GetString("prefab_folder", "Assets/Prefabs")
			params["prefabPath"] = strings.ReplaceAll(folder+"/"+name+".prefab", "\\", "/")
		} else if !strings.HasSuffix(strings.ToLower(prefabPath), ".prefab") {
			return jsonText(map[string]any{
				"success": false,
				"message": fmt.Sprintf("Invalid prefab_path: '%s' must end with .prefab", prefabPath),
			}), nil
		}
	}

	return r.manage("managing GameObject", "manage_gameobject", params,
		"GameObject operation successful.", "An unknown error occurred during GameObject management."), nil
}

func (r *Registry) handleManageEditor(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	action, err := request.RequireString("action")
	if err != nil {
		return failure("managing editor", err), nil
	}
	args := request.GetArguments()

	return r.manage("managing editor", "manage_editor", map[string]any{
		"action":            action,
		"waitForCompletion": args["wait_for_completion"],
		"toolName":          args["tool_name"],
		"tagName":           args["tag_name"],
		"layerName":         args["layer_name"],
	}, "Editor operation successful.", "An unknown error occurred during editor management."), nil
}

func (r *Registry) handleManageScript(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	action, err := request.RequireString("action")
	if err != nil {
		return failure("managing script", err), nil
	}
	name, err := request.RequireString("name")
	if err != nil {
		return failure("managing script", err), nil
	}
	args := request.GetArguments()

	return r.manage("managing script", "manage_script", map[string]any{
		"action":     action,
		"name":       name,
		"path":       args["path"],
		"contents":   args["contents"],
		"scriptType": args["script_type"],
		"namespace":  args["namespace"],
	}, "Operation successful.", "An unknown error occurred."), nil
}

func (r *Registry) handleManageAsset(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	action, err := request.RequireString("action")
	if err != nil {
		return failure("managing asset", err), nil
	}
	assetPath, err := request.RequireString("path")
	if err != nil {
		return failure("managing asset", err), nil
	}
	args := request.GetArguments()

	properties := args["properties"]
	if properties == nil {
		properties = map[string]any{}
	}

	return r.manage("managing asset", "manage_asset", map[string]any{
		"action":          strings.ToLower(action),
		"path":            assetPath,
		"assetType":       args["asset_type"],
		"properties":      properties,
		"destination":     args["destination"],
		"generatePreview": request.GetBool("generate_preview", false),
		"searchPattern":   args["search_pattern"],
		"filterType":      args["filter_type"],
		"filterDateAfter": args["filter_date_after"],
		"pageSize":        args["page_size"],
		"pageNumber":      args["page_number"],
	}, "Asset operation successful.", "An unknown error occurred during asset management."), nil
}

package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func (r *Registry) registerAssetTools(s *server.MCPServer) {
	s.AddTool(mcp.Tool{
		Name:        "import_asset",
		Description: "Import an asset (e.g., 3D model, texture) into the Unity project.",
		InputSchema: schema(map[string]any{
			"source_path": strParam("Path to the source file on disk."),
			"target_path": strParam("Path where the asset should be imported, relative to the Assets folder."),
		}, "source_path", "target_path"),
	}, r.handleImportAsset)

	s.AddTool(mcp.Tool{
		Name:        "instantiate_prefab",
		Description: "Instantiate a prefab into the current scene at a specified location.",
		InputSchema: schema(map[string]any{
			"prefab_path": strParam("Path to the prefab asset, relative to the Assets folder."),
			"position_x":  numParam("X position in world space (default: 0)."),
			"position_y":  numParam("Y position in world space (default: 0)."),
			"position_z":  numParam("Z position in world space (default: 0)."),
			"rotation_x":  numParam("X rotation in degrees (default: 0)."),
			"rotation_y":  numParam("Y rotation in degrees (default: 0)."),
			"rotation_z":  numParam("Z rotation in degrees (default: 0)."),
		}, "prefab_path"),
	}, r.handleInstantiatePrefab)

	s.AddTool(mcp.Tool{
		Name:        "create_prefab",
		Description: "Create a new prefab asset from a GameObject in the scene.",
		InputSchema: schema(map[string]any{
			"object_name": strParam("Name of the GameObject in the scene to create the prefab from."),
			"prefab_path": strParam("Path where the prefab should be saved, relative to the Assets folder."),
		}, "object_name", "prefab_path"),
	}, r.handleCreatePrefab)

	s.AddTool(mcp.Tool{
		Name:        "apply_prefab",
		Description: "Apply changes made to a prefab instance back to the original prefab asset.",
		InputSchema: schema(map[string]any{
			"object_name": strParam("Name of the prefab instance in the scene."),
		}, "object_name"),
	}, r.handleApplyPrefab)

	s.AddTool(mcp.Tool{
		Name:        "get_asset_list",
		Description: "Get a list of assets in the project.",
		InputSchema: schema(map[string]any{
			"type":           strParam("Optional asset type to filter by."),
			"search_pattern": strParam(`Pattern to search for in asset names (default: "*").`),
			"folder":         strParam(`Folder to search in (default: "Assets").`),
		}),
	}, r.handleGetAssetList)
}

func (r *Registry) handleImportAsset(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sourcePath := request.GetString("source_path", "")
	targetPath := request.GetString("target_path", "")
	if sourcePath == "" {
		return mcp.NewToolResultError("Error importing asset: source_path must be a valid string"), nil
	}
	if targetPath == "" {
		return mcp.NewToolResultError("Error importing asset: target_path must be a valid string"), nil
	}

	res, err := r.send("IMPORT_ASSET", map[string]any{
		"source_path": sourcePath,
		"target_path": targetPath,
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error importing asset: %v (Source: %s, Target: %s)", err, sourcePath, targetPath)), nil
	}
	if !res.Ok() {
		return mcp.NewToolResultError(fmt.Sprintf("Error importing asset: %s (Source: %s, Target: %s)", res.RemoteErr(), sourcePath, targetPath)), nil
	}
	return mcp.NewToolResultText(res.Message("Asset imported successfully")), nil
}

func (r *Registry) handleInstantiatePrefab(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	prefabPath := request.GetString("prefab_path", "")
	if prefabPath == "" {
		return mcp.NewToolResultError("Error instantiating prefab: prefab_path must be a valid string"), nil
	}

	args := request.GetArguments()
	params := map[string]any{"prefab_path": prefabPath}
	for _, key := range []string{"position_x", "position_y", "position_z", "rotation_x", "rotation_y", "rotation_z"} {
		v, ok := args[key]
		if !ok {
			params[key] = 0.0
			continue
		}
		f, ok := v.(float64)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("Error instantiating prefab: %s must be a number", key)), nil
		}
		params[key] = f
	}

	res, err := r.send("INSTANTIATE_PREFAB", params)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error instantiating prefab: %v (Path: %s)", err, prefabPath)), nil
	}
	if !res.Ok() {
		return mcp.NewToolResultError(fmt.Sprintf("Error instantiating prefab: %s (Path: %s)", res.RemoteErr(), prefabPath)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Prefab instantiated successfully as '%s'", res.StringField("instance_name", "unknown"))), nil
}

func (r *Registry) handleCreatePrefab(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	objectName := request.GetString("object_name", "")
	prefabPath := request.GetString("prefab_path", "")
	if objectName == "" {
		return mcp.NewToolResultError("Error creating prefab: object_name must be a valid string"), nil
	}
	if prefabPath == "" {
		return mcp.NewToolResultError("Error creating prefab: prefab_path must be a valid string"), nil
	}
	if !strings.HasSuffix(strings.ToLower(prefabPath), ".prefab") {
		prefabPath += ".prefab"
	}

	res, err := r.send("CREATE_PREFAB", map[string]any{
		"object_name": objectName,
		"prefab_path": prefabPath,
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error creating prefab: %v (Object: %s, Path: %s)", err, objectName, prefabPath)), nil
	}
	if !res.Ok() {
		return mcp.NewToolResultError(fmt.Sprintf("Error creating prefab: %s (Object: %s, Path: %s)", res.RemoteErr(), objectName, prefabPath)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Prefab created successfully at %s", res.StringField("path", prefabPath))), nil
}

func (r *Registry) handleApplyPrefab(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	objectName, err := request.RequireString("object_name")
	if err != nil {
		return failure("applying prefab changes", err), nil
	}

	res, err := r.send("APPLY_PREFAB", map[string]any{"object_name": objectName})
	if err != nil {
		return failure("applying prefab changes", err), nil
	}
	if !res.Ok() {
		return remoteFailure("applying prefab changes", res), nil
	}
	return mcp.NewToolResultText(res.Message("Prefab changes applied successfully")), nil
}

func (r *Registry) handleGetAssetList(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	res, err := r.send("GET_ASSET_LIST", map[string]any{
		"type":           args["type"],
		"search_pattern": request.GetString("search_pattern", "*"),
		"folder":         request.GetString("folder", "Assets"),
	})
	if err != nil {
		return failure("getting asset list", err), nil
	}
	if !res.Ok() {
		return remoteFailure("getting asset list", res), nil
	}
	assets := res.List("assets")
	if assets == nil {
		assets = []any{}
	}
	return jsonText(assets), nil
}

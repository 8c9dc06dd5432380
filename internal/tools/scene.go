package tools

import (
	"context"
	"fmt"
	"path"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func (r *Registry) registerSceneTools(s *server.MCPServer) {
	s.AddTool(mcp.Tool{
		Name:        "get_scene_info",
		Description: "Retrieve detailed info about the current Unity scene, including its name and root objects.",
		InputSchema: schema(map[string]any{}),
	}, r.handleGetSceneInfo)

	s.AddTool(mcp.Tool{
		Name:        "open_scene",
		Description: "Open a specified scene in the Unity editor.",
		InputSchema: schema(map[string]any{
			"scene_path": strParam(`Full path to the scene file (e.g., "Assets/Scenes/MyScene.unity").`),
		}, "scene_path"),
	}, r.handleOpenScene)

	s.AddTool(mcp.Tool{
		Name:        "save_scene",
		Description: "Save the current scene to its file.",
		InputSchema: schema(map[string]any{}),
	}, r.handleSaveScene)

	s.AddTool(mcp.Tool{
		Name:        "new_scene",
		Description: "Create a new empty scene in the Unity editor.",
		InputSchema: schema(map[string]any{
			"scene_path": strParam("Full path where the new scene should be saved."),
			"overwrite":  boolParam("Whether to overwrite if the scene already exists (default: false)."),
		}, "scene_path"),
	}, r.handleNewScene)

	s.AddTool(mcp.Tool{
		Name:        "change_scene",
		Description: "Change to a different scene, optionally saving the current one.",
		InputSchema: schema(map[string]any{
			"scene_path":   strParam("Full path to the target scene file."),
			"save_current": boolParam("Whether to save the current scene before changing (default: false)."),
		}, "scene_path"),
	}, r.handleChangeScene)

	s.AddTool(mcp.Tool{
		Name:        "get_object_info",
		Description: "Get info about a specific game object.",
		InputSchema: schema(map[string]any{
			"object_name": strParam("Name of the game object."),
		}, "object_name"),
	}, r.handleGetObjectInfo)
}

func (r *Registry) handleGetSceneInfo(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	res, err := r.send("GET_SCENE_INFO", nil)
	if err != nil {
		return failure("getting scene info", err), nil
	}
	if !res.Ok() {
		return remoteFailure("getting scene info", res), nil
	}
	return jsonText(res.Fields), nil
}

// sceneExists checks the asset database for a scene at the exact path.
func (r *Registry) sceneExists(scenePath string) (bool, error) {
	folder := path.Dir(scenePath)
	if folder == "." || folder == "/" {
		folder = "Assets"
	}
	res, err := r.send("GET_ASSET_LIST", map[string]any{
		"type":           "Scene",
		"search_pattern": path.Base(scenePath),
		"folder":         folder,
	})
	if err != nil {
		return false, err
	}
	for _, item := range res.List("assets") {
		asset, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if asset["path"] == scenePath {
			return true, nil
		}
	}
	return false, nil
}

func (r *Registry) handleOpenScene(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	scenePath, err := request.RequireString("scene_path")
	if err != nil {
		return failure("opening scene", err), nil
	}

	exists, err := r.sceneExists(scenePath)
	if err != nil {
		return failure("opening scene", err), nil
	}
	if !exists {
		return mcp.NewToolResultText(fmt.Sprintf("Scene at '%s' not found in the project.", scenePath)), nil
	}

	res, err := r.send("OPEN_SCENE", map[string]any{"scene_path": scenePath})
	if err != nil {
		return failure("opening scene", err), nil
	}
	if !res.Ok() {
		return remoteFailure("opening scene", res), nil
	}
	return mcp.NewToolResultText(res.Message("Scene opened successfully")), nil
}

func (r *Registry) handleSaveScene(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	res, err := r.send("SAVE_SCENE", nil)
	if err != nil {
		return failure("saving scene", err), nil
	}
	if !res.Ok() {
		return remoteFailure("saving scene", res), nil
	}
	return mcp.NewToolResultText(res.Message("Scene saved successfully")), nil
}

func (r *Registry) handleNewScene(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	scenePath, err := request.RequireString("scene_path")
	if err != nil {
		return failure("creating new scene", err), nil
	}
	overwrite := request.GetBool("overwrite", false)

	exists, err := r.sceneExists(scenePath)
	if err != nil {
		return failure("creating new scene", err), nil
	}
	if exists && !overwrite {
		return mcp.NewToolResultText(fmt.Sprintf("Scene at '%s' already exists. Use overwrite=true to replace it.", scenePath)), nil
	}

	res, err := r.send("NEW_SCENE", map[string]any{
		"scene_path": scenePath,
		"overwrite":  overwrite,
	})
	if err != nil {
		return failure("creating new scene", err), nil
	}
	if !res.Ok() {
		return remoteFailure("creating new scene", res), nil
	}

	// Persist and reload so the editor state reflects the new scene.
	if _, err := r.send("SAVE_SCENE", nil); err != nil {
		return failure("creating new scene", err), nil
	}
	if _, err := r.send("GET_SCENE_INFO", nil); err != nil {
		return failure("creating new scene", err), nil
	}

	return mcp.NewToolResultText(res.Message("New scene created successfully")), nil
}

func (r *Registry) handleChangeScene(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	scenePath, err := request.RequireString("scene_path")
	if err != nil {
		return failure("changing scene", err), nil
	}

	res, err := r.send("CHANGE_SCENE", map[string]any{
		"scene_path":   scenePath,
		"save_current": request.GetBool("save_current", false),
	})
	if err != nil {
		return failure("changing scene", err), nil
	}
	if !res.Ok() {
		return remoteFailure("changing scene", res), nil
	}
	return mcp.NewToolResultText(res.Message("Scene changed successfully")), nil
}

func (r *Registry) handleGetObjectInfo(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("object_name")
	if err != nil {
		return failure("getting object info", err), nil
	}

	res, err := r.send("GET_OBJECT_INFO", map[string]any{"name": name})
	if err != nil {
		return failure("getting object info", err), nil
	}
	if !res.Ok() {
		return remoteFailure("getting object info", res), nil
	}
	return jsonText(res.Fields), nil
}

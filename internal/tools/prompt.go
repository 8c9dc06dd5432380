package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const assetCreationStrategy = `Unity MCP Server Tools and Best Practices:

1. **Editor Control**
   - ` + "`undo`, `redo`, `play`, `pause`, `stop`, `build`" + ` - Editor-wide actions
   - ` + "`read_console(action, types, count, filter_text)`" + ` - Read and filter Unity Console logs
2. **Scene Management**
   - ` + "`get_scene_info()`" + ` - Get scene details
   - ` + "`open_scene(scene_path)`, `save_scene()`" + ` - Open/save scenes
   - ` + "`new_scene(scene_path)`, `change_scene(scene_path, save_current)`" + ` - Create/switch scenes

3. **Object Management**
   - ALWAYS use ` + "`find_objects_by_name(name)`" + ` to check if an object exists before creating or modifying it
   - ` + "`create_object(name, type)`" + ` - Create objects (e.g. CUBE, SPHERE, EMPTY, CAMERA)
   - ` + "`delete_object(name)`" + ` - Remove objects
   - ` + "`modify_object(name, location, rotation, scale)`" + ` - Modify object position, rotation, and scale
   - ` + "`modify_object(name, add_component=...)`" + ` - Add components to objects (e.g. Rigidbody, BoxCollider)
   - ` + "`modify_object(name, remove_component=...)`" + ` - Remove components from objects
   - ` + "`get_object_properties(name)`" + ` - Get object properties
   - ` + "`get_hierarchy()`" + ` - Get object hierarchy
4. **Script Management**
   - ALWAYS use ` + "`list_scripts(folder_path)` or `view_script(script_path)`" + ` to check if a script exists before creating or updating it
   - ` + "`create_script(script_name, script_type, namespace, template)`" + ` - Create scripts
   - ` + "`view_script(script_path)`, `update_script(script_path, content)`" + ` - View/modify scripts
   - ` + "`attach_script(object_name, script_name)`" + ` - Add scripts to objects
   - ` + "`list_scripts(folder_path)`" + ` - List scripts in folder

5. **Asset Management**
   - ALWAYS use ` + "`get_asset_list(type, search_pattern, folder)`" + ` to check if an asset exists before creating or importing it
   - ` + "`import_asset(source_path, target_path)`" + ` - Import external assets
   - ` + "`instantiate_prefab(prefab_path, position_x, ...)`" + ` - Create prefab instances
   - ` + "`create_prefab(object_name, prefab_path)`, `apply_prefab(object_name)`" + ` - Manage prefabs
   - Use relative paths for Unity assets (e.g., 'Assets/Models/MyModel.fbx')
   - Use absolute paths for external files

6. **Material Management**
   - ALWAYS check if a material exists before creating or modifying it
   - ` + "`set_material(object_name, material_name, color)`" + ` - Apply/create materials
   - Use RGB colors (0.0-1.0 range)

7. **Best Practices**
   - ALWAYS verify existence before creating or updating any objects, scripts, assets, or materials
   - Use meaningful names for objects and scripts
   - Keep scripts organized in folders with namespaces
   - Verify changes after modifications
   - Save scenes before major changes
   - Use full component names (e.g., 'Rigidbody', 'BoxCollider')
   - Provide correct value types for properties
   - Keep prefabs in dedicated folders
   - Regularly apply prefab changes
   - Monitor console logs for errors and warnings
   - Use search terms to filter console output when debugging
`

func registerPrompts(s *server.MCPServer) {
	s.AddPrompt(mcp.Prompt{
		Name:        "asset_creation_strategy",
		Description: "Guide for creating and managing assets in Unity.",
	}, func(_ context.Context, _ mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		return mcp.NewGetPromptResult(
			"Guide for creating and managing assets in Unity.",
			[]mcp.PromptMessage{
				mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(assetCreationStrategy)),
			},
		), nil
	})
}

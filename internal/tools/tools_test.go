package tools

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/yujijaao116/unity-mcp-hy3d/internal/unity"
	"github.com/yujijaao116/unity-mcp-hy3d/internal/wire"
)

type sentCall struct {
	cmdType  string
	params   map[string]any
	keepNull []string
}

// newTestRegistry builds a Registry whose send path is the given stub.
func newTestRegistry(handler func(c sentCall) (wire.Result, error)) (*Registry, *[]sentCall) {
	calls := &[]sentCall{}
	r := &Registry{
		send: func(cmdType string, params map[string]any, keepNull ...string) (wire.Result, error) {
			c := sentCall{cmdType: cmdType, params: params, keepNull: keepNull}
			*calls = append(*calls, c)
			return handler(c)
		},
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	return r, calls
}

func callReq(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func textOf(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if res == nil || len(res.Content) == 0 {
		t.Fatal("tool result has no content")
	}
	tc, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content type = %T, want TextContent", res.Content[0])
	}
	return tc.Text
}

func TestGetSceneInfoUnreachableEditor(t *testing.T) {
	r, _ := newTestRegistry(func(sentCall) (wire.Result, error) {
		return wire.Result{}, fmt.Errorf("%w: dialing localhost:6400 failed after 3 attempts", unity.ErrConnection)
	})

	res, err := r.handleGetSceneInfo(t.Context(), callReq(nil))
	if err != nil {
		t.Fatalf("handler error = %v, tool failures must be results", err)
	}
	if !res.IsError {
		t.Fatal("IsError = false for unreachable editor")
	}
	if got := textOf(t, res); !strings.HasPrefix(got, "Error getting scene info:") {
		t.Fatalf("text = %q, want \"Error getting scene info:\" prefix", got)
	}
}

func TestOpenScenePassesThroughMessage(t *testing.T) {
	r, calls := newTestRegistry(func(c sentCall) (wire.Result, error) {
		switch c.cmdType {
		case "GET_ASSET_LIST":
			return wire.OkResult(map[string]any{
				"assets": []any{map[string]any{"path": "Assets/Scenes/Main.unity"}},
			}), nil
		case "OPEN_SCENE":
			return wire.OkResult(map[string]any{"message": "Scene opened successfully"}), nil
		}
		return wire.Result{}, fmt.Errorf("unexpected command %s", c.cmdType)
	})

	res, err := r.handleOpenScene(t.Context(), callReq(map[string]any{"scene_path": "Assets/Scenes/Main.unity"}))
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if got := textOf(t, res); got != "Scene opened successfully" {
		t.Fatalf("text = %q, want %q", got, "Scene opened successfully")
	}
	if len(*calls) != 2 {
		t.Fatalf("call count = %d, want 2 (existence check + open)", len(*calls))
	}
	if got := (*calls)[1].params["scene_path"]; got != "Assets/Scenes/Main.unity" {
		t.Fatalf("scene_path = %v, want Assets/Scenes/Main.unity", got)
	}
}

func TestOpenSceneMissingScene(t *testing.T) {
	r, calls := newTestRegistry(func(sentCall) (wire.Result, error) {
		return wire.OkResult(map[string]any{"assets": []any{}}), nil
	})

	res, err := r.handleOpenScene(t.Context(), callReq(map[string]any{"scene_path": "Assets/Scenes/Nope.unity"}))
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if got := textOf(t, res); got != "Scene at 'Assets/Scenes/Nope.unity' not found in the project." {
		t.Fatalf("text = %q", got)
	}
	if len(*calls) != 1 {
		t.Fatalf("call count = %d, OPEN_SCENE must not be sent for a missing scene", len(*calls))
	}
}

func TestDeleteObjectNotFound(t *testing.T) {
	r, calls := newTestRegistry(func(sentCall) (wire.Result, error) {
		return wire.OkResult(map[string]any{"objects": []any{}}), nil
	})

	res, err := r.handleDeleteObject(t.Context(), callReq(map[string]any{"name": "Ghost"}))
	if err != nil {
		t.Fatalf("handler error = %v, a missing object must not raise", err)
	}
	if got := textOf(t, res); got != "Error: Object 'Ghost' not found in the scene." {
		t.Fatalf("text = %q", got)
	}
	if len(*calls) != 1 {
		t.Fatalf("call count = %d, DELETE_OBJECT must not be sent", len(*calls))
	}
}

func TestDeleteObjectIgnoreMissing(t *testing.T) {
	r, _ := newTestRegistry(func(sentCall) (wire.Result, error) {
		return wire.OkResult(map[string]any{"objects": []any{}}), nil
	})

	res, err := r.handleDeleteObject(t.Context(), callReq(map[string]any{"name": "Ghost", "ignore_missing": true}))
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if got := textOf(t, res); got != "No object named 'Ghost' found to delete. Ignoring." {
		t.Fatalf("text = %q", got)
	}
}

func TestCreateObjectDefaults(t *testing.T) {
	r, calls := newTestRegistry(func(c sentCall) (wire.Result, error) {
		if c.cmdType != "CREATE_OBJECT" {
			return wire.Result{}, fmt.Errorf("unexpected command %s", c.cmdType)
		}
		return wire.OkResult(map[string]any{"name": "Cube"}), nil
	})

	res, err := r.handleCreateObject(t.Context(), callReq(map[string]any{"type": "cube"}))
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if got := textOf(t, res); got != "Created CUBE game object: Cube" {
		t.Fatalf("text = %q", got)
	}

	params := (*calls)[0].params
	if got := params["type"]; got != "CUBE" {
		t.Fatalf("type = %v, want CUBE", got)
	}
	loc, ok := params["location"].([]float64)
	if !ok || len(loc) != 3 || loc[0] != 0 {
		t.Fatalf("location = %v, want [0 0 0]", params["location"])
	}
	scale, ok := params["scale"].([]float64)
	if !ok || scale[0] != 1 {
		t.Fatalf("scale = %v, want [1 1 1]", params["scale"])
	}
	if _, ok := params["name"]; ok {
		t.Fatal("name sent despite not being provided")
	}
}

func TestCreateObjectReplaceIfExists(t *testing.T) {
	r, calls := newTestRegistry(func(c sentCall) (wire.Result, error) {
		switch c.cmdType {
		case "FIND_OBJECTS_BY_NAME":
			return wire.OkResult(map[string]any{
				"objects": []any{map[string]any{"name": "Player"}},
			}), nil
		case "DELETE_OBJECT":
			return wire.OkResult(nil), nil
		case "CREATE_OBJECT":
			return wire.OkResult(map[string]any{"name": "Player"}), nil
		}
		return wire.Result{}, fmt.Errorf("unexpected command %s", c.cmdType)
	})

	res, err := r.handleCreateObject(t.Context(), callReq(map[string]any{
		"name":              "Player",
		"replace_if_exists": true,
	}))
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if got := textOf(t, res); got != "Created CUBE game object: Player" {
		t.Fatalf("text = %q", got)
	}

	var types []string
	for _, c := range *calls {
		types = append(types, c.cmdType)
	}
	want := []string{"FIND_OBJECTS_BY_NAME", "DELETE_OBJECT", "CREATE_OBJECT"}
	if len(types) != len(want) {
		t.Fatalf("commands = %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Fatalf("commands = %v, want %v", types, want)
		}
	}
}

func TestCreateObjectAlreadyExists(t *testing.T) {
	r, calls := newTestRegistry(func(sentCall) (wire.Result, error) {
		return wire.OkResult(map[string]any{
			"objects": []any{map[string]any{"name": "Player"}},
		}), nil
	})

	res, err := r.handleCreateObject(t.Context(), callReq(map[string]any{"name": "Player"}))
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if got := textOf(t, res); !strings.Contains(got, "already exists") {
		t.Fatalf("text = %q, want already-exists message", got)
	}
	if len(*calls) != 1 {
		t.Fatalf("call count = %d, CREATE_OBJECT must not be sent", len(*calls))
	}
}

func TestModifyObjectChecksParent(t *testing.T) {
	r, _ := newTestRegistry(func(c sentCall) (wire.Result, error) {
		if c.cmdType != "FIND_OBJECTS_BY_NAME" {
			return wire.Result{}, fmt.Errorf("unexpected command %s", c.cmdType)
		}
		name := c.params["name"]
		if name == "Player" {
			return wire.OkResult(map[string]any{
				"objects": []any{map[string]any{"name": "Player"}},
			}), nil
		}
		return wire.OkResult(map[string]any{"objects": []any{}}), nil
	})

	res, err := r.handleModifyObject(t.Context(), callReq(map[string]any{
		"name":       "Player",
		"set_parent": "MissingParent",
	}))
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if got := textOf(t, res); got != "Parent object 'MissingParent' not found in the scene." {
		t.Fatalf("text = %q", got)
	}
}

func TestSetMaterialColorValidation(t *testing.T) {
	tests := []struct {
		name  string
		color []any
		want  string
	}{
		{"two components", []any{0.5, 0.5}, "must have 3 or 4 components"},
		{"out of range", []any{1.5, 0.0, 0.0}, "out of range"},
		{"non numeric", []any{"red", 0.0, 0.0}, "must be numbers"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, calls := newTestRegistry(func(sentCall) (wire.Result, error) {
				return wire.OkResult(nil), nil
			})

			res, err := r.handleSetMaterial(t.Context(), callReq(map[string]any{
				"object_name": "Player",
				"color":       tt.color,
			}))
			if err != nil {
				t.Fatalf("handler error = %v", err)
			}
			if !res.IsError {
				t.Fatal("IsError = false for invalid color")
			}
			if got := textOf(t, res); !strings.Contains(got, tt.want) {
				t.Fatalf("text = %q, want substring %q", got, tt.want)
			}
			if len(*calls) != 0 {
				t.Fatal("SET_MATERIAL sent despite invalid color")
			}
		})
	}
}

func TestSetMaterialSendsValidatedColor(t *testing.T) {
	r, calls := newTestRegistry(func(sentCall) (wire.Result, error) {
		return wire.OkResult(map[string]any{"material_name": "Player_Red"}), nil
	})

	res, err := r.handleSetMaterial(t.Context(), callReq(map[string]any{
		"object_name": "Player",
		"color":       []any{1.0, 0.0, 0.0, 0.5},
	}))
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if got := textOf(t, res); got != "Applied material to Player: Player_Red" {
		t.Fatalf("text = %q", got)
	}
	color, ok := (*calls)[0].params["color"].([]float64)
	if !ok || len(color) != 4 {
		t.Fatalf("color = %v, want 4 floats", (*calls)[0].params["color"])
	}
}

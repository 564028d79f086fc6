package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shinzef/BlenderRayTracer/engine/light"
	"github.com/Shinzef/BlenderRayTracer/engine/scene"
	"github.com/Shinzef/BlenderRayTracer/engine/scene_object"
)

func buildTestScene() scene.Scene {
	sc := scene.NewScene()
	sc.SetName("test")
	sc.Add(scene_object.NewSceneObject(
		scene_object.WithName("Quad"),
		scene_object.WithMesh(quadMesh()),
	))
	sc.Add(scene_object.NewSceneObject(
		scene_object.WithName("Sphere"),
		scene_object.WithScale(1, 1, 1),
		scene_object.WithMesh(quadMesh()),
	))
	sc.Add(scene_object.NewSceneObject(
		scene_object.WithName("Lamp"),
		scene_object.WithLightData(light.NewLight(light.LightTypePoint)),
	))
	return sc
}

func TestSerialize(t *testing.T) {
	doc := Serialize(buildTestScene(), DefaultOptions())

	assert.Equal(t, "test", doc.Name)
	require.Len(t, doc.Objects, 2)
	require.Len(t, doc.Lights, 1)

	// Objects keep scene enumeration order.
	assert.Equal(t, "Quad", doc.Objects[0].(TriangleMesh).Name)
	assert.Equal(t, "Sphere", doc.Objects[1].(Sphere).Name)

	// No active camera: the synthesized default stands in.
	assert.Equal(t, [3]float32{0, 0, 5}, doc.Camera.Position)

	assert.Equal(t, "gradient", doc.Background.Type)
	assert.Equal(t, float32(1), doc.Background.Intensity)
}

func TestSerializeRespectsOptionFlags(t *testing.T) {
	sc := buildTestScene()

	doc := Serialize(sc, Options{ExportLights: true})
	assert.Empty(t, doc.Objects)
	assert.Len(t, doc.Lights, 1)

	doc = Serialize(sc, Options{ExportMeshes: true})
	assert.Len(t, doc.Objects, 2)
	assert.Empty(t, doc.Lights)
}

func TestSerializeDefaultMaterialsWhenDisabled(t *testing.T) {
	sc := buildTestScene()

	doc := Serialize(sc, Options{ExportMeshes: true, ExportMaterials: false})
	for _, prim := range doc.Objects {
		switch p := prim.(type) {
		case TriangleMesh:
			assert.IsType(t, DefaultMaterial{}, p.Material)
		case Sphere:
			assert.IsType(t, DefaultMaterial{}, p.Material)
		default:
			t.Fatalf("unexpected primitive %T", prim)
		}
	}
}

func TestSerializeEmptyScene(t *testing.T) {
	doc := Serialize(scene.NewScene(), DefaultOptions())

	// Empty collections must still marshal as [] rather than null.
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"objects":[]`)
	assert.Contains(t, string(data), `"lights":[]`)
}

func TestWriteDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "out", "scene_raycast.json")

	err := Export(buildTestScene(), path, DefaultOptions())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "test", decoded["name"])
	assert.Len(t, decoded["objects"], 2)
	assert.Len(t, decoded["lights"], 1)

	// No temp file left behind after the rename.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	// The staged file's restrictive mode must not leak to the destination.
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
}

func TestWriteDocumentJSONShape(t *testing.T) {
	sc := buildTestScene()
	doc := Serialize(sc, Options{ExportMeshes: true})

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	s := string(data)
	assert.Contains(t, s, `"type":"default"`)
	assert.Contains(t, s, `"type":"perspective"`)
	assert.Contains(t, s, `"lookAt"`)
	assert.Contains(t, s, `"focusDist"`)
}

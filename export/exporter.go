package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Shinzef/BlenderRayTracer/engine/scene"
	"github.com/Shinzef/BlenderRayTracer/engine/scene_object"
)

// Options controls which parts of the scene the exporter emits.
type Options struct {
	// ExportMeshes emits mesh objects as primitives when true.
	ExportMeshes bool

	// ExportLights emits light objects when true.
	ExportLights bool

	// ExportMaterials classifies each object's material when true; when
	// false every primitive carries the renderer's default material.
	ExportMaterials bool
}

// DefaultOptions returns the exporter defaults: everything enabled.
//
// Returns:
//   - Options: meshes, lights, and materials all exported
func DefaultOptions() Options {
	return Options{
		ExportMeshes:    true,
		ExportLights:    true,
		ExportMaterials: true,
	}
}

// Serialize walks the scene once in native enumeration order and assembles
// the renderer-ready document: mesh objects through the geometry fallback
// chain, light objects through the light exporter, the active camera through
// the camera deriver, and the fixed gradient background. Unsupported or
// empty objects are skipped, never errors.
//
// Parameters:
//   - sc: the scene to serialize
//   - opts: export options
//
// Returns:
//   - *SceneDocument: the assembled document
func Serialize(sc scene.Scene, opts Options) *SceneDocument {
	doc := &SceneDocument{
		Name:       sc.Name(),
		Objects:    make([]Primitive, 0),
		Lights:     make([]Light, 0),
		Camera:     DeriveCamera(sc.ActiveCamera(), sc.RenderSettings(), sc.ActiveObject()),
		Background: Background{Type: "gradient", Intensity: 1.0},
	}

	if opts.ExportMeshes {
		for _, obj := range sc.Objects() {
			if obj.Type() != scene_object.ObjectTypeMesh {
				continue
			}
			if prim, ok := ResolveGeometry(obj, opts.ExportMaterials); ok {
				doc.Objects = append(doc.Objects, prim)
			}
		}
	}

	if opts.ExportLights {
		for _, obj := range sc.Objects() {
			if obj.Type() != scene_object.ObjectTypeLight {
				continue
			}
			if l, ok := ExportLight(obj); ok {
				doc.Lights = append(doc.Lights, l)
			}
		}
	}

	return doc
}

// WriteDocument writes the document as indented JSON to the given path,
// creating the parent directory if absent. The document is staged in a
// temporary file and renamed into place, so a failed write never leaves a
// partial document behind.
//
// Parameters:
//   - doc: the document to write
//   - path: the destination file path
//
// Returns:
//   - error: error if the directory cannot be created or the write fails
func WriteDocument(doc *SceneDocument, path string) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode scene: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create export directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".raycast-*.json")
	if err != nil {
		return fmt.Errorf("stage scene file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write scene: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write scene: %w", err)
	}
	// CreateTemp stages the file 0600; widen it to what a plain write
	// would produce before it lands at the destination.
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("finalize scene file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("finalize scene file: %w", err)
	}
	return nil
}

// Export serializes the scene and writes the document to the given path.
//
// Parameters:
//   - sc: the scene to export
//   - path: the destination file path
//   - opts: export options
//
// Returns:
//   - error: error if the document cannot be written
func Export(sc scene.Scene, path string, opts Options) error {
	return WriteDocument(Serialize(sc, opts), path)
}

package export

import (
	"fmt"
	"log"
	"strings"

	"github.com/chewxy/math32"

	"github.com/Shinzef/BlenderRayTracer/common"
	"github.com/Shinzef/BlenderRayTracer/engine/scene_object"
)

// ResolveGeometry converts one scene object into at most one output
// primitive, walking an explicit fallback chain:
//
//	TrySphere -> TryMesh -> UseBox
//
// TrySphere fires on the name heuristic, TryMesh bakes and triangulates the
// real geometry, and UseBox approximates the object by its transformed
// bounding box. UseBox cannot fail, so an object with any geometry always
// yields a primitive. Objects with no mesh data or zero vertices are skipped
// (ok = false) — that is an expected outcome, not an error.
//
// Parameters:
//   - obj: the scene object to resolve
//   - withMaterials: true to classify the object's material, false to emit the default
//
// Returns:
//   - Primitive: the resolved primitive
//   - bool: false when the object has no renderable geometry
func ResolveGeometry(obj scene_object.SceneObject, withMaterials bool) (Primitive, bool) {
	msh := obj.Mesh()
	if msh == nil || msh.VertexCount() == 0 {
		return nil, false
	}

	mat := primitiveMaterial(obj, withMaterials)

	if sphere, ok := trySphere(obj, mat); ok {
		return sphere, true
	}

	tri, err := tryMesh(obj, mat)
	if err == nil {
		return tri, true
	}
	log.Printf("[Exporter] mesh export failed for %q: %v; falling back to box approximation", obj.Name(), err)

	return useBox(obj, mat), true
}

// trySphere matches objects whose display name contains "sphere" in any
// case. This is a heuristic substitute for true implicit-surface detection:
// the radius is taken from the X scale factor alone, so the result is
// undefined under non-uniform scale. Center comes from the object's
// world-space origin.
func trySphere(obj scene_object.SceneObject, mat Material) (Sphere, bool) {
	if !strings.Contains(strings.ToLower(obj.Name()), "sphere") {
		return Sphere{}, false
	}
	sx, _, _ := obj.Scale()
	return Sphere{
		Type:     PrimitiveSphere,
		Name:     obj.Name(),
		Center:   convertArray(obj.WorldTranslation()),
		Radius:   sx,
		Material: mat,
	}, true
}

// tryMesh materializes the object's geometry with modifiers baked,
// fan-triangulates every polygon, applies the full world transform to each
// vertex, and converts into renderer space. A bake failure, an
// out-of-range polygon index, or empty output all return an error for the
// caller's fallback; nothing here aborts the export.
func tryMesh(obj scene_object.SceneObject, mat Material) (TriangleMesh, error) {
	msh := obj.Mesh()
	baked, err := msh.Bake()
	if err != nil {
		return TriangleMesh{}, fmt.Errorf("bake: %w", err)
	}

	world := obj.WorldMatrix()
	vertices := make([][3]float32, 0, len(baked.Vertices))
	for _, v := range baked.Vertices {
		vertices = append(vertices, convertArray(common.TransformPoint(world, v)))
	}

	var indices []uint32
	for pi, poly := range baked.Polygons {
		for _, idx := range poly {
			if idx < 0 || idx >= len(baked.Vertices) {
				return TriangleMesh{}, fmt.Errorf("polygon %d references vertex %d of %d", pi, idx, len(baked.Vertices))
			}
		}
		// Fan triangulation: [0, i-1, i] for each vertex past the second.
		for i := 2; i < len(poly); i++ {
			indices = append(indices, uint32(poly[0]), uint32(poly[i-1]), uint32(poly[i]))
		}
	}

	if len(vertices) == 0 || len(indices) == 0 {
		return TriangleMesh{}, fmt.Errorf("no triangles after evaluation (%d vertices, %d indices)", len(vertices), len(indices))
	}

	return TriangleMesh{
		Type:     PrimitiveMesh,
		Name:     obj.Name(),
		Vertices: vertices,
		Indices:  indices,
		Material: mat,
	}, nil
}

// useBox approximates the object by its local bounding box with the world
// transform applied to both corners. Corners are re-ordered component-wise
// after transform and conversion so min <= max holds on every axis. Bounding
// box data is always present on a valid mesh object, so this step is the
// chain's terminal, always-succeeding case.
func useBox(obj scene_object.SceneObject, mat Material) Box {
	localMin, localMax := obj.Mesh().BoundingBox()
	world := obj.WorldMatrix()

	a := ConvertVec(common.TransformPoint(world, localMin))
	b := ConvertVec(common.TransformPoint(world, localMax))

	var boxMin, boxMax [3]float32
	for i := 0; i < 3; i++ {
		boxMin[i] = math32.Min(a[i], b[i])
		boxMax[i] = math32.Max(a[i], b[i])
	}

	return Box{
		Type:     PrimitiveBox,
		Name:     obj.Name(),
		Min:      boxMin,
		Max:      boxMax,
		Material: mat,
	}
}

// primitiveMaterial attaches the classified material, or the renderer's
// default when material export is disabled.
func primitiveMaterial(obj scene_object.SceneObject, withMaterials bool) Material {
	if !withMaterials {
		return NewDefaultMaterial()
	}
	return ClassifyObject(obj)
}

package mesh

import (
	"github.com/go-gl/mathgl/mgl32"
)

// MeshBuilderOption is a functional option for configuring a Mesh during construction.
type MeshBuilderOption func(*meshImpl)

// WithName sets the mesh identifier.
//
// Parameters:
//   - name: the mesh name
//
// Returns:
//   - MeshBuilderOption: functional option to set the name
func WithName(name string) MeshBuilderOption {
	return func(m *meshImpl) {
		m.name = name
	}
}

// WithVertices sets the base local-space vertex positions.
//
// Parameters:
//   - vertices: the vertex positions
//
// Returns:
//   - MeshBuilderOption: functional option to set the vertices
func WithVertices(vertices []mgl32.Vec3) MeshBuilderOption {
	return func(m *meshImpl) {
		m.vertices = vertices
	}
}

// WithPolygons sets the base polygon index lists. Faces may have more than
// three vertices; triangulation happens at export time.
//
// Parameters:
//   - polygons: index lists into the vertex array, one per face
//
// Returns:
//   - MeshBuilderOption: functional option to set the polygons
func WithPolygons(polygons [][]int) MeshBuilderOption {
	return func(m *meshImpl) {
		m.polygons = polygons
	}
}

// WithModifiers sets the modifier stack in application order.
//
// Parameters:
//   - modifiers: the modifiers to apply during Bake
//
// Returns:
//   - MeshBuilderOption: functional option to set the modifier stack
func WithModifiers(modifiers ...Modifier) MeshBuilderOption {
	return func(m *meshImpl) {
		m.modifiers = modifiers
	}
}

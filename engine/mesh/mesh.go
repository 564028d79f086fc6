package mesh

import (
	"fmt"
	"sync"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// BakedMesh is the evaluated result of a mesh with its modifier stack applied.
// Polygons remain n-gons; triangulation is left to consumers.
type BakedMesh struct {
	// Vertices are the evaluated local-space vertex positions.
	Vertices []mgl32.Vec3

	// Polygons are index lists into Vertices, one per face. Faces may have
	// more than three vertices.
	Polygons [][]int
}

// meshImpl is the implementation of the Mesh interface.
type meshImpl struct {
	mu sync.Mutex

	name      string
	vertices  []mgl32.Vec3
	polygons  [][]int
	modifiers []Modifier

	// cached bake result; both value and error are cached so repeated
	// evaluation of a broken modifier stack stays cheap.
	baked    BakedMesh
	bakeErr  error
	bakeDone bool
}

// Mesh holds the editable geometry of a scene object: base vertices, n-gon
// polygons, and a stack of procedural modifiers. Bake evaluates the stack and
// is the only fallible operation; the base data and its bounding box are
// always available.
// Thread-safe for concurrent access.
type Mesh interface {
	// Name returns the mesh identifier.
	//
	// Returns:
	//   - string: the mesh name
	Name() string

	// Vertices returns the base local-space vertex positions (pre-modifier).
	//
	// Returns:
	//   - []mgl32.Vec3: the base vertices
	Vertices() []mgl32.Vec3

	// Polygons returns the base polygon index lists (pre-modifier).
	//
	// Returns:
	//   - [][]int: the base polygons
	Polygons() [][]int

	// VertexCount returns the number of base vertices.
	//
	// Returns:
	//   - int: the vertex count
	VertexCount() int

	// Modifiers returns the modifier stack in application order.
	//
	// Returns:
	//   - []Modifier: the modifiers
	Modifiers() []Modifier

	// AddModifier appends a modifier to the stack and invalidates any cached
	// bake result.
	//
	// Parameters:
	//   - m: the modifier to append
	AddModifier(m Modifier)

	// BoundingBox returns the local axis-aligned bounding box of the base
	// vertices. An empty mesh yields zero corners.
	//
	// Returns:
	//   - min, max: the box corners
	BoundingBox() (min, max mgl32.Vec3)

	// Bake evaluates the modifier stack over a copy of the base geometry.
	// The result (or failure) is cached until the stack changes, so repeated
	// calls do not re-run modifiers.
	//
	// Returns:
	//   - BakedMesh: the evaluated geometry
	//   - error: error if any modifier in the stack fails
	Bake() (BakedMesh, error)

	// InvalidateBake discards any cached bake result, forcing the next Bake
	// to re-evaluate the stack.
	InvalidateBake()
}

var _ Mesh = &meshImpl{}

// NewMesh creates a new Mesh configured with the given options.
//
// Parameters:
//   - options: functional options to configure the mesh
//
// Returns:
//   - Mesh: the newly created mesh
func NewMesh(options ...MeshBuilderOption) Mesh {
	m := &meshImpl{}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *meshImpl) Name() string {
	return m.name
}

func (m *meshImpl) Vertices() []mgl32.Vec3 {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]mgl32.Vec3, len(m.vertices))
	copy(out, m.vertices)
	return out
}

func (m *meshImpl) Polygons() [][]int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return copyPolygons(m.polygons)
}

func (m *meshImpl) VertexCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.vertices)
}

func (m *meshImpl) Modifiers() []Modifier {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Modifier, len(m.modifiers))
	copy(out, m.modifiers)
	return out
}

func (m *meshImpl) AddModifier(mod Modifier) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.modifiers = append(m.modifiers, mod)
	m.bakeDone = false
	m.baked = BakedMesh{}
	m.bakeErr = nil
}

func (m *meshImpl) BoundingBox() (min, max mgl32.Vec3) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.vertices) == 0 {
		return mgl32.Vec3{}, mgl32.Vec3{}
	}
	min = m.vertices[0]
	max = m.vertices[0]
	for _, v := range m.vertices[1:] {
		for i := 0; i < 3; i++ {
			min[i] = math32.Min(min[i], v[i])
			max[i] = math32.Max(max[i], v[i])
		}
	}
	return min, max
}

func (m *meshImpl) Bake() (BakedMesh, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.bakeDone {
		return m.baked, m.bakeErr
	}

	verts := make([]mgl32.Vec3, len(m.vertices))
	copy(verts, m.vertices)
	polys := copyPolygons(m.polygons)

	var err error
	for _, mod := range m.modifiers {
		verts, polys, err = mod.Apply(verts, polys)
		if err != nil {
			err = fmt.Errorf("modifier %q: %w", mod.ModifierName(), err)
			break
		}
	}

	m.bakeDone = true
	if err != nil {
		m.baked = BakedMesh{}
		m.bakeErr = err
		return BakedMesh{}, err
	}

	m.baked = BakedMesh{Vertices: verts, Polygons: polys}
	m.bakeErr = nil
	return m.baked, nil
}

func (m *meshImpl) InvalidateBake() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bakeDone = false
	m.baked = BakedMesh{}
	m.bakeErr = nil
}

func copyPolygons(polys [][]int) [][]int {
	out := make([][]int, len(polys))
	for i, p := range polys {
		cp := make([]int, len(p))
		copy(cp, p)
		out[i] = cp
	}
	return out
}

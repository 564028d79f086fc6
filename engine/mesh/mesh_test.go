package mesh

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testQuad(opts ...MeshBuilderOption) Mesh {
	base := []MeshBuilderOption{
		WithName("Quad"),
		WithVertices([]mgl32.Vec3{
			{-1, -1, 0}, {1, -1, 0}, {1, 1, 0}, {-1, 1, 0},
		}),
		WithPolygons([][]int{{0, 1, 2, 3}}),
	}
	return NewMesh(append(base, opts...)...)
}

func TestBoundingBox(t *testing.T) {
	m := NewMesh(WithVertices([]mgl32.Vec3{
		{1, -2, 3}, {-4, 5, 0}, {2, 2, -1},
	}))

	min, max := m.BoundingBox()
	assert.Equal(t, mgl32.Vec3{-4, -2, -1}, min)
	assert.Equal(t, mgl32.Vec3{2, 5, 3}, max)
}

func TestBoundingBoxEmptyMesh(t *testing.T) {
	min, max := NewMesh().BoundingBox()
	assert.Equal(t, mgl32.Vec3{}, min)
	assert.Equal(t, mgl32.Vec3{}, max)
}

func TestBakeWithoutModifiers(t *testing.T) {
	baked, err := testQuad().Bake()
	require.NoError(t, err)
	assert.Len(t, baked.Vertices, 4)
	assert.Equal(t, [][]int{{0, 1, 2, 3}}, baked.Polygons)
}

func TestBakeDoesNotMutateBaseGeometry(t *testing.T) {
	m := testQuad(WithModifiers(&MirrorModifier{Axis: 0}))

	_, err := m.Bake()
	require.NoError(t, err)

	// The mirror doubles the baked geometry but the base stays untouched.
	assert.Equal(t, 4, m.VertexCount())
	assert.Len(t, m.Polygons(), 1)
}

func TestMirrorModifier(t *testing.T) {
	m := testQuad(WithModifiers(&MirrorModifier{Axis: 1}))

	baked, err := m.Bake()
	require.NoError(t, err)
	assert.Len(t, baked.Vertices, 8)
	assert.Len(t, baked.Polygons, 2)
	// Mirrored copy negates the chosen axis.
	assert.Equal(t, -baked.Vertices[0][1], baked.Vertices[4][1])
}

func TestMirrorModifierRejectsBadAxis(t *testing.T) {
	m := testQuad(WithModifiers(&MirrorModifier{Axis: 3}))

	_, err := m.Bake()
	assert.Error(t, err)
}

func TestSmoothModifierRejectsBadIterations(t *testing.T) {
	m := testQuad(WithModifiers(&SmoothModifier{Iterations: 0, Factor: 0.5}))

	_, err := m.Bake()
	assert.Error(t, err)
}

type countingModifier struct {
	calls int
	err   error
}

func (c *countingModifier) ModifierName() string { return "Counting" }

func (c *countingModifier) Apply(v []mgl32.Vec3, p [][]int) ([]mgl32.Vec3, [][]int, error) {
	c.calls++
	return v, p, c.err
}

func TestBakeCachesResult(t *testing.T) {
	mod := &countingModifier{}
	m := testQuad(WithModifiers(mod))

	_, err := m.Bake()
	require.NoError(t, err)
	_, err = m.Bake()
	require.NoError(t, err)
	assert.Equal(t, 1, mod.calls)
}

func TestBakeCachesFailure(t *testing.T) {
	mod := &countingModifier{err: errors.New("boom")}
	m := testQuad(WithModifiers(mod))

	_, err := m.Bake()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `modifier "Counting"`)

	_, err = m.Bake()
	require.Error(t, err)
	assert.Equal(t, 1, mod.calls)
}

func TestInvalidateBakeForcesReevaluation(t *testing.T) {
	mod := &countingModifier{}
	m := testQuad(WithModifiers(mod))

	_, _ = m.Bake()
	m.InvalidateBake()
	_, _ = m.Bake()
	assert.Equal(t, 2, mod.calls)
}

func TestAddModifierInvalidatesCache(t *testing.T) {
	mod := &countingModifier{}
	m := testQuad(WithModifiers(mod))

	_, _ = m.Bake()
	m.AddModifier(&countingModifier{})
	_, _ = m.Bake()
	assert.Equal(t, 2, mod.calls)
}

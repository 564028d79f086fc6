package mesh

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Modifier is a procedural geometry operation applied during Bake. Modifiers
// receive their own copies of the vertex and polygon data and may return new
// slices; a returned error aborts the bake.
type Modifier interface {
	// ModifierName returns a short identifier used in bake error messages.
	//
	// Returns:
	//   - string: the modifier name
	ModifierName() string

	// Apply runs the modifier over the given geometry.
	//
	// Parameters:
	//   - vertices: evaluated vertex positions so far
	//   - polygons: evaluated polygon index lists so far
	//
	// Returns:
	//   - []mgl32.Vec3: the resulting vertices
	//   - [][]int: the resulting polygons
	//   - error: error if the modifier cannot evaluate
	Apply(vertices []mgl32.Vec3, polygons [][]int) ([]mgl32.Vec3, [][]int, error)
}

// MirrorModifier duplicates the geometry across one axis, negating that
// component of every vertex and reversing the winding of the mirrored faces.
type MirrorModifier struct {
	// Axis selects the mirror plane normal: 0 = X, 1 = Y, 2 = Z.
	Axis int
}

// ModifierName returns "mirror".
//
// Returns:
//   - string: the modifier name
func (m MirrorModifier) ModifierName() string {
	return "mirror"
}

// Apply appends a mirrored copy of the geometry.
//
// Parameters:
//   - vertices: evaluated vertex positions so far
//   - polygons: evaluated polygon index lists so far
//
// Returns:
//   - []mgl32.Vec3: original plus mirrored vertices
//   - [][]int: original plus mirrored (rewound) polygons
//   - error: error if Axis is out of range
func (m MirrorModifier) Apply(vertices []mgl32.Vec3, polygons [][]int) ([]mgl32.Vec3, [][]int, error) {
	if m.Axis < 0 || m.Axis > 2 {
		return nil, nil, fmt.Errorf("mirror axis %d out of range [0, 2]", m.Axis)
	}

	base := len(vertices)
	out := make([]mgl32.Vec3, base, base*2)
	copy(out, vertices)
	for _, v := range vertices {
		mv := v
		mv[m.Axis] = -mv[m.Axis]
		out = append(out, mv)
	}

	outPolys := make([][]int, len(polygons), len(polygons)*2)
	copy(outPolys, polygons)
	for _, p := range polygons {
		// Reversed winding keeps the mirrored faces front-facing.
		mp := make([]int, len(p))
		for i, idx := range p {
			mp[len(p)-1-i] = idx + base
		}
		outPolys = append(outPolys, mp)
	}

	return out, outPolys, nil
}

// SmoothModifier relaxes vertex positions toward the average of their
// polygon neighbors, the simple Laplacian scheme.
type SmoothModifier struct {
	// Iterations is the number of smoothing passes (must be >= 1).
	Iterations int

	// Factor is the blend amount per pass, nominally in [0, 1].
	Factor float32
}

// ModifierName returns "smooth".
//
// Returns:
//   - string: the modifier name
func (s SmoothModifier) ModifierName() string {
	return "smooth"
}

// Apply runs the configured number of smoothing passes.
//
// Parameters:
//   - vertices: evaluated vertex positions so far
//   - polygons: evaluated polygon index lists so far
//
// Returns:
//   - []mgl32.Vec3: the smoothed vertices
//   - [][]int: the polygons, unchanged
//   - error: error if Iterations < 1 or a polygon references a missing vertex
func (s SmoothModifier) Apply(vertices []mgl32.Vec3, polygons [][]int) ([]mgl32.Vec3, [][]int, error) {
	if s.Iterations < 1 {
		return nil, nil, fmt.Errorf("smooth iterations %d must be >= 1", s.Iterations)
	}

	// Adjacency from polygon edges.
	neighbors := make(map[int][]int, len(vertices))
	for _, p := range polygons {
		for i, idx := range p {
			if idx < 0 || idx >= len(vertices) {
				return nil, nil, fmt.Errorf("polygon index %d out of range (%d vertices)", idx, len(vertices))
			}
			next := p[(i+1)%len(p)]
			neighbors[idx] = append(neighbors[idx], next)
			neighbors[next] = append(neighbors[next], idx)
		}
	}

	cur := make([]mgl32.Vec3, len(vertices))
	copy(cur, vertices)
	next := make([]mgl32.Vec3, len(vertices))

	for pass := 0; pass < s.Iterations; pass++ {
		for i := range cur {
			adj := neighbors[i]
			if len(adj) == 0 {
				next[i] = cur[i]
				continue
			}
			var sum mgl32.Vec3
			for _, n := range adj {
				sum = sum.Add(cur[n])
			}
			avg := sum.Mul(1.0 / float32(len(adj)))
			next[i] = cur[i].Add(avg.Sub(cur[i]).Mul(s.Factor))
		}
		cur, next = next, cur
	}

	return cur, polygons, nil
}

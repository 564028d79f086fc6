package export

import (
	"github.com/go-gl/mathgl/mgl32"
)

// ConvertVec maps a vector from the authoring tool's Z-up convention to the
// renderer's Y-up convention: (x, y, z) -> (x, z, -y). It applies uniformly
// to positions, directions, and bounding-box corners, and every spatial
// quantity in the output document must pass through it exactly once.
//
// Parameters:
//   - v: the authoring-space vector
//
// Returns:
//   - mgl32.Vec3: the renderer-space vector
func ConvertVec(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{v[0], v[2], -v[1]}
}

// convertArray is ConvertVec with the flat array form used by the document types.
func convertArray(v mgl32.Vec3) [3]float32 {
	c := ConvertVec(v)
	return [3]float32{c[0], c[1], c[2]}
}

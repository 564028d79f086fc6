package export

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestConvertVecBasis(t *testing.T) {
	// Host up (+Z) becomes renderer up (+Y).
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, ConvertVec(mgl32.Vec3{0, 0, 1}))
	// Host forward (+Y) becomes renderer -Z.
	assert.Equal(t, mgl32.Vec3{0, 0, -1}, ConvertVec(mgl32.Vec3{0, 1, 0}))
	// X is unchanged.
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, ConvertVec(mgl32.Vec3{1, 0, 0}))
}

func TestConvertVecRoundValues(t *testing.T) {
	got := ConvertVec(mgl32.Vec3{1, 2, 3})
	assert.Equal(t, mgl32.Vec3{1, 3, -2}, got)
}

func TestConvertVecPreservesLength(t *testing.T) {
	v := mgl32.Vec3{3, -4, 12}
	assert.InDelta(t, v.Len(), ConvertVec(v).Len(), 1e-6)
}

package common

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestDegreesRadiansRoundTrip(t *testing.T) {
	assert.InDelta(t, float32(180), Degrees(math32.Pi), 1e-4)
	assert.InDelta(t, math32.Pi/2, Radians(90), 1e-6)
	assert.InDelta(t, float32(45), Degrees(Radians(45)), 1e-4)
}

func TestModelMatrixTranslation(t *testing.T) {
	m := ModelMatrix(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{}, mgl32.Vec3{1, 1, 1})

	p := TransformPoint(m, mgl32.Vec3{0, 0, 0})
	assert.InDelta(t, float32(1), p[0], 1e-5)
	assert.InDelta(t, float32(2), p[1], 1e-5)
	assert.InDelta(t, float32(3), p[2], 1e-5)
}

func TestModelMatrixScaleBeforeTranslation(t *testing.T) {
	m := ModelMatrix(mgl32.Vec3{10, 0, 0}, mgl32.Vec3{}, mgl32.Vec3{2, 2, 2})

	p := TransformPoint(m, mgl32.Vec3{1, 0, 0})
	assert.InDelta(t, float32(12), p[0], 1e-5)
}

func TestRotationQuatIdentity(t *testing.T) {
	q := RotationQuat(0, 0, 0)
	v := q.Rotate(mgl32.Vec3{0, 0, -1})
	assert.InDelta(t, float32(-1), v[2], 1e-6)
}

func TestRotationQuatAboutX(t *testing.T) {
	// Rotating the forward axis 90 degrees about X points it up +Y.
	q := RotationQuat(math32.Pi/2, 0, 0)
	v := q.Rotate(mgl32.Vec3{0, 0, -1})
	assert.InDelta(t, float32(0), v[0], 1e-5)
	assert.InDelta(t, float32(1), v[1], 1e-5)
	assert.InDelta(t, float32(0), v[2], 1e-5)
}

func TestRenderSettingsAspect(t *testing.T) {
	s := RenderSettings{ResolutionX: 1920, ResolutionY: 1080}
	assert.InDelta(t, float32(16.0/9.0), s.Aspect(), 1e-5)

	assert.Zero(t, RenderSettings{ResolutionX: 100}.Aspect())
}

package scene_object

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/Shinzef/BlenderRayTracer/engine/camera"
	"github.com/Shinzef/BlenderRayTracer/engine/light"
	"github.com/Shinzef/BlenderRayTracer/engine/mesh"
)

func TestTypeFollowsAttachedData(t *testing.T) {
	assert.Equal(t, ObjectTypeEmpty, NewSceneObject().Type())

	assert.Equal(t, ObjectTypeMesh, NewSceneObject(
		WithMesh(mesh.NewMesh()),
	).Type())

	assert.Equal(t, ObjectTypeLight, NewSceneObject(
		WithLightData(light.NewLight(light.LightTypePoint)),
	).Type())

	assert.Equal(t, ObjectTypeCamera, NewSceneObject(
		WithCameraData(camera.NewCamera()),
	).Type())
}

func TestDefaultTransform(t *testing.T) {
	obj := NewSceneObject()

	pos, rot, scale := obj.TransformData()
	assert.Equal(t, [3]float32{0, 0, 0}, pos)
	assert.Equal(t, [3]float32{0, 0, 0}, rot)
	assert.Equal(t, [3]float32{1, 1, 1}, scale)
}

func TestWorldTranslation(t *testing.T) {
	obj := NewSceneObject(WithPosition(3, -1, 7))

	w := obj.WorldTranslation()
	assert.InDelta(t, float32(3), w[0], 1e-5)
	assert.InDelta(t, float32(-1), w[1], 1e-5)
	assert.InDelta(t, float32(7), w[2], 1e-5)
}

func TestWorldMatrixAppliesScale(t *testing.T) {
	obj := NewSceneObject(
		WithPosition(0, 0, 1),
		WithScale(2, 3, 4),
	)

	m := obj.WorldMatrix()
	v := m.Mul4x1(mgl32.Vec4{1, 1, 1, 1})
	assert.InDelta(t, float32(2), v[0], 1e-5)
	assert.InDelta(t, float32(3), v[1], 1e-5)
	assert.InDelta(t, float32(5), v[2], 1e-5)
}

func TestSettersReplaceDataBlocks(t *testing.T) {
	obj := NewSceneObject(WithMesh(mesh.NewMesh()))
	assert.Equal(t, ObjectTypeMesh, obj.Type())

	obj.SetMesh(nil)
	assert.Equal(t, ObjectTypeEmpty, obj.Type())

	obj.SetLightData(light.NewLight(light.LightTypeSun))
	assert.Equal(t, ObjectTypeLight, obj.Type())
}

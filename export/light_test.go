package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shinzef/BlenderRayTracer/engine/light"
	"github.com/Shinzef/BlenderRayTracer/engine/scene_object"
)

func TestExportPointLight(t *testing.T) {
	obj := scene_object.NewSceneObject(
		scene_object.WithName("Lamp"),
		scene_object.WithPosition(0, 5, 0),
		scene_object.WithLightData(light.NewLight(light.LightTypePoint,
			light.WithEnergy(200),
			light.WithColor(1, 0.5, 0.25),
		)),
	)

	out, ok := ExportLight(obj)
	require.True(t, ok)
	pl, ok := out.(PointLight)
	require.True(t, ok)

	assert.Equal(t, LightPoint, pl.Type)
	// Photometric energy 200 scales down to intensity 2.
	assert.Equal(t, float32(2), pl.Intensity)
	// Host (0,5,0) lands at renderer (0,0,-5).
	assert.Equal(t, [3]float32{0, 0, -5}, pl.Position)
	// Color is not a spatial quantity and passes through untouched.
	assert.Equal(t, [3]float32{1, 0.5, 0.25}, pl.Color)
}

func TestExportSunLight(t *testing.T) {
	// Unrotated sun points along local -Z, renderer (0,-1,0): straight down.
	obj := scene_object.NewSceneObject(
		scene_object.WithName("Sun"),
		scene_object.WithLightData(light.NewLight(light.LightTypeSun,
			light.WithEnergy(100),
		)),
	)

	out, ok := ExportLight(obj)
	require.True(t, ok)
	dl, ok := out.(DirectionalLight)
	require.True(t, ok)

	assert.Equal(t, LightDirectional, dl.Type)
	assert.Equal(t, float32(1), dl.Intensity)
	assert.InDelta(t, float32(0), dl.Direction[0], 1e-5)
	assert.InDelta(t, float32(-1), dl.Direction[1], 1e-5)
	assert.InDelta(t, float32(0), dl.Direction[2], 1e-5)
}

func TestExportLightSkipsUnsupportedTypes(t *testing.T) {
	for _, lt := range []light.LightType{light.LightTypeSpot, light.LightTypeArea} {
		obj := scene_object.NewSceneObject(
			scene_object.WithLightData(light.NewLight(lt)),
		)

		_, ok := ExportLight(obj)
		assert.False(t, ok, "light type %d", lt)
	}
}

func TestExportLightSkipsObjectWithoutData(t *testing.T) {
	obj := scene_object.NewSceneObject(scene_object.WithName("NotALight"))

	_, ok := ExportLight(obj)
	assert.False(t, ok)
}

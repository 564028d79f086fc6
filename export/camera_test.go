package export

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Shinzef/BlenderRayTracer/common"
	"github.com/Shinzef/BlenderRayTracer/engine/camera"
	"github.com/Shinzef/BlenderRayTracer/engine/scene_object"
)

func TestDeriveCameraDefaultWhenMissing(t *testing.T) {
	settings := common.RenderSettings{ResolutionX: 800, ResolutionY: 600}

	cam := DeriveCamera(nil, settings, nil)

	assert.Equal(t, [3]float32{0, 0, 5}, cam.Position)
	assert.Equal(t, [3]float32{0, 0, 0}, cam.LookAt)
	assert.Equal(t, [3]float32{0, 1, 0}, cam.Up)
	assert.Equal(t, float32(45), cam.FOV)
	assert.InDelta(t, float32(800.0/600.0), cam.Aspect, 1e-5)
	assert.Equal(t, [2]int{800, 600}, cam.Resolution)
	assert.Equal(t, float32(0), cam.Aperture)
	assert.Equal(t, float32(10), cam.FocusDist)
	assert.Equal(t, "perspective", cam.Type)
}

func TestDeriveCameraDefaultWhenNoLensData(t *testing.T) {
	obj := scene_object.NewSceneObject(scene_object.WithName("NotACamera"))

	cam := DeriveCamera(obj, common.DefaultRenderSettings(), nil)
	assert.Equal(t, [3]float32{0, 0, 5}, cam.Position)
	assert.Equal(t, float32(45), cam.FOV)
}

func TestDeriveCameraLookAtDistance(t *testing.T) {
	// An unrotated camera looks down host -Z, so the look-at point sits 10
	// units below the position.
	obj := scene_object.NewSceneObject(
		scene_object.WithName("Camera"),
		scene_object.WithPosition(0, 0, 12),
		scene_object.WithCameraData(camera.NewCamera()),
	)

	cam := DeriveCamera(obj, common.DefaultRenderSettings(), nil)

	// Host (0,0,12) converts to renderer (0,12,0).
	assert.InDelta(t, float32(12), cam.Position[1], 1e-5)
	// Host (0,0,2) converts to renderer (0,2,0).
	assert.InDelta(t, float32(2), cam.LookAt[1], 1e-5)
	assert.InDelta(t, float32(0), cam.LookAt[0], 1e-5)
	assert.InDelta(t, float32(0), cam.LookAt[2], 1e-5)
}

func TestDeriveCameraFOVDegrees(t *testing.T) {
	obj := scene_object.NewSceneObject(
		scene_object.WithCameraData(camera.NewCamera(
			camera.WithAngle(common.Radians(60)),
		)),
	)

	cam := DeriveCamera(obj, common.DefaultRenderSettings(), nil)
	assert.InDelta(t, float32(60), cam.FOV, 1e-4)
}

func TestDeriveCameraDOF(t *testing.T) {
	obj := scene_object.NewSceneObject(
		scene_object.WithCameraData(camera.NewCamera(
			camera.WithDOF(4.0, 7.5),
		)),
	)

	cam := DeriveCamera(obj, common.DefaultRenderSettings(), nil)

	// f/4 maps onto the renderer's aperture scale as 4/16.
	assert.InDelta(t, float32(0.25), cam.Aperture, 1e-5)
	assert.Equal(t, float32(7.5), cam.FocusDist)
}

func TestDeriveCameraFocusEstimateFromActiveObject(t *testing.T) {
	camObj := scene_object.NewSceneObject(
		scene_object.WithPosition(0, 0, 3),
		scene_object.WithCameraData(camera.NewCamera()),
	)
	target := scene_object.NewSceneObject(
		scene_object.WithPosition(4, 0, 0),
	)

	cam := DeriveCamera(camObj, common.DefaultRenderSettings(), target)

	assert.Equal(t, float32(0), cam.Aperture)
	assert.InDelta(t, float32(5), cam.FocusDist, 1e-5)
}

func TestDeriveCameraFocusIgnoresSelfSelection(t *testing.T) {
	camObj := scene_object.NewSceneObject(
		scene_object.WithCameraData(camera.NewCamera()),
	)

	cam := DeriveCamera(camObj, common.DefaultRenderSettings(), camObj)
	assert.Equal(t, float32(10), cam.FocusDist)
}

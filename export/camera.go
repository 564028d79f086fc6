package export

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Shinzef/BlenderRayTracer/common"
	"github.com/Shinzef/BlenderRayTracer/engine/scene_object"
)

const (
	// lookAtDistance is the fixed distance at which the look-at point is
	// reconstructed along the camera's forward axis. The camera model stores
	// an orientation, not an aim point, so the point is synthesized.
	lookAtDistance = 10.0

	// apertureScale maps the authoring tool's f-stop range onto the
	// renderer's [0, ~1] aperture scale.
	apertureScale = 16.0

	// defaultFOV is the field of view in degrees for the synthesized camera.
	defaultFOV = 45.0

	// cameraType is the only projection the output schema supports.
	cameraType = "perspective"
)

// localUp is the camera's up axis before rotation.
var localUp = mgl32.Vec3{0, 1, 0}

// DeriveCamera computes the output camera from the scene's active camera
// object, or synthesizes a fixed default when the scene has none. It is
// total — it always returns a usable camera.
//
// With depth of field enabled, aperture and focus distance come from the
// camera's DOF block. Without it, the aperture is zero and the focus
// distance is estimated from the active (selected) object when one exists
// and differs from the camera — a pinhole camera still benefits from a
// plausible focus distance downstream.
//
// Parameters:
//   - camObj: the active camera object, or nil
//   - settings: the scene's render output settings
//   - activeObj: the currently selected object, or nil
//
// Returns:
//   - Camera: the derived camera parameters
func DeriveCamera(camObj scene_object.SceneObject, settings common.RenderSettings, activeObj scene_object.SceneObject) Camera {
	if camObj == nil || camObj.CameraData() == nil {
		return Camera{
			Position:   [3]float32{0, 0, 5},
			LookAt:     [3]float32{0, 0, 0},
			Up:         [3]float32{0, 1, 0},
			FOV:        defaultFOV,
			Aspect:     settings.Aspect(),
			Resolution: [2]int{settings.ResolutionX, settings.ResolutionY},
			Aperture:   0,
			FocusDist:  lookAtDistance,
			Type:       cameraType,
		}
	}

	data := camObj.CameraData()
	rotation := camObj.WorldRotation()
	position := camObj.WorldTranslation()

	forward := rotation.Rotate(localForward).Normalize()
	up := rotation.Rotate(localUp).Normalize()

	// Reconstructed in authoring space, then converted once like every
	// other spatial quantity.
	lookAt := position.Add(forward.Mul(lookAtDistance))

	aperture := float32(0)
	focusDist := float32(lookAtDistance)
	if data.UseDOF() {
		aperture = data.FStop() / apertureScale
		focusDist = data.FocusDistance()
	} else if activeObj != nil && activeObj != camObj {
		// Conversion preserves distances, so this estimate is valid in
		// either space.
		focusDist = activeObj.WorldTranslation().Sub(position).Len()
	}

	return Camera{
		Position:   convertArray(position),
		LookAt:     convertArray(lookAt),
		Up:         convertArray(up),
		FOV:        common.Degrees(data.Angle()),
		Aspect:     settings.Aspect(),
		Resolution: [2]int{settings.ResolutionX, settings.ResolutionY},
		Aperture:   aperture,
		FocusDist:  focusDist,
		Type:       cameraType,
	}
}

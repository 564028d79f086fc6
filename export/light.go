package export

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Shinzef/BlenderRayTracer/engine/light"
	"github.com/Shinzef/BlenderRayTracer/engine/scene_object"
)

// lightEnergyScale reconciles the authoring tool's photometric energy units
// with the renderer's radiometric intensity scale.
const lightEnergyScale = 100.0

// localForward is the axis a light or camera points along before rotation.
var localForward = mgl32.Vec3{0, 0, -1}

// ExportLight converts one light object into an output light variant. Point
// and sun sources are supported; every other light type is skipped
// (ok = false) — a deliberate scope limitation, not an error. Color is the
// light's native RGB signal and is not a spatial quantity, so it bypasses
// the coordinate conversion.
//
// Parameters:
//   - obj: the scene object carrying a light data block
//
// Returns:
//   - Light: the converted light
//   - bool: false when the light type is unsupported or no data block is attached
func ExportLight(obj scene_object.SceneObject) (Light, bool) {
	data := obj.LightData()
	if data == nil {
		return nil, false
	}

	intensity := data.Energy() / lightEnergyScale
	color := data.Color()

	switch data.Type() {
	case light.LightTypePoint:
		return PointLight{
			Type:      LightPoint,
			Position:  convertArray(obj.WorldTranslation()),
			Color:     color,
			Intensity: intensity,
		}, true
	case light.LightTypeSun:
		direction := obj.WorldRotation().Rotate(localForward).Normalize()
		return DirectionalLight{
			Type:      LightDirectional,
			Direction: convertArray(direction),
			Color:     color,
			Intensity: intensity,
		}, true
	default:
		// Spot and area lights have no counterpart in the output schema.
		return nil, false
	}
}

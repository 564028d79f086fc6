package light

import (
	"github.com/chewxy/math32"
)

// LightType identifies the kind of light source.
type LightType int

const (
	// LightTypePoint represents a light that emits in all directions from a
	// position. Used for bare bulbs, lanterns, and candle flames.
	LightTypePoint LightType = iota

	// LightTypeSun represents a distant light with no position, only
	// direction. Affects the whole scene uniformly with no attenuation.
	LightTypeSun

	// LightTypeSpot represents a light that emits in a cone from a position
	// along a direction.
	LightTypeSpot

	// LightTypeArea represents a light emitted from a rectangular surface.
	LightTypeArea
)

// lightImpl is the implementation of the Light interface.
type lightImpl struct {
	lightType LightType
	color     [3]float32
	energy    float32
	spotSize  float32 // cone angle in radians, spot lights only
	spotBlend float32 // cone edge softness in [0, 1], spot lights only
}

// Light is the data block of a light source in the authoring scene. Position
// and orientation live on the owning scene object's transform; the data block
// carries only photometric and shape properties.
//
// Energy is expressed in the authoring tool's photometric units (watts); the
// exporter rescales it into the renderer's radiometric intensity.
type Light interface {
	// Type returns the kind of light source.
	//
	// Returns:
	//   - LightType: the light type
	Type() LightType

	// Color returns the RGB color of the light.
	//
	// Returns:
	//   - [3]float32: color as (r, g, b)
	Color() [3]float32

	// Energy returns the light's power in the authoring tool's photometric units.
	//
	// Returns:
	//   - float32: the energy value
	Energy() float32

	// SpotSize returns the full cone angle in radians for spot lights.
	// Meaningless for other light types.
	//
	// Returns:
	//   - float32: the cone angle in radians
	SpotSize() float32

	// SpotBlend returns the cone edge softness in [0, 1] for spot lights.
	// Meaningless for other light types.
	//
	// Returns:
	//   - float32: the blend factor
	SpotBlend() float32

	// SetColor sets the RGB color of the light.
	//
	// Parameters:
	//   - r, g, b: color components
	SetColor(r, g, b float32)

	// SetEnergy sets the light's power in photometric units.
	//
	// Parameters:
	//   - energy: the energy value
	SetEnergy(energy float32)

	// SetSpotCone sets the cone angle and edge softness for spot lights.
	// The angle is specified in degrees and stored in radians.
	//
	// Parameters:
	//   - sizeDeg: full cone angle in degrees
	//   - blend: edge softness in [0, 1]
	SetSpotCone(sizeDeg, blend float32)
}

var _ Light = &lightImpl{}

// NewLight creates a new Light data block of the specified type with sensible
// defaults and any provided options applied.
//
// Parameters:
//   - lightType: the kind of light to create
//   - opts: variadic list of LightBuilderOption functions to configure the light
//
// Returns:
//   - Light: a new Light instance
func NewLight(lightType LightType, opts ...LightBuilderOption) Light {
	l := &lightImpl{
		lightType: lightType,
		color:     [3]float32{1, 1, 1},
		energy:    100.0,
		spotSize:  45.0 * math32.Pi / 180.0,
		spotBlend: 0.15,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *lightImpl) Type() LightType {
	return l.lightType
}

func (l *lightImpl) Color() [3]float32 {
	return l.color
}

func (l *lightImpl) Energy() float32 {
	return l.energy
}

func (l *lightImpl) SpotSize() float32 {
	return l.spotSize
}

func (l *lightImpl) SpotBlend() float32 {
	return l.spotBlend
}

func (l *lightImpl) SetColor(r, g, b float32) {
	l.color = [3]float32{r, g, b}
}

func (l *lightImpl) SetEnergy(energy float32) {
	l.energy = energy
}

func (l *lightImpl) SetSpotCone(sizeDeg, blend float32) {
	l.spotSize = sizeDeg * math32.Pi / 180.0
	l.spotBlend = blend
}

// package common contains common types that are used throughout this project. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

// RenderSettings holds the output parameters of the host's render configuration.
// The exporter reads the resolution to derive the camera aspect ratio; samples
// and bounce depth are carried for the host UI but are not part of the scene
// document schema.
type RenderSettings struct {
	// ResolutionX is the output image width in pixels.
	ResolutionX int

	// ResolutionY is the output image height in pixels.
	ResolutionY int

	// Samples is the number of samples per pixel requested by the host UI.
	Samples int

	// MaxBounces is the maximum ray bounce depth requested by the host UI.
	MaxBounces int
}

// DefaultRenderSettings returns the render settings used when a scene does not
// configure its own.
//
// Returns:
//   - RenderSettings: 1280x720 output, 4 samples, 5 bounces
func DefaultRenderSettings() RenderSettings {
	return RenderSettings{
		ResolutionX: 1280,
		ResolutionY: 720,
		Samples:     4,
		MaxBounces:  5,
	}
}

// Aspect computes the width/height aspect ratio of the configured resolution.
// A zero height yields 0 rather than dividing by zero.
//
// Returns:
//   - float32: the aspect ratio
func (r RenderSettings) Aspect() float32 {
	if r.ResolutionY == 0 {
		return 0
	}
	return float32(r.ResolutionX) / float32(r.ResolutionY)
}

package scene

import (
	"github.com/Shinzef/BlenderRayTracer/common"
)

// SceneBuilderOption is a functional option for configuring a Scene during construction.
type SceneBuilderOption func(*scene)

// WithName sets the scene's identifier.
//
// Parameters:
//   - name: the scene name
//
// Returns:
//   - SceneBuilderOption: functional option to set the name
func WithName(name string) SceneBuilderOption {
	return func(s *scene) {
		s.name = name
	}
}

// WithRenderSettings sets the scene's render output settings.
//
// Parameters:
//   - settings: the render settings to use
//
// Returns:
//   - SceneBuilderOption: functional option to set the render settings
func WithRenderSettings(settings common.RenderSettings) SceneBuilderOption {
	return func(s *scene) {
		s.renderSettings = settings
	}
}

// WithBakeWorkers sets the number of worker goroutines used by BakeAll.
// Defaults to NumCPU-1 (minimum 1).
//
// Parameters:
//   - workers: the worker count (values < 1 are ignored)
//
// Returns:
//   - SceneBuilderOption: functional option to set the bake worker count
func WithBakeWorkers(workers int) SceneBuilderOption {
	return func(s *scene) {
		if workers >= 1 {
			s.bakeWorkers = workers
		}
	}
}

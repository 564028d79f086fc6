// Package addon adapts the export pipeline to a host application: an export
// operator, user-facing panel properties, persisted preferences, and
// registration against the host. No translation logic lives here; the
// operator hands the scene to the export package and reports the result.
package addon

import "sync"

const (
	minSamples = 1
	maxSamples = 100

	minBounces = 1
	maxBounces = 20
)

// properties implements the SceneProperties interface.
type properties struct {
	mu sync.RWMutex

	samples     int
	maxBounces  int
	openBrowser bool
	autoRender  bool
}

var _ SceneProperties = &properties{}

// SceneProperties holds the user-facing render settings exposed on the
// host's scene panel. Setters clamp to the panel's allowed ranges, so a
// stored value is always valid.
type SceneProperties interface {
	// Samples returns the per-pixel sample count.
	//
	// Returns:
	//   - int: samples per pixel, in [1, 100]
	Samples() int

	// SetSamples sets the per-pixel sample count, clamped to [1, 100].
	//
	// Parameters:
	//   - samples: the desired sample count
	SetSamples(samples int)

	// MaxBounces returns the ray recursion depth.
	//
	// Returns:
	//   - int: maximum bounces, in [1, 20]
	MaxBounces() int

	// SetMaxBounces sets the ray recursion depth, clamped to [1, 20].
	//
	// Parameters:
	//   - bounces: the desired bounce limit
	SetMaxBounces(bounces int)

	// OpenBrowser reports whether the file browser opens after export.
	//
	// Returns:
	//   - bool: true if the browser should open
	OpenBrowser() bool

	// SetOpenBrowser sets whether the file browser opens after export.
	//
	// Parameters:
	//   - open: true to open the browser
	SetOpenBrowser(open bool)

	// AutoRender reports whether the renderer launches after export.
	//
	// Returns:
	//   - bool: true if the renderer should launch
	AutoRender() bool

	// SetAutoRender sets whether the renderer launches after export.
	//
	// Parameters:
	//   - auto: true to launch the renderer
	SetAutoRender(auto bool)
}

// NewSceneProperties creates scene properties with the panel defaults:
// 4 samples, 5 bounces, browser and auto-render on.
//
// Returns:
//   - SceneProperties: the newly created properties
func NewSceneProperties() SceneProperties {
	return &properties{
		samples:     4,
		maxBounces:  5,
		openBrowser: true,
		autoRender:  true,
	}
}

func (p *properties) Samples() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.samples
}

func (p *properties) SetSamples(samples int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.samples = clamp(samples, minSamples, maxSamples)
}

func (p *properties) MaxBounces() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.maxBounces
}

func (p *properties) SetMaxBounces(bounces int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.maxBounces = clamp(bounces, minBounces, maxBounces)
}

func (p *properties) OpenBrowser() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.openBrowser
}

func (p *properties) SetOpenBrowser(open bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.openBrowser = open
}

func (p *properties) AutoRender() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.autoRender
}

func (p *properties) SetAutoRender(auto bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.autoRender = auto
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

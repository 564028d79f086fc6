package camera

import (
	"sync"
)

// cameraImpl is the implementation of the Camera interface.
type cameraImpl struct {
	mu *sync.Mutex

	angle float32
	near  float32
	far   float32

	useDOF        bool
	fstop         float32
	focusDistance float32
}

// Camera is the lens data block of a camera node. Position and orientation
// live on the owning scene object's transform; the data block carries the
// field of view, clip planes, and depth-of-field settings.
// Thread-safe for concurrent access.
type Camera interface {
	// Angle returns the horizontal field of view in radians.
	//
	// Returns:
	//   - float32: field of view in radians
	Angle() float32

	// Near returns the near clipping plane distance.
	//
	// Returns:
	//   - float32: near plane distance
	Near() float32

	// Far returns the far clipping plane distance.
	//
	// Returns:
	//   - float32: far plane distance
	Far() float32

	// UseDOF reports whether depth of field is enabled for this camera.
	//
	// Returns:
	//   - bool: true if DOF is enabled
	UseDOF() bool

	// FStop returns the aperture f-stop for depth of field.
	// Meaningless when DOF is disabled.
	//
	// Returns:
	//   - float32: the f-stop value
	FStop() float32

	// FocusDistance returns the focus distance for depth of field.
	// Meaningless when DOF is disabled.
	//
	// Returns:
	//   - float32: the focus distance
	FocusDistance() float32

	// SetAngle sets the horizontal field of view in radians.
	//
	// Parameters:
	//   - angle: field of view in radians
	SetAngle(angle float32)

	// SetNear sets the near clipping plane distance.
	//
	// Parameters:
	//   - near: near plane distance
	SetNear(near float32)

	// SetFar sets the far clipping plane distance.
	//
	// Parameters:
	//   - far: far plane distance
	SetFar(far float32)

	// SetDOF enables or disables depth of field and sets its parameters.
	//
	// Parameters:
	//   - enabled: true to enable DOF
	//   - fstop: the aperture f-stop
	//   - focusDistance: the focus distance
	SetDOF(enabled bool, fstop, focusDistance float32)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera lens data block with sensible defaults and
// any provided options applied. The default is a 45-degree lens with DOF
// disabled.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:            &sync.Mutex{},
		angle:         0.7853982, // 45 degrees
		near:          0.1,
		far:           1000,
		fstop:         2.8,
		focusDistance: 10,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *cameraImpl) Angle() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.angle
}

func (c *cameraImpl) Near() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *cameraImpl) Far() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *cameraImpl) UseDOF() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.useDOF
}

func (c *cameraImpl) FStop() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fstop
}

func (c *cameraImpl) FocusDistance() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.focusDistance
}

func (c *cameraImpl) SetAngle(angle float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.angle = angle
}

func (c *cameraImpl) SetNear(near float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.near = near
}

func (c *cameraImpl) SetFar(far float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.far = far
}

func (c *cameraImpl) SetDOF(enabled bool, fstop, focusDistance float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.useDOF = enabled
	c.fstop = fstop
	c.focusDistance = focusDistance
}

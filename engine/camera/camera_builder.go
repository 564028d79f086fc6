package camera

// CameraBuilderOption is a functional option for configuring a Camera during construction.
type CameraBuilderOption func(*cameraImpl)

// WithAngle sets the camera's horizontal field of view in radians.
//
// Parameters:
//   - angle: field of view in radians
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's field of view
func WithAngle(angle float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.angle = angle
	}
}

// WithNear sets the near clipping plane distance.
//
// Parameters:
//   - near: near plane distance
//
// Returns:
//   - CameraBuilderOption: a function that sets the near plane
func WithNear(near float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.near = near
	}
}

// WithFar sets the far clipping plane distance.
//
// Parameters:
//   - far: far plane distance
//
// Returns:
//   - CameraBuilderOption: a function that sets the far plane
func WithFar(far float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.far = far
	}
}

// WithDOF enables depth of field with the given aperture and focus distance.
//
// Parameters:
//   - fstop: the aperture f-stop
//   - focusDistance: the focus distance
//
// Returns:
//   - CameraBuilderOption: a function that enables and configures DOF
func WithDOF(fstop, focusDistance float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.useDOF = true
		c.fstop = fstop
		c.focusDistance = focusDistance
	}
}

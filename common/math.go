package common

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// RotationQuat builds an orientation quaternion from Euler angles in radians.
// The rotation order is Y * X * Z (yaw-pitch-roll), matching ModelMatrix.
//
// Parameters:
//   - rx, ry, rz: rotation angles in radians around each axis
//
// Returns:
//   - mgl32.Quat: the combined orientation
func RotationQuat(rx, ry, rz float32) mgl32.Quat {
	return mgl32.AnglesToQuat(ry, rx, rz, mgl32.YXZ)
}

// ModelMatrix constructs a 4x4 world matrix from position, Euler rotation, and scale.
// The composition is T * R * S with rotation order Y * X * Z.
//
// Parameters:
//   - pos: translation in world space (x, y, z)
//   - rot: rotation angles in radians around each axis (rx, ry, rz)
//   - scale: scale factors along each axis (sx, sy, sz)
//
// Returns:
//   - mgl32.Mat4: the composed world matrix
func ModelMatrix(pos, rot, scale [3]float32) mgl32.Mat4 {
	t := mgl32.Translate3D(pos[0], pos[1], pos[2])
	r := RotationQuat(rot[0], rot[1], rot[2]).Mat4()
	s := mgl32.Scale3D(scale[0], scale[1], scale[2])
	return t.Mul4(r.Mul4(s))
}

// TransformPoint applies a 4x4 transform to a position (w = 1).
//
// Parameters:
//   - m: the transform matrix
//   - v: the position to transform
//
// Returns:
//   - mgl32.Vec3: the transformed position
func TransformPoint(m mgl32.Mat4, v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.TransformCoordinate(v, m)
}

// Degrees converts an angle from radians to degrees.
//
// Parameters:
//   - rad: the angle in radians
//
// Returns:
//   - float32: the angle in degrees
func Degrees(rad float32) float32 {
	return rad * 180.0 / math32.Pi
}

// Radians converts an angle from degrees to radians.
//
// Parameters:
//   - deg: the angle in degrees
//
// Returns:
//   - float32: the angle in radians
func Radians(deg float32) float32 {
	return deg * math32.Pi / 180.0
}

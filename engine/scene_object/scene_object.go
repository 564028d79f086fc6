package scene_object

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Shinzef/BlenderRayTracer/common"
	"github.com/Shinzef/BlenderRayTracer/engine/camera"
	"github.com/Shinzef/BlenderRayTracer/engine/light"
	"github.com/Shinzef/BlenderRayTracer/engine/material"
	"github.com/Shinzef/BlenderRayTracer/engine/mesh"
)

// ObjectType identifies the kind of data block attached to a scene object.
type ObjectType int

const (
	// ObjectTypeMesh is an object carrying mesh geometry.
	ObjectTypeMesh ObjectType = iota

	// ObjectTypeLight is an object carrying a light data block.
	ObjectTypeLight

	// ObjectTypeCamera is an object carrying a camera lens data block.
	ObjectTypeCamera

	// ObjectTypeEmpty is an object with no data block (a transform-only node).
	ObjectTypeEmpty
)

// sceneObject is the implementation of the SceneObject interface.
type sceneObject struct {
	mu *sync.RWMutex

	id   uint64
	name string

	position [3]float32
	rotation [3]float32
	scale    [3]float32

	msh            mesh.Mesh
	lightData      light.Light
	cameraData     camera.Camera
	activeMaterial material.Material
}

// SceneObject is a single entity in the authoring scene: a display name, a
// transform, and at most one attached data block (mesh, light, or camera).
// The object type is derived from whichever data block is attached.
// Thread-safe for concurrent access.
type SceneObject interface {
	// ID returns the object's unique identifier.
	//
	// Returns:
	//   - uint64: the object ID
	ID() uint64

	// Name returns the object's display name.
	//
	// Returns:
	//   - string: the display name
	Name() string

	// Type returns the object's kind, derived from the attached data block.
	//
	// Returns:
	//   - ObjectType: mesh, light, camera, or empty
	Type() ObjectType

	// Position returns the object's position.
	//
	// Returns:
	//   - x, y, z: position components
	Position() (x, y, z float32)

	// Rotation returns the object's Euler rotation in radians.
	//
	// Returns:
	//   - rx, ry, rz: rotation angles
	Rotation() (rx, ry, rz float32)

	// Scale returns the object's scale factors.
	//
	// Returns:
	//   - sx, sy, sz: scale components
	Scale() (sx, sy, sz float32)

	// TransformData reads all transform data in a single call.
	//
	// Returns:
	//   - pos: position as [3]float32 (x, y, z)
	//   - rot: rotation as [3]float32 (rx, ry, rz)
	//   - scale: scale as [3]float32 (sx, sy, sz)
	TransformData() (pos, rot, scale [3]float32)

	// WorldMatrix composes the object's full world transform (T * R * S,
	// rotation order Y * X * Z).
	//
	// Returns:
	//   - mgl32.Mat4: the world matrix
	WorldMatrix() mgl32.Mat4

	// WorldTranslation returns the object's world-space origin.
	//
	// Returns:
	//   - mgl32.Vec3: the translation component of the world matrix
	WorldTranslation() mgl32.Vec3

	// WorldRotation returns the object's world-space orientation.
	//
	// Returns:
	//   - mgl32.Quat: the orientation quaternion
	WorldRotation() mgl32.Quat

	// Mesh returns the attached mesh geometry, or nil if none is set.
	//
	// Returns:
	//   - mesh.Mesh: the attached mesh or nil
	Mesh() mesh.Mesh

	// LightData returns the attached light data block, or nil if none is set.
	//
	// Returns:
	//   - light.Light: the attached light or nil
	LightData() light.Light

	// CameraData returns the attached camera lens data block, or nil if none is set.
	//
	// Returns:
	//   - camera.Camera: the attached camera or nil
	CameraData() camera.Camera

	// ActiveMaterial returns the shading description assigned to this object,
	// or nil when no material is assigned.
	//
	// Returns:
	//   - material.Material: the assigned material or nil
	ActiveMaterial() material.Material

	// SetID sets the object's unique identifier.
	//
	// Parameters:
	//   - id: the ID to assign
	SetID(id uint64)

	// SetName sets the object's display name.
	//
	// Parameters:
	//   - name: the display name
	SetName(name string)

	// SetPosition sets the object's position.
	//
	// Parameters:
	//   - x, y, z: new position components
	SetPosition(x, y, z float32)

	// SetRotation sets the object's Euler rotation in radians.
	//
	// Parameters:
	//   - rx, ry, rz: new rotation angles
	SetRotation(rx, ry, rz float32)

	// SetScale sets the object's scale factors.
	//
	// Parameters:
	//   - sx, sy, sz: new scale factors
	SetScale(sx, sy, sz float32)

	// SetMesh attaches mesh geometry to this object. Pass nil to detach.
	//
	// Parameters:
	//   - m: the mesh to attach, or nil
	SetMesh(m mesh.Mesh)

	// SetLightData attaches a light data block to this object. Pass nil to detach.
	//
	// Parameters:
	//   - l: the light to attach, or nil
	SetLightData(l light.Light)

	// SetCameraData attaches a camera lens data block to this object. Pass nil to detach.
	//
	// Parameters:
	//   - c: the camera to attach, or nil
	SetCameraData(c camera.Camera)

	// SetActiveMaterial assigns a shading description to this object.
	// Pass nil to clear the assignment.
	//
	// Parameters:
	//   - m: the material to assign, or nil
	SetActiveMaterial(m material.Material)
}

var _ SceneObject = &sceneObject{}

// NewSceneObject creates a new SceneObject configured with the given options.
//
// Parameters:
//   - options: functional options to configure the object
//
// Returns:
//   - SceneObject: the newly created object
func NewSceneObject(options ...SceneObjectBuilderOption) SceneObject {
	obj := &sceneObject{
		mu:    &sync.RWMutex{},
		scale: [3]float32{1, 1, 1},
	}
	for _, option := range options {
		option(obj)
	}
	return obj
}

func (s *sceneObject) ID() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.id
}

func (s *sceneObject) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *sceneObject) Type() ObjectType {
	s.mu.RLock()
	defer s.mu.RUnlock()
	switch {
	case s.msh != nil:
		return ObjectTypeMesh
	case s.lightData != nil:
		return ObjectTypeLight
	case s.cameraData != nil:
		return ObjectTypeCamera
	default:
		return ObjectTypeEmpty
	}
}

func (s *sceneObject) Position() (x, y, z float32) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.position[0], s.position[1], s.position[2]
}

func (s *sceneObject) Rotation() (rx, ry, rz float32) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rotation[0], s.rotation[1], s.rotation[2]
}

func (s *sceneObject) Scale() (sx, sy, sz float32) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scale[0], s.scale[1], s.scale[2]
}

func (s *sceneObject) TransformData() (pos, rot, scale [3]float32) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.position, s.rotation, s.scale
}

func (s *sceneObject) WorldMatrix() mgl32.Mat4 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return common.ModelMatrix(s.position, s.rotation, s.scale)
}

func (s *sceneObject) WorldTranslation() mgl32.Vec3 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return mgl32.Vec3{s.position[0], s.position[1], s.position[2]}
}

func (s *sceneObject) WorldRotation() mgl32.Quat {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return common.RotationQuat(s.rotation[0], s.rotation[1], s.rotation[2])
}

func (s *sceneObject) Mesh() mesh.Mesh {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.msh
}

func (s *sceneObject) LightData() light.Light {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lightData
}

func (s *sceneObject) CameraData() camera.Camera {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cameraData
}

func (s *sceneObject) ActiveMaterial() material.Material {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeMaterial
}

func (s *sceneObject) SetID(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.id = id
}

func (s *sceneObject) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *sceneObject) SetPosition(x, y, z float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.position = [3]float32{x, y, z}
}

func (s *sceneObject) SetRotation(rx, ry, rz float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rotation = [3]float32{rx, ry, rz}
}

func (s *sceneObject) SetScale(sx, sy, sz float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scale = [3]float32{sx, sy, sz}
}

func (s *sceneObject) SetMesh(m mesh.Mesh) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.msh = m
}

func (s *sceneObject) SetLightData(l light.Light) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lightData = l
}

func (s *sceneObject) SetCameraData(c camera.Camera) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cameraData = c
}

func (s *sceneObject) SetActiveMaterial(m material.Material) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeMaterial = m
}

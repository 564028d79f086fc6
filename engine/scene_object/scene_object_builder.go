package scene_object

import (
	"github.com/Shinzef/BlenderRayTracer/engine/camera"
	"github.com/Shinzef/BlenderRayTracer/engine/light"
	"github.com/Shinzef/BlenderRayTracer/engine/material"
	"github.com/Shinzef/BlenderRayTracer/engine/mesh"
)

// SceneObjectBuilderOption is a functional option for configuring a SceneObject during construction.
type SceneObjectBuilderOption func(*sceneObject)

// WithName sets the display name of the SceneObject.
//
// Parameters:
//   - name: the display name
//
// Returns:
//   - SceneObjectBuilderOption: functional option to set the name
func WithName(name string) SceneObjectBuilderOption {
	return func(obj *sceneObject) {
		obj.name = name
	}
}

// WithPosition sets the position of the SceneObject.
//
// Parameters:
//   - x, y, z: position components
//
// Returns:
//   - SceneObjectBuilderOption: functional option to set the position
func WithPosition(x, y, z float32) SceneObjectBuilderOption {
	return func(obj *sceneObject) {
		obj.position = [3]float32{x, y, z}
	}
}

// WithRotation sets the Euler rotation of the SceneObject in radians.
//
// Parameters:
//   - rx, ry, rz: rotation angles
//
// Returns:
//   - SceneObjectBuilderOption: functional option to set the rotation
func WithRotation(rx, ry, rz float32) SceneObjectBuilderOption {
	return func(obj *sceneObject) {
		obj.rotation = [3]float32{rx, ry, rz}
	}
}

// WithScale sets the scale of the SceneObject.
//
// Parameters:
//   - sx, sy, sz: scale factors
//
// Returns:
//   - SceneObjectBuilderOption: functional option to set the scale
func WithScale(sx, sy, sz float32) SceneObjectBuilderOption {
	return func(obj *sceneObject) {
		obj.scale = [3]float32{sx, sy, sz}
	}
}

// WithMesh attaches mesh geometry to the SceneObject.
//
// Parameters:
//   - m: the mesh to attach
//
// Returns:
//   - SceneObjectBuilderOption: functional option to set the mesh
func WithMesh(m mesh.Mesh) SceneObjectBuilderOption {
	return func(obj *sceneObject) {
		obj.msh = m
	}
}

// WithLightData attaches a light data block to the SceneObject.
//
// Parameters:
//   - l: the light to attach
//
// Returns:
//   - SceneObjectBuilderOption: functional option to set the light
func WithLightData(l light.Light) SceneObjectBuilderOption {
	return func(obj *sceneObject) {
		obj.lightData = l
	}
}

// WithCameraData attaches a camera lens data block to the SceneObject.
//
// Parameters:
//   - c: the camera to attach
//
// Returns:
//   - SceneObjectBuilderOption: functional option to set the camera
func WithCameraData(c camera.Camera) SceneObjectBuilderOption {
	return func(obj *sceneObject) {
		obj.cameraData = c
	}
}

// WithActiveMaterial assigns a shading description to the SceneObject.
//
// Parameters:
//   - m: the material to assign
//
// Returns:
//   - SceneObjectBuilderOption: functional option to set the material
func WithActiveMaterial(m material.Material) SceneObjectBuilderOption {
	return func(obj *sceneObject) {
		obj.activeMaterial = m
	}
}

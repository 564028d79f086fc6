package export

import (
	"log"

	"github.com/Shinzef/BlenderRayTracer/engine/material"
	"github.com/Shinzef/BlenderRayTracer/engine/scene_object"
)

// Fixed fallbacks used when a shading signal is absent or unreadable.
const (
	// metallicThreshold is the metallic factor above which a surface counts as metal.
	metallicThreshold = 0.5

	// defaultIOR is assumed when no index of refraction is recoverable.
	defaultIOR = 1.5

	// defaultMetalRoughness is assumed when a metal carries no roughness signal.
	defaultMetalRoughness = 0.1

	// defaultEmissionStrength is assumed when an emitter carries no strength signal.
	defaultEmissionStrength = 1.0
)

var (
	// defaultGray is the diffuse color used when no color signal is present.
	defaultGray = [3]float32{0.8, 0.8, 0.8}

	// defaultWhite is the emission color used when no color signal is present.
	defaultWhite = [3]float32{1, 1, 1}
)

// classifierRule pairs a predicate over the shading description with the
// constructor for the material variant it produces.
type classifierRule struct {
	name  string
	match func(m material.Material) bool
	build func(m material.Material) Material
}

// classifierRules is the ordered decision list for material classification.
// The shading description is unstructured and several signals can be present
// at once, so the precedence here is load-bearing: metallic beats node-graph
// glass, glass beats node-graph emission, and so on down to the terminal
// diffuse rule, which always matches.
var classifierRules = []classifierRule{
	{
		name: "metallic",
		match: func(m material.Material) bool {
			v, ok := m.Metallic()
			return ok && v > metallicThreshold
		},
		build: func(m material.Material) Material {
			roughness := float32(defaultMetalRoughness)
			if r, ok := m.Roughness(); ok {
				roughness = r
			}
			return NewMetal(diffuseOrGray(m), roughness)
		},
	},
	{
		name: "glass-node",
		match: func(m material.Material) bool {
			if !m.UseNodes() {
				return false
			}
			_, found := m.NodeTree().FindFirst(material.NodeTypeGlassBSDF, material.NodeTypeRefractionBSDF)
			return found
		},
		build: func(m material.Material) Material {
			node, _ := m.NodeTree().FindFirst(material.NodeTypeGlassBSDF, material.NodeTypeRefractionBSDF)
			ior := float32(defaultIOR)
			if v, ok := node.FloatInput(material.InputIOR); ok {
				ior = v
			}
			return NewDielectric(ior)
		},
	},
	{
		name: "emission-node",
		match: func(m material.Material) bool {
			if !m.UseNodes() {
				return false
			}
			_, found := m.NodeTree().FindFirst(material.NodeTypeEmission)
			return found
		},
		build: func(m material.Material) Material {
			node, _ := m.NodeTree().FindFirst(material.NodeTypeEmission)
			color := defaultWhite
			if c, ok := node.ColorInput(material.InputColor); ok {
				color = [3]float32{c[0], c[1], c[2]}
			}
			strength := float32(defaultEmissionStrength)
			if s, ok := node.FloatInput(material.InputStrength); ok {
				strength = s
			}
			return NewEmissive(color, strength)
		},
	},
	{
		// The true IOR is not recoverable from a blend mode alone; a fixed
		// approximation is the best available.
		name: "blend-transparency",
		match: func(m material.Material) bool {
			switch m.BlendMethod() {
			case material.BlendMethodBlend, material.BlendMethodHashed, material.BlendMethodClip:
				return true
			default:
				return false
			}
		},
		build: func(m material.Material) Material {
			return NewDielectric(defaultIOR)
		},
	},
	{
		name: "legacy-emission",
		match: func(m material.Material) bool {
			return m.UseEmission()
		},
		build: func(m material.Material) Material {
			color := defaultWhite
			if c, ok := m.EmissionColor(); ok {
				color = c
			}
			strength := float32(defaultEmissionStrength)
			if s, ok := m.EmissionStrength(); ok {
				strength = s
			}
			return NewEmissive(color, strength)
		},
	},
	{
		name: "diffuse",
		match: func(m material.Material) bool {
			return true
		},
		build: func(m material.Material) Material {
			return NewLambertian(diffuseOrGray(m))
		},
	},
}

// ClassifyObject inspects the shading description assigned to a scene object
// and returns exactly one material variant. It is total: an object with no
// assigned material, or any failure while probing one, yields the default
// gray Lambertian rather than an error.
//
// Parameters:
//   - obj: the scene object whose material is classified
//
// Returns:
//   - Material: the classified material variant
func ClassifyObject(obj scene_object.SceneObject) Material {
	mat := obj.ActiveMaterial()
	if mat == nil {
		return NewLambertian(defaultGray)
	}
	return ClassifyMaterial(mat)
}

// ClassifyMaterial runs the ordered classifier rules over a shading
// description. Any panic while probing is recovered and the gray Lambertian
// fallback is returned; classification never propagates an error.
//
// Parameters:
//   - mat: the shading description to classify
//
// Returns:
//   - Material: the classified material variant
func ClassifyMaterial(mat material.Material) (out Material) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Exporter] material probe failed for %q: %v", mat.Name(), r)
			out = NewLambertian(defaultGray)
		}
	}()

	for _, rule := range classifierRules {
		if rule.match(mat) {
			return rule.build(mat)
		}
	}
	return NewLambertian(defaultGray)
}

// diffuseOrGray reads the diffuse color signal, falling back to the default gray.
func diffuseOrGray(m material.Material) [3]float32 {
	if c, ok := m.DiffuseColor(); ok {
		return [3]float32{c[0], c[1], c[2]}
	}
	return defaultGray
}

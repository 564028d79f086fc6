package export

import (
	"testing"

	"github.com/Shinzef/BlenderRayTracer/engine/material"
	"github.com/Shinzef/BlenderRayTracer/engine/scene_object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyMetallic(t *testing.T) {
	m := material.NewMaterial(
		material.WithMetallic(0.9),
		material.WithRoughness(0.2),
		material.WithDiffuseColor(1, 0.5, 0.25, 1),
	)

	got := ClassifyMaterial(m)
	metal, ok := got.(Metal)
	require.True(t, ok)
	assert.Equal(t, MaterialMetal, metal.Type)
	assert.Equal(t, [3]float32{1, 0.5, 0.25}, metal.Color)
	assert.Equal(t, float32(0.2), metal.Roughness)
}

func TestClassifyMetallicDefaultRoughness(t *testing.T) {
	m := material.NewMaterial(material.WithMetallic(0.6))

	metal, ok := ClassifyMaterial(m).(Metal)
	require.True(t, ok)
	assert.Equal(t, float32(0.1), metal.Roughness)
	assert.Equal(t, [3]float32{0.8, 0.8, 0.8}, metal.Color)
}

func TestClassifyMetallicAtThresholdIsNotMetal(t *testing.T) {
	m := material.NewMaterial(material.WithMetallic(0.5))

	_, ok := ClassifyMaterial(m).(Lambertian)
	assert.True(t, ok)
}

func TestClassifyGlassNode(t *testing.T) {
	m := material.NewMaterial(
		material.WithNodeTree(&material.NodeTree{Nodes: []material.Node{
			{Type: material.NodeTypePrincipledBSDF},
			{Type: material.NodeTypeGlassBSDF, Inputs: map[string]any{
				material.InputIOR: float32(1.33),
			}},
		}}),
	)

	d, ok := ClassifyMaterial(m).(Dielectric)
	require.True(t, ok)
	assert.Equal(t, float32(1.33), d.IOR)
}

func TestClassifyGlassNodeWithoutIOR(t *testing.T) {
	m := material.NewMaterial(
		material.WithNodeTree(&material.NodeTree{Nodes: []material.Node{
			{Type: material.NodeTypeRefractionBSDF},
		}}),
	)

	d, ok := ClassifyMaterial(m).(Dielectric)
	require.True(t, ok)
	assert.Equal(t, float32(1.5), d.IOR)
}

func TestClassifyMetallicBeatsGlassNode(t *testing.T) {
	m := material.NewMaterial(
		material.WithMetallic(0.8),
		material.WithNodeTree(&material.NodeTree{Nodes: []material.Node{
			{Type: material.NodeTypeGlassBSDF},
		}}),
	)

	_, ok := ClassifyMaterial(m).(Metal)
	assert.True(t, ok)
}

func TestClassifyEmissionNode(t *testing.T) {
	m := material.NewMaterial(
		material.WithNodeTree(&material.NodeTree{Nodes: []material.Node{
			{Type: material.NodeTypeEmission, Inputs: map[string]any{
				material.InputColor:    [4]float32{1, 0.5, 0, 1},
				material.InputStrength: float32(7),
			}},
		}}),
	)

	e, ok := ClassifyMaterial(m).(Emissive)
	require.True(t, ok)
	assert.Equal(t, [3]float32{1, 0.5, 0}, e.Color)
	assert.Equal(t, float32(7), e.Intensity)
}

func TestClassifyEmissionNodeDefaults(t *testing.T) {
	m := material.NewMaterial(
		material.WithNodeTree(&material.NodeTree{Nodes: []material.Node{
			{Type: material.NodeTypeEmission},
		}}),
	)

	e, ok := ClassifyMaterial(m).(Emissive)
	require.True(t, ok)
	assert.Equal(t, [3]float32{1, 1, 1}, e.Color)
	assert.Equal(t, float32(1), e.Intensity)
}

func TestClassifyBlendTransparency(t *testing.T) {
	for _, method := range []material.BlendMethod{
		material.BlendMethodBlend,
		material.BlendMethodHashed,
		material.BlendMethodClip,
	} {
		m := material.NewMaterial(material.WithBlendMethod(method))

		d, ok := ClassifyMaterial(m).(Dielectric)
		require.True(t, ok, "blend method %s", method)
		assert.Equal(t, float32(1.5), d.IOR)
	}
}

func TestClassifyLegacyEmission(t *testing.T) {
	m := material.NewMaterial(
		material.WithUseEmission(true),
		material.WithEmissionColor(0.2, 0.4, 0.6),
		material.WithEmissionStrength(3),
	)

	e, ok := ClassifyMaterial(m).(Emissive)
	require.True(t, ok)
	assert.Equal(t, [3]float32{0.2, 0.4, 0.6}, e.Color)
	assert.Equal(t, float32(3), e.Intensity)
}

func TestClassifyBareMaterialIsLambertian(t *testing.T) {
	l, ok := ClassifyMaterial(material.NewMaterial()).(Lambertian)
	require.True(t, ok)
	assert.Equal(t, [3]float32{0.8, 0.8, 0.8}, l.Color)
}

func TestClassifyObjectWithoutMaterial(t *testing.T) {
	obj := scene_object.NewSceneObject(scene_object.WithName("Bare"))

	l, ok := ClassifyObject(obj).(Lambertian)
	require.True(t, ok)
	assert.Equal(t, [3]float32{0.8, 0.8, 0.8}, l.Color)
}

// panickyMaterial blows up when its metallic signal is probed, standing in
// for a host material whose property access can fail mid-read.
type panickyMaterial struct {
	material.Material
}

func (p panickyMaterial) Name() string { return "broken" }

func (p panickyMaterial) Metallic() (float32, bool) {
	panic("property access failed")
}

func TestClassifyRecoversFromProbePanic(t *testing.T) {
	m := panickyMaterial{Material: material.NewMaterial()}

	l, ok := ClassifyMaterial(m).(Lambertian)
	require.True(t, ok)
	assert.Equal(t, [3]float32{0.8, 0.8, 0.8}, l.Color)
}

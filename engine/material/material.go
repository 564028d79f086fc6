package material

// BlendMethod identifies how the host blends a surface with whatever is
// behind it. Anything other than opaque is treated by the exporter as a
// transparency signal.
type BlendMethod string

const (
	// BlendMethodOpaque renders the surface fully opaque.
	BlendMethodOpaque BlendMethod = "OPAQUE"

	// BlendMethodBlend alpha-blends the surface with the background.
	BlendMethodBlend BlendMethod = "BLEND"

	// BlendMethodHashed uses stochastic per-sample alpha.
	BlendMethodHashed BlendMethod = "HASHED"

	// BlendMethodClip discards fragments below an alpha threshold.
	BlendMethodClip BlendMethod = "CLIP"
)

// materialImpl is the implementation of the Material interface.
type materialImpl struct {
	name string

	metallic    float32
	hasMetallic bool

	roughness    float32
	hasRoughness bool

	diffuseColor    [4]float32
	hasDiffuseColor bool

	blendMethod BlendMethod

	useNodes bool
	nodeTree *NodeTree

	useEmission         bool
	emissionColor       [3]float32
	hasEmissionColor    bool
	emissionStrength    float32
	hasEmissionStrength bool
}

// Material is the shading description attached to a scene object. It is an
// open-ended bag of flat property signals plus an optional node tree; not
// every signal is present on every material, so scalar accessors report
// presence alongside the value.
//
// The exporter classifies this description into one of a small set of
// renderer material variants; nothing here is validated for physical
// plausibility.
type Material interface {
	// Name returns the material identifier.
	//
	// Returns:
	//   - string: the material name
	Name() string

	// Metallic returns the metallic factor signal.
	//
	// Returns:
	//   - float32: the metallic factor (0 = dielectric, 1 = metal)
	//   - bool: true if the signal is present on this material
	Metallic() (float32, bool)

	// Roughness returns the roughness factor signal.
	//
	// Returns:
	//   - float32: the roughness factor (0 = smooth, 1 = rough)
	//   - bool: true if the signal is present on this material
	Roughness() (float32, bool)

	// DiffuseColor returns the diffuse/albedo color signal (RGBA).
	//
	// Returns:
	//   - [4]float32: the color as (r, g, b, a)
	//   - bool: true if the signal is present on this material
	DiffuseColor() ([4]float32, bool)

	// BlendMethod returns the surface blend mode.
	//
	// Returns:
	//   - BlendMethod: the blend mode (opaque when never set)
	BlendMethod() BlendMethod

	// UseNodes reports whether this material is driven by a shading node tree.
	//
	// Returns:
	//   - bool: true if a node tree is attached and active
	UseNodes() bool

	// NodeTree returns the attached shading node tree, or nil.
	//
	// Returns:
	//   - *NodeTree: the node tree or nil
	NodeTree() *NodeTree

	// UseEmission reports the legacy flat-property emission flag.
	//
	// Returns:
	//   - bool: true if the legacy emission flag is set
	UseEmission() bool

	// EmissionColor returns the legacy emission color signal.
	//
	// Returns:
	//   - [3]float32: the color as (r, g, b)
	//   - bool: true if the signal is present on this material
	EmissionColor() ([3]float32, bool)

	// EmissionStrength returns the legacy emission strength signal.
	//
	// Returns:
	//   - float32: the emission strength multiplier
	//   - bool: true if the signal is present on this material
	EmissionStrength() (float32, bool)

	// SetMetallic sets the metallic factor signal and marks it present.
	//
	// Parameters:
	//   - metallic: the metallic factor
	SetMetallic(metallic float32)

	// SetRoughness sets the roughness factor signal and marks it present.
	//
	// Parameters:
	//   - roughness: the roughness factor
	SetRoughness(roughness float32)

	// SetDiffuseColor sets the diffuse color signal and marks it present.
	//
	// Parameters:
	//   - r, g, b, a: color components
	SetDiffuseColor(r, g, b, a float32)

	// SetBlendMethod sets the surface blend mode.
	//
	// Parameters:
	//   - method: the blend mode
	SetBlendMethod(method BlendMethod)

	// SetNodeTree attaches a shading node tree and enables node-driven shading.
	// Pass nil to detach and disable.
	//
	// Parameters:
	//   - tree: the node tree to attach, or nil
	SetNodeTree(tree *NodeTree)

	// SetUseEmission sets the legacy flat-property emission flag.
	//
	// Parameters:
	//   - useEmission: true to flag the material as emissive
	SetUseEmission(useEmission bool)

	// SetEmissionColor sets the legacy emission color signal and marks it present.
	//
	// Parameters:
	//   - r, g, b: color components
	SetEmissionColor(r, g, b float32)

	// SetEmissionStrength sets the legacy emission strength signal and marks it present.
	//
	// Parameters:
	//   - strength: the emission strength multiplier
	SetEmissionStrength(strength float32)
}

var _ Material = &materialImpl{}

// NewMaterial creates a new Material configured with the given options.
// A bare material carries no signals; the exporter classifies it as a
// default diffuse surface.
//
// Parameters:
//   - options: functional options to configure the material
//
// Returns:
//   - Material: the newly created material
func NewMaterial(options ...MaterialBuilderOption) Material {
	m := &materialImpl{
		blendMethod: BlendMethodOpaque,
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *materialImpl) Name() string {
	return m.name
}

func (m *materialImpl) Metallic() (float32, bool) {
	return m.metallic, m.hasMetallic
}

func (m *materialImpl) Roughness() (float32, bool) {
	return m.roughness, m.hasRoughness
}

func (m *materialImpl) DiffuseColor() ([4]float32, bool) {
	return m.diffuseColor, m.hasDiffuseColor
}

func (m *materialImpl) BlendMethod() BlendMethod {
	return m.blendMethod
}

func (m *materialImpl) UseNodes() bool {
	return m.useNodes && m.nodeTree != nil
}

func (m *materialImpl) NodeTree() *NodeTree {
	return m.nodeTree
}

func (m *materialImpl) UseEmission() bool {
	return m.useEmission
}

func (m *materialImpl) EmissionColor() ([3]float32, bool) {
	return m.emissionColor, m.hasEmissionColor
}

func (m *materialImpl) EmissionStrength() (float32, bool) {
	return m.emissionStrength, m.hasEmissionStrength
}

func (m *materialImpl) SetMetallic(metallic float32) {
	m.metallic = metallic
	m.hasMetallic = true
}

func (m *materialImpl) SetRoughness(roughness float32) {
	m.roughness = roughness
	m.hasRoughness = true
}

func (m *materialImpl) SetDiffuseColor(r, g, b, a float32) {
	m.diffuseColor = [4]float32{r, g, b, a}
	m.hasDiffuseColor = true
}

func (m *materialImpl) SetBlendMethod(method BlendMethod) {
	m.blendMethod = method
}

func (m *materialImpl) SetNodeTree(tree *NodeTree) {
	m.nodeTree = tree
	m.useNodes = tree != nil
}

func (m *materialImpl) SetUseEmission(useEmission bool) {
	m.useEmission = useEmission
}

func (m *materialImpl) SetEmissionColor(r, g, b float32) {
	m.emissionColor = [3]float32{r, g, b}
	m.hasEmissionColor = true
}

func (m *materialImpl) SetEmissionStrength(strength float32) {
	m.emissionStrength = strength
	m.hasEmissionStrength = true
}

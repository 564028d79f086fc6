package material

// MaterialBuilderOption is a functional option for configuring a Material during construction.
type MaterialBuilderOption func(*materialImpl)

// WithName sets the material identifier.
//
// Parameters:
//   - name: the material name
//
// Returns:
//   - MaterialBuilderOption: functional option to set the name
func WithName(name string) MaterialBuilderOption {
	return func(m *materialImpl) {
		m.name = name
	}
}

// WithMetallic sets the metallic factor signal and marks it present.
//
// Parameters:
//   - metallic: the metallic factor (0 = dielectric, 1 = metal)
//
// Returns:
//   - MaterialBuilderOption: functional option to set the metallic signal
func WithMetallic(metallic float32) MaterialBuilderOption {
	return func(m *materialImpl) {
		m.metallic = metallic
		m.hasMetallic = true
	}
}

// WithRoughness sets the roughness factor signal and marks it present.
//
// Parameters:
//   - roughness: the roughness factor (0 = smooth, 1 = rough)
//
// Returns:
//   - MaterialBuilderOption: functional option to set the roughness signal
func WithRoughness(roughness float32) MaterialBuilderOption {
	return func(m *materialImpl) {
		m.roughness = roughness
		m.hasRoughness = true
	}
}

// WithDiffuseColor sets the diffuse/albedo color signal and marks it present.
//
// Parameters:
//   - r, g, b, a: color components
//
// Returns:
//   - MaterialBuilderOption: functional option to set the diffuse color signal
func WithDiffuseColor(r, g, b, a float32) MaterialBuilderOption {
	return func(m *materialImpl) {
		m.diffuseColor = [4]float32{r, g, b, a}
		m.hasDiffuseColor = true
	}
}

// WithBlendMethod sets the surface blend mode.
//
// Parameters:
//   - method: the blend mode
//
// Returns:
//   - MaterialBuilderOption: functional option to set the blend mode
func WithBlendMethod(method BlendMethod) MaterialBuilderOption {
	return func(m *materialImpl) {
		m.blendMethod = method
	}
}

// WithNodeTree attaches a shading node tree and enables node-driven shading.
//
// Parameters:
//   - tree: the node tree to attach
//
// Returns:
//   - MaterialBuilderOption: functional option to set the node tree
func WithNodeTree(tree *NodeTree) MaterialBuilderOption {
	return func(m *materialImpl) {
		m.nodeTree = tree
		m.useNodes = tree != nil
	}
}

// WithUseEmission sets the legacy flat-property emission flag.
//
// Parameters:
//   - useEmission: true to flag the material as emissive
//
// Returns:
//   - MaterialBuilderOption: functional option to set the emission flag
func WithUseEmission(useEmission bool) MaterialBuilderOption {
	return func(m *materialImpl) {
		m.useEmission = useEmission
	}
}

// WithEmissionColor sets the legacy emission color signal and marks it present.
//
// Parameters:
//   - r, g, b: color components
//
// Returns:
//   - MaterialBuilderOption: functional option to set the emission color signal
func WithEmissionColor(r, g, b float32) MaterialBuilderOption {
	return func(m *materialImpl) {
		m.emissionColor = [3]float32{r, g, b}
		m.hasEmissionColor = true
	}
}

// WithEmissionStrength sets the legacy emission strength signal and marks it present.
//
// Parameters:
//   - strength: the emission strength multiplier
//
// Returns:
//   - MaterialBuilderOption: functional option to set the emission strength signal
func WithEmissionStrength(strength float32) MaterialBuilderOption {
	return func(m *materialImpl) {
		m.emissionStrength = strength
		m.hasEmissionStrength = true
	}
}

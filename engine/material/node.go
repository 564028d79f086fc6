package material

// NodeType identifies the kind of a shading node.
type NodeType string

const (
	// NodeTypeGlassBSDF is a glass refraction/reflection shader node.
	NodeTypeGlassBSDF NodeType = "BSDF_GLASS"

	// NodeTypeRefractionBSDF is a pure refraction shader node.
	NodeTypeRefractionBSDF NodeType = "BSDF_REFRACTION"

	// NodeTypeEmission is a light-emitting shader node.
	NodeTypeEmission NodeType = "EMISSION"

	// NodeTypeDiffuseBSDF is a diffuse reflection shader node.
	NodeTypeDiffuseBSDF NodeType = "BSDF_DIFFUSE"

	// NodeTypePrincipledBSDF is the host's uber-shader node.
	NodeTypePrincipledBSDF NodeType = "BSDF_PRINCIPLED"

	// NodeTypeMixShader blends two shader inputs.
	NodeTypeMixShader NodeType = "MIX_SHADER"

	// NodeTypeOutputMaterial is the tree's terminal output node.
	NodeTypeOutputMaterial NodeType = "OUTPUT_MATERIAL"
)

// Input socket names probed by the exporter.
const (
	InputIOR      = "IOR"
	InputColor    = "Color"
	InputStrength = "Strength"
)

// Node is a single node in a shading node tree. Inputs maps socket names to
// their default values, mirroring how the host stores them: float32 for
// scalar sockets, [4]float32 for color sockets. Socket values of other types
// may appear; accessors report absence rather than guessing.
type Node struct {
	// Type is the node's kind.
	Type NodeType

	// Inputs maps socket names to default values.
	Inputs map[string]any
}

// FloatInput looks up a scalar input socket by name.
//
// Parameters:
//   - name: the socket name
//
// Returns:
//   - float32: the socket value
//   - bool: true if the socket exists and holds a scalar
func (n Node) FloatInput(name string) (float32, bool) {
	v, ok := n.Inputs[name]
	if !ok {
		return 0, false
	}
	f, ok := v.(float32)
	return f, ok
}

// ColorInput looks up a color input socket by name.
//
// Parameters:
//   - name: the socket name
//
// Returns:
//   - [4]float32: the socket value as (r, g, b, a)
//   - bool: true if the socket exists and holds a color
func (n Node) ColorInput(name string) ([4]float32, bool) {
	v, ok := n.Inputs[name]
	if !ok {
		return [4]float32{}, false
	}
	c, ok := v.([4]float32)
	return c, ok
}

// NodeTree is a flat list of shading nodes. Links between sockets are not
// modeled; the exporter only scans node types and their input defaults.
type NodeTree struct {
	// Nodes is the flat node list in authoring order.
	Nodes []Node
}

// FindFirst returns the first node whose type matches any of the given types,
// scanning in authoring order.
//
// Parameters:
//   - types: node types to match
//
// Returns:
//   - Node: the first matching node
//   - bool: true if a match was found
func (t *NodeTree) FindFirst(types ...NodeType) (Node, bool) {
	if t == nil {
		return Node{}, false
	}
	for _, n := range t.Nodes {
		for _, want := range types {
			if n.Type == want {
				return n, true
			}
		}
	}
	return Node{}, false
}

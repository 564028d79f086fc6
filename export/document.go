// Package export translates a live authoring scene into the static,
// renderer-ready scene description consumed by the RayCast ray tracer.
//
// The pipeline reconciles the open-ended authoring data model against a
// small, fixed output schema: geometry resolution runs a fallback chain
// (sphere shortcut, triangle mesh, bounding box), material classification
// probes the shading description with an ordered rule list, and every
// spatial quantity passes exactly once through the Z-up to Y-up coordinate
// conversion. Per-object failures degrade to approximations; only a failed
// document write aborts an export.
package export

// PrimitiveType identifies the variant of an output primitive.
type PrimitiveType string

const (
	PrimitiveSphere PrimitiveType = "sphere"
	PrimitiveMesh   PrimitiveType = "mesh"
	PrimitiveBox    PrimitiveType = "box"
)

// MaterialType identifies the variant of an output material.
type MaterialType string

const (
	MaterialLambertian MaterialType = "lambertian"
	MaterialMetal      MaterialType = "metal"
	MaterialDielectric MaterialType = "dielectric"
	MaterialEmissive   MaterialType = "emissive"
	MaterialDefault    MaterialType = "default"
)

// LightKind identifies the variant of an output light.
type LightKind string

const (
	LightPoint       LightKind = "point"
	LightDirectional LightKind = "directional"
)

// SceneDocument is the complete renderer-ready scene description. It is
// created fresh per export and never mutated after serialization.
type SceneDocument struct {
	Name       string      `json:"name"`
	Objects    []Primitive `json:"objects"`
	Lights     []Light     `json:"lights"`
	Camera     Camera      `json:"camera"`
	Background Background  `json:"background"`
}

// Background describes the environment behind the scene. The exporter always
// emits a gradient background at full intensity.
type Background struct {
	Type      string  `json:"type"`
	Intensity float32 `json:"intensity"`
}

// Primitive is one renderable shape entry in the output document, a tagged
// variant of sphere, mesh, or box.
type Primitive interface {
	isPrimitive()
}

// Sphere is an implicit sphere primitive.
type Sphere struct {
	Type     PrimitiveType `json:"type"`
	Name     string        `json:"name"`
	Center   [3]float32    `json:"center"`
	Radius   float32       `json:"radius"`
	Material Material      `json:"material"`
}

func (Sphere) isPrimitive() {}

// TriangleMesh is an indexed triangle mesh primitive. Indices refer into
// Vertices in groups of three.
type TriangleMesh struct {
	Type     PrimitiveType `json:"type"`
	Name     string        `json:"name"`
	Vertices [][3]float32  `json:"vertices"`
	Indices  []uint32      `json:"indices"`
	Material Material      `json:"material"`
}

func (TriangleMesh) isPrimitive() {}

// Box is an axis-aligned box primitive described by two opposite corners.
type Box struct {
	Type     PrimitiveType `json:"type"`
	Name     string        `json:"name"`
	Min      [3]float32    `json:"min"`
	Max      [3]float32    `json:"max"`
	Material Material      `json:"material"`
}

func (Box) isPrimitive() {}

// Material is a surface description variant attached to a primitive.
type Material interface {
	isMaterial()
}

// Lambertian is a diffuse surface.
type Lambertian struct {
	Type  MaterialType `json:"type"`
	Color [3]float32   `json:"color"`
}

func (Lambertian) isMaterial() {}

// Metal is a reflective surface with microfacet roughness.
type Metal struct {
	Type      MaterialType `json:"type"`
	Color     [3]float32   `json:"color"`
	Roughness float32      `json:"roughness"`
}

func (Metal) isMaterial() {}

// Dielectric is a transparent refractive surface.
type Dielectric struct {
	Type MaterialType `json:"type"`
	IOR  float32      `json:"ior"`
}

func (Dielectric) isMaterial() {}

// Emissive is a light-emitting surface.
type Emissive struct {
	Type      MaterialType `json:"type"`
	Color     [3]float32   `json:"color"`
	Intensity float32      `json:"intensity"`
}

func (Emissive) isMaterial() {}

// DefaultMaterial is the renderer's built-in material, used when material
// export is disabled.
type DefaultMaterial struct {
	Type MaterialType `json:"type"`
}

func (DefaultMaterial) isMaterial() {}

// NewLambertian returns a tagged Lambertian material.
func NewLambertian(color [3]float32) Lambertian {
	return Lambertian{Type: MaterialLambertian, Color: color}
}

// NewMetal returns a tagged Metal material.
func NewMetal(color [3]float32, roughness float32) Metal {
	return Metal{Type: MaterialMetal, Color: color, Roughness: roughness}
}

// NewDielectric returns a tagged Dielectric material.
func NewDielectric(ior float32) Dielectric {
	return Dielectric{Type: MaterialDielectric, IOR: ior}
}

// NewEmissive returns a tagged Emissive material.
func NewEmissive(color [3]float32, intensity float32) Emissive {
	return Emissive{Type: MaterialEmissive, Color: color, Intensity: intensity}
}

// NewDefaultMaterial returns the tagged default material.
func NewDefaultMaterial() DefaultMaterial {
	return DefaultMaterial{Type: MaterialDefault}
}

// Light is a light source variant in the output document.
type Light interface {
	isLight()
}

// PointLight emits in all directions from a position.
type PointLight struct {
	Type      LightKind  `json:"type"`
	Position  [3]float32 `json:"position"`
	Color     [3]float32 `json:"color"`
	Intensity float32    `json:"intensity"`
}

func (PointLight) isLight() {}

// DirectionalLight emits uniformly along a unit direction.
type DirectionalLight struct {
	Type      LightKind  `json:"type"`
	Direction [3]float32 `json:"direction"`
	Color     [3]float32 `json:"color"`
	Intensity float32    `json:"intensity"`
}

func (DirectionalLight) isLight() {}

// Camera is the viewpoint description for the renderer.
type Camera struct {
	Position   [3]float32 `json:"position"`
	LookAt     [3]float32 `json:"lookAt"`
	Up         [3]float32 `json:"up"`
	FOV        float32    `json:"fov"`
	Aspect     float32    `json:"aspect"`
	Resolution [2]int     `json:"resolution"`
	Aperture   float32    `json:"aperture"`
	FocusDist  float32    `json:"focusDist"`
	Type       string     `json:"type"`
}

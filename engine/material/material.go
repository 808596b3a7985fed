package material

// material is the implementation of the Material interface.
type material struct {
	tag           string
	diffuseColor  [3]float32
	specularColor [3]float32
	shininess     float32
}

// Material defines the interface for a Phong surface material, encapsulating
// the reflective properties the fragment shader combines with the scene lights.
//
// Surface properties are set at build time and are read-only through this
// interface; materials are shared between objects by tag, so draw code must
// never mutate them.
type Material interface {
	// Tag retrieves the material identifier used for lookups at draw time.
	//
	// Returns:
	//   - string: the tag of the material
	Tag() string

	// DiffuseColor retrieves the diffuse RGB reflectance of the material.
	// Each component is the fraction of that color channel the surface reflects.
	//
	// Returns:
	//   - [3]float32: the diffuse color as RGB values
	DiffuseColor() [3]float32

	// SpecularColor retrieves the specular RGB highlight strength of the material.
	//
	// Returns:
	//   - [3]float32: the specular color as RGB values
	SpecularColor() [3]float32

	// Shininess retrieves the specular exponent of the material.
	// Low values (around 8) give a broad faint highlight, high values (up to 256)
	// give a small tight highlight like glass.
	//
	// Returns:
	//   - float32: the shininess exponent
	Shininess() float32
}

var _ Material = &material{}

// NewMaterial creates a new Material instance configured with the provided options.
//
// Parameters:
//   - options: variadic list of MaterialBuilderOption functions to configure the material
//
// Returns:
//   - Material: a new Material instance
func NewMaterial(options ...MaterialBuilderOption) Material {
	m := &material{
		diffuseColor:  [3]float32{1, 1, 1},
		specularColor: [3]float32{0.5, 0.5, 0.5},
		shininess:     32,
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

func (m *material) Tag() string {
	return m.tag
}

func (m *material) DiffuseColor() [3]float32 {
	return m.diffuseColor
}

func (m *material) SpecularColor() [3]float32 {
	return m.specularColor
}

func (m *material) Shininess() float32 {
	return m.shininess
}

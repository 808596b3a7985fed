package material

// MaterialBuilderOption is a function that configures a material instance during construction.
type MaterialBuilderOption func(*material)

// WithTag is an option builder that sets the lookup tag of the material.
//
// Parameters:
//   - tag: the identifier for the material
//
// Returns:
//   - MaterialBuilderOption: a function that applies the tag option to a material
func WithTag(tag string) MaterialBuilderOption {
	return func(m *material) {
		m.tag = tag
	}
}

// WithDiffuseColor is an option builder that sets the diffuse RGB reflectance of the material.
//
// Parameters:
//   - r: the red reflectance component
//   - g: the green reflectance component
//   - b: the blue reflectance component
//
// Returns:
//   - MaterialBuilderOption: a function that applies the diffuse color option to a material
func WithDiffuseColor(r, g, b float32) MaterialBuilderOption {
	return func(m *material) {
		m.diffuseColor = [3]float32{r, g, b}
	}
}

// WithSpecularColor is an option builder that sets the specular RGB highlight strength of the material.
//
// Parameters:
//   - r: the red highlight component
//   - g: the green highlight component
//   - b: the blue highlight component
//
// Returns:
//   - MaterialBuilderOption: a function that applies the specular color option to a material
func WithSpecularColor(r, g, b float32) MaterialBuilderOption {
	return func(m *material) {
		m.specularColor = [3]float32{r, g, b}
	}
}

// WithShininess is an option builder that sets the specular exponent of the material.
//
// Parameters:
//   - shininess: the specular exponent (typically 8-256)
//
// Returns:
//   - MaterialBuilderOption: a function that applies the shininess option to a material
func WithShininess(shininess float32) MaterialBuilderOption {
	return func(m *material) {
		m.shininess = shininess
	}
}

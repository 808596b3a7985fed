package material

// Registry holds the materials defined for a scene, looked up by tag.
// Lookup is a linear scan; scenes carry at most a few dozen materials.
type Registry struct {
	materials []Material
}

// NewRegistry creates an empty material registry.
//
// Returns:
//   - *Registry: the newly created registry
func NewRegistry() *Registry {
	return &Registry{}
}

// Add registers a material. A material with a duplicate tag replaces the
// earlier entry for lookup purposes only if added first; later duplicates are
// never reached by Find, so callers should keep tags unique.
//
// Parameters:
//   - m: the material to register
func (r *Registry) Add(m Material) {
	r.materials = append(r.materials, m)
}

// Find retrieves the material registered under the given tag.
//
// Parameters:
//   - tag: the material tag to look up
//
// Returns:
//   - Material: the material, or nil if the tag is unknown
//   - bool: true if the tag was found
func (r *Registry) Find(tag string) (Material, bool) {
	for _, m := range r.materials {
		if m.Tag() == tag {
			return m, true
		}
	}
	return nil, false
}

// Len returns the number of registered materials.
//
// Returns:
//   - int: the material count
func (r *Registry) Len() int {
	return len(r.materials)
}

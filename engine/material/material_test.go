package material

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMaterialDefaults(t *testing.T) {
	m := NewMaterial()

	assert.Empty(t, m.Tag())
	assert.Equal(t, [3]float32{1, 1, 1}, m.DiffuseColor())
	assert.Equal(t, [3]float32{0.5, 0.5, 0.5}, m.SpecularColor())
	assert.Equal(t, float32(32), m.Shininess())
}

func TestBuilderOptions(t *testing.T) {
	m := NewMaterial(
		WithTag("aluminum"),
		WithDiffuseColor(0.35, 0.35, 0.35),
		WithSpecularColor(0.35, 0.35, 0.35),
		WithShininess(128),
	)

	assert.Equal(t, "aluminum", m.Tag())
	assert.Equal(t, [3]float32{0.35, 0.35, 0.35}, m.DiffuseColor())
	assert.Equal(t, [3]float32{0.35, 0.35, 0.35}, m.SpecularColor())
	assert.Equal(t, float32(128), m.Shininess())
}

func TestRegistryFind(t *testing.T) {
	r := NewRegistry()
	r.Add(NewMaterial(WithTag("floor"), WithShininess(8)))
	r.Add(NewMaterial(WithTag("leather"), WithShininess(16)))

	m, ok := r.Find("leather")
	require.True(t, ok)
	assert.Equal(t, float32(16), m.Shininess())

	_, ok = r.Find("missing")
	assert.False(t, ok)
	assert.Equal(t, 2, r.Len())
}

func TestRegistryFindReturnsFirstMatch(t *testing.T) {
	r := NewRegistry()
	r.Add(NewMaterial(WithTag("floor"), WithShininess(8)))
	r.Add(NewMaterial(WithTag("floor"), WithShininess(64)))

	m, ok := r.Find("floor")
	require.True(t, ok)
	assert.Equal(t, float32(8), m.Shininess())
}

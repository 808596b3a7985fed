package light

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLightDefaults(t *testing.T) {
	l := NewLight(LightTypePoint)

	assert.Equal(t, LightTypePoint, l.Type())
	assert.Equal(t, [3]float32{0, -1, 0}, l.Direction())
	assert.True(t, l.Enabled())

	constant, linear, quadratic := l.Attenuation()
	assert.Equal(t, float32(1.0), constant)
	assert.Equal(t, float32(0.007), linear)
	assert.Equal(t, float32(0.0002), quadratic)

	// Default cone matches cos(25°)/cos(35°).
	assert.InDelta(t, math.Cos(25*math.Pi/180), float64(l.InnerCone()), 1e-4)
	assert.InDelta(t, math.Cos(35*math.Pi/180), float64(l.OuterCone()), 1e-4)
}

func TestBuilderOptions(t *testing.T) {
	l := NewLight(LightTypeSpot,
		WithPosition(14, 17, -5.5),
		WithAmbient(0.25, 0.25, 0.25),
		WithDiffuse(1.5, 1.5, 1.5),
		WithSpecular(1, 1, 1),
		WithAttenuation(1, 0.09, 0.032),
		WithSpotCone(12.5, 17.5),
		WithEnabled(false),
	)

	assert.Equal(t, LightTypeSpot, l.Type())
	assert.Equal(t, [3]float32{14, 17, -5.5}, l.Position())
	assert.Equal(t, [3]float32{0.25, 0.25, 0.25}, l.Ambient())
	assert.Equal(t, [3]float32{1.5, 1.5, 1.5}, l.Diffuse())
	assert.False(t, l.Enabled())

	_, linear, _ := l.Attenuation()
	assert.Equal(t, float32(0.09), linear)
	assert.InDelta(t, math.Cos(12.5*math.Pi/180), float64(l.InnerCone()), 1e-4)
	assert.InDelta(t, math.Cos(17.5*math.Pi/180), float64(l.OuterCone()), 1e-4)
}

func TestSetDirectionNormalizes(t *testing.T) {
	l := NewLight(LightTypeSpot)
	l.SetDirection(0, -3, -4)

	d := l.Direction()
	assert.InDelta(t, 0.0, float64(d[0]), 1e-6)
	assert.InDelta(t, -0.6, float64(d[1]), 1e-6)
	assert.InDelta(t, -0.8, float64(d[2]), 1e-6)

	l.SetDirection(0, 0, 0)
	assert.Equal(t, [3]float32{0, 0, 0}, l.Direction())
}

func TestSetSpotConeStoresCosines(t *testing.T) {
	l := NewLight(LightTypeSpot)
	l.SetSpotCone(25, 35)

	assert.InDelta(t, 0.9063, float64(l.InnerCone()), 1e-4)
	assert.InDelta(t, 0.8192, float64(l.OuterCone()), 1e-4)
	assert.Greater(t, l.InnerCone(), l.OuterCone())
}

package scene

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-gl/engine/light"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectModelMatrixTranslation(t *testing.T) {
	obj := NewObject(WithObjectPosition(mgl32.Vec3{-8, 0.4, 4}))

	origin := obj.ModelMatrix().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.InDelta(t, -8, origin.X(), 1e-5)
	assert.InDelta(t, 0.4, origin.Y(), 1e-5)
	assert.InDelta(t, 4, origin.Z(), 1e-5)
}

func TestObjectModelMatrixScaleThenRotate(t *testing.T) {
	// A 180 degree x rotation of a y-scaled point should flip it below the
	// plane: scale applies before rotation.
	obj := NewObject(
		WithScale(mgl32.Vec3{1, 2, 1}),
		WithRotationDeg(mgl32.Vec3{180, 0, 0}),
	)

	p := obj.ModelMatrix().Mul4x1(mgl32.Vec4{0, 1, 0, 1})
	assert.InDelta(t, -2, p.Y(), 1e-5)
}

func TestObjectModelMatrixRotationOrder(t *testing.T) {
	// Rotation order is x then y: a +z point pitched up 90 degrees lands on
	// +y, where the y rotation leaves it unchanged.
	obj := NewObject(WithRotationDeg(mgl32.Vec3{-90, 90, 0}))

	p := obj.ModelMatrix().Mul4x1(mgl32.Vec4{0, 0, 1, 1})
	assert.InDelta(t, 0, p.X(), 1e-5)
	assert.InDelta(t, 1, p.Y(), 1e-5)
	assert.InDelta(t, 0, p.Z(), 1e-5)
}

func TestObjectDefaults(t *testing.T) {
	obj := NewObject()

	assert.Empty(t, obj.TextureTag())
	assert.Empty(t, obj.MaterialTag())
	assert.Equal(t, mgl32.Vec2{1, 1}, obj.UVScale())
	assert.Equal(t, mgl32.Vec4{1, 1, 1, 1}, obj.Color())
	assert.True(t, obj.UseLighting())
	assert.Equal(t, mgl32.Ident4(), obj.ModelMatrix())
}

func TestSceneAddAndClear(t *testing.T) {
	s := NewScene(WithName("room"))

	s.Add(NewObject(WithObjectName("floor")))
	s.Add(NewObject(WithObjectName("ceiling")))
	assert.Equal(t, 2, s.Count())

	s.Clear()
	assert.Zero(t, s.Count())
	assert.Equal(t, "room", s.Name())
}

func TestSceneLightRouting(t *testing.T) {
	s := NewScene()

	p0 := light.NewLight(light.LightTypePoint, light.WithPosition(14, 17, -5.5))
	p1 := light.NewLight(light.LightTypePoint, light.WithPosition(16, 22, -5.5))
	spot := light.NewLight(light.LightTypeSpot)

	s.AddLight(p0)
	s.AddLight(spot)
	s.AddLight(p1)

	require.Len(t, s.Lights(), 2)
	assert.Equal(t, p0, s.Lights()[0])
	assert.Equal(t, spot, s.Spotlight())
}

func TestSceneSpotlightReplaced(t *testing.T) {
	s := NewScene()

	first := light.NewLight(light.LightTypeSpot)
	second := light.NewLight(light.LightTypeSpot)
	s.AddLight(first)
	s.AddLight(second)

	assert.Equal(t, second, s.Spotlight())
	assert.Empty(t, s.Lights())
}

func TestPointLightUniformNames(t *testing.T) {
	assert.Equal(t, "pointLights[0].position", pointLightUniform(0, "position"))
	assert.Equal(t, "pointLights[3].bActive", pointLightUniform(3, "bActive"))
}

func TestSceneBuilderOptions(t *testing.T) {
	obj := NewObject(WithObjectName("lamp"))
	spot := light.NewLight(light.LightTypeSpot)
	s := NewScene(
		WithName("arcade"),
		WithActive(false),
		WithObjects(obj),
		WithLights(light.NewLight(light.LightTypePoint), spot),
	)

	assert.Equal(t, "arcade", s.Name())
	assert.False(t, s.Active())
	assert.Equal(t, 1, s.Count())
	assert.Len(t, s.Lights(), 1)
	assert.Equal(t, spot, s.Spotlight())
}

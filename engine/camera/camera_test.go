package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestControllerDefaultsFaceNegativeZ(t *testing.T) {
	cc := NewController()

	front := cc.Front()
	assert.InDelta(t, 0, front.X(), 1e-5)
	assert.InDelta(t, 0, front.Y(), 1e-5)
	assert.InDelta(t, -1, front.Z(), 1e-5)
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, cc.Up())
}

func TestControllerMove(t *testing.T) {
	cc := NewController(WithSpeed(10))

	cc.Move(MoveForward, 0.5)
	pos := cc.Position()
	assert.InDelta(t, -5, pos.Z(), 1e-4)

	cc.Move(MoveRight, 0.5)
	pos = cc.Position()
	assert.InDelta(t, 5, pos.X(), 1e-4)

	cc.Move(MoveUp, 0.1)
	pos = cc.Position()
	assert.InDelta(t, 1, pos.Y(), 1e-4)
}

func TestControllerLookClampsPitch(t *testing.T) {
	cc := NewController(WithSensitivity(1))

	cc.Look(0, 200)
	front := cc.Front()
	// Pitch caps at 89 degrees, so the front vector never reaches the pole.
	assert.Less(t, front.Y(), float32(1))
	assert.Greater(t, front.Y(), float32(0.999))

	cc.Look(0, -500)
	front = cc.Front()
	assert.Greater(t, front.Y(), float32(-1))
	assert.Less(t, front.Y(), float32(-0.999))
}

func TestControllerAdjustSpeedClamps(t *testing.T) {
	cc := NewController(WithSpeed(20))

	cc.AdjustSpeed(100)
	assert.Equal(t, float32(45), cc.Speed())

	cc.AdjustSpeed(-100)
	assert.Equal(t, float32(1), cc.Speed())

	cc.AdjustSpeed(4)
	assert.Equal(t, float32(5), cc.Speed())
}

func TestControllerSetPoseDerivesAngles(t *testing.T) {
	cc := NewController()

	cc.SetPose(mgl32.Vec3{0, 5, 12}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0})
	assert.Equal(t, mgl32.Vec3{0, 5, 12}, cc.Position())

	// Mouse look after a pose jump continues from the stored direction.
	cc.Look(0, 0)
	front := cc.Front()
	assert.InDelta(t, 0, front.X(), 1e-5)
	assert.InDelta(t, -1, front.Z(), 1e-5)
}

func TestControllerSetPoseKeepsAxisAlignedUp(t *testing.T) {
	cc := NewController()

	// Top-down view with a rolled up vector.
	cc.SetPose(mgl32.Vec3{0, 16, 2}, mgl32.Vec3{0, -1, 0}, mgl32.Vec3{-1, 0, 0})
	assert.Equal(t, mgl32.Vec3{-1, 0, 0}, cc.Up())

	front := cc.Front()
	assert.InDelta(t, -1, front.Y(), 1e-2)
}

func TestCameraMatrices(t *testing.T) {
	cc := NewController(WithPosition(mgl32.Vec3{0, 0, 5}))
	c := NewCamera(
		WithController(cc),
		WithFov(mgl32.DegToRad(80)),
		WithViewport(1500, 1200),
	)

	assert.InDelta(t, 1.25, float64(c.Aspect()), 1e-6)

	// Facing -z from (0,0,5): the view transform moves the origin 5 units
	// down the view axis.
	view := c.ViewMatrix()
	origin := view.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.InDelta(t, -5, origin.Z(), 1e-4)

	proj := c.ProjectionMatrix()
	expected := mgl32.Perspective(mgl32.DegToRad(80), 1.25, 0.1, 100)
	assert.InDeltaSlice(t, expected[:], proj[:], 1e-5)
}

func TestCameraOrthographicExtents(t *testing.T) {
	cc := NewController(WithPosition(mgl32.Vec3{12, 5, 0}))
	c := NewCamera(
		WithController(cc),
		WithFov(mgl32.DegToRad(80)),
		WithViewport(1500, 1200),
		WithMode(ProjectionOrthographic),
	)

	require.Equal(t, ProjectionOrthographic, c.Mode())

	proj := c.ProjectionMatrix()
	expected := mgl32.Ortho(-1500.0/160, 1500.0/160, -1200.0/160, 1200.0/160, 0.1, 100)
	assert.InDeltaSlice(t, expected[:], proj[:], 1e-5)
}

func TestCameraUpdateTracksController(t *testing.T) {
	cc := NewController()
	c := NewCamera(WithController(cc), WithViewport(800, 600))

	before := c.ViewMatrix()
	cc.SetPosition(mgl32.Vec3{3, 0, 0})
	c.Update()
	after := c.ViewMatrix()

	assert.NotEqual(t, before, after)
	assert.Equal(t, mgl32.Vec3{3, 0, 0}, c.Position())
}

func TestCameraWithoutControllerIsIdentity(t *testing.T) {
	c := NewCamera()

	c.Update()
	assert.Equal(t, mgl32.Ident4(), c.ViewMatrix())
	assert.Equal(t, mgl32.Vec3{}, c.Position())
}

package main

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/Carmen-Shannon/oxy-gl/engine/camera"
	"github.com/Carmen-Shannon/oxy-gl/engine/light"
	"github.com/Carmen-Shannon/oxy-gl/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func newTestInput() *input {
	controller := camera.NewController()
	return &input{
		held:       make(map[uint32]bool),
		controller: controller,
		cam:        camera.NewCamera(camera.WithController(controller), camera.WithFov(mgl32.DegToRad(wideFov))),
		room:       scene.NewScene(scene.WithLights(light.NewLight(light.LightTypeSpot))),
		firstMouse: true,
	}
}

func TestViewPresets(t *testing.T) {
	tests := []struct {
		name     string
		key      uint32
		mode     camera.ProjectionMode
		position mgl32.Vec3
		front    mgl32.Vec3
	}{
		{"front ortho", common.KeyO, camera.ProjectionOrthographic, mgl32.Vec3{0, 5, 12}, mgl32.Vec3{0, 0, -1}},
		{"side ortho", common.KeyI, camera.ProjectionOrthographic, mgl32.Vec3{12, 5, 0}, mgl32.Vec3{-1, 0, 0}},
		{"top ortho", common.KeyU, camera.ProjectionOrthographic, mgl32.Vec3{0, 16, 2}, mgl32.Vec3{0, -1, 0}},
		{"perspective", common.KeyP, camera.ProjectionPerspective, mgl32.Vec3{0, 10, 12}, mgl32.Vec3{0, -0.5, -2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := newTestInput()
			in.keyDown(tt.key)

			assert.Equal(t, tt.mode, in.cam.Mode())
			assert.Equal(t, tt.position, in.controller.Position())
			wantFront := tt.front.Normalize()
			gotFront := in.controller.Front()
			assert.InDelta(t, float64(wantFront.X()), float64(gotFront.X()), 1e-5)
			assert.InDelta(t, float64(wantFront.Y()), float64(gotFront.Y()), 1e-5)
			assert.InDelta(t, float64(wantFront.Z()), float64(gotFront.Z()), 1e-5)
		})
	}
}

func TestPerspectivePresetResetsZoom(t *testing.T) {
	in := newTestInput()

	in.toggleZoom()
	assert.InDelta(t, float64(mgl32.DegToRad(narrowFov)), float64(in.cam.Fov()), 1e-6)

	in.keyDown(common.KeyP)
	assert.InDelta(t, float64(mgl32.DegToRad(wideFov)), float64(in.cam.Fov()), 1e-6)

	// The next right-click zooms in again instead of toggling back out.
	in.toggleZoom()
	assert.InDelta(t, float64(mgl32.DegToRad(narrowFov)), float64(in.cam.Fov()), 1e-6)
}

func TestTopPresetKeepsRolledUpVector(t *testing.T) {
	in := newTestInput()
	in.keyDown(common.KeyU)

	assert.Equal(t, mgl32.Vec3{-1, 0, 0}, in.controller.Up())
}

func TestSpotlightToggle(t *testing.T) {
	in := newTestInput()
	spot := in.room.Spotlight()

	assert.True(t, spot.Enabled())
	in.toggleSpotlight()
	assert.False(t, spot.Enabled())
	in.toggleSpotlight()
	assert.True(t, spot.Enabled())
}

func TestMovementKeysHeldAndReleased(t *testing.T) {
	in := newTestInput()

	in.keyDown(common.KeyW)
	start := in.controller.Position()
	in.tick(0.5)
	assert.Less(t, in.controller.Position().Z(), start.Z())

	in.keyUp(common.KeyW)
	mid := in.controller.Position()
	in.tick(0.5)
	assert.Equal(t, mid, in.controller.Position())
}

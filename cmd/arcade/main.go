// Command arcade renders a lit 3D arcade room: a textured soda can, floor
// lamp, bar chair, and arcade cabinet built entirely from the engine's
// parametric primitives. The camera flies free with WASD/QE and mouse look,
// with keyboard presets for fixed perspective and orthographic views.
package main

import (
	"flag"
	"log"
	"sync"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/Carmen-Shannon/oxy-gl/config"
	"github.com/Carmen-Shannon/oxy-gl/engine"
	"github.com/Carmen-Shannon/oxy-gl/engine/camera"
	"github.com/Carmen-Shannon/oxy-gl/engine/scene"
	"github.com/Carmen-Shannon/oxy-gl/engine/shader"
	"github.com/Carmen-Shannon/oxy-gl/engine/window"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// wideFov is the default walking field of view; narrowFov is the zoomed
	// view toggled by the right mouse button.
	wideFov   float32 = 80
	narrowFov float32 = 45
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the configuration file")
	profile := flag.Bool("profile", false, "log frame and memory statistics each second")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	win := window.NewWindow(
		window.WithTitle(cfg.Window.Title),
		window.WithWidth(cfg.Window.Width),
		window.WithHeight(cfg.Window.Height),
		window.WithCapturedCursor(),
	)

	program, err := shader.NewSceneProgram()
	if err != nil {
		log.Fatalf("failed to build scene shaders: %v", err)
	}

	controller := camera.NewController(
		camera.WithPosition(mgl32.Vec3{0, 10, 12}),
		camera.WithFront(mgl32.Vec3{0, -0.5, -2}),
		camera.WithSpeed(cfg.Camera.Speed),
		camera.WithSensitivity(cfg.Camera.Sensitivity),
	)
	cam := camera.NewCamera(
		camera.WithController(controller),
		camera.WithFov(mgl32.DegToRad(wideFov)),
		camera.WithViewport(float32(win.Width()), float32(win.Height())),
	)

	room := scene.NewScene(
		scene.WithName("arcade room"),
		scene.WithCamera(cam),
	)
	if err := prepareRoom(room, cfg.Assets.Root); err != nil {
		log.Fatalf("failed to prepare scene: %v", err)
	}

	eng := engine.NewEngine(
		engine.WithWindow(win),
		engine.WithProgram(program),
		engine.WithScene(0, room),
		engine.WithProfiling(*profile),
		engine.WithRenderFrameLimit(cfg.FrameLimit),
	)

	in := &input{
		held:       make(map[uint32]bool),
		controller: controller,
		cam:        cam,
		room:       room,
		firstMouse: true,
	}
	in.bind(win)
	eng.SetTickCallback(in.tick)

	eng.Run()

	room.Destroy()
	program.Destroy()
	_ = win.Close()
}

// input routes window events to the camera and scene. Key state is written
// by the window callbacks on the main thread and read by the engine tick
// goroutine, so it sits behind a mutex.
type input struct {
	mu   sync.Mutex
	held map[uint32]bool

	controller camera.Controller
	cam        camera.Camera
	room       scene.Scene

	firstMouse bool
	lastX      float64
	lastY      float64
	zoomed     bool
}

func (in *input) bind(win window.Window) {
	win.SetKeyDownCallback(in.keyDown)
	win.SetKeyUpCallback(in.keyUp)
	win.SetMouseMoveCallback(in.mouseMove)
	win.SetScrollCallback(in.scroll)
	win.SetLeftMouseDownCallback(func(x, y float64) { in.toggleSpotlight() })
	win.SetRightMouseDownCallback(func(x, y float64) { in.toggleZoom() })
}

func (in *input) keyDown(keyCode uint32) {
	switch keyCode {
	case common.KeyO:
		// Front orthographic view.
		in.controller.SetPose(mgl32.Vec3{0, 5, 12}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0})
		in.cam.SetMode(camera.ProjectionOrthographic)
	case common.KeyI:
		// Side orthographic view from +x.
		in.controller.SetPose(mgl32.Vec3{12, 5, 0}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 1, 0})
		in.cam.SetMode(camera.ProjectionOrthographic)
	case common.KeyU:
		// Top-down orthographic view.
		in.controller.SetPose(mgl32.Vec3{0, 16, 2}, mgl32.Vec3{0, -1, 0}, mgl32.Vec3{-1, 0, 0})
		in.cam.SetMode(camera.ProjectionOrthographic)
	case common.KeyP:
		// Default perspective view, with the field of view reset.
		in.controller.SetPose(mgl32.Vec3{0, 10, 12}, mgl32.Vec3{0, -0.5, -2}, mgl32.Vec3{0, 1, 0})
		in.cam.SetMode(camera.ProjectionPerspective)
		in.cam.SetFov(mgl32.DegToRad(wideFov))
		in.zoomed = false
	case common.KeyL:
		in.toggleSpotlight()
	default:
		in.mu.Lock()
		in.held[keyCode] = true
		in.mu.Unlock()
	}
}

func (in *input) keyUp(keyCode uint32) {
	in.mu.Lock()
	delete(in.held, keyCode)
	in.mu.Unlock()
}

// tick applies the held movement keys each engine tick.
func (in *input) tick(deltaTime float32) {
	in.mu.Lock()
	defer in.mu.Unlock()

	moves := map[uint32]camera.MoveDirection{
		common.KeyW: camera.MoveForward,
		common.KeyS: camera.MoveBackward,
		common.KeyA: camera.MoveLeft,
		common.KeyD: camera.MoveRight,
		common.KeyQ: camera.MoveUp,
		common.KeyE: camera.MoveDown,
	}
	for key, dir := range moves {
		if in.held[key] {
			in.controller.Move(dir, deltaTime)
		}
	}
}

func (in *input) mouseMove(x, y float64) {
	if in.firstMouse {
		in.lastX, in.lastY = x, y
		in.firstMouse = false
		return
	}
	xOffset := float32(x - in.lastX)
	yOffset := float32(in.lastY - y) // inverted: screen y grows downward
	in.lastX, in.lastY = x, y
	in.controller.Look(xOffset, yOffset)
}

func (in *input) scroll(delta float32) {
	in.controller.AdjustSpeed(delta)
}

func (in *input) toggleSpotlight() {
	if spot := in.room.Spotlight(); spot != nil {
		spot.SetEnabled(!spot.Enabled())
	}
}

func (in *input) toggleZoom() {
	in.zoomed = !in.zoomed
	if in.zoomed {
		in.cam.SetFov(mgl32.DegToRad(narrowFov))
	} else {
		in.cam.SetFov(mgl32.DegToRad(wideFov))
	}
}

package camera

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	defaultYaw         float32 = -90.0
	defaultPitch       float32 = 0.0
	defaultSpeed       float32 = 20.0
	defaultSensitivity float32 = 0.1

	minSpeed   float32 = 1.0
	maxSpeed   float32 = 45.0
	pitchLimit float32 = 89.0
)

// worldUp is the reference up axis for yaw/pitch orientation.
var worldUp = mgl32.Vec3{0, 1, 0}

// controllerImpl is the single implementation of Controller.
// Orientation lives in yaw/pitch; front and up are derived vectors kept in
// sync whenever the angles change. SetPose writes the vectors directly for
// stored viewpoints and back-solves the angles so mouse look resumes cleanly.
type controllerImpl struct {
	mu *sync.Mutex

	position mgl32.Vec3
	front    mgl32.Vec3
	up       mgl32.Vec3

	yaw   float32 // degrees around the y axis, -90 faces -z
	pitch float32 // degrees from the horizontal plane

	speed       float32
	sensitivity float32
}

// Compile-time interface compliance check
var _ Controller = &controllerImpl{}

// NewController creates a new first-person camera controller with sensible
// defaults: positioned at the origin facing -z, moving at 20 units per second.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - Controller: the newly created controller
func NewController(options ...ControllerOption) Controller {
	cc := &controllerImpl{
		mu:          &sync.Mutex{},
		position:    mgl32.Vec3{0, 0, 0},
		yaw:         defaultYaw,
		pitch:       defaultPitch,
		speed:       defaultSpeed,
		sensitivity: defaultSensitivity,
	}

	for _, option := range options {
		option(cc)
	}

	cc.updateVectors()
	return cc
}

// --- internal helpers ---

// updateVectors recomputes front and up from yaw/pitch.
// Caller must hold the mutex.
func (cc *controllerImpl) updateVectors() {
	yawRad := float64(mgl32.DegToRad(cc.yaw))
	pitchRad := float64(mgl32.DegToRad(cc.pitch))

	cc.front = mgl32.Vec3{
		float32(math.Cos(yawRad) * math.Cos(pitchRad)),
		float32(math.Sin(pitchRad)),
		float32(math.Sin(yawRad) * math.Cos(pitchRad)),
	}.Normalize()

	right := cc.front.Cross(worldUp)
	if right.Len() < 1e-6 {
		// Looking straight along the world up axis; keep the previous up.
		return
	}
	cc.up = right.Normalize().Cross(cc.front).Normalize()
}

// --- Controller implementation ---

func (cc *controllerImpl) Position() mgl32.Vec3 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.position
}

func (cc *controllerImpl) Target() mgl32.Vec3 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.position.Add(cc.front)
}

func (cc *controllerImpl) Front() mgl32.Vec3 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.front
}

func (cc *controllerImpl) Up() mgl32.Vec3 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.up
}

func (cc *controllerImpl) SetPosition(position mgl32.Vec3) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.position = position
}

func (cc *controllerImpl) SetPose(position, front, up mgl32.Vec3) {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	cc.position = position
	if front.Len() > 0 {
		cc.front = front.Normalize()
	}
	if up.Len() > 0 {
		cc.up = up.Normalize()
	}

	// Back-solve the angles so the next Look call continues from this view.
	cc.yaw = mgl32.RadToDeg(float32(math.Atan2(float64(cc.front.Z()), float64(cc.front.X()))))
	cc.pitch = mgl32.RadToDeg(float32(math.Asin(float64(common.Clamp(cc.front.Y(), -1, 1)))))
	cc.pitch = common.Clamp(cc.pitch, -pitchLimit, pitchLimit)
}

func (cc *controllerImpl) Move(direction MoveDirection, deltaTime float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	velocity := cc.speed * deltaTime
	right := cc.front.Cross(cc.up)
	if right.Len() > 0 {
		right = right.Normalize()
	}

	switch direction {
	case MoveForward:
		cc.position = cc.position.Add(cc.front.Mul(velocity))
	case MoveBackward:
		cc.position = cc.position.Sub(cc.front.Mul(velocity))
	case MoveLeft:
		cc.position = cc.position.Sub(right.Mul(velocity))
	case MoveRight:
		cc.position = cc.position.Add(right.Mul(velocity))
	case MoveUp:
		cc.position = cc.position.Add(cc.up.Mul(velocity))
	case MoveDown:
		cc.position = cc.position.Sub(cc.up.Mul(velocity))
	}
}

func (cc *controllerImpl) Look(xOffset, yOffset float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	cc.yaw += xOffset * cc.sensitivity
	cc.pitch += yOffset * cc.sensitivity
	cc.pitch = common.Clamp(cc.pitch, -pitchLimit, pitchLimit)
	cc.updateVectors()
}

func (cc *controllerImpl) Speed() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.speed
}

func (cc *controllerImpl) AdjustSpeed(delta float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.speed = common.Clamp(cc.speed+delta, minSpeed, maxSpeed)
}

func (cc *controllerImpl) Sensitivity() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.sensitivity
}

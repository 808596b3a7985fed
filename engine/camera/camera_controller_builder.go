package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type ControllerOption func(*controllerImpl)

// WithPosition sets the controller's starting world-space position.
//
// Parameters:
//   - position: world-space coordinates
//
// Returns:
//   - ControllerOption: a function that sets the starting position
func WithPosition(position mgl32.Vec3) ControllerOption {
	return func(cc *controllerImpl) {
		cc.position = position
	}
}

// WithFront sets the controller's starting view direction. The yaw and pitch
// angles are derived from it after normalization.
//
// Parameters:
//   - front: the view direction
//
// Returns:
//   - ControllerOption: a function that sets the starting view direction
func WithFront(front mgl32.Vec3) ControllerOption {
	return func(cc *controllerImpl) {
		if front.Len() == 0 {
			return
		}
		f := front.Normalize()
		cc.yaw = mgl32.RadToDeg(float32(math.Atan2(float64(f.Z()), float64(f.X()))))
		cc.pitch = mgl32.RadToDeg(float32(math.Asin(float64(f.Y()))))
	}
}

// WithYaw sets the starting horizontal angle in degrees.
//
// Parameters:
//   - yaw: degrees around the y axis, -90 faces -z
//
// Returns:
//   - ControllerOption: a function that sets the starting yaw
func WithYaw(yaw float32) ControllerOption {
	return func(cc *controllerImpl) {
		cc.yaw = yaw
	}
}

// WithPitch sets the starting vertical angle in degrees.
//
// Parameters:
//   - pitch: degrees from the horizontal plane
//
// Returns:
//   - ControllerOption: a function that sets the starting pitch
func WithPitch(pitch float32) ControllerOption {
	return func(cc *controllerImpl) {
		cc.pitch = pitch
	}
}

// WithSpeed sets the movement speed in world units per second.
//
// Parameters:
//   - speed: the movement speed
//
// Returns:
//   - ControllerOption: a function that sets the movement speed
func WithSpeed(speed float32) ControllerOption {
	return func(cc *controllerImpl) {
		cc.speed = speed
	}
}

// WithSensitivity sets the mouse look sensitivity multiplier.
//
// Parameters:
//   - sensitivity: the sensitivity multiplier
//
// Returns:
//   - ControllerOption: a function that sets the sensitivity
func WithSensitivity(sensitivity float32) ControllerOption {
	return func(cc *controllerImpl) {
		cc.sensitivity = sensitivity
	}
}

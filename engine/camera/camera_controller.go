package camera

import "github.com/go-gl/mathgl/mgl32"

// MoveDirection identifies one axis of first-person movement.
type MoveDirection int

const (
	MoveForward MoveDirection = iota
	MoveBackward
	MoveLeft
	MoveRight
	MoveUp
	MoveDown
)

// Controller defines the interface for first-person camera control.
// Controllers own positional state (position, orientation); the Camera reads
// position/target/up from the controller and computes view matrices.
//
// Orientation is tracked as yaw/pitch Euler angles. Mouse input adjusts the
// angles through Look; keyboard input translates the position through Move.
// SetPose bypasses the angles to jump directly to a stored viewpoint, and
// re-derives yaw/pitch so subsequent mouse input continues smoothly from it.
type Controller interface {
	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - mgl32.Vec3: world-space camera position
	Position() mgl32.Vec3

	// Target returns the look-at point (position plus the front vector).
	//
	// Returns:
	//   - mgl32.Vec3: world-space target position
	Target() mgl32.Vec3

	// Front returns the normalized view direction.
	//
	// Returns:
	//   - mgl32.Vec3: the front vector
	Front() mgl32.Vec3

	// Up returns the camera's local up vector.
	//
	// Returns:
	//   - mgl32.Vec3: the up vector
	Up() mgl32.Vec3

	// SetPosition sets the camera's world-space position directly.
	//
	// Parameters:
	//   - position: world-space coordinates
	SetPosition(position mgl32.Vec3)

	// SetPose jumps the controller to a stored viewpoint. The front vector is
	// normalized and yaw/pitch are re-derived from it; the up vector is taken
	// as given so axis-aligned top-down views keep their roll.
	//
	// Parameters:
	//   - position: world-space camera position
	//   - front: the view direction
	//   - up: the local up vector
	SetPose(position, front, up mgl32.Vec3)

	// Move translates the position along the camera's local axes.
	//
	// Parameters:
	//   - direction: the movement axis
	//   - deltaTime: the frame time in seconds, scaled by the movement speed
	Move(direction MoveDirection, deltaTime float32)

	// Look rotates the view by mouse offsets scaled by the sensitivity.
	// Pitch is clamped so the view cannot flip over the poles.
	//
	// Parameters:
	//   - xOffset: horizontal mouse movement in pixels
	//   - yOffset: vertical mouse movement in pixels
	Look(xOffset, yOffset float32)

	// Speed returns the movement speed in world units per second.
	//
	// Returns:
	//   - float32: the movement speed
	Speed() float32

	// AdjustSpeed adds delta to the movement speed, clamped to the allowed
	// range.
	//
	// Parameters:
	//   - delta: the speed change, positive or negative
	AdjustSpeed(delta float32)

	// Sensitivity returns the mouse look sensitivity multiplier.
	//
	// Returns:
	//   - float32: the sensitivity
	Sensitivity() float32
}

package scene

import (
	"github.com/dverhaert/go-direct-raytracer/pkg/math"
)

// InputState is the abstract input provider the camera reads each update.
// The windowing layer implements it; tests can drive the camera directly.
type InputState interface {
	MoveForward() bool
	MoveBackward() bool
	MoveLeft() bool
	MoveRight() bool

	// Looking reports whether the look button is held; LookDelta returns the
	// mouse motion since the previous update.
	Looking() bool
	LookDelta() (dx, dy float32)
}

// Camera is a pinhole camera with a yaw/pitch orientation. Pitch is not
// clamped: looking past straight up or down flips the basis.
type Camera struct {
	Origin   math.Vec3
	FOVAngle float32 // degrees

	Forward math.Vec3
	Up      math.Vec3
	Right   math.Vec3

	TotalYaw   float32
	TotalPitch float32

	MovementSpeed float32
	RotationSpeed float32
}

// NewCamera creates a camera at the origin looking along +Z
func NewCamera(origin math.Vec3, fovAngle float32) Camera {
	return Camera{
		Origin:        origin,
		FOVAngle:      fovAngle,
		Forward:       math.UnitZ,
		Up:            math.UnitY,
		Right:         math.UnitX,
		MovementSpeed: 3,
		RotationSpeed: 10,
	}
}

// CalculateCameraToWorld rebuilds the orthonormal basis from the current
// forward direction and returns the camera-to-world transform
func (c *Camera) CalculateCameraToWorld() math.Matrix {
	c.Right = math.UnitY.Cross(c.Forward).Normalize()
	c.Up = c.Forward.Cross(c.Right).Normalize()

	return math.NewMatrixFromAxes(c.Right, c.Up, c.Forward, c.Origin)
}

// Update applies one tick of interactive movement and mouse look
func (c *Camera) Update(input InputState, deltaTime float32) {
	var movementDir math.Vec3

	if input.MoveForward() {
		movementDir = movementDir.Add(c.Forward)
	}
	if input.MoveBackward() {
		movementDir = movementDir.Subtract(c.Forward)
	}
	if input.MoveLeft() {
		movementDir = movementDir.Subtract(c.Right)
	}
	if input.MoveRight() {
		movementDir = movementDir.Add(c.Right)
	}

	if movementDir != (math.Vec3{}) {
		movementDir = movementDir.Normalize()
		c.Origin = c.Origin.Add(movementDir.Multiply(c.MovementSpeed * deltaTime))
	}

	if !input.Looking() {
		return
	}

	deltaX, deltaY := input.LookDelta()
	if deltaX == 0 && deltaY == 0 {
		return
	}

	c.TotalYaw -= deltaX * c.RotationSpeed * deltaTime
	c.TotalPitch -= deltaY * c.RotationSpeed * deltaTime

	rotation := math.CreateRotation(math.ToRadians*c.TotalPitch, math.ToRadians*c.TotalYaw, 0)
	c.Forward = rotation.TransformVector(math.UnitZ).Normalize()
}

package scene

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/dverhaert/go-direct-raytracer/pkg/math"
)

// fakeInput drives the camera in tests
type fakeInput struct {
	forward, backward, left, right bool
	looking                        bool
	dx, dy                         float32
}

func (f *fakeInput) MoveForward() bool             { return f.forward }
func (f *fakeInput) MoveBackward() bool            { return f.backward }
func (f *fakeInput) MoveLeft() bool                { return f.left }
func (f *fakeInput) MoveRight() bool               { return f.right }
func (f *fakeInput) Looking() bool                 { return f.looking }
func (f *fakeInput) LookDelta() (float32, float32) { return f.dx, f.dy }

func TestCamera_CalculateCameraToWorld(t *testing.T) {
	camera := NewCamera(math.NewVec3(1, 2, 3), 90)

	m := camera.CalculateCameraToWorld()

	if camera.Right != math.UnitX {
		t.Errorf("Expected right (1,0,0), got %v", camera.Right)
	}
	if camera.Up != math.UnitY {
		t.Errorf("Expected up (0,1,0), got %v", camera.Up)
	}
	if got := m.Translation(); got != math.NewVec3(1, 2, 3) {
		t.Errorf("Expected translation column to be the origin, got %v", got)
	}
	if got := m.TransformVector(math.UnitZ); got != math.UnitZ {
		t.Errorf("Expected view forward to map to world forward, got %v", got)
	}
}

func TestCamera_BasisStaysOrthonormal(t *testing.T) {
	camera := NewCamera(math.Vec3{}, 90)
	camera.Forward = math.NewVec3(0.3, 0.4, 0.87).Normalize()

	camera.CalculateCameraToWorld()

	if !math.AreEqual(camera.Right.Length(), 1) || !math.AreEqual(camera.Up.Length(), 1) {
		t.Error("Expected unit basis vectors")
	}
	if !math.AreEqual(camera.Right.Dot(camera.Up), 0) ||
		!math.AreEqual(camera.Right.Dot(camera.Forward), 0) ||
		!math.AreEqual(camera.Up.Dot(camera.Forward), 0) {
		t.Error("Expected mutually orthogonal basis")
	}
}

func TestCamera_Update_Movement(t *testing.T) {
	camera := NewCamera(math.Vec3{}, 90)
	camera.MovementSpeed = 2

	camera.Update(&fakeInput{forward: true}, 0.5)
	if !math.AreEqual(camera.Origin.Z, 1) {
		t.Errorf("Expected forward move to z=1, got %v", camera.Origin)
	}

	// Diagonal movement is normalized before scaling
	camera = NewCamera(math.Vec3{}, 90)
	camera.MovementSpeed = 1
	camera.Update(&fakeInput{forward: true, right: true}, 1)
	if !math.AreEqual(camera.Origin.Length(), 1) {
		t.Errorf("Expected normalized diagonal step of length 1, got %f", camera.Origin.Length())
	}
}

func TestCamera_Update_MouseLook(t *testing.T) {
	camera := NewCamera(math.Vec3{}, 90)
	camera.RotationSpeed = 90 // degrees of yaw per unit delta-second

	// Deltas are ignored unless the look button is held
	camera.Update(&fakeInput{dx: 10}, 1)
	if camera.Forward != math.UnitZ {
		t.Errorf("Expected forward unchanged without look button, got %v", camera.Forward)
	}

	// A negative x-delta yaws right by 90°: forward lands on +X
	camera.Update(&fakeInput{looking: true, dx: -1}, 1)
	if math32.Abs(camera.TotalYaw-90) > 1e-4 {
		t.Fatalf("Expected 90° total yaw, got %f", camera.TotalYaw)
	}
	if math32.Abs(camera.Forward.X-1) > 1e-4 || math32.Abs(camera.Forward.Z) > 1e-4 {
		t.Errorf("Expected forward (1,0,0), got %v", camera.Forward)
	}
}

package geometry

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/dverhaert/go-direct-raytracer/pkg/math"
)

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(math.NewVec3(0, 0, 0), 1, 0)
	ray := math.NewRay(math.NewVec3(2, 0, 0), math.NewVec3(0, 1, 0))

	hit := NewHitRecord()
	if sphere.Hit(ray, &hit) {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_FrontAndBack(t *testing.T) {
	sphere := NewSphere(math.NewVec3(0, 0, 0), 1, 3)

	tests := []struct {
		name      string
		origin    math.Vec3
		direction math.Vec3
		expectedT float32
	}{
		{"front hit takes nearer root", math.NewVec3(0, 0, -2), math.NewVec3(0, 0, 1), 1},
		{"origin inside takes farther root", math.NewVec3(0, 0, 0), math.NewVec3(0, 0, 1), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := math.NewRay(tt.origin, tt.direction)

			hit := NewHitRecord()
			if !sphere.Hit(ray, &hit) {
				t.Fatal("Expected hit, but got miss")
			}

			if math32.Abs(hit.T-tt.expectedT) > 1e-5 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}

			if hit.MaterialIndex != 3 {
				t.Errorf("Expected material index 3, got %d", hit.MaterialIndex)
			}

			// Hit point lies on the surface; normal points outward from center
			radial := hit.Point.Subtract(sphere.Origin)
			if math32.Abs(radial.Length()-sphere.Radius) > 1e-4 {
				t.Errorf("Hit point not on surface: |p-c|=%f", radial.Length())
			}
			if math32.Abs(hit.Normal.Length()-1) > 1e-5 {
				t.Errorf("Expected unit normal, got length %f", hit.Normal.Length())
			}
			if hit.Normal.Dot(radial) < 0 {
				t.Errorf("Expected outward normal, got %v", hit.Normal)
			}
		})
	}
}

func TestSphere_Hit_Bounds(t *testing.T) {
	sphere := NewSphere(math.NewVec3(0, 0, 0), 1, 0)
	ray := math.NewBoundedRay(math.NewVec3(0, 0, -2), math.NewVec3(0, 0, 1), 1e-4, 0.5)

	hit := NewHitRecord()
	if sphere.Hit(ray, &hit) {
		t.Errorf("Expected miss due to tMax bound, but got hit at t=%f", hit.T)
	}

	ray = math.NewBoundedRay(math.NewVec3(0, 0, -2), math.NewVec3(0, 0, 1), 3.5, 1000)
	if sphere.Hit(ray, &hit) {
		t.Errorf("Expected miss due to tMin bound, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_TangentIsMiss(t *testing.T) {
	sphere := NewSphere(math.NewVec3(0, 0, 0), 1, 0)

	// Grazing ray with zero discriminant
	ray := math.NewRay(math.NewVec3(1, 0, -2), math.NewVec3(0, 0, 1))

	hit := NewHitRecord()
	if sphere.Hit(ray, &hit) {
		t.Errorf("Expected tangent ray to miss, got hit at t=%f", hit.T)
	}
}

func TestSphere_AnyHit(t *testing.T) {
	sphere := NewSphere(math.NewVec3(0, 0, 5), 1, 0)

	if !sphere.AnyHit(math.NewRay(math.NewVec3(0, 0, 0), math.NewVec3(0, 0, 1))) {
		t.Error("Expected any-hit for ray through sphere")
	}
	if sphere.AnyHit(math.NewBoundedRay(math.NewVec3(0, 0, 0), math.NewVec3(0, 0, 1), 1e-3, 2)) {
		t.Error("Expected no any-hit when the sphere lies past tMax")
	}
	if sphere.AnyHit(math.NewRay(math.NewVec3(0, 5, 0), math.NewVec3(0, 0, 1))) {
		t.Error("Expected no any-hit for ray passing beside the sphere")
	}
}

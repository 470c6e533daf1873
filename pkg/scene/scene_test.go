package scene

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/dverhaert/go-direct-raytracer/pkg/color"
	"github.com/dverhaert/go-direct-raytracer/pkg/geometry"
	"github.com/dverhaert/go-direct-raytracer/pkg/material"
	"github.com/dverhaert/go-direct-raytracer/pkg/math"
)

func TestNewScene_DefaultMaterial(t *testing.T) {
	s := NewScene("test")

	if len(s.Materials) != 1 {
		t.Fatalf("Expected one default material, got %d", len(s.Materials))
	}
	if s.Materials[0].Kind != material.KindSolidColor || s.Materials[0].Color != color.Red {
		t.Error("Expected default material to be solid red")
	}
}

func TestScene_ClosestHit_TwoSpheres(t *testing.T) {
	s := NewTwoSpheresScene()

	// Straight down the view axis between the spheres
	ray := math.NewRay(math.NewVec3(0, 0, 0), math.NewVec3(0, 0, 1))

	hit := geometry.NewHitRecord()
	s.ClosestHit(ray, &hit)

	if !hit.DidHit {
		t.Fatal("Expected hit")
	}

	// Both spheres at (±25, 0, 100) r=50: t = (200 - √7500) / 2
	expectedT := (200 - math32.Sqrt(7500)) / 2
	if math32.Abs(hit.T-expectedT) > 1e-2 {
		t.Errorf("Expected t=%f, got t=%f", expectedT, hit.T)
	}

	if hit.MaterialIndex != 1 && hit.MaterialIndex != 2 {
		t.Errorf("Expected a sphere material index (1 or 2), got %d", hit.MaterialIndex)
	}
}

func TestScene_ClosestHit_PrefersNearest(t *testing.T) {
	s := NewScene("test")
	matA := s.AddMaterial(material.NewSolidColor(color.Green))
	matB := s.AddMaterial(material.NewSolidColor(color.Blue))

	s.AddSphere(math.NewVec3(0, 0, 20), 1, matA)
	s.AddSphere(math.NewVec3(0, 0, 10), 1, matB)
	s.AddPlane(math.NewVec3(0, 0, 50), math.NewVec3(0, 0, -1), matA)

	ray := math.NewRay(math.NewVec3(0, 0, 0), math.NewVec3(0, 0, 1))

	hit := geometry.NewHitRecord()
	s.ClosestHit(ray, &hit)

	if !hit.DidHit || hit.MaterialIndex != matB {
		t.Errorf("Expected nearest sphere (material %d), got material %d", matB, hit.MaterialIndex)
	}
	if math32.Abs(hit.T-9) > 1e-4 {
		t.Errorf("Expected t=9, got %f", hit.T)
	}
}

func TestScene_AnyHit(t *testing.T) {
	s := NewScene("test")
	s.AddSphere(math.NewVec3(0, 0, 10), 1, 0)

	if !s.AnyHit(math.NewRay(math.NewVec3(0, 0, 0), math.NewVec3(0, 0, 1))) {
		t.Error("Expected any-hit through the sphere")
	}
	if s.AnyHit(math.NewBoundedRay(math.NewVec3(0, 0, 0), math.NewVec3(0, 0, 1), 1e-3, 5)) {
		t.Error("Expected no any-hit when the sphere is past tMax")
	}
	if s.AnyHit(math.NewRay(math.NewVec3(0, 10, 0), math.NewVec3(0, 0, 1))) {
		t.Error("Expected no any-hit beside the sphere")
	}
}

func TestScene_MaterialTableLimit(t *testing.T) {
	s := NewScene("test")

	// One default + 255 more fills the uint8 address space
	for i := 0; i < 255; i++ {
		s.AddMaterial(material.NewSolidColor(color.White))
	}

	defer func() {
		if recover() == nil {
			t.Error("Expected panic on 257th material")
		}
	}()
	s.AddMaterial(material.NewSolidColor(color.White))
}

func TestCatalog(t *testing.T) {
	for _, name := range []string{"two-spheres", "spheres-lit", "cook-torrance", "triangle", "reference", "soft-shadows"} {
		s, err := ByName(name, "")
		if err != nil {
			t.Fatalf("Building %q: %v", name, err)
		}
		if s.Name != name {
			t.Errorf("Expected scene name %q, got %q", name, s.Name)
		}
	}

	if _, err := ByName("no-such-scene", ""); err == nil {
		t.Error("Expected error for unknown scene")
	}
}

func TestReferenceScene_AnimationRetransforms(t *testing.T) {
	s := NewReferenceScene()

	if len(s.Meshes) != 3 {
		t.Fatalf("Expected three cull-mode triangles, got %d meshes", len(s.Meshes))
	}

	before := s.Meshes[0].TransformedPositions[0]
	s.Update(1.0)
	after := s.Meshes[0].TransformedPositions[0]

	if before == after {
		t.Error("Expected animation to move the mesh vertices")
	}
	if len(s.Meshes[0].TransformedPositions) != len(s.Meshes[0].Positions) {
		t.Error("Expected caches to stay sized after animation")
	}
}

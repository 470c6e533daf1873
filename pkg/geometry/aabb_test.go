package geometry

import (
	"testing"

	"github.com/dverhaert/go-direct-raytracer/pkg/math"
)

func TestIntersectAABB(t *testing.T) {
	bmin := math.NewVec3(-1, -1, -1)
	bmax := math.NewVec3(1, 1, 1)

	tests := []struct {
		name      string
		ray       math.Ray
		expectHit bool
	}{
		{"through the center", math.NewRay(math.NewVec3(0, 0, -5), math.NewVec3(0, 0, 1)), true},
		{"beside the box", math.NewRay(math.NewVec3(3, 0, -5), math.NewVec3(0, 0, 1)), false},
		{"box behind origin", math.NewRay(math.NewVec3(0, 0, 5), math.NewVec3(0, 0, 1)), false},
		{"origin inside", math.NewRay(math.NewVec3(0, 0, 0), math.NewVec3(0, 0, 1)), true},
		{"diagonal through corner region", math.NewRay(math.NewVec3(-5, -5, -5), math.NewVec3(1, 1, 1).Normalize()), true},
		{"box past tMax", math.NewBoundedRay(math.NewVec3(0, 0, -5), math.NewVec3(0, 0, 1), 1e-4, 2), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IntersectAABB(tt.ray, bmin, bmax); got != tt.expectHit {
				t.Errorf("Expected hit=%t, got %t", tt.expectHit, got)
			}
		})
	}
}

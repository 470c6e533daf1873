package geometry

import (
	"github.com/chewxy/math32"

	"github.com/dverhaert/go-direct-raytracer/pkg/math"
)

// HitRecord contains information about a ray-surface intersection. T starts
// at +Inf so closest-so-far comparisons work before the first hit.
type HitRecord struct {
	Point         math.Vec3 // Point of intersection
	Normal        math.Vec3 // Surface normal at intersection (unit length)
	T             float32   // Parameter t along the ray
	DidHit        bool      // Whether anything was hit
	MaterialIndex uint8     // Index into the scene's material table
}

// NewHitRecord returns an empty record ready for closest-hit accumulation
func NewHitRecord() HitRecord {
	return HitRecord{T: math32.Inf(1)}
}

// Reset clears the record for reuse as per-worker scratch
func (h *HitRecord) Reset() {
	*h = HitRecord{T: math32.Inf(1)}
}

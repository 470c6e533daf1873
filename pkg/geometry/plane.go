package geometry

import (
	"github.com/chewxy/math32"

	"github.com/dverhaert/go-direct-raytracer/pkg/math"
)

// Plane represents an infinite plane defined by a point and a unit normal.
// The normal is never flipped; backfacing planes shade with their stored
// normal.
type Plane struct {
	Origin        math.Vec3
	Normal        math.Vec3
	MaterialIndex uint8
}

// NewPlane creates a new plane. The normal is normalized on construction.
func NewPlane(origin, normal math.Vec3, materialIndex uint8) Plane {
	return Plane{Origin: origin, Normal: normal.Normalize(), MaterialIndex: materialIndex}
}

// Hit tests the ray against the plane and fills the record
func (p *Plane) Hit(ray math.Ray, hit *HitRecord) bool {
	denominator := ray.Direction.Dot(p.Normal)
	if math32.Abs(denominator) < 1e-8 {
		return false
	}

	t := p.Origin.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t < ray.TMin || t > ray.TMax {
		return false
	}

	hit.DidHit = true
	hit.T = t
	hit.Point = ray.At(t)
	hit.Normal = p.Normal
	hit.MaterialIndex = p.MaterialIndex

	return true
}

// AnyHit reports whether the ray intersects the plane inside [TMin, TMax]
func (p *Plane) AnyHit(ray math.Ray) bool {
	denominator := ray.Direction.Dot(p.Normal)
	if math32.Abs(denominator) < 1e-8 {
		return false
	}

	t := p.Origin.Subtract(ray.Origin).Dot(p.Normal) / denominator
	return t >= ray.TMin && t <= ray.TMax
}

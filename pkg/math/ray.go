package math

import "github.com/chewxy/math32"

// Default ray bounds. TMin avoids self-intersection on secondary rays.
const (
	DefaultTMin = 1e-4
)

// Ray represents a ray with an origin, a normalized direction and a valid
// parameter interval [TMin, TMax]
type Ray struct {
	Origin    Vec3
	Direction Vec3
	TMin      float32
	TMax      float32
}

// NewRay creates a new ray with the default parameter interval
func NewRay(origin, direction Vec3) Ray {
	return Ray{
		Origin:    origin,
		Direction: direction,
		TMin:      DefaultTMin,
		TMax:      math32.Inf(1),
	}
}

// NewBoundedRay creates a new ray with an explicit parameter interval
func NewBoundedRay(origin, direction Vec3, tMin, tMax float32) Ray {
	return Ray{
		Origin:    origin,
		Direction: direction,
		TMin:      tMin,
		TMax:      tMax,
	}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float32) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

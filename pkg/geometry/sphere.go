package geometry

import (
	"github.com/chewxy/math32"

	"github.com/dverhaert/go-direct-raytracer/pkg/math"
)

// Sphere represents an analytic sphere
type Sphere struct {
	Origin        math.Vec3
	Radius        float32
	MaterialIndex uint8
}

// NewSphere creates a new sphere
func NewSphere(origin math.Vec3, radius float32, materialIndex uint8) Sphere {
	return Sphere{Origin: origin, Radius: radius, MaterialIndex: materialIndex}
}

// Hit tests the ray against the sphere and fills the record on the closest
// intersection inside [TMin, TMax]
func (s *Sphere) Hit(ray math.Ray, hit *HitRecord) bool {
	oc := ray.Origin.Subtract(s.Origin)

	// Quadratic coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(oc)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant <= 0 {
		return false
	}

	sqrtD := math32.Sqrt(discriminant)

	t := (-b - sqrtD) / (2 * a)
	if t < ray.TMin || t > ray.TMax {
		t = (-b + sqrtD) / (2 * a)
		if t < ray.TMin || t > ray.TMax {
			return false
		}
	}

	hit.DidHit = true
	hit.T = t
	hit.Point = ray.At(t)
	hit.Normal = hit.Point.Subtract(s.Origin).Normalize()
	hit.MaterialIndex = s.MaterialIndex

	return true
}

// AnyHit reports whether the ray intersects the sphere inside [TMin, TMax]
func (s *Sphere) AnyHit(ray math.Ray) bool {
	oc := ray.Origin.Subtract(s.Origin)

	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(oc)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant <= 0 {
		return false
	}

	sqrtD := math32.Sqrt(discriminant)

	t := (-b - sqrtD) / (2 * a)
	if t >= ray.TMin && t <= ray.TMax {
		return true
	}

	t = (-b + sqrtD) / (2 * a)
	return t >= ray.TMin && t <= ray.TMax
}

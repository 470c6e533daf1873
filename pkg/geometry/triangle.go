package geometry

import (
	"github.com/chewxy/math32"

	"github.com/dverhaert/go-direct-raytracer/pkg/math"
)

// CullMode is the per-triangle policy on which side counts as front
type CullMode uint8

const (
	FrontFaceCulling CullMode = iota
	BackFaceCulling
	NoCulling
)

// Triangle represents a single triangle with a precomputed unit face normal
type Triangle struct {
	V0, V1, V2    math.Vec3
	Normal        math.Vec3
	CullMode      CullMode
	MaterialIndex uint8
}

// NewTriangle creates a triangle and computes its face normal from the
// winding order v0→v1→v2
func NewTriangle(v0, v1, v2 math.Vec3) Triangle {
	edge1 := v1.Subtract(v0)
	edge2 := v2.Subtract(v0)
	return Triangle{
		V0: v0, V1: v1, V2: v2,
		Normal: edge1.Cross(edge2).Normalize(),
	}
}

// NewTriangleWithNormal creates a triangle with a provided normal
func NewTriangleWithNormal(v0, v1, v2, normal math.Vec3) Triangle {
	return Triangle{V0: v0, V1: v1, V2: v2, Normal: normal.Normalize()}
}

// Hit tests the ray against the triangle for a closest-hit query and fills
// the record
func (t *Triangle) Hit(ray math.Ray, hit *HitRecord) bool {
	return t.intersect(ray, hit, false)
}

// AnyHit tests the ray against the triangle for a shadow query. The cull
// sense is inverted so shadow rays leaving a front-lit surface still see the
// same triangle.
func (t *Triangle) AnyHit(ray math.Ray) bool {
	var scratch HitRecord
	return t.intersect(ray, &scratch, true)
}

func (t *Triangle) intersect(ray math.Ray, hit *HitRecord, ignoreHitRecord bool) bool {
	dp := t.Normal.Dot(ray.Direction)
	if math32.Abs(dp) < 1e-7 {
		return false
	}

	if ignoreHitRecord {
		switch t.CullMode {
		case BackFaceCulling:
			if dp < 0 {
				return false
			}
		case FrontFaceCulling:
			if dp > 0 {
				return false
			}
		}
	} else {
		switch t.CullMode {
		case BackFaceCulling:
			if dp > 0 {
				return false
			}
		case FrontFaceCulling:
			if dp < 0 {
				return false
			}
		}
	}

	// Plane intersection through the centroid
	centroid := t.V0.Add(t.V1).Add(t.V2).Multiply(1.0 / 3.0)
	tHit := centroid.Subtract(ray.Origin).Dot(t.Normal) / dp
	if tHit < ray.TMin || tHit > ray.TMax {
		return false
	}

	point := ray.At(tHit)

	// Inside-edge tests against the face normal
	edge := t.V0.Subtract(t.V2)
	rel := point.Subtract(t.V2)
	if edge.Cross(rel).Dot(t.Normal) < 0 {
		return false
	}

	edge = t.V1.Subtract(t.V0)
	rel = point.Subtract(t.V0)
	if edge.Cross(rel).Dot(t.Normal) < 0 {
		return false
	}

	edge = t.V2.Subtract(t.V1)
	rel = point.Subtract(t.V1)
	if edge.Cross(rel).Dot(t.Normal) < 0 {
		return false
	}

	if ignoreHitRecord {
		return true
	}

	hit.DidHit = true
	hit.T = tHit
	hit.Point = point
	hit.Normal = t.Normal
	hit.MaterialIndex = t.MaterialIndex

	return true
}

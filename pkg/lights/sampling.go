package lights

import (
	"math/rand"

	"github.com/dverhaert/go-direct-raytracer/pkg/math"
)

// SampleTriangle returns a uniform random point on the triangle (a, b, c).
// The unit-square sample is reflected across u+v=1 into barycentric range.
func SampleTriangle(a, b, c math.Vec3, random *rand.Rand) math.Vec3 {
	u := random.Float32()
	v := random.Float32()

	if u+v > 1 {
		u = 1 - u
		v = 1 - v
	}

	return a.Multiply(1 - u - v).Add(b.Multiply(u)).Add(c.Multiply(v))
}

// SamplePoint returns a shadow-ray target on the light. Lights without an
// emissive shape sample their origin.
func (l *Light) SamplePoint(random *rand.Rand) math.Vec3 {
	if l.Type == TypeArea && l.Shape == ShapeTriangular {
		return SampleTriangle(l.Vertices[0], l.Vertices[1], l.Vertices[2], random)
	}
	return l.Origin
}

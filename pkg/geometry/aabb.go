package geometry

import (
	"github.com/chewxy/math32"

	"github.com/dverhaert/go-direct-raytracer/pkg/math"
)

// IntersectAABB performs the slab test of the ray against the box [bmin, bmax].
// A hit requires the interval to be non-empty, in front of the origin, and
// closer than the ray's current TMax.
func IntersectAABB(ray math.Ray, bmin, bmax math.Vec3) bool {
	tx1 := (bmin.X - ray.Origin.X) / ray.Direction.X
	tx2 := (bmax.X - ray.Origin.X) / ray.Direction.X

	tmin := math32.Min(tx1, tx2)
	tmax := math32.Max(tx1, tx2)

	ty1 := (bmin.Y - ray.Origin.Y) / ray.Direction.Y
	ty2 := (bmax.Y - ray.Origin.Y) / ray.Direction.Y

	tmin = math32.Max(tmin, math32.Min(ty1, ty2))
	tmax = math32.Min(tmax, math32.Max(ty1, ty2))

	tz1 := (bmin.Z - ray.Origin.Z) / ray.Direction.Z
	tz2 := (bmax.Z - ray.Origin.Z) / ray.Direction.Z

	tmin = math32.Max(tmin, math32.Min(tz1, tz2))
	tmax = math32.Min(tmax, math32.Max(tz1, tz2))

	return tmax >= tmin && tmin < ray.TMax && tmax > 0
}

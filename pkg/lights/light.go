// Package lights provides the type-tagged light sources and their
// direction, radiance and observed-area queries.
package lights

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/dverhaert/go-direct-raytracer/pkg/color"
	"github.com/dverhaert/go-direct-raytracer/pkg/math"
)

// Type tags the kind of light source
type Type uint8

const (
	TypePoint Type = iota
	TypeArea
	TypeDirectional
)

// Shape is the emissive surface shape of an area light
type Shape uint8

const (
	ShapeNone Shape = iota
	ShapeTriangular
)

// Light is a type-tagged light source. Direction doubles as the surface
// normal for area lights.
type Light struct {
	Type      Type
	Origin    math.Vec3
	Direction math.Vec3
	Color     color.RGB
	Intensity float32

	Shape    Shape
	Radius   float32
	Vertices []math.Vec3
}

// NewPointLight creates a point light
func NewPointLight(origin math.Vec3, intensity float32, c color.RGB) Light {
	return Light{Type: TypePoint, Origin: origin, Intensity: intensity, Color: c}
}

// NewDirectionalLight creates a directional light
func NewDirectionalLight(direction math.Vec3, intensity float32, c color.RGB) Light {
	return Light{Type: TypeDirectional, Direction: direction.Normalize(), Intensity: intensity, Color: c}
}

// NewAreaLight creates an area light with an emissive shape. A triangular
// shape requires exactly three vertices.
func NewAreaLight(origin math.Vec3, intensity float32, c color.RGB, shape Shape, radius float32, vertices []math.Vec3) Light {
	switch shape {
	case ShapeNone:
		if len(vertices) != 0 {
			panic(fmt.Sprintf("lights: shapeless area light has %d vertices", len(vertices)))
		}
	case ShapeTriangular:
		if len(vertices) != 3 {
			panic(fmt.Sprintf("lights: triangular area light has %d vertices, want 3", len(vertices)))
		}
	}

	l := Light{
		Type:      TypeArea,
		Origin:    origin,
		Intensity: intensity,
		Color:     c,
		Shape:     shape,
		Radius:    radius,
		Vertices:  vertices,
	}

	if shape == ShapeTriangular {
		edge1 := vertices[1].Subtract(vertices[0])
		edge2 := vertices[2].Subtract(vertices[0])
		l.Direction = edge1.Cross(edge2).Normalize()
	}

	return l
}

// HasSoftShadows reports whether the light needs multiple shadow samples.
// Infinitely small or infinitely far lights do not.
func (l *Light) HasSoftShadows() bool {
	return l.Type != TypeDirectional && l.Type != TypePoint
}

// DirectionToLight returns the unit direction from the shaded point to the
// light and the distance to it. lightPoint is the light origin or a sampled
// point on the emissive surface. Directional lights are infinitely far away.
func (l *Light) DirectionToLight(lightPoint, hitOrigin math.Vec3) (math.Vec3, float32) {
	switch l.Type {
	case TypePoint, TypeArea:
		return lightPoint.Subtract(hitOrigin).NormalizeWithLength()
	case TypeDirectional:
		return l.Direction.Negate(), math32.Inf(1)
	}
	return math.Vec3{}, 0
}

// Radiance returns the incoming energy at the shaded point. Point and area
// lights fall off with the squared distance to the light origin; area lights
// are additionally weighted by the geometric term of the sampled point.
func (l *Light) Radiance(lightPoint, hitOrigin, hitNormal math.Vec3) color.RGB {
	switch l.Type {
	case TypePoint:
		toLight := l.Origin.Subtract(hitOrigin)
		return l.Color.Scale(l.Intensity / toLight.Dot(toLight))

	case TypeArea:
		toLight := l.Origin.Subtract(hitOrigin)
		rad := l.Color.Scale(l.Intensity / toLight.Dot(toLight))

		toSample := lightPoint.Subtract(hitOrigin)
		facing := math32.Max(0, l.Direction.Negate().Dot(hitNormal))
		return rad.Scale(facing / toSample.Dot(toSample))

	case TypeDirectional:
		return l.Color.Scale(l.Intensity)
	}

	return color.Black
}

// ObservedArea returns the cosine between the surface normal and the light
// direction, unclamped; callers skip contributions when it is not positive
func (l *Light) ObservedArea(dirToLight, normal math.Vec3) float32 {
	switch l.Type {
	case TypePoint, TypeArea:
		return dirToLight.Dot(normal)
	case TypeDirectional:
		return l.Direction.Negate().Dot(normal)
	}
	return 0
}

package material

import (
	"fmt"

	"github.com/dverhaert/go-direct-raytracer/pkg/color"
	"github.com/dverhaert/go-direct-raytracer/pkg/geometry"
	"github.com/dverhaert/go-direct-raytracer/pkg/math"
)

// Kind tags the shading model of a material
type Kind uint8

const (
	KindSolidColor Kind = iota
	KindLambert
	KindLambertPhong
	KindCookTorrance
)

// Material is a tagged shading model. All variants share one value type so
// the scene can store its material table by value and address entries with a
// uint8 index.
type Material struct {
	Kind Kind

	Color color.RGB // diffuse color / albedo

	DiffuseReflectance  float32 // kd
	SpecularReflectance float32 // ks
	PhongExponent       float32

	Metalness float32 // 0 or 1
	Roughness float32 // (0, 1], smooth to rough
}

// NewSolidColor creates a material that returns its color unconditionally
func NewSolidColor(c color.RGB) Material {
	return Material{Kind: KindSolidColor, Color: c}
}

// NewLambert creates a perfectly diffuse material. kd must be in [0, 1].
func NewLambert(diffuseColor color.RGB, kd float32) Material {
	if kd < 0 || kd > 1 {
		panic(fmt.Sprintf("material: lambert reflectance %v outside [0, 1]", kd))
	}
	return Material{Kind: KindLambert, Color: diffuseColor, DiffuseReflectance: kd}
}

// NewLambertPhong creates a diffuse material with a Phong specular lobe
func NewLambertPhong(diffuseColor color.RGB, kd, ks, phongExponent float32) Material {
	return Material{
		Kind:                KindLambertPhong,
		Color:               diffuseColor,
		DiffuseReflectance:  kd,
		SpecularReflectance: ks,
		PhongExponent:       phongExponent,
	}
}

// NewCookTorrance creates a microfacet material. Metalness must be exactly 0
// or 1 and roughness nonzero.
func NewCookTorrance(albedo color.RGB, metalness, roughness float32) Material {
	if metalness != 0 && metalness != 1 {
		panic(fmt.Sprintf("material: cook-torrance metalness %v must be 0 or 1", metalness))
	}
	if roughness == 0 {
		panic("material: cook-torrance roughness must be nonzero")
	}
	return Material{Kind: KindCookTorrance, Color: albedo, Metalness: metalness, Roughness: roughness}
}

// Shade evaluates the material's BRDF for light direction l and view
// direction v, both pointing away from the surface. The renderer guarantees
// l·n and v·n are positive before calling.
func (m *Material) Shade(hit *geometry.HitRecord, l, v math.Vec3) color.RGB {
	switch m.Kind {
	case KindSolidColor:
		return m.Color

	case KindLambert:
		return Lambert(m.DiffuseReflectance, m.Color)

	case KindLambertPhong:
		return Lambert(m.DiffuseReflectance, m.Color).
			Add(Phong(m.SpecularReflectance, m.PhongExponent, l, v, hit.Normal))

	case KindCookTorrance:
		return m.shadeCookTorrance(hit, l, v)
	}

	return color.Black
}

func (m *Material) shadeCookTorrance(hit *geometry.HitRecord, l, v math.Vec3) color.RGB {
	f0 := color.RGB{R: 0.04, G: 0.04, B: 0.04}
	if m.Metalness == 1 {
		f0 = m.Color
	}

	h := v.Add(l).Normalize()

	f := FresnelSchlick(h, v, f0)
	d := NormalDistributionGGX(hit.Normal, h, m.Roughness)
	g := GeometrySmith(hit.Normal, v, l, m.Roughness)

	vDotN := v.Dot(hit.Normal)
	lDotN := l.Dot(hit.Normal)

	specular := f.Scale(d * g / (4 * vDotN * lDotN))

	if m.Metalness == 1 {
		return specular
	}

	diffuse := LambertRGB(color.White.Subtract(f), m.Color)
	return diffuse.Add(specular)
}

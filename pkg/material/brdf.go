// Package material provides the BRDF library and the tagged shading models
// built on it.
package material

import (
	"github.com/chewxy/math32"

	"github.com/dverhaert/go-direct-raytracer/pkg/color"
	"github.com/dverhaert/go-direct-raytracer/pkg/math"
)

// Lambert returns the diffuse reflectance: color * kd / π
func Lambert(kd float32, diffuseColor color.RGB) color.RGB {
	return diffuseColor.Scale(kd / math32.Pi)
}

// LambertRGB is Lambert with a per-channel reflectance, used by
// Cook-Torrance where kd = 1 - F
func LambertRGB(kd color.RGB, diffuseColor color.RGB) color.RGB {
	return kd.Multiply(diffuseColor).Scale(1 / math32.Pi)
}

// Phong returns the achromatic specular term ks * max(0, dot(R, V))^exp,
// with R the light direction mirrored about the normal. l points from the
// surface to the light, v from the surface to the viewer.
func Phong(ks, exp float32, l, v, n math.Vec3) color.RGB {
	reflected := l.Reflect(n)
	cosAlpha := math32.Max(0, reflected.Dot(v))
	value := ks * math32.Pow(cosAlpha, exp)
	return color.RGB{R: value, G: value, B: value}
}

// FresnelSchlick approximates the Fresnel reflectance at the half vector
func FresnelSchlick(h, v math.Vec3, f0 color.RGB) color.RGB {
	oneMinusCos := 1 - math32.Max(0, h.Dot(v))
	pow5 := oneMinusCos * oneMinusCos * oneMinusCos * oneMinusCos * oneMinusCos
	return color.RGB{
		R: f0.R + (1-f0.R)*pow5,
		G: f0.G + (1-f0.G)*pow5,
		B: f0.B + (1-f0.B)*pow5,
	}
}

// NormalDistributionGGX is the Trowbridge-Reitz microfacet distribution with
// α = roughness²
func NormalDistributionGGX(n, h math.Vec3, roughness float32) float32 {
	alpha := roughness * roughness
	alphaSq := alpha * alpha

	nDotH := n.Dot(h)
	denom := nDotH*nDotH*(alphaSq-1) + 1

	return alphaSq / (math32.Pi * denom * denom)
}

// GeometrySchlickGGX is the single-direction masking term with direct
// lighting remapping k = (α+1)²/8
func GeometrySchlickGGX(n, v math.Vec3, roughness float32) float32 {
	alpha := roughness * roughness
	k := (alpha + 1) * (alpha + 1) / 8

	nDotV := n.Dot(v)
	return nDotV / (nDotV*(1-k) + k)
}

// GeometrySmith combines the masking terms for the view and light directions
func GeometrySmith(n, v, l math.Vec3, roughness float32) float32 {
	return GeometrySchlickGGX(n, v, roughness) * GeometrySchlickGGX(n, l, roughness)
}

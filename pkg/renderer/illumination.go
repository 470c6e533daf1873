package renderer

import (
	"fmt"
	"math/rand"

	"github.com/dverhaert/go-direct-raytracer/pkg/color"
	"github.com/dverhaert/go-direct-raytracer/pkg/geometry"
	"github.com/dverhaert/go-direct-raytracer/pkg/lights"
	"github.com/dverhaert/go-direct-raytracer/pkg/math"
	"github.com/dverhaert/go-direct-raytracer/pkg/scene"
)

// LightMode selects which terms of the rendering equation reach the screen
type LightMode uint8

const (
	LightObservedArea LightMode = iota
	LightRadiance
	LightBRDF
	LightCombined

	lightModeCount
)

// String returns the mode name for logs and overlays
func (m LightMode) String() string {
	switch m {
	case LightObservedArea:
		return "observed-area"
	case LightRadiance:
		return "radiance"
	case LightBRDF:
		return "brdf"
	case LightCombined:
		return "combined"
	}
	return "unknown"
}

// ParseLightMode converts a config string into a LightMode
func ParseLightMode(name string) (LightMode, error) {
	switch name {
	case "observed-area":
		return LightObservedArea, nil
	case "radiance":
		return LightRadiance, nil
	case "brdf":
		return LightBRDF, nil
	case "combined", "":
		return LightCombined, nil
	}
	return LightCombined, fmt.Errorf("unknown light mode %q", name)
}

// shadowRayTMin keeps shadow rays from re-hitting the surface they leave
const shadowRayTMin = 1e-3

// calculateIllumination composes one light's contribution at the hit point.
// viewDir is the primary ray direction.
func (r *Renderer) calculateIllumination(s *scene.Scene, light *lights.Light, hit *geometry.HitRecord, viewDir math.Vec3, random *rand.Rand) color.RGB {
	hits := 0

	var observedArea float32
	var radiance color.RGB
	var shade color.RGB

	mat := &s.Materials[hit.MaterialIndex]
	v := viewDir.Negate()

	hasNoSoftShadows := !light.HasSoftShadows()
	if hasNoSoftShadows {
		dirToLight, distance := light.DirectionToLight(light.Origin, hit.Point)

		occluded := false
		if r.shadowsEnabled {
			shadowRay := math.NewBoundedRay(hit.Point, dirToLight, shadowRayTMin, distance)
			occluded = s.AnyHit(shadowRay)
		}

		if !occluded {
			oa := light.ObservedArea(dirToLight, hit.Normal)
			if oa <= 0 {
				return color.Black
			}

			observedArea = oa
			radiance = light.Radiance(light.Origin, hit.Point, hit.Normal)
			shade = mat.Shade(hit, dirToLight, v)
		}
	} else {
		for sample := 0; sample < r.lightSamples; sample++ {
			if light.Shape != lights.ShapeTriangular {
				continue
			}

			pointOnLight := light.SamplePoint(random)
			dirToLight, distance := light.DirectionToLight(pointOnLight, hit.Point)

			if r.shadowsEnabled {
				shadowRay := math.NewBoundedRay(hit.Point, dirToLight, shadowRayTMin, distance)
				if s.AnyHit(shadowRay) {
					hits++
					continue
				}
			}

			oa := light.ObservedArea(dirToLight, hit.Normal)
			if oa > 0 {
				observedArea += oa
				radiance = radiance.Add(light.Radiance(pointOnLight, hit.Point, hit.Normal))
				shade = shade.Add(mat.Shade(hit, dirToLight, v))
			}
		}

		if hits < r.lightSamples {
			observedArea /= float32(r.lightSamples)
			radiance = radiance.Divide(float32(r.lightSamples))
			shade = shade.Divide(float32(r.lightSamples))
		}
	}

	illuminationFactor := float32(1)
	if r.shadowsEnabled && !hasNoSoftShadows {
		illuminationFactor = 1 - float32(hits)/float32(r.lightSamples)
	}

	switch r.lightMode {
	case LightObservedArea:
		value := illuminationFactor * observedArea
		return color.RGB{R: value, G: value, B: value}

	case LightRadiance:
		return radiance.Scale(illuminationFactor)

	case LightBRDF:
		return shade.Scale(illuminationFactor)

	case LightCombined:
		return radiance.Multiply(shade).Scale(observedArea * illuminationFactor)
	}

	return color.Black
}

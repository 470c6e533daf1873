// Package scene owns the geometry, lights, materials and camera of a
// renderable world and answers closest-hit and any-hit queries over it.
package scene

import (
	"fmt"

	"github.com/dverhaert/go-direct-raytracer/pkg/color"
	"github.com/dverhaert/go-direct-raytracer/pkg/geometry"
	"github.com/dverhaert/go-direct-raytracer/pkg/lights"
	"github.com/dverhaert/go-direct-raytracer/pkg/material"
	"github.com/dverhaert/go-direct-raytracer/pkg/math"
)

// Scene exclusively owns its primitives, meshes, lights and materials.
// During a frame the render workers only read it; all mutation (transforms,
// camera updates, animation) happens between frames.
type Scene struct {
	Name string

	Spheres []geometry.Sphere
	Planes  []geometry.Plane
	Meshes  []*geometry.TriangleMesh

	Lights    []lights.Light
	Materials []material.Material

	Camera Camera

	// OnUpdate animates the scene between frames with the total elapsed time
	OnUpdate func(total float32)
}

// NewScene creates a scene owning a default solid red material at index 0,
// so an unset material index renders loudly
func NewScene(name string) *Scene {
	return &Scene{
		Name:      name,
		Materials: []material.Material{material.NewSolidColor(color.Red)},
		Camera:    NewCamera(math.Vec3{}, 90),
	}
}

// Update advances scene animation, if any
func (s *Scene) Update(total float32) {
	if s.OnUpdate != nil {
		s.OnUpdate(total)
	}
}

// AddSphere appends a sphere and returns it
func (s *Scene) AddSphere(origin math.Vec3, radius float32, materialIndex uint8) *geometry.Sphere {
	s.Spheres = append(s.Spheres, geometry.NewSphere(origin, radius, materialIndex))
	return &s.Spheres[len(s.Spheres)-1]
}

// AddPlane appends a plane and returns it
func (s *Scene) AddPlane(origin, normal math.Vec3, materialIndex uint8) *geometry.Plane {
	s.Planes = append(s.Planes, geometry.NewPlane(origin, normal, materialIndex))
	return &s.Planes[len(s.Planes)-1]
}

// AddTriangleMesh appends an empty mesh and returns it
func (s *Scene) AddTriangleMesh(cullMode geometry.CullMode, materialIndex uint8) *geometry.TriangleMesh {
	mesh := geometry.NewTriangleMesh(cullMode, materialIndex)
	s.Meshes = append(s.Meshes, mesh)
	return mesh
}

// AddPointLight appends a point light
func (s *Scene) AddPointLight(origin math.Vec3, intensity float32, c color.RGB) *lights.Light {
	s.Lights = append(s.Lights, lights.NewPointLight(origin, intensity, c))
	return &s.Lights[len(s.Lights)-1]
}

// AddAreaLight appends an area light
func (s *Scene) AddAreaLight(origin math.Vec3, intensity float32, c color.RGB, shape lights.Shape, radius float32, vertices []math.Vec3) *lights.Light {
	s.Lights = append(s.Lights, lights.NewAreaLight(origin, intensity, c, shape, radius, vertices))
	return &s.Lights[len(s.Lights)-1]
}

// AddDirectionalLight appends a directional light
func (s *Scene) AddDirectionalLight(direction math.Vec3, intensity float32, c color.RGB) *lights.Light {
	s.Lights = append(s.Lights, lights.NewDirectionalLight(direction, intensity, c))
	return &s.Lights[len(s.Lights)-1]
}

// AddMaterial appends a material and returns its index. The table is
// addressed by uint8, so a scene holds at most 256 materials.
func (s *Scene) AddMaterial(m material.Material) uint8 {
	if len(s.Materials) >= 256 {
		panic(fmt.Sprintf("scene: material table full (%d entries)", len(s.Materials)))
	}
	s.Materials = append(s.Materials, m)
	return uint8(len(s.Materials) - 1)
}

// ClosestHit intersects the ray against every primitive and keeps the
// record with the smallest t
func (s *Scene) ClosestHit(ray math.Ray, closestHit *geometry.HitRecord) {
	closestHit.Reset()

	temp := geometry.NewHitRecord()

	for i := range s.Spheres {
		if s.Spheres[i].Hit(ray, &temp) && temp.T < closestHit.T {
			*closestHit = temp
		}
	}

	for i := range s.Planes {
		if s.Planes[i].Hit(ray, &temp) && temp.T < closestHit.T {
			*closestHit = temp
		}
	}

	for _, mesh := range s.Meshes {
		temp.Reset()
		if mesh.Hit(ray, &temp) && temp.T < closestHit.T {
			*closestHit = temp
		}
	}
}

// AnyHit reports whether the ray hits anything inside its interval. Used for
// shadow rays.
func (s *Scene) AnyHit(ray math.Ray) bool {
	for i := range s.Spheres {
		if s.Spheres[i].AnyHit(ray) {
			return true
		}
	}

	for i := range s.Planes {
		if s.Planes[i].AnyHit(ray) {
			return true
		}
	}

	for _, mesh := range s.Meshes {
		if mesh.AnyHit(ray) {
			return true
		}
	}

	return false
}

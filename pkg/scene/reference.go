package scene

import (
	"github.com/chewxy/math32"

	"github.com/dverhaert/go-direct-raytracer/pkg/color"
	"github.com/dverhaert/go-direct-raytracer/pkg/geometry"
	"github.com/dverhaert/go-direct-raytracer/pkg/lights"
	"github.com/dverhaert/go-direct-raytracer/pkg/material"
	"github.com/dverhaert/go-direct-raytracer/pkg/math"
)

// grayBlue walls shared by the lit scenes
var grayBlue = color.NewRGB(0.49, 0.57, 0.57)

// silver is the measured albedo used for the metal test spheres
var silver = color.NewRGB(0.972, 0.960, 0.915)

func addRoom(s *Scene, wallMaterial uint8) {
	s.AddPlane(math.NewVec3(0, 0, 10), math.NewVec3(0, 0, -1), wallMaterial)
	s.AddPlane(math.NewVec3(0, 0, 0), math.NewVec3(0, 1, 0), wallMaterial)
	s.AddPlane(math.NewVec3(0, 10, 0), math.NewVec3(0, -1, 0), wallMaterial)
	s.AddPlane(math.NewVec3(5, 0, 0), math.NewVec3(-1, 0, 0), wallMaterial)
	s.AddPlane(math.NewVec3(-5, 0, 0), math.NewVec3(1, 0, 0), wallMaterial)
}

func addCookTorranceSpheres(s *Scene) {
	matRoughMetal := s.AddMaterial(material.NewCookTorrance(silver, 1, 1))
	matMediumMetal := s.AddMaterial(material.NewCookTorrance(silver, 1, 0.6))
	matSmoothMetal := s.AddMaterial(material.NewCookTorrance(silver, 1, 0.1))
	matRoughPlastic := s.AddMaterial(material.NewCookTorrance(color.NewRGB(0.75, 0.75, 0.75), 0, 1))
	matMediumPlastic := s.AddMaterial(material.NewCookTorrance(color.NewRGB(0.75, 0.75, 0.75), 0, 0.6))
	matSmoothPlastic := s.AddMaterial(material.NewCookTorrance(color.NewRGB(0.75, 0.75, 0.75), 0, 0.1))

	s.AddSphere(math.NewVec3(-1.75, 1, 0), 0.75, matRoughMetal)
	s.AddSphere(math.NewVec3(0, 1, 0), 0.75, matMediumMetal)
	s.AddSphere(math.NewVec3(1.75, 1, 0), 0.75, matSmoothMetal)
	s.AddSphere(math.NewVec3(-1.75, 3, 0), 0.75, matRoughPlastic)
	s.AddSphere(math.NewVec3(0, 3, 0), 0.75, matMediumPlastic)
	s.AddSphere(math.NewVec3(1.75, 3, 0), 0.75, matSmoothPlastic)
}

func addThreePointLights(s *Scene) {
	s.AddPointLight(math.NewVec3(0, 5, 5), 50, color.NewRGB(1, 0.61, 0.45))
	s.AddPointLight(math.NewVec3(-2.5, 5, -5), 70, color.NewRGB(1, 0.80, 0.45))
	s.AddPointLight(math.NewVec3(2.5, 2.5, -5), 50, color.NewRGB(0.34, 0.47, 0.68))
}

// NewCookTorranceScene builds the microfacet material test: six spheres
// sweeping roughness for metal and plastic under three point lights
func NewCookTorranceScene() *Scene {
	s := NewScene("cook-torrance")
	s.Camera = NewCamera(math.NewVec3(0, 3, -9), 45)

	matLambertGrayBlue := s.AddMaterial(material.NewLambert(grayBlue, 1))

	addRoom(s, matLambertGrayBlue)
	addCookTorranceSpheres(s)
	addThreePointLights(s)

	return s
}

// NewTriangleTestScene builds a single front-face-culled triangle mesh in
// the lit room
func NewTriangleTestScene() *Scene {
	s := NewScene("triangle")
	s.Camera = NewCamera(math.NewVec3(0, 1, -5), 45)

	matLambertGrayBlue := s.AddMaterial(material.NewLambert(grayBlue, 1))
	matLambertWhite := s.AddMaterial(material.NewLambert(color.White, 1))

	addRoom(s, matLambertGrayBlue)

	baseTriangle := geometry.NewTriangle(
		math.NewVec3(-0.75, 1.5, 0),
		math.NewVec3(0.75, 0, 0),
		math.NewVec3(-0.75, 0, 0),
	)

	mesh := s.AddTriangleMesh(geometry.FrontFaceCulling, matLambertWhite)
	mesh.AppendTriangle(baseTriangle)
	mesh.UpdateAABB()
	mesh.Translate(math.NewVec3(0, 0.5, 0))
	mesh.UpdateTransforms(false)

	addThreePointLights(s)

	return s
}

// NewReferenceScene builds the full material and culling showcase: the six
// Cook-Torrance spheres plus one triangle per cull mode, with the triangles
// spinning in place
func NewReferenceScene() *Scene {
	s := NewScene("reference")
	s.Camera = NewCamera(math.NewVec3(0, 3, -9), 45)

	matLambertGrayBlue := s.AddMaterial(material.NewLambert(grayBlue, 1))
	matLambertWhite := s.AddMaterial(material.NewLambert(color.White, 1))

	addRoom(s, matLambertGrayBlue)
	addCookTorranceSpheres(s)

	baseTriangle := geometry.NewTriangle(
		math.NewVec3(-0.75, 1.5, 0),
		math.NewVec3(0.75, 0, 0),
		math.NewVec3(-0.75, 0, 0),
	)

	placements := []struct {
		cull   geometry.CullMode
		offset math.Vec3
	}{
		{geometry.BackFaceCulling, math.NewVec3(-1.75, 4.5, 0)},
		{geometry.FrontFaceCulling, math.NewVec3(0, 4.5, 0)},
		{geometry.NoCulling, math.NewVec3(1.75, 4.5, 0)},
	}

	for _, p := range placements {
		mesh := s.AddTriangleMesh(p.cull, matLambertWhite)
		mesh.AppendTriangle(baseTriangle)
		mesh.UpdateAABB()
		mesh.Translate(p.offset)
		mesh.UpdateTransforms(false)
	}

	addThreePointLights(s)

	s.OnUpdate = func(total float32) {
		yaw := (math32.Cos(total) + 1) / 2 * (2 * math32.Pi)
		for _, mesh := range s.Meshes {
			mesh.RotateY(yaw)
			mesh.UpdateTransforms(false)
		}
	}

	return s
}

// NewSoftShadowScene builds the Cook-Torrance spheres under a single
// triangular area light
func NewSoftShadowScene() *Scene {
	s := NewScene("soft-shadows")
	s.Camera = NewCamera(math.NewVec3(0, 3, -9), 45)

	matLambertGrayBlue := s.AddMaterial(material.NewLambert(grayBlue, 1))

	addRoom(s, matLambertGrayBlue)
	addCookTorranceSpheres(s)

	s.AddAreaLight(
		math.NewVec3(0, 8, -5), 100, color.White,
		lights.ShapeTriangular, 0,
		[]math.Vec3{
			math.NewVec3(0, 8, -5),
			math.NewVec3(1, 9, -5),
			math.NewVec3(2, 8, -5),
		},
	)

	return s
}

package scene

import (
	"github.com/dverhaert/go-direct-raytracer/pkg/color"
	"github.com/dverhaert/go-direct-raytracer/pkg/material"
	"github.com/dverhaert/go-direct-raytracer/pkg/math"
)

// NewTwoSpheresScene builds the solid-color calibration scene: two large
// spheres boxed in by five planes, viewed from the origin with a 90° FOV.
func NewTwoSpheresScene() *Scene {
	s := NewScene("two-spheres")
	s.Camera = NewCamera(math.Vec3{}, 90)

	matSolidRed := s.AddMaterial(material.NewSolidColor(color.Red))
	matSolidBlue := s.AddMaterial(material.NewSolidColor(color.Blue))
	matSolidYellow := s.AddMaterial(material.NewSolidColor(color.Yellow))
	matSolidGreen := s.AddMaterial(material.NewSolidColor(color.Green))
	matSolidMagenta := s.AddMaterial(material.NewSolidColor(color.Magenta))

	s.AddSphere(math.NewVec3(-25, 0, 100), 50, matSolidRed)
	s.AddSphere(math.NewVec3(25, 0, 100), 50, matSolidBlue)

	s.AddPlane(math.NewVec3(-75, 0, 0), math.NewVec3(1, 0, 0), matSolidGreen)
	s.AddPlane(math.NewVec3(75, 0, 0), math.NewVec3(-1, 0, 0), matSolidGreen)
	s.AddPlane(math.NewVec3(0, -75, 0), math.NewVec3(0, 1, 0), matSolidYellow)
	s.AddPlane(math.NewVec3(0, 75, 0), math.NewVec3(0, -1, 0), matSolidYellow)
	s.AddPlane(math.NewVec3(0, 0, 125), math.NewVec3(0, 0, -1), matSolidMagenta)

	return s
}

// NewSpheresLitScene builds the six-sphere box scene with a single point
// light
func NewSpheresLitScene() *Scene {
	s := NewScene("spheres-lit")
	s.Camera = NewCamera(math.NewVec3(0, 3, -9), 45)

	matSolidRed := s.AddMaterial(material.NewSolidColor(color.Red))
	matSolidBlue := s.AddMaterial(material.NewSolidColor(color.Blue))
	matSolidYellow := s.AddMaterial(material.NewSolidColor(color.Yellow))
	matSolidGreen := s.AddMaterial(material.NewSolidColor(color.Green))
	matSolidMagenta := s.AddMaterial(material.NewSolidColor(color.Magenta))

	s.AddPlane(math.NewVec3(-5, 0, 0), math.NewVec3(1, 0, 0), matSolidGreen)
	s.AddPlane(math.NewVec3(5, 0, 0), math.NewVec3(-1, 0, 0), matSolidGreen)
	s.AddPlane(math.NewVec3(0, 0, 0), math.NewVec3(0, 1, 0), matSolidYellow)
	s.AddPlane(math.NewVec3(0, 10, 0), math.NewVec3(0, -1, 0), matSolidYellow)
	s.AddPlane(math.NewVec3(0, 0, 10), math.NewVec3(0, 0, -1), matSolidMagenta)

	s.AddSphere(math.NewVec3(-1.75, 1, 0), 0.75, matSolidRed)
	s.AddSphere(math.NewVec3(0, 1, 0), 0.75, matSolidBlue)
	s.AddSphere(math.NewVec3(1.75, 1, 0), 0.75, matSolidRed)
	s.AddSphere(math.NewVec3(-1.75, 3, 0), 0.75, matSolidBlue)
	s.AddSphere(math.NewVec3(0, 3, 0), 0.75, matSolidRed)
	s.AddSphere(math.NewVec3(1.75, 3, 0), 0.75, matSolidBlue)

	s.AddPointLight(math.NewVec3(0, 5, -5), 70, color.White)

	return s
}

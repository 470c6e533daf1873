package scene

import (
	"fmt"

	"github.com/dverhaert/go-direct-raytracer/pkg/color"
	"github.com/dverhaert/go-direct-raytracer/pkg/geometry"
	"github.com/dverhaert/go-direct-raytracer/pkg/loaders"
	"github.com/dverhaert/go-direct-raytracer/pkg/material"
	"github.com/dverhaert/go-direct-raytracer/pkg/math"
)

// NewMeshScene builds the lit room around an OBJ mesh, scaled down and
// raised onto the floor
func NewMeshScene(objPath string) (*Scene, error) {
	s := NewScene("mesh")
	s.Camera = NewCamera(math.NewVec3(0, 1, -5), 45)

	matLambertGrayBlue := s.AddMaterial(material.NewLambert(grayBlue, 1))
	matLambertWhite := s.AddMaterial(material.NewLambert(color.White, 1))

	addRoom(s, matLambertGrayBlue)

	mesh := s.AddTriangleMesh(geometry.BackFaceCulling, matLambertWhite)

	positions, indices, normals, err := loaders.ParseOBJ(objPath)
	if err != nil {
		return nil, fmt.Errorf("loading mesh scene: %w", err)
	}
	mesh.SetGeometry(positions, indices, normals)

	mesh.Scale(math.NewVec3(0.7, 0.7, 0.7))
	mesh.Translate(math.NewVec3(0, 1, 0))
	mesh.UpdateTransforms(false)
	mesh.InitializeBVH()

	addThreePointLights(s)

	return s, nil
}

// NewBunnyScene builds the low-poly bunny showcase. The mesh is doubled in
// size, turned to face the camera and accelerated with a BVH.
func NewBunnyScene(objPath string) (*Scene, error) {
	s := NewScene("bunny")
	s.Camera = NewCamera(math.NewVec3(0, 3, -9), 45)

	matLambertGrayBlue := s.AddMaterial(material.NewLambert(grayBlue, 1))
	matLambertWhite := s.AddMaterial(material.NewLambert(color.White, 1))

	addRoom(s, matLambertGrayBlue)

	mesh := s.AddTriangleMesh(geometry.BackFaceCulling, matLambertWhite)

	positions, indices, normals, err := loaders.ParseOBJ(objPath)
	if err != nil {
		return nil, fmt.Errorf("loading bunny scene: %w", err)
	}
	mesh.SetGeometry(positions, indices, normals)

	mesh.Scale(math.NewVec3(2, 2, 2))
	mesh.RotateY(math.ToRadians * 180)
	mesh.UpdateTransforms(false)
	mesh.InitializeBVH()

	addThreePointLights(s)

	return s, nil
}

package scene

import (
	"github.com/nkryptic/pathtracer/pkg/bvh"
	"github.com/nkryptic/pathtracer/pkg/camera"
	"github.com/nkryptic/pathtracer/pkg/core"
	"github.com/nkryptic/pathtracer/pkg/geometry"
	"github.com/nkryptic/pathtracer/pkg/material"
)

// Light is a minimal emissive scene: two matte spheres lit entirely by a
// rectangular area light, against a black background, to exercise
// DiffuseLight and confirm a ray that escapes the scene contributes
// nothing.
func Light(aspectRatio float64) *Scene {
	ground := material.NewLambertianColor(core.NewVec3(0.5, 0.5, 0.5))
	ball := material.NewLambertianColor(core.NewVec3(0.6, 0.2, 0.2))
	lamp := material.NewDiffuseLightColor(core.NewVec3(4, 4, 4))

	var world []core.Hittable
	world = append(world, geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))
	world = append(world, geometry.NewSphere(core.NewVec3(0, 2, 0), 2, ball))
	world = append(world, geometry.NewXYRect(3, 5, 1, 3, -2, lamp))

	cam := camera.New(
		core.NewVec3(26, 3, 6),
		core.NewVec3(0, 2, 0),
		core.NewVec3(0, 1, 0),
		20, aspectRatio, 0.0, 10.0,
	)

	return &Scene{
		Camera:     cam,
		World:      bvh.New(world),
		Background: Black,
	}
}

package scene

import (
	"github.com/nkryptic/pathtracer/pkg/bvh"
	"github.com/nkryptic/pathtracer/pkg/camera"
	"github.com/nkryptic/pathtracer/pkg/core"
	"github.com/nkryptic/pathtracer/pkg/geometry"
	"github.com/nkryptic/pathtracer/pkg/material"
)

// Simple1 is a small showcase of the material set: matte ground, a solid
// glass sphere, a hollow glass bubble, and a fuzzed metal sphere.
func Simple1(aspectRatio float64) *Scene {
	groundMat := material.NewLambertianColor(core.NewVec3(0.8, 0.8, 0.0))
	rightMat := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 1.0)
	glass := material.NewDielectric(1.5)

	var world []core.Hittable
	world = append(world, geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, groundMat))
	world = append(world, geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, glass))

	outer, inner := geometry.NewHollowGlassSphere(core.NewVec3(-1, 0, -1), 0.5, 0.9, glass)
	world = append(world, outer, inner)

	world = append(world, geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, rightMat))

	cam := camera.New(
		core.NewVec3(-2, 2, 1),
		core.NewVec3(0, 0, -1),
		core.NewVec3(0, 1, 0),
		90, aspectRatio, 0.1, 10.0,
	)

	return &Scene{
		Camera:     cam,
		World:      bvh.New(world),
		Background: BlueSky,
	}
}

package scene

import (
	"github.com/nkryptic/pathtracer/pkg/bvh"
	"github.com/nkryptic/pathtracer/pkg/camera"
	"github.com/nkryptic/pathtracer/pkg/core"
	"github.com/nkryptic/pathtracer/pkg/geometry"
	"github.com/nkryptic/pathtracer/pkg/material"
)

// cornellBoxSize is the classic 555-unit room dimension from the "ray
// tracing in one weekend" family this scene is drawn from.
const cornellBoxSize = 555.0

// Cornell builds the standard Cornell box: a white room with red and green
// side walls, a ceiling light, and two rotated boxes of differing height.
func Cornell(aspectRatio float64) *Scene {
	red := material.NewLambertianColor(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertianColor(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertianColor(core.NewVec3(0.12, 0.45, 0.15))
	lightMat := material.NewDiffuseLightColor(core.NewVec3(15, 15, 15))

	const s = cornellBoxSize
	var world []core.Hittable

	world = append(world,
		geometry.NewYZRect(0, s, 0, s, s, green),      // left wall
		geometry.NewYZRect(0, s, 0, s, 0, red),         // right wall
		geometry.NewXZRect(213, 343, 227, 332, s-1, lightMat), // ceiling light
		geometry.NewXZRect(0, s, 0, s, 0, white),       // floor
		geometry.NewXZRect(0, s, 0, s, s, white),       // ceiling
		geometry.NewXYRect(0, s, 0, s, s, white),       // back wall
	)

	tallBox := geometry.NewCuboid(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white)
	tall := geometry.NewTranslate(geometry.NewRotateY(tallBox, 15), core.NewVec3(265, 0, 295))
	world = append(world, tall)

	shortBox := geometry.NewCuboid(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white)
	short := geometry.NewTranslate(geometry.NewRotateY(shortBox, -18), core.NewVec3(130, 0, 65))
	world = append(world, short)

	cam := camera.New(
		core.NewVec3(278, 278, -800),
		core.NewVec3(278, 278, 0),
		core.NewVec3(0, 1, 0),
		40, aspectRatio, 0.0, 800.0,
	)

	return &Scene{
		Camera:     cam,
		World:      bvh.New(world),
		Background: Black,
	}
}

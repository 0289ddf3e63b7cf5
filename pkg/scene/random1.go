package scene

import (
	"github.com/nkryptic/pathtracer/pkg/bvh"
	"github.com/nkryptic/pathtracer/pkg/camera"
	"github.com/nkryptic/pathtracer/pkg/core"
	"github.com/nkryptic/pathtracer/pkg/geometry"
	"github.com/nkryptic/pathtracer/pkg/material"
)

// Random1 builds the canonical "book cover" scene: a ground plane and a
// field of small random spheres scattered around three large feature
// spheres, viewed from a wide establishing shot.
func Random1(aspectRatio float64, rng *core.RNG) *Scene {
	var world []core.Hittable

	ground := material.NewLambertianColor(core.NewVec3(0.5, 0.5, 0.5))
	world = append(world, geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := rng.Float64()
			center := core.NewVec3(
				float64(a)+0.9*rng.Float64(),
				0.2,
				float64(b)+0.9*rng.Float64(),
			)

			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				albedo := rng.Vec3().MultiplyVec(rng.Vec3())
				world = append(world, geometry.NewSphere(center, 0.2, material.NewLambertianColor(albedo)))
			case chooseMat < 0.95:
				albedo := rng.Vec3Range(0.5, 1.0)
				fuzz := rng.Range(0, 0.5)
				world = append(world, geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				world = append(world, geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	glass := material.NewDielectric(1.5)
	world = append(world, geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, glass))

	lambertian := material.NewLambertianColor(core.NewVec3(0.4, 0.2, 0.1))
	world = append(world, geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, lambertian))

	metal := material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)
	world = append(world, geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, metal))

	lookfrom := core.NewVec3(13, 2, 3)
	lookat := core.NewVec3(0, 0, 0)
	vup := core.NewVec3(0, 1, 0)

	cam := camera.New(lookfrom, lookat, vup, 20, aspectRatio, 0.1, 10.0)

	return &Scene{
		Camera:     cam,
		World:      bvh.New(world),
		Background: BlueSky,
	}
}

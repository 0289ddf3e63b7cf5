// Package renderer drives the pixel scheduler and the recursive ray_color
// shading algorithm over a built scene.
package renderer

import (
	"github.com/nkryptic/pathtracer/pkg/core"
	"github.com/nkryptic/pathtracer/pkg/scene"
)

// RayColor traces r through world up to maxDepth bounces, accumulating
// emitted light and attenuating it by each successive scatter. A ray that
// escapes the world entirely picks up background's contribution instead.
func RayColor(r core.Ray, world core.Hittable, background scene.Background, maxDepth int, rng *core.RNG) core.Color {
	if maxDepth <= 0 {
		return core.Color{}
	}

	rec, hit := world.Hit(r, 0.001, positiveInfinity, rng)
	if !hit {
		return background(r)
	}

	emitted := rec.Material.Emitted(rec.U, rec.V, rec.Point)

	result, scattered := rec.Material.Scatter(r, rec, rng)
	if !scattered {
		return emitted
	}

	return emitted.Add(result.Attenuation.MultiplyVec(RayColor(result.Scattered, world, background, maxDepth-1, rng)))
}

const positiveInfinity = 1e18

// Package scene builds the fixed example worlds the renderer can render:
// a random sphere field, a three-material showcase, a lit room, and a
// Cornell box.
package scene

import (
	"math"

	"github.com/nkryptic/pathtracer/pkg/bvh"
	"github.com/nkryptic/pathtracer/pkg/camera"
	"github.com/nkryptic/pathtracer/pkg/core"
)

// Background computes the color of a ray that escapes the scene entirely.
type Background func(r core.Ray) core.Color

// BlueSky is the classic vertical gradient background, white straight down
// fading to sky blue straight up.
func BlueSky(r core.Ray) core.Color {
	unitDirection := r.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)
	return core.NewVec3(1, 1, 1).Multiply(1 - t).Add(core.NewVec3(0.5, 0.7, 1.0).Multiply(t))
}

// Black is used by scenes (like the Cornell box) that are lit entirely by
// interior area lights, where rays escaping to infinity should contribute
// nothing.
func Black(r core.Ray) core.Color {
	return core.Color{}
}

// Scene bundles everything the renderer needs to produce an image: a
// camera, the accelerated world geometry, and a background function for
// rays that hit nothing.
type Scene struct {
	Camera     *camera.Camera
	World      *bvh.BVH
	Background Background
}

// imageHeightForWidth replicates an intentional off-by-one in image height
// derivation carried over from this renderer's lineage: the height is one
// row short of floor(width/aspectRatio).
func imageHeightForWidth(width int, aspectRatio float64) int {
	return int(math.Floor(float64(width)/aspectRatio)) - 1
}

// ImageHeight is the exported form of imageHeightForWidth, for front ends
// that need to size an output buffer from a requested width and a scene's
// aspect ratio before calling a builder.
func ImageHeight(width int, aspectRatio float64) int {
	return imageHeightForWidth(width, aspectRatio)
}

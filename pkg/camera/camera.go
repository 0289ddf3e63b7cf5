// Package camera implements the thin-lens camera that turns pixel
// coordinates into world-space rays.
package camera

import (
	"math"

	"github.com/nkryptic/pathtracer/pkg/core"
)

// Camera is a thin-lens camera: rays are generated from a finite aperture
// disk rather than a single pinhole, so out-of-focus geometry blurs
// realistically (depth of field).
type Camera struct {
	origin           core.Point3
	lowerLeftCorner  core.Point3
	horizontal       core.Vec3
	vertical         core.Vec3
	u, v, w          core.Vec3
	lensRadius       float64
	AspectRatio      float64
}

// New builds a camera looking from lookfrom toward lookat, with vup fixing
// the roll. vfov is the vertical field of view in degrees. aperture and
// focusDist control depth of field: a zero aperture degenerates to a
// pinhole camera with everything in focus.
func New(lookfrom, lookat, vup core.Point3, vfov, aspectRatio, aperture, focusDist float64) *Camera {
	theta := vfov * math.Pi / 180
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h
	viewportWidth := aspectRatio * viewportHeight

	w := lookfrom.Subtract(lookat).Normalize()
	u := vup.Cross(w).Normalize()
	v := w.Cross(u)

	origin := lookfrom
	horizontal := u.Multiply(focusDist * viewportWidth)
	vertical := v.Multiply(focusDist * viewportHeight)
	lowerLeftCorner := origin.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(focusDist))

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      aperture / 2,
		AspectRatio:     aspectRatio,
	}
}

// Ray returns a ray through the viewport at normalized coordinates (s, t),
// where s and t both range over [0, 1], jittered across the lens aperture
// by rng for depth-of-field sampling.
func (c *Camera) Ray(s, t float64, rng *core.RNG) core.Ray {
	rd := rng.InUnitDisk().Multiply(c.lensRadius)
	offset := c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))

	origin := c.origin.Add(offset)
	target := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t))
	direction := target.Subtract(origin)

	return core.NewRay(origin, direction)
}

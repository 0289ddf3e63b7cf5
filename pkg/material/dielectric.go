package material

import (
	"math"

	"github.com/nkryptic/pathtracer/pkg/core"
)

// Dielectric is a clear refractive surface (glass, water, diamond) with
// index of refraction RefractionIndex. Whether a ray reflects or refracts
// is decided stochastically via Schlick's reflectance approximation, so a
// single sample sees one outcome but many samples reproduce the correct
// mix of reflected and transmitted light.
type Dielectric struct {
	RefractionIndex float64
}

func NewDielectric(refractionIndex float64) *Dielectric {
	return &Dielectric{RefractionIndex: refractionIndex}
}

func (d *Dielectric) Scatter(rIn core.Ray, rec core.HitRecord, rng *core.RNG) (core.ScatterResult, bool) {
	refractionRatio := d.RefractionIndex
	if rec.FrontFace {
		refractionRatio = 1.0 / d.RefractionIndex
	}

	unitDirection := rIn.Direction.Normalize()
	cosTheta := math.Min(unitDirection.Negate().Dot(rec.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	cannotRefract := refractionRatio*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || reflectance(cosTheta, refractionRatio) > rng.Float64() {
		direction = core.Reflect(unitDirection, rec.Normal)
	} else {
		direction = core.Refract(unitDirection, rec.Normal, refractionRatio)
	}

	return core.ScatterResult{
		Attenuation: core.NewVec3(1, 1, 1),
		Scattered:   core.NewRay(rec.Point, direction),
	}, true
}

func (d *Dielectric) Emitted(u, v float64, p core.Point3) core.Color {
	return core.Color{}
}

// reflectance approximates the fraction of light reflected (rather than
// transmitted) at the given angle, via Schlick's approximation.
func reflectance(cosine, refIdx float64) float64 {
	r0 := (1 - refIdx) / (1 + refIdx)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}

package material

import "github.com/nkryptic/pathtracer/pkg/core"

// Lambertian is an ideal matte surface: it scatters incoming light in a
// random direction drawn from a uniform unit-sphere distribution offset
// from the surface normal.
type Lambertian struct {
	Albedo core.Texture
}

func NewLambertian(albedo core.Texture) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// NewLambertianColor is a convenience constructor over a solid color.
func NewLambertianColor(color core.Color) *Lambertian {
	return &Lambertian{Albedo: NewSolidColor(color)}
}

func (l *Lambertian) Scatter(rIn core.Ray, rec core.HitRecord, rng *core.RNG) (core.ScatterResult, bool) {
	scatterDirection := rec.Normal.Add(rng.UnitVector())
	if scatterDirection.NearZero() {
		scatterDirection = rec.Normal
	}

	return core.ScatterResult{
		Attenuation: l.Albedo.Value(rec.U, rec.V, rec.Point),
		Scattered:   core.NewRay(rec.Point, scatterDirection),
	}, true
}

func (l *Lambertian) Emitted(u, v float64, p core.Point3) core.Color {
	return core.Color{}
}

package material

import "github.com/nkryptic/pathtracer/pkg/core"

// Isotropic scatters uniformly in every direction, the phase function used
// by ConstantMedium to simulate fog and smoke.
type Isotropic struct {
	Albedo core.Texture
}

func NewIsotropic(albedo core.Texture) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

// NewIsotropicColor is a convenience constructor over a solid color.
func NewIsotropicColor(color core.Color) *Isotropic {
	return &Isotropic{Albedo: NewSolidColor(color)}
}

func (i *Isotropic) Scatter(rIn core.Ray, rec core.HitRecord, rng *core.RNG) (core.ScatterResult, bool) {
	return core.ScatterResult{
		Attenuation: i.Albedo.Value(rec.U, rec.V, rec.Point),
		Scattered:   core.NewRay(rec.Point, rng.InUnitSphere()),
	}, true
}

func (i *Isotropic) Emitted(u, v float64, p core.Point3) core.Color {
	return core.Color{}
}

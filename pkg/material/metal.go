package material

import "github.com/nkryptic/pathtracer/pkg/core"

// Metal is a reflective surface whose reflected ray is perturbed by Fuzz to
// simulate a rough (rather than mirror-polished) finish.
type Metal struct {
	Albedo core.Color
	Fuzz   float64
}

// NewMetal clamps fuzz to at most 1 the way the teacher's Lambertian clamps
// its own parameters, since a fuzz above 1 produces scatter directions
// that point into the surface more often than not.
func NewMetal(albedo core.Color, fuzz float64) *Metal {
	if fuzz > 1 {
		fuzz = 1
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

func (m *Metal) Scatter(rIn core.Ray, rec core.HitRecord, rng *core.RNG) (core.ScatterResult, bool) {
	reflected := core.Reflect(rIn.Direction.Normalize(), rec.Normal)
	scattered := core.NewRay(rec.Point, reflected.Add(rng.InUnitSphere().Multiply(m.Fuzz)))

	if scattered.Direction.Dot(rec.Normal) <= 0 {
		return core.ScatterResult{}, false
	}
	return core.ScatterResult{Attenuation: m.Albedo, Scattered: scattered}, true
}

func (m *Metal) Emitted(u, v float64, p core.Point3) core.Color {
	return core.Color{}
}

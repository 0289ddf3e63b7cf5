package material

import "github.com/nkryptic/pathtracer/pkg/core"

// DiffuseLight is an area light source: it never scatters incoming rays,
// only emits its own color.
type DiffuseLight struct {
	Emit core.Texture
}

func NewDiffuseLight(emit core.Texture) *DiffuseLight {
	return &DiffuseLight{Emit: emit}
}

// NewDiffuseLightColor is a convenience constructor over a solid color.
func NewDiffuseLightColor(color core.Color) *DiffuseLight {
	return &DiffuseLight{Emit: NewSolidColor(color)}
}

func (l *DiffuseLight) Scatter(rIn core.Ray, rec core.HitRecord, rng *core.RNG) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

func (l *DiffuseLight) Emitted(u, v float64, p core.Point3) core.Color {
	return l.Emit.Value(u, v, p)
}

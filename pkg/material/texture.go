// Package material holds the Material (scatter/emit) and Texture
// implementations used to shade hit points.
package material

import (
	"math"

	"github.com/nkryptic/pathtracer/pkg/core"
)

// SolidColor is a Texture that returns the same color everywhere.
type SolidColor struct {
	Color core.Color
}

func NewSolidColor(color core.Color) *SolidColor {
	return &SolidColor{Color: color}
}

func (s *SolidColor) Value(u, v float64, p core.Point3) core.Color {
	return s.Color
}

// Checker is a 3D checkerboard pattern that alternates between two textures
// based on the sign of sin(scale*x)*sin(scale*y)*sin(scale*z), so the
// pattern is consistent regardless of UV parametrization.
type Checker struct {
	Scale float64
	Even  core.Texture
	Odd   core.Texture
}

func NewChecker(scale float64, even, odd core.Color) *Checker {
	return &Checker{Scale: scale, Even: NewSolidColor(even), Odd: NewSolidColor(odd)}
}

func (c *Checker) Value(u, v float64, p core.Point3) core.Color {
	sines := math.Sin(c.Scale*p.X) * math.Sin(c.Scale*p.Y) * math.Sin(c.Scale*p.Z)
	if sines < 0 {
		return c.Odd.Value(u, v, p)
	}
	return c.Even.Value(u, v, p)
}

// Gradient is a vertical (V axis) linear gradient between two colors.
type Gradient struct {
	Top, Bottom core.Color
}

func NewGradient(top, bottom core.Color) *Gradient {
	return &Gradient{Top: top, Bottom: bottom}
}

func (g *Gradient) Value(u, v float64, p core.Point3) core.Color {
	return g.Top.Multiply(v).Add(g.Bottom.Multiply(1 - v))
}

// UVDebug visualizes UV coordinates directly: U in the red channel, V in
// the green channel. Useful for checking a primitive's UV parametrization.
type UVDebug struct{}

func NewUVDebug() *UVDebug { return &UVDebug{} }

func (UVDebug) Value(u, v float64, p core.Point3) core.Color {
	return core.NewVec3(u, v, 0)
}

package geometry

import (
	"math"

	"github.com/nkryptic/pathtracer/pkg/core"
	"github.com/nkryptic/pathtracer/pkg/material"
)

// ConstantMedium is a participating-media volume (fog, smoke) of uniform
// density wrapped around a boundary shape. A ray entering the boundary may
// scatter at a random depth inside it, with probability governed by an
// exponential mean free path — higher density means a shorter expected
// distance before scattering.
type ConstantMedium struct {
	Boundary      core.Hittable
	PhaseFunction core.Material
	negInvDensity float64
}

// NewConstantMedium builds a medium of density over boundary, scattering
// isotropically into texture's color.
func NewConstantMedium(boundary core.Hittable, density float64, texture core.Texture) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		PhaseFunction: material.NewIsotropic(texture),
		negInvDensity: -1.0 / density,
	}
}

// NewConstantMediumFromColor is a convenience constructor for a medium
// scattering into a single solid color.
func NewConstantMediumFromColor(boundary core.Hittable, density float64, color core.Color) *ConstantMedium {
	return NewConstantMedium(boundary, density, material.NewSolidColor(color))
}

func (m *ConstantMedium) Hit(r core.Ray, tMin, tMax float64, rng *core.RNG) (core.HitRecord, bool) {
	rec1, ok := m.Boundary.Hit(r, math.Inf(-1), math.Inf(1), rng)
	if !ok {
		return core.HitRecord{}, false
	}
	rec2, ok := m.Boundary.Hit(r, rec1.T+0.0001, math.Inf(1), rng)
	if !ok {
		return core.HitRecord{}, false
	}

	if rec1.T < tMin {
		rec1.T = tMin
	}
	if rec2.T > tMax {
		rec2.T = tMax
	}
	if rec1.T >= rec2.T {
		return core.HitRecord{}, false
	}
	if rec1.T < 0 {
		rec1.T = 0
	}

	rayLength := r.Direction.Length()
	distanceInsideBoundary := (rec2.T - rec1.T) * rayLength
	hitDistance := m.negInvDensity * math.Log(rng.Float64())

	if hitDistance > distanceInsideBoundary {
		return core.HitRecord{}, false
	}

	t := rec1.T + hitDistance/rayLength
	return core.HitRecord{
		T:         t,
		Point:     r.At(t),
		Normal:    core.NewVec3(1, 0, 0), // arbitrary: isotropic scatter ignores it
		FrontFace: true,
		Material:  m.PhaseFunction,
	}, true
}

func (m *ConstantMedium) BoundingBox() core.AABB {
	return m.Boundary.BoundingBox()
}

package core

import "math"

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min, Max Point3
}

// NewAABB builds an AABB from two corner points, ordering each axis so
// Min <= Max regardless of the order the caller supplied them in.
func NewAABB(a, b Point3) AABB {
	return AABB{
		Min: Point3{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y), Z: math.Min(a.Z, b.Z)},
		Max: Point3{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y), Z: math.Max(a.Z, b.Z)},
	}
}

// EmptyAABB returns a box that is degenerate on every axis (Min > Max),
// the identity element for Union.
func EmptyAABB() AABB {
	return AABB{
		Min: Point3{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)},
		Max: Point3{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)},
	}
}

// Union returns the smallest box containing both a and b.
func (a AABB) Union(b AABB) AABB {
	return AABB{
		Min: Point3{X: math.Min(a.Min.X, b.Min.X), Y: math.Min(a.Min.Y, b.Min.Y), Z: math.Min(a.Min.Z, b.Min.Z)},
		Max: Point3{X: math.Max(a.Max.X, b.Max.X), Y: math.Max(a.Max.Y, b.Max.Y), Z: math.Max(a.Max.Z, b.Max.Z)},
	}
}

// Pad returns a copy of a that is guaranteed to have a minimum extent of
// delta on every axis, widening degenerate boxes (e.g. an axis-aligned
// rectangle) so the slab test does not reject them as empty.
func (a AABB) Pad(delta float64) AABB {
	half := delta / 2
	out := a
	if out.Max.X-out.Min.X < delta {
		out.Min.X -= half
		out.Max.X += half
	}
	if out.Max.Y-out.Min.Y < delta {
		out.Min.Y -= half
		out.Max.Y += half
	}
	if out.Max.Z-out.Min.Z < delta {
		out.Min.Z -= half
		out.Max.Z += half
	}
	return out
}

// Hit runs the slab test against the box, narrowing [tMin, tMax] on each
// axis and reporting whether a non-empty interval survives.
func (a AABB) Hit(r Ray, tMin, tMax float64) bool {
	for axis := 0; axis < 3; axis++ {
		origin, dir := r.Origin.Axis(axis), r.Direction.Axis(axis)
		lo, hi := a.Min.Axis(axis), a.Max.Axis(axis)

		invD := 1.0 / dir
		t0 := (lo - origin) * invD
		t1 := (hi - origin) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}
		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMax <= tMin {
			return false
		}
	}
	return true
}

// SurfaceArea returns the surface area of the box, used by the SAH cost
// function during BVH construction. A degenerate (empty) box has zero area.
func (a AABB) SurfaceArea() float64 {
	dx := a.Max.X - a.Min.X
	dy := a.Max.Y - a.Min.Y
	dz := a.Max.Z - a.Min.Z
	if dx < 0 || dy < 0 || dz < 0 {
		return 0
	}
	return 2 * (dx*dy + dy*dz + dz*dx)
}

// LongestAxis returns the index (0=X, 1=Y, 2=Z) of the box's longest side.
// Ties are broken X > Y > Z.
func (a AABB) LongestAxis() int {
	dx := a.Max.X - a.Min.X
	dy := a.Max.Y - a.Min.Y
	dz := a.Max.Z - a.Min.Z
	if dx >= dy && dx >= dz {
		return 0
	}
	if dy >= dz {
		return 1
	}
	return 2
}

// Axis returns the i'th component of v (0=X, 1=Y, 2=Z).
func (v Vec3) Axis(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

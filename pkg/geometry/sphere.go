// Package geometry holds the concrete Hittable primitives and the
// transform/composition wrappers used to build scenes.
package geometry

import (
	"math"

	"github.com/nkryptic/pathtracer/pkg/core"
)

// Sphere is a sphere of the given radius centered at Center. A negative
// radius is legal and used to build hollow glass bubbles: the geometry is
// identical, but the outward normal points inward, so a ray arriving from
// outside is recorded as a back-face hit (FrontFace false), which lets a
// Dielectric simulate a shell of glass rather than a solid ball.
type Sphere struct {
	Center   core.Point3
	Radius   float64
	Material core.Material
}

// NewSphere creates a sphere.
func NewSphere(center core.Point3, radius float64, material core.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: material}
}

func (s *Sphere) Hit(r core.Ray, tMin, tMax float64, rng *core.RNG) (core.HitRecord, bool) {
	oc := r.Origin.Subtract(s.Center)
	a := r.Direction.LengthSquared()
	halfB := oc.Dot(r.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return core.HitRecord{}, false
	}
	sqrtd := math.Sqrt(discriminant)

	root := (-halfB - sqrtd) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtd) / a
		if root < tMin || root > tMax {
			return core.HitRecord{}, false
		}
	}

	p := r.At(root)
	outwardNormal := p.Subtract(s.Center).Multiply(1 / s.Radius)
	u, v := sphereUV(outwardNormal)

	rec := core.HitRecord{T: root, Point: p, Material: s.Material, U: u, V: v}
	rec.SetFaceNormal(r, outwardNormal)
	return rec, true
}

func (s *Sphere) BoundingBox() core.AABB {
	r := core.NewVec3(math.Abs(s.Radius), math.Abs(s.Radius), math.Abs(s.Radius))
	return core.NewAABB(s.Center.Subtract(r), s.Center.Add(r))
}

// sphereUV maps a point on the unit sphere (given as the outward normal at
// that point) to (u, v) texture coordinates.
func sphereUV(p core.Vec3) (u, v float64) {
	theta := math.Acos(-p.Y)
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return phi / (2 * math.Pi), theta / math.Pi
}

// NewHollowGlassSphere builds the classic "glass bubble": an outer shell of
// radius and an inner shell of radius*innerRatio with an inverted surface
// normal, both sharing center, so the dielectric refracts twice and forms a
// visible air pocket inside the glass.
func NewHollowGlassSphere(center core.Point3, radius float64, innerRatio float64, glass core.Material) (*Sphere, *Sphere) {
	outer := NewSphere(center, radius, glass)
	inner := NewSphere(center, -radius*innerRatio, glass)
	return outer, inner
}

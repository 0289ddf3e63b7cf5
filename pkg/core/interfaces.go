package core

// HitRecord describes the surface properties at a ray-object intersection.
type HitRecord struct {
	Point     Point3
	Normal    Vec3
	Material  Material
	T         float64
	U, V      float64
	FrontFace bool
}

// SetFaceNormal orients Normal to always point against the incoming ray,
// recording which side of the surface was actually hit in FrontFace.
func (h *HitRecord) SetFaceNormal(r Ray, outwardNormal Vec3) {
	h.FrontFace = r.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Hittable is anything a ray can intersect: primitives, transform wrappers,
// lists, and the BVH itself all implement it uniformly.
type Hittable interface {
	// Hit reports the closest intersection of r with the surface in the
	// interval [tMin, tMax], if any.
	Hit(r Ray, tMin, tMax float64, rng *RNG) (HitRecord, bool)
	// BoundingBox returns the surface's world-space bounding box. Every
	// Hittable that reaches the BVH builder must return a valid box; an
	// unbounded primitive is a construction error.
	BoundingBox() AABB
}

// ScatterResult is what a Material produces when it scatters an incoming ray.
type ScatterResult struct {
	Attenuation Color
	Scattered   Ray
}

// Material decides how light scatters (or is emitted) at a hit point.
type Material interface {
	// Scatter returns the attenuation and outgoing ray for a scattered
	// ray, or ok=false if the material absorbs the ray instead.
	Scatter(rIn Ray, rec HitRecord, rng *RNG) (ScatterResult, bool)
	// Emitted returns the light emitted at the given surface coordinates;
	// zero for every material except DiffuseLight.
	Emitted(u, v float64, p Point3) Color
}

// Texture maps surface coordinates to a color.
type Texture interface {
	Value(u, v float64, p Point3) Color
}

// Logger is the narrow logging capability the renderer and CLI depend on.
// Production code is backed by internal/rtlog; tests use a no-op.
type Logger interface {
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errf(format string, args ...interface{})
}

// NopLogger discards everything, for tests that don't care about output.
type NopLogger struct{}

func (NopLogger) Infof(format string, args ...interface{}) {}
func (NopLogger) Warnf(format string, args ...interface{}) {}
func (NopLogger) Errf(format string, args ...interface{})  {}

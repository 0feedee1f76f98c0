// Package geometry holds the concrete shapes photonray can trace. Every
// shape implements core.Geometry: it knows nothing about materials, only
// how to bound and intersect itself.
package geometry

import (
	"math"

	"github.com/tomrosen/photonray/internal/core"
)

// Sphere is a sphere shape, centered at Center with the given Radius.
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere. Panics if radius is not positive.
func NewSphere(center core.Vec3, radius float64) *Sphere {
	if radius <= 0 {
		panic("geometry: sphere radius must be positive")
	}
	return &Sphere{Center: center, Radius: radius}
}

// Hit tests if ray intersects the sphere within [core.Epsilon, tMax],
// preferring the nearer of the two quadratic roots.
func (s *Sphere) Hit(ray core.Ray, tMax float64) (core.RawHitInfo, bool) {
	oc := ray.Origin.Subtract(s.Center)
	dir := ray.Dir.Vec()

	a := dir.Dot(dir)
	halfB := oc.Dot(dir)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return core.RawHitInfo{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root < core.Epsilon || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < core.Epsilon || root > tMax {
			return core.RawHitInfo{}, false
		}
	}

	point := ray.At(root)
	outwardNormal := core.NewUnit3(point.Subtract(s.Center))

	return core.RawHitInfo{T: root, OutwardNormal: outwardNormal}, true
}

// Bounds returns the sphere's axis-aligned bounding box.
func (s *Sphere) Bounds() core.AABB {
	r := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(s.Center.Subtract(r), s.Center.Add(r))
}

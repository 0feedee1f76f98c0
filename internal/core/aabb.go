package core

import "math"

// AABB is an axis-aligned bounding box with Min componentwise <= Max.
type AABB struct {
	Min Vec3
	Max Vec3
}

// NewAABB builds an AABB from two corners, taking the componentwise min/max
// so the invariant Min <= Max holds regardless of argument order.
func NewAABB(a, b Vec3) AABB {
	return AABB{Min: a.Min(b), Max: a.Max(b)}
}

// AABBAtPoint returns a degenerate AABB containing exactly one point.
func AABBAtPoint(p Vec3) AABB {
	return AABB{Min: p, Max: p}
}

// Union returns the smallest AABB containing both aabb and other.
func (aabb AABB) Union(other AABB) AABB {
	return AABB{Min: aabb.Min.Min(other.Min), Max: aabb.Max.Max(other.Max)}
}

// ExtendToInclude returns an AABB extended to also contain p.
func (aabb AABB) ExtendToInclude(p Vec3) AABB {
	return AABB{Min: aabb.Min.Min(p), Max: aabb.Max.Max(p)}
}

// Centroid returns the midpoint of the box.
func (aabb AABB) Centroid() Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Size returns the extent of the box along each axis.
func (aabb AABB) Size() Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the largest extent.
func (aabb AABB) LongestAxis() int {
	size := aabb.Size()
	if size.X > size.Y && size.X > size.Z {
		return 0
	}
	if size.Y > size.Z {
		return 1
	}
	return 2
}

// Axis returns the box's extent along the given axis (0=X, 1=Y, 2=Z).
func (aabb AABB) Axis(axis int) (min, max float64) {
	switch axis {
	case 0:
		return aabb.Min.X, aabb.Max.X
	case 1:
		return aabb.Min.Y, aabb.Max.Y
	default:
		return aabb.Min.Z, aabb.Max.Z
	}
}

// Hit performs the three-axis slab test, shrinking [tMin, tMax] by each axis
// in turn and rejecting as soon as the interval becomes empty.
func (aabb AABB) Hit(ray Ray, tMin, tMax float64) bool {
	origin := [3]float64{ray.Origin.X, ray.Origin.Y, ray.Origin.Z}
	dir := [3]float64{ray.Dir.X(), ray.Dir.Y(), ray.Dir.Z()}

	for axis := 0; axis < 3; axis++ {
		min, max := aabb.Axis(axis)

		if math.Abs(dir[axis]) < 1e-12 {
			if origin[axis] < min || origin[axis] > max {
				return false
			}
			continue
		}

		invDir := 1.0 / dir[axis]
		t0 := (min - origin[axis]) * invDir
		t1 := (max - origin[axis]) * invDir
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		tMin = math.Max(tMin, t0)
		tMax = math.Min(tMax, t1)
		if tMin > tMax {
			return false
		}
	}

	return true
}

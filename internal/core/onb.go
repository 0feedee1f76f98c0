package core

import "math"

// OrthoNormalBasis is a right-handed local frame (u, v, w), typically built
// so that w is a surface's shading normal. ToCanonical rotates a local-space
// vector (where +z is w) into world space; FromCanonical is its inverse.
type OrthoNormalBasis struct {
	U, V, W Unit3
}

// NewOrthoNormalBasisFromWV builds a basis from a given w axis and a
// reference up-vector v, as a camera's view basis is built from its look
// direction and the world up-vector.
func NewOrthoNormalBasisFromWV(w Unit3, up Vec3) OrthoNormalBasis {
	u := NewUnit3(up.Cross(w.Vec()))
	v := NewUnit3(w.Vec().Cross(u.Vec()))
	return OrthoNormalBasis{U: u, V: v, W: w}
}

// NewOrthoNormalBasisFromW builds a basis from w alone, picking an arbitrary
// helper vector not parallel to w to derive u and v. Used to build a shading
// frame from a surface normal with no preferred up direction.
func NewOrthoNormalBasisFromW(w Unit3) OrthoNormalBasis {
	var helper Vec3
	if math.Abs(w.X()) > 0.9 {
		helper = NewVec3(0, 1, 0)
	} else {
		helper = NewVec3(1, 0, 0)
	}
	u := NewUnit3(helper.Cross(w.Vec()))
	v := NewUnit3(w.Vec().Cross(u.Vec()))
	return OrthoNormalBasis{U: u, V: v, W: w}
}

// ToCanonical rotates a local-frame vector (+z = w) into world space.
func (b OrthoNormalBasis) ToCanonical(p Vec3) Vec3 {
	return b.U.Vec().Multiply(p.X).
		Add(b.V.Vec().Multiply(p.Y)).
		Add(b.W.Vec().Multiply(p.Z))
}

// FromCanonical rotates a world-space vector into the local frame (+z = w).
func (b OrthoNormalBasis) FromCanonical(p Vec3) Vec3 {
	return NewVec3(p.Dot(b.U.Vec()), p.Dot(b.V.Vec()), p.Dot(b.W.Vec()))
}

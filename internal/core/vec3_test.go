package core

import (
	"math"
	"testing"
)

func TestVec3Dot(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)
	got := a.Dot(b)
	want := 1.0*4 + 2.0*-5 + 3.0*6
	if got != want {
		t.Errorf("Dot() = %v, want %v", got, want)
	}
}

func TestVec3CrossOrthogonal(t *testing.T) {
	x := NewVec3(1, 0, 0)
	y := NewVec3(0, 1, 0)
	z := x.Cross(y)
	if z.Subtract(NewVec3(0, 0, 1)).Length() > 1e-12 {
		t.Errorf("X cross Y = %v, want (0,0,1)", z)
	}
}

func TestVec3Luminance(t *testing.T) {
	white := NewVec3(1, 1, 1)
	if math.Abs(white.Luminance()-1) > 1e-9 {
		t.Errorf("Luminance(white) = %v, want 1", white.Luminance())
	}
	black := NewVec3(0, 0, 0)
	if black.Luminance() != 0 {
		t.Errorf("Luminance(black) = %v, want 0", black.Luminance())
	}
}

func TestVec3IsZero(t *testing.T) {
	if !(Vec3{}).IsZero() {
		t.Error("zero-value Vec3 should be IsZero")
	}
	if (NewVec3(0, 0.0001, 0)).IsZero() {
		t.Error("non-zero Vec3 reported as IsZero")
	}
}

package core

import (
	"math"
	"testing"
)

func TestNewUnit3Normalizes(t *testing.T) {
	u := NewUnit3(NewVec3(3, 4, 0))
	if math.Abs(u.Vec().Length()-1) > 1e-12 {
		t.Errorf("length = %v, want 1", u.Vec().Length())
	}
	if math.Abs(u.X()-0.6) > 1e-12 || math.Abs(u.Y()-0.8) > 1e-12 {
		t.Errorf("got (%v,%v), want (0.6,0.8)", u.X(), u.Y())
	}
}

func TestNewUnit3ZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewUnit3(zero) did not panic")
		}
	}()
	NewUnit3(Vec3{})
}

func TestNewUnit3UncheckedRejectsNonUnit(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewUnit3Unchecked(non-unit) did not panic")
		}
	}()
	NewUnit3Unchecked(NewVec3(1, 1, 1))
}

func TestNewUnit3AndLength(t *testing.T) {
	u, length := NewUnit3AndLength(NewVec3(0, 0, 5))
	if math.Abs(length-5) > 1e-12 {
		t.Errorf("length = %v, want 5", length)
	}
	if u.Z() != 1 {
		t.Errorf("dir.Z() = %v, want 1", u.Z())
	}
}

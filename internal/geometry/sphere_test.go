package geometry

import (
	"math"
	"testing"

	"github.com/tomrosen/photonray/internal/core"
)

func TestSphereHitFrontFace(t *testing.T) {
	s := NewSphere(core.NewVec3(0, 0, -5), 1)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewUnit3(core.NewVec3(0, 0, -1)))

	hit, ok := s.Hit(ray, math.MaxFloat64)
	if !ok {
		t.Fatal("expected a hit")
	}
	if math.Abs(hit.T-4) > 1e-9 {
		t.Errorf("T = %v, want 4", hit.T)
	}
	if hit.OutwardNormal.Z() < 0.999 {
		t.Errorf("outward normal = %v, want ~(0,0,1)", hit.OutwardNormal)
	}
}

func TestSphereHitFromInside(t *testing.T) {
	s := NewSphere(core.NewVec3(0, 0, 0), 1)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewUnit3(core.NewVec3(0, 0, 1)))

	hit, ok := s.Hit(ray, math.MaxFloat64)
	if !ok {
		t.Fatal("expected a hit from inside the sphere")
	}
	if math.Abs(hit.T-1) > 1e-9 {
		t.Errorf("T = %v, want 1", hit.T)
	}
}

func TestSphereMiss(t *testing.T) {
	s := NewSphere(core.NewVec3(0, 0, -5), 1)
	ray := core.NewRay(core.NewVec3(0, 10, 0), core.NewUnit3(core.NewVec3(0, 0, -1)))

	if _, ok := s.Hit(ray, math.MaxFloat64); ok {
		t.Error("expected no hit")
	}
}

func TestSphereBounds(t *testing.T) {
	s := NewSphere(core.NewVec3(1, 2, 3), 2)
	b := s.Bounds()
	want := core.NewAABB(core.NewVec3(-1, 0, 1), core.NewVec3(3, 4, 5))
	if b.Min != want.Min || b.Max != want.Max {
		t.Errorf("Bounds() = %+v, want %+v", b, want)
	}
}

func TestNewSphereNonPositiveRadiusPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewSphere with radius 0 did not panic")
		}
	}()
	NewSphere(core.NewVec3(0, 0, 0), 0)
}

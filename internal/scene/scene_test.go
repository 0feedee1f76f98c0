package scene

import (
	"math"
	"testing"

	"github.com/tomrosen/photonray/internal/camera"
	"github.com/tomrosen/photonray/internal/core"
	"github.com/tomrosen/photonray/internal/geometry"
	"github.com/tomrosen/photonray/internal/material"
)

func TestSceneBuilderBuildAllowsEmpty(t *testing.T) {
	s := NewSceneBuilder().SetCamera(camera.Config{PixelWidth: 1, PixelHeight: 1, VFov: 40, LookFrom: core.NewVec3(0, 0, 1), Up: core.NewVec3(0, 1, 0)}).Build()
	if s.BVH != nil {
		t.Error("an empty scene should have a nil BVH")
	}

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewUnit3(core.NewVec3(0, 0, -1)))
	if _, ok := s.Hit(ray, math.MaxFloat64); ok {
		t.Error("an empty scene should never report a hit")
	}
}

func TestSceneHitFindsPrimitive(t *testing.T) {
	b := NewSceneBuilder()
	b.AddGeometry(geometry.NewSphere(core.NewVec3(0, 0, -5), 1), material.NewDiffuse(core.NewVec3(1, 1, 1)))
	b.SetCamera(camera.Config{PixelWidth: 10, PixelHeight: 10, VFov: 40, LookFrom: core.NewVec3(0, 0, 0), LookAt: core.NewVec3(0, 0, -1), Up: core.NewVec3(0, 1, 0)})
	s := b.Build()

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewUnit3(core.NewVec3(0, 0, -1)))
	if _, ok := s.Hit(ray, math.MaxFloat64); !ok {
		t.Error("expected scene to report a hit")
	}
}

func TestNewDefaultSceneBuilds(t *testing.T) {
	s := NewDefaultScene(64, 36, nil)
	if s.Camera == nil {
		t.Fatal("expected a camera")
	}
	if len(s.Lights) == 0 {
		t.Error("expected at least one light")
	}
}

func TestNewCornellSceneBuilds(t *testing.T) {
	s := NewCornellScene(64, 64)
	if s.BVH == nil {
		t.Fatal("expected a BVH")
	}
}

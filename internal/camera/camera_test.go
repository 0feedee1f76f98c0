package camera

import (
	"testing"

	"github.com/tomrosen/photonray/internal/core"
)

func TestCameraCenterRayPointsAtLookAt(t *testing.T) {
	cfg := Config{
		LookFrom:    core.NewVec3(0, 0, 5),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		PixelWidth:  400,
		PixelHeight: 200,
		VFov:        40,
	}
	cam := New(cfg)
	sampler := core.NewRandSampler(1)

	ray := cam.RayThroughPixel(200, 100, core.Vec2{X: 0, Y: 0}, sampler)
	want := core.NewUnit3(cfg.LookAt.Subtract(cfg.LookFrom))
	if ray.Dir.Vec().Subtract(want.Vec()).Length() > 1e-6 {
		t.Errorf("center ray direction = %v, want ~%v", ray.Dir, want)
	}
}

func TestCameraNoApertureIsPinhole(t *testing.T) {
	cfg := Config{
		LookFrom:    core.NewVec3(0, 0, 5),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		PixelWidth:  100,
		PixelHeight: 100,
		VFov:        40,
		Aperture:    0,
	}
	cam := New(cfg)
	sampler := core.NewRandSampler(7)

	for i := 0; i < 20; i++ {
		ray := cam.RayThroughPixel(50, 50, core.Vec2{X: 0.5, Y: 0.5}, sampler)
		if ray.Origin != cfg.LookFrom {
			t.Fatalf("pinhole camera ray origin = %v, want %v", ray.Origin, cfg.LookFrom)
		}
	}
}

func TestCameraApertureJittersOrigin(t *testing.T) {
	cfg := Config{
		LookFrom:    core.NewVec3(0, 0, 5),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		PixelWidth:  100,
		PixelHeight: 100,
		VFov:        40,
		Aperture:    1.0,
	}
	cam := New(cfg)
	sampler := core.NewRandSampler(3)

	first := cam.RayThroughPixel(50, 50, core.Vec2{X: 0.5, Y: 0.5}, sampler)
	differed := false
	for i := 0; i < 20; i++ {
		ray := cam.RayThroughPixel(50, 50, core.Vec2{X: 0.5, Y: 0.5}, sampler)
		if ray.Origin.Subtract(first.Origin).Length() > 1e-9 {
			differed = true
			break
		}
	}
	if !differed {
		t.Error("camera with nonzero aperture should jitter ray origin across samples")
	}
}

func TestCameraPixelWidthHeight(t *testing.T) {
	cam := New(Config{
		LookFrom: core.NewVec3(0, 0, 1), LookAt: core.Vec3{}, Up: core.NewVec3(0, 1, 0),
		PixelWidth: 640, PixelHeight: 480, VFov: 40,
	})
	if cam.PixelWidth() != 640 || cam.PixelHeight() != 480 {
		t.Errorf("PixelWidth/Height = %d/%d, want 640/480", cam.PixelWidth(), cam.PixelHeight())
	}
}

package scene

import (
	"github.com/tomrosen/photonray/internal/camera"
	"github.com/tomrosen/photonray/internal/core"
	"github.com/tomrosen/photonray/internal/geometry"
	"github.com/tomrosen/photonray/internal/light"
	"github.com/tomrosen/photonray/internal/material"
)

// NewDefaultScene builds a small demonstration scene: a ground sphere, a
// diffuse sphere, a glossy metal sphere, a glass sphere, a coated sphere,
// a spherical area light and a sky-gradient environment light. The mirror
// material and the point light are not used. cameraOverride, if non-nil,
// replaces the default camera placement.
func NewDefaultScene(pixelWidth, pixelHeight int, cameraOverride *camera.Config) *Scene {
	b := NewSceneBuilder()

	ground := material.NewDiffuse(core.NewVec3(0.5, 0.5, 0.5))
	b.AddGeometry(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000), ground)

	diffuse := material.NewDiffuse(core.NewVec3(0.7, 0.2, 0.2))
	b.AddGeometry(geometry.NewSphere(core.NewVec3(-2.2, 1, 0), 1), diffuse)

	metal := material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 0.1)
	b.AddGeometry(geometry.NewSphere(core.NewVec3(0, 1, 0), 1), metal)

	glass := material.NewDielectric(1.5)
	b.AddGeometry(geometry.NewSphere(core.NewVec3(2.2, 1, 0), 1), glass)

	coat := material.NewCoated(material.NewDielectric(1.5), material.NewDiffuse(core.NewVec3(0.1, 0.6, 0.3)))
	b.AddGeometry(geometry.NewSphere(core.NewVec3(4.4, 1, 0), 1), coat)

	lightRadiance := core.NewVec3(15, 15, 12)
	sphereLight := light.NewSphereLight(core.NewVec3(0, 5, -3), 1, lightRadiance)
	b.AddAreaLight(sphereLight.Sphere, material.NewEmissive(nil, lightRadiance), sphereLight)

	b.AddEnvironmentLight(light.NewEnvironmentLight(skyGradient))

	cfg := camera.Config{
		LookFrom:    core.NewVec3(0, 2, 10),
		LookAt:      core.NewVec3(0, 1, 0),
		Up:          core.NewVec3(0, 1, 0),
		PixelWidth:  pixelWidth,
		PixelHeight: pixelHeight,
		VFov:        30,
		Aperture:    0.05,
		FocusDist:   10,
	}
	if cameraOverride != nil {
		cfg = *cameraOverride
	}
	b.SetCamera(cfg)

	return b.Build()
}

// skyGradient is a simple vertical white-to-blue gradient background,
// sampled by ray direction, wired in as a zero-PDF environment light.
func skyGradient(dir core.Unit3) core.Vec3 {
	t := 0.5 * (dir.Y() + 1)
	white := core.NewVec3(1, 1, 1)
	blue := core.NewVec3(0.5, 0.7, 1.0)
	return white.Multiply(1 - t).Add(blue.Multiply(t))
}

// NewCornellScene builds a Cornell-box-like scene out of spheres standing
// in for walls, since this package has no quad/box primitive: five large
// spheres with radii large enough that their local curvature near the
// camera's field of view is negligible, plus two smaller spheres and an
// area light in the ceiling.
func NewCornellScene(pixelWidth, pixelHeight int) *Scene {
	b := NewSceneBuilder()

	const wallRadius = 1000
	red := material.NewDiffuse(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewDiffuse(core.NewVec3(0.12, 0.45, 0.15))
	white := material.NewDiffuse(core.NewVec3(0.73, 0.73, 0.73))

	b.AddGeometry(geometry.NewSphere(core.NewVec3(-wallRadius-5, 0, 0), wallRadius), green)
	b.AddGeometry(geometry.NewSphere(core.NewVec3(wallRadius+5, 0, 0), wallRadius), red)
	b.AddGeometry(geometry.NewSphere(core.NewVec3(0, -wallRadius-5, 0), wallRadius), white)
	b.AddGeometry(geometry.NewSphere(core.NewVec3(0, wallRadius+5, 0), wallRadius), white)
	b.AddGeometry(geometry.NewSphere(core.NewVec3(0, 0, -wallRadius-5), wallRadius), white)

	b.AddGeometry(geometry.NewSphere(core.NewVec3(-1.3, -3.5, -1), 1.5), material.NewDiffuse(core.NewVec3(0.8, 0.8, 0.8)))
	b.AddGeometry(geometry.NewSphere(core.NewVec3(1.3, -4, 1), 1), material.NewMetal(core.NewVec3(0.9, 0.9, 0.9), 0))

	radiance := core.NewVec3(15, 15, 15)
	ceilingLight := light.NewSphereLight(core.NewVec3(0, 4.3, 0), 0.7, radiance)
	b.AddAreaLight(ceilingLight.Sphere, material.NewEmissive(nil, radiance), ceilingLight)

	b.SetCamera(camera.Config{
		LookFrom:    core.NewVec3(0, 0, 13),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		PixelWidth:  pixelWidth,
		PixelHeight: pixelHeight,
		VFov:        38,
	})

	return b.Build()
}

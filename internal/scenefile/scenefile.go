// Package scenefile loads a scene description from a YAML file: primitives,
// materials, lights and a camera, built into a scene.Scene. This is the
// external scene-building surface a render binary offers on top of the
// built-in demo scenes in the scene package.
package scenefile

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/tomrosen/photonray/internal/camera"
	"github.com/tomrosen/photonray/internal/core"
	"github.com/tomrosen/photonray/internal/geometry"
	"github.com/tomrosen/photonray/internal/light"
	"github.com/tomrosen/photonray/internal/material"
	"github.com/tomrosen/photonray/internal/scene"
)

// materialKinds is the set of supported "type" strings for a YAML material
// block, just enough to give a clear error for an unsupported kind before we
// try to build one.
var materialKinds = map[string]bool{
	"diffuse":    true,
	"mirror":     true,
	"metal":      true,
	"dielectric": true,
	"coated":     true,
}

// vec3Config is a YAML-friendly stand-in for core.Vec3.
type vec3Config struct {
	X, Y, Z float64
}

func (v vec3Config) toVec3() core.Vec3 {
	return core.NewVec3(v.X, v.Y, v.Z)
}

type materialConfig struct {
	Name      string     `yaml:"name"`
	Type      string     `yaml:"type"`
	Albedo    vec3Config `yaml:"albedo"`
	Fuzziness float64    `yaml:"fuzziness"`
	IOR       float64    `yaml:"ior"`
	Coat      string     `yaml:"coat"`
	Base      string     `yaml:"base"`
}

type sphereConfig struct {
	Center   vec3Config `yaml:"center"`
	Radius   float64    `yaml:"radius"`
	Material string     `yaml:"material"`
}

type pointLightConfig struct {
	Point vec3Config `yaml:"point"`
	Color vec3Config `yaml:"color"`
}

type sphereLightConfig struct {
	Center   vec3Config `yaml:"center"`
	Radius   float64    `yaml:"radius"`
	Radiance vec3Config `yaml:"radiance"`
}

type cameraConfig struct {
	LookFrom  vec3Config `yaml:"look_from"`
	LookAt    vec3Config `yaml:"look_at"`
	Up        vec3Config `yaml:"up"`
	VFov      float64    `yaml:"vfov"`
	Aperture  float64    `yaml:"aperture"`
	FocusDist float64    `yaml:"focus_dist"`
}

type lightsConfig struct {
	Point  []pointLightConfig  `yaml:"point"`
	Sphere []sphereLightConfig `yaml:"sphere"`
}

// sceneConfig is the top-level YAML document shape.
type sceneConfig struct {
	Camera    cameraConfig     `yaml:"camera"`
	Materials []materialConfig `yaml:"materials"`
	Spheres   []sphereConfig   `yaml:"spheres"`
	Lights    lightsConfig     `yaml:"lights"`
}

// Load parses a YAML scene description and builds the scene.Scene it
// describes, sized for a pixelWidth x pixelHeight image.
func Load(data []byte, pixelWidth, pixelHeight int) (*scene.Scene, error) {
	var cfg sceneConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("scenefile: parsing yaml: %w", err)
	}

	materials := make(map[string]materialConfig, len(cfg.Materials))
	for _, m := range cfg.Materials {
		if !materialKinds[m.Type] {
			return nil, fmt.Errorf("scenefile: material %q has unsupported type %q", m.Name, m.Type)
		}
		materials[m.Name] = m
	}

	built := make(map[string]core.Material, len(materials))
	var buildMaterial func(name string) (core.Material, error)
	buildMaterial = func(name string) (core.Material, error) {
		if mat, ok := built[name]; ok {
			return mat, nil
		}
		cfg, ok := materials[name]
		if !ok {
			return nil, fmt.Errorf("scenefile: unknown material %q", name)
		}

		var mat core.Material
		var err error
		switch cfg.Type {
		case "diffuse":
			mat = material.NewDiffuse(cfg.Albedo.toVec3())
		case "mirror":
			mat = material.NewMirror(cfg.Albedo.toVec3())
		case "metal":
			mat = material.NewMetal(cfg.Albedo.toVec3(), cfg.Fuzziness)
		case "dielectric":
			mat = material.NewDielectric(cfg.IOR)
		case "coated":
			var coat, base core.Material
			if coat, err = buildMaterial(cfg.Coat); err != nil {
				return nil, err
			}
			if base, err = buildMaterial(cfg.Base); err != nil {
				return nil, err
			}
			mat = material.NewCoated(coat, base)
		}
		built[name] = mat
		return mat, nil
	}

	b := scene.NewSceneBuilder()

	for _, s := range cfg.Spheres {
		mat, err := buildMaterial(s.Material)
		if err != nil {
			return nil, err
		}
		b.AddGeometry(geometry.NewSphere(s.Center.toVec3(), s.Radius), mat)
	}

	for _, pl := range cfg.Lights.Point {
		b.AddLight(light.NewPointLight(pl.Point.toVec3(), pl.Color.toVec3()))
	}
	for _, sl := range cfg.Lights.Sphere {
		radiance := sl.Radiance.toVec3()
		areaLight := light.NewSphereLight(sl.Center.toVec3(), sl.Radius, radiance)
		b.AddAreaLight(areaLight.Sphere, material.NewEmissive(nil, radiance), areaLight)
	}

	b.SetCamera(camera.Config{
		LookFrom:    cfg.Camera.LookFrom.toVec3(),
		LookAt:      cfg.Camera.LookAt.toVec3(),
		Up:          cfg.Camera.Up.toVec3(),
		PixelWidth:  pixelWidth,
		PixelHeight: pixelHeight,
		VFov:        cfg.Camera.VFov,
		Aperture:    cfg.Camera.Aperture,
		FocusDist:   cfg.Camera.FocusDist,
	})

	return b.Build(), nil
}

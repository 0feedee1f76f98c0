// Package scene assembles primitives, lights and a camera into an
// immutable Scene ready for the integrator to trace against.
package scene

import (
	"github.com/tomrosen/photonray/internal/camera"
	"github.com/tomrosen/photonray/internal/core"
)

// Scene is the immutable result of building a SceneBuilder: an optional BVH
// over all primitives (nil for an empty scene) and the list of lights
// available for next-event estimation, plus a camera. A ray that escapes the
// scene entirely contributes no radiance unless an environment light (see
// internal/light) is registered to supply it — the core carries no implicit
// background.
type Scene struct {
	BVH    *core.BVH
	Lights []core.Light
	Camera *camera.Camera

	// LightForPrimitive maps an emissive primitive back to the Light that
	// samples it, so the integrator can compute the correct multiple
	// importance sampling weight when a BSDF-sampled ray happens to strike
	// a light directly (as opposed to reaching it via next-event
	// estimation).
	LightForPrimitive map[*core.Primitive]core.Light

	// EnvironmentLights are queried when a ray escapes the scene entirely
	// (Hit returns false). They have no associated geometry and are never
	// selected for next-event estimation — SampleIncidentAt always fails —
	// so they are kept separate from Lights rather than mixed into the NEE
	// pool.
	EnvironmentLights []core.Light
}

// Hit traces ray against the scene's BVH. An empty scene (nil BVH) always
// misses.
func (s *Scene) Hit(ray core.Ray, tMax float64) (core.HitInfo, bool) {
	if s.BVH == nil {
		return core.HitInfo{}, false
	}
	return s.BVH.Hit(ray, core.Epsilon, tMax)
}

// SceneBuilder accumulates primitives and lights before a single Build()
// call fixes them into a Scene. A SceneBuilder is not safe for concurrent
// use; Scene, once built, is read-only and safe to share across workers.
type SceneBuilder struct {
	primitives []*core.Primitive
	lights     []core.Light
	envLights  []core.Light
	camera     camera.Config
	lightPrims map[*core.Primitive]core.Light
}

// NewSceneBuilder creates an empty SceneBuilder.
func NewSceneBuilder() *SceneBuilder {
	return &SceneBuilder{
		lightPrims: make(map[*core.Primitive]core.Light),
	}
}

// AddPrimitive registers a primitive to be included in the BVH.
func (b *SceneBuilder) AddPrimitive(p *core.Primitive) *SceneBuilder {
	b.primitives = append(b.primitives, p)
	return b
}

// AddGeometry is a convenience wrapper pairing geometry with a material.
func (b *SceneBuilder) AddGeometry(geom core.Geometry, mat core.Material) *SceneBuilder {
	return b.AddPrimitive(&core.Primitive{Geom: geom, Material: mat})
}

// AddLight registers a light for next-event estimation. Use AddAreaLight
// instead when the light also has visible geometry, so a BSDF-sampled ray
// that strikes it directly can be correctly MIS-weighted.
func (b *SceneBuilder) AddLight(l core.Light) *SceneBuilder {
	b.lights = append(b.lights, l)
	return b
}

// AddAreaLight registers both the emissive geometry (geom/mat) and the
// Light that samples it, recording the association the integrator needs to
// weight a direct hit on this light against next-event estimation.
func (b *SceneBuilder) AddAreaLight(geom core.Geometry, mat core.Material, l core.Light) *SceneBuilder {
	prim := &core.Primitive{Geom: geom, Material: mat}
	b.AddPrimitive(prim)
	b.AddLight(l)
	b.lightPrims[prim] = l
	return b
}

// AddEnvironmentLight registers a light queried only when a ray escapes the
// scene entirely, e.g. a sky gradient. It never participates in next-event
// estimation.
func (b *SceneBuilder) AddEnvironmentLight(l core.Light) *SceneBuilder {
	b.envLights = append(b.envLights, l)
	return b
}

// SetCamera sets the camera configuration.
func (b *SceneBuilder) SetCamera(cfg camera.Config) *SceneBuilder {
	b.camera = cfg
	return b
}

// Build constructs the BVH over every registered primitive and returns the
// immutable Scene. An empty primitive set is valid and produces a Scene
// whose BVH is nil — every ray simply misses.
func (b *SceneBuilder) Build() *Scene {
	return &Scene{
		BVH:               core.BuildBVH(b.primitives),
		Lights:            b.lights,
		Camera:            camera.New(b.camera),
		LightForPrimitive: b.lightPrims,
		EnvironmentLights: b.envLights,
	}
}

// Package material implements the BSDF models that sit behind core.Material:
// perfectly diffuse, mirror, glossy metal, dielectric, and a stochastic
// coated combination of a dielectric coat over any base material.
package material

import (
	"math"

	"github.com/tomrosen/photonray/internal/core"
)

// Diffuse is a Lambertian material: constant BRDF over the hemisphere,
// cosine-weighted importance sampling.
type Diffuse struct {
	Albedo core.Vec3
}

// NewDiffuse creates a new Diffuse material.
func NewDiffuse(albedo core.Vec3) *Diffuse {
	return &Diffuse{Albedo: albedo}
}

func (d *Diffuse) SampleBSDF(shading core.ShadingInfo, sampler core.Sampler) (core.SampledRadiance, bool) {
	dir, pdf := core.SampleCosineHemisphere(sampler.Vec2())
	if pdf <= 0 {
		return core.SampledRadiance{}, false
	}
	return core.NewRealSampledRadiance(dir, d.Albedo.Multiply(1/math.Pi), pdf), true
}

func (d *Diffuse) BSDF(shading core.ShadingInfo, incoming core.Unit3) core.Vec3 {
	if incoming.Z() <= 0 {
		return core.Vec3{}
	}
	return d.Albedo.Multiply(1 / math.Pi)
}

func (d *Diffuse) PDF(shading core.ShadingInfo, incoming core.Unit3) float64 {
	return core.CosineHemispherePDF(incoming)
}

func (d *Diffuse) IsAlwaysSpecular() bool {
	return false
}

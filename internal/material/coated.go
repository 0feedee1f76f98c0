package material

import "github.com/tomrosen/photonray/internal/core"

// Coated stacks a specular Coat (expected to be a Dielectric) over a Base
// material: a ray first meets the coat, and only continues to the base if
// the coat's sampled direction points back into the surface. This is a
// single-bounce approximation of a real coated/layered surface — light that
// the base scatters is taken as the final direction without re-refracting
// back out through the coat, trading physical exactness for a material that
// composes out of the two primitives the rest of the package already has.
type Coated struct {
	Coat core.Material
	Base core.Material
}

// NewCoated creates a new Coated material.
func NewCoated(coat, base core.Material) *Coated {
	return &Coated{Coat: coat, Base: base}
}

func (c *Coated) SampleBSDF(shading core.ShadingInfo, sampler core.Sampler) (core.SampledRadiance, bool) {
	coatSample, ok := c.Coat.SampleBSDF(shading, sampler)
	if !ok {
		return core.SampledRadiance{}, false
	}

	if coatSample.Dir.Z() > 0 {
		// Reflected back off the coat: never reaches the base.
		return coatSample, true
	}

	// Transmitted through the coat; the base sees it as an outgoing
	// direction pointing the other way, in the same shading frame.
	baseShading := core.ShadingInfo{Side: shading.Side, Outgoing: coatSample.Dir.Negate()}
	baseSample, ok := c.Base.SampleBSDF(baseShading, sampler)
	if !ok {
		// Base absorbs; the coat's transmittance is lost with it.
		return core.SampledRadiance{}, false
	}

	return core.SampledRadiance{
		Dir:   baseSample.Dir,
		Color: coatSample.ScaledColor().MultiplyVec(baseSample.Color),
		Pdf:   baseSample.Pdf,
	}, true
}

// BSDF forwards to the base material: the coat's contribution is a Dirac
// delta (zero measure), so only the base's finite-density lobe can ever be
// sampled by next-event estimation.
func (c *Coated) BSDF(shading core.ShadingInfo, incoming core.Unit3) core.Vec3 {
	return c.Base.BSDF(shading, incoming)
}

func (c *Coated) PDF(shading core.ShadingInfo, incoming core.Unit3) float64 {
	return c.Base.PDF(shading, incoming)
}

func (c *Coated) IsAlwaysSpecular() bool {
	return c.Base.IsAlwaysSpecular()
}

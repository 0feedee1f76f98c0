package material

import "github.com/tomrosen/photonray/internal/core"

// reflectZ reflects a local-frame direction across the z axis (the shading
// normal): the incoming direction whose perfect mirror reflection is v.
func reflectZ(v core.Vec3) core.Vec3 {
	return core.NewVec3(-v.X, -v.Y, v.Z)
}

// Mirror is a perfectly specular reflector: full albedo, zero roughness.
// Its sampled direction is a Dirac-delta, so it never participates in
// next-event estimation (IsAlwaysSpecular is true).
type Mirror struct {
	Albedo core.Vec3
}

// NewMirror creates a new Mirror material.
func NewMirror(albedo core.Vec3) *Mirror {
	return &Mirror{Albedo: albedo}
}

func (m *Mirror) SampleBSDF(shading core.ShadingInfo, sampler core.Sampler) (core.SampledRadiance, bool) {
	incoming := reflectZ(shading.Outgoing.Vec())
	if incoming.Z <= 0 {
		return core.SampledRadiance{}, false
	}
	dir := core.NewUnit3(incoming)
	// Divide by cos_theta(dir) here so SampledRadiance.ScaledColor(), which
	// multiplies back by cos_theta(dir), returns exactly Albedo: a perfect
	// mirror loses nothing to foreshortening.
	return core.NewDeltaSampledRadiance(dir, m.Albedo.Multiply(1/dir.Z())), true
}

func (m *Mirror) BSDF(shading core.ShadingInfo, incoming core.Unit3) core.Vec3 {
	return core.Vec3{}
}

func (m *Mirror) PDF(shading core.ShadingInfo, incoming core.Unit3) float64 {
	return 0
}

func (m *Mirror) IsAlwaysSpecular() bool {
	return true
}

// Metal is a glossy specular reflector: the perfect mirror direction
// perturbed by a sphere of radius Fuzziness. Because the perturbed
// direction still can't be evaluated as a finite-density BSDF (there is no
// closed form for "how likely is this perturbed direction"), it is still
// reported as a delta sample, matching how the corpus's progressive path
// tracer treats fuzzy metal.
type Metal struct {
	Albedo    core.Vec3
	Fuzziness float64
}

// NewMetal creates a new Metal material, clamping Fuzziness to [0, 1].
func NewMetal(albedo core.Vec3, fuzziness float64) *Metal {
	if fuzziness < 0 {
		fuzziness = 0
	}
	if fuzziness > 1 {
		fuzziness = 1
	}
	return &Metal{Albedo: albedo, Fuzziness: fuzziness}
}

func (m *Metal) SampleBSDF(shading core.ShadingInfo, sampler core.Sampler) (core.SampledRadiance, bool) {
	reflected := reflectZ(shading.Outgoing.Vec())
	if m.Fuzziness > 0 {
		perturbation := core.SampleUniformSphere(sampler.Vec2()).Vec().Multiply(m.Fuzziness)
		reflected = reflected.Add(perturbation)
	}
	if reflected.Z <= 0 {
		return core.SampledRadiance{}, false
	}
	dir := core.NewUnit3(reflected)
	return core.NewDeltaSampledRadiance(dir, m.Albedo.Multiply(1/dir.Z())), true
}

func (m *Metal) BSDF(shading core.ShadingInfo, incoming core.Unit3) core.Vec3 {
	return core.Vec3{}
}

func (m *Metal) PDF(shading core.ShadingInfo, incoming core.Unit3) float64 {
	return 0
}

func (m *Metal) IsAlwaysSpecular() bool {
	return true
}

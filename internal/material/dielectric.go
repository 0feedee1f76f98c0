package material

import (
	"math"

	"github.com/tomrosen/photonray/internal/core"
)

// Dielectric is a smooth refractive material (glass, water): it either
// reflects or refracts the incoming ray, chosen stochastically by the
// Schlick reflectance at the hit angle. Formulas follow the local shading
// frame directly (z = shading normal), the same derivation a thin reference
// path tracer uses: refraction ratio eta = 1/ior entering the medium, ior
// leaving it.
type Dielectric struct {
	RefractiveIndex float64
}

// NewDielectric creates a new Dielectric material.
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

func (d *Dielectric) eta(side core.HitSide) float64 {
	if side == core.Outside {
		return 1 / d.RefractiveIndex
	}
	return d.RefractiveIndex
}

func (d *Dielectric) SampleBSDF(shading core.ShadingInfo, sampler core.Sampler) (core.SampledRadiance, bool) {
	eta := d.eta(shading.Side)
	cosTheta := math.Min(shading.CosTheta(), 1)
	sinTheta := math.Sqrt(math.Max(0, 1-cosTheta*cosTheta))

	r0 := (1 - eta) / (1 + eta)
	r0 *= r0
	reflectance := core.SchlickReflectance(r0, cosTheta)

	cannotRefract := eta*sinTheta > 1
	if cannotRefract || sampler.Float64() < reflectance {
		incoming := reflectZ(shading.Outgoing.Vec())
		if incoming.Z <= 0 {
			return core.SampledRadiance{}, false
		}
		dir := core.NewUnit3(incoming)
		// Unattenuated: a dielectric reflection doesn't tint the color.
		return core.NewDeltaSampledRadiance(dir, core.NewVec3(1, 1, 1).Multiply(1/dir.Z())), true
	}

	up := core.NewVec3(0, 0, 1)
	perp := up.Multiply(cosTheta).Subtract(shading.Outgoing.Vec()).Multiply(eta)
	parLen := math.Sqrt(math.Max(0, 1-perp.LengthSquared()))
	par := up.Multiply(-parLen)
	refracted := perp.Add(par)

	if refracted.Z == 0 {
		return core.SampledRadiance{}, false
	}
	dir := core.NewUnit3(refracted)
	// eta^2 scales radiance for the change in solid angle across the
	// interface; dividing by dir.Z() here cancels ScaledColor's cos_theta
	// multiply, which is negative in the transmitted hemisphere.
	color := core.NewVec3(eta*eta, eta*eta, eta*eta).Multiply(1 / dir.Z())
	return core.NewDeltaSampledRadiance(dir, color), true
}

func (d *Dielectric) BSDF(shading core.ShadingInfo, incoming core.Unit3) core.Vec3 {
	return core.Vec3{}
}

func (d *Dielectric) PDF(shading core.ShadingInfo, incoming core.Unit3) float64 {
	return 0
}

func (d *Dielectric) IsAlwaysSpecular() bool {
	return true
}

package material

import "github.com/tomrosen/photonray/internal/core"

// Emissive wraps a base material with a constant outward radiance, so a
// primitive can both scatter light like Base and be found by the
// integrator's direct-hit emission check via the core.Emitter interface.
// A light's geometry (e.g. light.SphereLight) holds one of these as the
// material of the primitive it samples.
type Emissive struct {
	core.Material
	Radiance core.Vec3
}

// NewEmissive wraps base with a constant emitted radiance. A nil base is
// valid: the surface then absorbs everything it doesn't emit.
func NewEmissive(base core.Material, radiance core.Vec3) *Emissive {
	if base == nil {
		base = NewDiffuse(core.Vec3{})
	}
	return &Emissive{Material: base, Radiance: radiance}
}

// Emit returns the constant emitted radiance, visible only from the
// outward-facing side of the surface.
func (e *Emissive) Emit(shading core.ShadingInfo) core.Vec3 {
	if shading.Side != core.Outside {
		return core.Vec3{}
	}
	return e.Radiance
}

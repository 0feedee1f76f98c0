package core

// Geometry is the shape-level contract: a purely geometric object that can
// report its bounds and intersect a ray. It knows nothing about materials.
type Geometry interface {
	Bounds() AABB
	Hit(ray Ray, tMax float64) (RawHitInfo, bool)
}

// Material is the BSDF contract every surface shading model implements.
// SampleBSDF draws an incoming direction (in the local shading frame, given
// the outgoing direction and side recorded in shading) together with its
// BSDF value and PDF; BSDF/PDF re-evaluate those quantities for a direction
// chosen by some other strategy (next-event estimation). IsAlwaysSpecular
// lets integrators skip next-event estimation entirely for materials that
// can never respond to an arbitrary sampled direction (mirrors, glass).
type Material interface {
	SampleBSDF(shading ShadingInfo, sampler Sampler) (SampledRadiance, bool)
	BSDF(shading ShadingInfo, incoming Unit3) Vec3
	PDF(shading ShadingInfo, incoming Unit3) float64
	IsAlwaysSpecular() bool
}

// Emitter is implemented by materials that emit light on their own, queried
// by the integrator when a traced ray directly strikes a surface (as
// opposed to light contribution gathered via next-event estimation).
type Emitter interface {
	Emit(shading ShadingInfo) Vec3
}

// Light is the light-sampling contract: SampleIncidentAt draws a direction
// and distance toward the light from a shading point for next-event
// estimation; Emitted reports what a ray directly striking the light would
// see (zero-measure, hence unreachable, for point lights); PDF re-evaluates
// the density of SampleIncidentAt for a direction chosen by BSDF sampling,
// so the integrator can compute the MIS weight for that strategy.
type Light interface {
	SampleIncidentAt(point Vec3, sampler Sampler) (LightSample, bool)
	Emitted(ray Ray, tMax float64) (EmittedRadiance, bool)
	PDF(point Vec3, dir Unit3) float64
}

// Primitive pairs one piece of geometry with the material covering it. Many
// primitives may share a single Material instance; a Primitive never shares
// its Geometry.
type Primitive struct {
	Geom     Geometry
	Material Material
}

// Bounds returns the world-space bounding box of the primitive's geometry.
func (p *Primitive) Bounds() AABB {
	return p.Geom.Bounds()
}

// Hit intersects ray against the primitive's geometry and, on a hit, builds
// the enriched HitInfo carrying a back-reference to this primitive.
func (p *Primitive) Hit(ray Ray, tMax float64) (HitInfo, bool) {
	raw, ok := p.Geom.Hit(ray, tMax)
	if !ok {
		return HitInfo{}, false
	}
	return NewHitInfo(ray, raw, p), true
}

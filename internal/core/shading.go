package core

import "math"

// Pdf is a tagged probability density: either a finite real-valued density
// (Real) or a Dirac-delta measure (Delta) concentrated on a zero-measure set
// of directions, as produced by perfect mirror reflection or refraction.
// Delta MUST NOT be treated as a finite number anywhere in MIS arithmetic —
// Factor and IsDelta exist precisely so callers never have to.
type Pdf struct {
	value   float64
	isDelta bool
}

// RealPdf builds a finite PDF value.
func RealPdf(value float64) Pdf {
	return Pdf{value: value}
}

// DeltaPdf builds the Dirac-delta PDF tag.
func DeltaPdf() Pdf {
	return Pdf{isDelta: true}
}

// IsDelta reports whether this PDF is a Dirac-delta measure.
func (p Pdf) IsDelta() bool {
	return p.isDelta
}

// Value returns the finite density value. Only meaningful when !IsDelta().
func (p Pdf) Value() float64 {
	return p.value
}

// Factor returns the Monte Carlo division factor for this PDF: 1/value for
// a real PDF, or 1 for a delta PDF (whose "division" is implicit in the
// sampling scheme having certainly produced the one direction it could).
func (p Pdf) Factor() float64 {
	if p.isDelta {
		return 1
	}
	return 1 / p.value
}

// HitSide records whether a ray struck the outward or inward face of a
// surface, decided by the sign of dir·outward_normal.
type HitSide int

const (
	// Outside means the ray approached the outward-facing side of the surface.
	Outside HitSide = iota
	// Inside means the ray approached from behind the surface's outward normal.
	Inside
)

// cosTheta returns the z-component of a local-frame direction, i.e. the
// cosine of its angle to the shading normal (+z).
func cosTheta(dir Unit3) float64 {
	return dir.Z()
}

func sinTheta(dir Unit3) float64 {
	return math.Sqrt(math.Max(0, 1-cosTheta(dir)*cosTheta(dir)))
}

// sameHemisphere reports whether two local-frame directions share the sign
// of their z-component.
func sameHemisphere(a, b Unit3) bool {
	return a.Z()*b.Z() > 0
}

// SampledRadiance is the common result shape for both sample_bsdf and
// sample_incident_at: a sampled direction (in local shading coordinates for
// BSDF samples, in world space for light samples), the radiance/BSDF value
// associated with it, and the PDF that produced it.
type SampledRadiance struct {
	Dir   Unit3
	Color Vec3
	Pdf   Pdf
}

// NewRealSampledRadiance builds a SampledRadiance with a finite PDF.
func NewRealSampledRadiance(dir Unit3, color Vec3, pdf float64) SampledRadiance {
	return SampledRadiance{Dir: dir, Color: color, Pdf: RealPdf(pdf)}
}

// NewDeltaSampledRadiance builds a SampledRadiance sampled from a Dirac-delta
// distribution (perfect specular reflection/refraction, or a point light).
func NewDeltaSampledRadiance(dir Unit3, color Vec3) SampledRadiance {
	return SampledRadiance{Dir: dir, Color: color, Pdf: DeltaPdf()}
}

// ScaledColor is cos_theta(dir) * pdf.Factor() * color: the Monte Carlo
// estimator's foreshortening term bundled with its inverse-PDF weight.
func (s SampledRadiance) ScaledColor() Vec3 {
	return s.Color.Multiply(cosTheta(s.Dir) * s.Pdf.Factor())
}

// LightSample extends SampledRadiance with the distance to the sampled
// point on the light, needed to build a shadow ray of the right length.
type LightSample struct {
	SampledRadiance
	Distance float64
}

// EmittedRadiance is what a light returns when a ray directly strikes it
// (non-trivial for area lights; point lights never produce one since a ray
// has zero probability of intersecting a zero-area point).
type EmittedRadiance struct {
	Color    Vec3
	Distance float64
}

// ShadingInfo is the local-frame view of a surface hit that materials
// operate on: which side the ray approached from, and the outgoing
// direction (toward the ray origin / camera) expressed in local coordinates.
type ShadingInfo struct {
	Side     HitSide
	Outgoing Unit3
}

// CosTheta returns outgoing.z, the cosine of the angle between the outgoing
// direction and the shading normal.
func (s ShadingInfo) CosTheta() float64 {
	return cosTheta(s.Outgoing)
}

// SinTheta returns sqrt(1 - cos_theta^2).
func (s ShadingInfo) SinTheta() float64 {
	return sinTheta(s.Outgoing)
}

// RawHitInfo is the primitive-level hit record: the ray parameter and
// outward normal at the intersection, with no knowledge of materials or
// world-space shading frames.
type RawHitInfo struct {
	T             float64
	OutwardNormal Unit3
}

// HitInfo is the scene-level, enriched hit record: a world-space point, an
// orthonormal frame whose w axis is the shading normal, and which side of
// the surface the ray struck.
type HitInfo struct {
	Point     Vec3
	T         float64
	Basis     OrthoNormalBasis
	Side      HitSide
	Primitive *Primitive
}

// NewHitInfo builds a HitInfo from a ray and the geometry-level hit it
// produced, deciding Side from the sign of dir·outward_normal and flipping
// the shading normal to face the ray origin when struck from inside.
func NewHitInfo(ray Ray, raw RawHitInfo, prim *Primitive) HitInfo {
	point := ray.At(raw.T)

	side := Outside
	normal := raw.OutwardNormal
	if ray.Dir.Dot(normal.Vec()) > 0 {
		side = Inside
		normal = normal.Negate()
	}

	return HitInfo{
		Point:     point,
		T:         raw.T,
		Basis:     NewOrthoNormalBasisFromW(normal),
		Side:      side,
		Primitive: prim,
	}
}

// WorldToLocal converts a world-space direction into the hit's shading frame.
func (h HitInfo) WorldToLocal(v Vec3) Vec3 {
	return h.Basis.FromCanonical(v)
}

// LocalToWorld converts a shading-frame direction into world space.
func (h HitInfo) LocalToWorld(v Vec3) Vec3 {
	return h.Basis.ToCanonical(v)
}

// ShadingInfo derives the ShadingInfo for this hit from the ray that
// produced it: the outgoing direction is -ray.Dir expressed locally.
func (h HitInfo) ShadingInfo(ray Ray) ShadingInfo {
	outgoing := NewUnit3(h.WorldToLocal(ray.Dir.Vec().Negate()))
	return ShadingInfo{Side: h.Side, Outgoing: outgoing}
}

// SpawnRay builds a ray leaving this hit point in the given local-frame
// direction, converting it to world space.
func (h HitInfo) SpawnRay(localDir Unit3) Ray {
	return Ray{Origin: h.Point, Dir: NewUnit3(h.LocalToWorld(localDir.Vec()))}
}

// Material returns the material backing this hit's primitive.
func (h HitInfo) Material() Material {
	return h.Primitive.Material
}

// Package light implements core.Light: point and spherical area lights, and
// the next-event-estimation sampling contract the integrator drives them
// through.
package light

import "github.com/tomrosen/photonray/internal/core"

// PointLight is an idealized light with zero size, emitting Color radiant
// intensity uniformly in all directions. It can never be directly hit by a
// traced ray (zero measure), so Emitted always reports no emission.
type PointLight struct {
	Point core.Vec3
	Color core.Vec3
}

// NewPointLight creates a new PointLight.
func NewPointLight(point, color core.Vec3) *PointLight {
	return &PointLight{Point: point, Color: color}
}

// SampleIncidentAt is deterministic (there's only one point to sample): the
// direction and distance from point to the light, with radiance falling off
// as 1/distance^2 and a Delta pdf (there is exactly one possible sample).
func (l *PointLight) SampleIncidentAt(point core.Vec3, sampler core.Sampler) (core.LightSample, bool) {
	dir, distance := core.NewUnit3AndLength(l.Point.Subtract(point))
	color := l.Color.Multiply(1 / (distance * distance))
	return core.LightSample{
		SampledRadiance: core.NewDeltaSampledRadiance(dir, color),
		Distance:        distance,
	}, true
}

// Emitted always reports no contribution: a traced ray has zero probability
// of striking a zero-area point light.
func (l *PointLight) Emitted(ray core.Ray, tMax float64) (core.EmittedRadiance, bool) {
	return core.EmittedRadiance{}, false
}

// PDF is 0: a point light is never reachable via BSDF sampling, so it never
// contributes to the BSDF-sampling side of multiple importance sampling.
func (l *PointLight) PDF(point core.Vec3, dir core.Unit3) float64 {
	return 0
}

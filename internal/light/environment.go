package light

import "github.com/tomrosen/photonray/internal/core"

// EnvironmentLight supplies radiance along any ray that escapes the scene
// entirely, sampled by ray direction (e.g. a sky gradient). It carries a
// zero PDF and is never selectable via next-event estimation: it exists
// solely so the integrator's miss path has somewhere to ask for background
// radiance, instead of the core injecting a background color itself.
type EnvironmentLight struct {
	ColorFor func(dir core.Unit3) core.Vec3
}

// NewEnvironmentLight creates an EnvironmentLight from a direction-to-color
// function.
func NewEnvironmentLight(colorFor func(dir core.Unit3) core.Vec3) *EnvironmentLight {
	return &EnvironmentLight{ColorFor: colorFor}
}

// SampleIncidentAt always fails: an environment light has no finite-measure
// sampling strategy here, so it never participates in next-event estimation.
func (l *EnvironmentLight) SampleIncidentAt(point core.Vec3, sampler core.Sampler) (core.LightSample, bool) {
	return core.LightSample{}, false
}

// Emitted reports the environment's color for any ray, regardless of tMax —
// the environment sits at infinite distance, so it is always what a ray
// that otherwise escapes the scene sees.
func (l *EnvironmentLight) Emitted(ray core.Ray, tMax float64) (core.EmittedRadiance, bool) {
	return core.EmittedRadiance{Color: l.ColorFor(ray.Dir), Distance: tMax}, true
}

// PDF is always 0, matching SampleIncidentAt never producing a sample.
func (l *EnvironmentLight) PDF(point core.Vec3, dir core.Unit3) float64 {
	return 0
}

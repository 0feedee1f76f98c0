// Package integrator implements the path-tracing estimator: an iterative
// (non-recursive) random walk through the scene with next-event estimation,
// the power-heuristic multiple importance sampling weight, and Russian
// roulette termination.
package integrator

import (
	"math"

	"github.com/tomrosen/photonray/internal/core"
	"github.com/tomrosen/photonray/internal/scene"
)

// Config controls path construction.
type Config struct {
	// MaxDepth is the maximum number of bounces after the camera ray.
	MaxDepth int
	// MinRRDepth is the bounce count at which Russian roulette starts
	// being applied. 0 disables Russian roulette entirely.
	MinRRDepth int
}

// PathTracer evaluates the path-tracing estimator against a fixed Scene.
// A PathTracer has no mutable state and is safe to share across goroutines;
// every call takes its own core.Sampler.
type PathTracer struct {
	Scene  *scene.Scene
	Config Config
}

// New builds a PathTracer for the given scene and configuration.
func New(sc *scene.Scene, cfg Config) *PathTracer {
	return &PathTracer{Scene: sc, Config: cfg}
}

// TraceRay estimates the radiance arriving back along ray, building the
// path as a straight-line loop rather than recursion so stack depth never
// grows with path length.
func (pt *PathTracer) TraceRay(ray core.Ray, sampler core.Sampler) core.Vec3 {
	throughput := core.NewVec3(1, 1, 1)
	radiance := core.Vec3{}
	currentRay := ray

	// specularBounce is true for the camera ray itself and for any bounce
	// sampled from a Dirac-delta BSDF: in both cases next-event estimation
	// could not have contributed at the previous vertex, so a direct hit on
	// an emitter here must be counted in full rather than MIS-weighted.
	specularBounce := true
	prevPdf := 0.0
	prevPoint := ray.Origin

	for depth := 0; ; depth++ {
		hit, ok := pt.Scene.Hit(currentRay, math.MaxFloat64)
		if !ok {
			for _, envLight := range pt.Scene.EnvironmentLights {
				emitted, hasEmission := envLight.Emitted(currentRay, math.MaxFloat64)
				if hasEmission {
					radiance = radiance.Add(throughput.MultiplyVec(emitted.Color))
				}
			}
			break
		}

		shading := hit.ShadingInfo(currentRay)

		if emitter, isEmitter := hit.Material().(core.Emitter); isEmitter {
			emitted := emitter.Emit(shading)
			if !emitted.IsZero() {
				weight := 1.0
				if !specularBounce {
					weight = pt.misWeightForDirectHit(hit, prevPoint, currentRay.Dir, prevPdf)
				}
				radiance = radiance.Add(throughput.MultiplyVec(emitted).Multiply(weight))
			}
		}

		if depth >= pt.Config.MaxDepth {
			break
		}

		mat := hit.Material()

		if !mat.IsAlwaysSpecular() && len(pt.Scene.Lights) > 0 {
			direct := pt.sampleDirectLighting(hit, shading, mat, sampler)
			radiance = radiance.Add(throughput.MultiplyVec(direct))
		}

		sample, ok := mat.SampleBSDF(shading, sampler)
		if !ok {
			break
		}

		weight := sample.ScaledColor()
		if weight.IsZero() {
			break
		}

		throughput = throughput.MultiplyVec(weight)
		specularBounce = sample.Pdf.IsDelta()
		if !specularBounce {
			prevPdf = sample.Pdf.Value()
		}
		prevPoint = hit.Point
		currentRay = hit.SpawnRay(sample.Dir)

		if pt.Config.MinRRDepth > 0 && depth+1 >= pt.Config.MinRRDepth {
			survive := math.Min(throughput.MaxComponent(), 0.95)
			survive = math.Max(survive, 0.05)
			if sampler.Float64() > survive {
				break
			}
			throughput = throughput.Multiply(1 / survive)
		}
	}

	return radiance
}

// misWeightForDirectHit computes the power-heuristic weight for a radiance
// contribution reached by BSDF sampling (density prevPdf at prevPoint,
// toward dir), against what next-event estimation would have assigned the
// same direction: (1/numLights) * the owning light's PDF, if the struck
// primitive is a registered area light. Unregistered emitters (emissive
// surfaces with no Light counterpart and hence never reachable via NEE) get
// full weight, since there is no competing strategy to balance against.
func (pt *PathTracer) misWeightForDirectHit(hit core.HitInfo, prevPoint core.Vec3, dir core.Unit3, prevPdf float64) float64 {
	l, ok := pt.Scene.LightForPrimitive[hit.Primitive]
	if !ok {
		return 1
	}
	lightPdf := l.PDF(prevPoint, dir) / float64(len(pt.Scene.Lights))
	return core.PowerHeuristic(1, prevPdf, 1, lightPdf)
}

// sampleDirectLighting performs next-event estimation: pick a light
// uniformly at random, sample a direction toward it, trace a shadow ray,
// and weight the contribution by the power heuristic against the BSDF
// sampling strategy's density for the same direction.
func (pt *PathTracer) sampleDirectLighting(hit core.HitInfo, shading core.ShadingInfo, mat core.Material, sampler core.Sampler) core.Vec3 {
	lights := pt.Scene.Lights
	lightIdx := int(sampler.Float64() * float64(len(lights)))
	if lightIdx >= len(lights) {
		lightIdx = len(lights) - 1
	}
	chosen := lights[lightIdx]
	lightSelectPdf := 1.0 / float64(len(lights))

	sample, ok := chosen.SampleIncidentAt(hit.Point, sampler)
	if !ok {
		return core.Vec3{}
	}

	localIncoming := core.NewUnit3(hit.WorldToLocal(sample.Dir.Vec()))
	if localIncoming.Z() <= 0 {
		return core.Vec3{}
	}

	bsdfValue := mat.BSDF(shading, localIncoming)
	if bsdfValue.IsZero() {
		return core.Vec3{}
	}

	shadowRay := hit.SpawnRay(localIncoming)
	if _, occluded := pt.Scene.Hit(shadowRay, sample.Distance-2*core.Epsilon); occluded {
		return core.Vec3{}
	}

	misWeight := 1.0
	if !sample.Pdf.IsDelta() {
		bsdfPdf := mat.PDF(shading, localIncoming)
		misWeight = core.PowerHeuristic(1, sample.Pdf.Value()*lightSelectPdf, 1, bsdfPdf)
	}

	cosTheta := localIncoming.Z()
	contribution := bsdfValue.MultiplyVec(sample.Color).
		Multiply(cosTheta * sample.Pdf.Factor() * misWeight / lightSelectPdf)

	return contribution
}

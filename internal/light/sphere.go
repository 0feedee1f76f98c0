package light

import (
	"math"

	"github.com/tomrosen/photonray/internal/core"
	"github.com/tomrosen/photonray/internal/geometry"
)

// SphereLight is a spherical area light of uniform outward Radiance. Points
// outside the sphere are sampled by solid angle, cone-sampling toward the
// cap of the sphere visible from the shading point, rather than uniformly
// over the whole surface — most of a sphere's surface is self-occluded from
// any exterior point, so uniform-area sampling would waste the vast
// majority of samples on directions that can never be the nearest
// intersection.
type SphereLight struct {
	Sphere   *geometry.Sphere
	Radiance core.Vec3
}

// NewSphereLight creates a new SphereLight.
func NewSphereLight(center core.Vec3, radius float64, radiance core.Vec3) *SphereLight {
	return &SphereLight{Sphere: geometry.NewSphere(center, radius), Radiance: radiance}
}

func (l *SphereLight) sinCosThetaMax(point core.Vec3) (sinThetaMax, cosThetaMax, distance float64) {
	distance = point.Subtract(l.Sphere.Center).Length()
	sinThetaMax = l.Sphere.Radius / distance
	cosThetaMax = math.Sqrt(math.Max(0, 1-sinThetaMax*sinThetaMax))
	return
}

// SampleIncidentAt draws a direction toward the sphere's visible cap. Points
// inside or on the sphere fall back to uniform sampling over the full
// sphere of directions, since there is no "visible cap" from inside.
func (l *SphereLight) SampleIncidentAt(point core.Vec3, sampler core.Sampler) (core.LightSample, bool) {
	toCenter := l.Sphere.Center.Subtract(point)
	distToCenter := toCenter.Length()

	if distToCenter <= l.Sphere.Radius {
		dir := core.SampleUniformSphere(sampler.Vec2())
		hitDistance, ok := l.sphereHitDistance(core.NewRay(point, dir), math.MaxFloat64)
		if !ok {
			return core.LightSample{}, false
		}
		return core.LightSample{
			SampledRadiance: core.NewRealSampledRadiance(dir, l.Radiance, core.UniformSpherePDF()),
			Distance:        hitDistance,
		}, true
	}

	_, cosThetaMax, _ := l.sinCosThetaMax(point)
	basis := core.NewOrthoNormalBasisFromW(core.NewUnit3(toCenter))
	localDir := core.SampleUniformCone(sampler.Vec2(), cosThetaMax)
	dir := core.NewUnit3(basis.ToCanonical(localDir.Vec()))

	hitDistance, ok := l.sphereHitDistance(core.NewRay(point, dir), math.MaxFloat64)
	if !ok {
		return core.LightSample{}, false
	}

	pdf := core.UniformConePDF(cosThetaMax)
	return core.LightSample{
		SampledRadiance: core.NewRealSampledRadiance(dir, l.Radiance, pdf),
		Distance:        hitDistance,
	}, true
}

// PDF re-evaluates the density SampleIncidentAt would have assigned to dir,
// for the BSDF-sampling leg of multiple importance sampling.
func (l *SphereLight) PDF(point core.Vec3, dir core.Unit3) float64 {
	toCenter := l.Sphere.Center.Subtract(point)
	distToCenter := toCenter.Length()

	if distToCenter <= l.Sphere.Radius {
		return core.UniformSpherePDF()
	}

	_, cosThetaMax, _ := l.sinCosThetaMax(point)
	cosTheta := dir.Dot(toCenter.Multiply(1 / distToCenter))
	if cosTheta < cosThetaMax {
		return 0
	}
	return core.UniformConePDF(cosThetaMax)
}

// Emitted reports the sphere's radiance when a traced ray strikes its
// outward-facing surface within tMax.
func (l *SphereLight) Emitted(ray core.Ray, tMax float64) (core.EmittedRadiance, bool) {
	raw, ok := l.Sphere.Hit(ray, tMax)
	if !ok {
		return core.EmittedRadiance{}, false
	}
	if ray.Dir.Dot(raw.OutwardNormal.Vec()) > 0 {
		// Struck from inside: the emissive face points away from the ray.
		return core.EmittedRadiance{}, false
	}
	return core.EmittedRadiance{Color: l.Radiance, Distance: raw.T}, true
}

func (l *SphereLight) sphereHitDistance(ray core.Ray, tMax float64) (float64, bool) {
	raw, ok := l.Sphere.Hit(ray, tMax)
	if !ok {
		return 0, false
	}
	return raw.T, true
}

package light

import (
	"math"
	"testing"

	"github.com/tomrosen/photonray/internal/core"
)

func TestPointLightInverseSquareFalloff(t *testing.T) {
	pl := NewPointLight(core.NewVec3(0, 0, 0), core.NewVec3(100, 100, 100))
	sampler := core.NewRandSampler(1)

	near, ok := pl.SampleIncidentAt(core.NewVec3(1, 0, 0), sampler)
	if !ok {
		t.Fatal("expected a sample")
	}
	far, ok := pl.SampleIncidentAt(core.NewVec3(2, 0, 0), sampler)
	if !ok {
		t.Fatal("expected a sample")
	}

	ratio := near.Color.X / far.Color.X
	if math.Abs(ratio-4) > 1e-9 {
		t.Errorf("intensity ratio at 2x distance = %v, want 4 (inverse square law)", ratio)
	}
}

func TestPointLightIsDeltaAndNeverEmitted(t *testing.T) {
	pl := NewPointLight(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1))
	sample, _ := pl.SampleIncidentAt(core.NewVec3(5, 0, 0), core.NewRandSampler(1))
	if !sample.Pdf.IsDelta() {
		t.Error("point light sample should be a Delta pdf")
	}
	if _, ok := pl.Emitted(core.NewRay(core.NewVec3(0, 0, 0), core.NewUnit3(core.NewVec3(1, 0, 0))), math.MaxFloat64); ok {
		t.Error("point light must never be directly visible")
	}
	if pdf := pl.PDF(core.NewVec3(5, 0, 0), core.NewUnit3(core.NewVec3(1, 0, 0))); pdf != 0 {
		t.Errorf("point light PDF = %v, want 0", pdf)
	}
}

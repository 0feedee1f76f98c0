package tonemap

import (
	"bytes"
	"math"
	"testing"

	"github.com/tomrosen/photonray/internal/core"
	"github.com/tomrosen/photonray/internal/renderer"
)

func TestReinhardCompressesToUnitInterval(t *testing.T) {
	got := Reinhard(core.NewVec3(1e6, 1, 0))
	if got.X >= 1 {
		t.Errorf("Reinhard(1e6) = %v, want < 1", got.X)
	}
	if math.Abs(got.Y-0.5) > 1e-9 {
		t.Errorf("Reinhard(1) = %v, want 0.5", got.Y)
	}
	if got.Z != 0 {
		t.Errorf("Reinhard(0) = %v, want 0", got.Z)
	}
}

func TestWritePNGProducesValidHeader(t *testing.T) {
	fb := &renderer.Framebuffer{
		Width: 2, Height: 2,
		Pixels: []core.Vec3{
			core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0),
			core.NewVec3(0, 0, 1), core.NewVec3(1, 1, 1),
		},
	}
	var buf bytes.Buffer
	if err := WritePNG(&buf, fb); err != nil {
		t.Fatalf("WritePNG() error: %v", err)
	}
	pngMagic := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	if !bytes.HasPrefix(buf.Bytes(), pngMagic) {
		t.Error("output does not start with the PNG magic number")
	}
}

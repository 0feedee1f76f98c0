// Package renderer drives the integrator across every pixel of the output
// image in parallel, using an errgroup-based worker pool so a single
// worker's error can cancel the whole render.
package renderer

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/tomrosen/photonray/internal/core"
	"github.com/tomrosen/photonray/internal/integrator"
	"github.com/tomrosen/photonray/internal/rlog"
)

// Config controls a single render pass.
type Config struct {
	SamplesPerPixel int
	// Seed is the master seed; each row gets its own deterministic
	// derived seed so the same Config always produces the same image
	// regardless of how work happens to interleave across workers.
	Seed int64
}

// Framebuffer is a linear RGB pixel buffer in row-major order, not yet
// tone-mapped or gamma-encoded.
type Framebuffer struct {
	Width, Height int
	Pixels        []core.Vec3
}

// At returns the accumulated color at (x, y).
func (f *Framebuffer) At(x, y int) core.Vec3 {
	return f.Pixels[y*f.Width+x]
}

// Render traces every pixel of the integrator's camera, distributing rows
// across a worker pool sized to the available CPUs. Returns early with the
// first error encountered (currently, ctx cancellation is the only source).
func Render(ctx context.Context, pt *integrator.PathTracer, cfg Config, logger rlog.Logger) (*Framebuffer, error) {
	width := pt.Scene.Camera.PixelWidth()
	height := pt.Scene.Camera.PixelHeight()

	fb := &Framebuffer{Width: width, Height: height, Pixels: make([]core.Vec3, width*height)}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(runtime.GOMAXPROCS(0))

	for y := 0; y < height; y++ {
		y := y
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			renderRow(pt, cfg, fb, y)
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	logger.Printf("rendered %dx%d at %d samples/pixel", width, height, cfg.SamplesPerPixel)
	return fb, nil
}

func renderRow(pt *integrator.PathTracer, cfg Config, fb *Framebuffer, y int) {
	// Each row gets its own RNG stream seeded from the row index, so the
	// same Config+Scene always reproduces the same image regardless of
	// worker scheduling, and rows never share (and thus never contend on)
	// a sampler.
	sampler := core.NewRandSampler(cfg.Seed + int64(y)*9781)

	for x := 0; x < fb.Width; x++ {
		sum := core.Vec3{}
		for s := 0; s < cfg.SamplesPerPixel; s++ {
			ray := pt.Scene.Camera.RayThroughPixel(x, y, sampler.Vec2(), sampler)
			sum = sum.Add(pt.TraceRay(ray, sampler))
		}
		fb.Pixels[y*fb.Width+x] = sum.Multiply(1 / float64(cfg.SamplesPerPixel))
	}
}

// Package camera maps image-plane pixel coordinates to world-space rays,
// including thin-lens depth-of-field jitter.
package camera

import (
	"math"

	"github.com/tomrosen/photonray/internal/core"
)

// Config describes a camera's placement and optics.
type Config struct {
	LookFrom    core.Vec3
	LookAt      core.Vec3
	Up          core.Vec3
	PixelWidth  int
	PixelHeight int
	// VFov is the vertical field of view, in degrees.
	VFov float64
	// Aperture is the diameter of the thin lens; 0 disables depth of field.
	Aperture float64
	// FocusDist is the distance to the plane of perfect focus. If 0, it
	// defaults to the distance between LookFrom and LookAt.
	FocusDist float64
}

// Camera is an immutable, precomputed thin-lens camera built from a Config.
type Camera struct {
	origin      core.Vec3
	lowerLeft   core.Vec3
	horizontal  core.Vec3
	vertical    core.Vec3
	basis       core.OrthoNormalBasis
	lensRadius  float64
	pixelWidth  int
	pixelHeight int
}

// New builds a Camera from cfg.
func New(cfg Config) *Camera {
	focusDist := cfg.FocusDist
	if focusDist == 0 {
		focusDist = cfg.LookFrom.Subtract(cfg.LookAt).Length()
	}
	if focusDist == 0 {
		focusDist = 1
	}

	w := core.NewUnit3(cfg.LookFrom.Subtract(cfg.LookAt))
	basis := core.NewOrthoNormalBasisFromWV(w, cfg.Up)

	theta := cfg.VFov * math.Pi / 180
	viewportHeight := 2 * math.Tan(theta/2)
	aspectRatio := float64(cfg.PixelWidth) / float64(cfg.PixelHeight)
	viewportWidth := aspectRatio * viewportHeight

	horizontal := basis.U.Vec().Multiply(focusDist * viewportWidth)
	vertical := basis.V.Vec().Multiply(focusDist * viewportHeight)
	lowerLeft := cfg.LookFrom.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(basis.W.Vec().Multiply(focusDist))

	return &Camera{
		origin:      cfg.LookFrom,
		lowerLeft:   lowerLeft,
		horizontal:  horizontal,
		vertical:    vertical,
		basis:       basis,
		lensRadius:  cfg.Aperture / 2,
		pixelWidth:  cfg.PixelWidth,
		pixelHeight: cfg.PixelHeight,
	}
}

// PixelWidth and PixelHeight report the image resolution the camera was built for.
func (c *Camera) PixelWidth() int  { return c.pixelWidth }
func (c *Camera) PixelHeight() int { return c.pixelHeight }

// RayThroughPixel builds a ray through pixel (px, py) (0,0 at the top-left
// corner), jittered within the pixel by jitter (a sample in [0,1)^2), and
// perturbed by thin-lens depth-of-field jitter drawn from sampler.
func (c *Camera) RayThroughPixel(px, py int, jitter core.Vec2, sampler core.Sampler) core.Ray {
	s := (float64(px) + jitter.X) / float64(c.pixelWidth)
	t := 1 - (float64(py)+jitter.Y)/float64(c.pixelHeight)

	origin := c.origin
	if c.lensRadius > 0 {
		lensX, lensY := core.SampleUniformDisk(sampler.Vec2())
		offset := c.basis.U.Vec().Multiply(lensX * c.lensRadius).
			Add(c.basis.V.Vec().Multiply(lensY * c.lensRadius))
		origin = origin.Add(offset)
	}

	target := c.lowerLeft.Add(c.horizontal.Multiply(s)).Add(c.vertical.Multiply(t))
	return core.NewRayTo(origin, target)
}

// Package tonemap turns a linear HDR framebuffer into an 8-bit sRGB PNG:
// a per-channel Reinhard compression followed by the sRGB transfer function
// and quantization. No per-image maximum luminance is computed.
package tonemap

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/tomrosen/photonray/internal/core"
	"github.com/tomrosen/photonray/internal/renderer"
)

// Reinhard compresses an unbounded linear radiance value into [0, 1) via
// c / (1 + c), applied per-channel. This keeps bright highlights from
// clipping abruptly while leaving dark values nearly unchanged.
func Reinhard(c core.Vec3) core.Vec3 {
	return core.NewVec3(c.X/(1+c.X), c.Y/(1+c.Y), c.Z/(1+c.Z))
}

// ToImage tone-maps and gamma-encodes a framebuffer into a standard image,
// ready for PNG encoding.
func ToImage(fb *renderer.Framebuffer) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))

	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			linear := Reinhard(fb.At(x, y))
			srgb := colorful.LinearRgb(linear.X, linear.Y, linear.Z).Clamped()
			img.Set(x, y, color.NRGBA{
				R: uint8(srgb.R*255 + 0.5),
				G: uint8(srgb.G*255 + 0.5),
				B: uint8(srgb.B*255 + 0.5),
				A: 255,
			})
		}
	}

	return img
}

// WritePNG tone-maps fb and writes it to w as a PNG.
func WritePNG(w io.Writer, fb *renderer.Framebuffer) error {
	return png.Encode(w, ToImage(fb))
}

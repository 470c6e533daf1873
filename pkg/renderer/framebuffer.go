package renderer

import (
	"fmt"
	"image"
	imgcolor "image/color"
	"os"

	"golang.org/x/image/bmp"
)

// PixelFormat packs 8-bit channels into the 32-bit words of the external
// pixel buffer. The windowing layer supplies the surface's real format; the
// headless path uses one of the fixed layouts below.
type PixelFormat interface {
	MapRGB(r, g, b uint8) uint32
}

// FormatXRGB8888 packs 0x00RRGGBB, the common little-endian SDL surface
// layout
type FormatXRGB8888 struct{}

// MapRGB implements PixelFormat
func (FormatXRGB8888) MapRGB(r, g, b uint8) uint32 {
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// FormatRGBA8888 packs 0xRRGGBBAA with full alpha
type FormatRGBA8888 struct{}

// MapRGB implements PixelFormat
func (FormatRGBA8888) MapRGB(r, g, b uint8) uint32 {
	return uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | 0xFF
}

// SaveBuffer writes the most recently rendered frame as a BMP file
func (r *Renderer) SaveBuffer(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating screenshot: %w", err)
	}
	defer file.Close()

	if err := bmp.Encode(file, r.shadow); err != nil {
		return fmt.Errorf("encoding screenshot: %w", err)
	}

	return nil
}

func newShadowImage(width, height int) *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, width, height))
}

func (r *Renderer) writePixel(px, py int, r8, g8, b8 uint8) {
	r.buffer[px+py*r.width] = r.format.MapRGB(r8, g8, b8)
	r.shadow.SetRGBA(px, py, imgcolor.RGBA{R: r8, G: g8, B: b8, A: 255})
}

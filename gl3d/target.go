package gl3d

import (
	"image"
	"image/color"

	"bouncy/hal"
)

// Target is a minimal pixel target for software rendering.
//
// Implementations should clip out-of-bounds coordinates. SetPixel must be safe to
// call concurrently for distinct pixels.
type Target interface {
	Size() (w, h int)
	SetPixel(x, y int, c color.RGBA)
	Clear(c color.RGBA)
}

// RenderMode selects the rasterization mode.
type RenderMode uint8

const (
	RenderWireframe RenderMode = iota
	RenderSolidFlat
	RenderSolidVertexColor
	RenderTextured
)

// RGB565Target renders into an RGB565 framebuffer buffer.
type RGB565Target struct {
	Buf    []byte
	Stride int // bytes per row
	W      int
	H      int
}

// NewRGB565Target targets the whole of fb, or returns nil if fb is not RGB565.
func NewRGB565Target(fb hal.Framebuffer) *RGB565Target {
	if fb == nil || fb.Format() != hal.PixelFormatRGB565 {
		return nil
	}
	return &RGB565Target{Buf: fb.Buffer(), Stride: fb.StrideBytes(), W: fb.Width(), H: fb.Height()}
}

func (t *RGB565Target) Size() (w, h int) { return t.W, t.H }

func (t *RGB565Target) Clear(c color.RGBA) {
	if t == nil || t.Buf == nil || t.Stride <= 0 || t.W <= 0 || t.H <= 0 {
		return
	}
	p := rgb565From888(c.R, c.G, c.B)
	lo := byte(p)
	hi := byte(p >> 8)
	for y := 0; y < t.H; y++ {
		row := y * t.Stride
		for x := 0; x < t.W; x++ {
			off := row + x*2
			if off < 0 || off+1 >= len(t.Buf) {
				continue
			}
			t.Buf[off] = lo
			t.Buf[off+1] = hi
		}
	}
}

func (t *RGB565Target) SetPixel(x, y int, c color.RGBA) {
	if t == nil || t.Buf == nil || t.Stride <= 0 {
		return
	}
	if x < 0 || y < 0 || x >= t.W || y >= t.H {
		return
	}
	off := y*t.Stride + x*2
	if off < 0 || off+1 >= len(t.Buf) {
		return
	}
	p := rgb565From888(c.R, c.G, c.B)
	t.Buf[off] = byte(p)
	t.Buf[off+1] = byte(p >> 8)
}

func rgb565From888(r, g, b uint8) uint16 {
	return uint16((uint16(r>>3)&0x1F)<<11 | (uint16(g>>2)&0x3F)<<5 | (uint16(b>>3) & 0x1F))
}

// ImageTarget renders into an RGBA image, for snapshots and tests.
type ImageTarget struct {
	Img *image.RGBA
}

func NewImageTarget(w, h int) *ImageTarget {
	return &ImageTarget{Img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func (t *ImageTarget) Size() (w, h int) {
	b := t.Img.Bounds()
	return b.Dx(), b.Dy()
}

func (t *ImageTarget) SetPixel(x, y int, c color.RGBA) {
	b := t.Img.Bounds()
	t.Img.SetRGBA(b.Min.X+x, b.Min.Y+y, c)
}

func (t *ImageTarget) Clear(c color.RGBA) {
	p := t.Img.Pix
	for i := 0; i+3 < len(p); i += 4 {
		p[i], p[i+1], p[i+2], p[i+3] = c.R, c.G, c.B, c.A
	}
}

// Package canvas rasterizes 2D shapes into an RGB565 framebuffer.
//
// A Canvas is a shapes.Surface for the app, a drivers.Displayer for tinyfont and
// a tinyterm display for the console, all over the same pixels.
package canvas

import (
	"image/color"

	"bouncy/hal"

	"tinygo.org/x/drivers"
)

// Canvas draws into a hal.Framebuffer. Every operation clips to the buffer.
type Canvas struct {
	fb hal.Framebuffer
}

// New wraps fb. A nil or non-RGB565 framebuffer gives a canvas that draws nothing.
func New(fb hal.Framebuffer) *Canvas {
	return &Canvas{fb: fb}
}

func (c *Canvas) Framebuffer() hal.Framebuffer { return c.fb }

// Bounds returns the canvas size in pixels.
func (c *Canvas) Bounds() (w, h int) {
	if c.fb == nil {
		return 0, 0
	}
	return c.fb.Width(), c.fb.Height()
}

func (c *Canvas) pixels() (buf []byte, w, h, stride int, ok bool) {
	if c.fb == nil || c.fb.Format() != hal.PixelFormatRGB565 {
		return nil, 0, 0, 0, false
	}
	buf = c.fb.Buffer()
	if buf == nil {
		return nil, 0, 0, 0, false
	}
	return buf, c.fb.Width(), c.fb.Height(), c.fb.StrideBytes(), true
}

// plot writes one pixel, blending when col is translucent.
func (c *Canvas) plot(x, y int, col color.RGBA) {
	if col.A == 0 {
		return
	}
	buf, w, h, stride, ok := c.pixels()
	if !ok || x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	off := y*stride + x*2
	if off+1 >= len(buf) {
		return
	}
	if col.A != 0xFF {
		dst := rgb888From565(uint16(buf[off]) | uint16(buf[off+1])<<8)
		col = blend(dst, col)
	}
	p := rgb565From888(col.R, col.G, col.B)
	buf[off] = byte(p)
	buf[off+1] = byte(p >> 8)
}

// span fills [x0, x1] on row y.
func (c *Canvas) span(x0, x1, y int, col color.RGBA) {
	buf, w, h, stride, ok := c.pixels()
	if !ok || y < 0 || y >= h || col.A == 0 {
		return
	}
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if x1 < 0 || x0 >= w {
		return
	}
	x0 = clampInt(x0, 0, w-1)
	x1 = clampInt(x1, 0, w-1)
	if col.A != 0xFF {
		for x := x0; x <= x1; x++ {
			c.plot(x, y, col)
		}
		return
	}
	p := rgb565From888(col.R, col.G, col.B)
	lo, hi := byte(p), byte(p>>8)
	row := y * stride
	for x := x0; x <= x1; x++ {
		off := row + x*2
		if off+1 >= len(buf) {
			return
		}
		buf[off] = lo
		buf[off+1] = hi
	}
}

// Pixel reads back the color at (x,y). Out of range reads return zero.
func (c *Canvas) Pixel(x, y int) color.RGBA {
	buf, w, h, stride, ok := c.pixels()
	if !ok || x < 0 || y < 0 || x >= w || y >= h {
		return color.RGBA{}
	}
	off := y*stride + x*2
	if off+1 >= len(buf) {
		return color.RGBA{}
	}
	return rgb888From565(uint16(buf[off]) | uint16(buf[off+1])<<8)
}

// CopyFrom composites the RGB565 framebuffer src with its top-left corner at (x,y).
func (c *Canvas) CopyFrom(src hal.Framebuffer, x, y int) {
	buf, w, h, stride, ok := c.pixels()
	if !ok || src == nil || src.Format() != hal.PixelFormatRGB565 {
		return
	}
	sbuf := src.Buffer()
	sw, sh, sstride := src.Width(), src.Height(), src.StrideBytes()

	x0 := clampInt(x, 0, w)
	x1 := clampInt(x+sw, 0, w)
	if x0 >= x1 {
		return
	}
	for sy := 0; sy < sh; sy++ {
		dy := y + sy
		if dy < 0 || dy >= h {
			continue
		}
		so := sy*sstride + (x0-x)*2
		do := dy*stride + x0*2
		n := (x1 - x0) * 2
		if so+n > len(sbuf) || do+n > len(buf) {
			continue
		}
		copy(buf[do:do+n], sbuf[so:so+n])
	}
}

// drivers.Displayer

func (c *Canvas) Size() (x, y int16) {
	w, h := c.Bounds()
	return int16(w), int16(h)
}

func (c *Canvas) SetPixel(x, y int16, col color.RGBA) { c.plot(int(x), int(y), col) }

func (c *Canvas) Display() error {
	if c.fb == nil {
		return nil
	}
	return c.fb.Present()
}

// tinyterm display

func (c *Canvas) FillRectangle(x, y, width, height int16, col color.RGBA) error {
	c.FillRect(int(x), int(y), int(width), int(height), col)
	return nil
}

// SetScroll is a no-op; the console uses software scrolling.
func (c *Canvas) SetScroll(line int16) {}

func (c *Canvas) SetRotation(rotation drivers.Rotation) error { return nil }

// ScrollUp shifts the content up by n rows and clears the exposed bottom band.
func (c *Canvas) ScrollUp(lines int16, bg color.RGBA) error {
	buf, w, h, stride, ok := c.pixels()
	if !ok || lines <= 0 {
		return nil
	}
	n := int(lines)
	if n >= h {
		c.FillRect(0, 0, w, h, bg)
		return nil
	}
	if h*stride > len(buf) {
		return nil
	}
	copy(buf[:(h-n)*stride], buf[n*stride:h*stride])
	c.FillRect(0, h-n, w, n, bg)
	return nil
}

func rgb565From888(r, g, b uint8) uint16 {
	return uint16((uint16(r>>3)&0x1F)<<11 | (uint16(g>>2)&0x3F)<<5 | (uint16(b>>3) & 0x1F))
}

func rgb888From565(p uint16) color.RGBA {
	r5 := uint8((p >> 11) & 0x1F)
	g6 := uint8((p >> 5) & 0x3F)
	b5 := uint8(p & 0x1F)
	return color.RGBA{
		R: (r5 << 3) | (r5 >> 2),
		G: (g6 << 2) | (g6 >> 4),
		B: (b5 << 3) | (b5 >> 2),
		A: 0xFF,
	}
}

func blend(dst, src color.RGBA) color.RGBA {
	a := uint16(src.A)
	ia := 255 - a
	return color.RGBA{
		R: uint8((uint16(src.R)*a + uint16(dst.R)*ia) / 255),
		G: uint8((uint16(src.G)*a + uint16(dst.G)*ia) / 255),
		B: uint8((uint16(src.B)*a + uint16(dst.B)*ia) / 255),
		A: 0xFF,
	}
}

func lerpColor(a, b color.RGBA, t float32) color.RGBA {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	mix := func(x, y uint8) uint8 { return uint8(float32(x) + (float32(y)-float32(x))*t + 0.5) }
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

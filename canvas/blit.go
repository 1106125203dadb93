package canvas

import (
	"image"
	"image/color"
)

// Blit copies img with its top-left corner at (x,y). Each source pixel is
// multiplied by tint and alpha blended onto the canvas.
func (c *Canvas) Blit(img image.Image, x, y int, tint color.RGBA) {
	if img == nil {
		return
	}
	w, h := c.Bounds()
	b := img.Bounds()
	for sy := b.Min.Y; sy < b.Max.Y; sy++ {
		dy := y + sy - b.Min.Y
		if dy < 0 || dy >= h {
			continue
		}
		for sx := b.Min.X; sx < b.Max.X; sx++ {
			dx := x + sx - b.Min.X
			if dx < 0 || dx >= w {
				continue
			}
			c.plot(dx, dy, tinted(img.At(sx, sy), tint))
		}
	}
}

func tinted(src color.Color, tint color.RGBA) color.RGBA {
	// RGBA returns alpha-premultiplied 16-bit channels.
	r, g, b, a := src.RGBA()
	if a == 0 {
		return color.RGBA{}
	}
	un := func(v uint32) uint32 { return v * 0xFF / a }
	mul := func(v uint32, t uint8) uint8 { return uint8(v * uint32(t) / 0xFF) }
	return color.RGBA{
		R: mul(un(r), tint.R),
		G: mul(un(g), tint.G),
		B: mul(un(b), tint.B),
		A: mul(a>>8, tint.A),
	}
}

package canvas

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"tinygo.org/x/tinydraw"
)

func (c *Canvas) Clear(col color.RGBA) {
	if c.fb == nil {
		return
	}
	c.fb.ClearRGB(col.R, col.G, col.B)
}

func (c *Canvas) FillRect(x, y, w, h int, col color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	for py := y; py < y+h; py++ {
		c.span(x, x+w-1, py, col)
	}
}

func (c *Canvas) StrokeRect(x, y, w, h int, col color.RGBA) {
	cw, ch := c.Bounds()
	if w <= 0 || h <= 0 || cw <= 0 || ch <= 0 {
		return
	}
	// Edges off the canvas are pinned one pixel outside it.
	x0, x1 := clampInt(x, -1, cw), clampInt(x+w-1, -1, cw)
	y0, y1 := clampInt(y, -1, ch), clampInt(y+h-1, -1, ch)
	_ = tinydraw.Rectangle(c, int16(x0), int16(y0), int16(x1-x0+1), int16(y1-y0+1), col)
}

func (c *Canvas) GradientRectV(x, y, w, h int, top, bottom color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	for i := 0; i < h; i++ {
		c.span(x, x+w-1, y+i, lerpColor(top, bottom, gradientT(i, h)))
	}
}

func (c *Canvas) GradientRectH(x, y, w, h int, left, right color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	for i := 0; i < w; i++ {
		col := lerpColor(left, right, gradientT(i, w))
		for py := y; py < y+h; py++ {
			c.plot(x+i, py, col)
		}
	}
}

func gradientT(i, n int) float32 {
	if n <= 1 {
		return 0
	}
	return float32(i) / float32(n-1)
}

// FillCircle fills every pixel whose row/column lies within r of center.
func (c *Canvas) FillCircle(center mgl32.Vec2, r float32, col color.RGBA) {
	c.FillEllipse(center, r, r, col)
}

// StrokeCircle draws a one pixel circumference.
func (c *Canvas) StrokeCircle(center mgl32.Vec2, r float32, col color.RGBA) {
	cw, ch := c.Bounds()
	if r <= 0 || cw <= 0 || ch <= 0 {
		return
	}
	cx, cy := center.X(), center.Y()
	if cx+r < -1 || cy+r < -1 || cx-r > float32(cw) || cy-r > float32(ch) {
		return
	}
	// The whole canvas sits inside the ring.
	fx := max(abs32(cx), abs32(cx-float32(cw)))
	fy := max(abs32(cy), abs32(cy-float32(ch)))
	if r > 1 && fx*fx+fy*fy < (r-1)*(r-1) {
		return
	}
	if r > ringLimit {
		c.StrokeEllipse(center, r, r, col)
		return
	}
	tinydraw.Circle(c, coord(cx), coord(cy), coord(r), col)
}

// ringLimit keeps the midpoint error term of tinydraw.Circle inside int16.
const ringLimit = 1 << 12

// GradientCircle shades radially from inner at the center to outer at the rim.
func (c *Canvas) GradientCircle(center mgl32.Vec2, r float32, inner, outer color.RGBA) {
	if r <= 0 {
		return
	}
	cx, cy := center.X(), center.Y()
	y0 := int(math.Ceil(float64(cy - r)))
	y1 := int(math.Floor(float64(cy + r)))
	x0 := int(math.Ceil(float64(cx - r)))
	x1 := int(math.Floor(float64(cx + r)))
	for y := y0; y <= y1; y++ {
		dy := float32(y) - cy
		for x := x0; x <= x1; x++ {
			dx := float32(x) - cx
			d := float32(math.Sqrt(float64(dx*dx + dy*dy)))
			if d > r {
				continue
			}
			c.plot(x, y, lerpColor(inner, outer, d/r))
		}
	}
}

func (c *Canvas) FillEllipse(center mgl32.Vec2, rx, ry float32, col color.RGBA) {
	if rx <= 0 || ry <= 0 {
		return
	}
	cx, cy := center.X(), center.Y()
	y0 := int(math.Ceil(float64(cy - ry)))
	y1 := int(math.Floor(float64(cy + ry)))
	for y := y0; y <= y1; y++ {
		t := (float32(y) - cy) / ry
		k := 1 - t*t
		if k < 0 {
			continue
		}
		dx := rx * float32(math.Sqrt(float64(k)))
		c.span(int(math.Ceil(float64(cx-dx))), int(math.Floor(float64(cx+dx))), y, col)
	}
}

// StrokeEllipse connects points sampled around the perimeter.
func (c *Canvas) StrokeEllipse(center mgl32.Vec2, rx, ry float32, col color.RGBA) {
	if rx <= 0 || ry <= 0 {
		return
	}
	steps := int(2 * math.Pi * float64(max(rx, ry)))
	if steps < 12 {
		steps = 12
	}
	prevX := roundInt(center.X() + rx)
	prevY := roundInt(center.Y())
	for i := 1; i <= steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		x := roundInt(center.X() + rx*float32(math.Cos(a)))
		y := roundInt(center.Y() + ry*float32(math.Sin(a)))
		c.line(prevX, prevY, x, y, col)
		prevX, prevY = x, y
	}
}

// FillTriangle fills the triangle including its edges. Vertices are sorted by
// row first, so either winding gives the same pixels.
func (c *Canvas) FillTriangle(a, b, p mgl32.Vec2, col color.RGBA) {
	cw, ch := c.Bounds()
	if cw <= 0 || ch <= 0 {
		return
	}
	c.fillTriangle(a, b, p, float32(cw), float32(ch), col)
}

// tinydraw.FilledTriangle steps its edges with int16 accumulators that grow to
// width times height, so larger triangles are split at their edge midpoints.
const (
	triangleSpan = 1 << 14
	triangleEdge = 1 << 11
)

func (c *Canvas) fillTriangle(a, b, p mgl32.Vec2, cw, ch float32, col color.RGBA) {
	x0, x1 := min(a.X(), b.X(), p.X()), max(a.X(), b.X(), p.X())
	y0, y1 := min(a.Y(), b.Y(), p.Y()), max(a.Y(), b.Y(), p.Y())
	if x1 < -1 || y1 < -1 || x0 > cw || y0 > ch {
		return
	}
	w, h := x1-x0, y1-y0
	if w > triangleEdge || h > triangleEdge || (w+1)*(h+1) > triangleSpan {
		ab, bp, pa := a.Add(b).Mul(0.5), b.Add(p).Mul(0.5), p.Add(a).Mul(0.5)
		c.fillTriangle(a, ab, pa, cw, ch, col)
		c.fillTriangle(ab, b, bp, cw, ch, col)
		c.fillTriangle(pa, bp, p, cw, ch, col)
		c.fillTriangle(ab, bp, pa, cw, ch, col)
		return
	}
	tinydraw.FilledTriangle(c,
		coord(a.X()), coord(a.Y()),
		coord(b.X()), coord(b.Y()),
		coord(p.X()), coord(p.Y()), col)
}

func (c *Canvas) Line(start, end mgl32.Vec2, col color.RGBA) {
	c.line(roundInt(start.X()), roundInt(start.Y()), roundInt(end.X()), roundInt(end.Y()), col)
}

func (c *Canvas) line(x0, y0, x1, y1 int, col color.RGBA) {
	w, h := c.Bounds()
	if w <= 0 || h <= 0 {
		return
	}
	inside := func(x, y int) bool { return x >= -1 && y >= -1 && x <= w && y <= h }
	if !inside(x0, y0) || !inside(x1, y1) {
		var ok bool
		if x0, y0, x1, y1, ok = clipLine(x0, y0, x1, y1, w, h); !ok {
			return
		}
	}
	tinydraw.Line(c, int16(x0), int16(y0), int16(x1), int16(y1), col)
}

// clipLine cuts the segment to the canvas plus a one pixel margin
// (Liang-Barsky). ok is false when nothing of it is left.
func clipLine(x0, y0, x1, y1, w, h int) (cx0, cy0, cx1, cy1 int, ok bool) {
	fx, fy := float64(x0), float64(y0)
	dx, dy := float64(x1-x0), float64(y1-y0)
	t0, t1 := 0.0, 1.0
	for _, e := range [4][2]float64{
		{-dx, fx + 1},
		{dx, float64(w) - fx},
		{-dy, fy + 1},
		{dy, float64(h) - fy},
	} {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			t0 = math.Max(t0, r)
		} else {
			t1 = math.Min(t1, r)
		}
		if t0 > t1 {
			return 0, 0, 0, 0, false
		}
	}
	round := func(v float64) int { return int(math.Floor(v + 0.5)) }
	return round(fx + t0*dx), round(fy + t0*dy), round(fx + t1*dx), round(fy + t1*dy), true
}

// coordLimit keeps coordinates far outside the canvas from wrapping in int16.
const coordLimit = 1 << 13

// coord rounds v to the nearest pixel in the int16 space of drivers.Displayer.
func coord(v float32) int16 { return int16(clampInt(roundInt(v), -coordLimit, coordLimit)) }

func roundInt(v float32) int { return int(math.Floor(float64(v) + 0.5)) }

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

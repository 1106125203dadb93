package shapes

import (
	"fmt"
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// Call is one recorded Surface operation. Args is a printable rendering of the
// arguments, so two calls compare equal when they would draw the same thing.
type Call struct {
	Op   string
	Args string
}

// Recorder is a Surface that records calls instead of drawing.
type Recorder struct {
	Calls []Call
}

func (r *Recorder) record(op string, args ...any) {
	r.Calls = append(r.Calls, Call{Op: op, Args: fmt.Sprint(args...)})
}

// Reset drops all recorded calls.
func (r *Recorder) Reset() { r.Calls = r.Calls[:0] }

// Count returns how many calls of op were recorded.
func (r *Recorder) Count(op string) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Ops returns the recorded operation names in order.
func (r *Recorder) Ops() []string {
	out := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		out[i] = c.Op
	}
	return out
}

func (r *Recorder) Clear(c color.RGBA) { r.record("Clear", c) }

func (r *Recorder) FillRect(x, y, w, h int, c color.RGBA) {
	r.record("FillRect", x, y, w, h, c)
}

func (r *Recorder) StrokeRect(x, y, w, h int, c color.RGBA) {
	r.record("StrokeRect", x, y, w, h, c)
}

func (r *Recorder) GradientRectV(x, y, w, h int, top, bottom color.RGBA) {
	r.record("GradientRectV", x, y, w, h, top, bottom)
}

func (r *Recorder) GradientRectH(x, y, w, h int, left, right color.RGBA) {
	r.record("GradientRectH", x, y, w, h, left, right)
}

func (r *Recorder) FillCircle(center mgl32.Vec2, rad float32, c color.RGBA) {
	r.record("FillCircle", center, rad, c)
}

func (r *Recorder) StrokeCircle(center mgl32.Vec2, rad float32, c color.RGBA) {
	r.record("StrokeCircle", center, rad, c)
}

func (r *Recorder) GradientCircle(center mgl32.Vec2, rad float32, inner, outer color.RGBA) {
	r.record("GradientCircle", center, rad, inner, outer)
}

func (r *Recorder) FillEllipse(center mgl32.Vec2, rx, ry float32, c color.RGBA) {
	r.record("FillEllipse", center, rx, ry, c)
}

func (r *Recorder) StrokeEllipse(center mgl32.Vec2, rx, ry float32, c color.RGBA) {
	r.record("StrokeEllipse", center, rx, ry, c)
}

func (r *Recorder) FillTriangle(a, b, c mgl32.Vec2, col color.RGBA) {
	r.record("FillTriangle", a, b, c, col)
}

func (r *Recorder) Line(start, end mgl32.Vec2, c color.RGBA) {
	r.record("Line", start, end, c)
}

func (r *Recorder) Text(s string, x, y, size int, c color.RGBA) {
	r.record("Text", s, x, y, size, c)
}

// TextWidth uses a fixed advance of half the size per rune.
func (r *Recorder) TextWidth(s string, size int) int {
	return len([]rune(s)) * size / 2
}

func (r *Recorder) Blit(img image.Image, x, y int, tint color.RGBA) {
	var b image.Rectangle
	if img != nil {
		b = img.Bounds()
	}
	r.record("Blit", b, x, y, tint)
}

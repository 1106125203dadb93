package canvas

import (
	"image"
	"image/color"
	"testing"

	"bouncy/hal"
	"bouncy/shapes"

	"github.com/go-gl/mathgl/mgl32"
	"tinygo.org/x/tinydraw"
	"tinygo.org/x/tinyterm"
)

var (
	_ shapes.Surface     = (*Canvas)(nil)
	_ tinyterm.Displayer = (*Canvas)(nil)
)

func newTestCanvas(t *testing.T, w, h int) *Canvas {
	t.Helper()
	c := New(hal.NewFramebuffer(w, h))
	c.Clear(shapes.White)
	return c
}

func countColor(c *Canvas, col color.RGBA) int {
	w, h := c.Bounds()
	n := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if c.Pixel(x, y) == col {
				n++
			}
		}
	}
	return n
}

// diffPixels reports the first pixel where a and b differ.
func diffPixels(t *testing.T, a, b *Canvas) {
	t.Helper()
	w, h := a.Bounds()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if a.Pixel(x, y) != b.Pixel(x, y) {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, a.Pixel(x, y), b.Pixel(x, y))
			}
		}
	}
}

func TestFillRectClipped(t *testing.T) {
	c := newTestCanvas(t, 10, 10)
	c.FillRect(-5, -5, 8, 8, shapes.Black)
	if got := countColor(c, shapes.Black); got != 9 {
		t.Fatalf("black pixels = %d, want 9", got)
	}
	if c.Pixel(2, 2) != shapes.Black || c.Pixel(3, 3) != shapes.White {
		t.Fatalf("clip edge wrong")
	}
}

func TestStrokeRectLeavesInterior(t *testing.T) {
	c := newTestCanvas(t, 10, 10)
	c.StrokeRect(1, 1, 5, 5, shapes.Black)
	if got := countColor(c, shapes.Black); got != 16 {
		t.Fatalf("outline pixels = %d, want 16", got)
	}
	if c.Pixel(3, 3) != shapes.White {
		t.Fatalf("interior painted")
	}

	ref := newTestCanvas(t, 10, 10)
	if err := tinydraw.Rectangle(ref, 1, 1, 5, 5, shapes.Black); err != nil {
		t.Fatalf("tinydraw.Rectangle: %v", err)
	}
	diffPixels(t, c, ref)
}

func TestStrokeRectOffCanvasEdges(t *testing.T) {
	c := newTestCanvas(t, 10, 10)
	c.StrokeRect(-1000, -1000, 3000, 3000, shapes.Black)
	if got := countColor(c, shapes.Black); got != 0 {
		t.Fatalf("enclosing outline drew %d pixels", got)
	}
	c.StrokeRect(2, 2, 40000, 40000, shapes.Black)
	if got := countColor(c, shapes.Black); got != 15 {
		t.Fatalf("outline pixels = %d, want 15", got)
	}
	if c.Pixel(9, 2) != shapes.Black || c.Pixel(2, 9) != shapes.Black || c.Pixel(3, 3) != shapes.White {
		t.Fatalf("visible edges wrong")
	}
}

func TestLineEndpoints(t *testing.T) {
	c := newTestCanvas(t, 16, 16)
	c.Line(mgl32.Vec2{1, 1}, mgl32.Vec2{14, 9}, shapes.Black)
	if c.Pixel(1, 1) != shapes.Black || c.Pixel(14, 9) != shapes.Black {
		t.Fatalf("endpoints not drawn")
	}
	if got := countColor(c, shapes.Black); got != 14 {
		t.Fatalf("line pixels = %d, want 14", got)
	}

	ref := newTestCanvas(t, 16, 16)
	tinydraw.Line(ref, 1, 1, 14, 9, shapes.Black)
	diffPixels(t, c, ref)
}

func TestLineClippedToCanvas(t *testing.T) {
	c := newTestCanvas(t, 16, 16)
	c.Line(mgl32.Vec2{-100000, 8}, mgl32.Vec2{100000, 8}, shapes.Black)
	for x := 0; x < 16; x++ {
		if c.Pixel(x, 8) != shapes.Black {
			t.Fatalf("row 8 missing x=%d", x)
		}
	}

	c.Clear(shapes.White)
	c.Line(mgl32.Vec2{-100000, -100000}, mgl32.Vec2{100000, 100000}, shapes.Black)
	if got := countColor(c, shapes.Black); got != 16 {
		t.Fatalf("diagonal pixels = %d, want 16", got)
	}
	for i := 0; i < 16; i++ {
		if c.Pixel(i, i) != shapes.Black {
			t.Fatalf("diagonal missing (%d,%d)", i, i)
		}
	}

	c.Clear(shapes.White)
	c.Line(mgl32.Vec2{-50, 40}, mgl32.Vec2{60, 40}, shapes.Black)
	if got := countColor(c, shapes.Black); got != 0 {
		t.Fatalf("line below the canvas drew %d pixels", got)
	}
}

func TestFillCircleInsideOnly(t *testing.T) {
	c := newTestCanvas(t, 40, 40)
	c.FillCircle(mgl32.Vec2{20, 20}, 10, shapes.Black)
	if c.Pixel(20, 20) != shapes.Black || c.Pixel(20, 10) != shapes.Black || c.Pixel(30, 20) != shapes.Black {
		t.Fatalf("circle body missing")
	}
	if c.Pixel(28, 28) != shapes.White || c.Pixel(20, 9) != shapes.White {
		t.Fatalf("circle overflowed")
	}
}

func TestStrokeCircleRing(t *testing.T) {
	c := newTestCanvas(t, 40, 40)
	c.StrokeCircle(mgl32.Vec2{20, 20}, 10, shapes.Black)
	for _, p := range [][2]int{{30, 20}, {10, 20}, {20, 30}, {20, 10}} {
		if c.Pixel(p[0], p[1]) != shapes.Black {
			t.Fatalf("ring missing at %v", p)
		}
	}
	if c.Pixel(20, 20) != shapes.White {
		t.Fatalf("ring filled the center")
	}

	ref := newTestCanvas(t, 40, 40)
	tinydraw.Circle(ref, 20, 20, 10, shapes.Black)
	diffPixels(t, c, ref)
}

func TestStrokeCircleFarAway(t *testing.T) {
	c := newTestCanvas(t, 40, 40)
	c.StrokeCircle(mgl32.Vec2{30000, 30000}, 100, shapes.Black)
	c.StrokeCircle(mgl32.Vec2{20, 20}, 1e6, shapes.Black)
	if got := countColor(c, shapes.Black); got != 0 {
		t.Fatalf("off-canvas rings drew %d pixels", got)
	}
}

func TestGradientCircleCenterAndRim(t *testing.T) {
	c := newTestCanvas(t, 40, 40)
	c.GradientCircle(mgl32.Vec2{20, 20}, 10, shapes.Black, shapes.Red)
	if c.Pixel(20, 20) != shapes.Black {
		t.Fatalf("center = %v, want black", c.Pixel(20, 20))
	}
	rim := c.Pixel(30, 20)
	if rim.R < 200 || rim.G > 60 {
		t.Fatalf("rim = %v, want close to red", rim)
	}
}

func TestTriangleWindingIndependent(t *testing.T) {
	a, b, p := mgl32.Vec2{2, 2}, mgl32.Vec2{18, 4}, mgl32.Vec2{6, 17}

	cw := newTestCanvas(t, 20, 20)
	cw.FillTriangle(a, b, p, shapes.Black)
	ccw := newTestCanvas(t, 20, 20)
	ccw.FillTriangle(a, p, b, shapes.Black)

	n := countColor(cw, shapes.Black)
	if n == 0 || n != countColor(ccw, shapes.Black) {
		t.Fatalf("windings differ: %d vs %d", n, countColor(ccw, shapes.Black))
	}
	diffPixels(t, cw, ccw)

	ref := newTestCanvas(t, 20, 20)
	tinydraw.FilledTriangle(ref, 2, 2, 18, 4, 6, 17, shapes.Black)
	diffPixels(t, cw, ref)
}

func TestLargeTriangleSplit(t *testing.T) {
	c := newTestCanvas(t, 64, 64)
	c.FillTriangle(mgl32.Vec2{-20000, -20000}, mgl32.Vec2{40000, -20000}, mgl32.Vec2{-20000, 40000}, shapes.Black)
	if got := countColor(c, shapes.Black); got != 64*64 {
		t.Fatalf("covering triangle filled %d pixels, want %d", got, 64*64)
	}

	c.Clear(shapes.White)
	c.FillTriangle(mgl32.Vec2{0, 0}, mgl32.Vec2{63, 0}, mgl32.Vec2{0, 63}, shapes.Black)
	if c.Pixel(10, 10) != shapes.Black || c.Pixel(63, 63) != shapes.White {
		t.Fatalf("half triangle wrong")
	}
}

func TestGradientRectEnds(t *testing.T) {
	c := newTestCanvas(t, 8, 8)
	c.GradientRectV(0, 0, 8, 8, shapes.Black, shapes.White)
	if c.Pixel(3, 0) != shapes.Black || c.Pixel(3, 7) != shapes.White {
		t.Fatalf("vertical gradient ends wrong")
	}
	c.GradientRectH(0, 0, 8, 8, shapes.White, shapes.Black)
	if c.Pixel(0, 3) != shapes.White || c.Pixel(7, 3) != shapes.Black {
		t.Fatalf("horizontal gradient ends wrong")
	}
}

func TestEllipseSpans(t *testing.T) {
	c := newTestCanvas(t, 40, 20)
	c.FillEllipse(mgl32.Vec2{20, 10}, 15, 5, shapes.Black)
	if c.Pixel(34, 10) != shapes.Black || c.Pixel(20, 4) != shapes.White {
		t.Fatalf("ellipse extent wrong")
	}
	c.Clear(shapes.White)
	c.StrokeEllipse(mgl32.Vec2{20, 10}, 15, 5, shapes.Black)
	if c.Pixel(35, 10) != shapes.Black || c.Pixel(20, 10) != shapes.White {
		t.Fatalf("ellipse outline wrong")
	}
}

func TestTranslucentBlend(t *testing.T) {
	c := newTestCanvas(t, 2, 2)
	c.Clear(shapes.Black)
	c.FillRect(0, 0, 1, 1, color.RGBA{255, 255, 255, 0})
	if c.Pixel(0, 0) != shapes.Black {
		t.Fatalf("transparent fill painted")
	}
	c.FillRect(0, 0, 1, 1, color.RGBA{255, 255, 255, 128})
	p := c.Pixel(0, 0)
	if p.R < 100 || p.R > 160 {
		t.Fatalf("half blend = %v", p)
	}
}

func TestTextDrawsAndMeasures(t *testing.T) {
	c := newTestCanvas(t, 200, 40)
	c.Text("FPS 120", 2, 2, 10, shapes.Black)
	if countColor(c, shapes.Black) == 0 {
		t.Fatalf("text drew nothing")
	}
	if c.TextWidth("", 10) != 0 {
		t.Fatalf("empty width not zero")
	}
	short, long := c.TextWidth("ab", 30), c.TextWidth("abcd", 30)
	if short <= 0 || long <= short {
		t.Fatalf("widths %d, %d", short, long)
	}
	if LineHeight(30) <= LineHeight(10) {
		t.Fatalf("large face not taller")
	}
}

func TestBlitTint(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for i := range img.Pix {
		img.Pix[i] = 0xFF
	}
	c := newTestCanvas(t, 4, 4)
	c.Clear(shapes.Black)
	c.Blit(img, 3, 3, shapes.Red)
	if c.Pixel(3, 3) == shapes.Black {
		t.Fatalf("blit missing")
	}
	if got := countColor(c, shapes.Black); got != 15 {
		t.Fatalf("blit not clipped, black = %d", got)
	}
}

func TestCopyFromAndScroll(t *testing.T) {
	src := New(hal.NewFramebuffer(4, 2))
	src.Clear(shapes.Black)

	c := newTestCanvas(t, 6, 6)
	c.CopyFrom(src.Framebuffer(), 4, 4)
	if got := countColor(c, shapes.Black); got != 4 {
		t.Fatalf("copied pixels = %d, want 4", got)
	}

	if err := c.ScrollUp(4, shapes.White); err != nil {
		t.Fatalf("ScrollUp: %v", err)
	}
	if c.Pixel(4, 0) != shapes.Black || c.Pixel(4, 4) != shapes.White {
		t.Fatalf("scroll did not move rows")
	}
}

func TestNilFramebufferIsInert(t *testing.T) {
	c := New(nil)
	c.Clear(shapes.Black)
	c.FillCircle(mgl32.Vec2{1, 1}, 3, shapes.Black)
	c.FillTriangle(mgl32.Vec2{0, 0}, mgl32.Vec2{5, 0}, mgl32.Vec2{0, 5}, shapes.Black)
	if w, h := c.Size(); w != 0 || h != 0 {
		t.Fatalf("size = %d,%d", w, h)
	}
	if err := c.Display(); err != nil {
		t.Fatalf("Display: %v", err)
	}
}

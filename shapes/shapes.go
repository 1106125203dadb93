// Package shapes holds plain 2D shape records and the Surface they draw onto.
//
// Records carry no behavior of their own beyond forwarding to one Surface
// primitive, so the same record can be drawn on the software canvas or into a
// Recorder in tests.
package shapes

import (
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// Surface is the set of drawing primitives a shape can use.
//
// Integer coordinates are pixels with (0,0) at the top-left corner. Implementations
// clip everything to their bounds.
type Surface interface {
	Clear(c color.RGBA)

	FillRect(x, y, w, h int, c color.RGBA)
	StrokeRect(x, y, w, h int, c color.RGBA)
	GradientRectV(x, y, w, h int, top, bottom color.RGBA)
	GradientRectH(x, y, w, h int, left, right color.RGBA)

	FillCircle(center mgl32.Vec2, r float32, c color.RGBA)
	StrokeCircle(center mgl32.Vec2, r float32, c color.RGBA)
	GradientCircle(center mgl32.Vec2, r float32, inner, outer color.RGBA)

	FillEllipse(center mgl32.Vec2, rx, ry float32, c color.RGBA)
	StrokeEllipse(center mgl32.Vec2, rx, ry float32, c color.RGBA)

	FillTriangle(a, b, c mgl32.Vec2, col color.RGBA)
	Line(start, end mgl32.Vec2, c color.RGBA)

	// Text draws s with its top-left corner at (x,y). size is the nominal line
	// height in pixels; the surface picks the closest font it has.
	Text(s string, x, y, size int, c color.RGBA)
	TextWidth(s string, size int) int

	// Blit copies img with its top-left corner at (x,y), multiplying each pixel by tint.
	Blit(img image.Image, x, y int, tint color.RGBA)
}

// Kind identifies a shape record.
type Kind uint8

const (
	KindRect Kind = iota
	KindCircle
	KindEllipse
	KindTriangle
	KindLine
	KindText
	KindSprite
)

func (k Kind) String() string {
	switch k {
	case KindRect:
		return "rect"
	case KindCircle:
		return "circle"
	case KindEllipse:
		return "ellipse"
	case KindTriangle:
		return "triangle"
	case KindLine:
		return "line"
	case KindText:
		return "text"
	case KindSprite:
		return "sprite"
	default:
		return "unknown"
	}
}

// Shape is any record that can draw itself with its default style.
type Shape interface {
	Kind() Kind
	Draw(s Surface)
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y          int
	Width, Height int
	Color         color.RGBA
}

func (Rect) Kind() Kind { return KindRect }

func (r Rect) Draw(s Surface) { s.FillRect(r.X, r.Y, r.Width, r.Height, r.Color) }

// DrawOutline strokes the rectangle border in its color.
func (r Rect) DrawOutline(s Surface) { s.StrokeRect(r.X, r.Y, r.Width, r.Height, r.Color) }

// DrawGradientV fills with a vertical gradient from top to bottom.
func (r Rect) DrawGradientV(s Surface, top, bottom color.RGBA) {
	s.GradientRectV(r.X, r.Y, r.Width, r.Height, top, bottom)
}

// DrawGradientH fills with a horizontal gradient from left to right.
func (r Rect) DrawGradientH(s Surface, left, right color.RGBA) {
	s.GradientRectH(r.X, r.Y, r.Width, r.Height, left, right)
}

// Circle is a disc.
type Circle struct {
	Center mgl32.Vec2
	Radius float32
	Color  color.RGBA
}

func (Circle) Kind() Kind { return KindCircle }

func (c Circle) Draw(s Surface) { s.FillCircle(c.Center, c.Radius, c.Color) }

// DrawOutline strokes the circumference in the given color.
func (c Circle) DrawOutline(s Surface, outline color.RGBA) {
	s.StrokeCircle(c.Center, c.Radius, outline)
}

// DrawGradient fills radially from the circle color at the center to outer at the rim.
func (c Circle) DrawGradient(s Surface, outer color.RGBA) {
	s.GradientCircle(c.Center, c.Radius, c.Color, outer)
}

// Ellipse is an axis-aligned ellipse.
type Ellipse struct {
	Center  mgl32.Vec2
	RadiusH float32
	RadiusV float32
	Color   color.RGBA
}

func (Ellipse) Kind() Kind { return KindEllipse }

func (e Ellipse) Draw(s Surface) { s.FillEllipse(e.Center, e.RadiusH, e.RadiusV, e.Color) }

func (e Ellipse) DrawOutline(s Surface) {
	s.StrokeEllipse(e.Center, e.RadiusH, e.RadiusV, e.Color)
}

// Triangle is filled regardless of vertex winding.
type Triangle struct {
	A, B, C mgl32.Vec2
	Color   color.RGBA
}

func (Triangle) Kind() Kind { return KindTriangle }

func (t Triangle) Draw(s Surface) { s.FillTriangle(t.A, t.B, t.C, t.Color) }

// Line is a one pixel wide segment.
type Line struct {
	Start mgl32.Vec2
	End   mgl32.Vec2
	Color color.RGBA
}

func (Line) Kind() Kind { return KindLine }

func (l Line) Draw(s Surface) { s.Line(l.Start, l.End, l.Color) }

// Text is a single line of text.
type Text struct {
	Text  string
	X, Y  int
	Size  int
	Color color.RGBA
}

func (Text) Kind() Kind { return KindText }

func (t Text) Draw(s Surface) { s.Text(t.Text, t.X, t.Y, t.Size, t.Color) }

// Width measures the text on s.
func (t Text) Width(s Surface) int { return s.TextWidth(t.Text, t.Size) }

// CenteredX returns the x that centers t horizontally in a surface of width w.
func (t Text) CenteredX(s Surface, w int) int { return (w - t.Width(s)) / 2 }

// Sprite is an image drawn at a position with a color tint.
type Sprite struct {
	Image image.Image
	X, Y  int
	Tint  color.RGBA
}

func (Sprite) Kind() Kind { return KindSprite }

func (sp Sprite) Draw(s Surface) {
	if sp.Image == nil {
		return
	}
	tint := sp.Tint
	if tint == (color.RGBA{}) {
		tint = White
	}
	s.Blit(sp.Image, sp.X, sp.Y, tint)
}

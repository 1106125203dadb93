package canvas

import (
	"image/color"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freesans"
	"tinygo.org/x/tinyfont/proggy"
)

// face is a font plus the distance from the top of a line to its baseline.
type face struct {
	font   *tinyfont.Font
	ascent int16
}

var faces = []face{
	newFace(&proggy.TinySZ8pt7b),
	newFace(&freesans.Regular9pt7b),
	newFace(&freesans.Bold12pt7b),
	newFace(&freesans.Bold18pt7b),
}

func newFace(f *tinyfont.Font) face {
	asc := int16(f.GetYAdvance())
	if info := f.GetGlyph('H').Info(); info.Height > 0 {
		asc = -int16(info.YOffset)
	}
	return face{font: f, ascent: asc}
}

// faceFor returns the face whose line height is closest to size.
func faceFor(size int) face {
	best := faces[0]
	bestD := -1
	for _, f := range faces {
		d := absInt(int(f.font.GetYAdvance()) - size)
		if bestD < 0 || d < bestD {
			best, bestD = f, d
		}
	}
	return best
}

// LineHeight is the vertical advance of the face used for size.
func LineHeight(size int) int { return int(faceFor(size).font.GetYAdvance()) }

// Text draws s with its top-left corner at (x,y).
func (c *Canvas) Text(s string, x, y, size int, col color.RGBA) {
	if s == "" {
		return
	}
	f := faceFor(size)
	tinyfont.WriteLine(c, f.font, int16(x), int16(y)+f.ascent, s, col)
}

func (c *Canvas) TextWidth(s string, size int) int {
	if s == "" {
		return 0
	}
	_, outbox := tinyfont.LineWidth(faceFor(size).font, s)
	return int(outbox)
}

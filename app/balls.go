package app

import (
	"fmt"
	"image/color"

	"bouncy/shapes"
	"bouncy/sim"
)

const (
	title     = "Bouncy Ball Simulation"
	titleSize = 30
	titleY    = 15
	fpsSize   = 20
)

// hud is the overlay state drawn on top of a scene.
type hud struct {
	Width int
	FPS   int
}

// renderBalls draws the balls scene. It only reads w, so the same inputs always
// give the same calls.
func renderBalls(s shapes.Surface, w *sim.World, h hud) {
	s.Clear(shapes.Beige)
	for _, l := range w.Boundaries {
		l.Draw(s)
	}
	for _, b := range w.Balls {
		c := b.Shape()
		c.Draw(s)
		c.DrawOutline(s, shapes.Black)
	}
	drawFPS(s, h.FPS)

	t := shapes.Text{Text: title, Y: titleY, Size: titleSize, Color: shapes.Black}
	t.X = t.CenteredX(s, h.Width)
	t.Draw(s)
}

// drawFPS draws the frame rate at (2,2), green when healthy and red when low.
func drawFPS(s shapes.Surface, fps int) {
	c := shapes.Lime
	switch {
	case fps < 15:
		c = shapes.Red
	case fps < 30:
		c = shapes.Orange
	}
	shapes.Text{Text: fmt.Sprintf("%2d FPS", fps), X: 2, Y: 2, Size: fpsSize, Color: c}.Draw(s)
}

// fpsCounter averages the frame rate over half-second windows.
type fpsCounter struct {
	acc    float32
	frames int
	fps    int
}

func (f *fpsCounter) tick(dt float32) {
	f.acc += dt
	f.frames++
	if f.acc >= 0.5 {
		f.fps = int(float32(f.frames)/f.acc + 0.5)
		f.acc = 0
		f.frames = 0
	}
}

func (f *fpsCounter) value() int { return f.fps }

// hudLine draws one line of small overlay text with a translucent backing.
func hudLine(s shapes.Surface, text string, x, y int) {
	w := s.TextWidth(text, 10)
	s.FillRect(x-2, y-1, w+4, 12, color.RGBA{0, 0, 0, 0x90})
	s.Text(text, x, y, 10, shapes.RayWhite)
}

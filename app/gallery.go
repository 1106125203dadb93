package app

import (
	"image"

	"bouncy/gl3d"
	"bouncy/shapes"

	"github.com/go-gl/mathgl/mgl32"
)

// gallery shows every 2D shape record in each of its styles. The layout is laid
// out on a 512x512 grid and clipped on smaller windows.
type gallery struct {
	sprite image.Image
	shapes []shapes.Shape
}

func newGallery() *gallery {
	g := &gallery{sprite: gl3d.CheckerTexture(48, 8, shapes.Violet, shapes.White)}
	g.shapes = []shapes.Shape{
		shapes.Rect{X: 20, Y: 60, Width: 100, Height: 60, Color: shapes.Red},
		shapes.Circle{Center: mgl32.Vec2{200, 90}, Radius: 30, Color: shapes.DarkBlue},
		shapes.Ellipse{Center: mgl32.Vec2{320, 90}, RadiusH: 50, RadiusV: 25, Color: shapes.Yellow},
		shapes.Triangle{A: mgl32.Vec2{430, 60}, B: mgl32.Vec2{400, 120}, C: mgl32.Vec2{480, 120}, Color: shapes.Violet},
		shapes.Line{Start: mgl32.Vec2{20, 150}, End: mgl32.Vec2{490, 170}, Color: shapes.Black},
		shapes.Sprite{Image: g.sprite, X: 440, Y: 380},
	}
	return g
}

func (g *gallery) render(s shapes.Surface, h hud) {
	s.Clear(shapes.RayWhite)
	for _, sh := range g.shapes {
		sh.Draw(s)
	}

	// Outline and gradient styles.
	shapes.Rect{X: 20, Y: 200, Width: 100, Height: 60, Color: shapes.Maroon}.DrawOutline(s)
	shapes.Rect{X: 140, Y: 200, Width: 100, Height: 60}.DrawGradientV(s, shapes.Gold, shapes.Maroon)
	shapes.Rect{X: 260, Y: 200, Width: 100, Height: 60}.DrawGradientH(s, shapes.SkyBlue, shapes.DarkBlue)
	shapes.Ellipse{Center: mgl32.Vec2{430, 230}, RadiusH: 50, RadiusV: 25, Color: shapes.Orange}.DrawOutline(s)

	ring := shapes.Circle{Center: mgl32.Vec2{70, 330}, Radius: 40, Color: shapes.Green}
	ring.Draw(s)
	ring.DrawOutline(s, shapes.Black)
	shapes.Circle{Center: mgl32.Vec2{190, 330}, Radius: 40, Color: shapes.Gold}.DrawGradient(s, shapes.Brown)
	shapes.Circle{Center: mgl32.Vec2{310, 330}, Radius: 40, Color: shapes.White}.DrawGradient(s, shapes.Magenta)

	// The sprite again, tinted.
	shapes.Sprite{Image: g.sprite, X: 380, Y: 380, Tint: shapes.Pink}.Draw(s)

	labels := []shapes.Text{
		{Text: "rect", X: 20, Y: 124, Size: 10, Color: shapes.DarkGray},
		{Text: "circle", X: 170, Y: 124, Size: 10, Color: shapes.DarkGray},
		{Text: "ellipse", X: 290, Y: 124, Size: 10, Color: shapes.DarkGray},
		{Text: "triangle", X: 410, Y: 124, Size: 10, Color: shapes.DarkGray},
		{Text: "outline / gradients", X: 20, Y: 270, Size: 10, Color: shapes.DarkGray},
		{Text: "sprites", X: 380, Y: 432, Size: 10, Color: shapes.DarkGray},
		{Text: "Shape gallery", X: 20, Y: 460, Size: 30, Color: shapes.Black},
	}
	for _, l := range labels {
		l.Draw(s)
	}
	drawFPS(s, h.FPS)
}

package shapes

import (
	"image"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestShapesForwardToOnePrimitive(t *testing.T) {
	all := []struct {
		shape Shape
		op    string
	}{
		{Rect{X: 1, Y: 2, Width: 3, Height: 4, Color: Red}, "FillRect"},
		{Circle{Center: mgl32.Vec2{5, 5}, Radius: 2, Color: Blue}, "FillCircle"},
		{Ellipse{Center: mgl32.Vec2{5, 5}, RadiusH: 4, RadiusV: 2, Color: Green}, "FillEllipse"},
		{Triangle{A: mgl32.Vec2{0, 0}, B: mgl32.Vec2{4, 0}, C: mgl32.Vec2{0, 4}, Color: Pink}, "FillTriangle"},
		{Line{Start: mgl32.Vec2{1, 1}, End: mgl32.Vec2{9, 1}, Color: Black}, "Line"},
		{Text{Text: "hi", X: 2, Y: 2, Size: 10, Color: Black}, "Text"},
		{Sprite{Image: image.NewRGBA(image.Rect(0, 0, 2, 2))}, "Blit"},
	}
	for _, tc := range all {
		var r Recorder
		tc.shape.Draw(&r)
		if len(r.Calls) != 1 || r.Calls[0].Op != tc.op {
			t.Fatalf("%s: calls = %+v, want one %s", tc.shape.Kind(), r.Calls, tc.op)
		}
	}
}

func TestStyledDraws(t *testing.T) {
	var r Recorder
	rect := Rect{X: 0, Y: 0, Width: 10, Height: 10, Color: Red}
	rect.DrawOutline(&r)
	rect.DrawGradientV(&r, Red, Blue)
	rect.DrawGradientH(&r, Red, Blue)

	c := Circle{Center: mgl32.Vec2{10, 10}, Radius: 5, Color: Yellow}
	c.DrawOutline(&r, Black)
	c.DrawGradient(&r, Orange)

	Ellipse{RadiusH: 3, RadiusV: 2, Color: Lime}.DrawOutline(&r)

	want := []string{"StrokeRect", "GradientRectV", "GradientRectH", "StrokeCircle", "GradientCircle", "StrokeEllipse"}
	got := r.Ops()
	if len(got) != len(want) {
		t.Fatalf("ops = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ops = %v, want %v", got, want)
		}
	}
}

func TestSpriteDefaultsAndNil(t *testing.T) {
	var r Recorder
	Sprite{}.Draw(&r)
	if len(r.Calls) != 0 {
		t.Fatalf("nil image drew %+v", r.Calls)
	}

	Sprite{Image: image.NewRGBA(image.Rect(0, 0, 1, 1))}.Draw(&r)
	var want Recorder
	want.Blit(image.NewRGBA(image.Rect(0, 0, 1, 1)), 0, 0, White)
	if r.Calls[0] != want.Calls[0] {
		t.Fatalf("blit = %+v, want white tint %+v", r.Calls[0], want.Calls[0])
	}
}

func TestTextCentering(t *testing.T) {
	var r Recorder
	txt := Text{Text: "abcd", Size: 10}
	if w := txt.Width(&r); w != 20 {
		t.Fatalf("width = %d, want 20", w)
	}
	if x := txt.CenteredX(&r, 100); x != 40 {
		t.Fatalf("centered x = %d, want 40", x)
	}
}

func TestRecorderCountAndReset(t *testing.T) {
	var r Recorder
	r.Clear(Beige)
	r.Line(mgl32.Vec2{}, mgl32.Vec2{1, 1}, Black)
	r.Line(mgl32.Vec2{}, mgl32.Vec2{2, 2}, Black)
	if r.Count("Line") != 2 || r.Count("Clear") != 1 || r.Count("Text") != 0 {
		t.Fatalf("counts wrong: %v", r.Ops())
	}
	r.Reset()
	if len(r.Calls) != 0 {
		t.Fatalf("reset left %d calls", len(r.Calls))
	}
}

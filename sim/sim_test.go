package sim

import (
	"math/rand/v2"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

var screen = Bounds{W: 512, H: 512}

func TestStepCornerScenario(t *testing.T) {
	balls := []Ball{{Pos: mgl32.Vec2{20, 20}, Vel: mgl32.Vec2{-300, -300}, Radius: 20}}
	n := Step(0.1, balls, screen, ReflectReference)

	if !balls[0].Pos.ApproxEqualThreshold(mgl32.Vec2{-10, -10}, 1e-4) {
		t.Fatalf("pos = %v, want (-10,-10)", balls[0].Pos)
	}
	if balls[0].Vel != (mgl32.Vec2{300, 300}) {
		t.Fatalf("vel = %v, want (300,300)", balls[0].Vel)
	}
	if n != (Bounces{X: 1, Y: 1}) {
		t.Fatalf("bounces = %+v", n)
	}
}

func TestStepFlipsAtLeftWall(t *testing.T) {
	balls := []Ball{{Pos: mgl32.Vec2{20, 200}, Vel: mgl32.Vec2{-250, 0}, Radius: 20}}
	Step(0, balls, screen, ReflectReference)
	if balls[0].Vel.X() <= 0 {
		t.Fatalf("vel.x = %v, want > 0", balls[0].Vel.X())
	}
	if balls[0].Vel.Y() != 0 {
		t.Fatalf("vel.y changed to %v", balls[0].Vel.Y())
	}
}

func TestStepFreeFlight(t *testing.T) {
	balls := []Ball{{Pos: mgl32.Vec2{100, 100}, Vel: mgl32.Vec2{250, -400}, Radius: 20}}
	n := Step(0.1, balls, screen, ReflectReference)
	if !balls[0].Pos.ApproxEqualThreshold(mgl32.Vec2{125, 60}, 1e-4) {
		t.Fatalf("pos = %v, want (125,60)", balls[0].Pos)
	}
	if n.Total() != 0 || balls[0].Vel != (mgl32.Vec2{250, -400}) {
		t.Fatalf("unexpected bounce: %+v vel=%v", n, balls[0].Vel)
	}
}

func TestReferenceModeFlipsAgainWhileBeyond(t *testing.T) {
	balls := []Ball{{Pos: mgl32.Vec2{5, 200}, Vel: mgl32.Vec2{10, 0}, Radius: 20}}
	Step(0.01, balls, screen, ReflectReference)
	if balls[0].Vel.X() != -10 {
		t.Fatalf("reference mode should flip inward motion too, vel = %v", balls[0].Vel)
	}
}

func TestDirectionalModeDoesNotOscillate(t *testing.T) {
	balls := []Ball{{Pos: mgl32.Vec2{5, 200}, Vel: mgl32.Vec2{10, 0}, Radius: 20}}
	for i := 0; i < 5; i++ {
		Step(0.01, balls, screen, ReflectDirectional)
		if balls[0].Vel.X() != 10 {
			t.Fatalf("step %d: vel = %v, want +10", i, balls[0].Vel)
		}
	}
}

func TestClampModeRestoresPosition(t *testing.T) {
	balls := []Ball{{Pos: mgl32.Vec2{500, 200}, Vel: mgl32.Vec2{300, 0}, Radius: 20}}
	n := Step(0.1, balls, screen, ReflectClamp)
	if balls[0].Pos.X() != 492 || balls[0].Vel.X() != -300 || n.X != 1 {
		t.Fatalf("pos=%v vel=%v bounces=%+v", balls[0].Pos, balls[0].Vel, n)
	}
}

func TestParseReflect(t *testing.T) {
	for _, m := range []Reflect{ReflectReference, ReflectDirectional, ReflectClamp} {
		got, err := ParseReflect(m.String())
		if err != nil || got != m {
			t.Fatalf("ParseReflect(%q) = %v, %v", m.String(), got, err)
		}
	}
	if _, err := ParseReflect("sticky"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}

func TestNewBallsInsideBounds(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	balls := NewBalls(rng, 50, screen)
	if len(balls) != 50 {
		t.Fatalf("len = %d, want 50", len(balls))
	}
	for i, b := range balls {
		if b.Radius != BallRadius {
			t.Fatalf("ball %d radius %v", i, b.Radius)
		}
		if b.Pos.X() < 20 || b.Pos.X() > 492 || b.Pos.Y() < 20 || b.Pos.Y() > 492 {
			t.Fatalf("ball %d outside: %v", i, b.Pos)
		}
		if b.Pos.X() != float32(int(b.Pos.X())) {
			t.Fatalf("ball %d position not integral: %v", i, b.Pos)
		}
		for _, v := range b.Vel {
			s := v
			if s < 0 {
				s = -s
			}
			if s < MinSpeed || s > MaxSpeed {
				t.Fatalf("ball %d speed %v out of range", i, v)
			}
		}
		found := false
		for _, c := range Palette {
			if c == b.Color {
				found = true
			}
		}
		if !found {
			t.Fatalf("ball %d color %v not in palette", i, b.Color)
		}
	}
}

func TestNewBallsDeterministic(t *testing.T) {
	a := NewBalls(rand.New(rand.NewPCG(7, 7)), 10, screen)
	b := NewBalls(rand.New(rand.NewPCG(7, 7)), 10, screen)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("ball %d differs with the same seed", i)
		}
	}
}

func TestNewBallsZero(t *testing.T) {
	balls := NewBalls(rand.New(rand.NewPCG(1, 1)), 0, screen)
	if balls == nil || len(balls) != 0 {
		t.Fatalf("balls = %#v, want empty non-nil", balls)
	}
	if n := Step(0.1, balls, screen, ReflectReference); n.Total() != 0 {
		t.Fatalf("bounces on empty world: %+v", n)
	}
}

func TestBoundariesCloseTheRectangle(t *testing.T) {
	lines := NewBoundaries(512, 512)
	if len(lines) != 4 {
		t.Fatalf("len = %d, want 4", len(lines))
	}
	ends := map[mgl32.Vec2]int{}
	for _, l := range lines {
		ends[l.Start]++
		ends[l.End]++
		if l.Color.A != 255 || l.Color.R != 0 || l.Color.G != 0 || l.Color.B != 0 {
			t.Fatalf("boundary color %v, want black", l.Color)
		}
	}
	for _, c := range []mgl32.Vec2{{1, 1}, {511, 1}, {1, 511}, {511, 511}} {
		if ends[c] != 2 {
			t.Fatalf("corner %v used %d times, want 2", c, ends[c])
		}
	}
}

func TestWorldAccumulatesBounces(t *testing.T) {
	w := NewWorld(rand.New(rand.NewPCG(3, 4)), 0, 512, 512, ReflectReference)
	w.Balls = append(w.Balls, Ball{Pos: mgl32.Vec2{20, 20}, Vel: mgl32.Vec2{-300, -300}, Radius: 20})
	w.Step(0.1)
	w.Step(0.001)
	if w.Bounced.Total() != 4 {
		t.Fatalf("bounced = %+v, want 4 flips", w.Bounced)
	}
}

func TestFixedStepper(t *testing.T) {
	s := FixedStepper{Step: 0.25, MaxSteps: 3}
	var steps []float32
	record := func(dt float32) { steps = append(steps, dt) }

	if n := s.Advance(0.1, record); n != 0 {
		t.Fatalf("ran %d steps on a partial frame", n)
	}
	if n := s.Advance(0.4, record); n != 2 {
		t.Fatalf("ran %d steps, want 2", n)
	}
	if s.Pending() != 0 {
		t.Fatalf("pending = %v, want 0", s.Pending())
	}
	if n := s.Advance(10, record); n != 3 || s.Pending() != 0 {
		t.Fatalf("catch-up ran %d, pending %v", n, s.Pending())
	}
	for _, dt := range steps {
		if dt != 0.25 {
			t.Fatalf("step dt = %v", dt)
		}
	}

	var variable FixedStepper
	if n := variable.Advance(0.016, record); n != 1 || steps[len(steps)-1] != 0.016 {
		t.Fatalf("variable stepper should pass dt through")
	}
}

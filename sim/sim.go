// Package sim owns the bouncing balls and the window edges they bounce off.
package sim

import (
	"fmt"
	"image/color"
	"math/rand/v2"

	"bouncy/shapes"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	BallRadius = 20
	MinSpeed   = 250
	MaxSpeed   = 500
)

// Palette is the set of colors a new ball can get.
var Palette = []color.RGBA{
	shapes.Red, shapes.Blue, shapes.Green, shapes.Magenta, shapes.Maroon,
	shapes.Pink, shapes.Purple, shapes.Orange, shapes.Yellow, shapes.Lime,
}

// Ball is one moving circle.
type Ball struct {
	Pos    mgl32.Vec2
	Vel    mgl32.Vec2
	Radius float32
	Color  color.RGBA
}

// Shape returns the ball as a drawable circle.
func (b Ball) Shape() shapes.Circle {
	return shapes.Circle{Center: b.Pos, Radius: b.Radius, Color: b.Color}
}

// Bounds is the area balls are kept in, from (0,0) to (W,H).
type Bounds struct {
	W, H float32
}

// NewBalls creates n balls fully inside bounds. Positions are whole pixels; each
// velocity axis gets a speed in [MinSpeed, MaxSpeed) with an independent sign.
func NewBalls(rng *rand.Rand, n int, b Bounds) []Ball {
	if n <= 0 {
		return []Ball{}
	}
	balls := make([]Ball, n)
	for i := range balls {
		balls[i] = Ball{
			Pos:    mgl32.Vec2{randCoord(rng, b.W), randCoord(rng, b.H)},
			Vel:    mgl32.Vec2{randVelocity(rng), randVelocity(rng)},
			Radius: BallRadius,
			Color:  Palette[rng.IntN(len(Palette))],
		}
	}
	return balls
}

// randCoord returns an integer in [r, extent-r]. When the extent is too small to
// fit a ball, the ball sits at the center.
func randCoord(rng *rand.Rand, extent float32) float32 {
	lo := BallRadius
	hi := int(extent) - BallRadius
	if hi < lo {
		return extent / 2
	}
	return float32(lo + rng.IntN(hi-lo+1))
}

func randVelocity(rng *rand.Rand) float32 {
	v := MinSpeed + rng.Float32()*(MaxSpeed-MinSpeed)
	if rng.IntN(2) == 0 {
		v = -v
	}
	return v
}

// NewBoundaries returns the window perimeter inset by one pixel, as four black lines.
func NewBoundaries(w, h int) []shapes.Line {
	x1, y1 := float32(w-1), float32(h-1)
	return []shapes.Line{
		{Start: mgl32.Vec2{1, 1}, End: mgl32.Vec2{x1, 1}, Color: shapes.Black},
		{Start: mgl32.Vec2{1, 1}, End: mgl32.Vec2{1, y1}, Color: shapes.Black},
		{Start: mgl32.Vec2{1, y1}, End: mgl32.Vec2{x1, y1}, Color: shapes.Black},
		{Start: mgl32.Vec2{x1, 1}, End: mgl32.Vec2{x1, y1}, Color: shapes.Black},
	}
}

// Reflect selects how a ball turns around at a wall.
type Reflect uint8

const (
	// ReflectReference negates a velocity component every step the ball is at or
	// past the wall threshold, without touching the position.
	ReflectReference Reflect = iota
	// ReflectDirectional negates only while the ball still moves toward the wall.
	ReflectDirectional
	// ReflectClamp is directional and also puts the ball back on the threshold.
	ReflectClamp
)

func (r Reflect) String() string {
	switch r {
	case ReflectReference:
		return "reference"
	case ReflectDirectional:
		return "directional"
	case ReflectClamp:
		return "clamp"
	default:
		return fmt.Sprintf("reflect(%d)", uint8(r))
	}
}

// ParseReflect maps a flag value to a Reflect mode.
func ParseReflect(s string) (Reflect, error) {
	switch s {
	case "", "reference":
		return ReflectReference, nil
	case "directional":
		return ReflectDirectional, nil
	case "clamp":
		return ReflectClamp, nil
	default:
		return 0, fmt.Errorf("unknown reflect mode %q", s)
	}
}

// Bounces counts the velocity flips of one step.
type Bounces struct {
	X, Y int
}

func (b Bounces) Total() int { return b.X + b.Y }

func (b *Bounces) add(o Bounces) {
	b.X += o.X
	b.Y += o.Y
}

// Step advances every ball by vel*dt and then reflects it at the bounds. The wall
// test uses the updated position. There is no ball to ball collision.
func Step(dt float32, balls []Ball, b Bounds, mode Reflect) Bounces {
	var n Bounces
	for i := range balls {
		ball := &balls[i]
		ball.Pos = ball.Pos.Add(ball.Vel.Mul(dt))

		if reflectAxis(&ball.Pos[0], &ball.Vel[0], ball.Radius, b.W, mode) {
			n.X++
		}
		if reflectAxis(&ball.Pos[1], &ball.Vel[1], ball.Radius, b.H, mode) {
			n.Y++
		}
	}
	return n
}

func reflectAxis(p, v *float32, r, extent float32, mode Reflect) bool {
	hi := extent - r
	lo := r
	if *p < hi && *p > lo {
		return false
	}
	if mode == ReflectReference {
		*v = -*v
		return true
	}

	flipped := false
	if *p >= hi && *v > 0 || *p <= lo && *v < 0 {
		*v = -*v
		flipped = true
	}
	if mode == ReflectClamp {
		if *p > hi {
			*p = hi
		}
		if *p < lo {
			*p = lo
		}
	}
	return flipped
}

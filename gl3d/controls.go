package gl3d

import "github.com/go-gl/mathgl/mgl32"

// Action is one abstract camera input. Actions combine into a bit set.
type Action uint16

const (
	ActionForward Action = 1 << iota
	ActionBack
	ActionStrafeLeft
	ActionStrafeRight
	ActionRise
	ActionSink
	ActionYawLeft
	ActionYawRight
	ActionOrbitLeft
	ActionOrbitRight
)

// Has reports whether every action in o is set in a.
func (a Action) Has(o Action) bool { return a&o == o }

const (
	defaultMoveSpeed = 10  // units per second
	defaultTurnSpeed = 1.5 // radians per second
)

// FreeFly moves a camera like a spectator: W/S along the look direction, A/D
// sideways, rise/sink vertically, and yaw about the camera position.
type FreeFly struct {
	MoveSpeed float32
	TurnSpeed float32
}

func (f FreeFly) speeds() (move, turn float32) {
	move, turn = f.MoveSpeed, f.TurnSpeed
	if move == 0 {
		move = defaultMoveSpeed
	}
	if turn == 0 {
		turn = defaultTurnSpeed
	}
	return move, turn
}

// Apply updates cam for one frame of dt seconds.
func (f FreeFly) Apply(cam *Camera, in Action, dt float32) {
	if cam == nil || dt <= 0 {
		return
	}
	move, turn := f.speeds()
	ms := move * dt
	rs := turn * dt

	forward := cam.Forward()
	right := cam.Right()

	shift := func(d mgl32.Vec3) {
		cam.Position = cam.Position.Add(d)
		cam.Target = cam.Target.Add(d)
	}
	if in.Has(ActionForward) {
		shift(forward.Mul(ms))
	}
	if in.Has(ActionBack) {
		shift(forward.Mul(-ms))
	}
	if in.Has(ActionStrafeLeft) {
		shift(right.Mul(-ms))
	}
	if in.Has(ActionStrafeRight) {
		shift(right.Mul(ms))
	}
	if in.Has(ActionRise) {
		shift(mgl32.Vec3{0, ms, 0})
	}
	if in.Has(ActionSink) {
		shift(mgl32.Vec3{0, -ms, 0})
	}
	if in.Has(ActionYawRight) {
		cam.Target = cam.Position.Add(rotateY(cam.Target.Sub(cam.Position), -rs))
	}
	if in.Has(ActionYawLeft) {
		cam.Target = cam.Position.Add(rotateY(cam.Target.Sub(cam.Position), rs))
	}
}

// Body is a controllable object with a follow camera. It refers to the camera by
// id; the Scene owns it.
type Body struct {
	Position mgl32.Vec3
	Size     mgl32.Vec3
	// Yaw is the rotation about Y in degrees.
	Yaw    float32
	Camera CameraID
}

// Transform places the body's mesh in the world.
func (b Body) Transform() mgl32.Mat4 {
	p := b.Position
	return mgl32.Translate3D(p.X(), p.Y(), p.Z()).Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(b.Yaw)))
}

// FollowCamera is the start view for b: straight on from z=10 at the body's height.
func FollowCamera(b Body) Camera {
	c := DefaultCamera()
	c.Position = mgl32.Vec3{b.Position.X(), b.Position.Y(), 10}
	c.Target = mgl32.Vec3{b.Position.X(), b.Position.Y(), 0}
	c.FovY = 60
	return c
}

// Follow drives a Body relative to its camera and keeps the camera on the body.
type Follow struct {
	MoveSpeed float32
	TurnSpeed float32
	// YawStep is the body rotation per frame in degrees while yawing.
	YawStep float32
}

// SnapOffset is where Snap puts the camera relative to the body.
var SnapOffset = mgl32.Vec3{0, 2, 10}

// Apply moves the body and its camera for one frame of dt seconds.
func (f Follow) Apply(b *Body, cam *Camera, in Action, dt float32) {
	if b == nil || cam == nil || dt <= 0 {
		return
	}
	move, turn := FreeFly{MoveSpeed: f.MoveSpeed, TurnSpeed: f.TurnSpeed}.speeds()
	ms := move * dt
	rs := turn * dt
	yawStep := f.YawStep
	if yawStep == 0 {
		yawStep = 1.5
	}

	forward := cam.Forward()
	right := cam.Right()

	if in.Has(ActionForward) {
		b.Position = b.Position.Add(forward.Mul(ms))
	}
	if in.Has(ActionBack) {
		b.Position = b.Position.Sub(forward.Mul(ms))
	}
	if in.Has(ActionStrafeLeft) {
		b.Position = b.Position.Sub(right.Mul(ms))
	}
	if in.Has(ActionStrafeRight) {
		b.Position = b.Position.Add(right.Mul(ms))
	}

	if in.Has(ActionYawLeft) {
		b.Yaw += yawStep
	}
	if in.Has(ActionYawRight) {
		b.Yaw -= yawStep
	}

	// Raising the camera lifts the target less, so the view tilts down.
	if in.Has(ActionRise) {
		cam.Position[1] += ms
		cam.Target[1] += ms * 0.7
	}
	if in.Has(ActionSink) {
		cam.Position[1] -= ms
		cam.Target[1] -= ms * 0.7
		if cam.Position.Y() <= b.Position.Y()+2 {
			cam.Position[1] = b.Position.Y()
			cam.Target[1] = b.Position.Y()
		}
	}

	left, rightKey := in.Has(ActionOrbitLeft), in.Has(ActionOrbitRight)
	if left || rightKey {
		angle := -rs
		if left {
			angle = rs
		}
		cam.Position = b.Position.Add(rotateY(cam.Position.Sub(b.Position), angle))
	}

	cam.Target = b.Position
}

// Snap puts the camera behind and above the body, looking at it.
func (Follow) Snap(b *Body, cam *Camera) {
	if b == nil || cam == nil {
		return
	}
	cam.Position = b.Position.Add(SnapOffset)
	cam.Target = b.Position
}

// Orbit places a camera on a sphere around Target from yaw, pitch and radius.
type Orbit struct {
	Target mgl32.Vec3
	Yaw    float32
	Pitch  float32
	Radius float32

	MinRadius float32
	MaxRadius float32
}

func (c *Orbit) Apply(cam *Camera) {
	if cam == nil {
		return
	}
	r := c.Radius
	if r == 0 {
		r = 3
	}
	if c.MinRadius != 0 && r < c.MinRadius {
		r = c.MinRadius
	}
	if c.MaxRadius != 0 && r > c.MaxRadius {
		r = c.MaxRadius
	}

	m := mgl32.HomogRotate3DY(c.Yaw).Mul4(mgl32.HomogRotate3DX(c.Pitch))
	p := m.Mul4x1(mgl32.Vec4{0, 0, r, 1})

	cam.Position = c.Target.Add(p.Vec3())
	cam.Target = c.Target
	if cam.Up == (mgl32.Vec3{}) {
		cam.Up = mgl32.Vec3{0, 1, 0}
	}
}

func (c *Orbit) Rotate(deltaYaw, deltaPitch float32) {
	c.Yaw += deltaYaw
	c.Pitch = clampF32(c.Pitch+deltaPitch, -1.5, 1.5)
}

func (c *Orbit) Zoom(delta float32) {
	c.Radius += delta
	if c.MinRadius != 0 && c.Radius < c.MinRadius {
		c.Radius = c.MinRadius
	}
	if c.MaxRadius != 0 && c.Radius > c.MaxRadius {
		c.Radius = c.MaxRadius
	}
}

// Update maps actions onto the orbit: orbit/yaw keys turn, rise/sink tilt and
// forward/back zoom. It then applies the result to cam.
func (c *Orbit) Update(cam *Camera, in Action, dt float32) {
	turn := defaultTurnSpeed * dt
	if in.Has(ActionOrbitLeft) || in.Has(ActionYawLeft) {
		c.Rotate(-turn, 0)
	}
	if in.Has(ActionOrbitRight) || in.Has(ActionYawRight) {
		c.Rotate(turn, 0)
	}
	if in.Has(ActionRise) {
		c.Rotate(0, -turn)
	}
	if in.Has(ActionSink) {
		c.Rotate(0, turn)
	}
	if in.Has(ActionForward) {
		c.Zoom(-defaultMoveSpeed * dt)
	}
	if in.Has(ActionBack) {
		c.Zoom(defaultMoveSpeed * dt)
	}
	c.Apply(cam)
}

package app

import (
	"errors"
	"fmt"

	"bouncy/canvas"
	"bouncy/gl3d"
	"bouncy/hal"
	"bouncy/shapes"

	"github.com/go-gl/mathgl/mgl32"
)

type cameraMode uint8

const (
	camFree cameraMode = iota
	camFollow
	camOrbit
	camModeCount
)

func (m cameraMode) String() string {
	switch m {
	case camFree:
		return "free camera"
	case camFollow:
		return "follow camera"
	case camOrbit:
		return "orbit camera"
	default:
		return "camera"
	}
}

// worldScene is the 3D playground: a controllable cube with a wire outline, a
// sphere, a cylinder and a spinning textured cube.
type worldScene struct {
	scene  *gl3d.Scene
	r      *gl3d.Renderer
	target *gl3d.RGB565Target

	body     gl3d.Body
	bodyMesh int
	bodyWire int
	texCube  int
	texAt    mgl32.Vec3

	free   gl3d.FreeFly
	follow gl3d.Follow
	orbit  gl3d.Orbit

	cams [camModeCount]gl3d.CameraID
	mode cameraMode
}

func newWorldScene(fb hal.Framebuffer, workers int) (*worldScene, error) {
	target := gl3d.NewRGB565Target(fb)
	if target == nil {
		return nil, hal.ErrNoFramebuffer
	}
	w := &worldScene{
		scene:  gl3d.CreateScene(8),
		r:      gl3d.NewRenderer(target.W, target.H, true),
		target: target,
		body:   gl3d.Body{Position: mgl32.Vec3{0, 1, 0}, Size: mgl32.Vec3{2, 2, 2}},
		texAt:  mgl32.Vec3{4, 1, -2},
		orbit:  gl3d.Orbit{Radius: 14, Pitch: -0.4, MinRadius: 4, MaxRadius: 40},
	}
	w.r.ClearColor = shapes.RayWhite
	w.r.SetRenderMode(gl3d.RenderTextured)
	w.r.SetWorkers(workers)

	s := w.scene
	floor := gl3d.CubeMesh(mgl32.Vec3{20, 0.1, 20}, shapes.LightGray)
	floor.Transform = mgl32.Translate3D(0, -0.05, 0)
	sphere := gl3d.SphereMesh(1, 12, 16, shapes.SkyBlue)
	sphere.Transform = mgl32.Translate3D(-4, 1, 0)
	sphere.Material.Wireframe = true
	cyl := gl3d.CylinderMesh(0.6, 1, 2.5, 16, shapes.Gold)
	cyl.Transform = mgl32.Translate3D(-2, 0, -5)
	tex := gl3d.TexturedCubeMesh(gl3d.CheckerTexture(32, 4, shapes.White, shapes.DarkBlue))

	body := gl3d.CubeMesh(w.body.Size, shapes.Red)
	wire := gl3d.CubeMesh(w.body.Size.Mul(1.02), shapes.Maroon)
	wire.Material.Wireframe = true

	ids := []int{
		s.AddMesh(floor),
		s.AddMesh(sphere),
		s.AddMesh(cyl),
	}
	w.texCube = s.AddMesh(tex)
	w.bodyMesh = s.AddMesh(body)
	w.bodyWire = s.AddMesh(wire)
	for _, id := range append(ids, w.texCube, w.bodyMesh, w.bodyWire) {
		if id < 0 {
			return nil, errors.New("world scene: mesh capacity exceeded")
		}
	}

	// Camera 0 is the scene's default free-fly camera.
	w.cams[camFree] = s.ActiveCamera()
	w.body.Camera = s.AddCamera(gl3d.FollowCamera(w.body))
	w.cams[camFollow] = w.body.Camera
	w.cams[camOrbit] = s.AddCamera(gl3d.DefaultCamera())
	w.orbit.Target = w.body.Position
	w.orbit.Apply(s.Camera(w.cams[camOrbit]))

	w.placeBody()
	w.spin(0)
	return w, nil
}

func (w *worldScene) placeBody() {
	t := w.body.Transform()
	w.scene.UpdateMeshTransform(w.bodyMesh, t)
	w.scene.UpdateMeshTransform(w.bodyWire, t)
}

// spin turns the textured cube 45 degrees per second of global time.
func (w *worldScene) spin(now float64) {
	rot := gl3d.RotateModel(mgl32.Ident4(), float32(now)*45, mgl32.Vec3{0, 1, 0})
	rot = gl3d.RotateModel(rot, 20, mgl32.Vec3{1, 0, 0})
	at := mgl32.Translate3D(w.texAt.X(), w.texAt.Y(), w.texAt.Z())
	w.scene.UpdateMeshTransform(w.texCube, at.Mul4(rot))
}

// nextCamera switches to the next camera and its controller.
func (w *worldScene) nextCamera() cameraMode {
	w.mode = (w.mode + 1) % camModeCount
	_ = w.scene.SetActiveCamera(w.cams[w.mode])
	if w.mode == camOrbit {
		w.orbit.Target = w.body.Position
	}
	return w.mode
}

func (w *worldScene) update(in gl3d.Action, dt float32, now float64) {
	cam := w.scene.Camera(w.cams[w.mode])
	switch w.mode {
	case camFree:
		w.free.Apply(cam, in, dt)
	case camFollow:
		w.follow.Apply(&w.body, cam, in, dt)
		w.placeBody()
	case camOrbit:
		w.orbit.Update(cam, in, dt)
	}
	w.spin(now)
}

func (w *worldScene) render(c *canvas.Canvas, fps int) error {
	if err := w.r.Render(w.target, w.scene); err != nil {
		return fmt.Errorf("render world: %w", err)
	}
	drawFPS(c, fps)
	hudLine(c, fmt.Sprintf("%s  (Tab: switch, Esc: quit)", w.mode), 2, 26)
	p := w.body.Position
	hudLine(c, fmt.Sprintf("cube %.1f %.1f %.1f  yaw %.0f", p.X(), p.Y(), p.Z(), w.body.Yaw), 2, 40)
	return nil
}

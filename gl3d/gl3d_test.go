package gl3d

import (
	"image/color"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	red   = color.RGBA{255, 0, 0, 255}
	black = color.RGBA{0, 0, 0, 255}
)

func approx(a, b mgl32.Vec3) bool { return a.ApproxEqualThreshold(b, 1e-4) }

func TestLookAtNotIdentity(t *testing.T) {
	m := DefaultCamera().View()
	if m == mgl32.Ident4() {
		t.Fatalf("lookAt unexpectedly identity")
	}
}

func TestCameraBasis(t *testing.T) {
	c := Camera{Position: mgl32.Vec3{0, 0, 10}, Target: mgl32.Vec3{0, 0, 0}}
	if !approx(c.Forward(), mgl32.Vec3{0, 0, -1}) {
		t.Fatalf("forward = %v", c.Forward())
	}
	if !approx(c.Right(), mgl32.Vec3{1, 0, 0}) {
		t.Fatalf("right = %v", c.Right())
	}
	same := Camera{Position: mgl32.Vec3{1, 1, 1}, Target: mgl32.Vec3{1, 1, 1}}
	if same.Forward() != (mgl32.Vec3{}) {
		t.Fatalf("degenerate forward = %v", same.Forward())
	}
}

func TestSceneCameras(t *testing.T) {
	s := CreateScene(4)
	if s.Cameras() != 1 || s.ActiveCamera() != 0 {
		t.Fatalf("new scene cameras=%d active=%d", s.Cameras(), s.ActiveCamera())
	}
	id := s.AddCamera(Camera{FovY: 60})
	if err := s.SetActiveCamera(id); err != nil {
		t.Fatalf("SetActiveCamera: %v", err)
	}
	if s.Camera(s.ActiveCamera()).FovY != 60 {
		t.Fatalf("active camera not the added one")
	}
	if err := s.SetActiveCamera(9); err != ErrNoCamera {
		t.Fatalf("err = %v, want ErrNoCamera", err)
	}
	if s.NextCamera() != 0 {
		t.Fatalf("NextCamera did not wrap")
	}
}

func TestSceneMeshSlots(t *testing.T) {
	s := CreateScene(1)
	id := s.AddMesh(CubeMesh(mgl32.Vec3{1, 1, 1}, red))
	if id != 0 || s.AddMesh(Mesh{}) != -1 {
		t.Fatalf("capacity not enforced")
	}
	if tr, ok := s.MeshTransform(id); !ok || tr != mgl32.Ident4() {
		t.Fatalf("default transform = %v", tr)
	}
	s.RemoveMesh(id)
	if s.MeshCount() != 0 {
		t.Fatalf("mesh not removed")
	}
}

func TestMeshBuilders(t *testing.T) {
	cube := CubeMesh(mgl32.Vec3{2, 2, 2}, red)
	if len(cube.Vertices) != 24 || len(cube.Indices) != 36 {
		t.Fatalf("cube %d verts %d indices", len(cube.Vertices), len(cube.Indices))
	}
	tc := TexturedCubeMesh(CheckerTexture(8, 2, red, black))
	if len(tc.Vertices) != 24 || len(tc.Indices)/3 != 12 || tc.Material.Texture == nil {
		t.Fatalf("textured cube %d verts %d tris", len(tc.Vertices), len(tc.Indices)/3)
	}
	sphere := SphereMesh(1, 8, 8, red)
	for _, v := range sphere.Vertices {
		if math.Abs(float64(v.Pos.Len()-1)) > 1e-4 {
			t.Fatalf("sphere vertex off radius: %v", v.Pos)
		}
	}
	cyl := CylinderMesh(0, 1, 2, 6, red)
	if len(cyl.Indices)/3 != 6*2+6 {
		t.Fatalf("cone triangles = %d", len(cyl.Indices)/3)
	}
	for _, m := range []Mesh{cube, tc, sphere, cyl} {
		for _, i := range m.Indices {
			if int(i) >= len(m.Vertices) {
				t.Fatalf("index %d out of range", i)
			}
		}
	}
}

func TestRotateModel(t *testing.T) {
	m := RotateModel(mgl32.Ident4(), 90, mgl32.Vec3{0, 1, 0})
	got := mgl32.TransformCoordinate(mgl32.Vec3{1, 0, 0}, m)
	if !approx(got, mgl32.Vec3{0, 0, -1}) {
		t.Fatalf("rotated = %v, want (0,0,-1)", got)
	}
	if RotateModel(mgl32.Ident4(), 30, mgl32.Vec3{}) != mgl32.Ident4() {
		t.Fatalf("zero axis should leave the transform alone")
	}
}

func renderCube(t *testing.T, workers int, mode RenderMode) *ImageTarget {
	t.Helper()
	s := CreateScene(2)
	s.Light.Mode = LightOff
	cube := CubeMesh(mgl32.Vec3{2, 2, 2}, red)
	if mode == RenderTextured {
		cube.Material.Texture = CheckerTexture(4, 2, red, color.RGBA{0, 0, 255, 255})
	}
	s.AddMesh(cube)

	r := NewRenderer(64, 64, true)
	r.SetRenderMode(mode)
	r.SetWorkers(workers)
	img := NewImageTarget(64, 64)
	if err := r.Render(img, s); err != nil {
		t.Fatalf("Render: %v", err)
	}
	return img
}

func TestRenderDrawsCenteredCube(t *testing.T) {
	img := renderCube(t, 1, RenderSolidFlat)
	if got := img.Img.RGBAAt(32, 32); got != red {
		t.Fatalf("center pixel = %v, want red", got)
	}
	if got := img.Img.RGBAAt(0, 0); got != black {
		t.Fatalf("corner pixel = %v, want clear color", got)
	}
}

func TestRenderWorkersMatchSingleThread(t *testing.T) {
	for _, mode := range []RenderMode{RenderSolidFlat, RenderWireframe, RenderTextured} {
		one := renderCube(t, 1, mode)
		many := renderCube(t, 4, mode)
		for i := range one.Img.Pix {
			if one.Img.Pix[i] != many.Img.Pix[i] {
				t.Fatalf("mode %d: banded render differs at byte %d", mode, i)
			}
		}
	}
}

func TestRenderSkipsGeometryBehindCamera(t *testing.T) {
	s := CreateScene(1)
	s.Light.Mode = LightOff
	cube := CubeMesh(mgl32.Vec3{2, 2, 2}, red)
	cube.Transform = mgl32.Translate3D(0, 0, 20)
	s.AddMesh(cube)

	img := NewImageTarget(32, 32)
	if err := NewRenderer(32, 32, true).Render(img, s); err != nil {
		t.Fatalf("Render: %v", err)
	}
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			if img.Img.RGBAAt(x, y) != black {
				t.Fatalf("pixel %d,%d drawn for geometry behind the eye", x, y)
			}
		}
	}
}

func TestRGB565Target(t *testing.T) {
	tg := &RGB565Target{Buf: make([]byte, 8), Stride: 4, W: 2, H: 2}
	tg.Clear(black)
	tg.SetPixel(1, 1, color.RGBA{255, 255, 255, 255})
	tg.SetPixel(5, 5, red)
	if tg.Buf[6] != 0xFF || tg.Buf[7] != 0xFF || tg.Buf[0] != 0 {
		t.Fatalf("buf = %v", tg.Buf)
	}
	if NewRGB565Target(nil) != nil {
		t.Fatalf("nil framebuffer should give nil target")
	}
}

func TestFreeFlyMovesAndYaws(t *testing.T) {
	cam := DefaultCamera()
	cam.Position = mgl32.Vec3{0, 0, 10}
	f := FreeFly{}

	f.Apply(&cam, ActionForward, 0.1)
	if !approx(cam.Position, mgl32.Vec3{0, 0, 9}) || !approx(cam.Target, mgl32.Vec3{0, 0, -1}) {
		t.Fatalf("forward: pos=%v target=%v", cam.Position, cam.Target)
	}

	f.Apply(&cam, ActionStrafeRight|ActionRise, 0.1)
	if !approx(cam.Position, mgl32.Vec3{1, 1, 9}) {
		t.Fatalf("strafe+rise: pos=%v", cam.Position)
	}

	before := cam.Target.Sub(cam.Position)
	f.Apply(&cam, ActionYawLeft, 1)
	after := cam.Target.Sub(cam.Position)
	if math.Abs(float64(before.Len()-after.Len())) > 1e-4 {
		t.Fatalf("yaw changed look distance")
	}
	// Yawing left from -Z turns the view toward -X.
	if after.X() >= 0 {
		t.Fatalf("yaw left went to %v", after)
	}
}

func TestFollowKeepsTargetOnBody(t *testing.T) {
	body := Body{Position: mgl32.Vec3{0, 0, 0}}
	cam := FollowCamera(body)
	if cam.FovY != 60 || !approx(cam.Position, mgl32.Vec3{0, 0, 10}) {
		t.Fatalf("follow camera = %+v", cam)
	}
	var f Follow

	f.Apply(&body, &cam, ActionForward, 0.1)
	if !approx(body.Position, mgl32.Vec3{0, 0, -1}) || cam.Target != body.Position {
		t.Fatalf("body=%v target=%v", body.Position, cam.Target)
	}

	f.Apply(&body, &cam, ActionYawLeft, 0.1)
	f.Apply(&body, &cam, ActionYawLeft, 0.1)
	if body.Yaw != 3 {
		t.Fatalf("yaw = %v, want 3", body.Yaw)
	}

	f.Apply(&body, &cam, ActionRise, 0.5)
	if !approx(cam.Position, mgl32.Vec3{0, 5, 10}) {
		t.Fatalf("rise pos = %v", cam.Position)
	}
	f.Apply(&body, &cam, ActionSink, 0.4)
	if cam.Position.Y() != body.Position.Y() {
		t.Fatalf("sink below body+2 should reset height, got %v", cam.Position)
	}

	dist := cam.Position.Sub(body.Position).Len()
	f.Apply(&body, &cam, ActionOrbitLeft, 0.5)
	if math.Abs(float64(cam.Position.Sub(body.Position).Len()-dist)) > 1e-3 {
		t.Fatalf("orbit changed distance")
	}
	if cam.Target != body.Position {
		t.Fatalf("target left the body")
	}

	f.Snap(&body, &cam)
	if !approx(cam.Position, body.Position.Add(SnapOffset)) {
		t.Fatalf("snap pos = %v", cam.Position)
	}
}

func TestOrbitStaysOnSphere(t *testing.T) {
	o := Orbit{Radius: 5, MinRadius: 2, MaxRadius: 8}
	var cam Camera
	o.Update(&cam, ActionOrbitLeft|ActionRise, 0.5)
	if math.Abs(float64(cam.Position.Len()-5)) > 1e-4 {
		t.Fatalf("radius = %v", cam.Position.Len())
	}
	o.Zoom(100)
	if o.Radius != 8 {
		t.Fatalf("zoom not clamped: %v", o.Radius)
	}
	if cam.Up != (mgl32.Vec3{0, 1, 0}) {
		t.Fatalf("up not defaulted")
	}
}

func TestBodyTransform(t *testing.T) {
	b := Body{Position: mgl32.Vec3{1, 2, 3}, Yaw: 90}
	got := mgl32.TransformCoordinate(mgl32.Vec3{1, 0, 0}, b.Transform())
	if !approx(got, mgl32.Vec3{1, 2, 2}) {
		t.Fatalf("transformed = %v", got)
	}
}

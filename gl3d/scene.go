package gl3d

import (
	"errors"
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// Material is a minimal surface description.
type Material struct {
	BaseColor color.RGBA
	// Texture is sampled by RenderTextured using the vertex UVs.
	Texture image.Image
	// Wireframe draws this mesh as edges whatever the renderer mode.
	Wireframe bool
}

// LightMode defines minimal lighting options.
type LightMode uint8

const (
	LightOff LightMode = iota
	LightAmbientDirectional
)

// Light is a minimal light setup.
type Light struct {
	Mode      LightMode
	Ambient   float32 // 0..1
	Dir       mgl32.Vec3
	DirAmount float32 // 0..1
}

// CameraType selects camera projection.
type CameraType uint8

const (
	CameraPerspective CameraType = iota
	CameraOrtho
)

// Camera describes the viewing transform.
type Camera struct {
	Type CameraType

	Position mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3

	// Perspective vertical field of view, in degrees.
	FovY float32

	// Orthographic (half-height).
	OrthoSize float32

	Near float32
	Far  float32
}

// DefaultCamera is the free-fly start: 2 units up, 10 back, looking at the origin.
func DefaultCamera() Camera {
	return Camera{
		Type:      CameraPerspective,
		Position:  mgl32.Vec3{0, 2, 10},
		Target:    mgl32.Vec3{0, 0, 0},
		Up:        mgl32.Vec3{0, 1, 0},
		FovY:      45,
		OrthoSize: 1,
		Near:      0.05,
		Far:       100,
	}
}

func (c Camera) up() mgl32.Vec3 {
	if c.Up == (mgl32.Vec3{}) {
		return mgl32.Vec3{0, 1, 0}
	}
	return c.Up
}

// View returns the camera view matrix.
func (c Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target, c.up())
}

// Projection returns the projection matrix for a target aspect.
func (c Camera) Projection(aspect float32) mgl32.Mat4 {
	near, far := c.Near, c.Far
	if near <= 0 {
		near = 0.05
	}
	if far <= near {
		far = near + 100
	}
	switch c.Type {
	case CameraOrtho:
		size := c.OrthoSize
		if size == 0 {
			size = 1
		}
		return mgl32.Ortho(-size*aspect, size*aspect, -size, size, near, far)
	default:
		fov := c.FovY
		if fov <= 0 {
			fov = 45
		}
		return mgl32.Perspective(mgl32.DegToRad(fov), aspect, near, far)
	}
}

// Forward is the unit look direction, or zero when position and target coincide.
func (c Camera) Forward() mgl32.Vec3 { return normalize(c.Target.Sub(c.Position)) }

// Right is the unit vector Forward x Up.
func (c Camera) Right() mgl32.Vec3 { return normalize(c.Forward().Cross(c.up())) }

// Vertex is a mesh vertex.
type Vertex struct {
	Pos    mgl32.Vec3
	Normal mgl32.Vec3
	Color  color.RGBA
	UV     mgl32.Vec2
}

// Mesh is a triangle mesh with an object transform.
type Mesh struct {
	Enabled bool

	Vertices []Vertex
	Indices  []uint16 // triangle list

	Transform mgl32.Mat4
	Material  Material
}

// CameraID addresses a camera owned by a Scene.
type CameraID int

var ErrNoCamera = errors.New("gl3d: no such camera")

// Scene is a collection of meshes and cameras to render. One camera is active.
type Scene struct {
	Light Light

	meshes []Mesh
	alive  []bool

	cameras []Camera
	active  CameraID
}

// CreateScene allocates a scene with a fixed mesh capacity. It starts with one
// camera, DefaultCamera, which is active.
func CreateScene(maxMeshes int) *Scene {
	if maxMeshes < 0 {
		maxMeshes = 0
	}
	return &Scene{
		Light: Light{
			Mode:      LightAmbientDirectional,
			Ambient:   0.3,
			Dir:       mgl32.Vec3{-1, -2, -1}.Normalize(),
			DirAmount: 0.7,
		},
		meshes:  make([]Mesh, maxMeshes),
		alive:   make([]bool, maxMeshes),
		cameras: []Camera{DefaultCamera()},
	}
}

// AddMesh adds a mesh to the scene and returns its id or -1 if full.
func (s *Scene) AddMesh(m Mesh) int {
	if s == nil {
		return -1
	}
	for i := range s.meshes {
		if s.alive[i] {
			continue
		}
		if m.Transform == (mgl32.Mat4{}) {
			m.Transform = mgl32.Ident4()
		}
		if m.Material.BaseColor == (color.RGBA{}) {
			m.Material.BaseColor = color.RGBA{0xCC, 0xCC, 0xCC, 0xFF}
		}
		m.Enabled = true
		s.meshes[i] = m
		s.alive[i] = true
		return i
	}
	return -1
}

// RemoveMesh removes a mesh by id.
func (s *Scene) RemoveMesh(id int) {
	if s == nil || id < 0 || id >= len(s.meshes) {
		return
	}
	s.alive[id] = false
	s.meshes[id] = Mesh{}
}

// SetMeshEnabled enables/disables a mesh by id.
func (s *Scene) SetMeshEnabled(id int, enabled bool) {
	if s == nil || id < 0 || id >= len(s.meshes) || !s.alive[id] {
		return
	}
	s.meshes[id].Enabled = enabled
}

// UpdateMeshTransform updates a mesh transform by id.
func (s *Scene) UpdateMeshTransform(id int, m mgl32.Mat4) {
	if s == nil || id < 0 || id >= len(s.meshes) || !s.alive[id] {
		return
	}
	s.meshes[id].Transform = m
}

// MeshTransform returns the transform of a live mesh.
func (s *Scene) MeshTransform(id int) (mgl32.Mat4, bool) {
	if s == nil || id < 0 || id >= len(s.meshes) || !s.alive[id] {
		return mgl32.Mat4{}, false
	}
	return s.meshes[id].Transform, true
}

// MeshCount returns the number of live meshes.
func (s *Scene) MeshCount() int {
	n := 0
	for _, ok := range s.alive {
		if ok {
			n++
		}
	}
	return n
}

func (s *Scene) eachMesh(fn func(m *Mesh)) {
	for i := range s.meshes {
		if !s.alive[i] {
			continue
		}
		fn(&s.meshes[i])
	}
}

// AddCamera stores c and returns its id.
func (s *Scene) AddCamera(c Camera) CameraID {
	s.cameras = append(s.cameras, c)
	return CameraID(len(s.cameras) - 1)
}

// Camera returns the camera with the given id for in-place updates, or nil.
func (s *Scene) Camera(id CameraID) *Camera {
	if s == nil || id < 0 || int(id) >= len(s.cameras) {
		return nil
	}
	return &s.cameras[id]
}

// Cameras returns the number of cameras.
func (s *Scene) Cameras() int { return len(s.cameras) }

// SetActiveCamera selects the camera used by Render.
func (s *Scene) SetActiveCamera(id CameraID) error {
	if s.Camera(id) == nil {
		return ErrNoCamera
	}
	s.active = id
	return nil
}

func (s *Scene) ActiveCamera() CameraID { return s.active }

// NextCamera activates the camera after the active one, wrapping around.
func (s *Scene) NextCamera() CameraID {
	if len(s.cameras) == 0 {
		return s.active
	}
	s.active = CameraID((int(s.active) + 1) % len(s.cameras))
	return s.active
}

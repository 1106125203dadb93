package gl3d

import (
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/sync/errgroup"
)

// Renderer is a fixed-pipeline software renderer.
//
// Create it once and reuse it to avoid allocations.
type Renderer struct {
	Mode       RenderMode
	Depth      bool
	ClearColor color.RGBA

	depthBuf []float32
	workers  int
	tris     []screenTri
}

// NewRenderer creates a renderer for a given maximum target size.
//
// If enableDepth is true, a depth buffer of size w*h is allocated.
func NewRenderer(w, h int, enableDepth bool) *Renderer {
	r := &Renderer{
		Mode:       RenderSolidFlat,
		Depth:      enableDepth,
		ClearColor: color.RGBA{0, 0, 0, 0xFF},
		workers:    1,
	}
	if enableDepth && w > 0 && h > 0 {
		r.depthBuf = make([]float32, w*h)
	}
	return r
}

func (r *Renderer) SetRenderMode(m RenderMode) { r.Mode = m }

// SetWorkers sets how many horizontal bands are rasterized in parallel. Values
// below 1 mean 1.
func (r *Renderer) SetWorkers(n int) {
	if n < 1 {
		n = 1
	}
	r.workers = n
}

func (r *Renderer) Workers() int { return r.workers }

func (r *Renderer) EnableDepth(on bool, w, h int) {
	r.Depth = on
	if !on {
		r.depthBuf = nil
		return
	}
	if w <= 0 || h <= 0 {
		r.depthBuf = nil
		return
	}
	if cap(r.depthBuf) < w*h {
		r.depthBuf = make([]float32, w*h)
	} else {
		r.depthBuf = r.depthBuf[:w*h]
	}
}

func (r *Renderer) clearDepth() {
	for i := range r.depthBuf {
		r.depthBuf[i] = 1e9
	}
}

// screenVert is a projected vertex. Attributes that need perspective-correct
// interpolation are stored divided by clip w.
type screenVert struct {
	x, y int
	z    float32
	invW float32
	uw   float32
	vw   float32
	c    color.RGBA
}

type screenTri struct {
	v    [3]screenVert
	base color.RGBA
	// shade is the light intensity applied to textured pixels.
	shade float32
	mode  RenderMode
	tex   image.Image
}

// Render renders the scene from its active camera into the target.
func (r *Renderer) Render(t Target, s *Scene) error {
	if r == nil || t == nil || s == nil {
		return nil
	}
	w, h := t.Size()
	if w <= 0 || h <= 0 {
		return nil
	}
	cam := s.Camera(s.ActiveCamera())
	if cam == nil {
		return ErrNoCamera
	}
	t.Clear(r.ClearColor)

	if r.Depth {
		r.EnableDepth(true, w, h)
		r.clearDepth()
	}

	aspect := float32(w) / float32(h)
	vp := cam.Projection(aspect).Mul4(cam.View())

	r.tris = r.tris[:0]
	s.eachMesh(func(m *Mesh) {
		if m == nil || !m.Enabled {
			return
		}
		r.projectMesh(w, h, vp, m, s.Light)
	})

	bands := r.workers
	if bands > h {
		bands = h
	}
	if bands <= 1 {
		r.rasterBand(t, w, 0, h)
		return nil
	}

	var g errgroup.Group
	for i := 0; i < bands; i++ {
		y0 := h * i / bands
		y1 := h * (i + 1) / bands
		g.Go(func() error {
			r.rasterBand(t, w, y0, y1)
			return nil
		})
	}
	return g.Wait()
}

func (r *Renderer) projectMesh(w, h int, vp mgl32.Mat4, m *Mesh, light Light) {
	if len(m.Vertices) == 0 || len(m.Indices) < 3 {
		return
	}
	model := m.Transform
	if model == (mgl32.Mat4{}) {
		model = mgl32.Ident4()
	}
	mvp := vp.Mul4(model)

	mode := r.Mode
	if m.Material.Wireframe {
		mode = RenderWireframe
	}
	tex := m.Material.Texture
	if mode == RenderTextured && tex == nil {
		mode = RenderSolidFlat
	}

	for i := 0; i+2 < len(m.Indices); i += 3 {
		var idx [3]int
		ok := true
		for k := range idx {
			idx[k] = int(m.Indices[i+k])
			if idx[k] >= len(m.Vertices) {
				ok = false
			}
		}
		if !ok {
			continue
		}

		var tri screenTri
		var world [3]mgl32.Vec3
		for k, vi := range idx {
			v := m.Vertices[vi]
			p := mvp.Mul4x1(v.Pos.Vec4(1))
			// Drop triangles that reach behind the eye.
			if p.W() <= 1e-5 {
				ok = false
				break
			}
			invW := 1 / p.W()
			ndc := mgl32.Vec3{p.X() * invW, p.Y() * invW, p.Z() * invW}
			x, y := ndcToScreen(ndc, w, h)
			tri.v[k] = screenVert{
				x: x, y: y, z: ndc.Z(), invW: invW,
				uw: v.UV.X() * invW, vw: v.UV.Y() * invW,
				c: v.Color,
			}
			world[k] = mgl32.TransformCoordinate(v.Pos, model)
		}
		if !ok {
			continue
		}
		if tri.v[0].z > 1 && tri.v[1].z > 1 && tri.v[2].z > 1 {
			continue
		}

		tri.mode = mode
		tri.tex = tex
		tri.shade = 1
		tri.base = m.Material.BaseColor
		if light.Mode == LightAmbientDirectional && mode != RenderWireframe {
			n := normalize(world[1].Sub(world[0]).Cross(world[2].Sub(world[0])))
			tri.shade = lightIntensity(light, n)
			tri.base = scaleColor(tri.base, tri.shade)
		}
		r.tris = append(r.tris, tri)
	}
}

func ndcToScreen(p mgl32.Vec3, w, h int) (x, y int) {
	sx := (p.X()*0.5 + 0.5) * float32(w-1)
	sy := (1 - (p.Y()*0.5 + 0.5)) * float32(h-1)
	return int(sx + 0.5), int(sy + 0.5)
}

// lightIntensity is two-sided so meshes with mixed winding still light evenly.
func lightIntensity(l Light, n mgl32.Vec3) float32 {
	amb := clamp01(l.Ambient)
	dir := clamp01(l.DirAmount)
	ld := normalize(l.Dir)
	if ld == (mgl32.Vec3{}) {
		return amb
	}
	d := n.Dot(ld.Mul(-1))
	if d < 0 {
		d = -d
	}
	return clamp01(amb + d*dir)
}

func scaleColor(c color.RGBA, s float32) color.RGBA {
	s = clamp01(s)
	return color.RGBA{
		R: uint8(float32(c.R) * s),
		G: uint8(float32(c.G) * s),
		B: uint8(float32(c.B) * s),
		A: c.A,
	}
}

// rasterBand draws every projected triangle clipped to rows [y0, y1).
func (r *Renderer) rasterBand(t Target, w, y0, y1 int) {
	for i := range r.tris {
		tri := &r.tris[i]
		if tri.mode == RenderWireframe {
			a, b, c := tri.v[0], tri.v[1], tri.v[2]
			drawLine(t, y0, y1, a.x, a.y, b.x, b.y, tri.base)
			drawLine(t, y0, y1, b.x, b.y, c.x, c.y, tri.base)
			drawLine(t, y0, y1, c.x, c.y, a.x, a.y, tri.base)
			continue
		}
		r.fillTriangle(t, w, y0, y1, tri)
	}
}

func (r *Renderer) depthTest(w int, x, y int, z float32) bool {
	if !r.Depth || r.depthBuf == nil {
		return true
	}
	if x < 0 || y < 0 || x >= w {
		return false
	}
	idx := y*w + x
	if idx < 0 || idx >= len(r.depthBuf) {
		return false
	}
	// NDC z is in [-1,1]. Map to [0,1].
	d := clamp01(z*0.5 + 0.5)
	if d >= r.depthBuf[idx] {
		return false
	}
	r.depthBuf[idx] = d
	return true
}

func drawLine(t Target, y0, y1, ax, ay, bx, by int, c color.RGBA) {
	if (ay < y0 && by < y0) || (ay >= y1 && by >= y1) {
		return
	}
	dx := absInt(bx - ax)
	sx := -1
	if ax < bx {
		sx = 1
	}
	dy := -absInt(by - ay)
	sy := -1
	if ay < by {
		sy = 1
	}
	err := dx + dy
	for {
		if ay >= y0 && ay < y1 {
			t.SetPixel(ax, ay, c)
		}
		if ax == bx && ay == by {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			ax += sx
		}
		if e2 <= dx {
			err += dx
			ay += sy
		}
	}
}

func (r *Renderer) fillTriangle(t Target, w, y0, y1 int, tri *screenTri) {
	v0, v1, v2 := tri.v[0], tri.v[1], tri.v[2]
	minX, maxX := min(v0.x, v1.x, v2.x), max(v0.x, v1.x, v2.x)
	minY, maxY := min(v0.y, v1.y, v2.y), max(v0.y, v1.y, v2.y)
	minX = max(minX, 0)
	maxX = min(maxX, w-1)
	minY = max(minY, y0)
	maxY = min(maxY, y1-1)
	if minX > maxX || minY > maxY {
		return
	}

	area := edgeFn(v0.x, v0.y, v1.x, v1.y, v2.x, v2.y)
	if area == 0 {
		return
	}
	// Accept either winding by flipping the sign of the weights.
	sign := 1
	if area < 0 {
		sign = -1
	}
	invArea := 1.0 / float32(area)

	var texW, texH int
	var texRGBA *image.RGBA
	if tri.mode == RenderTextured {
		b := tri.tex.Bounds()
		texW, texH = b.Dx(), b.Dy()
		texRGBA, _ = tri.tex.(*image.RGBA)
		if texW <= 0 || texH <= 0 {
			return
		}
	}

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			w0 := edgeFn(v1.x, v1.y, v2.x, v2.y, x, y)
			w1 := edgeFn(v2.x, v2.y, v0.x, v0.y, x, y)
			w2 := edgeFn(v0.x, v0.y, v1.x, v1.y, x, y)
			if w0*sign < 0 || w1*sign < 0 || w2*sign < 0 {
				continue
			}
			a0 := float32(w0) * invArea
			a1 := float32(w1) * invArea
			a2 := float32(w2) * invArea
			z := a0*v0.z + a1*v1.z + a2*v2.z
			if !r.depthTest(w, x, y, z) {
				continue
			}

			switch tri.mode {
			case RenderSolidVertexColor:
				c0, c1, c2 := v0.c, v1.c, v2.c
				t.SetPixel(x, y, color.RGBA{
					R: uint8(clampF32(a0*float32(c0.R)+a1*float32(c1.R)+a2*float32(c2.R), 0, 255)),
					G: uint8(clampF32(a0*float32(c0.G)+a1*float32(c1.G)+a2*float32(c2.G), 0, 255)),
					B: uint8(clampF32(a0*float32(c0.B)+a1*float32(c1.B)+a2*float32(c2.B), 0, 255)),
					A: 0xFF,
				})
			case RenderTextured:
				iw := a0*v0.invW + a1*v1.invW + a2*v2.invW
				if iw == 0 {
					continue
				}
				u := (a0*v0.uw + a1*v1.uw + a2*v2.uw) / iw
				v := (a0*v0.vw + a1*v1.vw + a2*v2.vw) / iw
				tx := int(clampF32(u, 0, 1) * float32(texW-1))
				ty := int(clampF32(v, 0, 1) * float32(texH-1))
				var c color.RGBA
				if texRGBA != nil {
					b := texRGBA.Bounds()
					c = texRGBA.RGBAAt(b.Min.X+tx, b.Min.Y+ty)
				} else {
					b := tri.tex.Bounds()
					c = color.RGBAModel.Convert(tri.tex.At(b.Min.X+tx, b.Min.Y+ty)).(color.RGBA)
				}
				t.SetPixel(x, y, scaleColor(c, tri.shade))
			default:
				t.SetPixel(x, y, tri.base)
			}
		}
	}
}

func edgeFn(x0, y0, x1, y1, x, y int) int {
	return (x-x0)*(y1-y0) - (y-y0)*(x1-x0)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

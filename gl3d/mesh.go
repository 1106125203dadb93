package gl3d

import (
	"image"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// CubeMesh builds an axis-aligned box centered on the origin.
func CubeMesh(size mgl32.Vec3, c color.RGBA) Mesh {
	hx, hy, hz := size.X()/2, size.Y()/2, size.Z()/2
	faces := []struct {
		n       mgl32.Vec3
		corners [4]mgl32.Vec3
	}{
		{mgl32.Vec3{0, 0, 1}, [4]mgl32.Vec3{{-hx, -hy, hz}, {hx, -hy, hz}, {hx, hy, hz}, {-hx, hy, hz}}},
		{mgl32.Vec3{0, 0, -1}, [4]mgl32.Vec3{{hx, -hy, -hz}, {-hx, -hy, -hz}, {-hx, hy, -hz}, {hx, hy, -hz}}},
		{mgl32.Vec3{1, 0, 0}, [4]mgl32.Vec3{{hx, -hy, hz}, {hx, -hy, -hz}, {hx, hy, -hz}, {hx, hy, hz}}},
		{mgl32.Vec3{-1, 0, 0}, [4]mgl32.Vec3{{-hx, -hy, -hz}, {-hx, -hy, hz}, {-hx, hy, hz}, {-hx, hy, -hz}}},
		{mgl32.Vec3{0, 1, 0}, [4]mgl32.Vec3{{-hx, hy, hz}, {hx, hy, hz}, {hx, hy, -hz}, {-hx, hy, -hz}}},
		{mgl32.Vec3{0, -1, 0}, [4]mgl32.Vec3{{-hx, -hy, -hz}, {hx, -hy, -hz}, {hx, -hy, hz}, {-hx, -hy, hz}}},
	}
	uvs := [4]mgl32.Vec2{{0, 1}, {1, 1}, {1, 0}, {0, 0}}

	m := Mesh{Material: Material{BaseColor: c}}
	for _, f := range faces {
		base := uint16(len(m.Vertices))
		for i, p := range f.corners {
			m.Vertices = append(m.Vertices, Vertex{Pos: p, Normal: f.n, Color: c, UV: uvs[i]})
		}
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return m
}

// SphereMesh builds a UV sphere. rings and slices below 3 are raised to 3.
func SphereMesh(radius float32, rings, slices int, c color.RGBA) Mesh {
	rings = max(rings, 3)
	slices = max(slices, 3)
	m := Mesh{Material: Material{BaseColor: c}}
	for i := 0; i <= rings; i++ {
		phi := math.Pi * float64(i) / float64(rings)
		y := float32(math.Cos(phi))
		rr := float32(math.Sin(phi))
		for j := 0; j <= slices; j++ {
			theta := 2 * math.Pi * float64(j) / float64(slices)
			n := mgl32.Vec3{rr * float32(math.Cos(theta)), y, rr * float32(math.Sin(theta))}
			m.Vertices = append(m.Vertices, Vertex{
				Pos:    n.Mul(radius),
				Normal: n,
				Color:  c,
				UV:     mgl32.Vec2{float32(j) / float32(slices), float32(i) / float32(rings)},
			})
		}
	}
	row := uint16(slices + 1)
	for i := 0; i < rings; i++ {
		for j := 0; j < slices; j++ {
			a := uint16(i)*row + uint16(j)
			b := a + row
			m.Indices = append(m.Indices, a, b, a+1, a+1, b, b+1)
		}
	}
	return m
}

// CylinderMesh builds a capped cylinder standing on the origin, or a cone when one
// radius is zero.
func CylinderMesh(radiusTop, radiusBottom, height float32, slices int, c color.RGBA) Mesh {
	slices = max(slices, 3)
	m := Mesh{Material: Material{BaseColor: c}}

	ring := func(r, y float32) uint16 {
		base := uint16(len(m.Vertices))
		for j := 0; j < slices; j++ {
			a := 2 * math.Pi * float64(j) / float64(slices)
			dir := mgl32.Vec3{float32(math.Cos(a)), 0, float32(math.Sin(a))}
			m.Vertices = append(m.Vertices, Vertex{Pos: dir.Mul(r).Add(mgl32.Vec3{0, y, 0}), Normal: dir, Color: c})
		}
		return base
	}
	bottom := ring(radiusBottom, 0)
	top := ring(radiusTop, height)
	for j := 0; j < slices; j++ {
		k := uint16((j + 1) % slices)
		jj := uint16(j)
		m.Indices = append(m.Indices, bottom+jj, top+jj, bottom+k, bottom+k, top+jj, top+k)
	}

	addCap := func(ringBase uint16, y float32, n mgl32.Vec3) {
		center := uint16(len(m.Vertices))
		m.Vertices = append(m.Vertices, Vertex{Pos: mgl32.Vec3{0, y, 0}, Normal: n, Color: c})
		for j := 0; j < slices; j++ {
			k := uint16((j + 1) % slices)
			m.Indices = append(m.Indices, center, ringBase+uint16(j), ringBase+k)
		}
	}
	if radiusBottom > 0 {
		addCap(bottom, 0, mgl32.Vec3{0, -1, 0})
	}
	if radiusTop > 0 {
		addCap(top, height, mgl32.Vec3{0, 1, 0})
	}
	return m
}

// TexturedCubeMesh is a 2x2x2 cube with per-face texture coordinates: 24 vertices
// and 12 triangles.
func TexturedCubeMesh(tex image.Image) Mesh {
	verts := [24]mgl32.Vec3{
		// front
		{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
		// back
		{-1, -1, 1}, {-1, 1, 1}, {1, 1, 1}, {1, -1, 1},
		// left
		{-1, -1, -1}, {-1, 1, -1}, {-1, 1, 1}, {-1, -1, 1},
		// right
		{1, -1, -1}, {1, -1, 1}, {1, 1, 1}, {1, 1, -1},
		// top
		{-1, 1, -1}, {1, 1, -1}, {1, 1, 1}, {-1, 1, 1},
		// bottom
		{-1, -1, -1}, {-1, -1, 1}, {1, -1, 1}, {1, -1, -1},
	}
	uvs := [24]mgl32.Vec2{
		{0, 0}, {1, 0}, {1, 1}, {0, 1},
		{1, 0}, {1, 1}, {0, 1}, {0, 0},
		{0, 0}, {1, 0}, {1, 1}, {0, 1},
		{1, 0}, {1, 1}, {0, 1}, {0, 0},
		{0, 1}, {1, 1}, {1, 0}, {0, 0},
		{0, 1}, {1, 1}, {1, 0}, {0, 0},
	}
	normals := [6]mgl32.Vec3{{0, 0, -1}, {0, 0, 1}, {-1, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, -1, 0}}

	m := Mesh{Material: Material{BaseColor: color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}, Texture: tex}}
	m.Vertices = make([]Vertex, len(verts))
	for i := range verts {
		m.Vertices[i] = Vertex{Pos: verts[i], Normal: normals[i/4], Color: m.Material.BaseColor, UV: uvs[i]}
	}
	for f := uint16(0); f < 6; f++ {
		b := f * 4
		m.Indices = append(m.Indices, b, b+1, b+2, b, b+2, b+3)
	}
	return m
}

// CheckerTexture returns an n x n image of alternating a/b cells of size cell.
func CheckerTexture(n, cell int, a, b color.RGBA) *image.RGBA {
	if cell <= 0 {
		cell = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, n, n))
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			c := a
			if (x/cell+y/cell)%2 == 1 {
				c = b
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// Package gl3d is a small software 3D engine for the demo scenes.
//
// It renders triangle meshes from a Scene into a caller-provided Target:
//
//	Scene → Transform → Projection → Clipping → Rasterization → Target.
//
// Math is float32 through go-gl/mathgl (mgl32). Rasterization can be split into
// horizontal bands that run on worker goroutines; Render still returns only once
// the whole frame is drawn.
//
// The package also holds the camera controllers (free fly, follow, orbit). They
// read abstract Actions instead of keys, so the app decides the key bindings.
package gl3d

package gl3d

import "github.com/go-gl/mathgl/mgl32"

// normalize is Vec3.Normalize without the NaN for a zero vector.
func normalize(v mgl32.Vec3) mgl32.Vec3 {
	if v.Len() == 0 {
		return mgl32.Vec3{}
	}
	return v.Normalize()
}

// rotateY turns v by angle radians about the Y axis (counter-clockwise seen from +Y).
func rotateY(v mgl32.Vec3, angle float32) mgl32.Vec3 {
	return mgl32.Rotate3DY(angle).Mul3x1(v)
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampF32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// RotateModel rotates transform by angleDeg degrees about axis, applied after the
// existing transform.
func RotateModel(transform mgl32.Mat4, angleDeg float32, axis mgl32.Vec3) mgl32.Mat4 {
	axis = normalize(axis)
	if axis == (mgl32.Vec3{}) {
		return transform
	}
	return mgl32.HomogRotate3D(mgl32.DegToRad(angleDeg), axis).Mul4(transform)
}

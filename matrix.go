package spin3d

import (
	"github.com/go-gl/mathgl/mgl64"
)

// RotateXZ rotates v about the up (Y) axis:
//
//	x' = x·cos θ − z·sin θ
//	z' = x·sin θ + z·cos θ
//
// mgl64's Y rotation turns the other way, hence the negated angle.
func RotateXZ(v Vector3, angle float64) Vector3 {
	return vector3FromVec3(mgl64.Rotate3DY(-angle).Mul3x1(v.vec3()))
}

// TranslateZ pushes v along the depth axis.
func TranslateZ(v Vector3, depth float64) Vector3 {
	v.Z += depth
	return v
}

// ModelMatrix is the per-frame object to camera transform: rotate by angle,
// then translate by depth.
func ModelMatrix(angle, depth float64) mgl64.Mat4 {
	return mgl64.Translate3D(0, 0, depth).Mul4(mgl64.HomogRotate3DY(-angle))
}

// TransformVertices writes every source vertex, moved into camera space, into
// dest and returns it. dest is grown when it is too small.
func TransformVertices(dest, src []Vector3, angle, depth float64) []Vector3 {
	if cap(dest) < len(src) {
		dest = make([]Vector3, len(src))
	}
	dest = dest[:len(src)]

	m := ModelMatrix(angle, depth)
	for i, p := range src {
		dest[i] = vector3FromVec3(mgl64.TransformCoordinate(p.vec3(), m))
	}
	return dest
}

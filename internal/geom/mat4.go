package geom

import "math"

// Mat4 is a 4×4 matrix stored row-major and applied to column vectors
// (p' = M·p). Composition therefore reads right to left: the rightmost
// factor is applied first.
type Mat4 [16]float64

func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translation builds a pure translation matrix with an identity rotation
// block.
func Translation(x, y, z float64) Mat4 {
	return Mat4{
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	}
}

// LookAtLH builds a left-handed view matrix looking from eye towards target.
// forward = normalize(target−eye), right = normalize(up × forward),
// trueUp = forward × right; the translation terms are −dot(basis, eye).
// Precondition: target != eye and up not parallel to forward. Degenerate
// input yields a garbage matrix (zeroed basis rows), never a panic.
func LookAtLH(eye, target, up Vec3) Mat4 {
	forward := target.Sub(eye).Normalize()
	right := up.Cross(forward).Normalize()
	trueUp := forward.Cross(right)
	return Mat4{
		right[0], right[1], right[2], -right.Dot(eye),
		trueUp[0], trueUp[1], trueUp[2], -trueUp.Dot(eye),
		forward[0], forward[1], forward[2], -forward.Dot(eye),
		0, 0, 0, 1,
	}
}

// PerspectiveFovLH builds a left-handed perspective projection mapping view
// depth into [0,1]. fov is the vertical field of view in radians.
// Precondition: fov in (0,π), aspect > 0, zFar > zNear > 0; violations are
// not checked and produce undefined output.
func PerspectiveFovLH(fov, aspect, zNear, zFar float64) Mat4 {
	yScale := 1 / math.Tan(fov/2)
	xScale := yScale / aspect
	q := zFar / (zFar - zNear)
	return Mat4{
		xScale, 0, 0, 0,
		0, yScale, 0, 0,
		0, 0, q, -zNear * q,
		0, 0, 1, 0,
	}
}

// RotationYawPitchRoll composes intrinsic rotations about Y (yaw), X (pitch)
// and Z (roll); roll is applied first, then pitch, then yaw.
func RotationYawPitchRoll(yaw, pitch, roll float64) Mat4 {
	return RotationY(yaw).Mul(RotationX(pitch)).Mul(RotationZ(roll))
}

// Mul returns a × b. Matrix multiplication is not commutative: in this
// pipeline world = translation·rotation and transform = proj·view·world,
// and swapping factors revolves meshes around the world origin instead of
// spinning them in place.
func (a Mat4) Mul(b Mat4) Mat4 {
	var m Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m[r*4+c] = a[r*4+0]*b[0*4+c] + a[r*4+1]*b[1*4+c] +
				a[r*4+2]*b[2*4+c] + a[r*4+3]*b[3*4+c]
		}
	}
	return m
}

// TransformCoord applies the matrix to a 3D point treated as homogeneous
// (x,y,z,1) and divides by the resulting w. The view/projection matrices
// built above never yield w = 0 for points in front of the camera; if w is
// exactly 0 the divide is skipped and the raw (x,y,z) comes back — a
// documented degenerate case, not an error.
func (m Mat4) TransformCoord(v Vec3) Vec3 {
	x := m[0]*v[0] + m[1]*v[1] + m[2]*v[2] + m[3]
	y := m[4]*v[0] + m[5]*v[1] + m[6]*v[2] + m[7]
	z := m[8]*v[0] + m[9]*v[1] + m[10]*v[2] + m[11]
	w := m[12]*v[0] + m[13]*v[1] + m[14]*v[2] + m[15]
	if w == 0 {
		return Vec3{x, y, z}
	}
	return Vec3{x / w, y / w, z / w}
}

// IsIdentity checks if the matrix is approximately identity.
func (m Mat4) IsIdentity() bool {
	id := Identity()
	for i := 0; i < 16; i++ {
		d := m[i] - id[i]
		if d > 1e-8 || d < -1e-8 {
			return false
		}
	}
	return true
}

package vecmath

import "github.com/chewxy/math32"

// Matrix is a row-major 4x4 transform. Mij is row i, column j.
type Matrix struct {
	M11, M12, M13, M14 float32
	M21, M22, M23, M24 float32
	M31, M32, M33, M34 float32
	M41, M42, M43, M44 float32
}

func Identity() Matrix {
	return Matrix{
		M11: 1,
		M22: 1,
		M33: 1,
		M44: 1,
	}
}

// Multiply returns a*b. Applied to a row vector, a acts first.
func Multiply(a, b Matrix) Matrix {
	return Matrix{
		M11: a.M11*b.M11 + a.M12*b.M21 + a.M13*b.M31 + a.M14*b.M41,
		M12: a.M11*b.M12 + a.M12*b.M22 + a.M13*b.M32 + a.M14*b.M42,
		M13: a.M11*b.M13 + a.M12*b.M23 + a.M13*b.M33 + a.M14*b.M43,
		M14: a.M11*b.M14 + a.M12*b.M24 + a.M13*b.M34 + a.M14*b.M44,

		M21: a.M21*b.M11 + a.M22*b.M21 + a.M23*b.M31 + a.M24*b.M41,
		M22: a.M21*b.M12 + a.M22*b.M22 + a.M23*b.M32 + a.M24*b.M42,
		M23: a.M21*b.M13 + a.M22*b.M23 + a.M23*b.M33 + a.M24*b.M43,
		M24: a.M21*b.M14 + a.M22*b.M24 + a.M23*b.M34 + a.M24*b.M44,

		M31: a.M31*b.M11 + a.M32*b.M21 + a.M33*b.M31 + a.M34*b.M41,
		M32: a.M31*b.M12 + a.M32*b.M22 + a.M33*b.M32 + a.M34*b.M42,
		M33: a.M31*b.M13 + a.M32*b.M23 + a.M33*b.M33 + a.M34*b.M43,
		M34: a.M31*b.M14 + a.M32*b.M24 + a.M33*b.M34 + a.M34*b.M44,

		M41: a.M41*b.M11 + a.M42*b.M21 + a.M43*b.M31 + a.M44*b.M41,
		M42: a.M41*b.M12 + a.M42*b.M22 + a.M43*b.M32 + a.M44*b.M42,
		M43: a.M41*b.M13 + a.M42*b.M23 + a.M43*b.M33 + a.M44*b.M43,
		M44: a.M41*b.M14 + a.M42*b.M24 + a.M43*b.M34 + a.M44*b.M44,
	}
}

// Mul is shorthand for Multiply(m, o).
func (m Matrix) Mul(o Matrix) Matrix { return Multiply(m, o) }

// Translation returns a matrix moving points by v.
func Translation(v Vector3) Matrix {
	m := Identity()
	m.M41 = v.X
	m.M42 = v.Y
	m.M43 = v.Z
	return m
}

// Quaternion is a rotation in (X, Y, Z, W) form.
type Quaternion struct {
	X, Y, Z, W float32
}

// QuaternionYawPitchRoll builds a rotation from yaw (around Y), pitch (around X) and
// roll (around Z), all in radians.
func QuaternionYawPitchRoll(yaw, pitch, roll float32) Quaternion {
	halfRoll := roll * 0.5
	halfPitch := pitch * 0.5
	halfYaw := yaw * 0.5

	sinRoll, cosRoll := math32.Sin(halfRoll), math32.Cos(halfRoll)
	sinPitch, cosPitch := math32.Sin(halfPitch), math32.Cos(halfPitch)
	sinYaw, cosYaw := math32.Sin(halfYaw), math32.Cos(halfYaw)

	return Quaternion{
		X: cosYaw*sinPitch*cosRoll + sinYaw*cosPitch*sinRoll,
		Y: sinYaw*cosPitch*cosRoll - cosYaw*sinPitch*sinRoll,
		Z: cosYaw*cosPitch*sinRoll - sinYaw*sinPitch*cosRoll,
		W: cosYaw*cosPitch*cosRoll + sinYaw*sinPitch*sinRoll,
	}
}

// RotationQuaternion converts a unit quaternion to a rotation matrix.
func RotationQuaternion(q Quaternion) Matrix {
	xx := q.X * q.X
	yy := q.Y * q.Y
	zz := q.Z * q.Z
	xy := q.X * q.Y
	zw := q.Z * q.W
	zx := q.Z * q.X
	yw := q.Y * q.W
	yz := q.Y * q.Z
	xw := q.X * q.W

	m := Identity()
	m.M11 = 1 - 2*(yy+zz)
	m.M12 = 2 * (xy + zw)
	m.M13 = 2 * (zx - yw)
	m.M21 = 2 * (xy - zw)
	m.M22 = 1 - 2*(zz+xx)
	m.M23 = 2 * (yz + xw)
	m.M31 = 2 * (zx + yw)
	m.M32 = 2 * (yz - xw)
	m.M33 = 1 - 2*(yy+xx)
	return m
}

// RotationYawPitchRoll returns the rotation matrix for the given Euler angles.
func RotationYawPitchRoll(yaw, pitch, roll float32) Matrix {
	return RotationQuaternion(QuaternionYawPitchRoll(yaw, pitch, roll))
}

// LookAtLH returns a left-handed view matrix for a camera at eye facing target.
func LookAtLH(eye, target, up Vector3) Matrix {
	zaxis := target.Sub(eye).Normalize()
	xaxis := up.Cross(zaxis).Normalize()
	yaxis := zaxis.Cross(xaxis)

	return Matrix{
		M11: xaxis.X, M12: yaxis.X, M13: zaxis.X, M14: 0,
		M21: xaxis.Y, M22: yaxis.Y, M23: zaxis.Y, M24: 0,
		M31: xaxis.Z, M32: yaxis.Z, M33: zaxis.Z, M34: 0,
		M41: -xaxis.Dot(eye), M42: -yaxis.Dot(eye), M43: -zaxis.Dot(eye), M44: 1,
	}
}

// PerspectiveOffCenterRH returns a right-handed perspective projection for the given
// near-plane bounds.
func PerspectiveOffCenterRH(left, right, bottom, top, znear, zfar float32) Matrix {
	zRange := zfar / (zfar - znear)

	var m Matrix
	m.M11 = 2 * znear / (right - left)
	m.M22 = 2 * znear / (top - bottom)
	m.M31 = -((left + right) / (left - right))
	m.M32 = -((top + bottom) / (bottom - top))
	m.M33 = -zRange
	m.M34 = -1
	m.M43 = -znear * zRange
	return m
}

// PerspectiveFovRH returns a right-handed perspective projection from a vertical field
// of view in radians.
func PerspectiveFovRH(fov, aspect, znear, zfar float32) Matrix {
	yScale := 1 / math32.Tan(fov*0.5)
	xScale := yScale / aspect

	halfWidth := znear / xScale
	halfHeight := znear / yScale
	return PerspectiveOffCenterRH(-halfWidth, halfWidth, -halfHeight, halfHeight, znear, zfar)
}

// TransformCoordinate transforms the point v (w = 1) and divides the result by the
// computed w.
func TransformCoordinate(v Vector3, m Matrix) Vector3 {
	x := v.X*m.M11 + v.Y*m.M21 + v.Z*m.M31 + m.M41
	y := v.X*m.M12 + v.Y*m.M22 + v.Z*m.M32 + m.M42
	z := v.X*m.M13 + v.Y*m.M23 + v.Z*m.M33 + m.M43
	w := 1 / (v.X*m.M14 + v.Y*m.M24 + v.Z*m.M34 + m.M44)
	return Vector3{X: x * w, Y: y * w, Z: z * w}
}

package vecmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const tol = 1e-5

func assertVecInDelta(t *testing.T, want, got Vector3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, tol, "X")
	assert.InDelta(t, want.Y, got.Y, tol, "Y")
	assert.InDelta(t, want.Z, got.Z, tol, "Z")
}

func assertMatrixInDelta(t *testing.T, want, got Matrix) {
	t.Helper()
	w := [16]float32{
		want.M11, want.M12, want.M13, want.M14,
		want.M21, want.M22, want.M23, want.M24,
		want.M31, want.M32, want.M33, want.M34,
		want.M41, want.M42, want.M43, want.M44,
	}
	g := [16]float32{
		got.M11, got.M12, got.M13, got.M14,
		got.M21, got.M22, got.M23, got.M24,
		got.M31, got.M32, got.M33, got.M34,
		got.M41, got.M42, got.M43, got.M44,
	}
	for i := range w {
		assert.InDelta(t, w[i], g[i], tol, "element %d", i)
	}
}

func TestMultiplyIdentity(t *testing.T) {
	a := Identity()
	b := Translation(V3(1, 2, 3))
	if got := Multiply(a, b); got != b {
		t.Fatalf("identity*b = %+v, want %+v", got, b)
	}
	if got := Multiply(b, a); got != b {
		t.Fatalf("b*identity = %+v, want %+v", got, b)
	}
}

func TestTranslationMovesPoint(t *testing.T) {
	got := TransformCoordinate(V3(1, 2, 3), Translation(V3(1, 1, 1)))
	assert.Equal(t, V3(2, 3, 4), got)
}

func TestMultiplyAppliesLeftFirst(t *testing.T) {
	// Rotate then translate: UnitX -> (0,0,-1) -> (0,0,4).
	rot := RotationYawPitchRoll(math.Pi/2, 0, 0)
	move := Translation(V3(0, 0, 5))
	assertVecInDelta(t, V3(0, 0, 4), TransformCoordinate(UnitX, rot.Mul(move)))
	// Translate then rotate: UnitX -> (1,0,5) -> (5,0,-1).
	assertVecInDelta(t, V3(5, 0, -1), TransformCoordinate(UnitX, move.Mul(rot)))
}

func TestRotationAxes(t *testing.T) {
	tests := []struct {
		name             string
		yaw, pitch, roll float32
		in, want         Vector3
	}{
		{"yaw", math.Pi / 2, 0, 0, UnitX, V3(0, 0, -1)},
		{"pitch", 0, math.Pi / 2, 0, UnitY, V3(0, 0, 1)},
		{"roll", 0, 0, math.Pi / 2, UnitX, V3(0, 1, 0)},
		{"none", 0, 0, 0, V3(1, 2, 3), V3(1, 2, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := RotationYawPitchRoll(tt.yaw, tt.pitch, tt.roll)
			assertVecInDelta(t, tt.want, TransformCoordinate(tt.in, m))
		})
	}
}

func TestRotationYawPitchRollOrder(t *testing.T) {
	// Roll is applied first, then pitch, then yaw.
	yaw, pitch, roll := float32(0.3), float32(-0.7), float32(1.1)
	want := RotationYawPitchRoll(0, 0, roll).
		Mul(RotationYawPitchRoll(0, pitch, 0)).
		Mul(RotationYawPitchRoll(yaw, 0, 0))
	assertMatrixInDelta(t, want, RotationYawPitchRoll(yaw, pitch, roll))
}

func TestLookAtLH(t *testing.T) {
	m := LookAtLH(V3(0, 0, 10), Zero, UnitY)
	want := Identity()
	want.M11 = -1
	want.M33 = -1
	want.M43 = 10
	assertMatrixInDelta(t, want, m)

	// The target sits on the view axis.
	assertVecInDelta(t, V3(0, 0, 10), TransformCoordinate(Zero, m))
}

func TestPerspectiveFovRH(t *testing.T) {
	fov, aspect := float32(0.78), float32(640.0/480.0)
	m := PerspectiveFovRH(fov, aspect, 0.01, 1)

	yScale := float32(1 / math.Tan(float64(fov)/2))
	assert.InDelta(t, yScale, m.M22, 1e-4)
	assert.InDelta(t, yScale/aspect, m.M11, 1e-4)
	assert.InDelta(t, -1/0.99, m.M33, 1e-4)
	assert.InDelta(t, -0.01/0.99, m.M43, 1e-4)
	assert.Equal(t, float32(-1), m.M34)
	assert.Equal(t, float32(0), m.M44)
	assert.InDelta(t, 0, m.M31, tol)
	assert.InDelta(t, 0, m.M32, tol)
}

func TestTransformCoordinateDividesByW(t *testing.T) {
	m := Identity()
	m.M44 = 2
	assertVecInDelta(t, V3(0.5, 1, 1.5), TransformCoordinate(V3(1, 2, 3), m))
}

func TestNormalizeZero(t *testing.T) {
	assert.Equal(t, Zero, Zero.Normalize())
	assertVecInDelta(t, UnitZ, V3(0, 0, 4).Normalize())
	assert.InDelta(t, 5, V3(3, 4, 0).Length(), tol)
}

func TestCross(t *testing.T) {
	assert.Equal(t, UnitZ, UnitX.Cross(UnitY))
	assert.Equal(t, V3(-1, 0, 0), UnitY.Cross(V3(0, 0, -1)))
}

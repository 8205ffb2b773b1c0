// Package vecmath provides the float32 vector and matrix primitives used by the
// Axion pipeline.
//
// Matrices are row-major and transform row vectors: a point is multiplied on the left
// (p' = p * M), so translation lives in M41..M43 and composition reads left to right in
// application order.
package vecmath

import "github.com/chewxy/math32"

// Vector2 is a 2D point or direction.
type Vector2 struct {
	X, Y float32
}

// Vector3 is a 3D point, direction or Euler angle triple.
type Vector3 struct {
	X, Y, Z float32
}

var (
	Zero  = Vector3{}
	UnitX = Vector3{X: 1}
	UnitY = Vector3{Y: 1}
	UnitZ = Vector3{Z: 1}
)

func V2(x, y float32) Vector2    { return Vector2{X: x, Y: y} }
func V3(x, y, z float32) Vector3 { return Vector3{X: x, Y: y, Z: z} }

func (v Vector3) Add(o Vector3) Vector3   { return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vector3) Sub(o Vector3) Vector3   { return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vector3) Scale(s float32) Vector3 { return Vector3{v.X * s, v.Y * s, v.Z * s} }
func (v Vector3) Dot(o Vector3) float32   { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }
func (v Vector2) Add(o Vector2) Vector2   { return Vector2{v.X + o.X, v.Y + o.Y} }
func (v Vector2) Sub(o Vector2) Vector2   { return Vector2{v.X - o.X, v.Y - o.Y} }
func (v Vector2) Scale(s float32) Vector2 { return Vector2{v.X * s, v.Y * s} }

func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

func (v Vector3) Length() float32 {
	return math32.Sqrt(v.Dot(v))
}

// Normalize returns v scaled to unit length. The zero vector is returned unchanged.
func (v Vector3) Normalize() Vector3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	inv := 1 / l
	return Vector3{v.X * inv, v.Y * inv, v.Z * inv}
}

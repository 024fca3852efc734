package quat

import (
	"fmt"
	"math"
)

// Vector3 is a point or direction in 3D space.
type Vector3 struct {
	X, Y, Z float64
}

// Vec3 creates a new vector with the given components
func Vec3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors
func (v Vector3) Add(o Vector3) Vector3 { return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns the difference between two vectors
func (v Vector3) Sub(o Vector3) Vector3 { return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale multiplies every component by k
func (v Vector3) Scale(k float64) Vector3 { return Vector3{v.X * k, v.Y * k, v.Z * k} }

// Length returns the Euclidean norm
func (v Vector3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// String formats the vector as "(x, y, z)".
func (v Vector3) String() string {
	return fmt.Sprintf("(%s, %s, %s)", formatReal(v.X), formatReal(v.Y), formatReal(v.Z))
}

// formatReal prints like a default C++ ostream: six significant digits,
// trailing zeros dropped.
func formatReal(f float64) string {
	return fmt.Sprintf("%.6g", f)
}

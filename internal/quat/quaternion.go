// Package quat implements the quaternion algebra used to spin the scene
// object: axis-angle construction, Hamilton products, inversion and
// normalization. Everything here is a value type and none of the arithmetic
// allocates.
package quat

import (
	"errors"
	"fmt"
	"math"
)

const (
	// UnitTolerance is how far Length may stray from 1 for IsUnit.
	UnitTolerance = 1e-4

	// IdentityTolerance is the per-component slack used by IsIdentity.
	// It is looser than UnitTolerance on purpose.
	IdentityTolerance = 1e-3

	// degenerateLength is the length below which Normalize gives up.
	degenerateLength = 1e-4

	// inverseEpsilon bounds the squared length accepted by Inverse.
	inverseEpsilon = degenerateLength * degenerateLength
)

// ErrDivideByZero is returned by Inverse for a (near) zero quaternion.
var ErrDivideByZero = errors.New("quat: divide by zero")

// Quaternion is w + xi + yj + zk. Only unit quaternions represent rotations.
type Quaternion struct {
	W, X, Y, Z float64
}

// New creates a quaternion from its four components.
func New(w, x, y, z float64) Quaternion {
	return Quaternion{W: w, X: x, Y: y, Z: z}
}

// Identity returns the rotation that does nothing.
func Identity() Quaternion {
	return Quaternion{W: 1}
}

// FromAxisAngle builds the rotation of angle radians about axis.
//
// The axis is used as given. If it is not unit length the result is not a
// unit quaternion, so callers either pass a unit axis or Normalize the
// result before using it as a rotation.
func FromAxisAngle(axis Vector3, angle float64) Quaternion {
	s, c := math.Sincos(angle / 2)
	return Quaternion{
		W: c,
		X: s * axis.X,
		Y: s * axis.Y,
		Z: s * axis.Z,
	}
}

// Mul returns the Hamilton product q*o. Composition is not commutative:
// q.Mul(o) applies o first, then q.
func (q Quaternion) Mul(o Quaternion) Quaternion {
	return Quaternion{
		W: q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
		X: q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		Y: q.W*o.Y - q.X*o.Z + q.Y*o.W + q.Z*o.X,
		Z: q.W*o.Z + q.X*o.Y - q.Y*o.X + q.Z*o.W,
	}
}

// Conjugate negates the vector part.
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{W: q.W, X: -q.X, Y: -q.Y, Z: -q.Z}
}

// LengthSquared returns w² + x² + y² + z². It overflows for components
// beyond about 1e154; Length does not.
func (q Quaternion) LengthSquared() float64 {
	return q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z
}

// Length returns the norm of q. The components are scaled by the largest
// one before squaring, so any finite q whose norm fits in a float64 gets a
// finite length.
func (q Quaternion) Length() float64 {
	m := q.maxAbs()
	if m == 0 || math.IsInf(m, 1) || math.IsNaN(m) {
		return m
	}
	return m * q.div(m).hypot()
}

// Inverse returns the conjugate divided by the squared length, so that
// inv.Mul(q) is the identity. It fails with ErrDivideByZero when
// q is too close to zero to invert.
func (q Quaternion) Inverse() (Quaternion, error) {
	l := q.Length()
	if l*l < inverseEpsilon {
		return Quaternion{}, ErrDivideByZero
	}
	return Quaternion{
		W: q.W / l / l,
		X: -q.X / l / l,
		Y: -q.Y / l / l,
		Z: -q.Z / l / l,
	}, nil
}

// Normalize scales q to unit length. Quaternions shorter than 1e-4 have no
// meaningful direction; for those the identity is returned instead of NaNs.
func (q Quaternion) Normalize() Quaternion {
	l := q.Length()
	if l < degenerateLength {
		return Identity()
	}
	if math.IsInf(l, 1) {
		// Finite components whose norm still overflows.
		q = q.div(q.maxAbs())
		l = q.hypot()
	}
	return q.div(l)
}

func (q Quaternion) maxAbs() float64 {
	return math.Max(math.Max(math.Abs(q.W), math.Abs(q.X)), math.Max(math.Abs(q.Y), math.Abs(q.Z)))
}

func (q Quaternion) div(k float64) Quaternion {
	return Quaternion{W: q.W / k, X: q.X / k, Y: q.Y / k, Z: q.Z / k}
}

// hypot is the unscaled norm, for components already known to be small.
func (q Quaternion) hypot() float64 {
	return math.Sqrt(q.LengthSquared())
}

// IsUnit reports whether q has unit length within UnitTolerance.
func (q Quaternion) IsUnit() bool {
	return math.Abs(q.Length()-1) < UnitTolerance
}

// IsIdentity reports whether every component is within IdentityTolerance
// of (1, 0, 0, 0).
func (q Quaternion) IsIdentity() bool {
	return math.Abs(q.W-1) < IdentityTolerance &&
		math.Abs(q.X) < IdentityTolerance &&
		math.Abs(q.Y) < IdentityTolerance &&
		math.Abs(q.Z) < IdentityTolerance
}

// ApproxEqual compares component-wise with an absolute tolerance.
func (q Quaternion) ApproxEqual(o Quaternion, tol float64) bool {
	return math.Abs(q.W-o.W) <= tol &&
		math.Abs(q.X-o.X) <= tol &&
		math.Abs(q.Y-o.Y) <= tol &&
		math.Abs(q.Z-o.Z) <= tol
}

// String formats q as "(w, x, y, z)".
func (q Quaternion) String() string {
	return fmt.Sprintf("(%s, %s, %s, %s)",
		formatReal(q.W), formatReal(q.X), formatReal(q.Y), formatReal(q.Z))
}

// Package scene holds the mutable view state that drives each frame: the
// rotation axis and angle, the eye position and where the object sits.
package scene

import (
	"fmt"

	"quatview/internal/quat"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	// DefaultRate is the spin speed in radians per second.
	DefaultRate = 0.3

	// viewExtent is the half size of the orthographic view volume.
	viewExtent = 20.0

	eyeStep    = 1.0
	objectStep = 0.5
	axisStep   = 0.2
)

// State is everything the renderer needs for one frame.
type State struct {
	Axis   quat.Vector3 // rotation axis, not kept normalized
	Angle  float64      // radians, grows every frame
	Rate   float64      // radians per second
	Eye    quat.Vector3
	Center quat.Vector3
	Up     quat.Vector3
	Object quat.Vector3 // object offset before rotation
}

// New returns the initial scene.
func New() *State {
	return &State{
		Axis:   quat.Vec3(1, 1, 0),
		Rate:   DefaultRate,
		Eye:    quat.Vec3(3, 3, 10),
		Center: quat.Vec3(0, 0, 0),
		Up:     quat.Vec3(0, 1, 0),
		Object: quat.Vec3(3, 0, 0),
	}
}

// Advance moves the angle forward by dt seconds.
func (s *State) Advance(dt float64) {
	if dt <= 0 {
		return
	}
	s.Angle += s.Rate * dt
}

// Rotation returns the current rotation. The axis is whatever the user
// steered it to, so the quaternion is normalized here rather than at
// construction.
func (s *State) Rotation() quat.Quaternion {
	return quat.FromAxisAngle(s.Axis, s.Angle).Normalize()
}

// Model returns rotation * translation(object), so the object orbits the
// axis at its offset.
func (s *State) Model() mgl32.Mat4 {
	m := s.Rotation().Mat4().Mul4(mgl64.Translate3D(s.Object.X, s.Object.Y, s.Object.Z))
	return toMat32(m)
}

// View returns the camera matrix looking from Eye at Center.
func (s *State) View() mgl32.Mat4 {
	return mgl32.LookAtV(vec3f(s.Eye), vec3f(s.Center), vec3f(s.Up))
}

// Projection returns an orthographic projection that keeps ±20 visible on
// the shorter side of a width x height framebuffer.
func Projection(width, height int) mgl32.Mat4 {
	if width <= 0 || height <= 0 {
		return mgl32.Ortho(-viewExtent, viewExtent, -viewExtent, viewExtent, -viewExtent, viewExtent)
	}
	w, h := float32(width), float32(height)
	if w <= h {
		return mgl32.Ortho(-viewExtent, viewExtent, -viewExtent*h/w, viewExtent*h/w, -viewExtent, viewExtent)
	}
	return mgl32.Ortho(-viewExtent*w/h, viewExtent*w/h, -viewExtent, viewExtent, -viewExtent, viewExtent)
}

// Overlay returns the status lines shown to the user.
func (s *State) Overlay() []string {
	return []string{
		"Enter 'A', 'S', 'D', 'W', 'Q', 'E' to change the viewing angle.",
		fmt.Sprintf("The center of rotation axis: %s", oneDecimal(s.Axis)),
		fmt.Sprintf("The position of eye: %s", oneDecimal(s.Eye)),
		fmt.Sprintf("The position of object: %s (i, j, k, l, u, o)", oneDecimal(s.Object)),
	}
}

func oneDecimal(v quat.Vector3) string {
	return fmt.Sprintf("(%.1f, %.1f, %.1f)", v.X, v.Y, v.Z)
}

func vec3f(v quat.Vector3) mgl32.Vec3 {
	return mgl32.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}

func toMat32(m mgl64.Mat4) mgl32.Mat4 {
	var out mgl32.Mat4
	for i := range m {
		out[i] = float32(m[i])
	}
	return out
}

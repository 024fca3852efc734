package quat

import "github.com/go-gl/mathgl/mgl64"

// Rotate applies the rotation q to point p. q is normalized first, so a
// degenerate q leaves p unchanged.
func (q Quaternion) Rotate(p Vector3) Vector3 {
	n := q.Normalize()
	w, x, y, z := n.W, n.X, n.Y, n.Z

	return Vector3{
		X: (1-2*y*y-2*z*z)*p.X + (2*x*y-2*w*z)*p.Y + (2*x*z+2*w*y)*p.Z,
		Y: (2*x*y+2*w*z)*p.X + (1-2*x*x-2*z*z)*p.Y + (2*y*z-2*w*x)*p.Z,
		Z: (2*x*z-2*w*y)*p.X + (2*y*z+2*w*x)*p.Y + (1-2*x*x-2*y*y)*p.Z,
	}
}

// Mat4 returns the homogeneous rotation matrix of q in column-major order,
// ready to be uploaded as an OpenGL model matrix. q must already be
// normalized; Mat4 does not do it.
func (q Quaternion) Mat4() mgl64.Mat4 {
	w, x, y, z := q.W, q.X, q.Y, q.Z

	// mgl64.Mat4 is column-major: each line below is one column.
	return mgl64.Mat4{
		1 - 2*y*y - 2*z*z, 2*x*y + 2*w*z, 2*x*z - 2*w*y, 0,
		2*x*y - 2*w*z, 1 - 2*x*x - 2*z*z, 2*y*z + 2*w*x, 0,
		2*x*z + 2*w*y, 2*y*z - 2*w*x, 1 - 2*x*x - 2*y*y, 0,
		0, 0, 0, 1,
	}
}

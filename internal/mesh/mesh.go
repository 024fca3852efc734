// Package mesh builds the wireframe geometry drawn each frame. Every shape
// is a line list: points are consumed in pairs, one pair per segment.
package mesh

import (
	"fmt"
	"math"

	"quatview/internal/quat"
)

// AxisExtent is how far the coordinate axes and rotation axis reach.
const AxisExtent = 1000

// Lines is a list of line segments stored as consecutive point pairs.
type Lines []quat.Vector3

// Segments returns the number of segments.
func (l Lines) Segments() int { return len(l) / 2 }

// Float32s flattens the points for a vertex buffer.
func (l Lines) Float32s() []float32 {
	out := make([]float32, 0, len(l)*3)
	for _, p := range l {
		out = append(out, float32(p.X), float32(p.Y), float32(p.Z))
	}
	return out
}

// Axes returns the three coordinate axes running from -extent to +extent.
func Axes(extent float64) Lines {
	return Lines{
		quat.Vec3(-extent, 0, 0), quat.Vec3(extent, 0, 0),
		quat.Vec3(0, -extent, 0), quat.Vec3(0, extent, 0),
		quat.Vec3(0, 0, -extent), quat.Vec3(0, 0, extent),
	}
}

// AxisLine returns a single segment along axis, scaled by extent both ways.
// The axis is not normalized, matching how far the user has steered it.
func AxisLine(axis quat.Vector3, extent float64) Lines {
	return Lines{axis.Scale(-extent), axis.Scale(extent)}
}

var (
	cubeCorners = [8]quat.Vector3{
		// Front face
		{X: -0.5, Y: -0.5, Z: 0.5},
		{X: 0.5, Y: -0.5, Z: 0.5},
		{X: 0.5, Y: 0.5, Z: 0.5},
		{X: -0.5, Y: 0.5, Z: 0.5},
		// Back face
		{X: -0.5, Y: -0.5, Z: -0.5},
		{X: 0.5, Y: -0.5, Z: -0.5},
		{X: 0.5, Y: 0.5, Z: -0.5},
		{X: -0.5, Y: 0.5, Z: -0.5},
	}

	cubeEdges = [24]int{
		0, 1, 1, 2, 2, 3, 3, 0, // Front face
		4, 5, 5, 6, 6, 7, 7, 4, // Back face
		0, 4, 1, 5, 2, 6, 3, 7, // Connecting lines
	}
)

// Cube returns the 12 edges of an axis-aligned cube with the given edge
// length, centered on the origin.
func Cube(size float64) Lines {
	out := make(Lines, 0, len(cubeEdges))
	for _, i := range cubeEdges {
		out = append(out, cubeCorners[i].Scale(size))
	}
	return out
}

// Sphere returns a latitude/longitude wire sphere. rings counts the
// latitude bands, segments the meridians.
func Sphere(radius float64, rings, segments int) Lines {
	if rings < 2 {
		rings = 2
	}
	if segments < 3 {
		segments = 3
	}

	point := func(ring, seg int) quat.Vector3 {
		theta := math.Pi * float64(ring) / float64(rings)
		phi := 2 * math.Pi * float64(seg) / float64(segments)
		st, ct := math.Sincos(theta)
		sp, cp := math.Sincos(phi)
		return quat.Vec3(radius*st*cp, radius*ct, radius*st*sp)
	}

	var out Lines
	// Parallels, skipping the poles.
	for r := 1; r < rings; r++ {
		for s := 0; s < segments; s++ {
			out = append(out, point(r, s), point(r, (s+1)%segments))
		}
	}
	// Meridians.
	for s := 0; s < segments; s++ {
		for r := 0; r < rings; r++ {
			out = append(out, point(r, s), point(r+1, s))
		}
	}
	return out
}

// HasShape reports whether Shape knows name.
func HasShape(name string) bool {
	return name == "cube" || name == "sphere"
}

// Shape returns the wire object with the given name: "cube" or "sphere".
func Shape(name string, size float64) (Lines, error) {
	switch name {
	case "cube":
		return Cube(size), nil
	case "sphere":
		return Sphere(size/2, 12, 24), nil
	default:
		return nil, fmt.Errorf("unknown shape %q", name)
	}
}

// Package render draws the scene with OpenGL 4.1 core. It needs a current
// GL context on the calling thread.
package render

import (
	"fmt"

	"quatview/internal/mesh"
	"quatview/internal/quat"
	"quatview/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	black = mgl32.Vec3{0, 0, 0}
	red   = mgl32.Vec3{1, 0, 0}
)

// batch is one vertex array of GL_LINES.
type batch struct {
	vao, vbo uint32
	count    int32
}

func newBatch(position uint32, lines mesh.Lines, usage uint32) batch {
	var b batch
	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	b.upload(lines, usage)

	gl.EnableVertexAttribArray(position)
	gl.VertexAttribPointer(position, 3, gl.FLOAT, false, 0, gl.PtrOffset(0))

	return b
}

func (b *batch) upload(lines mesh.Lines, usage uint32) {
	data := lines.Float32s()
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), usage)
	b.count = int32(len(lines))
}

func (b *batch) draw() {
	gl.BindVertexArray(b.vao)
	gl.DrawArrays(gl.LINES, 0, b.count)
}

func (b *batch) delete() {
	gl.DeleteBuffers(1, &b.vbo)
	gl.DeleteVertexArrays(1, &b.vao)
}

// Renderer owns the shader program and vertex buffers.
type Renderer struct {
	program *program

	axes     batch
	axisLine batch
	object   batch

	lastAxis quat.Vector3
}

// New compiles the shaders and uploads the static geometry.
func New(object mesh.Lines) (*Renderer, error) {
	prog, err := newProgram()
	if err != nil {
		return nil, fmt.Errorf("shader program: %w", err)
	}

	r := &Renderer{program: prog}
	r.axes = newBatch(prog.position, mesh.Axes(mesh.AxisExtent), gl.STATIC_DRAW)
	r.axisLine = newBatch(prog.position, mesh.AxisLine(r.lastAxis, mesh.AxisExtent), gl.DYNAMIC_DRAW)
	r.object = newBatch(prog.position, object, gl.STATIC_DRAW)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(1, 1, 1, 1)

	return r, nil
}

// Draw renders one frame of s into a width x height framebuffer.
func (r *Renderer) Draw(s *scene.State, width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if s.Axis != r.lastAxis {
		r.axisLine.upload(mesh.AxisLine(s.Axis, mesh.AxisExtent), gl.DYNAMIC_DRAW)
		r.lastAxis = s.Axis
	}

	viewProj := scene.Projection(width, height).Mul4(s.View())

	r.program.set(viewProj, black)
	r.axes.draw()

	r.program.set(viewProj, red)
	r.axisLine.draw()

	mvp := viewProj.Mul4(s.Model())
	r.program.set(mvp, red)
	r.object.draw()
}

// Delete releases the GL objects.
func (r *Renderer) Delete() {
	r.axes.delete()
	r.axisLine.delete()
	r.object.delete()
	r.program.delete()
}

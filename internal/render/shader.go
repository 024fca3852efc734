package render

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	vertexShaderSource = `
		#version 410
		in vec3 vp;
		uniform mat4 mvp;
		void main() {
			gl_Position = mvp * vec4(vp, 1.0);
		}
	` + "\x00"

	fragmentShaderSource = `
		#version 410
		uniform vec3 colour;
		out vec4 frag_colour;
		void main() {
			frag_colour = vec4(colour, 1);
		}
	` + "\x00"
)

// program is the linked line shader with its resolved locations.
type program struct {
	id       uint32
	mvp      int32
	colour   int32
	position uint32
}

func newProgram() (*program, error) {
	vertexShader, err := compileShader("vertex", vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return nil, err
	}
	fragmentShader, err := compileShader("fragment", fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return nil, err
	}

	id := gl.CreateProgram()
	gl.AttachShader(id, vertexShader)
	gl.AttachShader(id, fragmentShader)
	gl.LinkProgram(id)

	// The linked program keeps its own copy.
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		log := infoLog(id, gl.GetProgramiv, gl.GetProgramInfoLog)
		gl.DeleteProgram(id)
		return nil, fmt.Errorf("failed to link program: %v", log)
	}

	p := &program{id: id}
	if p.mvp, err = p.uniform("mvp"); err != nil {
		p.delete()
		return nil, err
	}
	if p.colour, err = p.uniform("colour"); err != nil {
		p.delete()
		return nil, err
	}
	attrib := gl.GetAttribLocation(id, gl.Str("vp\x00"))
	if attrib < 0 {
		p.delete()
		return nil, fmt.Errorf("attribute vp not found")
	}
	p.position = uint32(attrib)

	return p, nil
}

func (p *program) uniform(name string) (int32, error) {
	loc := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	if loc < 0 {
		return 0, fmt.Errorf("uniform %s not found", name)
	}
	return loc, nil
}

// set binds the program and loads the transform and line colour for the
// next draw call.
func (p *program) set(mvp mgl32.Mat4, colour mgl32.Vec3) {
	gl.UseProgram(p.id)
	gl.UniformMatrix4fv(p.mvp, 1, false, &mvp[0])
	gl.Uniform3fv(p.colour, 1, &colour[0])
}

func (p *program) delete() {
	gl.DeleteProgram(p.id)
}

func compileShader(kind, source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		log := infoLog(shader, gl.GetShaderiv, gl.GetShaderInfoLog)
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("failed to compile %s shader: %v", kind, log)
	}

	return shader, nil
}

// infoLog reads the driver log of a shader or program object.
func infoLog(object uint32, getiv func(uint32, uint32, *int32), getLog func(uint32, int32, *int32, *uint8)) string {
	var logLength int32
	getiv(object, gl.INFO_LOG_LENGTH, &logLength)

	log := strings.Repeat("\x00", int(logLength+1))
	getLog(object, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

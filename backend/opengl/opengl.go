// Package opengl implements backend.API over OpenGL 4.1 core.
package opengl

import (
	"log"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/pkg/errors"

	"github.com/rowan3d/rowan/backend"
)

type API struct{}

// New initializes the OpenGL bindings. A context must be current on
// the calling thread.
func New() (*API, error) {
	if err := gl.Init(); err != nil {
		return nil, errors.Wrap(err, "initialize opengl")
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)

	gl.FrontFace(gl.CCW)
	gl.CullFace(gl.BACK)
	gl.Enable(gl.CULL_FACE)

	return &API{}, nil
}

// programs

func (a *API) CompileProgram(vertexSrc, fragmentSrc string) (backend.Program, error) {
	vs, err := compileShader(gl.VERTEX_SHADER, vertexSrc)
	if err != nil {
		return 0, errors.Wrap(err, "vertex shader")
	}
	defer gl.DeleteShader(vs)

	fs, err := compileShader(gl.FRAGMENT_SHADER, fragmentSrc)
	if err != nil {
		return 0, errors.Wrap(err, "fragment shader")
	}
	defer gl.DeleteShader(fs)

	id := gl.CreateProgram()
	gl.AttachShader(id, vs)
	gl.AttachShader(id, fs)
	gl.LinkProgram(id)

	var linked int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &linked)
	if linked == gl.FALSE {
		var logSize int32
		gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &logSize)
		buf := make([]uint8, logSize+1)
		gl.GetProgramInfoLog(id, int32(len(buf)), &logSize, &buf[0])
		infoLog := string(buf[:logSize])
		log.Printf("[opengl] failed to link program:\n%s", infoLog)

		gl.DeleteProgram(id)
		return 0, errors.Errorf("failed to link program: %q", infoLog)
	}

	return backend.Program(id), nil
}

func compileShader(xtype uint32, src string) (uint32, error) {
	shader := gl.CreateShader(xtype)

	csource, free := gl.Strs(src + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var compiled int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &compiled)
	if compiled == gl.FALSE {
		var logSize int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logSize)
		buf := make([]uint8, logSize+1)
		gl.GetShaderInfoLog(shader, int32(len(buf)), &logSize, &buf[0])
		infoLog := string(buf[:logSize])
		log.Printf("[opengl] failed to compile shader:\n%s", infoLog)

		gl.DeleteShader(shader)
		return 0, errors.Errorf("failed to compile shader: %q", infoLog)
	}

	return shader, nil
}

func (a *API) UseProgram(p backend.Program) {
	gl.UseProgram(uint32(p))
}

func (a *API) DeleteProgram(p backend.Program) {
	gl.DeleteProgram(uint32(p))
}

// variable lookup

func (a *API) UniformLocation(p backend.Program, name string) backend.Location {
	return backend.Location(gl.GetUniformLocation(uint32(p), gl.Str(name+"\x00")))
}

func (a *API) AttributeLocation(p backend.Program, name string) backend.Location {
	return backend.Location(gl.GetAttribLocation(uint32(p), gl.Str(name+"\x00")))
}

// uniform uploads

func (a *API) UniformInt(l backend.Location, v int32) {
	gl.Uniform1i(int32(l), v)
}

func (a *API) UniformFloat(l backend.Location, v float32) {
	gl.Uniform1f(int32(l), v)
}

func (a *API) UniformVec2(l backend.Location, v [2]float32) {
	gl.Uniform2f(int32(l), v[0], v[1])
}

func (a *API) UniformVec3(l backend.Location, v [3]float32) {
	gl.Uniform3f(int32(l), v[0], v[1], v[2])
}

func (a *API) UniformVec4(l backend.Location, v [4]float32) {
	gl.Uniform4f(int32(l), v[0], v[1], v[2], v[3])
}

func (a *API) UniformMat4(l backend.Location, v [16]float32) {
	// row-major input, let GL transpose
	gl.UniformMatrix4fv(int32(l), 1, true, &v[0])
}

// buffers

func (a *API) CreateBuffer() backend.Buffer {
	var b uint32
	gl.GenBuffers(1, &b)
	return backend.Buffer(b)
}

func (a *API) DeleteBuffer(b backend.Buffer) {
	id := uint32(b)
	gl.DeleteBuffers(1, &id)
}

func (a *API) BufferData(b backend.Buffer, data []float32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(b))
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
}

func (a *API) AttributePointer(l backend.Location, components int) {
	gl.VertexAttribPointer(uint32(l), int32(components), gl.FLOAT, false, 0, nil)
	gl.EnableVertexAttribArray(uint32(l))
}

// vertex arrays

func (a *API) CreateVertexArray() backend.VertexArray {
	var v uint32
	gl.GenVertexArrays(1, &v)
	return backend.VertexArray(v)
}

func (a *API) BindVertexArray(v backend.VertexArray) {
	gl.BindVertexArray(uint32(v))
}

func (a *API) DeleteVertexArray(v backend.VertexArray) {
	id := uint32(v)
	gl.DeleteVertexArrays(1, &id)
}

// frame

func (a *API) ClearColor(r, g, b, alpha float32) {
	gl.ClearColor(r, g, b, alpha)
}

func (a *API) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (a *API) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (a *API) LineWidth(w float32) {
	gl.LineWidth(w)
}

func (a *API) Draw(mode backend.DrawMode, vertexCount int) {
	gl.DrawArrays(drawMode(mode), 0, int32(vertexCount))
}

func drawMode(mode backend.DrawMode) uint32 {
	switch mode {
	case backend.Lines:
		return gl.LINES
	case backend.Points:
		return gl.POINTS
	default:
		return gl.TRIANGLES
	}
}

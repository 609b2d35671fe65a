package engine

import (
	_ "embed"

	"github.com/pkg/errors"

	"github.com/rowan3d/rowan/backend"
	"github.com/rowan3d/rowan/math"
)

//go:embed shaders/basic.vert
var basicVertexShader string

//go:embed shaders/basic.frag
var basicFragmentShader string

// Material couples a shader program with its named uniforms and draw
// settings. The program is compiled and the uniforms located lazily
// on the first frame a mesh using it is rendered.
type Material struct {
	vertexSrc   string
	fragmentSrc string

	program  backend.Program
	compiled bool

	uniforms map[string]*Uniform
	order    []string

	drawMode  backend.DrawMode
	lineWidth float32
}

func NewMaterial(vertexSrc, fragmentSrc string) *Material {
	return &Material{
		vertexSrc:   vertexSrc,
		fragmentSrc: fragmentSrc,
		uniforms:    make(map[string]*Uniform),
		drawMode:    backend.Triangles,
	}
}

// NewBasicMaterial is the embedded color shader pair with the three
// matrix uniforms every mesh needs plus a baseColor tint.
func NewBasicMaterial() *Material {
	m := NewMaterial(basicVertexShader, basicFragmentShader)

	// the declared kinds are fixed here, construction cannot fail
	must := func(err error) {
		if err != nil {
			panic(err)
		}
	}

	must(m.AddUniform("modelMatrix", KindMat4, math.Identity()))
	must(m.AddUniform("viewMatrix", KindMat4, math.Identity()))
	must(m.AddUniform("projectionMatrix", KindMat4, math.Identity()))
	must(m.AddUniform("baseColor", KindVec3, math.Vector{1, 1, 1, 0}))

	return m
}

// AddUniform declares a named uniform with its kind and initial
// value.
func (m *Material) AddUniform(name string, kind Kind, value interface{}) error {
	u, err := NewUniform(kind, value)
	if err != nil {
		return errors.Wrapf(err, "material uniform %q", name)
	}

	if _, exists := m.uniforms[name]; !exists {
		m.order = append(m.order, name)
	}
	m.uniforms[name] = u

	return nil
}

// SetUniform reassigns a declared uniform, validating the payload
// against its kind.
func (m *Material) SetUniform(name string, value interface{}) error {
	u, ok := m.uniforms[name]
	if !ok {
		return errors.Errorf("material: unknown uniform %q", name)
	}

	return u.Set(value)
}

func (m *Material) Uniform(name string) *Uniform {
	return m.uniforms[name]
}

func (m *Material) Program() backend.Program {
	return m.program
}

func (m *Material) SetDrawMode(mode backend.DrawMode) {
	m.drawMode = mode
}

func (m *Material) SetLineWidth(w float32) {
	m.lineWidth = w
}

func (m *Material) bind(api backend.API) error {
	if m.compiled {
		return nil
	}

	p, err := api.CompileProgram(m.vertexSrc, m.fragmentSrc)
	if err != nil {
		return errors.Wrap(err, "material program")
	}
	m.program = p
	m.compiled = true

	for _, name := range m.order {
		if err := m.uniforms[name].Locate(api, p, name); err != nil {
			return err
		}
	}

	return nil
}

func (m *Material) uploadUniforms(api backend.API) error {
	for _, name := range m.order {
		if err := m.uniforms[name].Upload(api); err != nil {
			return errors.Wrapf(err, "uniform %q", name)
		}
	}

	return nil
}

func (m *Material) Dispose(api backend.API) {
	if m.compiled {
		api.DeleteProgram(m.program)
		m.compiled = false
	}
}

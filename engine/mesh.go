package engine

import (
	"github.com/pkg/errors"

	"github.com/rowan3d/rowan/backend"
	"github.com/rowan3d/rowan/math"
)

// Mesh couples a geometry and a material into one drawable scene
// node. GPU state (program, vertex array, attribute buffers) is set
// up on the first render and the attributes are uploaded exactly
// once, uniforms go up every frame.
type Mesh struct {
	Node

	geometry *Geometry
	material *Material

	vao   backend.VertexArray
	bound bool

	visible bool
}

func NewMesh(geometry *Geometry, material *Material) *Mesh {
	m := &Mesh{
		geometry: geometry,
		material: material,
		visible:  true,
	}
	m.Node.init(m, "mesh")

	return m
}

func (m *Mesh) Geometry() *Geometry {
	return m.geometry
}

func (m *Mesh) Material() *Material {
	return m.material
}

func (m *Mesh) Visible() bool {
	return m.visible
}

func (m *Mesh) SetVisible(v bool) {
	m.visible = v
}

func (m *Mesh) bind(api backend.API) error {
	if err := m.material.bind(api); err != nil {
		return err
	}

	m.vao = api.CreateVertexArray()
	api.BindVertexArray(m.vao)

	if err := m.geometry.bind(api, m.material.Program()); err != nil {
		return err
	}

	m.bound = true
	return nil
}

// Render uploads the model/view/projection matrices and all material
// uniforms, then issues the draw call.
func (m *Mesh) Render(api backend.API, view, projection math.Matrix) error {
	if !m.bound {
		if err := m.bind(api); err != nil {
			return errors.Wrapf(err, "bind mesh %q", m.Name())
		}
	}

	api.UseProgram(m.material.Program())

	if err := m.material.SetUniform("modelMatrix", m.WorldMatrix()); err != nil {
		return err
	}
	if err := m.material.SetUniform("viewMatrix", view); err != nil {
		return err
	}
	if err := m.material.SetUniform("projectionMatrix", projection); err != nil {
		return err
	}

	if err := m.material.uploadUniforms(api); err != nil {
		return err
	}

	api.BindVertexArray(m.vao)
	if m.material.lineWidth > 0 {
		api.LineWidth(m.material.lineWidth)
	}
	api.Draw(m.material.drawMode, m.geometry.VertexCount())

	return nil
}

func (m *Mesh) Dispose(api backend.API) {
	if m.bound {
		api.DeleteVertexArray(m.vao)
		m.bound = false
	}
	m.geometry.Dispose(api)
	m.material.Dispose(api)
}

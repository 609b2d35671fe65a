// Package backendtest provides an in-memory backend.API that records
// every upload and draw call, so binding and renderer behavior can be
// tested without a GL context.
package backendtest

import (
	"fmt"

	"github.com/rowan3d/rowan/backend"
)

// Call is one recorded API invocation.
type Call struct {
	Op       string
	Location backend.Location
	Value    interface{}
}

type program struct {
	uniforms   map[string]backend.Location
	attributes map[string]backend.Location
}

type API struct {
	Calls []Call

	programs     map[backend.Program]*program
	nextProgram  backend.Program
	compiled     backend.Program
	nextBuffer   backend.Buffer
	nextArray    backend.VertexArray
	nextLocation backend.Location

	buffers map[backend.Buffer][]float32

	BoundArray   backend.VertexArray
	UsedProgram  backend.Program
	DrawCalls    int
	DrawnVerts   int
	ClearCalls   int
	FailCompiles bool
}

func New() *API {
	return &API{
		programs: make(map[backend.Program]*program),
		buffers:  make(map[backend.Buffer][]float32),
	}
}

// NewProgram registers a fake shader program declaring the given
// uniform and attribute names. CompileProgram hands out registered
// programs in order.
func (a *API) NewProgram(uniforms, attributes []string) backend.Program {
	a.nextProgram++
	p := &program{
		uniforms:   make(map[string]backend.Location),
		attributes: make(map[string]backend.Location),
	}

	for _, n := range uniforms {
		a.nextLocation++
		p.uniforms[n] = a.nextLocation
	}
	for _, n := range attributes {
		a.nextLocation++
		p.attributes[n] = a.nextLocation
	}

	a.programs[a.nextProgram] = p
	return a.nextProgram
}

func (a *API) record(op string, l backend.Location, v interface{}) {
	a.Calls = append(a.Calls, Call{Op: op, Location: l, Value: v})
}

// CallsOf filters the recorded calls by op name.
func (a *API) CallsOf(op string) []Call {
	var r []Call
	for _, c := range a.Calls {
		if c.Op == op {
			r = append(r, c)
		}
	}
	return r
}

// programs

func (a *API) CompileProgram(vertexSrc, fragmentSrc string) (backend.Program, error) {
	if a.FailCompiles {
		return 0, fmt.Errorf("backendtest: compile disabled")
	}

	// compile yields the registered programs in order, then empty ones
	if a.compiled < a.nextProgram {
		a.compiled++
		return a.compiled, nil
	}

	a.compiled = a.NewProgram(nil, nil)
	return a.compiled, nil
}

func (a *API) UseProgram(p backend.Program) {
	a.UsedProgram = p
}

func (a *API) DeleteProgram(p backend.Program) {
	delete(a.programs, p)
}

func (a *API) UniformLocation(p backend.Program, name string) backend.Location {
	if prg, ok := a.programs[p]; ok {
		if l, ok := prg.uniforms[name]; ok {
			return l
		}
	}
	return backend.LocationNone
}

func (a *API) AttributeLocation(p backend.Program, name string) backend.Location {
	if prg, ok := a.programs[p]; ok {
		if l, ok := prg.attributes[name]; ok {
			return l
		}
	}
	return backend.LocationNone
}

// uniform uploads

func (a *API) UniformInt(l backend.Location, v int32) {
	a.record("UniformInt", l, v)
}

func (a *API) UniformFloat(l backend.Location, v float32) {
	a.record("UniformFloat", l, v)
}

func (a *API) UniformVec2(l backend.Location, v [2]float32) {
	a.record("UniformVec2", l, v)
}

func (a *API) UniformVec3(l backend.Location, v [3]float32) {
	a.record("UniformVec3", l, v)
}

func (a *API) UniformVec4(l backend.Location, v [4]float32) {
	a.record("UniformVec4", l, v)
}

func (a *API) UniformMat4(l backend.Location, v [16]float32) {
	a.record("UniformMat4", l, v)
}

// buffers

func (a *API) CreateBuffer() backend.Buffer {
	a.nextBuffer++
	a.buffers[a.nextBuffer] = nil
	return a.nextBuffer
}

func (a *API) DeleteBuffer(b backend.Buffer) {
	delete(a.buffers, b)
}

func (a *API) BufferData(b backend.Buffer, data []float32) {
	a.buffers[b] = append([]float32(nil), data...)
	a.record("BufferData", 0, len(data))
}

// BufferContents returns the last data uploaded to a buffer.
func (a *API) BufferContents(b backend.Buffer) []float32 {
	return a.buffers[b]
}

func (a *API) AttributePointer(l backend.Location, components int) {
	a.record("AttributePointer", l, components)
}

// vertex arrays

func (a *API) CreateVertexArray() backend.VertexArray {
	a.nextArray++
	return a.nextArray
}

func (a *API) BindVertexArray(v backend.VertexArray) {
	a.BoundArray = v
}

func (a *API) DeleteVertexArray(v backend.VertexArray) {}

// frame

func (a *API) ClearColor(r, g, b, alpha float32) {}

func (a *API) Clear() {
	a.ClearCalls++
}

func (a *API) Viewport(width, height int) {}

func (a *API) LineWidth(w float32) {}

func (a *API) Draw(mode backend.DrawMode, vertexCount int) {
	a.DrawCalls++
	a.DrawnVerts += vertexCount
}

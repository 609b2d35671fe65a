/*
	backend defines the graphics API surface the engine consumes:
	shader-variable lookup by name, per-kind data uploads, buffer and
	vertex-array management and draw-call issuance. The engine never
	talks to OpenGL directly, it goes through this interface so tests
	can substitute a recording fake.
*/
package backend

// Handles are owned by the underlying graphics context, holders issue
// matched create/delete calls but do not manage lifetime beyond that.
type (
	Program     uint32
	Buffer      uint32
	VertexArray uint32
	Location    int32
)

// LocationNone is the "variable not found" sentinel returned by
// variable lookups.
const LocationNone Location = -1

type DrawMode int

const (
	Triangles DrawMode = iota
	Lines
	Points
)

type API interface {
	// programs
	CompileProgram(vertexSrc, fragmentSrc string) (Program, error)
	UseProgram(Program)
	DeleteProgram(Program)

	// shader-variable lookup, LocationNone if the program has no
	// variable of that name
	UniformLocation(p Program, name string) Location
	AttributeLocation(p Program, name string) Location

	// per-draw uniform uploads
	UniformInt(l Location, v int32)
	UniformFloat(l Location, v float32)
	UniformVec2(l Location, v [2]float32)
	UniformVec3(l Location, v [3]float32)
	UniformVec4(l Location, v [4]float32)
	// UniformMat4 takes row-major data, implementations transpose as
	// required by their API.
	UniformMat4(l Location, v [16]float32)

	// per-vertex attribute storage
	CreateBuffer() Buffer
	DeleteBuffer(Buffer)
	BufferData(b Buffer, data []float32)
	AttributePointer(l Location, components int)

	CreateVertexArray() VertexArray
	BindVertexArray(VertexArray)
	DeleteVertexArray(VertexArray)

	// frame
	ClearColor(r, g, b, a float32)
	Clear()
	Viewport(width, height int)
	LineWidth(w float32)
	Draw(mode DrawMode, vertexCount int)
}

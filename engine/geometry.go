package engine

import (
	stdmath "math"

	"github.com/pkg/errors"

	"github.com/rowan3d/rowan/backend"
)

// Geometry is a named set of attribute channels sharing one vertex
// count, taken from the first channel added.
type Geometry struct {
	attributes map[string]*Attribute
	order      []string

	vertexCount int
}

func NewGeometry() *Geometry {
	return &Geometry{
		attributes: make(map[string]*Attribute),
	}
}

func (g *Geometry) AddAttribute(name string, kind Kind, data []float32) error {
	a, err := NewAttribute(kind, data)
	if err != nil {
		return errors.Wrapf(err, "geometry attribute %q", name)
	}

	if len(g.order) == 0 {
		g.vertexCount = a.Count()
	} else if a.Count() != g.vertexCount {
		return errors.Wrapf(ErrKindMismatch,
			"geometry attribute %q has %d vertices, want %d", name, a.Count(), g.vertexCount)
	}

	if _, exists := g.attributes[name]; !exists {
		g.order = append(g.order, name)
	}
	g.attributes[name] = a

	return nil
}

func (g *Geometry) Attribute(name string) *Attribute {
	return g.attributes[name]
}

func (g *Geometry) AttributeNames() []string {
	return g.order
}

func (g *Geometry) VertexCount() int {
	return g.vertexCount
}

// bind locates every channel against the program and uploads it
// once, inside the caller's vertex-array binding.
func (g *Geometry) bind(api backend.API, p backend.Program) error {
	for _, name := range g.order {
		a := g.attributes[name]

		if err := a.Locate(api, p, name); err != nil {
			return err
		}
		if err := a.Upload(api); err != nil {
			return err
		}
	}

	return nil
}

func (g *Geometry) Dispose(api backend.API) {
	for _, a := range g.attributes {
		a.Dispose(api)
	}
}

var faceColors = [6][3]float32{
	{1, 0, 0},
	{0.5, 0, 0},
	{0, 1, 0},
	{0, 0.5, 0},
	{0, 0, 1},
	{0, 0, 0.5},
}

// NewBoxGeometry builds an axis-aligned cube around the origin with
// vertexPosition and vertexColor channels, one color per face.
func NewBoxGeometry(size float64) (*Geometry, error) {
	h := float32(size / 2)

	corners := [8][3]float32{
		{-h, -h, -h}, {h, -h, -h}, {h, h, -h}, {-h, h, -h},
		{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h},
	}

	// CCW seen from outside
	faces := [6][4]int{
		{5, 4, 7, 6}, // +z
		{0, 1, 2, 3}, // -z
		{1, 5, 6, 2}, // +x
		{4, 0, 3, 7}, // -x
		{3, 2, 6, 7}, // +y
		{4, 5, 1, 0}, // -y
	}

	positions := make([]float32, 0, 36*3)
	colors := make([]float32, 0, 36*3)

	for fi, f := range faces {
		for _, i := range [6]int{f[0], f[1], f[2], f[0], f[2], f[3]} {
			positions = append(positions, corners[i][0], corners[i][1], corners[i][2])
			colors = append(colors, faceColors[fi][0], faceColors[fi][1], faceColors[fi][2])
		}
	}

	return assemble(positions, colors)
}

// NewPlaneGeometry builds a two-triangle quad in the xy plane.
func NewPlaneGeometry(width, height float64) (*Geometry, error) {
	w := float32(width / 2)
	h := float32(height / 2)

	corners := [4][3]float32{
		{-w, -h, 0}, {w, -h, 0}, {w, h, 0}, {-w, h, 0},
	}

	positions := make([]float32, 0, 6*3)
	colors := make([]float32, 0, 6*3)

	for _, i := range [6]int{0, 1, 2, 0, 2, 3} {
		positions = append(positions, corners[i][0], corners[i][1], corners[i][2])
		colors = append(colors, 0.8, 0.8, 0.8)
	}

	return assemble(positions, colors)
}

// NewSphereGeometry builds a latitude/longitude sphere, colors taken
// from the surface normal.
func NewSphereGeometry(radius float64, widthSegments, heightSegments int) (*Geometry, error) {
	if widthSegments < 3 {
		widthSegments = 3
	}
	if heightSegments < 2 {
		heightSegments = 2
	}

	point := func(u, v float64) [3]float32 {
		theta := u * 2 * stdmath.Pi
		phi := v * stdmath.Pi

		return [3]float32{
			float32(radius * stdmath.Sin(phi) * stdmath.Cos(theta)),
			float32(radius * stdmath.Cos(phi)),
			float32(radius * stdmath.Sin(phi) * stdmath.Sin(theta)),
		}
	}

	positions := make([]float32, 0, widthSegments*heightSegments*6*3)
	colors := make([]float32, 0, widthSegments*heightSegments*6*3)

	push := func(p [3]float32) {
		positions = append(positions, p[0], p[1], p[2])
		r := float32(radius)
		colors = append(colors, p[0]/r/2+0.5, p[1]/r/2+0.5, p[2]/r/2+0.5)
	}

	for y := 0; y < heightSegments; y++ {
		for x := 0; x < widthSegments; x++ {
			u0 := float64(x) / float64(widthSegments)
			u1 := float64(x+1) / float64(widthSegments)
			v0 := float64(y) / float64(heightSegments)
			v1 := float64(y+1) / float64(heightSegments)

			a := point(u0, v0)
			b := point(u1, v0)
			c := point(u1, v1)
			d := point(u0, v1)

			push(a)
			push(c)
			push(b)
			push(a)
			push(d)
			push(c)
		}
	}

	return assemble(positions, colors)
}

func assemble(positions, colors []float32) (*Geometry, error) {
	g := NewGeometry()

	if err := g.AddAttribute("vertexPosition", KindVec3, positions); err != nil {
		return nil, err
	}
	if err := g.AddAttribute("vertexColor", KindVec3, colors); err != nil {
		return nil, err
	}

	return g, nil
}

package engine

import (
	"time"

	"github.com/pkg/errors"

	"github.com/rowan3d/rowan/backend"
)

// Stats describes the last rendered frame.
type Stats struct {
	Frames   uint64
	Meshes   int
	Duration time.Duration
}

// Renderer walks a scene once per frame and draws every visible
// mesh. It fails on the first error, nothing is skipped silently.
type Renderer struct {
	api backend.API

	stats Stats
}

func NewRenderer(api backend.API) *Renderer {
	return &Renderer{api: api}
}

func (r *Renderer) SetClearColor(red, green, blue float64) {
	r.api.ClearColor(float32(red), float32(green), float32(blue), 1)
}

func (r *Renderer) SetViewport(width, height int) {
	r.api.Viewport(width, height)
}

func (r *Renderer) Render(scene *Scene, camera *Camera) error {
	start := time.Now()

	view, err := camera.ViewMatrix()
	if err != nil {
		return err
	}
	projection := camera.ProjectionMatrix()

	r.api.Clear()

	meshes := 0
	for _, obj := range scene.Descendants() {
		mesh, ok := obj.(*Mesh)
		if !ok || !mesh.Visible() {
			continue
		}

		if err := mesh.Render(r.api, view, projection); err != nil {
			return errors.Wrapf(err, "render mesh %q", mesh.Name())
		}
		meshes++
	}

	r.stats = Stats{
		Frames:   r.stats.Frames + 1,
		Meshes:   meshes,
		Duration: time.Since(start),
	}

	return nil
}

func (r *Renderer) Stats() Stats {
	return r.stats
}

// Dispose releases the GPU resources of every mesh in the scene.
func (r *Renderer) Dispose(scene *Scene) {
	for _, obj := range scene.Descendants() {
		if mesh, ok := obj.(*Mesh); ok {
			mesh.Dispose(r.api)
		}
	}
}

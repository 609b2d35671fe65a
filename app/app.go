// Package app is the window and frame-loop shell around the engine:
// GLFW context creation, input polling and the per-frame cadence.
package app

import (
	"runtime"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"

	"github.com/rowan3d/rowan/backend"
	"github.com/rowan3d/rowan/backend/opengl"
	"github.com/rowan3d/rowan/config"
	"github.com/rowan3d/rowan/engine"
)

func init() {
	// the GL context is bound to the main thread
	runtime.LockOSThread()
}

type App struct {
	window   *glfw.Window
	api      *opengl.API
	renderer *engine.Renderer

	width  int
	height int
}

func New(cfg config.Config) (*App, error) {
	if err := glfw.Init(); err != nil {
		return nil, errors.Wrap(err, "initialize glfw")
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.Samples, 4)

	window, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, errors.Wrap(err, "create window")
	}

	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	api, err := opengl.New()
	if err != nil {
		glfw.Terminate()
		return nil, err
	}

	a := &App{
		window:   window,
		api:      api,
		renderer: engine.NewRenderer(api),
	}

	a.renderer.SetClearColor(cfg.ClearColor[0], cfg.ClearColor[1], cfg.ClearColor[2])

	window.SetFramebufferSizeCallback(a.onResize)
	w, h := window.GetFramebufferSize()
	a.onResize(window, w, h)

	return a, nil
}

func (a *App) onResize(window *glfw.Window, w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	a.width = w
	a.height = h
	a.renderer.SetViewport(w, h)
}

func (a *App) Window() *glfw.Window {
	return a.window
}

func (a *App) API() backend.API {
	return a.api
}

func (a *App) Renderer() *engine.Renderer {
	return a.renderer
}

func (a *App) AspectRatio() float64 {
	return float64(a.width) / float64(a.height)
}

func (a *App) Running() bool {
	return !a.window.ShouldClose()
}

func (a *App) Quit() {
	a.window.SetShouldClose(true)
}

// Run drives the frame loop until the window closes or a frame
// fails.
func (a *App) Run(frame func(dt float64) error) error {
	last := time.Now()

	for a.Running() {
		now := time.Now()
		dt := now.Sub(last).Seconds()
		last = now

		if err := frame(dt); err != nil {
			return err
		}

		a.window.SwapBuffers()
		glfw.PollEvents()
	}

	return nil
}

func (a *App) Terminate() {
	glfw.Terminate()
}

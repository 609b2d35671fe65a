package app

import (
	stdmath "math"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/rowan3d/rowan/engine"
	"github.com/rowan3d/rowan/math"
)

// OrbitControl moves a camera on a sphere around a target point,
// driven by mouse drag and scroll.
type OrbitControl struct {
	camera *engine.Camera
	target math.Vector

	radius float64
	theta  float64
	phi    float64

	dragging   bool
	lastX      float64
	lastY      float64
	hasLastPos bool
}

func NewOrbitControl(camera *engine.Camera, window *glfw.Window) *OrbitControl {
	c := &OrbitControl{
		camera: camera,
		radius: 10,
		theta:  math.Pi / 4,
		phi:    math.Pi / 3,
	}

	window.SetMouseButtonCallback(c.onMouseButton)
	window.SetCursorPosCallback(c.onMouseMove)
	window.SetScrollCallback(c.onScroll)

	c.apply()
	return c
}

func (c *OrbitControl) SetTarget(target math.Vector) {
	c.target = target
	c.apply()
}

func (c *OrbitControl) onMouseButton(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	if button != glfw.MouseButtonLeft {
		return
	}

	c.dragging = action == glfw.Press
	c.hasLastPos = false
}

func (c *OrbitControl) onMouseMove(w *glfw.Window, x, y float64) {
	if !c.dragging {
		return
	}

	if c.hasLastPos {
		c.theta -= (x - c.lastX) * 0.01
		c.phi -= (y - c.lastY) * 0.01
		c.phi = stdmath.Max(0.01, stdmath.Min(math.Pi-0.01, c.phi))
	}

	c.lastX = x
	c.lastY = y
	c.hasLastPos = true
	c.apply()
}

func (c *OrbitControl) onScroll(w *glfw.Window, xoff, yoff float64) {
	c.radius = stdmath.Max(1, c.radius-yoff)
	c.apply()
}

func (c *OrbitControl) apply() {
	eye := math.Vector{
		c.target[0] + c.radius*stdmath.Sin(c.phi)*stdmath.Cos(c.theta),
		c.target[1] + c.radius*stdmath.Cos(c.phi),
		c.target[2] + c.radius*stdmath.Sin(c.phi)*stdmath.Sin(c.theta),
		1,
	}

	c.camera.SetTransform(math.LookAt(eye, c.target, math.Vector{0, 1, 0, 0}))
}

package engine

import (
	"github.com/pkg/errors"

	"github.com/rowan3d/rowan/math"
)

// Camera is a scene node with a projection matrix, fixed at
// construction. Its world matrix says where the camera is, the view
// matrix moves the world the opposite way to compensate.
type Camera struct {
	Node

	projection math.Matrix
}

// NewCamera builds a perspective camera. fovy is the vertical field
// of view in degrees.
func NewCamera(fovy, aspect, near, far float64) *Camera {
	c := &Camera{
		projection: math.Perspective(fovy, aspect, near, far),
	}
	c.Node.init(c, "camera")

	return c
}

func (c *Camera) ProjectionMatrix() math.Matrix {
	return c.projection
}

// ViewMatrix is the inverse of the camera world matrix. A degenerate
// world transform, say a zero scale on an ancestor, makes it
// singular and is a caller error.
func (c *Camera) ViewMatrix() (math.Matrix, error) {
	view, err := c.WorldMatrix().Inverse()
	if err != nil {
		return math.Identity(), errors.Wrapf(err, "view matrix of camera %q", c.Name())
	}

	return view, nil
}

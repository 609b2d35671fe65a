package engine

import (
	"github.com/pkg/errors"
)

// Scene is the tree root. It structurally refuses to acquire a
// parent, the root invariant is enforced at assignment time.
type Scene struct {
	Node
}

func NewScene() *Scene {
	s := &Scene{}
	s.Node.init(s, "scene")

	return s
}

func (s *Scene) SetParent(p Object) error {
	if p == nil {
		return nil
	}

	return errors.Wrapf(ErrSceneParent, "scene %q", s.Name())
}

// Group carries no geometry, it exists as a shared transform anchor
// for its children.
type Group struct {
	Node
}

func NewGroup() *Group {
	g := &Group{}
	g.Node.init(g, "group")

	return g
}

package engine

import (
	"github.com/pkg/errors"

	"github.com/rowan3d/rowan/math"
)

// Object is anything that lives in the scene tree. Ownership runs
// strictly parent to children, the parent reference is a non-owning
// back-pointer.
type Object interface {
	Name() string
	SetName(string)

	Transform() math.Matrix
	SetTransform(math.Matrix)
	WorldMatrix() math.Matrix

	Parent() Object
	// SetParent enforces the attach state machine: a node with a
	// parent must be detached (SetParent(nil)) before it can be
	// attached elsewhere. Add and Remove keep both sides consistent,
	// call those instead.
	SetParent(Object) error
	Children() []Object
	Descendants() []Object
	Add(Object) error
	Remove(Object) error

	ApplyMatrix(m math.Matrix, local bool)
	Translate(x, y, z float64, local bool)
	RotateX(angle float64, local bool)
	RotateY(angle float64, local bool)
	RotateZ(angle float64, local bool)
	Scale(factor float64, local bool)

	Position() math.Vector
	SetPosition(math.Vector)
	WorldPosition() math.Vector
}

// Node is the base Object implementation, embedded by Group, Scene,
// Camera and Mesh. outer points at the embedding type so identity
// checks and parent assignment honor the wrapper, not the embedded
// Node.
type Node struct {
	outer Object

	name      string
	transform math.Matrix

	parent   Object
	children []Object
}

func (n *Node) init(outer Object, name string) {
	n.outer = outer
	n.name = name
	n.transform = math.Identity()
}

func (n *Node) self() Object {
	if n.outer != nil {
		return n.outer
	}

	return n
}

func (n *Node) Name() string {
	return n.name
}

func (n *Node) SetName(name string) {
	n.name = name
}

func (n *Node) Transform() math.Matrix {
	return n.transform
}

func (n *Node) SetTransform(m math.Matrix) {
	n.transform = m
}

// WorldMatrix composes the local transform through the ancestor
// chain, the recursion terminates at a parentless node. Bounded by
// tree height, the no-cycle invariant holds by construction.
func (n *Node) WorldMatrix() math.Matrix {
	if n.parent == nil {
		return n.transform
	}

	return n.parent.WorldMatrix().Mul(n.transform)
}

func (n *Node) Parent() Object {
	return n.parent
}

func (n *Node) SetParent(p Object) error {
	if n.parent != nil && p != nil {
		return errors.Wrapf(ErrParentAlreadySet, "node %q", n.name)
	}

	n.parent = p
	return nil
}

func (n *Node) Children() []Object {
	return n.children
}

// Descendants returns the node itself followed by its subtree in
// depth-first order, recomputed per call.
func (n *Node) Descendants() []Object {
	r := []Object{n.self()}
	for _, c := range n.children {
		r = append(r, c.Descendants()...)
	}

	return r
}

// Add attaches child below this node. A child that already has a
// parent is not silently moved, it must be removed there first.
func (n *Node) Add(child Object) error {
	if child == nil {
		return errors.Wrap(ErrInvalidParent, "add nil child")
	}

	for anc := n.self(); anc != nil; anc = anc.Parent() {
		if anc == child {
			return errors.Wrapf(ErrCycle, "add %q to %q", child.Name(), n.name)
		}
	}

	if err := child.SetParent(n.self()); err != nil {
		return err
	}

	n.children = append(n.children, child)
	return nil
}

// Remove detaches child. Removing an object that is not a child
// fails with ErrNotChild.
func (n *Node) Remove(child Object) error {
	position := -1
	for i, c := range n.children {
		if c == child {
			position = i
			break
		}
	}

	if position == -1 {
		return errors.Wrapf(ErrNotChild, "remove from %q", n.name)
	}

	if err := child.SetParent(nil); err != nil {
		return err
	}

	copy(n.children[position:], n.children[position+1:])
	n.children[len(n.children)-1] = nil
	n.children = n.children[:len(n.children)-1]

	return nil
}

// ApplyMatrix combines m with the local transform. local applies m in
// object space (multiply on the right), otherwise m acts in world
// space (multiply on the left). The side is load-bearing: rotating
// locally spins the node around itself, globally around the origin.
func (n *Node) ApplyMatrix(m math.Matrix, local bool) {
	if local {
		n.transform = n.transform.Mul(m)
	} else {
		n.transform = m.Mul(n.transform)
	}
}

func (n *Node) Translate(x, y, z float64, local bool) {
	n.ApplyMatrix(math.Translation(x, y, z), local)
}

func (n *Node) RotateX(angle float64, local bool) {
	n.ApplyMatrix(math.RotationX(angle), local)
}

func (n *Node) RotateY(angle float64, local bool) {
	n.ApplyMatrix(math.RotationY(angle), local)
}

func (n *Node) RotateZ(angle float64, local bool) {
	n.ApplyMatrix(math.RotationZ(angle), local)
}

func (n *Node) Scale(factor float64, local bool) {
	n.ApplyMatrix(math.Scale(factor, factor, factor), local)
}

// Position reads the translation column directly, no matrix
// multiplication involved.
func (n *Node) Position() math.Vector {
	return n.transform.Position()
}

func (n *Node) SetPosition(p math.Vector) {
	n.transform.SetPosition(p)
}

func (n *Node) WorldPosition() math.Vector {
	return n.WorldMatrix().Position()
}

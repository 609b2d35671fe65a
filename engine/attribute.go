package engine

import (
	"github.com/pkg/errors"

	"github.com/rowan3d/rowan/backend"
)

// Attribute is a typed per-vertex array bound once to a shader
// input. It moves through two states: constructed (unlocated) and
// located, uploading before Locate succeeds is an error. The data
// length is fixed at construction.
type Attribute struct {
	kind  Kind
	data  []float32
	count int

	buffer   backend.Buffer
	location backend.Location
	located  bool
}

func NewAttribute(kind Kind, data []float32) (*Attribute, error) {
	if !kind.validAttribute() {
		return nil, errors.Wrapf(ErrInvalidKind, "attribute kind %v", kind)
	}

	if len(data) == 0 || len(data)%kind.Components() != 0 {
		return nil, errors.Wrapf(ErrKindMismatch,
			"attribute kind %v wants a multiple of %d floats, got %d",
			kind, kind.Components(), len(data))
	}

	return &Attribute{
		kind:  kind,
		data:  data,
		count: len(data) / kind.Components(),
	}, nil
}

func (a *Attribute) Kind() Kind {
	return a.kind
}

// Count is the number of vertices.
func (a *Attribute) Count() int {
	return a.count
}

// Data exposes the flattened vertex values, callers must not resize
// or retain it.
func (a *Attribute) Data() []float32 {
	return a.data
}

// Locate resolves the shader variable handle by name. On failure the
// attribute stays unlocated.
func (a *Attribute) Locate(api backend.API, p backend.Program, name string) error {
	l := api.AttributeLocation(p, name)
	if l == backend.LocationNone {
		return errors.Wrapf(ErrVariableNotFound, "attribute %q in program %d", name, p)
	}

	a.location = l
	a.located = true
	return nil
}

func (a *Attribute) Located() bool {
	return a.located
}

// Upload pushes the vertex data into a GPU buffer and points the
// located shader input at it. The dispatch over Kind is the one
// place new per-vertex shapes get wired up.
func (a *Attribute) Upload(api backend.API) error {
	if !a.located {
		return errors.Wrapf(ErrNotLocated, "attribute upload, kind %v", a.kind)
	}

	if a.buffer == 0 {
		a.buffer = api.CreateBuffer()
	}
	api.BufferData(a.buffer, a.data)

	switch a.kind {
	case KindBool, KindFloat:
		api.AttributePointer(a.location, 1)
	case KindVec2:
		api.AttributePointer(a.location, 2)
	case KindVec3:
		api.AttributePointer(a.location, 3)
	case KindVec4:
		api.AttributePointer(a.location, 4)
	default:
		return errors.Wrapf(ErrInvalidKind, "attribute upload, kind %v", a.kind)
	}

	return nil
}

func (a *Attribute) Dispose(api backend.API) {
	if a.buffer != 0 {
		api.DeleteBuffer(a.buffer)
		a.buffer = 0
	}
}

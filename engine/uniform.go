package engine

import (
	"github.com/pkg/errors"

	"github.com/rowan3d/rowan/backend"
	"github.com/rowan3d/rowan/math"
)

// Uniform is a typed per-draw value re-uploaded every frame. The
// value may be reassigned freely between frames, each assignment is
// validated against the declared kind. Like Attribute it must be
// located before the first upload.
type Uniform struct {
	kind  Kind
	value interface{}

	location backend.Location
	located  bool
}

func NewUniform(kind Kind, value interface{}) (*Uniform, error) {
	if !kind.validUniform() {
		return nil, errors.Wrapf(ErrInvalidKind, "uniform kind %v", kind)
	}

	u := &Uniform{kind: kind}
	if err := u.Set(value); err != nil {
		return nil, err
	}

	return u, nil
}

func (u *Uniform) Kind() Kind {
	return u.kind
}

func (u *Uniform) Value() interface{} {
	return u.value
}

// Set validates the payload shape against the declared kind.
// Vectors ride in math.Vector, the extra slots are ignored on
// upload.
func (u *Uniform) Set(value interface{}) error {
	ok := false

	switch u.kind {
	case KindInt:
		_, ok = value.(int)
	case KindBool:
		_, ok = value.(bool)
	case KindFloat:
		_, ok = value.(float64)
	case KindVec2, KindVec3, KindVec4:
		_, ok = value.(math.Vector)
	case KindMat4:
		_, ok = value.(math.Matrix)
	}

	if !ok {
		return errors.Wrapf(ErrKindMismatch, "uniform kind %v, value %T", u.kind, value)
	}

	u.value = value
	return nil
}

func (u *Uniform) Locate(api backend.API, p backend.Program, name string) error {
	l := api.UniformLocation(p, name)
	if l == backend.LocationNone {
		return errors.Wrapf(ErrVariableNotFound, "uniform %q in program %d", name, p)
	}

	u.location = l
	u.located = true
	return nil
}

func (u *Uniform) Located() bool {
	return u.located
}

// Upload dispatches the GPU call matching the declared kind. It
// mutates program state on the GPU, never the uniform itself.
func (u *Uniform) Upload(api backend.API) error {
	if !u.located {
		return errors.Wrapf(ErrNotLocated, "uniform upload, kind %v", u.kind)
	}

	switch u.kind {
	case KindInt:
		api.UniformInt(u.location, int32(u.value.(int)))
	case KindBool:
		// GLSL has no client-side bool, upload 0/1
		v := int32(0)
		if u.value.(bool) {
			v = 1
		}
		api.UniformInt(u.location, v)
	case KindFloat:
		api.UniformFloat(u.location, float32(u.value.(float64)))
	case KindVec2:
		v := u.value.(math.Vector)
		api.UniformVec2(u.location, [2]float32{float32(v[0]), float32(v[1])})
	case KindVec3:
		v := u.value.(math.Vector)
		api.UniformVec3(u.location, [3]float32{float32(v[0]), float32(v[1]), float32(v[2])})
	case KindVec4:
		v := u.value.(math.Vector)
		api.UniformVec4(u.location, v.Float32())
	case KindMat4:
		api.UniformMat4(u.location, u.value.(math.Matrix).Float32())
	default:
		return errors.Wrapf(ErrInvalidKind, "uniform upload, kind %v", u.kind)
	}

	return nil
}

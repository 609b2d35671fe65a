package engine

import (
	"github.com/pkg/errors"
)

// Kind is the closed enumeration of data shapes that can be bound to
// a shader variable. Upload dispatch switches exhaustively over it,
// new shapes are added here and in the two Upload methods.
type Kind int

const (
	KindInt Kind = iota + 1
	KindBool
	KindFloat
	KindVec2
	KindVec3
	KindVec4
	KindMat4
)

var kindNames = map[Kind]string{
	KindInt:   "int",
	KindBool:  "bool",
	KindFloat: "float",
	KindVec2:  "vec2",
	KindVec3:  "vec3",
	KindVec4:  "vec4",
	KindMat4:  "mat4",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}

	return "unknown"
}

// ParseKind maps a GLSL type name to its Kind. Anything outside the
// enumeration fails with ErrInvalidKind.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}

	return 0, errors.Wrapf(ErrInvalidKind, "%q", name)
}

// Components is the number of float slots per element.
func (k Kind) Components() int {
	switch k {
	case KindInt, KindBool, KindFloat:
		return 1
	case KindVec2:
		return 2
	case KindVec3:
		return 3
	case KindVec4:
		return 4
	case KindMat4:
		return 16
	}

	return 0
}

// attribute arrays carry per-vertex floats, int and mat4 stay
// uniform-only
func (k Kind) validAttribute() bool {
	switch k {
	case KindBool, KindFloat, KindVec2, KindVec3, KindVec4:
		return true
	}

	return false
}

func (k Kind) validUniform() bool {
	_, ok := kindNames[k]
	return ok
}

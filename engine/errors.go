package engine

import (
	"github.com/pkg/errors"
)

// Failures are unrecoverable where they occur and surface to the
// caller immediately, a silently skipped upload draws a wrong frame
// without ever crashing.
var (
	ErrInvalidKind      = errors.New("engine: invalid type kind")
	ErrKindMismatch     = errors.New("engine: value does not match declared kind")
	ErrVariableNotFound = errors.New("engine: shader variable not found")
	ErrNotLocated       = errors.New("engine: variable not located")
	ErrParentAlreadySet = errors.New("engine: parent already set, detach first")
	ErrInvalidParent    = errors.New("engine: invalid parent or child")
	ErrCycle            = errors.New("engine: node must not be its own ancestor")
	ErrNotChild         = errors.New("engine: object is not a child of this node")
	ErrSceneParent      = errors.New("engine: a scene cannot have a parent")
)

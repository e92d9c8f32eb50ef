package registry

import (
	"errors"
	"fmt"
)

// ErrConfiguration is matched by every caller-fixable error: an unknown
// requested type or a definition that cannot be compiled.
var ErrConfiguration = errors.New("configuration error")

// UnknownTypeError reports a requested type id (or vendor) that is not in the
// registry.
type UnknownTypeError struct {
	Requested string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown secret type %q", e.Requested)
}

func (e *UnknownTypeError) Unwrap() error {
	return ErrConfiguration
}

// CompileError reports a definition that is structurally invalid.
type CompileError struct {
	TypeID string
	Reason string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("compile %s: %s", e.TypeID, e.Reason)
}

func (e *CompileError) Unwrap() error {
	return ErrConfiguration
}

package vivo

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInputKind is returned by Vivify for a source that is not mapping-shaped.
	ErrInvalidInputKind = errors.New("vivo: input is not a mapping")

	// ErrTooDeep is returned by Vivify when the source nests deeper than MaxDepth.
	ErrTooDeep = errors.New("vivo: input nests too deep")

	// ErrLeafInPath is returned by Child when a leaf sits where a Dict is expected.
	ErrLeafInPath = errors.New("vivo: leaf value in path")
)

// PathError records the path at which a Dict walk failed.
type PathError struct {
	Path []any
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%v at %v", e.Err, e.Path)
}

func (e *PathError) Unwrap() error {
	return e.Err
}

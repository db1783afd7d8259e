package pathkit

import (
	"errors"
	"fmt"
)

// Common configuration errors
var (
	ErrInvalidSeparator = errors.New("invalid separator")
	ErrInvalidSegment   = errors.New("invalid segment")
	ErrInvalidPath      = errors.New("invalid path")
	ErrInvalidConfig    = errors.New("invalid config")
)

// PathError records a configuration error and the operation and path that
// caused it
type PathError struct {
	Op   string
	Path string
	Err  error
}

// Error implements the error interface
func (e *PathError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error
func (e *PathError) Unwrap() error {
	return e.Err
}

// TypeMismatchError describes a strict-mode step where the current container
// could not support any access strategy for the segment. It is reported
// through the type-mismatch handler; it is never returned as an error from
// Resolve or Get.
type TypeMismatchError struct {
	// Path is the full path being resolved.
	Path Path

	// SegmentIndex is the position of the failing segment within Path.
	SegmentIndex int

	// Segment is the failing segment.
	Segment Segment

	// Container describes the capability of the value the segment was
	// applied to.
	Container ContainerKind
}

// Error implements the error interface
func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("cannot traverse %s container with segment %s (segment %d of %s)",
		e.Container, e.Segment, e.SegmentIndex, e.Path)
}

// IsConfigError reports whether an error originates from pathkit
// configuration (separator, segment, path, or config validation)
func IsConfigError(err error) bool {
	return errors.Is(err, ErrInvalidSeparator) ||
		errors.Is(err, ErrInvalidSegment) ||
		errors.Is(err, ErrInvalidPath) ||
		errors.Is(err, ErrInvalidConfig)
}

// IsTypeMismatch reports whether an error is a strict-mode type mismatch
func IsTypeMismatch(err error) bool {
	var tm *TypeMismatchError
	return errors.As(err, &tm)
}

package errors

import (
	"errors"
	"fmt"
)

// Common error types
var (
	// ErrMissingArgument indicates that a required command-line argument was not supplied
	ErrMissingArgument = errors.New("missing argument")

	// ErrFilesystem indicates that a generated file could not be written
	ErrFilesystem = errors.New("filesystem error")
)

// EmitError represents a failed step of emitting a generated file
type EmitError struct {
	Op   string // Operation that failed
	Path string // File the operation targeted
	Err  error  // Underlying error
}

// Error implements the error interface
func (e *EmitError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap allows errors.Is and errors.As to work
func (e *EmitError) Unwrap() error {
	return e.Err
}

// NewFilesystemError wraps a write failure so that it matches ErrFilesystem
// while keeping the OS cause reachable through errors.Is and errors.As.
func NewFilesystemError(op, path string, err error) *EmitError {
	return &EmitError{
		Op:   op,
		Path: path,
		Err:  fmt.Errorf("%w: %w", ErrFilesystem, err),
	}
}

// MissingArgument reports that the named positional argument was not supplied
func MissingArgument(name string) error {
	return fmt.Errorf("%w: %s is required", ErrMissingArgument, name)
}

// IsMissingArgument checks if an error is a missing argument error
func IsMissingArgument(err error) bool {
	return errors.Is(err, ErrMissingArgument)
}

// IsFilesystem checks if an error is a filesystem error
func IsFilesystem(err error) bool {
	return errors.Is(err, ErrFilesystem)
}

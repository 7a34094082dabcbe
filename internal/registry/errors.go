package registry

import (
	"errors"
	"fmt"
)

// Standard errors returned during registration.
var (
	// ErrEmptyID indicates a descriptor with no server identifier.
	ErrEmptyID = errors.New("descriptor id is empty")

	// ErrEmptyCommand indicates a descriptor with no launch command.
	ErrEmptyCommand = errors.New("descriptor command is empty")

	// ErrNoFileTypes indicates a descriptor that handles no file types.
	ErrNoFileTypes = errors.New("descriptor file types are empty")

	// ErrMissingBaseline indicates a capability set missing the baseline
	// (folding-range support).
	ErrMissingBaseline = errors.New("capability set below baseline")

	// ErrExecutableMismatch indicates a factory produced a command whose
	// first element differs from the probed executable.
	ErrExecutableMismatch = errors.New("command does not start with probed executable")
)

// DescriptorError wraps a validation failure with the offending server id.
type DescriptorError struct {
	ID  string
	Err error
}

// Error implements the error interface.
func (e *DescriptorError) Error() string {
	return fmt.Sprintf("descriptor %s: %v", e.ID, e.Err)
}

// Unwrap returns the underlying error.
func (e *DescriptorError) Unwrap() error {
	return e.Err
}

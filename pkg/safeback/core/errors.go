package core

import (
	"errors"
	"fmt"
)

// Error kinds. Callers match on these with errors.Is; the typed errors
// below carry the offending name and a reason.
var (
	// ErrInvalidInput marks names that never reach the filesystem:
	// empty, absolute, traversal attempts, or unparseable backup names.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound marks a missing source file or an original with no
	// locatable backup.
	ErrNotFound = errors.New("not found")
)

// ValidationError reports a rejected file name before any filesystem
// operation has run.
type ValidationError struct {
	Name   string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid file name %q: %s", e.Name, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NotFoundError reports a validated name whose file (or backup) does not
// exist on disk.
type NotFoundError struct {
	Name   string
	Reason string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", e.Reason, e.Name)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

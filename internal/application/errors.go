package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrNotReady      = errors.New("not initialized")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ConflictError reports a file that already exists at a target path.
// Callers decide whether to prompt, force, or abort.
type ConflictError struct {
	Path string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s already exists", e.Path)
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrAlreadyExists
}

// ParseFailure records a file whose front matter could not be parsed.
// The file is reported and skipped, never guessed at.
type ParseFailure struct {
	Path string
	Err  error
}

func (e *ParseFailure) Error() string {
	return fmt.Sprintf("cannot parse front matter of %s: %v", e.Path, e.Err)
}

func (e *ParseFailure) Unwrap() error {
	return e.Err
}

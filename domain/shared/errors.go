/*
Package shared holds the building blocks every domain package uses.

Errors:
1. Sentinel errors for errors.Is() checks
2. DomainError captures the stack at creation and formats it lazily
3. No presentation concepts (colors, prompts, exit codes) leak in here
*/
package shared

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

var (
	// ErrNotFound the addressed record does not exist
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput a field failed validation
	ErrInvalidInput = errors.New("invalid input")
)

// DomainError structured error carrying business context and a stack
type DomainError struct {
	// Err sentinel used by errors.Is()
	Err error

	// Entity name of the entity involved (e.g. "user")
	Entity string

	// Message human readable description
	Message string

	// Field optional field name for validation failures
	Field string

	stack []uintptr
}

func (e *DomainError) Error() string {
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Stack formats the captured frames; only call it when logging.
func (e *DomainError) Stack() []string {
	return FormatStack(e.stack)
}

// CaptureStack records the current call stack.
// skip: frames to skip (usually 3: Callers, CaptureStack, NewXxxError)
func CaptureStack(skip int) []uintptr {
	var pcs [32]uintptr
	n := runtime.Callers(skip, pcs[:])
	return pcs[:n]
}

// FormatStack renders frames as "file:line function", dropping runtime frames,
// at most 10 entries.
func FormatStack(stack []uintptr) []string {
	if len(stack) == 0 {
		return nil
	}

	frames := runtime.CallersFrames(stack)
	var result []string
	for {
		frame, more := frames.Next()
		if !strings.Contains(frame.File, "runtime/") {
			result = append(result, fmt.Sprintf("%s:%d %s", frame.File, frame.Line, frame.Function))
		}
		if !more || len(result) >= 10 {
			break
		}
	}
	return result
}

// NewError creates a domain error whose chain is err, for errors.Is().
func NewError(err error, entity, field, message string) error {
	return &DomainError{
		Err:     err,
		Entity:  entity,
		Field:   field,
		Message: message,
		stack:   CaptureStack(3),
	}
}

// NewNotFoundError creates a not-found domain error for entity identified by key.
func NewNotFoundError(entity, key string) error {
	return &DomainError{
		Err:     ErrNotFound,
		Entity:  entity,
		Message: entity + " not found: " + key,
		stack:   CaptureStack(3),
	}
}

// NewValidationError creates a validation domain error wrapping reason, so both
// errors.Is(err, ErrInvalidInput) and errors.Is(err, reason) hold.
func NewValidationError(entity, field string, reason error) error {
	return &DomainError{
		Err:     fmt.Errorf("%w: %w", ErrInvalidInput, reason),
		Entity:  entity,
		Field:   field,
		Message: reason.Error(),
		stack:   CaptureStack(3),
	}
}

// Stacker errors that can report a stack
type Stacker interface {
	Stack() []string
}

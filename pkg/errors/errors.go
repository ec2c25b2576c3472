package errors

import (
	"errors"
	"fmt"

	"usersapp/domain/shared"
)

// ErrorCode application error code
type ErrorCode string

const (
	CodeInternal        ErrorCode = "INTERNAL_ERROR"
	CodeValidation      ErrorCode = "VALIDATION_ERROR"
	CodeUserNotFound    ErrorCode = "USER_NOT_FOUND"
	CodeCommandNotFound ErrorCode = "COMMAND_NOT_FOUND"
	CodeNoData          ErrorCode = "NO_DATA"
)

// AppError an error already phrased for the person at the prompt.
// Message is exactly what gets printed; Err keeps the underlying cause for logs.
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func WrongData(err error) *AppError {
	return Wrap(err, CodeValidation, "Wrong data!")
}

func UserNotFound(err error) *AppError {
	return Wrap(err, CodeUserNotFound, "User not found...")
}

func CommandNotFound(command string) *AppError {
	return Wrap(fmt.Errorf("unknown action %q", command), CodeCommandNotFound, "Command not found")
}

func NoData() *AppError {
	return New(CodeNoData, "No data...")
}

// Is reports whether err carries the given code.
func Is(err error, code ErrorCode) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// MapDomainError maps a domain error to the application error shown to the user.
func MapDomainError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, shared.ErrNotFound):
		return UserNotFound(err)
	case errors.Is(err, shared.ErrInvalidInput):
		return WrongData(err)
	default:
		return Wrap(err, CodeInternal, "Something went wrong")
	}
}

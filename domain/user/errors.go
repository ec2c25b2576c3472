/*
Package user defines the user record and its validation rules.
*/
package user

import (
	"errors"
	"fmt"

	"usersapp/domain/shared"
)

var (
	ErrInvalidName = errors.New("name cannot be empty")
	ErrInvalidAge  = errors.New("age must be a number greater than 0")
	ErrInvalidType = errors.New("value has the wrong type")
)

func NewUserNotFoundError(name string) error {
	return shared.NewError(shared.ErrNotFound, "user", "name", "user not found: "+name)
}

func NewInvalidNameError() error {
	return shared.NewValidationError("user", "name", ErrInvalidName)
}

func NewInvalidAgeError(age any) error {
	return shared.NewError(
		fmt.Errorf("%w: %w", shared.ErrInvalidInput, ErrInvalidAge),
		"user", "age",
		fmt.Sprintf("age must be a number greater than 0, got: %v", age),
	)
}

func NewInvalidTypeError(field string, value any) error {
	return shared.NewError(
		fmt.Errorf("%w: %w", shared.ErrInvalidInput, ErrInvalidType),
		"user", field,
		fmt.Sprintf("%s has the wrong type: %T", field, value),
	)
}

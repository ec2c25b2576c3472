package user

import (
	"context"

	"usersapp/domain/shared"
)

// Repository ordered user collection.
// Insertion order is display order; implementations must preserve it
// across Remove.
type Repository interface {
	// Append adds the user at the end of the list.
	Append(ctx context.Context, user *User) error

	// List returns every user in insertion order.
	List(ctx context.Context) ([]*User, error)

	// FindFirst returns the first user satisfying spec, or a not-found error.
	FindFirst(ctx context.Context, spec shared.Specification[*User]) (*User, error)

	// Remove deletes the given user (matched by id), keeping the order of
	// the remaining users.
	Remove(ctx context.Context, user *User) error
}

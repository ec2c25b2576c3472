package mocks

import (
	"context"
	"sync"

	"usersapp/domain/shared"
	"usersapp/domain/user"
)

// MockUserRepository in-memory user.Repository whose calls can be made to fail.
// A non-nil XxxErr is returned by the matching method without touching the data.
type MockUserRepository struct {
	mu    sync.Mutex
	users []*user.User

	AppendErr    error
	ListErr      error
	FindFirstErr error
	RemoveErr    error

	Calls map[string]int
}

// NewMockUserRepository creates a mock seeded with users
func NewMockUserRepository(users ...*user.User) *MockUserRepository {
	return &MockUserRepository{
		users: append([]*user.User(nil), users...),
		Calls: make(map[string]int),
	}
}

func (r *MockUserRepository) Append(ctx context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Calls["Append"]++

	if r.AppendErr != nil {
		return r.AppendErr
	}
	r.users = append(r.users, u)
	return nil
}

func (r *MockUserRepository) List(ctx context.Context) ([]*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Calls["List"]++

	if r.ListErr != nil {
		return nil, r.ListErr
	}
	return append([]*user.User(nil), r.users...), nil
}

func (r *MockUserRepository) FindFirst(ctx context.Context, spec shared.Specification[*user.User]) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Calls["FindFirst"]++

	if r.FindFirstErr != nil {
		return nil, r.FindFirstErr
	}
	for _, u := range r.users {
		if spec.IsSatisfiedBy(ctx, u) {
			return u, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *MockUserRepository) Remove(ctx context.Context, target *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Calls["Remove"]++

	if r.RemoveErr != nil {
		return r.RemoveErr
	}
	for i, u := range r.users {
		if u.ID() == target.ID() {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return shared.NewNotFoundError("user", target.Name().Value())
}

var _ user.Repository = (*MockUserRepository)(nil)

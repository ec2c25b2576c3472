package memory

import (
	"context"
	"slices"
	"sync"

	"usersapp/domain/shared"
	"usersapp/domain/user"
)

// UserRepository slice-backed user repository. Nothing is persisted; the
// list lives as long as the process.
type UserRepository struct {
	mu    sync.RWMutex
	users []*user.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make([]*user.User, 0)}
}

func (r *UserRepository) Append(ctx context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = append(r.users, u)
	return nil
}

func (r *UserRepository) List(ctx context.Context) ([]*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*user.User, len(r.users))
	copy(result, r.users)
	return result, nil
}

func (r *UserRepository) FindFirst(ctx context.Context, spec shared.Specification[*user.User]) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if spec.IsSatisfiedBy(ctx, u) {
			return u, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *UserRepository) Remove(ctx context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := slices.IndexFunc(r.users, func(candidate *user.User) bool {
		return candidate.ID() == u.ID()
	})
	if i == -1 {
		return shared.NewNotFoundError("user", u.Name().Value())
	}
	r.users = slices.Delete(r.users, i, i+1)
	return nil
}

var _ user.Repository = (*UserRepository)(nil)

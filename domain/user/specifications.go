package user

import (
	"context"

	"usersapp/domain/shared"
)

// ByNameSpecification exact, case-sensitive name match.
type ByNameSpecification struct {
	Name Name
}

func (spec ByNameSpecification) IsSatisfiedBy(ctx context.Context, entity *User) bool {
	return entity.Name().Equals(spec.Name)
}

// NewByNameSpecification takes the name as typed. An empty name is never
// stored, so it simply matches nothing.
func NewByNameSpecification(name string) shared.Specification[*User] {
	return ByNameSpecification{Name: Name{value: name}}
}

package shared

import (
	"context"
)

// Specification encapsulates a business rule used to select entities.
// Repositories evaluate it in memory, so it stays free of storage concerns.
type Specification[T any] interface {
	IsSatisfiedBy(ctx context.Context, entity T) bool
}

package shared

// AggregateRoot entry point of a consistency boundary. It records domain
// events while it changes; whoever persists it pulls and publishes them.
type AggregateRoot interface {
	ID() string

	// PullEvents returns the recorded events and clears them.
	PullEvents() []DomainEvent
}

// IsAggregateRoot compile-time marker: var _ = IsAggregateRoot(&User{})
func IsAggregateRoot(agg AggregateRoot) AggregateRoot {
	return agg
}

package user

import (
	"time"

	"usersapp/domain/shared"

	"github.com/google/uuid"
)

// User a single record in the user list.
//
// Fields are private; state changes go through Update so the
// "name non-empty, age > 0" invariant holds for every stored user.
// The id is internal: it tags log lines and events and is never shown
// or used for lookup.
type User struct {
	id        string
	name      Name
	age       Age
	createdAt time.Time
	updatedAt time.Time

	events []shared.DomainEvent
}

// NewUser validates raw answer values and creates a user.
func NewUser(name, age any) (*User, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}

	a, err := NewAge(age)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	u := &User{
		id:        uuid.NewString(),
		name:      n,
		age:       a,
		createdAt: now,
		updatedAt: now,
		events:    make([]shared.DomainEvent, 0),
	}
	u.recordEvent(NewUserAddedEvent(u.id, n.Value(), a.Value()))

	return u, nil
}

// Update replaces name and age together. Both values are validated before
// anything is written, so a failed update leaves the user untouched.
func (u *User) Update(name, age any) error {
	n, err := NewName(name)
	if err != nil {
		return err
	}

	a, err := NewAge(age)
	if err != nil {
		return err
	}

	oldName := u.name.Value()
	u.name = n
	u.age = a
	u.updatedAt = time.Now()
	u.recordEvent(NewUserEditedEvent(u.id, oldName, n.Value(), a.Value()))
	return nil
}

// MarkRemoved records the removal event; the repository does the splice.
func (u *User) MarkRemoved() {
	u.recordEvent(NewUserRemovedEvent(u.id, u.name.Value()))
}

func (u *User) ID() string           { return u.id }
func (u *User) Name() Name           { return u.name }
func (u *User) Age() Age             { return u.age }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

// PullEvents returns and clears the recorded events.
func (u *User) PullEvents() []shared.DomainEvent {
	events := make([]shared.DomainEvent, len(u.events))
	copy(events, u.events)
	u.events = make([]shared.DomainEvent, 0)
	return events
}

func (u *User) recordEvent(event shared.DomainEvent) {
	u.events = append(u.events, event)
}

var _ = shared.IsAggregateRoot(&User{})

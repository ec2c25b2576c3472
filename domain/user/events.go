package user

import "time"

const (
	EventUserAdded   = "user.added"
	EventUserRemoved = "user.removed"
	EventUserEdited  = "user.edited"
)

// UserAddedEvent a user was appended to the list
type UserAddedEvent struct {
	userID     string
	name       string
	age        float64
	occurredOn time.Time
}

func NewUserAddedEvent(userID, name string, age float64) *UserAddedEvent {
	return &UserAddedEvent{
		userID:     userID,
		name:       name,
		age:        age,
		occurredOn: time.Now(),
	}
}

func (e *UserAddedEvent) EventName() string      { return EventUserAdded }
func (e *UserAddedEvent) OccurredOn() time.Time  { return e.occurredOn }
func (e *UserAddedEvent) GetAggregateID() string { return e.userID }
func (e *UserAddedEvent) Name() string           { return e.name }
func (e *UserAddedEvent) Age() float64           { return e.age }

// UserRemovedEvent a user was deleted from the list
type UserRemovedEvent struct {
	userID     string
	name       string
	occurredOn time.Time
}

func NewUserRemovedEvent(userID, name string) *UserRemovedEvent {
	return &UserRemovedEvent{
		userID:     userID,
		name:       name,
		occurredOn: time.Now(),
	}
}

func (e *UserRemovedEvent) EventName() string      { return EventUserRemoved }
func (e *UserRemovedEvent) OccurredOn() time.Time  { return e.occurredOn }
func (e *UserRemovedEvent) GetAggregateID() string { return e.userID }
func (e *UserRemovedEvent) Name() string           { return e.name }

// UserEditedEvent a user's name and age were replaced
type UserEditedEvent struct {
	userID     string
	oldName    string
	newName    string
	newAge     float64
	occurredOn time.Time
}

func NewUserEditedEvent(userID, oldName, newName string, newAge float64) *UserEditedEvent {
	return &UserEditedEvent{
		userID:     userID,
		oldName:    oldName,
		newName:    newName,
		newAge:     newAge,
		occurredOn: time.Now(),
	}
}

func (e *UserEditedEvent) EventName() string      { return EventUserEdited }
func (e *UserEditedEvent) OccurredOn() time.Time  { return e.occurredOn }
func (e *UserEditedEvent) GetAggregateID() string { return e.userID }
func (e *UserEditedEvent) OldName() string        { return e.oldName }
func (e *UserEditedEvent) NewName() string        { return e.newName }
func (e *UserEditedEvent) NewAge() float64        { return e.newAge }

package shared

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEvent struct {
	name string
	id   string
	at   time.Time
}

func (e testEvent) EventName() string      { return e.name }
func (e testEvent) OccurredOn() time.Time  { return e.at }
func (e testEvent) GetAggregateID() string { return e.id }

func TestEventBus_PublishRunsHandlersInOrder(t *testing.T) {
	bus := NewEventBus()
	var calls []string
	for _, name := range []string{"first", "second"} {
		require.NoError(t, bus.Subscribe("user.added", NewFuncHandler(name, func(DomainEvent) error {
			calls = append(calls, name)
			return nil
		})))
	}

	require.NoError(t, bus.Publish(testEvent{name: "user.added", id: "u1", at: time.Now()}))
	require.NoError(t, bus.Publish(testEvent{name: "user.removed", id: "u1", at: time.Now()}))

	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestEventBus_SubscribeRejectsDuplicates(t *testing.T) {
	bus := NewEventBus()
	h := NewFuncHandler("dup", func(DomainEvent) error { return nil })

	require.NoError(t, bus.Subscribe("user.added", h))
	assert.Error(t, bus.Subscribe("user.added", h))
	assert.NoError(t, bus.Subscribe("user.edited", h))
	assert.Error(t, bus.Subscribe("", h))
	assert.Error(t, bus.Subscribe("user.added", nil))
}

func TestEventBus_PublishValidatesAndCollectsFailures(t *testing.T) {
	bus := NewEventBus()
	boom := errors.New("boom")
	require.NoError(t, bus.Subscribe("user.added", NewFuncHandler("fails", func(DomainEvent) error { return boom })))
	ran := false
	require.NoError(t, bus.Subscribe("user.added", NewFuncHandler("runs", func(DomainEvent) error {
		ran = true
		return nil
	})))

	assert.Error(t, bus.Publish(testEvent{name: "user.added", at: time.Now()}), "missing aggregate id")
	assert.False(t, ran)

	err := bus.Publish(testEvent{name: "user.added", id: "u1", at: time.Now()})
	assert.ErrorContains(t, err, "handler fails")
	assert.True(t, ran, "a failing handler does not stop the rest")
}

func TestDomainErrors(t *testing.T) {
	reason := errors.New("name cannot be empty")

	notFound := NewNotFoundError("user", "Bob")
	assert.ErrorIs(t, notFound, ErrNotFound)
	assert.Equal(t, "user not found: Bob", notFound.Error())

	invalid := NewValidationError("user", "name", reason)
	assert.ErrorIs(t, invalid, ErrInvalidInput)
	assert.ErrorIs(t, invalid, reason)

	var stacker Stacker
	require.ErrorAs(t, invalid, &stacker)
	assert.NotEmpty(t, stacker.Stack())
}

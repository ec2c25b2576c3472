package mocks

import (
	"sync"

	"usersapp/domain/shared"
)

// MockEventPublisher records published events instead of dispatching them.
// Err, when set, is returned from every Publish after recording.
type MockEventPublisher struct {
	mu       sync.Mutex
	events   []shared.DomainEvent
	handlers map[string][]shared.EventHandler
	Err      error
}

// NewMockEventPublisher creates a recording publisher
func NewMockEventPublisher() *MockEventPublisher {
	return &MockEventPublisher{
		handlers: make(map[string][]shared.EventHandler),
	}
}

func (p *MockEventPublisher) Publish(event shared.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.events = append(p.events, event)
	return p.Err
}

func (p *MockEventPublisher) Subscribe(eventName string, handler shared.EventHandler) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, h := range p.handlers[eventName] {
		if h.Name() == handler.Name() {
			return nil
		}
	}
	p.handlers[eventName] = append(p.handlers[eventName], handler)
	return nil
}

// EventNames names of everything published, in order
func (p *MockEventPublisher) EventNames() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	names := make([]string, 0, len(p.events))
	for _, e := range p.events {
		names = append(names, e.EventName())
	}
	return names
}

// Subscribed reports whether a handler with this name listens to eventName
func (p *MockEventPublisher) Subscribed(eventName, handlerName string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, h := range p.handlers[eventName] {
		if h.Name() == handlerName {
			return true
		}
	}
	return false
}

var _ shared.DomainEventPublisher = (*MockEventPublisher)(nil)

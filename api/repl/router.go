package repl

import (
	"context"
	"fmt"
)

// Handler runs one action. It may prompt any number of times before
// returning control to the loop.
type Handler func(ctx context.Context) error

// ActionRegister is implemented by controllers that serve actions.
type ActionRegister interface {
	RegisterActions(r *Router)
}

// Router maps actions to handlers. Quit belongs to the loop and cannot be
// routed.
type Router struct {
	handlers map[Action]Handler
}

func NewRouter(controllers ...ActionRegister) *Router {
	r := &Router{handlers: make(map[Action]Handler)}
	for _, c := range controllers {
		c.RegisterActions(r)
	}
	return r
}

// Handle registers h for a. It panics on Quit, Unknown or a duplicate,
// which are wiring mistakes.
func (r *Router) Handle(a Action, h Handler) {
	switch a {
	case ActionList, ActionAdd, ActionRemove, ActionEdit:
	default:
		panic(fmt.Sprintf("repl: action %s cannot be routed", a))
	}
	if _, exists := r.handlers[a]; exists {
		panic(fmt.Sprintf("repl: duplicate handler for %s", a))
	}
	r.handlers[a] = h
}

func (r *Router) lookup(a Action) (Handler, bool) {
	h, ok := r.handlers[a]
	return h, ok
}

package repl

import (
	"usersapp/pkg/logger"

	"go.uber.org/zap"
)

// State where the loop currently is.
type State int

const (
	StateAwaitingAction State = iota
	StateCollectingAddFields
	StateCollectingRemoveName
	StateCollectingEditName
	StateCollectingEditFields
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateAwaitingAction:
		return "awaiting_action"
	case StateCollectingAddFields:
		return "collecting_add_fields"
	case StateCollectingRemoveName:
		return "collecting_remove_name"
	case StateCollectingEditName:
		return "collecting_edit_name"
	case StateCollectingEditFields:
		return "collecting_edit_fields"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Session tracks the loop state. It is touched only from the loop's
// goroutine, so it needs no locking.
type Session struct {
	state State
}

func NewSession() *Session {
	return &Session{state: StateAwaitingAction}
}

func (s *Session) State() State {
	return s.state
}

// Transition moves to the given state. Terminated is final.
func (s *Session) Transition(to State) {
	if s.state == StateTerminated || s.state == to {
		return
	}
	logger.Debug("repl state", zap.Stringer("from", s.state), zap.Stringer("to", to))
	s.state = to
}

/*
Package repl runs the read-eval-print loop: it asks for an action, routes it
to a handler, and repeats until quit or end of input.
*/
package repl

import (
	"context"
	"errors"
	"fmt"
	"io"

	"usersapp/pkg/ctxutil"
	apperrors "usersapp/pkg/errors"
	"usersapp/pkg/logger"
	"usersapp/pkg/message"
	"usersapp/pkg/prompt"

	"go.uber.org/zap"
)

const (
	fieldAction   = "action"
	MsgBye        = "Bye bye!"
	DefaultPrompt = "How can I help you?"
)

// Loop drives one interactive session on a single goroutine. Every prompt
// blocks until a line arrives; there is never more than one outstanding.
type Loop struct {
	router   *Router
	prompter prompt.Prompter
	out      message.Printer
	session  *Session
	title    string
	question string
}

type Option func(*Loop)

// WithTitle sets the application name shown in the banner.
func WithTitle(title string) Option {
	return func(l *Loop) { l.title = title }
}

// WithPrompt replaces the main question.
func WithPrompt(question string) Option {
	return func(l *Loop) {
		if question != "" {
			l.question = question
		}
	}
}

func NewLoop(router *Router, prompter prompt.Prompter, out message.Printer, session *Session, opts ...Option) *Loop {
	l := &Loop{
		router:   router,
		prompter: prompter,
		out:      out,
		session:  session,
		title:    "usersapp",
		question: DefaultPrompt,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run prints the banner and loops. It returns nil after quit or end of
// input, and an error only when reading input fails or ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	l.banner()

	for l.session.State() != StateTerminated {
		answers, err := l.prompter.Prompt(ctx, prompt.Field{Name: fieldAction, Type: prompt.Input, Message: l.question})
		if err != nil {
			return l.stop(err)
		}

		if err := l.dispatch(ctx, answers.String(fieldAction)); err != nil {
			return l.stop(err)
		}
	}
	return nil
}

// dispatch runs one action. Reported failures are swallowed here; only
// input errors come back.
func (l *Loop) dispatch(ctx context.Context, input string) error {
	action := ParseAction(input)
	ctx = ctxutil.WithActionID(ctx)
	log := logger.With(zap.Stringer("action", action), zap.String("action_id", ctxutil.ActionIDFromContext(ctx)))

	var err error
	switch action {
	case ActionList, ActionAdd, ActionRemove, ActionEdit:
		h, ok := l.router.lookup(action)
		if !ok {
			err = l.unknown(input)
			break
		}
		err = h(ctx)
	case ActionQuit:
		l.out.ShowColorized(message.SeverityInfo, MsgBye)
		l.session.Transition(StateTerminated)
		return nil
	case ActionUnknown:
		err = l.unknown(input)
	default:
		err = l.unknown(input)
	}

	if l.session.State() != StateTerminated {
		l.session.Transition(StateAwaitingAction)
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		log.Debug("action reported failure", zap.String("code", string(appErr.Code)), zap.Error(appErr.Err))
		return nil
	}
	if err == nil {
		log.Debug("action completed")
	}
	return err
}

func (l *Loop) unknown(input string) error {
	appErr := apperrors.CommandNotFound(input)
	l.out.ShowColorized(message.SeverityError, appErr.Message)
	return appErr
}

func (l *Loop) stop(err error) error {
	l.session.Transition(StateTerminated)
	if errors.Is(err, io.EOF) {
		logger.Debug("input closed, leaving loop")
		return nil
	}
	return err
}

func (l *Loop) banner() {
	title := message.New(l.title)
	title.Capitalize()

	l.out.Show("")
	l.out.Show(fmt.Sprintf("👋 Welcome to the %s!", title))
	l.out.Show("====================================")
	l.out.ShowColorized(message.SeverityInfo, "Available actions")
	l.out.Show("")
	for _, h := range actionHelp {
		l.out.Show(fmt.Sprintf("%s – %s", h.action, h.description))
	}
	l.out.Show("")
}

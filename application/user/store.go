package user

import (
	"context"
	"errors"
	"fmt"

	"usersapp/domain/shared"
	"usersapp/domain/user"
	"usersapp/pkg/ctxutil"
	apperrors "usersapp/pkg/errors"
	"usersapp/pkg/logger"
	"usersapp/pkg/message"
	"usersapp/pkg/prompt"

	"go.uber.org/zap"
)

// Outcome lines shown after each operation.
const (
	MsgListHeader = "Users data"
	MsgAdded      = "User has been successfully added!"
	MsgDeleted    = "User deleted!"
	MsgUpdated    = "User details updated successfully!"
)

// Field names used when asking for replacement values during Edit.
const (
	FieldNewName = "newName"
	FieldNewAge  = "newAge"
)

// Candidate raw answers for a new user. Values are untyped on purpose:
// Add checks that Name is text and Age is a number.
type Candidate struct {
	Name any
	Age  any
}

// Store owns the user list and reports every outcome through the printer.
//
// Each operation returns nil on success or the *apperrors.AppError whose
// Message was printed. Callers only need the error for logging.
type Store struct {
	repo      user.Repository
	out       message.Printer
	prompter  prompt.Prompter
	publisher shared.DomainEventPublisher
}

// NewStore publisher may be nil when nobody listens to user events.
func NewStore(
	repo user.Repository,
	out message.Printer,
	prompter prompt.Prompter,
	publisher shared.DomainEventPublisher,
) *Store {
	return &Store{
		repo:      repo,
		out:       out,
		prompter:  prompter,
		publisher: publisher,
	}
}

// ShowAll prints the header and either the table of users or "No data...".
func (s *Store) ShowAll(ctx context.Context) error {
	users, err := s.repo.List(ctx)
	if err != nil {
		return s.fail(ctx, apperrors.MapDomainError(err))
	}

	s.out.ShowColorized(message.SeverityInfo, MsgListHeader)
	if len(users) == 0 {
		appErr := apperrors.NoData()
		s.out.ShowColorized(message.SeverityError, appErr.Message)
		return appErr
	}

	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{u.Name().Value(), u.Age().String()})
	}
	s.out.Table([]string{"name", "age"}, rows)
	return nil
}

// Add validates the candidate and appends it. Duplicate names are allowed.
func (s *Store) Add(ctx context.Context, c Candidate) error {
	u, err := user.NewUser(c.Name, c.Age)
	if err != nil {
		return s.fail(ctx, apperrors.MapDomainError(err))
	}

	if err := s.repo.Append(ctx, u); err != nil {
		return s.fail(ctx, apperrors.MapDomainError(err))
	}
	s.publish(u)

	logger.Debug("user added", zap.String("action_id", ctxutil.ActionIDFromContext(ctx)), zap.String("user_id", u.ID()), zap.String("name", u.Name().Value()),
		zap.Time("created_at", u.CreatedAt()))
	s.out.ShowColorized(message.SeveritySuccess, MsgAdded)
	return nil
}

// Remove deletes the first user whose name equals name exactly.
func (s *Store) Remove(ctx context.Context, name string) error {
	u, err := s.findFirst(ctx, name)
	if err != nil {
		return s.fail(ctx, apperrors.MapDomainError(err))
	}

	if err := s.repo.Remove(ctx, u); err != nil {
		return s.fail(ctx, apperrors.MapDomainError(err))
	}
	u.MarkRemoved()
	s.publish(u)

	logger.Debug("user removed", zap.String("action_id", ctxutil.ActionIDFromContext(ctx)), zap.String("user_id", u.ID()), zap.String("name", name))
	s.out.ShowColorized(message.SeveritySuccess, MsgDeleted)
	return nil
}

// Edit finds the first user named name, asks for a new name and age, and
// replaces both when they pass the same checks as Add. It returns on every
// branch; the only thing it waits for is the prompter.
func (s *Store) Edit(ctx context.Context, name string) error {
	u, err := s.findFirst(ctx, name)
	if err != nil {
		return s.fail(ctx, apperrors.MapDomainError(err))
	}

	answers, err := s.prompter.Prompt(ctx,
		prompt.Field{Name: FieldNewName, Type: prompt.Input, Message: fmt.Sprintf("Enter new name for %s:", name)},
		prompt.Field{Name: FieldNewAge, Type: prompt.Number, Message: "Enter new age:"},
	)
	if err != nil {
		return err
	}

	if err := u.Update(answers[FieldNewName], answers[FieldNewAge]); err != nil {
		return s.fail(ctx, apperrors.MapDomainError(err))
	}
	s.publish(u)

	logger.Debug("user edited", zap.String("action_id", ctxutil.ActionIDFromContext(ctx)), zap.String("user_id", u.ID()), zap.String("name", u.Name().Value()),
		zap.Time("updated_at", u.UpdatedAt()))
	s.out.ShowColorized(message.SeveritySuccess, MsgUpdated)
	return nil
}

func (s *Store) findFirst(ctx context.Context, name string) (*user.User, error) {
	u, err := s.repo.FindFirst(ctx, user.NewByNameSpecification(name))
	if errors.Is(err, shared.ErrNotFound) {
		return nil, user.NewUserNotFoundError(name)
	}
	return u, err
}

func (s *Store) fail(ctx context.Context, appErr *apperrors.AppError) error {
	fields := []zap.Field{
		zap.String("action_id", ctxutil.ActionIDFromContext(ctx)),
		zap.String("code", string(appErr.Code)),
		zap.Error(appErr.Err),
	}
	var domainErr *shared.DomainError
	if errors.As(appErr.Err, &domainErr) {
		fields = append(fields,
			zap.String("entity", domainErr.Entity),
			zap.String("field", domainErr.Field),
			zap.Strings("stack", domainErr.Stack()))
	}
	logger.Debug("user operation failed", fields...)

	s.out.ShowColorized(message.SeverityError, appErr.Message)
	return appErr
}

func (s *Store) publish(agg shared.AggregateRoot) {
	events := agg.PullEvents()
	if s.publisher == nil {
		return
	}
	for _, event := range events {
		if err := s.publisher.Publish(event); err != nil {
			logger.Warn("failed to publish event", zap.String("event", event.EventName()), zap.Error(err))
		}
	}
}

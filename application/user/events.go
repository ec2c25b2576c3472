package user

import (
	"usersapp/domain/shared"
	"usersapp/domain/user"
	"usersapp/pkg/logger"

	"go.uber.org/zap"
)

// LoggingEventHandler writes user events to the structured log.
type LoggingEventHandler struct{}

func NewLoggingEventHandler() *LoggingEventHandler {
	return &LoggingEventHandler{}
}

func (h *LoggingEventHandler) Handle(event shared.DomainEvent) error {
	fields := []zap.Field{
		zap.String("event", event.EventName()),
		zap.String("user_id", event.GetAggregateID()),
		zap.Time("occurred_on", event.OccurredOn()),
	}

	switch e := event.(type) {
	case *user.UserAddedEvent:
		fields = append(fields, zap.String("name", e.Name()), zap.Float64("age", e.Age()))
	case *user.UserRemovedEvent:
		fields = append(fields, zap.String("name", e.Name()))
	case *user.UserEditedEvent:
		fields = append(fields,
			zap.String("old_name", e.OldName()),
			zap.String("new_name", e.NewName()),
			zap.Float64("new_age", e.NewAge()))
	}

	logger.Debug("user event", fields...)
	return nil
}

func (h *LoggingEventHandler) Name() string {
	return "logging-event-handler"
}

// SubscribeLogging registers h for every user event on publisher.
func SubscribeLogging(publisher shared.DomainEventPublisher, h shared.EventHandler) error {
	for _, name := range []string{user.EventUserAdded, user.EventUserRemoved, user.EventUserEdited} {
		if err := publisher.Subscribe(name, h); err != nil {
			return err
		}
	}
	return nil
}

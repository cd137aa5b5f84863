package notification

import (
	"context"

	"restaurant-management/internal/logger"
	"restaurant-management/internal/models"
)

// Notifier announces committed changes. Notify never fails the caller.
type Notifier interface {
	Notify(ctx context.Context, msg *models.EventMessage)
}

// Nop is used when no broker is configured
type Nop struct{}

func (Nop) Notify(context.Context, *models.EventMessage) {}

// Publisher is implemented by messaging.Publisher
type Publisher interface {
	PublishNotification(ctx context.Context, message interface{}) error
}

// EventNotifier publishes event messages to the notifications exchange
type EventNotifier struct {
	publisher Publisher
	logger    *logger.Logger
}

func NewEventNotifier(publisher Publisher, log *logger.Logger) *EventNotifier {
	return &EventNotifier{publisher: publisher, logger: log}
}

func (n *EventNotifier) Notify(ctx context.Context, msg *models.EventMessage) {
	if err := n.publisher.PublishNotification(ctx, msg); err != nil {
		n.logger.Error("notification_publish_failed", "Failed to publish event notification", logger.RequestIDFrom(ctx), err, map[string]interface{}{
			"type":      msg.Type,
			"entity_id": msg.EntityID,
		})
		return
	}
	n.logger.Debug("notification_published", "Event notification published", logger.RequestIDFrom(ctx), map[string]interface{}{
		"type": msg.Type,
	})
}

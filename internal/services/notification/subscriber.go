package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"restaurant-management/internal/logger"
	"restaurant-management/internal/messaging"
	"restaurant-management/internal/models"
)

// Consumer is implemented by messaging.Consumer
type Consumer interface {
	StartConsuming(ctx context.Context, handler messaging.MessageHandler) error
	Close() error
}

// Subscriber prints the event notifications of the notifications queue
type Subscriber struct {
	consumer Consumer
	logger   *logger.Logger
	out      io.Writer
}

// NewSubscriber creates a new notification subscriber
func NewSubscriber(consumer Consumer, log *logger.Logger) *Subscriber {
	return &Subscriber{
		consumer: consumer,
		logger:   log,
		out:      os.Stdout,
	}
}

// Start consumes notifications until ctx is cancelled
func (s *Subscriber) Start(ctx context.Context) error {
	requestID := logger.GenerateRequestID()
	s.logger.Info("service_started", "Notification subscriber started", requestID, nil)

	err := s.consumer.StartConsuming(ctx, s.handleNotification)
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	if err != nil {
		s.logger.Error("consumer_failed", "Notification consumer failed", requestID, err, nil)
	}

	s.logger.Info("graceful_shutdown", "Notification subscriber stopped", requestID, nil)
	if closeErr := s.consumer.Close(); closeErr != nil {
		s.logger.Error("consumer_close_failed", "Failed to close consumer", requestID, closeErr, nil)
	}
	return err
}

func (s *Subscriber) handleNotification(ctx context.Context, body []byte) error {
	requestID := logger.GenerateRequestID()

	var event models.EventMessage
	if err := json.Unmarshal(body, &event); err != nil {
		s.logger.Error("message_parsing_failed", "Failed to parse notification message", requestID, err, nil)
		return fmt.Errorf("failed to parse notification: %w", err)
	}

	fmt.Fprintln(s.out, formatNotification(&event))

	s.logger.Info("notification_displayed", "Notification displayed to user", requestID, map[string]interface{}{
		"type":      event.Type,
		"entity_id": event.EntityID,
		"order_id":  event.OrderID,
		"timestamp": event.Timestamp.Format("2006-01-02 15:04:05"),
	})
	return nil
}

// formatNotification creates a human-readable notification line
func formatNotification(event *models.EventMessage) string {
	timestamp := event.Timestamp.Format("2006-01-02 15:04:05")
	amount := "0"
	if event.Amount != nil {
		amount = event.Amount.String()
	}

	switch event.Type {
	case models.EventOrderCreated:
		return fmt.Sprintf("[%s] Order %s created with %d item(s), total %s.",
			timestamp, event.EntityID, event.Items, amount)
	case models.EventPaymentRecorded:
		return fmt.Sprintf("[%s] Payment %s of %s recorded for order %s.",
			timestamp, event.EntityID, amount, event.OrderID)
	default:
		return fmt.Sprintf("[%s] %s event for %s.", timestamp, event.Type, event.EntityID)
	}
}

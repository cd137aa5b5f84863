package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Event types published on the notifications exchange
const (
	EventOrderCreated    = "order_created"
	EventPaymentRecorded = "payment_recorded"
)

// EventMessage represents a notification about a committed change
type EventMessage struct {
	Type      string           `json:"type"`
	EntityID  string           `json:"entity_id"`
	OrderID   string           `json:"order_id,omitempty"`
	Amount    *decimal.Decimal `json:"amount,omitempty"`
	Items     int              `json:"items,omitempty"`
	Timestamp time.Time        `json:"timestamp"`
}

// NewOrderCreatedMessage creates an EventMessage for a persisted order
func NewOrderCreatedMessage(order *Order) *EventMessage {
	amount := decimal.NewFromInt(order.Total())
	return &EventMessage{
		Type:      EventOrderCreated,
		EntityID:  order.ID.String(),
		OrderID:   order.ID.String(),
		Amount:    &amount,
		Items:     len(order.items),
		Timestamp: time.Now().UTC(),
	}
}

// NewPaymentRecordedMessage creates an EventMessage for a recorded payment
func NewPaymentRecordedMessage(p *Payment) *EventMessage {
	amount := p.Amount
	return &EventMessage{
		Type:      EventPaymentRecorded,
		EntityID:  p.ID.String(),
		OrderID:   p.OrderID.String(),
		Amount:    &amount,
		Timestamp: time.Now().UTC(),
	}
}

package models

import "github.com/shopspring/decimal"

// PaymentMethod is how an order was settled
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "Cash"
	PaymentCard PaymentMethod = "Card"
	PaymentUPI  PaymentMethod = "UPI"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentUPI:
		return true
	default:
		return false
	}
}

// Payment is a row of the Payment table. OrderID is a loose reference:
// the order is neither checked for existence nor limited to one payment.
type Payment struct {
	ID      ID              `json:"id"`
	OrderID ID              `json:"order_id"`
	Method  PaymentMethod   `json:"method"`
	Amount  decimal.Decimal `json:"amount"`
}

package models

import (
	"fmt"
	"math"
	"time"
)

// OrderItem represents one line of an order: a menu item and a quantity
type OrderItem struct {
	OrderID  ID       `json:"order_id"`
	MenuItem MenuItem `json:"menu_item"`
	Quantity int      `json:"quantity"`
}

// Subtotal is the item's price times its quantity. It is never stored.
func (i OrderItem) Subtotal() int64 {
	return i.MenuItem.Price * int64(i.Quantity)
}

func (i OrderItem) String() string {
	return fmt.Sprintf("%s x%d = %d", i.MenuItem.Name, i.Quantity, i.Subtotal())
}

// Order is the order aggregate: a header plus its line items. The total is
// derived from the items and recomputed on every change.
type Order struct {
	ID         ID
	CustomerID ID
	StaffID    ID
	OrderDate  time.Time

	// RecordedTotal is the header total as stored, set only when an order is
	// read back from the database.
	RecordedTotal int64

	items    []OrderItem
	total    int64
	overflow bool
}

// NewOrder creates an empty order dated now
func NewOrder(id, customerID, staffID ID) *Order {
	return &Order{
		ID:         id,
		CustomerID: customerID,
		StaffID:    staffID,
		OrderDate:  time.Now().UTC(),
	}
}

// AddItem appends a line item and recomputes the total
func (o *Order) AddItem(item OrderItem) {
	item.OrderID = o.ID
	o.items = append(o.items, item)
	o.RecomputeTotal()
}

// RemoveItem removes the first line item for the named menu item. It
// reports whether an item was removed.
func (o *Order) RemoveItem(menuItemName string) bool {
	for i, item := range o.items {
		if item.MenuItem.Name == menuItemName {
			o.items = append(o.items[:i], o.items[i+1:]...)
			o.RecomputeTotal()
			return true
		}
	}
	return false
}

// RecomputeTotal sums price times quantity over all items. A sum that does
// not fit in an int64 saturates and is reported by Overflowed.
func (o *Order) RecomputeTotal() int64 {
	var total int64
	overflow := false
	for _, item := range o.items {
		sub, ok := checkedMul(item.MenuItem.Price, int64(item.Quantity))
		if ok {
			total, ok = checkedAdd(total, sub)
		}
		if !ok {
			overflow = true
			total = math.MaxInt64
			break
		}
	}
	o.total = total
	o.overflow = overflow
	return total
}

// Overflowed reports whether the last recomputed total did not fit in an int64
func (o *Order) Overflowed() bool {
	return o.overflow
}

func checkedMul(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	c := a * b
	return c, c/b == a
}

func checkedAdd(a, b int64) (int64, bool) {
	c := a + b
	if (b > 0 && c < a) || (b < 0 && c > a) {
		return 0, false
	}
	return c, true
}

func (o *Order) Total() int64 {
	return o.total
}

// Items returns a copy of the line items in insertion order
func (o *Order) Items() []OrderItem {
	items := make([]OrderItem, len(o.items))
	copy(items, o.items)
	return items
}

// SetID assigns the order id and propagates it to the line items
func (o *Order) SetID(id ID) {
	o.ID = id
	for i := range o.items {
		o.items[i].OrderID = id
	}
}

// OrderView is the serialized form of an order
type OrderView struct {
	ID            ID          `json:"id"`
	CustomerID    ID          `json:"customer_id"`
	StaffID       ID          `json:"staff_id"`
	OrderDate     time.Time   `json:"order_date"`
	TotalAmount   int64       `json:"total_amount"`
	RecordedTotal int64       `json:"recorded_total,omitempty"`
	Items         []OrderItem `json:"items"`
}

func (o *Order) View() OrderView {
	return OrderView{
		ID:            o.ID,
		CustomerID:    o.CustomerID,
		StaffID:       o.StaffID,
		OrderDate:     o.OrderDate,
		TotalAmount:   o.Total(),
		RecordedTotal: o.RecordedTotal,
		Items:         o.Items(),
	}
}

// LineRequest names a menu item and a quantity; it is how callers describe
// the lines of an order before the menu items are resolved.
type LineRequest struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// CreateOrderRequest represents the request to create a new order
type CreateOrderRequest struct {
	ID         ID            `json:"id"`
	CustomerID ID            `json:"customer_id"`
	StaffID    ID            `json:"staff_id"`
	OrderDate  *time.Time    `json:"order_date,omitempty"`
	Items      []LineRequest `json:"items"`
}

package validation

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"restaurant-management/internal/models"
)

// Limits of the storage columns: INTEGER for quantities and prices,
// NUMERIC(10,2) for salaries and payment amounts.
const (
	MaxQuantity = math.MaxInt32
	MaxPrice    = math.MaxInt32

	moneyScale = 2
)

// moneyLimit is the smallest amount a NUMERIC(10,2) column cannot hold.
var moneyLimit = decimal.New(1, 8)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func required(field, value, message string) error {
	if strings.TrimSpace(value) == "" {
		return ValidationError{Field: field, Message: message}
	}
	return nil
}

func ValidateCustomer(c *models.Customer) error {
	if err := required("first_name", c.FirstName, "First name is required."); err != nil {
		return err
	}
	if err := required("last_name", c.LastName, "Last name is required."); err != nil {
		return err
	}
	if err := required("email", c.Email, "Email is required."); err != nil {
		return err
	}
	if err := required("phone", c.Phone, "Phone is required."); err != nil {
		return err
	}
	return validateIDPrefix("id", c.ID, models.CustomerPrefix)
}

func ValidateStaff(s *models.Staff) error {
	if err := required("first_name", s.FirstName, "First name is required."); err != nil {
		return err
	}
	if err := required("last_name", s.LastName, "Last name is required."); err != nil {
		return err
	}
	if s.Role == "" {
		return ValidationError{Field: "role", Message: "Role is required."}
	}
	if !s.Role.Valid() {
		return ValidationError{Field: "role", Message: fmt.Sprintf("Role %q is not a known staff role.", s.Role)}
	}
	if err := required("phone", s.Phone, "Phone is required."); err != nil {
		return err
	}
	if s.DateOfBirth.IsZero() {
		return ValidationError{Field: "date_of_birth", Message: "Date of Birth is required."}
	}
	if err := validateMoney("salary", "Salary", s.Salary); err != nil {
		return err
	}
	return validateIDPrefix("id", s.ID, models.StaffPrefix)
}

func ValidateMenuItem(m *models.MenuItem) error {
	if err := required("name", m.Name, "Item name is required."); err != nil {
		return err
	}
	if err := required("category", m.Category, "Category is required."); err != nil {
		return err
	}
	if m.Price <= 0 {
		return ValidationError{Field: "price", Message: "Price must be a positive number."}
	}
	if m.Price > MaxPrice {
		return ValidationError{Field: "price", Message: "Price is too large."}
	}
	return nil
}

// ValidateOrder checks the preconditions of order persistence: at least one
// item, a customer and a staff member.
func ValidateOrder(o *models.Order) error {
	items := o.Items()
	if len(items) == 0 {
		return ValidationError{Field: "items", Message: "Cannot create an empty order. Please add items first."}
	}
	if o.CustomerID.IsZero() {
		return ValidationError{Field: "customer_id", Message: "Please select a customer."}
	}
	if o.StaffID.IsZero() {
		return ValidationError{Field: "staff_id", Message: "Please select a staff member."}
	}
	if err := validateIDPrefix("customer_id", o.CustomerID, models.CustomerPrefix); err != nil {
		return err
	}
	if err := validateIDPrefix("staff_id", o.StaffID, models.StaffPrefix); err != nil {
		return err
	}
	for i, item := range items {
		if err := validateOrderItem(item, i); err != nil {
			return err
		}
	}
	if o.Overflowed() {
		return ValidationError{Field: "items", Message: "Order total is too large."}
	}
	return nil
}

func validateOrderItem(item models.OrderItem, index int) error {
	if strings.TrimSpace(item.MenuItem.Name) == "" {
		return ValidationError{
			Field:   fmt.Sprintf("items[%d].name", index),
			Message: "Please select a menu item.",
		}
	}
	if item.Quantity <= 0 {
		return ValidationError{
			Field:   fmt.Sprintf("items[%d].quantity", index),
			Message: "Quantity must be a positive number.",
		}
	}
	if item.Quantity > MaxQuantity {
		return ValidationError{
			Field:   fmt.Sprintf("items[%d].quantity", index),
			Message: "Quantity is too large.",
		}
	}
	return nil
}

// ValidateLines checks order lines before their menu items are resolved
func ValidateLines(lines []models.LineRequest) error {
	if len(lines) == 0 {
		return ValidationError{Field: "items", Message: "Cannot create an empty order. Please add items first."}
	}
	for i, line := range lines {
		item := models.OrderItem{MenuItem: models.MenuItem{Name: line.Name}, Quantity: line.Quantity}
		if err := validateOrderItem(item, i); err != nil {
			return err
		}
	}
	return nil
}

func ValidatePayment(p *models.Payment) error {
	if p.OrderID.IsZero() {
		return ValidationError{Field: "order_id", Message: "Order ID is required."}
	}
	if err := validateIDPrefix("order_id", p.OrderID, models.OrderPrefix); err != nil {
		return err
	}
	if !p.Method.Valid() {
		return ValidationError{Field: "method", Message: "Payment method must be Cash, Card or UPI."}
	}
	if err := validateMoney("amount", "Amount", p.Amount); err != nil {
		return err
	}
	return validateIDPrefix("id", p.ID, models.PaymentPrefix)
}

// validateIDPrefix accepts an unassigned id; it is filled in on create.
func validateIDPrefix(field string, id models.ID, prefix byte) error {
	if id.IsZero() || id.Prefix == prefix {
		return nil
	}
	return ValidationError{
		Field:   field,
		Message: fmt.Sprintf("ID %s must start with %c.", id, prefix),
	}
}

// ParseDateOfBirth parses a form value in yyyy-MM-dd format
func ParseDateOfBirth(raw string) (models.Date, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return models.Date{}, ValidationError{Field: "date_of_birth", Message: "Date of Birth is required."}
	}
	d, err := models.ParseDate(raw)
	if err != nil {
		return models.Date{}, ValidationError{Field: "date_of_birth", Message: "Date of Birth must be in the format yyyy-MM-dd."}
	}
	return d, nil
}

// ParseSalary parses a form value as a positive decimal
func ParseSalary(raw string) (decimal.Decimal, error) {
	return parsePositiveDecimal("salary", "Salary", raw)
}

// ParseAmount parses a form value as a positive decimal
func ParseAmount(raw string) (decimal.Decimal, error) {
	return parsePositiveDecimal("amount", "Amount", raw)
}

func parsePositiveDecimal(field, label, raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, ValidationError{Field: field, Message: label + " is required."}
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, ValidationError{Field: field, Message: label + " must be a valid number."}
	}
	if err := validateMoney(field, label, d); err != nil {
		return decimal.Zero, err
	}
	return d, nil
}

// validateMoney checks that d is positive and is stored without rounding
func validateMoney(field, label string, d decimal.Decimal) error {
	if !d.IsPositive() {
		return ValidationError{Field: field, Message: label + " must be a positive number."}
	}
	if !d.Equal(d.Truncate(moneyScale)) {
		return ValidationError{Field: field, Message: fmt.Sprintf("%s must have at most %d decimal places.", label, moneyScale)}
	}
	if d.GreaterThanOrEqual(moneyLimit) {
		return ValidationError{Field: field, Message: label + " is too large."}
	}
	return nil
}

// ParsePrice parses a form value as a positive whole price
func ParsePrice(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, ValidationError{Field: "price", Message: "Price is required."}
	}
	price, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, ValidationError{Field: "price", Message: "Price must be a valid number."}
	}
	if price <= 0 {
		return 0, ValidationError{Field: "price", Message: "Price must be a positive number."}
	}
	if price > MaxPrice {
		return 0, ValidationError{Field: "price", Message: "Price is too large."}
	}
	return price, nil
}

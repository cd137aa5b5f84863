package commands

import (
	"bytes"
	"encoding/json"

	"restaurant-management/internal/models"
	"restaurant-management/internal/validation"
)

// formValue is a form field that accepts a JSON string or a bare number
// and keeps its text for the validation parsers.
type formValue string

func (f *formValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*f = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = formValue(s)
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*f = formValue(n.String())
	}
	return nil
}

type idPayload struct {
	ID models.ID `json:"id"`
}

type staffForm struct {
	ID          models.ID        `json:"id"`
	FirstName   string           `json:"first_name"`
	LastName    string           `json:"last_name"`
	Role        models.StaffRole `json:"role"`
	Phone       string           `json:"phone"`
	DateOfBirth formValue        `json:"date_of_birth"`
	Salary      formValue        `json:"salary"`
}

func (f staffForm) staff() (*models.Staff, error) {
	dob, err := validation.ParseDateOfBirth(string(f.DateOfBirth))
	if err != nil {
		return nil, err
	}
	salary, err := validation.ParseSalary(string(f.Salary))
	if err != nil {
		return nil, err
	}
	return &models.Staff{
		ID:          f.ID,
		FirstName:   f.FirstName,
		LastName:    f.LastName,
		Role:        f.Role,
		Phone:       f.Phone,
		DateOfBirth: dob,
		Salary:      salary,
	}, nil
}

type rolePayload struct {
	Role models.StaffRole `json:"role"`
}

type menuForm struct {
	Name     string    `json:"name"`
	Category string    `json:"category"`
	Price    formValue `json:"price"`

	// OriginalName selects the item an update rewrites
	OriginalName string `json:"original_name"`
}

func (f menuForm) item() (*models.MenuItem, error) {
	price, err := validation.ParsePrice(string(f.Price))
	if err != nil {
		return nil, err
	}
	return &models.MenuItem{Name: f.Name, Category: f.Category, Price: price}, nil
}

type namePayload struct {
	Name string `json:"name"`
}

type categoryPayload struct {
	Category string `json:"category"`
}

type customerRef struct {
	CustomerID models.ID `json:"customer_id"`
}

type orderRef struct {
	OrderID models.ID `json:"order_id"`
}

type paymentForm struct {
	ID      models.ID            `json:"id"`
	OrderID models.ID            `json:"order_id"`
	Method  models.PaymentMethod `json:"method"`
	Amount  formValue            `json:"amount"`
}

func (f paymentForm) payment() (*models.Payment, error) {
	amount, err := validation.ParseAmount(string(f.Amount))
	if err != nil {
		return nil, err
	}
	return &models.Payment{ID: f.ID, OrderID: f.OrderID, Method: f.Method, Amount: amount}, nil
}

type nextIDResult struct {
	ID models.ID `json:"id"`
}

func orderViews(orders []*models.Order) []models.OrderView {
	views := make([]models.OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, o.View())
	}
	return views
}

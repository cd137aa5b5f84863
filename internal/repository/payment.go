package repository

import (
	"context"

	"restaurant-management/internal/database"
	"restaurant-management/internal/models"
)

// PaymentRepository stores payments. The order a payment refers to is not
// checked.
type PaymentRepository struct {
	db database.Querier
}

func NewPaymentRepository(db database.Querier) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func scanPayment(row scanner) (models.Payment, error) {
	var (
		p           models.Payment
		id, orderID string
		method      string
	)
	if err := row.Scan(&id, &orderID, &method, &p.Amount); err != nil {
		return models.Payment{}, err
	}
	parsed, err := parseID("scan payment", id)
	if err != nil {
		return models.Payment{}, err
	}
	order, err := parseID("scan payment order", orderID)
	if err != nil {
		return models.Payment{}, err
	}
	p.ID = parsed
	p.OrderID = order
	p.Method = models.PaymentMethod(method)
	return p, nil
}

func (r *PaymentRepository) List(ctx context.Context) ([]models.Payment, error) {
	rows, err := r.db.Query(ctx, database.ListPaymentsSQL)
	if err != nil {
		return nil, wrap("list payments", err)
	}
	return collect("list payments", rows, scanPayment)
}

func (r *PaymentRepository) GetByID(ctx context.Context, id models.ID) (*models.Payment, error) {
	p, err := scanPayment(r.db.QueryRow(ctx, database.GetPaymentSQL, id.String()))
	if err != nil {
		return nil, wrap("get payment "+id.String(), err)
	}
	return &p, nil
}

// GetByOrderID returns the first payment recorded against orderID
func (r *PaymentRepository) GetByOrderID(ctx context.Context, orderID models.ID) (*models.Payment, error) {
	p, err := scanPayment(r.db.QueryRow(ctx, database.GetPaymentByOrderSQL, orderID.String()))
	if err != nil {
		return nil, wrap("get payment for order "+orderID.String(), err)
	}
	return &p, nil
}

func (r *PaymentRepository) Create(ctx context.Context, p *models.Payment) error {
	tag, err := r.db.Exec(ctx, database.InsertPaymentSQL,
		p.ID.String(), p.OrderID.String(), string(p.Method), p.Amount)
	return expectOne("insert payment "+p.ID.String(), tag, err)
}

func (r *PaymentRepository) Update(ctx context.Context, p *models.Payment) error {
	tag, err := r.db.Exec(ctx, database.UpdatePaymentSQL,
		p.OrderID.String(), string(p.Method), p.Amount, p.ID.String())
	return expectOne("update payment "+p.ID.String(), tag, err)
}

func (r *PaymentRepository) Delete(ctx context.Context, id models.ID) error {
	tag, err := r.db.Exec(ctx, database.DeletePaymentSQL, id.String())
	return expectOne("delete payment "+id.String(), tag, err)
}

func (r *PaymentRepository) NextID(ctx context.Context) (models.ID, error) {
	return nextID(ctx, r.db, database.MaxPaymentIDSQL, models.PaymentPrefix)
}

package repository

import (
	"context"

	"restaurant-management/internal/database"
	"restaurant-management/internal/models"
)

type CustomerRepository struct {
	db database.Querier
}

func NewCustomerRepository(db database.Querier) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func scanCustomer(row scanner) (models.Customer, error) {
	var (
		c  models.Customer
		id string
	)
	if err := row.Scan(&id, &c.FirstName, &c.LastName, &c.Email, &c.Phone); err != nil {
		return models.Customer{}, err
	}
	parsed, err := parseID("scan customer", id)
	if err != nil {
		return models.Customer{}, err
	}
	c.ID = parsed
	return c, nil
}

func (r *CustomerRepository) List(ctx context.Context) ([]models.Customer, error) {
	rows, err := r.db.Query(ctx, database.ListCustomersSQL)
	if err != nil {
		return nil, wrap("list customers", err)
	}
	return collect("list customers", rows, scanCustomer)
}

func (r *CustomerRepository) GetByID(ctx context.Context, id models.ID) (*models.Customer, error) {
	c, err := scanCustomer(r.db.QueryRow(ctx, database.GetCustomerSQL, id.String()))
	if err != nil {
		return nil, wrap("get customer "+id.String(), err)
	}
	return &c, nil
}

func (r *CustomerRepository) Create(ctx context.Context, c *models.Customer) error {
	tag, err := r.db.Exec(ctx, database.InsertCustomerSQL,
		c.ID.String(), c.FirstName, c.LastName, c.Email, c.Phone)
	return expectOne("insert customer "+c.ID.String(), tag, err)
}

func (r *CustomerRepository) Update(ctx context.Context, c *models.Customer) error {
	tag, err := r.db.Exec(ctx, database.UpdateCustomerSQL,
		c.FirstName, c.LastName, c.Email, c.Phone, c.ID.String())
	return expectOne("update customer "+c.ID.String(), tag, err)
}

func (r *CustomerRepository) Delete(ctx context.Context, id models.ID) error {
	tag, err := r.db.Exec(ctx, database.DeleteCustomerSQL, id.String())
	return expectOne("delete customer "+id.String(), tag, err)
}

func (r *CustomerRepository) NextID(ctx context.Context) (models.ID, error) {
	return nextID(ctx, r.db, database.MaxCustomerIDSQL, models.CustomerPrefix)
}

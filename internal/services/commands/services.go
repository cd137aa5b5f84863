package commands

import (
	"context"

	"restaurant-management/internal/models"
)

type CustomerService interface {
	List(ctx context.Context) []models.Customer
	Get(ctx context.Context, id models.ID) (*models.Customer, error)
	Create(ctx context.Context, c *models.Customer) (*models.Customer, error)
	Update(ctx context.Context, c *models.Customer) error
	Delete(ctx context.Context, id models.ID) error
	NextID(ctx context.Context) (models.ID, error)
}

type StaffService interface {
	List(ctx context.Context) []models.Staff
	ListByRole(ctx context.Context, role models.StaffRole) ([]models.Staff, error)
	Get(ctx context.Context, id models.ID) (*models.Staff, error)
	Create(ctx context.Context, s *models.Staff) (*models.Staff, error)
	Update(ctx context.Context, s *models.Staff) error
	Delete(ctx context.Context, id models.ID) error
	NextID(ctx context.Context) (models.ID, error)
}

type MenuService interface {
	List(ctx context.Context) []models.MenuItem
	ListByCategory(ctx context.Context, category string) []models.MenuItem
	Categories(ctx context.Context) []string
	Get(ctx context.Context, name string) (*models.MenuItem, error)
	Create(ctx context.Context, item *models.MenuItem) (*models.MenuItem, error)
	Update(ctx context.Context, item *models.MenuItem, originalName string) error
	Delete(ctx context.Context, name string) error
}

type OrderService interface {
	List(ctx context.Context) []*models.Order
	ListByCustomer(ctx context.Context, customerID models.ID) ([]*models.Order, error)
	Get(ctx context.Context, id models.ID) (*models.Order, error)
	Create(ctx context.Context, req models.CreateOrderRequest) (*models.Order, error)
	Quote(ctx context.Context, req models.CreateOrderRequest) (*models.Order, error)
	NextID(ctx context.Context) (models.ID, error)
}

type PaymentService interface {
	List(ctx context.Context) []models.Payment
	Get(ctx context.Context, id models.ID) (*models.Payment, error)
	GetByOrder(ctx context.Context, orderID models.ID) (*models.Payment, error)
	Create(ctx context.Context, p *models.Payment) (*models.Payment, error)
	Update(ctx context.Context, p *models.Payment) error
	Delete(ctx context.Context, id models.ID) error
	NextID(ctx context.Context) (models.ID, error)
}

type DashboardService interface {
	Current(ctx context.Context) (models.DashboardSummary, error)
}

// Services bundles the services the dispatcher exposes
type Services struct {
	Customers CustomerService
	Staff     StaffService
	Menu      MenuService
	Orders    OrderService
	Payments  PaymentService
	Dashboard DashboardService
}

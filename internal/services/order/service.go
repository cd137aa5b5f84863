package order

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"restaurant-management/internal/logger"
	"restaurant-management/internal/models"
	"restaurant-management/internal/repository"
	"restaurant-management/internal/services/notification"
	"restaurant-management/internal/validation"
)

// Repository persists and reads back order aggregates
type Repository interface {
	Create(ctx context.Context, o *models.Order) error
	GetByID(ctx context.Context, id models.ID) (*models.Order, error)
	List(ctx context.Context) ([]*models.Order, error)
	ListByCustomer(ctx context.Context, customerID models.ID) ([]*models.Order, error)
	NextID(ctx context.Context) (models.ID, error)
}

// MenuLookup resolves line items by menu item name
type MenuLookup interface {
	GetByName(ctx context.Context, name string) (*models.MenuItem, error)
}

type Service struct {
	repo     Repository
	menu     MenuLookup
	notifier notification.Notifier
	logger   *logger.Logger
}

func NewService(repo Repository, menu MenuLookup, notifier notification.Notifier, log *logger.Logger) *Service {
	if notifier == nil {
		notifier = notification.Nop{}
	}
	return &Service{repo: repo, menu: menu, notifier: notifier, logger: log}
}

// build resolves every line against the menu and assembles the aggregate.
// Nothing is written.
func (s *Service) build(ctx context.Context, req models.CreateOrderRequest) (*models.Order, error) {
	if err := validation.ValidateLines(req.Items); err != nil {
		return nil, err
	}

	o := models.NewOrder(req.ID, req.CustomerID, req.StaffID)
	if req.OrderDate != nil {
		o.OrderDate = req.OrderDate.UTC()
	}

	for i, line := range req.Items {
		name := strings.TrimSpace(line.Name)
		item, err := s.menu.GetByName(ctx, name)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, validation.ValidationError{
					Field:   fmt.Sprintf("items[%d].name", i),
					Message: fmt.Sprintf("Menu item %s does not exist.", name),
				}
			}
			return nil, err
		}
		o.AddItem(models.OrderItem{MenuItem: *item, Quantity: line.Quantity})
	}

	if err := validation.ValidateOrder(o); err != nil {
		return nil, err
	}
	return o, nil
}

// Quote builds the order and returns it with its computed total
func (s *Service) Quote(ctx context.Context, req models.CreateOrderRequest) (*models.Order, error) {
	o, err := s.build(ctx, req)
	if err != nil {
		s.logger.Debug("order_quote_rejected", "Order could not be quoted", logger.RequestIDFrom(ctx), map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}
	return o, nil
}

// Create builds, persists and announces an order. The header and its line
// items are committed together or not at all.
func (s *Service) Create(ctx context.Context, req models.CreateOrderRequest) (*models.Order, error) {
	requestID := logger.RequestIDFrom(ctx)

	o, err := s.build(ctx, req)
	if err != nil {
		return nil, err
	}

	if o.ID.IsZero() {
		id, err := s.repo.NextID(ctx)
		if err != nil {
			s.logger.Error("order_next_id_failed", "Failed to generate order id", requestID, err, nil)
			return nil, err
		}
		o.SetID(id)
	}

	if err := s.repo.Create(ctx, o); err != nil {
		s.logger.Error("order_create_failed", "Failed to create order", requestID, err, map[string]interface{}{
			"order_id":    o.ID.String(),
			"customer_id": o.CustomerID.String(),
			"staff_id":    o.StaffID.String(),
		})
		return nil, err
	}

	s.logger.Info("order_created", "Order created", requestID, map[string]interface{}{
		"order_id":     o.ID.String(),
		"customer_id":  o.CustomerID.String(),
		"staff_id":     o.StaffID.String(),
		"items":        len(o.Items()),
		"total_amount": o.Total(),
	})
	s.notifier.Notify(ctx, models.NewOrderCreatedMessage(o))
	return o, nil
}

func (s *Service) Get(ctx context.Context, id models.ID) (*models.Order, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("order_get_failed", "Failed to get order", logger.RequestIDFrom(ctx), err, map[string]interface{}{
			"order_id": id.String(),
		})
		return nil, err
	}
	return o, nil
}

func (s *Service) List(ctx context.Context) []*models.Order {
	orders, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("order_list_failed", "Failed to list orders", logger.RequestIDFrom(ctx), err, nil)
		return []*models.Order{}
	}
	if orders == nil {
		orders = []*models.Order{}
	}
	return orders
}

func (s *Service) ListByCustomer(ctx context.Context, customerID models.ID) ([]*models.Order, error) {
	if customerID.IsZero() {
		return nil, validation.ValidationError{Field: "customer_id", Message: "Please select a customer."}
	}
	orders, err := s.repo.ListByCustomer(ctx, customerID)
	if err != nil {
		s.logger.Error("order_list_failed", "Failed to list orders for customer", logger.RequestIDFrom(ctx), err, map[string]interface{}{
			"customer_id": customerID.String(),
		})
		return []*models.Order{}, nil
	}
	if orders == nil {
		orders = []*models.Order{}
	}
	return orders, nil
}

func (s *Service) NextID(ctx context.Context) (models.ID, error) {
	id, err := s.repo.NextID(ctx)
	if err != nil {
		s.logger.Error("order_next_id_failed", "Failed to generate order id", logger.RequestIDFrom(ctx), err, nil)
	}
	return id, err
}

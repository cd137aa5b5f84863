package customer

import (
	"context"

	"restaurant-management/internal/logger"
	"restaurant-management/internal/models"
	"restaurant-management/internal/validation"
)

// Repository is the customer storage used by the service
type Repository interface {
	List(ctx context.Context) ([]models.Customer, error)
	GetByID(ctx context.Context, id models.ID) (*models.Customer, error)
	Create(ctx context.Context, c *models.Customer) error
	Update(ctx context.Context, c *models.Customer) error
	Delete(ctx context.Context, id models.ID) error
	NextID(ctx context.Context) (models.ID, error)
}

type Service struct {
	repo   Repository
	logger *logger.Logger
}

func NewService(repo Repository, log *logger.Logger) *Service {
	return &Service{repo: repo, logger: log}
}

// List returns every customer. A failed read is logged and yields an empty
// list.
func (s *Service) List(ctx context.Context) []models.Customer {
	customers, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("customer_list_failed", "Failed to list customers", logger.RequestIDFrom(ctx), err, nil)
		return []models.Customer{}
	}
	if customers == nil {
		customers = []models.Customer{}
	}
	return customers
}

func (s *Service) Get(ctx context.Context, id models.ID) (*models.Customer, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("customer_get_failed", "Failed to get customer", logger.RequestIDFrom(ctx), err, map[string]interface{}{
			"customer_id": id.String(),
		})
		return nil, err
	}
	return c, nil
}

// Create validates c, assigns the next id when c has none and stores it
func (s *Service) Create(ctx context.Context, c *models.Customer) (*models.Customer, error) {
	requestID := logger.RequestIDFrom(ctx)
	if err := validation.ValidateCustomer(c); err != nil {
		return nil, err
	}

	if c.ID.IsZero() {
		id, err := s.repo.NextID(ctx)
		if err != nil {
			s.logger.Error("customer_next_id_failed", "Failed to generate customer id", requestID, err, nil)
			return nil, err
		}
		c.ID = id
	}

	if err := s.repo.Create(ctx, c); err != nil {
		s.logger.Error("customer_create_failed", "Failed to add customer", requestID, err, map[string]interface{}{
			"customer_id": c.ID.String(),
		})
		return nil, err
	}

	s.logger.Info("customer_created", "Customer added", requestID, map[string]interface{}{
		"customer_id": c.ID.String(),
	})
	return c, nil
}

func (s *Service) Update(ctx context.Context, c *models.Customer) error {
	requestID := logger.RequestIDFrom(ctx)
	if c.ID.IsZero() {
		return validation.ValidationError{Field: "id", Message: "Please select a customer to update."}
	}
	if err := validation.ValidateCustomer(c); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, c); err != nil {
		s.logger.Error("customer_update_failed", "Failed to update customer", requestID, err, map[string]interface{}{
			"customer_id": c.ID.String(),
		})
		return err
	}

	s.logger.Info("customer_updated", "Customer updated", requestID, map[string]interface{}{
		"customer_id": c.ID.String(),
	})
	return nil
}

func (s *Service) Delete(ctx context.Context, id models.ID) error {
	requestID := logger.RequestIDFrom(ctx)
	if id.IsZero() {
		return validation.ValidationError{Field: "id", Message: "Please select a customer to delete."}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("customer_delete_failed", "Failed to delete customer", requestID, err, map[string]interface{}{
			"customer_id": id.String(),
		})
		return err
	}

	s.logger.Info("customer_deleted", "Customer deleted", requestID, map[string]interface{}{
		"customer_id": id.String(),
	})
	return nil
}

func (s *Service) NextID(ctx context.Context) (models.ID, error) {
	id, err := s.repo.NextID(ctx)
	if err != nil {
		s.logger.Error("customer_next_id_failed", "Failed to generate customer id", logger.RequestIDFrom(ctx), err, nil)
	}
	return id, err
}

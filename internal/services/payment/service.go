package payment

import (
	"context"

	"restaurant-management/internal/logger"
	"restaurant-management/internal/models"
	"restaurant-management/internal/services/notification"
	"restaurant-management/internal/validation"
)

// Repository is the payment storage used by the service
type Repository interface {
	List(ctx context.Context) ([]models.Payment, error)
	GetByID(ctx context.Context, id models.ID) (*models.Payment, error)
	GetByOrderID(ctx context.Context, orderID models.ID) (*models.Payment, error)
	Create(ctx context.Context, p *models.Payment) error
	Update(ctx context.Context, p *models.Payment) error
	Delete(ctx context.Context, id models.ID) error
	NextID(ctx context.Context) (models.ID, error)
}

// Service records payments. A payment names an order but the order is not
// checked, and an order may be paid more than once.
type Service struct {
	repo     Repository
	notifier notification.Notifier
	logger   *logger.Logger
}

func NewService(repo Repository, notifier notification.Notifier, log *logger.Logger) *Service {
	if notifier == nil {
		notifier = notification.Nop{}
	}
	return &Service{repo: repo, notifier: notifier, logger: log}
}

func (s *Service) List(ctx context.Context) []models.Payment {
	payments, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("payment_list_failed", "Failed to list payments", logger.RequestIDFrom(ctx), err, nil)
		return []models.Payment{}
	}
	if payments == nil {
		payments = []models.Payment{}
	}
	return payments
}

func (s *Service) Get(ctx context.Context, id models.ID) (*models.Payment, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("payment_get_failed", "Failed to get payment", logger.RequestIDFrom(ctx), err, map[string]interface{}{
			"payment_id": id.String(),
		})
		return nil, err
	}
	return p, nil
}

func (s *Service) GetByOrder(ctx context.Context, orderID models.ID) (*models.Payment, error) {
	p, err := s.repo.GetByOrderID(ctx, orderID)
	if err != nil {
		s.logger.Error("payment_get_failed", "Failed to get payment for order", logger.RequestIDFrom(ctx), err, map[string]interface{}{
			"order_id": orderID.String(),
		})
		return nil, err
	}
	return p, nil
}

// Create records a payment and announces it
func (s *Service) Create(ctx context.Context, p *models.Payment) (*models.Payment, error) {
	requestID := logger.RequestIDFrom(ctx)
	if err := validation.ValidatePayment(p); err != nil {
		return nil, err
	}

	if p.ID.IsZero() {
		id, err := s.repo.NextID(ctx)
		if err != nil {
			s.logger.Error("payment_next_id_failed", "Failed to generate payment id", requestID, err, nil)
			return nil, err
		}
		p.ID = id
	}

	if err := s.repo.Create(ctx, p); err != nil {
		s.logger.Error("payment_create_failed", "Payment failed", requestID, err, map[string]interface{}{
			"payment_id": p.ID.String(),
			"order_id":   p.OrderID.String(),
		})
		return nil, err
	}

	s.logger.Info("payment_recorded", "Payment recorded", requestID, map[string]interface{}{
		"payment_id": p.ID.String(),
		"order_id":   p.OrderID.String(),
		"method":     string(p.Method),
		"amount":     p.Amount.String(),
	})
	s.notifier.Notify(ctx, models.NewPaymentRecordedMessage(p))
	return p, nil
}

func (s *Service) Update(ctx context.Context, p *models.Payment) error {
	requestID := logger.RequestIDFrom(ctx)
	if p.ID.IsZero() {
		return validation.ValidationError{Field: "id", Message: "Please select a payment to update."}
	}
	if err := validation.ValidatePayment(p); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, p); err != nil {
		s.logger.Error("payment_update_failed", "Failed to update payment", requestID, err, map[string]interface{}{
			"payment_id": p.ID.String(),
		})
		return err
	}

	s.logger.Info("payment_updated", "Payment updated", requestID, map[string]interface{}{
		"payment_id": p.ID.String(),
	})
	return nil
}

func (s *Service) Delete(ctx context.Context, id models.ID) error {
	requestID := logger.RequestIDFrom(ctx)
	if id.IsZero() {
		return validation.ValidationError{Field: "id", Message: "Please select a payment to delete."}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("payment_delete_failed", "Failed to delete payment", requestID, err, map[string]interface{}{
			"payment_id": id.String(),
		})
		return err
	}

	s.logger.Info("payment_deleted", "Payment deleted", requestID, map[string]interface{}{
		"payment_id": id.String(),
	})
	return nil
}

func (s *Service) NextID(ctx context.Context) (models.ID, error) {
	id, err := s.repo.NextID(ctx)
	if err != nil {
		s.logger.Error("payment_next_id_failed", "Failed to generate payment id", logger.RequestIDFrom(ctx), err, nil)
	}
	return id, err
}

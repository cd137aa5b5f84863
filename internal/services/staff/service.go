package staff

import (
	"context"
	"fmt"

	"restaurant-management/internal/logger"
	"restaurant-management/internal/models"
	"restaurant-management/internal/validation"
)

// Repository is the staff storage used by the service
type Repository interface {
	List(ctx context.Context) ([]models.Staff, error)
	ListByRole(ctx context.Context, role models.StaffRole) ([]models.Staff, error)
	GetByID(ctx context.Context, id models.ID) (*models.Staff, error)
	Create(ctx context.Context, s *models.Staff) error
	Update(ctx context.Context, s *models.Staff) error
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

// List returns every staff member; failures are logged and yield an empty
// list.
func (s *Service) List(ctx context.Context) []models.Staff {
	members, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("staff_list_failed", "Failed to list staff", logger.RequestIDFrom(ctx), err, nil)
		return []models.Staff{}
	}
	if members == nil {
		members = []models.Staff{}
	}
	return members
}

func (s *Service) ListByRole(ctx context.Context, role models.StaffRole) ([]models.Staff, error) {
	if !role.Valid() {
		return nil, validation.ValidationError{Field: "role", Message: fmt.Sprintf("Role %q is not a known staff role.", role)}
	}
	members, err := s.repo.ListByRole(ctx, role)
	if err != nil {
		s.logger.Error("staff_list_failed", "Failed to list staff by role", logger.RequestIDFrom(ctx), err, map[string]interface{}{
			"role": string(role),
		})
		return nil, err
	}
	if members == nil {
		members = []models.Staff{}
	}
	return members, nil
}

func (s *Service) Get(ctx context.Context, id models.ID) (*models.Staff, error) {
	member, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("staff_get_failed", "Failed to get staff", logger.RequestIDFrom(ctx), err, map[string]interface{}{
			"staff_id": id.String(),
		})
		return nil, err
	}
	return member, nil
}

func (s *Service) Create(ctx context.Context, member *models.Staff) (*models.Staff, error) {
	requestID := logger.RequestIDFrom(ctx)
	if err := validation.ValidateStaff(member); err != nil {
		return nil, err
	}

	if member.ID.IsZero() {
		id, err := s.repo.NextID(ctx)
		if err != nil {
			s.logger.Error("staff_next_id_failed", "Failed to generate staff id", requestID, err, nil)
			return nil, err
		}
		member.ID = id
	}

	if err := s.repo.Create(ctx, member); err != nil {
		s.logger.Error("staff_create_failed", "Failed to add staff", requestID, err, map[string]interface{}{
			"staff_id": member.ID.String(),
		})
		return nil, err
	}

	s.logger.Info("staff_created", "Staff added", requestID, map[string]interface{}{
		"staff_id": member.ID.String(),
		"role":     string(member.Role),
	})
	return member, nil
}

func (s *Service) Update(ctx context.Context, member *models.Staff) error {
	requestID := logger.RequestIDFrom(ctx)
	if member.ID.IsZero() {
		return validation.ValidationError{Field: "id", Message: "Please select a staff member to update."}
	}
	if err := validation.ValidateStaff(member); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, member); err != nil {
		s.logger.Error("staff_update_failed", "Failed to update staff", requestID, err, map[string]interface{}{
			"staff_id": member.ID.String(),
		})
		return err
	}

	s.logger.Info("staff_updated", "Staff updated", requestID, map[string]interface{}{
		"staff_id": member.ID.String(),
	})
	return nil
}

func (s *Service) Delete(ctx context.Context, id models.ID) error {
	requestID := logger.RequestIDFrom(ctx)
	if id.IsZero() {
		return validation.ValidationError{Field: "id", Message: "Please select a staff member to delete."}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("staff_delete_failed", "Failed to delete staff", requestID, err, map[string]interface{}{
			"staff_id": id.String(),
		})
		return err
	}

	s.logger.Info("staff_deleted", "Staff deleted", requestID, map[string]interface{}{
		"staff_id": id.String(),
	})
	return nil
}

func (s *Service) NextID(ctx context.Context) (models.ID, error) {
	id, err := s.repo.NextID(ctx)
	if err != nil {
		s.logger.Error("staff_next_id_failed", "Failed to generate staff id", logger.RequestIDFrom(ctx), err, nil)
	}
	return id, err
}

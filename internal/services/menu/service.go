package menu

import (
	"context"
	"strings"

	"restaurant-management/internal/logger"
	"restaurant-management/internal/models"
	"restaurant-management/internal/validation"
)

// Repository is the menu storage used by the service
type Repository interface {
	List(ctx context.Context) ([]models.MenuItem, error)
	ListByCategory(ctx context.Context, category string) ([]models.MenuItem, error)
	Categories(ctx context.Context) ([]string, error)
	GetByName(ctx context.Context, name string) (*models.MenuItem, error)
	Create(ctx context.Context, m *models.MenuItem) error
	Update(ctx context.Context, m *models.MenuItem, originalName string) error
	Delete(ctx context.Context, name string) error
}

// Service manages menu items. Items are keyed by name and have no
// generated id.
type Service struct {
	repo   Repository
	logger *logger.Logger
}

func NewService(repo Repository, log *logger.Logger) *Service {
	return &Service{repo: repo, logger: log}
}

func (s *Service) List(ctx context.Context) []models.MenuItem {
	items, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("menu_list_failed", "Failed to list menu items", logger.RequestIDFrom(ctx), err, nil)
		return []models.MenuItem{}
	}
	if items == nil {
		items = []models.MenuItem{}
	}
	return items
}

func (s *Service) ListByCategory(ctx context.Context, category string) []models.MenuItem {
	items, err := s.repo.ListByCategory(ctx, category)
	if err != nil {
		s.logger.Error("menu_list_failed", "Failed to list menu items by category", logger.RequestIDFrom(ctx), err, map[string]interface{}{
			"category": category,
		})
		return []models.MenuItem{}
	}
	if items == nil {
		items = []models.MenuItem{}
	}
	return items
}

func (s *Service) Categories(ctx context.Context) []string {
	categories, err := s.repo.Categories(ctx)
	if err != nil {
		s.logger.Error("menu_categories_failed", "Failed to list menu categories", logger.RequestIDFrom(ctx), err, nil)
		return []string{}
	}
	if categories == nil {
		categories = []string{}
	}
	return categories
}

func (s *Service) Get(ctx context.Context, name string) (*models.MenuItem, error) {
	item, err := s.repo.GetByName(ctx, name)
	if err != nil {
		s.logger.Error("menu_get_failed", "Failed to get menu item", logger.RequestIDFrom(ctx), err, map[string]interface{}{
			"name": name,
		})
		return nil, err
	}
	return item, nil
}

func (s *Service) Create(ctx context.Context, item *models.MenuItem) (*models.MenuItem, error) {
	requestID := logger.RequestIDFrom(ctx)
	item.Name = strings.TrimSpace(item.Name)
	if err := validation.ValidateMenuItem(item); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, item); err != nil {
		s.logger.Error("menu_create_failed", "Failed to add menu item", requestID, err, map[string]interface{}{
			"name": item.Name,
		})
		return nil, err
	}

	s.logger.Info("menu_item_created", "Menu item added", requestID, map[string]interface{}{
		"name":     item.Name,
		"category": item.Category,
		"price":    item.Price,
	})
	return item, nil
}

// Update rewrites the item currently named originalName; item.Name may
// differ, which renames it.
func (s *Service) Update(ctx context.Context, item *models.MenuItem, originalName string) error {
	requestID := logger.RequestIDFrom(ctx)
	if strings.TrimSpace(originalName) == "" {
		return validation.ValidationError{Field: "original_name", Message: "Please select a menu item to update."}
	}
	item.Name = strings.TrimSpace(item.Name)
	if err := validation.ValidateMenuItem(item); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, item, originalName); err != nil {
		s.logger.Error("menu_update_failed", "Failed to update menu item", requestID, err, map[string]interface{}{
			"name":          item.Name,
			"original_name": originalName,
		})
		return err
	}

	s.logger.Info("menu_item_updated", "Menu item updated", requestID, map[string]interface{}{
		"name":          item.Name,
		"original_name": originalName,
	})
	return nil
}

func (s *Service) Delete(ctx context.Context, name string) error {
	requestID := logger.RequestIDFrom(ctx)
	if strings.TrimSpace(name) == "" {
		return validation.ValidationError{Field: "name", Message: "Please select a menu item to delete."}
	}

	if err := s.repo.Delete(ctx, name); err != nil {
		s.logger.Error("menu_delete_failed", "Failed to delete menu item", requestID, err, map[string]interface{}{
			"name": name,
		})
		return err
	}

	s.logger.Info("menu_item_deleted", "Menu item deleted", requestID, map[string]interface{}{
		"name": name,
	})
	return nil
}

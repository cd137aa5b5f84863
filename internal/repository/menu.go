package repository

import (
	"context"

	"restaurant-management/internal/database"
	"restaurant-management/internal/models"
)

// MenuRepository stores menu items keyed by name. Menu items have no
// generated id.
type MenuRepository struct {
	db database.Querier
}

func NewMenuRepository(db database.Querier) *MenuRepository {
	return &MenuRepository{db: db}
}

func scanMenuItem(row scanner) (models.MenuItem, error) {
	var m models.MenuItem
	err := row.Scan(&m.Name, &m.Category, &m.Price)
	return m, err
}

func (r *MenuRepository) List(ctx context.Context) ([]models.MenuItem, error) {
	rows, err := r.db.Query(ctx, database.ListMenuItemsSQL)
	if err != nil {
		return nil, wrap("list menu items", err)
	}
	return collect("list menu items", rows, scanMenuItem)
}

func (r *MenuRepository) ListByCategory(ctx context.Context, category string) ([]models.MenuItem, error) {
	rows, err := r.db.Query(ctx, database.ListMenuItemsByCategorySQL, category)
	if err != nil {
		return nil, wrap("list menu items by category", err)
	}
	return collect("list menu items by category", rows, scanMenuItem)
}

// Categories returns the distinct categories in use, sorted
func (r *MenuRepository) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, database.ListMenuCategoriesSQL)
	if err != nil {
		return nil, wrap("list menu categories", err)
	}
	return collect("list menu categories", rows, func(row scanner) (string, error) {
		var category string
		err := row.Scan(&category)
		return category, err
	})
}

func (r *MenuRepository) GetByName(ctx context.Context, name string) (*models.MenuItem, error) {
	m, err := scanMenuItem(r.db.QueryRow(ctx, database.GetMenuItemSQL, name))
	if err != nil {
		return nil, wrap("get menu item "+name, err)
	}
	return &m, nil
}

func (r *MenuRepository) Create(ctx context.Context, m *models.MenuItem) error {
	tag, err := r.db.Exec(ctx, database.InsertMenuItemSQL, m.Name, m.Category, m.Price)
	return expectOne("insert menu item "+m.Name, tag, err)
}

// Update rewrites the row currently named originalName. Renaming an item
// that order lines reference carries the new name into those lines.
func (r *MenuRepository) Update(ctx context.Context, m *models.MenuItem, originalName string) error {
	tag, err := r.db.Exec(ctx, database.UpdateMenuItemSQL, m.Name, m.Category, m.Price, originalName)
	return expectOne("update menu item "+originalName, tag, err)
}

func (r *MenuRepository) Delete(ctx context.Context, name string) error {
	tag, err := r.db.Exec(ctx, database.DeleteMenuItemSQL, name)
	return expectOne("delete menu item "+name, tag, err)
}

package repository

import (
	"context"
	"time"

	"restaurant-management/internal/database"
	"restaurant-management/internal/models"
)

type DashboardRepository struct {
	db database.Querier
}

func NewDashboardRepository(db database.Querier) *DashboardRepository {
	return &DashboardRepository{db: db}
}

// Summary counts the rows of each table and sums the payment amounts in
// one round trip.
func (r *DashboardRepository) Summary(ctx context.Context) (*models.DashboardSummary, error) {
	var s models.DashboardSummary
	err := r.db.QueryRow(ctx, database.DashboardSummarySQL).Scan(
		&s.Customers, &s.Staff, &s.MenuItems, &s.Orders, &s.TotalRevenue)
	if err != nil {
		return nil, wrap("dashboard summary", err)
	}
	s.RefreshedAt = time.Now().UTC()
	return &s, nil
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardSummary holds the read-only aggregates shown on the dashboard
type DashboardSummary struct {
	Customers    int             `json:"customers"`
	Staff        int             `json:"staff"`
	MenuItems    int             `json:"menu_items"`
	Orders       int             `json:"orders"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	RefreshedAt  time.Time       `json:"refreshed_at"`
}

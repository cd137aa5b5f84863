package dashboard

import (
	"context"
	"sync"
	"time"

	"restaurant-management/internal/logger"
	"restaurant-management/internal/models"
)

const DefaultInterval = 60 * time.Second

// Source issues the read-only aggregate queries
type Source interface {
	Summary(ctx context.Context) (*models.DashboardSummary, error)
}

// Refresher keeps the latest dashboard summary and re-reads it on a ticker.
// A failed refresh keeps the previous snapshot.
type Refresher struct {
	source   Source
	interval time.Duration
	logger   *logger.Logger

	mu        sync.RWMutex
	snapshot  *models.DashboardSummary
	onRefresh func(models.DashboardSummary)
}

func NewRefresher(source Source, interval time.Duration, log *logger.Logger) *Refresher {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Refresher{source: source, interval: interval, logger: log}
}

// OnRefresh registers a callback invoked after every successful refresh
func (r *Refresher) OnRefresh(fn func(models.DashboardSummary)) {
	r.mu.Lock()
	r.onRefresh = fn
	r.mu.Unlock()
}

func (r *Refresher) Interval() time.Duration {
	return r.interval
}

// Snapshot returns the latest summary and whether one has been taken yet
func (r *Refresher) Snapshot() (models.DashboardSummary, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.snapshot == nil {
		return models.DashboardSummary{}, false
	}
	return *r.snapshot, true
}

// Refresh reads the summary now and stores it
func (r *Refresher) Refresh(ctx context.Context) (models.DashboardSummary, error) {
	summary, err := r.source.Summary(ctx)
	if err != nil {
		r.logger.Error("dashboard_refresh_failed", "Failed to refresh dashboard", logger.RequestIDFrom(ctx), err, nil)
		return models.DashboardSummary{}, err
	}

	r.mu.Lock()
	r.snapshot = summary
	callback := r.onRefresh
	r.mu.Unlock()

	r.logger.Debug("dashboard_refreshed", "Dashboard refreshed", logger.RequestIDFrom(ctx), map[string]interface{}{
		"customers":     summary.Customers,
		"staff":         summary.Staff,
		"menu_items":    summary.MenuItems,
		"orders":        summary.Orders,
		"total_revenue": summary.TotalRevenue.String(),
	})

	if callback != nil {
		callback(*summary)
	}
	return *summary, nil
}

// Current returns a fresh summary, or the previous snapshot when the
// refresh fails and one exists.
func (r *Refresher) Current(ctx context.Context) (models.DashboardSummary, error) {
	summary, err := r.Refresh(ctx)
	if err == nil {
		return summary, nil
	}
	if prev, ok := r.Snapshot(); ok {
		return prev, nil
	}
	return models.DashboardSummary{}, err
}

// Run refreshes once immediately and then on every tick until ctx is done
func (r *Refresher) Run(ctx context.Context) error {
	r.logger.Info("dashboard_refresher_started", "Dashboard refresher started", "", map[string]interface{}{
		"interval": r.interval.Seconds(),
	})

	r.tick(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("dashboard_refresher_stopped", "Dashboard refresher stopped", "", nil)
			return nil
		case <-ticker.C:
			r.tick(ctx)
		}
	}
}

func (r *Refresher) tick(ctx context.Context) {
	tickCtx := logger.WithRequestID(ctx, logger.GenerateRequestID())
	// errors are logged by Refresh
	_, _ = r.Refresh(tickCtx)
}

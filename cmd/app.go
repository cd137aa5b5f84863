package main

import (
	"context"
	"fmt"

	"restaurant-management/internal/config"
	"restaurant-management/internal/database"
	"restaurant-management/internal/logger"
	"restaurant-management/internal/messaging"
	"restaurant-management/internal/repository"
	"restaurant-management/internal/services/commands"
	"restaurant-management/internal/services/customer"
	"restaurant-management/internal/services/dashboard"
	"restaurant-management/internal/services/menu"
	"restaurant-management/internal/services/notification"
	"restaurant-management/internal/services/order"
	"restaurant-management/internal/services/payment"
	"restaurant-management/internal/services/staff"
)

// app holds the wired services for one process
type app struct {
	cfg        *config.Config
	log        *logger.Logger
	db         *database.DB
	publisher  *messaging.Publisher
	refresher  *dashboard.Refresher
	dispatcher *commands.Dispatcher
}

// newApp connects to the database and, when configured, to RabbitMQ. A
// broker that cannot be reached disables notifications instead of failing.
func newApp(ctx context.Context, cfg *config.Config, log *logger.Logger) (*app, error) {
	db, err := database.New(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	a := &app{cfg: cfg, log: log, db: db}

	var notifier notification.Notifier = notification.Nop{}
	if cfg.RabbitMQEnabled() {
		conn, err := messaging.New(cfg, log)
		if err != nil {
			log.Error("rabbitmq_unavailable", "Notifications disabled, RabbitMQ is unreachable", "", err, nil)
		} else {
			a.publisher = messaging.NewPublisher(conn, log)
			notifier = notification.NewEventNotifier(a.publisher, log)
		}
	}

	customers := repository.NewCustomerRepository(db)
	staffRepo := repository.NewStaffRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orders := repository.NewOrderRepository(db, log)
	payments := repository.NewPaymentRepository(db)

	a.refresher = dashboard.NewRefresher(repository.NewDashboardRepository(db), cfg.Dashboard.RefreshInterval, log)
	a.dispatcher = commands.NewDispatcher(commands.Services{
		Customers: customer.NewService(customers, log),
		Staff:     staff.NewService(staffRepo, log),
		Menu:      menu.NewService(menuRepo, log),
		Orders:    order.NewService(orders, menuRepo, notifier, log),
		Payments:  payment.NewService(payments, notifier, log),
		Dashboard: a.refresher,
	}, log)
	return a, nil
}

func (a *app) Close() {
	if a.publisher != nil {
		a.publisher.Close()
	}
	a.db.Close()
}

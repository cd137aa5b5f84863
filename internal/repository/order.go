package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"restaurant-management/internal/database"
	"restaurant-management/internal/logger"
	"restaurant-management/internal/models"
	"restaurant-management/internal/validation"
)

// OrderStore is what the order repository needs from the gateway: plain
// statements, scoped connections and transactions.
type OrderStore interface {
	database.Querier
	database.TxBeginner
	WithConn(ctx context.Context, fn func(q database.Querier) error) error
}

type OrderRepository struct {
	db     OrderStore
	logger *logger.Logger
}

func NewOrderRepository(db OrderStore, log *logger.Logger) *OrderRepository {
	return &OrderRepository{db: db, logger: log}
}

// Create writes the order header and all of its line items in a single
// transaction. Either every row is committed or none is.
func (r *OrderRepository) Create(ctx context.Context, o *models.Order) error {
	if err := validation.ValidateOrder(o); err != nil {
		return err
	}
	if o.ID.IsZero() {
		return &BackendError{Op: "insert order", Err: errors.New("order id is not assigned")}
	}
	if o.OrderDate.IsZero() {
		o.OrderDate = time.Now().UTC()
	}
	items := o.Items()
	op := "insert order " + o.ID.String()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return wrap(op+": begin", err)
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			r.logger.Error("order_rollback_failed", "Failed to roll back order transaction", logger.RequestIDFrom(ctx), rbErr, map[string]interface{}{
				"order_id": o.ID.String(),
			})
		}
	}()

	tag, err := tx.Exec(ctx, database.InsertOrderSQL,
		o.ID.String(), o.CustomerID.String(), o.StaffID.String(), o.OrderDate, o.RecomputeTotal())
	if err != nil {
		return wrap(op, err)
	}
	if tag.RowsAffected() != 1 {
		return &BackendError{Op: op, Err: fmt.Errorf("expected 1 order row, got %d", tag.RowsAffected())}
	}

	batch := &pgx.Batch{}
	for _, item := range items {
		batch.Queue(database.InsertOrderItemSQL, o.ID.String(), item.MenuItem.Name, item.Quantity)
	}
	br := tx.SendBatch(ctx, batch)
	for _, item := range items {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return wrap(op+": item "+item.MenuItem.Name, err)
		}
	}
	if err := br.Close(); err != nil {
		return wrap(op+": items", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return wrap(op+": commit", err)
	}

	r.logger.Debug("order_persisted", "Order header and items committed", logger.RequestIDFrom(ctx), map[string]interface{}{
		"order_id": o.ID.String(),
		"items":    len(items),
		"total":    o.Total(),
	})
	return nil
}

func scanOrderHeader(row scanner) (*models.Order, error) {
	var (
		id, customerID, staffID string
		orderDate               time.Time
		total                   int64
	)
	if err := row.Scan(&id, &customerID, &staffID, &orderDate, &total); err != nil {
		return nil, err
	}
	o := &models.Order{OrderDate: orderDate, RecordedTotal: total}
	var err error
	if o.ID, err = parseID("scan order", id); err != nil {
		return nil, err
	}
	if o.CustomerID, err = parseID("scan order customer", customerID); err != nil {
		return nil, err
	}
	if o.StaffID, err = parseID("scan order staff", staffID); err != nil {
		return nil, err
	}
	return o, nil
}

type orderLine struct {
	orderID string
	item    models.OrderItem
}

func scanOrderLine(row scanner) (orderLine, error) {
	var line orderLine
	m := &line.item.MenuItem
	if err := row.Scan(&line.orderID, &m.Name, &m.Category, &m.Price, &line.item.Quantity); err != nil {
		return orderLine{}, err
	}
	return line, nil
}

// loadLines groups line items by order id, keeping insertion order
func loadLines(ctx context.Context, q database.Querier, op, query string, args ...any) (map[string][]models.OrderItem, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, wrap(op, err)
	}
	lines, err := collect(op, rows, scanOrderLine)
	if err != nil {
		return nil, err
	}
	byOrder := make(map[string][]models.OrderItem)
	for _, line := range lines {
		byOrder[line.orderID] = append(byOrder[line.orderID], line.item)
	}
	return byOrder, nil
}

func attach(o *models.Order, items []models.OrderItem) {
	for _, item := range items {
		o.AddItem(item)
	}
}

func (r *OrderRepository) GetByID(ctx context.Context, id models.ID) (*models.Order, error) {
	op := "get order " + id.String()
	var order *models.Order
	err := r.db.WithConn(ctx, func(q database.Querier) error {
		o, err := scanOrderHeader(q.QueryRow(ctx, database.GetOrderSQL, id.String()))
		if err != nil {
			return wrap(op, err)
		}
		lines, err := loadLines(ctx, q, op+": items", database.GetOrderItemsSQL, id.String())
		if err != nil {
			return err
		}
		attach(o, lines[id.String()])
		order = o
		return nil
	})
	if err != nil {
		return nil, wrap(op, err)
	}
	return order, nil
}

// Items returns the line items of one order with their menu items resolved
func (r *OrderRepository) Items(ctx context.Context, orderID models.ID) ([]models.OrderItem, error) {
	lines, err := loadLines(ctx, r.db, "list order items "+orderID.String(), database.GetOrderItemsSQL, orderID.String())
	if err != nil {
		return nil, err
	}
	return lines[orderID.String()], nil
}

func (r *OrderRepository) List(ctx context.Context) ([]*models.Order, error) {
	return r.list(ctx, "list orders", database.ListOrdersSQL, database.ListOrderItemsSQL)
}

func (r *OrderRepository) ListByCustomer(ctx context.Context, customerID models.ID) ([]*models.Order, error) {
	return r.list(ctx, "list orders for customer "+customerID.String(),
		database.ListOrdersByCustomerSQL, database.ListOrderItemsByCustomerSQL, customerID.String())
}

func (r *OrderRepository) list(ctx context.Context, op, headersSQL, itemsSQL string, args ...any) ([]*models.Order, error) {
	var orders []*models.Order
	err := r.db.WithConn(ctx, func(q database.Querier) error {
		rows, err := q.Query(ctx, headersSQL, args...)
		if err != nil {
			return wrap(op, err)
		}
		orders, err = collect(op, rows, scanOrderHeader)
		if err != nil {
			return err
		}
		lines, err := loadLines(ctx, q, op+": items", itemsSQL, args...)
		if err != nil {
			return err
		}
		for _, o := range orders {
			attach(o, lines[o.ID.String()])
		}
		return nil
	})
	if err != nil {
		return nil, wrap(op, err)
	}
	return orders, nil
}

func (r *OrderRepository) NextID(ctx context.Context) (models.ID, error) {
	return nextID(ctx, r.db, database.MaxOrderIDSQL, models.OrderPrefix)
}

package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-management/internal/database"
	"restaurant-management/internal/logger"
	"restaurant-management/internal/models"
)

const testDatabaseEnv = "RMS_TEST_DATABASE_URL"

// openTestDB connects to the database named by RMS_TEST_DATABASE_URL,
// applies the schema and empties every table. Tests are skipped when the
// variable is unset.
func openTestDB(t *testing.T) *database.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("integration test skipped in short mode")
	}
	url := os.Getenv(testDatabaseEnv)
	if url == "" {
		t.Skipf("%s not set", testDatabaseEnv)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := database.Connect(ctx, url, 1, logger.Discard())
	require.NoError(t, err)
	t.Cleanup(db.Close)

	require.NoError(t, db.RunMigrations(ctx))
	_, err = db.Exec(ctx, `TRUNCATE Order_Items, Orders, Payment, Menu, Staff, Customer RESTART IDENTITY`)
	require.NoError(t, err)
	return db
}

func seedPeople(t *testing.T, ctx context.Context, db *database.DB) {
	t.Helper()
	require.NoError(t, NewCustomerRepository(db).Create(ctx, &models.Customer{
		ID: models.NewID(models.CustomerPrefix, 1), FirstName: "Ada", LastName: "Lovelace",
		Email: "ada@example.com", Phone: "555-0100",
	}))
	require.NoError(t, NewStaffRepository(db).Create(ctx, &models.Staff{
		ID: models.NewID(models.StaffPrefix, 1), FirstName: "Gordon", LastName: "Ramsay",
		Role: models.RoleWaiter, Phone: "555-0101",
		DateOfBirth: models.NewDate(1990, time.January, 2),
		Salary:      decimal.RequireFromString("3200.00"),
	}))
	menu := NewMenuRepository(db)
	require.NoError(t, menu.Create(ctx, &burger))
	require.NoError(t, menu.Create(ctx, &fries))
}

func TestIntegrationCustomerNextID(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewCustomerRepository(db)

	id, err := repo.NextID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "C001", id.String())

	require.NoError(t, repo.Create(ctx, &models.Customer{
		ID: id, FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Phone: "555-0100",
	}))

	id, err = repo.NextID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "C002", id.String())

	err = repo.Create(ctx, &models.Customer{
		ID: models.NewID(models.CustomerPrefix, 1), FirstName: "Dup", LastName: "Licate", Email: "d@example.com", Phone: "1",
	})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestIntegrationUpdateDeleteMissing(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	missing := models.NewID(models.StaffPrefix, 99)
	err := NewStaffRepository(db).Update(ctx, &models.Staff{
		ID: missing, FirstName: "No", LastName: "One", Role: models.RoleChef, Phone: "0",
		DateOfBirth: models.NewDate(1980, time.May, 5), Salary: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, NewStaffRepository(db).Delete(ctx, missing), ErrNotFound)
	assert.ErrorIs(t, NewMenuRepository(db).Delete(ctx, "Nothing"), ErrNotFound)
}

func TestIntegrationOrderRoundTripAndRename(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	seedPeople(t, ctx, db)

	orders := NewOrderRepository(db, logger.Discard())
	id, err := orders.NextID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "O001", id.String())

	order := models.NewOrder(id, models.NewID(models.CustomerPrefix, 1), models.NewID(models.StaffPrefix, 1))
	order.AddItem(models.OrderItem{MenuItem: burger, Quantity: 2})
	order.AddItem(models.OrderItem{MenuItem: fries, Quantity: 1})
	require.NoError(t, orders.Create(ctx, order))

	stored, err := orders.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(600), stored.Total())
	assert.Equal(t, int64(600), stored.RecordedTotal)
	require.Len(t, stored.Items(), 2)
	assert.Equal(t, "Burger", stored.Items()[0].MenuItem.Name)

	menu := NewMenuRepository(db)
	renamed := models.MenuItem{Name: "Cheeseburger", Category: "Mains", Price: 250}
	require.NoError(t, menu.Update(ctx, &renamed, "Burger"))

	_, err = menu.GetByName(ctx, "Burger")
	assert.ErrorIs(t, err, ErrNotFound)
	got, err := menu.GetByName(ctx, "Cheeseburger")
	require.NoError(t, err)
	assert.Equal(t, int64(250), got.Price)

	stored, err = orders.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Cheeseburger", stored.Items()[0].MenuItem.Name)
	assert.Equal(t, int64(600), stored.Total())

	byCustomer, err := orders.ListByCustomer(ctx, models.NewID(models.CustomerPrefix, 1))
	require.NoError(t, err)
	require.Len(t, byCustomer, 1)
	assert.Len(t, byCustomer[0].Items(), 2)
}

func TestIntegrationOrderIsAllOrNothing(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	seedPeople(t, ctx, db)

	orders := NewOrderRepository(db, logger.Discard())
	order := models.NewOrder(models.NewID(models.OrderPrefix, 1), models.NewID(models.CustomerPrefix, 1), models.NewID(models.StaffPrefix, 1))
	order.AddItem(models.OrderItem{MenuItem: burger, Quantity: 1})
	order.AddItem(models.OrderItem{MenuItem: models.MenuItem{Name: "Ghost", Category: "None", Price: 1}, Quantity: 1})

	err := orders.Create(ctx, order)
	var be *BackendError
	require.ErrorAs(t, err, &be)

	_, err = orders.GetByID(ctx, order.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	items, err := orders.Items(ctx, order.ID)
	require.NoError(t, err)
	assert.Empty(t, items)

	summary, err := NewDashboardRepository(db).Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Orders)
}

func TestIntegrationPaymentsAndDashboard(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	seedPeople(t, ctx, db)

	payments := NewPaymentRepository(db)
	id, err := payments.NextID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "P001", id.String())

	// The referenced order does not exist; payments are loosely associated.
	p := &models.Payment{ID: id, OrderID: models.NewID(models.OrderPrefix, 42), Method: models.PaymentUPI, Amount: decimal.RequireFromString("600.50")}
	require.NoError(t, payments.Create(ctx, p))

	byOrder, err := payments.GetByOrderID(ctx, p.OrderID)
	require.NoError(t, err)
	assert.Equal(t, "P001", byOrder.ID.String())
	assert.True(t, byOrder.Amount.Equal(p.Amount))

	summary, err := NewDashboardRepository(db).Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Customers)
	assert.Equal(t, 1, summary.Staff)
	assert.Equal(t, 2, summary.MenuItems)
	assert.Equal(t, 0, summary.Orders)
	assert.Equal(t, "600.5", summary.TotalRevenue.String())

	categories, err := NewMenuRepository(db).Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Mains", "Sides"}, categories)
}

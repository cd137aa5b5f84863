package customer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-management/internal/logger"
	"restaurant-management/internal/models"
	"restaurant-management/internal/repository"
	"restaurant-management/internal/validation"
)

type mockRepository struct {
	store   map[string]models.Customer
	listErr error
}

func newMockRepository() *mockRepository {
	return &mockRepository{store: make(map[string]models.Customer)}
}

func (m *mockRepository) List(context.Context) ([]models.Customer, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []models.Customer
	for _, c := range m.store {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.Number < out[j].ID.Number })
	return out, nil
}

func (m *mockRepository) GetByID(_ context.Context, id models.ID) (*models.Customer, error) {
	c, ok := m.store[id.String()]
	if !ok {
		return nil, fmt.Errorf("get customer %s: %w", id, repository.ErrNotFound)
	}
	return &c, nil
}

func (m *mockRepository) Create(_ context.Context, c *models.Customer) error {
	if _, ok := m.store[c.ID.String()]; ok {
		return repository.ErrConflict
	}
	m.store[c.ID.String()] = *c
	return nil
}

func (m *mockRepository) Update(_ context.Context, c *models.Customer) error {
	if _, ok := m.store[c.ID.String()]; !ok {
		return repository.ErrNotFound
	}
	m.store[c.ID.String()] = *c
	return nil
}

func (m *mockRepository) Delete(_ context.Context, id models.ID) error {
	if _, ok := m.store[id.String()]; !ok {
		return repository.ErrNotFound
	}
	delete(m.store, id.String())
	return nil
}

func (m *mockRepository) NextID(context.Context) (models.ID, error) {
	max := models.SeedID(models.CustomerPrefix)
	for _, c := range m.store {
		if c.ID.Number > max.Number {
			max = c.ID
		}
	}
	return max.Next(), nil
}

func newCustomer() *models.Customer {
	return &models.Customer{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Phone: "555-0100"}
}

func TestCreateAssignsSequentialIDs(t *testing.T) {
	svc := NewService(newMockRepository(), logger.Discard())
	ctx := context.Background()

	first, err := svc.Create(ctx, newCustomer())
	require.NoError(t, err)
	assert.Equal(t, "C001", first.ID.String())

	next, err := svc.NextID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "C002", next.String())

	second, err := svc.Create(ctx, newCustomer())
	require.NoError(t, err)
	assert.Equal(t, "C002", second.ID.String())
	assert.Len(t, svc.List(ctx), 2)
}

func TestCreateRejectsInvalidInput(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo, logger.Discard())

	c := newCustomer()
	c.Email = ""
	_, err := svc.Create(context.Background(), c)

	var ve validation.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Email is required.", ve.Message)
	assert.Empty(t, repo.store)
}

func TestUpdateAndDelete(t *testing.T) {
	svc := NewService(newMockRepository(), logger.Discard())
	ctx := context.Background()

	c, err := svc.Create(ctx, newCustomer())
	require.NoError(t, err)

	c.Phone = "555-0199"
	require.NoError(t, svc.Update(ctx, c))
	got, err := svc.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "555-0199", got.Phone)

	require.NoError(t, svc.Delete(ctx, c.ID))
	assert.ErrorIs(t, svc.Delete(ctx, c.ID), repository.ErrNotFound)

	_, err = svc.Get(ctx, c.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	missing := newCustomer()
	missing.ID = models.NewID(models.CustomerPrefix, 77)
	assert.ErrorIs(t, svc.Update(ctx, missing), repository.ErrNotFound)
}

func TestUpdateDeleteRequireSelection(t *testing.T) {
	svc := NewService(newMockRepository(), logger.Discard())

	var ve validation.ValidationError
	require.ErrorAs(t, svc.Update(context.Background(), newCustomer()), &ve)
	assert.Equal(t, "Please select a customer to update.", ve.Message)

	require.ErrorAs(t, svc.Delete(context.Background(), models.ID{}), &ve)
	assert.Equal(t, "Please select a customer to delete.", ve.Message)
}

func TestListIsBestEffort(t *testing.T) {
	var buf bytes.Buffer
	repo := newMockRepository()
	repo.listErr = &repository.BackendError{Op: "list customers", Err: errors.New("connection refused")}
	svc := NewService(repo, logger.NewWithWriter("test", &buf))

	customers := svc.List(logger.WithRequestID(context.Background(), "req-7"))
	assert.NotNil(t, customers)
	assert.Empty(t, customers)
	assert.Contains(t, buf.String(), "customer_list_failed")
	assert.Contains(t, buf.String(), "req-7")
}

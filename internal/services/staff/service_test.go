package staff

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-management/internal/logger"
	"restaurant-management/internal/models"
	"restaurant-management/internal/repository"
	"restaurant-management/internal/validation"
)

type mockRepository struct {
	members []models.Staff
	err     error
}

func (m *mockRepository) List(context.Context) ([]models.Staff, error) {
	return m.members, m.err
}

func (m *mockRepository) ListByRole(_ context.Context, role models.StaffRole) ([]models.Staff, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []models.Staff
	for _, s := range m.members {
		if s.Role == role {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockRepository) GetByID(_ context.Context, id models.ID) (*models.Staff, error) {
	for _, s := range m.members {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *mockRepository) Create(_ context.Context, s *models.Staff) error {
	if m.err != nil {
		return m.err
	}
	m.members = append(m.members, *s)
	return nil
}

func (m *mockRepository) Update(_ context.Context, s *models.Staff) error {
	for i := range m.members {
		if m.members[i].ID == s.ID {
			m.members[i] = *s
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *mockRepository) Delete(_ context.Context, id models.ID) error {
	for i := range m.members {
		if m.members[i].ID == id {
			m.members = append(m.members[:i], m.members[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *mockRepository) NextID(context.Context) (models.ID, error) {
	if len(m.members) == 0 {
		return models.SeedID(models.StaffPrefix).Next(), nil
	}
	return m.members[len(m.members)-1].ID.Next(), nil
}

func newChef() *models.Staff {
	return &models.Staff{
		FirstName:   "Gordon",
		LastName:    "Ramsay",
		Role:        models.RoleChef,
		Phone:       "555-0101",
		DateOfBirth: models.NewDate(1966, time.November, 8),
		Salary:      decimal.RequireFromString("5000"),
	}
}

func TestCreateAndListByRole(t *testing.T) {
	repo := &mockRepository{}
	svc := NewService(repo, logger.Discard())
	ctx := context.Background()

	chef, err := svc.Create(ctx, newChef())
	require.NoError(t, err)
	assert.Equal(t, "S001", chef.ID.String())

	waiter := newChef()
	waiter.Role = models.RoleWaiter
	waiter, err = svc.Create(ctx, waiter)
	require.NoError(t, err)
	assert.Equal(t, "S002", waiter.ID.String())

	chefs, err := svc.ListByRole(ctx, models.RoleChef)
	require.NoError(t, err)
	require.Len(t, chefs, 1)
	assert.Equal(t, "S001", chefs[0].ID.String())

	bartenders, err := svc.ListByRole(ctx, models.RoleBartender)
	require.NoError(t, err)
	assert.NotNil(t, bartenders)
	assert.Empty(t, bartenders)

	_, err = svc.ListByRole(ctx, "Astronaut")
	var ve validation.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestCreateValidatesSalary(t *testing.T) {
	repo := &mockRepository{}
	svc := NewService(repo, logger.Discard())

	member := newChef()
	member.Salary = decimal.NewFromInt(-5)
	_, err := svc.Create(context.Background(), member)

	var ve validation.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Salary must be a positive number.", ve.Message)
	assert.Empty(t, repo.members)
}

func TestUpdateDelete(t *testing.T) {
	repo := &mockRepository{}
	svc := NewService(repo, logger.Discard())
	ctx := context.Background()

	member, err := svc.Create(ctx, newChef())
	require.NoError(t, err)

	member.Role = models.RoleManager
	require.NoError(t, svc.Update(ctx, member))
	got, err := svc.Get(ctx, member.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleManager, got.Role)

	require.NoError(t, svc.Delete(ctx, member.ID))
	assert.ErrorIs(t, svc.Delete(ctx, member.ID), repository.ErrNotFound)

	var ve validation.ValidationError
	require.ErrorAs(t, svc.Delete(ctx, models.ID{}), &ve)
	assert.Equal(t, "Please select a staff member to delete.", ve.Message)
}

func TestListFailureYieldsEmpty(t *testing.T) {
	repo := &mockRepository{err: errors.New("timeout")}
	svc := NewService(repo, logger.Discard())

	assert.Equal(t, []models.Staff{}, svc.List(context.Background()))
}

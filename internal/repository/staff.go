package repository

import (
	"context"
	"time"

	"restaurant-management/internal/database"
	"restaurant-management/internal/models"
)

type StaffRepository struct {
	db database.Querier
}

func NewStaffRepository(db database.Querier) *StaffRepository {
	return &StaffRepository{db: db}
}

func scanStaff(row scanner) (models.Staff, error) {
	var (
		s    models.Staff
		id   string
		role string
		dob  time.Time
	)
	if err := row.Scan(&id, &s.FirstName, &s.LastName, &role, &s.Phone, &dob, &s.Salary); err != nil {
		return models.Staff{}, err
	}
	parsed, err := parseID("scan staff", id)
	if err != nil {
		return models.Staff{}, err
	}
	s.ID = parsed
	s.Role = models.StaffRole(role)
	s.DateOfBirth = models.NewDate(dob.Year(), dob.Month(), dob.Day())
	return s, nil
}

func (r *StaffRepository) List(ctx context.Context) ([]models.Staff, error) {
	rows, err := r.db.Query(ctx, database.ListStaffSQL)
	if err != nil {
		return nil, wrap("list staff", err)
	}
	return collect("list staff", rows, scanStaff)
}

func (r *StaffRepository) ListByRole(ctx context.Context, role models.StaffRole) ([]models.Staff, error) {
	rows, err := r.db.Query(ctx, database.ListStaffByRoleSQL, string(role))
	if err != nil {
		return nil, wrap("list staff by role", err)
	}
	return collect("list staff by role", rows, scanStaff)
}

func (r *StaffRepository) GetByID(ctx context.Context, id models.ID) (*models.Staff, error) {
	s, err := scanStaff(r.db.QueryRow(ctx, database.GetStaffSQL, id.String()))
	if err != nil {
		return nil, wrap("get staff "+id.String(), err)
	}
	return &s, nil
}

func (r *StaffRepository) Create(ctx context.Context, s *models.Staff) error {
	tag, err := r.db.Exec(ctx, database.InsertStaffSQL,
		s.ID.String(), s.FirstName, s.LastName, string(s.Role), s.Phone, s.DateOfBirth.Time, s.Salary)
	return expectOne("insert staff "+s.ID.String(), tag, err)
}

func (r *StaffRepository) Update(ctx context.Context, s *models.Staff) error {
	tag, err := r.db.Exec(ctx, database.UpdateStaffSQL,
		s.FirstName, s.LastName, string(s.Role), s.Phone, s.DateOfBirth.Time, s.Salary, s.ID.String())
	return expectOne("update staff "+s.ID.String(), tag, err)
}

func (r *StaffRepository) Delete(ctx context.Context, id models.ID) error {
	tag, err := r.db.Exec(ctx, database.DeleteStaffSQL, id.String())
	return expectOne("delete staff "+id.String(), tag, err)
}

func (r *StaffRepository) NextID(ctx context.Context) (models.ID, error) {
	return nextID(ctx, r.db, database.MaxStaffIDSQL, models.StaffPrefix)
}

package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound means no row matched the key, for reads and for updates
	// or deletes that affected zero rows.
	ErrNotFound = errors.New("record not found")

	// ErrConflict means a unique key was already taken
	ErrConflict = errors.New("record already exists")
)

const uniqueViolation = "23505"

// BackendError is any other data-access failure
type BackendError struct {
	Op  string
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// wrap classifies a driver error for op
func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	var be *BackendError
	if errors.As(err, &be) || errors.Is(err, ErrNotFound) || errors.Is(err, ErrConflict) {
		return err
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%s: %w: %s", op, ErrConflict, pgErr.Detail)
	}
	return &BackendError{Op: op, Err: err}
}

// expectOne turns a command tag into ErrNotFound when no row was affected
func expectOne(op string, tag pgconn.CommandTag, err error) error {
	if err != nil {
		return wrap(op, err)
	}
	switch tag.RowsAffected() {
	case 1:
		return nil
	case 0:
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	default:
		return &BackendError{Op: op, Err: fmt.Errorf("expected 1 row affected, got %d", tag.RowsAffected())}
	}
}

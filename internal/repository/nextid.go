package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"restaurant-management/internal/database"
	"restaurant-management/internal/models"
)

// nextID reads the greatest existing id and returns its successor, or the
// seed's successor when the table is empty. Two callers racing here get the
// same id; the loser's insert fails with ErrConflict.
func nextID(ctx context.Context, q database.Querier, query string, prefix byte) (models.ID, error) {
	var max string
	err := q.QueryRow(ctx, query).Scan(&max)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.SeedID(prefix).Next(), nil
	}
	if err != nil {
		return models.ID{}, &BackendError{Op: "select max id", Err: err}
	}

	id, err := models.ParseIDWithPrefix(max, prefix)
	if err != nil {
		return models.ID{}, &BackendError{Op: "parse max id", Err: err}
	}
	return id.Next(), nil
}

// scanner is satisfied by pgx.Row and pgx.Rows
type scanner interface {
	Scan(dest ...any) error
}

func parseID(op, raw string) (models.ID, error) {
	id, err := models.ParseID(raw)
	if err != nil {
		return models.ID{}, &BackendError{Op: op, Err: err}
	}
	return id, nil
}

// collect scans every row with scan and closes rows
func collect[T any](op string, rows pgx.Rows, scan func(scanner) (T, error)) ([]T, error) {
	defer rows.Close()

	var out []T
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, wrap(op, err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap(op, err)
	}
	return out, nil
}

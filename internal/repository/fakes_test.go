package repository

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"restaurant-management/internal/database"
)

type recordedStatement struct {
	sql  string
	args []any
}

// fakeRow scans values into the destinations by assignment
type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != len(r.values) {
		return fmt.Errorf("fake row: %d destinations for %d values", len(dest), len(r.values))
	}
	for i, d := range dest {
		reflect.ValueOf(d).Elem().Set(reflect.ValueOf(r.values[i]))
	}
	return nil
}

// fakeRows iterates over a fixed set of rows
type fakeRows struct {
	pgx.Rows
	rows   []fakeRow
	pos    int
	closed bool
	err    error
}

func (r *fakeRows) Next() bool {
	if r.pos >= len(r.rows) {
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	return r.rows[r.pos-1].Scan(dest...)
}

func (r *fakeRows) Err() error { return r.err }

func (r *fakeRows) Close() { r.closed = true }

// fakeQuerier answers statements from canned results keyed by SQL text
type fakeQuerier struct {
	execTag  pgconn.CommandTag
	execErr  error
	rows     map[string]fakeRow
	results  map[string][]fakeRow
	queryErr error

	execs   []recordedStatement
	queries []recordedStatement
}

func newFakeQuerier() *fakeQuerier {
	return &fakeQuerier{
		rows:    make(map[string]fakeRow),
		results: make(map[string][]fakeRow),
	}
}

func (f *fakeQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.execs = append(f.execs, recordedStatement{sql: sql, args: args})
	return f.execTag, f.execErr
}

func (f *fakeQuerier) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	f.queries = append(f.queries, recordedStatement{sql: sql, args: args})
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return &fakeRows{rows: f.results[sql]}, nil
}

func (f *fakeQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	f.queries = append(f.queries, recordedStatement{sql: sql, args: args})
	row, ok := f.rows[sql]
	if !ok {
		return fakeRow{err: pgx.ErrNoRows}
	}
	return row
}

// fakeStore adds transactions and scoped connections to fakeQuerier
type fakeStore struct {
	*fakeQuerier
	tx       *fakeTx
	beginErr error
	acquired int
	released int
}

func newFakeStore() *fakeStore {
	return &fakeStore{fakeQuerier: newFakeQuerier(), tx: newFakeTx()}
}

func (s *fakeStore) Begin(context.Context) (pgx.Tx, error) {
	if s.beginErr != nil {
		return nil, s.beginErr
	}
	s.tx.begun = true
	return s.tx, nil
}

func (s *fakeStore) WithConn(_ context.Context, fn func(q database.Querier) error) error {
	s.acquired++
	defer func() { s.released++ }()
	return fn(s.fakeQuerier)
}

// fakeTx records what happened inside one transaction
type fakeTx struct {
	pgx.Tx

	headerTag pgconn.CommandTag
	headerErr error
	itemErrs  map[int]error
	closeErr  error
	commitErr error

	begun      bool
	execs      []recordedStatement
	batch      *pgx.Batch
	batchOpen  bool
	committed  bool
	rolledBack bool
}

func newFakeTx() *fakeTx {
	return &fakeTx{
		headerTag: pgconn.NewCommandTag("INSERT 0 1"),
		itemErrs:  make(map[int]error),
	}
}

func (t *fakeTx) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	t.execs = append(t.execs, recordedStatement{sql: sql, args: args})
	return t.headerTag, t.headerErr
}

func (t *fakeTx) SendBatch(_ context.Context, b *pgx.Batch) pgx.BatchResults {
	t.batch = b
	t.batchOpen = true
	return &fakeBatchResults{tx: t}
}

func (t *fakeTx) Commit(context.Context) error {
	if t.commitErr != nil {
		return t.commitErr
	}
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(context.Context) error {
	if t.committed || t.rolledBack {
		return pgx.ErrTxClosed
	}
	t.rolledBack = true
	return nil
}

type fakeBatchResults struct {
	pgx.BatchResults
	tx *fakeTx
	n  int
}

func (b *fakeBatchResults) Exec() (pgconn.CommandTag, error) {
	i := b.n
	b.n++
	if i >= b.tx.batch.Len() {
		return pgconn.CommandTag{}, errors.New("no more batch results")
	}
	if err := b.tx.itemErrs[i]; err != nil {
		return pgconn.CommandTag{}, err
	}
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (b *fakeBatchResults) Close() error {
	b.tx.batchOpen = false
	return b.tx.closeErr
}

package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
)

// Migrations are embedded so `rms migrate` works from any directory.
//
//go:embed migrations/*.sql
var migrationsFS embed.FS

// RunMigrations applies the embedded schema files that have not been
// applied yet, in file name order.
func (db *DB) RunMigrations(ctx context.Context) error {
	return db.RunMigrationsFS(ctx, migrationsFS)
}

// RunMigrationsFS applies the *.sql files under migrations/ in fsys
func (db *DB) RunMigrationsFS(ctx context.Context, fsys fs.FS) error {
	if err := db.createMigrationsTable(ctx); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	migrationFiles, err := getMigrationFiles(fsys)
	if err != nil {
		return fmt.Errorf("failed to get migration files: %w", err)
	}

	appliedMigrations, err := db.getAppliedMigrations(ctx)
	if err != nil {
		return fmt.Errorf("failed to get applied migrations: %w", err)
	}

	for _, file := range migrationFiles {
		name := path.Base(file)
		if appliedMigrations[name] {
			continue
		}

		if err := db.runMigration(ctx, fsys, file, name); err != nil {
			return fmt.Errorf("failed to run migration %s: %w", name, err)
		}

		db.logger.Info("migration_applied", fmt.Sprintf("Applied migration: %s", name), "startup", nil)
	}

	return nil
}

func (db *DB) createMigrationsTable(ctx context.Context) error {
	_, err := db.Exec(ctx, CreateMigrationsTableSQL)
	return err
}

// getMigrationFiles returns the sorted migration file paths in fsys
func getMigrationFiles(fsys fs.FS) ([]string, error) {
	files, err := fs.Glob(fsys, "migrations/*.sql")
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

func (db *DB) getAppliedMigrations(ctx context.Context) (map[string]bool, error) {
	applied := make(map[string]bool)

	rows, err := db.Query(ctx, SelectAppliedMigrationsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var migrationName string
		if err := rows.Scan(&migrationName); err != nil {
			return nil, err
		}
		applied[migrationName] = true
	}

	return applied, rows.Err()
}

// runMigration executes one file and records it in the same transaction
func (db *DB) runMigration(ctx context.Context, fsys fs.FS, file, name string) error {
	content, err := fs.ReadFile(fsys, file)
	if err != nil {
		return fmt.Errorf("failed to read migration file: %w", err)
	}

	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, string(content)); err != nil {
		return fmt.Errorf("failed to execute migration: %w", err)
	}
	if _, err := tx.Exec(ctx, InsertMigrationSQL, name); err != nil {
		return fmt.Errorf("failed to record migration: %w", err)
	}

	return tx.Commit(ctx)
}

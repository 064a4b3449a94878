package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"savingsbook/internal/config"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// ledgerTables must exist after migrations before the ledger can serve
var ledgerTables = []string{
	"savings_types",
	"regulations",
	"regulation_history",
	"accounts",
	"transactions",
}

var (
	readinessAttempts = 30
	readinessInterval = 2 * time.Second
)

// ErrLedgerSchemaIncomplete means migrations ran but a ledger table is missing
var ErrLedgerSchemaIncomplete = errors.New("ledger schema incomplete")

// MigrationRunner applies the SQL migrations and optional seed files to a
// PostgreSQL ledger database over a lib/pq connection.
type MigrationRunner struct {
	db             *sql.DB
	log            *slog.Logger
	migrationsPath string
	seedsPath      string
	seed           bool
}

func NewMigrationRunner(db *sql.DB, cfg *config.DatabaseConfig, log *slog.Logger) *MigrationRunner {
	return &MigrationRunner{
		db:             db,
		log:            log,
		migrationsPath: cfg.MigrationsPath,
		seedsPath:      cfg.SeedsPath,
		seed:           cfg.SeedDatabase,
	}
}

// WaitForDatabase pings until the database answers, the attempts run out or
// ctx is done.
func (mr *MigrationRunner) WaitForDatabase(ctx context.Context) error {
	var err error
	for attempt := 1; attempt <= readinessAttempts; attempt++ {
		if err = mr.db.PingContext(ctx); err == nil {
			return nil
		}
		mr.log.Warn("ledger database not ready", "attempt", attempt, "max_attempts", readinessAttempts, "error", err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(readinessInterval):
		}
	}
	return fmt.Errorf("database not ready after %d attempts: %w", readinessAttempts, err)
}

// RunMigrations applies pending migrations and checks the ledger tables.
// It reports false when there is no migrations directory.
func (mr *MigrationRunner) RunMigrations(ctx context.Context) (bool, error) {
	if _, err := os.Stat(mr.migrationsPath); os.IsNotExist(err) {
		mr.log.Warn("migrations directory not found, skipping migrations", "path", mr.migrationsPath)
		return false, nil
	}

	m, err := mr.newMigrate()
	if err != nil {
		return false, err
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return false, fmt.Errorf("failed to get migration version: %w", err)
	}
	// Dirty schemas are left for an operator to force
	if dirty {
		return false, fmt.Errorf("ledger schema is dirty at version %d", version)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return false, fmt.Errorf("migration failed: %w", err)
	}

	if version, _, err = m.Version(); err != nil {
		return false, fmt.Errorf("failed to get migration version: %w", err)
	}
	mr.log.Info("ledger schema migrated", "version", version)

	if err := mr.verifyLedgerTables(ctx); err != nil {
		return false, err
	}
	return true, nil
}

func (mr *MigrationRunner) verifyLedgerTables(ctx context.Context) error {
	for _, table := range ledgerTables {
		var name sql.NullString
		if err := mr.db.QueryRowContext(ctx, "SELECT to_regclass($1)", table).Scan(&name); err != nil {
			return fmt.Errorf("failed to look up table %s: %w", table, err)
		}
		if !name.Valid {
			return fmt.Errorf("%w: table %s is missing", ErrLedgerSchemaIncomplete, table)
		}
	}
	return nil
}

// LoadSeeds runs each *.sql file in name order inside its own transaction. A
// failing file is rolled back and skipped.
func (mr *MigrationRunner) LoadSeeds(ctx context.Context) error {
	if !mr.seed {
		return nil
	}

	files, err := filepath.Glob(filepath.Join(mr.seedsPath, "*.sql"))
	if err != nil {
		return fmt.Errorf("failed to find seed files: %w", err)
	}

	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read seed file %s: %w", file, err)
		}

		if err := mr.execSeed(ctx, string(content)); err != nil {
			mr.log.Warn("seed file rolled back", "file", filepath.Base(file), "error", err)
			continue
		}
		mr.log.Info("seed file applied", "file", filepath.Base(file))
	}
	return nil
}

func (mr *MigrationRunner) execSeed(ctx context.Context, statements string) error {
	tx, err := mr.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, statements); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func (mr *MigrationRunner) newMigrate() (*migrate.Migrate, error) {
	absPath, err := filepath.Abs(mr.migrationsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path for migrations: %w", err)
	}

	driver, err := postgres.WithInstance(mr.db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+absPath, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration instance: %w", err)
	}
	return m, nil
}

// RunMigrationsIfEnabled applies migrations and seeds when cfg.AutoMigrate is
// set. It reports whether the schema is now managed by SQL migrations.
func RunMigrationsIfEnabled(ctx context.Context, db *sql.DB, cfg *config.DatabaseConfig, log *slog.Logger) (bool, error) {
	if !cfg.AutoMigrate {
		return false, nil
	}

	runner := NewMigrationRunner(db, cfg, log)

	if err := runner.WaitForDatabase(ctx); err != nil {
		return false, fmt.Errorf("database readiness check failed: %w", err)
	}

	applied, err := runner.RunMigrations(ctx)
	if err != nil {
		return false, fmt.Errorf("migration execution failed: %w", err)
	}

	if err := runner.LoadSeeds(ctx); err != nil {
		log.Warn("seed data loading failed", "error", err)
	}
	return applied, nil
}

package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"savingsbook/internal/config"
	"savingsbook/internal/models"

	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

// New opens a gorm connection for the configured driver
func New(cfg *config.DatabaseConfig, logLevel logger.LogLevel) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	var dialector gorm.Dialector
	switch cfg.Driver {
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.DSN())
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("driver %q has no SQL database", cfg.Driver)
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if cfg.Driver == config.DriverSQLite {
		// SQLite allows a single writer
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cfg.MaxConnections)
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.SavingsType{},
		&models.Regulation{},
		&models.RegulationHistoryEntry{},
		&models.Account{},
		&models.Transaction{},
	)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// CreateIndexes adds the reporting indexes that gorm tags cannot express
func (db *DB) CreateIndexes(log *slog.Logger) {
	queries := []string{
		"CREATE INDEX IF NOT EXISTS idx_transactions_kind_created_at ON transactions(kind, created_at)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_type_created_at ON transactions(savings_type_id, created_at)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_account_created_at ON transactions(account_id, created_at)",
		"CREATE INDEX IF NOT EXISTS idx_accounts_open_status ON accounts(status) WHERE status = 'active'",
		"CREATE INDEX IF NOT EXISTS idx_regulation_history_version ON regulation_history(regulation_version DESC)",
	}

	for _, query := range queries {
		if err := db.DB.Exec(query).Error; err != nil {
			log.Warn("failed to create index", "query", query, "error", err)
		}
	}
}

// Initialize creates the database connection and brings the schema up to date.
// PostgreSQL schemas come from SQL migrations when AUTO_MIGRATE is enabled and
// fall back to gorm AutoMigrate otherwise.
func Initialize(ctx context.Context, cfg *config.Config, log *slog.Logger) (*gorm.DB, error) {
	logLevel := logger.Warn
	if cfg.IsDevelopment() {
		logLevel = logger.Info
	}

	db, err := New(&cfg.Database, logLevel)
	if err != nil {
		return nil, err
	}

	migrated := false
	if cfg.Database.Driver == config.DriverPostgres {
		// Migrations run on their own lib/pq connection
		migrationDB, err := sql.Open("postgres", cfg.Database.URL())
		if err != nil {
			return nil, fmt.Errorf("failed to open migration connection: %w", err)
		}
		defer migrationDB.Close()

		migrated, err = RunMigrationsIfEnabled(ctx, migrationDB, &cfg.Database, log)
		if err != nil {
			log.Warn("migration runner failed, falling back to gorm AutoMigrate", "error", err)
			migrated = false
		}
	}

	if !migrated {
		if err := db.AutoMigrate(); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	db.CreateIndexes(log)

	log.Info("database initialized", "driver", cfg.Database.Driver)

	return db.DB, nil
}

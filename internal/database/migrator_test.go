package database

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"savingsbook/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"
)

type MigrationRunnerSuite struct {
	suite.Suite
	mock   sqlmock.Sqlmock
	cfg    *config.DatabaseConfig
	runner *MigrationRunner
	ctx    context.Context
}

func TestMigrationRunnerSuite(t *testing.T) {
	suite.Run(t, new(MigrationRunnerSuite))
}

func (s *MigrationRunnerSuite) SetupTest() {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	s.Require().NoError(err)
	s.T().Cleanup(func() { db.Close() })

	s.mock = mock
	s.ctx = context.Background()
	s.cfg = &config.DatabaseConfig{
		MigrationsPath: filepath.Join(s.T().TempDir(), "missing"),
		SeedsPath:      s.T().TempDir(),
		SeedDatabase:   true,
	}
	s.runner = NewMigrationRunner(db, s.cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	attempts, interval := readinessAttempts, readinessInterval
	readinessAttempts, readinessInterval = 3, 5*time.Millisecond
	s.T().Cleanup(func() { readinessAttempts, readinessInterval = attempts, interval })
}

func (s *MigrationRunnerSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func (s *MigrationRunnerSuite) writeSeed(name, body string) {
	s.Require().NoError(os.WriteFile(filepath.Join(s.cfg.SeedsPath, name), []byte(body), 0o644))
}

func (s *MigrationRunnerSuite) TestWaitForDatabase_RetriesUntilReady() {
	s.mock.ExpectPing().WillReturnError(errors.New("the database system is starting up"))
	s.mock.ExpectPing()

	s.NoError(s.runner.WaitForDatabase(s.ctx))
}

func (s *MigrationRunnerSuite) TestWaitForDatabase_GivesUp() {
	refused := errors.New("connection refused")
	for i := 0; i < readinessAttempts; i++ {
		s.mock.ExpectPing().WillReturnError(refused)
	}

	err := s.runner.WaitForDatabase(s.ctx)
	s.ErrorIs(err, refused)
	s.Contains(err.Error(), "not ready after 3 attempts")
}

func (s *MigrationRunnerSuite) TestWaitForDatabase_StopsOnCancel() {
	readinessInterval = time.Minute
	ctx, cancel := context.WithTimeout(s.ctx, 20*time.Millisecond)
	defer cancel()

	s.mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	s.ErrorIs(s.runner.WaitForDatabase(ctx), context.DeadlineExceeded)
}

func (s *MigrationRunnerSuite) TestRunMigrations_NoDirectory() {
	applied, err := s.runner.RunMigrations(s.ctx)
	s.NoError(err)
	s.False(applied)
}

func (s *MigrationRunnerSuite) TestVerifyLedgerTables() {
	for _, table := range ledgerTables {
		s.mock.ExpectQuery(regexp.QuoteMeta("SELECT to_regclass($1)")).
			WithArgs(table).
			WillReturnRows(sqlmock.NewRows([]string{"to_regclass"}).AddRow(table))
	}
	s.NoError(s.runner.verifyLedgerTables(s.ctx))
}

func (s *MigrationRunnerSuite) TestVerifyLedgerTables_MissingTransactions() {
	for _, table := range ledgerTables {
		row := sqlmock.NewRows([]string{"to_regclass"})
		if table == "transactions" {
			row.AddRow(nil)
		} else {
			row.AddRow(table)
		}
		s.mock.ExpectQuery(regexp.QuoteMeta("SELECT to_regclass($1)")).WithArgs(table).WillReturnRows(row)
	}

	err := s.runner.verifyLedgerTables(s.ctx)
	s.ErrorIs(err, ErrLedgerSchemaIncomplete)
	s.Contains(err.Error(), "transactions")
}

func (s *MigrationRunnerSuite) TestLoadSeeds_Disabled() {
	s.runner.seed = false
	s.writeSeed("001_savings_types.sql", "INSERT INTO savings_types (name) VALUES ('12 months');")

	s.NoError(s.runner.LoadSeeds(s.ctx))
}

func (s *MigrationRunnerSuite) TestLoadSeeds_EachFileInItsOwnTransaction() {
	s.writeSeed("001_savings_types.sql", "INSERT INTO savings_types (name, term_months) VALUES ('12 months', 12);")
	s.writeSeed("002_accounts.sql", "INSERT INTO accounts (customer_ref) VALUES ('CUS-000001');")
	s.writeSeed("readme.txt", "not a seed")

	s.mock.ExpectBegin()
	s.mock.ExpectExec("INSERT INTO savings_types").WillReturnError(errors.New("duplicate key value"))
	s.mock.ExpectRollback()

	s.mock.ExpectBegin()
	s.mock.ExpectExec("INSERT INTO accounts").WillReturnResult(sqlmock.NewResult(0, 1))
	s.mock.ExpectCommit()

	s.NoError(s.runner.LoadSeeds(s.ctx))
}

func (s *MigrationRunnerSuite) TestLoadSeeds_UnreadableFile() {
	s.Require().NoError(os.Mkdir(filepath.Join(s.cfg.SeedsPath, "001_regulations.sql"), 0o755))

	err := s.runner.LoadSeeds(s.ctx)
	s.Error(err)
	s.Contains(err.Error(), "failed to read seed file")
}

func (s *MigrationRunnerSuite) TestRunMigrationsIfEnabled() {
	applied, err := RunMigrationsIfEnabled(s.ctx, s.runner.db, s.cfg, s.runner.log)
	s.NoError(err)
	s.False(applied)

	s.cfg.AutoMigrate = true
	for i := 0; i < readinessAttempts; i++ {
		s.mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	}
	_, err = RunMigrationsIfEnabled(s.ctx, s.runner.db, s.cfg, s.runner.log)
	s.Error(err)
	s.Contains(err.Error(), "database readiness check failed")
}

package services

import (
	"context"
	"time"

	"savingsbook/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SavingsServiceInterface is the operation surface used by the HTTP layer
type SavingsServiceInterface interface {
	OpenAccount(ctx context.Context, customerRef string, savingsTypeID uuid.UUID, initialDeposit decimal.Decimal, performedBy string) (*OperationResult, error)
	Deposit(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal, performedBy string) (*OperationResult, error)
	Withdraw(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal, performedBy string) (*OperationResult, error)
	CloseAtMaturity(ctx context.Context, accountID uuid.UUID, performedBy string) (*OperationResult, error)
	GetAccount(ctx context.Context, accountID uuid.UUID) (*models.Account, error)
	SearchAccounts(ctx context.Context, customerRef string) ([]models.Account, error)
	ListTransactions(ctx context.Context, accountID uuid.UUID) ([]models.Transaction, error)
	Reconcile(ctx context.Context, accountID uuid.UUID) (*ReconciliationResult, error)
	Ping(ctx context.Context) error
}

// RegulationStoreInterface exposes the versioned regulation
type RegulationStoreInterface interface {
	Current() *models.Regulation
	Update(ctx context.Context, actor string, update RegulationUpdate) (*models.Regulation, error)
	History(ctx context.Context, limit int) ([]models.RegulationHistoryEntry, error)
	Reload(ctx context.Context) error
}

// ReportAggregatorInterface builds read-only reports from committed transactions
type ReportAggregatorInterface interface {
	DailyReport(ctx context.Context, date time.Time) (*models.DailyReport, error)
	MonthlyOpenCloseReport(ctx context.Context, month, year int, savingsTypeID *uuid.UUID) (*models.MonthlyOpenCloseReport, error)
	WeeklyDashboard(ctx context.Context, today time.Time) (*models.Dashboard, error)
	RecentTransactions(ctx context.Context, limit int) ([]models.RecentTransaction, error)
}

// SavingsTypeServiceInterface manages the catalogue of savings products
type SavingsTypeServiceInterface interface {
	Create(ctx context.Context, actor string, input SavingsTypeInput) (*models.SavingsType, error)
	Update(ctx context.Context, actor string, id uuid.UUID, input SavingsTypeUpdate) (*models.SavingsType, error)
	Deactivate(ctx context.Context, actor string, id uuid.UUID) (*models.SavingsType, error)
	Get(ctx context.Context, id uuid.UUID) (*models.SavingsType, error)
	List(ctx context.Context, activeOnly bool) ([]models.SavingsType, error)
	SeedDefaults(ctx context.Context) error
}

type TokenServiceInterface interface {
	GenerateAccessToken(subject, role string) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type AuditLoggerInterface interface {
	LogAccountOpened(ctx context.Context, account *models.Account, transactionID uuid.UUID, performedBy string)
	LogDepositApplied(ctx context.Context, tx *models.Transaction)
	LogWithdrawalApplied(ctx context.Context, tx *models.Transaction)
	LogAccountClosed(ctx context.Context, tx *models.Transaction)
	LogOperationRejected(ctx context.Context, operation string, accountID uuid.UUID, err error)
	LogRegulationUpdated(ctx context.Context, regulation *models.Regulation, changes []models.RegulationHistoryEntry)
	LogOptimisticLockConflict(ctx context.Context, entityType string, entityID uuid.UUID, expectedVersion int)
	LogReconciliation(ctx context.Context, accountID uuid.UUID, balance, ledgerBalance decimal.Decimal)
}

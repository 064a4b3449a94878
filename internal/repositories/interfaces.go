package repositories

import (
	"context"
	"time"

	"savingsbook/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountUpdate describes the balance row change committed with a ledger entry.
type AccountUpdate struct {
	AccountID       uuid.UUID
	ExpectedVersion int
	NewBalance      decimal.Decimal
	Close           bool
	ClosedAt        *time.Time
}

// TransactionQuery selects ledger entries for reporting. The range is half open: [From, To).
type TransactionQuery struct {
	From          time.Time
	To            time.Time
	SavingsTypeID *uuid.UUID
	Kinds         []string
}

// LedgerStore persists accounts together with their append-only transaction log.
// Every mutating call commits the account row and the transaction atomically.
type LedgerStore interface {
	CreateAccount(ctx context.Context, account *models.Account, opening *models.Transaction) error
	CommitTransition(ctx context.Context, update AccountUpdate, entry *models.Transaction) (*models.Account, error)
	GetAccount(ctx context.Context, id uuid.UUID) (*models.Account, error)
	FindAccountsByCustomerRef(ctx context.Context, customerRef string) ([]models.Account, error)
	ListTransactions(ctx context.Context, accountID uuid.UUID) ([]models.Transaction, error)
	QueryTransactions(ctx context.Context, query TransactionQuery) ([]models.Transaction, error)
	// RecentTransactions returns the latest limit entries across all accounts, newest first
	RecentTransactions(ctx context.Context, limit int) ([]models.Transaction, error)
	// CountActiveAccounts counts active accounts per savings type
	CountActiveAccounts(ctx context.Context) (map[uuid.UUID]int, error)
	Ping(ctx context.Context) error
}

// SavingsTypeRepositoryInterface defines the contract for savings type persistence
type SavingsTypeRepositoryInterface interface {
	Create(ctx context.Context, savingsType *models.SavingsType) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.SavingsType, error)
	List(ctx context.Context, activeOnly bool) ([]models.SavingsType, error)
	Update(ctx context.Context, savingsType *models.SavingsType) error
	Count(ctx context.Context) (int64, error)
}

// RegulationRepositoryInterface defines the contract for regulation versions and their history
type RegulationRepositoryInterface interface {
	Latest(ctx context.Context) (*models.Regulation, error)
	// SaveVersion stores a new regulation version, its history entries and any
	// savings type rate changes in one transaction.
	SaveVersion(ctx context.Context, regulation *models.Regulation, history []models.RegulationHistoryEntry, rateChanges map[uuid.UUID]decimal.Decimal) error
	History(ctx context.Context, limit int) ([]models.RegulationHistoryEntry, error)
}

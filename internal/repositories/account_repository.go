package repositories

import (
	"context"
	"errors"
	"fmt"

	"savingsbook/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrAccountNotFound        = errors.New("account not found")
	ErrConcurrentModification = errors.New("account was modified concurrently")
	ErrStoreUnavailable       = errors.New("store unavailable")
)

// accountRepository implements LedgerStore on top of gorm
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a gorm backed ledger store
func NewAccountRepository(db *gorm.DB) LedgerStore {
	return &accountRepository{
		db: db,
	}
}

// CreateAccount inserts the account and its opening transaction in one database transaction
func (r *accountRepository) CreateAccount(ctx context.Context, account *models.Account, opening *models.Transaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(account).Error; err != nil {
			return fmt.Errorf("failed to create account: %w", err)
		}

		opening.AccountID = account.ID
		opening.CreatedAt = opening.CreatedAt.UTC()
		if err := tx.Create(opening).Error; err != nil {
			return fmt.Errorf("failed to create opening transaction: %w", err)
		}

		return nil
	})
}

// CommitTransition locks the account row, verifies the expected version, writes the
// new balance and appends the ledger entry atomically.
func (r *accountRepository) CommitTransition(ctx context.Context, update AccountUpdate, entry *models.Transaction) (*models.Account, error) {
	var committed models.Account

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var account models.Account

		// Row-level locking prevents concurrent balance modifications
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&account, "id = ?", update.AccountID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAccountNotFound
			}
			return fmt.Errorf("failed to lock account: %w", err)
		}

		if account.Version != update.ExpectedVersion {
			return ErrConcurrentModification
		}

		fields := map[string]interface{}{
			"balance":    update.NewBalance,
			"version":    account.Version + 1,
			"updated_at": entry.CreatedAt,
		}
		if update.Close {
			fields["status"] = models.AccountStatusClosed
			fields["closed_at"] = update.ClosedAt
		}

		result := tx.Model(&models.Account{}).
			Where("id = ? AND version = ?", account.ID, update.ExpectedVersion).
			Updates(fields)
		if result.Error != nil {
			return fmt.Errorf("failed to update account balance: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrConcurrentModification
		}

		entry.AccountID = account.ID
		entry.CreatedAt = entry.CreatedAt.UTC()
		if err := tx.Create(entry).Error; err != nil {
			return fmt.Errorf("failed to append transaction: %w", err)
		}

		account.Balance = update.NewBalance
		account.Version++
		account.UpdatedAt = entry.CreatedAt
		if update.Close {
			account.Status = models.AccountStatusClosed
			account.ClosedAt = update.ClosedAt
		}
		committed = account

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &committed, nil
}

// GetAccount retrieves an account by ID
func (r *accountRepository) GetAccount(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	var account models.Account
	if err := r.db.WithContext(ctx).First(&account, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

// FindAccountsByCustomerRef retrieves all accounts opened for a customer reference
func (r *accountRepository) FindAccountsByCustomerRef(ctx context.Context, customerRef string) ([]models.Account, error) {
	var accounts []models.Account
	if err := r.db.WithContext(ctx).
		Where("customer_ref = ?", customerRef).
		Order("open_date ASC").
		Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to get accounts for customer: %w", err)
	}
	return accounts, nil
}

// ListTransactions returns the ledger of one account in commit order
func (r *accountRepository) ListTransactions(ctx context.Context, accountID uuid.UUID) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at ASC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}
	return transactions, nil
}

// QueryTransactions returns ledger entries in the half open range [From, To)
func (r *accountRepository) QueryTransactions(ctx context.Context, query TransactionQuery) ([]models.Transaction, error) {
	var transactions []models.Transaction

	q := r.db.WithContext(ctx).
		Where("created_at >= ? AND created_at < ?", query.From.UTC(), query.To.UTC())

	if query.SavingsTypeID != nil {
		q = q.Where("savings_type_id = ?", *query.SavingsTypeID)
	}
	if len(query.Kinds) > 0 {
		q = q.Where("kind IN ?", query.Kinds)
	}

	if err := q.Order("created_at ASC").Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	return transactions, nil
}

// RecentTransactions returns the latest limit ledger entries, newest first
func (r *accountRepository) RecentTransactions(ctx context.Context, limit int) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get recent transactions: %w", err)
	}
	return transactions, nil
}

// CountActiveAccounts groups active accounts by savings type
func (r *accountRepository) CountActiveAccounts(ctx context.Context) (map[uuid.UUID]int, error) {
	var rows []struct {
		SavingsTypeID uuid.UUID
		Accounts      int
	}
	if err := r.db.WithContext(ctx).
		Model(&models.Account{}).
		Select("savings_type_id, COUNT(*) AS accounts").
		Where("status = ?", models.AccountStatusActive).
		Group("savings_type_id").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count active accounts: %w", err)
	}

	counts := make(map[uuid.UUID]int, len(rows))
	for _, row := range rows {
		counts[row.SavingsTypeID] = row.Accounts
	}
	return counts, nil
}

// Ping checks the underlying connection
func (r *accountRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

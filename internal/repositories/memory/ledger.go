// Package memory provides process-local implementations of the repository
// contracts for tests and single-node development runs.
package memory

import (
	"context"
	"sort"
	"sync"

	"savingsbook/internal/models"
	"savingsbook/internal/repositories"

	"github.com/google/uuid"
)

type ledgerStore struct {
	mu           sync.RWMutex
	accounts     map[uuid.UUID]models.Account
	transactions []models.Transaction
	byAccount    map[uuid.UUID][]int
}

// NewLedgerStore creates an empty in-memory ledger store
func NewLedgerStore() repositories.LedgerStore {
	return &ledgerStore{
		accounts:  make(map[uuid.UUID]models.Account),
		byAccount: make(map[uuid.UUID][]int),
	}
}

func (s *ledgerStore) CreateAccount(ctx context.Context, account *models.Account, opening *models.Transaction) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := account.BeforeCreate(nil); err != nil {
		return err
	}
	if _, exists := s.accounts[account.ID]; exists {
		return repositories.ErrConcurrentModification
	}

	opening.AccountID = account.ID
	if err := opening.BeforeCreate(nil); err != nil {
		return err
	}

	s.accounts[account.ID] = *account
	s.appendLocked(*opening)
	return nil
}

func (s *ledgerStore) CommitTransition(ctx context.Context, update repositories.AccountUpdate, entry *models.Transaction) (*models.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[update.AccountID]
	if !ok {
		return nil, repositories.ErrAccountNotFound
	}
	if account.Version != update.ExpectedVersion {
		return nil, repositories.ErrConcurrentModification
	}

	entry.AccountID = account.ID
	if err := entry.BeforeCreate(nil); err != nil {
		return nil, err
	}

	account.Balance = update.NewBalance
	account.Version++
	account.UpdatedAt = entry.CreatedAt
	if update.Close {
		account.Status = models.AccountStatusClosed
		account.ClosedAt = update.ClosedAt
	}

	s.accounts[account.ID] = account
	s.appendLocked(*entry)

	return &account, nil
}

func (s *ledgerStore) GetAccount(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.accounts[id]
	if !ok {
		return nil, repositories.ErrAccountNotFound
	}
	return &account, nil
}

func (s *ledgerStore) FindAccountsByCustomerRef(ctx context.Context, customerRef string) ([]models.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	accounts := make([]models.Account, 0)
	for _, account := range s.accounts {
		if account.CustomerRef == customerRef {
			accounts = append(accounts, account)
		}
	}
	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].OpenDate.Before(accounts[j].OpenDate)
	})
	return accounts, nil
}

func (s *ledgerStore) ListTransactions(ctx context.Context, accountID uuid.UUID) ([]models.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	indexes := s.byAccount[accountID]
	transactions := make([]models.Transaction, 0, len(indexes))
	for _, idx := range indexes {
		transactions = append(transactions, s.transactions[idx])
	}
	return transactions, nil
}

func (s *ledgerStore) QueryTransactions(ctx context.Context, query repositories.TransactionQuery) ([]models.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	kinds := make(map[string]struct{}, len(query.Kinds))
	for _, kind := range query.Kinds {
		kinds[kind] = struct{}{}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	transactions := make([]models.Transaction, 0)
	for _, tx := range s.transactions {
		if tx.CreatedAt.Before(query.From) || !tx.CreatedAt.Before(query.To) {
			continue
		}
		if query.SavingsTypeID != nil && tx.SavingsTypeID != *query.SavingsTypeID {
			continue
		}
		if len(kinds) > 0 {
			if _, ok := kinds[tx.Kind]; !ok {
				continue
			}
		}
		transactions = append(transactions, tx)
	}
	return transactions, nil
}

func (s *ledgerStore) RecentTransactions(ctx context.Context, limit int) ([]models.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	transactions := make([]models.Transaction, len(s.transactions))
	copy(transactions, s.transactions)
	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].CreatedAt.After(transactions[j].CreatedAt)
	})
	if limit >= 0 && len(transactions) > limit {
		transactions = transactions[:limit]
	}
	return transactions, nil
}

func (s *ledgerStore) CountActiveAccounts(ctx context.Context) (map[uuid.UUID]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[uuid.UUID]int)
	for _, account := range s.accounts {
		if account.Status == models.AccountStatusActive {
			counts[account.SavingsTypeID]++
		}
	}
	return counts, nil
}

func (s *ledgerStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *ledgerStore) appendLocked(tx models.Transaction) {
	s.transactions = append(s.transactions, tx)
	s.byAccount[tx.AccountID] = append(s.byAccount[tx.AccountID], len(s.transactions)-1)
}

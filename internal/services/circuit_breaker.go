package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"savingsbook/internal/models"
	"savingsbook/internal/repositories"

	"github.com/google/uuid"
)

var ErrCircuitBreakerOpen = errors.New("circuit breaker is open")

type CircuitState int

const (
	CircuitClosed CircuitState = iota
	CircuitOpen
	CircuitHalfOpen
)

func (s CircuitState) String() string {
	switch s {
	case CircuitOpen:
		return "open"
	case CircuitHalfOpen:
		return "half_open"
	default:
		return "closed"
	}
}

type CircuitBreakerConfig struct {
	MaxFailures     int
	ResetTimeout    time.Duration
	HalfOpenMaxSucc int
}

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		MaxFailures:     5,
		ResetTimeout:    30 * time.Second,
		HalfOpenMaxSucc: 3,
	}
}

// CircuitBreaker counts consecutive store failures. Once open it rejects
// calls until ResetTimeout has passed, then lets trial calls through half-open.
type CircuitBreaker struct {
	mu                sync.Mutex
	config            CircuitBreakerConfig
	clock             Clock
	state             CircuitState
	failures          int
	halfOpenSuccesses int
	lastFailureTime   time.Time
}

func NewCircuitBreaker(config CircuitBreakerConfig, clock Clock) *CircuitBreaker {
	return &CircuitBreaker{
		config: config,
		clock:  clock,
		state:  CircuitClosed,
	}
}

func (cb *CircuitBreaker) IsOpen() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state == CircuitOpen && cb.clock.Now().Sub(cb.lastFailureTime) > cb.config.ResetTimeout {
		cb.state = CircuitHalfOpen
		cb.halfOpenSuccesses = 0
		return false
	}

	return cb.state == CircuitOpen
}

func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case CircuitHalfOpen:
		cb.halfOpenSuccesses++
		if cb.halfOpenSuccesses >= cb.config.HalfOpenMaxSucc {
			cb.state = CircuitClosed
			cb.failures = 0
			cb.halfOpenSuccesses = 0
		}
	case CircuitClosed:
		cb.failures = 0
	}
}

func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.lastFailureTime = cb.clock.Now()

	switch cb.state {
	case CircuitHalfOpen:
		cb.state = CircuitOpen
		cb.halfOpenSuccesses = 0
	case CircuitClosed:
		cb.failures++
		if cb.failures >= cb.config.MaxFailures {
			cb.state = CircuitOpen
			cb.halfOpenSuccesses = 0
		}
	}
}

func (cb *CircuitBreaker) State() CircuitState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

func (cb *CircuitBreaker) Failures() int {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.failures
}

// GuardedLedgerStore fails fast with ErrStoreUnavailable while the breaker
// is open. Only infrastructure errors count as failures and they come back
// wrapped in ErrStoreUnavailable; not-found and version conflicts are answers
// from a healthy store.
type GuardedLedgerStore struct {
	next    repositories.LedgerStore
	breaker *CircuitBreaker
}

var _ repositories.LedgerStore = (*GuardedLedgerStore)(nil)

func NewGuardedLedgerStore(next repositories.LedgerStore, breaker *CircuitBreaker) *GuardedLedgerStore {
	return &GuardedLedgerStore{next: next, breaker: breaker}
}

func (g *GuardedLedgerStore) CreateAccount(ctx context.Context, account *models.Account, opening *models.Transaction) error {
	return g.guard(func() error {
		return g.next.CreateAccount(ctx, account, opening)
	})
}

func (g *GuardedLedgerStore) CommitTransition(ctx context.Context, update repositories.AccountUpdate, entry *models.Transaction) (*models.Account, error) {
	var account *models.Account
	err := g.guard(func() error {
		var err error
		account, err = g.next.CommitTransition(ctx, update, entry)
		return err
	})
	return account, err
}

func (g *GuardedLedgerStore) GetAccount(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	var account *models.Account
	err := g.guard(func() error {
		var err error
		account, err = g.next.GetAccount(ctx, id)
		return err
	})
	return account, err
}

func (g *GuardedLedgerStore) FindAccountsByCustomerRef(ctx context.Context, customerRef string) ([]models.Account, error) {
	var accounts []models.Account
	err := g.guard(func() error {
		var err error
		accounts, err = g.next.FindAccountsByCustomerRef(ctx, customerRef)
		return err
	})
	return accounts, err
}

func (g *GuardedLedgerStore) ListTransactions(ctx context.Context, accountID uuid.UUID) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := g.guard(func() error {
		var err error
		transactions, err = g.next.ListTransactions(ctx, accountID)
		return err
	})
	return transactions, err
}

func (g *GuardedLedgerStore) QueryTransactions(ctx context.Context, query repositories.TransactionQuery) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := g.guard(func() error {
		var err error
		transactions, err = g.next.QueryTransactions(ctx, query)
		return err
	})
	return transactions, err
}

func (g *GuardedLedgerStore) RecentTransactions(ctx context.Context, limit int) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := g.guard(func() error {
		var err error
		transactions, err = g.next.RecentTransactions(ctx, limit)
		return err
	})
	return transactions, err
}

func (g *GuardedLedgerStore) CountActiveAccounts(ctx context.Context) (map[uuid.UUID]int, error) {
	var counts map[uuid.UUID]int
	err := g.guard(func() error {
		var err error
		counts, err = g.next.CountActiveAccounts(ctx)
		return err
	})
	return counts, err
}

// Ping bypasses the breaker so health checks see the real store state
func (g *GuardedLedgerStore) Ping(ctx context.Context) error {
	return g.next.Ping(ctx)
}

func (g *GuardedLedgerStore) guard(call func() error) error {
	if g.breaker.IsOpen() {
		return fmt.Errorf("%w: %w", repositories.ErrStoreUnavailable, ErrCircuitBreakerOpen)
	}

	err := call()
	if !isStoreFailure(err) {
		g.breaker.RecordSuccess()
		return err
	}

	g.breaker.RecordFailure()
	if errors.Is(err, repositories.ErrStoreUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %w", repositories.ErrStoreUnavailable, err)
}

func isStoreFailure(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, repositories.ErrAccountNotFound),
		errors.Is(err, repositories.ErrSavingsTypeNotFound),
		errors.Is(err, repositories.ErrConcurrentModification),
		errors.Is(err, context.Canceled):
		return false
	default:
		return true
	}
}

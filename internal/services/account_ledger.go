package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"savingsbook/internal/models"
	"savingsbook/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// accountLocks hands out one mutex per account id. Entries are dropped once no
// caller holds or waits on them.
type accountLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*accountLock
}

type accountLock struct {
	ch   chan struct{}
	refs int
}

func newAccountLocks() *accountLocks {
	return &accountLocks{locks: make(map[uuid.UUID]*accountLock)}
}

// acquire blocks until the account is free or ctx is done
func (l *accountLocks) acquire(ctx context.Context, id uuid.UUID) (func(), error) {
	l.mu.Lock()
	lock, ok := l.locks[id]
	if !ok {
		lock = &accountLock{ch: make(chan struct{}, 1)}
		l.locks[id] = lock
	}
	lock.refs++
	l.mu.Unlock()

	select {
	case lock.ch <- struct{}{}:
	case <-ctx.Done():
		l.unref(id, lock)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-lock.ch
			l.unref(id, lock)
		})
	}, nil
}

func (l *accountLocks) unref(id uuid.UUID, lock *accountLock) {
	l.mu.Lock()
	lock.refs--
	if lock.refs == 0 {
		delete(l.locks, id)
	}
	l.mu.Unlock()
}

// DepositRequest describes a principal credit. At is the instant the caller
// validated against; zero means the ledger clock.
type DepositRequest struct {
	Amount      decimal.Decimal
	PerformedBy string
	At          time.Time
}

// WithdrawalRequest describes a principal debit. MonthlyRate comes from the
// regulation snapshot of the calling operation and At from its validation.
type WithdrawalRequest struct {
	Amount      decimal.Decimal
	MonthlyRate decimal.Decimal
	IsClosure   bool
	PerformedBy string
	At          time.Time
}

// LedgerResult is the committed outcome of a ledger mutation
type LedgerResult struct {
	Account      *models.Account
	Transaction  *models.Transaction
	InterestPaid decimal.Decimal
}

// ReconciliationResult compares an account balance with its transaction log
type ReconciliationResult struct {
	AccountID        uuid.UUID       `json:"account_id"`
	Balance          decimal.Decimal `json:"balance"`
	LedgerBalance    decimal.Decimal `json:"ledger_balance"`
	TransactionCount int             `json:"transaction_count"`
	Consistent       bool            `json:"consistent"`
}

// AccountLedger owns account balances and the append-only transaction log.
// Every mutation is one atomic store call; the ledger re-checks the account
// state machine before committing.
type AccountLedger struct {
	store      repositories.LedgerStore
	calculator *InterestCalculator
	clock      Clock
	locks      *accountLocks
	audit      AuditLoggerInterface
	logger     *slog.Logger
}

func NewAccountLedger(store repositories.LedgerStore, calculator *InterestCalculator, clock Clock, audit AuditLoggerInterface, logger *slog.Logger) *AccountLedger {
	return &AccountLedger{
		store:      store,
		calculator: calculator,
		clock:      clock,
		locks:      newAccountLocks(),
		audit:      audit,
		logger:     logger,
	}
}

// Lock gives the caller exclusive use of one account until release is called.
// Different accounts never contend.
func (l *AccountLedger) Lock(ctx context.Context, accountID uuid.UUID) (release func(), err error) {
	return l.locks.acquire(ctx, accountID)
}

// Get loads an account and derives its state from the clock
func (l *AccountLedger) Get(ctx context.Context, accountID uuid.UUID) (*models.Account, error) {
	account, err := l.store.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	account.State = account.StateAt(l.clock.Now())
	return account, nil
}

// FindByCustomerRef lists a customer's accounts with derived states
func (l *AccountLedger) FindByCustomerRef(ctx context.Context, customerRef string) ([]models.Account, error) {
	accounts, err := l.store.FindAccountsByCustomerRef(ctx, customerRef)
	if err != nil {
		return nil, err
	}
	now := l.clock.Now()
	for i := range accounts {
		accounts[i].State = accounts[i].StateAt(now)
	}
	return accounts, nil
}

// Transactions returns the log of an existing account, oldest first
func (l *AccountLedger) Transactions(ctx context.Context, accountID uuid.UUID) ([]models.Transaction, error) {
	if _, err := l.store.GetAccount(ctx, accountID); err != nil {
		return nil, err
	}
	return l.store.ListTransactions(ctx, accountID)
}

func (l *AccountLedger) Ping(ctx context.Context) error {
	return l.store.Ping(ctx)
}

// Open creates an active account with balance = initialDeposit and its Open transaction
func (l *AccountLedger) Open(ctx context.Context, customerRef string, savingsType *models.SavingsType, initialDeposit decimal.Decimal, performedBy string) (*LedgerResult, error) {
	if !initialDeposit.IsPositive() {
		return nil, invalidArgument("initial_deposit", "initial deposit must be greater than 0")
	}

	now := l.clock.Now()
	account := &models.Account{
		CustomerRef:   customerRef,
		SavingsTypeID: savingsType.ID,
		Balance:       initialDeposit,
		OpenDate:      now,
		MaturityDate:  savingsType.MaturityDate(now),
		Status:        models.AccountStatusActive,
		Version:       1,
	}
	opening := &models.Transaction{
		SavingsTypeID: savingsType.ID,
		Kind:          models.TransactionKindOpen,
		Amount:        initialDeposit,
		InterestPaid:  decimal.Zero,
		BalanceAfter:  initialDeposit,
		PerformedBy:   performedBy,
		Note:          fmt.Sprintf("opened under %s", savingsType.Name),
		CreatedAt:     now,
	}

	if err := l.store.CreateAccount(ctx, account, opening); err != nil {
		return nil, fmt.Errorf("failed to open account: %w", err)
	}

	account.State = account.StateAt(now)
	return &LedgerResult{Account: account, Transaction: opening, InterestPaid: decimal.Zero}, nil
}

// ApplyDeposit credits a no-term account. The caller holds the account lock.
func (l *AccountLedger) ApplyDeposit(ctx context.Context, account *models.Account, req DepositRequest) (*LedgerResult, error) {
	now := l.at(req.At)
	state := account.StateAt(now)

	if state != models.StateActiveNoTerm {
		return nil, violation(ErrIllegalStateTransition, state, "deposit requires active_no_term", nil)
	}
	if !req.Amount.IsPositive() {
		return nil, invalidArgument("amount", "deposit amount must be greater than 0")
	}

	newBalance := account.Balance.Add(req.Amount)
	entry := &models.Transaction{
		SavingsTypeID: account.SavingsTypeID,
		Kind:          models.TransactionKindDeposit,
		Amount:        req.Amount,
		InterestPaid:  decimal.Zero,
		BalanceAfter:  newBalance,
		PerformedBy:   req.PerformedBy,
		CreatedAt:     now,
	}

	updated, err := l.commit(ctx, account, repositories.AccountUpdate{
		AccountID:       account.ID,
		ExpectedVersion: account.Version,
		NewBalance:      newBalance,
	}, entry, now)
	if err != nil {
		return nil, err
	}

	return &LedgerResult{Account: updated, Transaction: entry, InterestPaid: decimal.Zero}, nil
}

// ApplyWithdrawal debits principal and pays interest on top of it. A matured
// fixed-term account, or any closure, ends in the Closed state.
// The caller holds the account lock.
func (l *AccountLedger) ApplyWithdrawal(ctx context.Context, account *models.Account, req WithdrawalRequest) (*LedgerResult, error) {
	now := l.at(req.At)
	state := account.StateAt(now)

	var (
		regime InterestRegime
		lots   []InterestLot
	)
	switch state {
	case models.StateActiveNoTerm:
		if req.Amount.GreaterThan(account.Balance) {
			return nil, violation(ErrIllegalStateTransition, state, "amount <= balance", nil)
		}
		regime = RegimeElapsed
	case models.StateActiveFixedTermMatured:
		if !req.Amount.Equal(account.Balance) {
			return nil, violation(ErrIllegalStateTransition, state, "matured payout withdraws the full balance", nil)
		}
		regime = RegimeMaturity
		lots = []InterestLot{{Principal: req.Amount, DaysHeld: account.TermDays()}}
	default:
		return nil, violation(ErrIllegalStateTransition, state, "withdrawal requires active_no_term or active_fixed_term_matured", nil)
	}

	if req.Amount.IsNegative() || (req.Amount.IsZero() && !req.IsClosure) {
		return nil, invalidArgument("amount", "withdrawal amount must be greater than 0")
	}

	if regime == RegimeElapsed && req.Amount.IsPositive() {
		log, err := l.store.ListTransactions(ctx, account.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load deposit lots: %w", err)
		}
		lots = withdrawnLots(account, log, req.Amount, now)
	}

	interest, err := l.calculator.ComputeLotInterest(lots, req.MonthlyRate, regime)
	if err != nil {
		return nil, err
	}

	daysHeld := 0
	if len(lots) > 0 {
		daysHeld = lots[0].DaysHeld
	}

	closing := req.IsClosure || account.IsFixedTerm()
	newBalance := account.Balance.Sub(req.Amount)

	entry := &models.Transaction{
		SavingsTypeID: account.SavingsTypeID,
		Kind:          models.TransactionKindWithdraw,
		Amount:        req.Amount,
		InterestPaid:  interest,
		BalanceAfter:  newBalance,
		PerformedBy:   req.PerformedBy,
		CreatedAt:     now,
	}

	update := repositories.AccountUpdate{
		AccountID:       account.ID,
		ExpectedVersion: account.Version,
		NewBalance:      newBalance,
	}
	if closing {
		entry.Kind = models.TransactionKindClose
		entry.Note = fmt.Sprintf("closed after %d days: principal %s, interest %s (%s)", daysHeld, req.Amount, interest, regime)
		update.Close = true
		update.ClosedAt = &now
	}

	updated, err := l.commit(ctx, account, update, entry, now)
	if err != nil {
		return nil, err
	}

	return &LedgerResult{Account: updated, Transaction: entry, InterestPaid: interest}, nil
}

// Reconcile recomputes the balance from the transaction log
func (l *AccountLedger) Reconcile(ctx context.Context, accountID uuid.UUID) (*ReconciliationResult, error) {
	account, err := l.store.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	transactions, err := l.store.ListTransactions(ctx, accountID)
	if err != nil {
		return nil, err
	}

	ledgerBalance := models.SumPrincipal(transactions)
	result := &ReconciliationResult{
		AccountID:        accountID,
		Balance:          account.Balance,
		LedgerBalance:    ledgerBalance,
		TransactionCount: len(transactions),
		Consistent:       ledgerBalance.Equal(account.Balance),
	}

	l.audit.LogReconciliation(ctx, accountID, account.Balance, ledgerBalance)

	if !result.Consistent {
		return result, fmt.Errorf("%w: account %s balance %s, ledger %s", ErrBalanceMismatch, accountID, account.Balance, ledgerBalance)
	}
	return result, nil
}

func (l *AccountLedger) commit(ctx context.Context, account *models.Account, update repositories.AccountUpdate, entry *models.Transaction, now time.Time) (*models.Account, error) {
	updated, err := l.store.CommitTransition(ctx, update, entry)
	if err != nil {
		if errors.Is(err, repositories.ErrConcurrentModification) {
			l.audit.LogOptimisticLockConflict(ctx, "account", account.ID, update.ExpectedVersion)
		}
		return nil, fmt.Errorf("failed to commit %s: %w", entry.Kind, err)
	}

	updated.State = updated.StateAt(now)
	l.logger.DebugContext(ctx, "ledger entry committed",
		"account_id", updated.ID,
		"kind", entry.Kind,
		"version", updated.Version,
		"state", updated.State,
	)
	return updated, nil
}

func (l *AccountLedger) at(t time.Time) time.Time {
	if t.IsZero() {
		return l.clock.Now()
	}
	return t
}

// withdrawnLots splits amount across the account's credits oldest first, after
// earlier debits have consumed theirs. Each lot accrues from its own credit
// date. Principal the log cannot place is held since the open date.
func withdrawnLots(account *models.Account, log []models.Transaction, amount decimal.Decimal, now time.Time) []InterestLot {
	type credit struct {
		remaining decimal.Decimal
		since     time.Time
	}
	var credits []credit

	take := func(want decimal.Decimal, visit func(portion decimal.Decimal, since time.Time)) decimal.Decimal {
		for want.IsPositive() && len(credits) > 0 {
			head := &credits[0]
			portion := decimal.Min(want, head.remaining)
			if visit != nil {
				visit(portion, head.since)
			}
			head.remaining = head.remaining.Sub(portion)
			want = want.Sub(portion)
			if !head.remaining.IsPositive() {
				credits = credits[1:]
			}
		}
		return want
	}

	for i := range log {
		switch t := &log[i]; {
		case t.IsCredit():
			credits = append(credits, credit{remaining: t.Amount, since: t.CreatedAt})
		case t.IsDebit():
			take(t.Amount, nil)
		}
	}

	var lots []InterestLot
	rest := take(amount, func(portion decimal.Decimal, since time.Time) {
		lots = append(lots, InterestLot{Principal: portion, DaysHeld: models.DaysBetween(since.In(now.Location()), now)})
	})
	if rest.IsPositive() {
		lots = append(lots, InterestLot{Principal: rest, DaysHeld: account.DaysHeld(now)})
	}
	return lots
}

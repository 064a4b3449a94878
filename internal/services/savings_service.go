package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"savingsbook/internal/models"
	"savingsbook/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	operationOpen     = "open"
	operationDeposit  = "deposit"
	operationWithdraw = "withdraw"
	operationClose    = "close"
)

// OperationResult is returned by every committed account operation
type OperationResult struct {
	Account      *models.Account     `json:"account"`
	Transaction  *models.Transaction `json:"transaction"`
	InterestPaid decimal.Decimal     `json:"interest_paid"`
}

// SavingsService runs account operations. Each one captures the regulation
// snapshot once, takes the account lock, reads the clock once, validates the
// loaded state with the rules engine and commits through the ledger at that
// same instant.
type SavingsService struct {
	regulations RegulationStoreInterface
	types       repositories.SavingsTypeRepositoryInterface
	ledger      *AccountLedger
	rules       *TransactionRulesEngine
	clock       Clock
	audit       AuditLoggerInterface
	metrics     MetricsRecorderInterface
	logger      *slog.Logger
}

func NewSavingsService(
	regulations RegulationStoreInterface,
	types repositories.SavingsTypeRepositoryInterface,
	ledger *AccountLedger,
	rules *TransactionRulesEngine,
	clock Clock,
	audit AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) SavingsServiceInterface {
	return &SavingsService{
		regulations: regulations,
		types:       types,
		ledger:      ledger,
		rules:       rules,
		clock:       clock,
		audit:       audit,
		metrics:     metrics,
		logger:      logger,
	}
}

// OpenAccount creates an account under an active savings type
func (s *SavingsService) OpenAccount(ctx context.Context, customerRef string, savingsTypeID uuid.UUID, initialDeposit decimal.Decimal, performedBy string) (*OperationResult, error) {
	defer s.timed(operationOpen)()

	customerRef = strings.TrimSpace(customerRef)
	if customerRef == "" {
		return nil, s.reject(ctx, operationOpen, uuid.Nil, invalidArgument("customer_ref", "customer reference is required"))
	}

	regulation := s.regulations.Current()

	savingsType, err := s.types.GetByID(ctx, savingsTypeID)
	if err != nil {
		return nil, err
	}

	if err := s.rules.ValidateOpen(savingsType, initialDeposit, regulation); err != nil {
		return nil, s.reject(ctx, operationOpen, uuid.Nil, err)
	}

	result, err := s.ledger.Open(ctx, customerRef, savingsType, initialDeposit, performedBy)
	if err != nil {
		return nil, err
	}

	s.audit.LogAccountOpened(ctx, result.Account, result.Transaction.ID, performedBy)
	s.committed(operationOpen, result)

	return toOperationResult(result), nil
}

// Deposit credits a no-term account
func (s *SavingsService) Deposit(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal, performedBy string) (*OperationResult, error) {
	return s.deposit(ctx, s.regulations.Current(), accountID, amount, performedBy)
}

// deposit validates against the given snapshot. A snapshot captured before a
// regulation update keeps governing the operation that captured it.
func (s *SavingsService) deposit(ctx context.Context, regulation *models.Regulation, accountID uuid.UUID, amount decimal.Decimal, performedBy string) (*OperationResult, error) {
	defer s.timed(operationDeposit)()

	release, err := s.ledger.Lock(ctx, accountID)
	if err != nil {
		return nil, err
	}
	defer release()

	now := s.clock.Now()

	account, err := s.ledger.Get(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if err := s.rules.ValidateDeposit(account, amount, regulation, now); err != nil {
		return nil, s.reject(ctx, operationDeposit, accountID, err)
	}

	result, err := s.ledger.ApplyDeposit(ctx, account, DepositRequest{
		Amount:      amount,
		PerformedBy: performedBy,
		At:          now,
	})
	if err != nil {
		return nil, err
	}

	s.audit.LogDepositApplied(ctx, result.Transaction)
	s.committed(operationDeposit, result)

	return toOperationResult(result), nil
}

// Withdraw debits principal and pays interest. Withdrawing the full balance of
// a matured fixed-term account closes it.
func (s *SavingsService) Withdraw(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal, performedBy string) (*OperationResult, error) {
	return s.withdraw(ctx, s.regulations.Current(), accountID, amount, performedBy)
}

func (s *SavingsService) withdraw(ctx context.Context, regulation *models.Regulation, accountID uuid.UUID, amount decimal.Decimal, performedBy string) (*OperationResult, error) {
	defer s.timed(operationWithdraw)()

	release, err := s.ledger.Lock(ctx, accountID)
	if err != nil {
		return nil, err
	}
	defer release()

	now := s.clock.Now()

	account, err := s.ledger.Get(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if err := s.rules.ValidateWithdrawal(account, amount, regulation, now); err != nil {
		return nil, s.reject(ctx, operationWithdraw, accountID, err)
	}

	rate, err := s.monthlyRate(ctx, account, regulation)
	if err != nil {
		return nil, err
	}

	result, err := s.ledger.ApplyWithdrawal(ctx, account, WithdrawalRequest{
		Amount:      amount,
		MonthlyRate: rate,
		PerformedBy: performedBy,
		At:          now,
	})
	if err != nil {
		return nil, err
	}

	if result.Transaction.Kind == models.TransactionKindClose {
		s.audit.LogAccountClosed(ctx, result.Transaction)
		s.committed(operationClose, result)
	} else {
		s.audit.LogWithdrawalApplied(ctx, result.Transaction)
		s.committed(operationWithdraw, result)
	}

	return toOperationResult(result), nil
}

// CloseAtMaturity pays out the full balance with interest and closes the account
func (s *SavingsService) CloseAtMaturity(ctx context.Context, accountID uuid.UUID, performedBy string) (*OperationResult, error) {
	defer s.timed(operationClose)()

	regulation := s.regulations.Current()

	release, err := s.ledger.Lock(ctx, accountID)
	if err != nil {
		return nil, err
	}
	defer release()

	now := s.clock.Now()

	account, err := s.ledger.Get(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if err := s.rules.ValidateClose(account, regulation, now); err != nil {
		return nil, s.reject(ctx, operationClose, accountID, err)
	}

	rate, err := s.monthlyRate(ctx, account, regulation)
	if err != nil {
		return nil, err
	}

	result, err := s.ledger.ApplyWithdrawal(ctx, account, WithdrawalRequest{
		Amount:      account.Balance,
		MonthlyRate: rate,
		IsClosure:   true,
		PerformedBy: performedBy,
		At:          now,
	})
	if err != nil {
		return nil, err
	}

	s.audit.LogAccountClosed(ctx, result.Transaction)
	s.committed(operationClose, result)

	return toOperationResult(result), nil
}

func (s *SavingsService) GetAccount(ctx context.Context, accountID uuid.UUID) (*models.Account, error) {
	return s.ledger.Get(ctx, accountID)
}

func (s *SavingsService) SearchAccounts(ctx context.Context, customerRef string) ([]models.Account, error) {
	customerRef = strings.TrimSpace(customerRef)
	if customerRef == "" {
		return nil, invalidArgument("customer_ref", "customer reference is required")
	}
	return s.ledger.FindByCustomerRef(ctx, customerRef)
}

func (s *SavingsService) ListTransactions(ctx context.Context, accountID uuid.UUID) ([]models.Transaction, error) {
	return s.ledger.Transactions(ctx, accountID)
}

func (s *SavingsService) Reconcile(ctx context.Context, accountID uuid.UUID) (*ReconciliationResult, error) {
	return s.ledger.Reconcile(ctx, accountID)
}

func (s *SavingsService) Ping(ctx context.Context) error {
	return s.ledger.Ping(ctx)
}

// monthlyRate resolves the account's rate from the snapshot's rate table,
// falling back to the savings type row.
func (s *SavingsService) monthlyRate(ctx context.Context, account *models.Account, regulation *models.Regulation) (decimal.Decimal, error) {
	savingsType, err := s.types.GetByID(ctx, account.SavingsTypeID)
	if err != nil {
		return decimal.Zero, err
	}
	return regulation.InterestRateFor(account.SavingsTypeID, savingsType.MonthlyInterestRate), nil
}

func (s *SavingsService) reject(ctx context.Context, operation string, accountID uuid.UUID, err error) error {
	s.audit.LogOperationRejected(ctx, operation, accountID, err)
	s.metrics.IncrementCounter(MetricOperationRejected, map[string]string{
		"operation": operation,
		"category":  rejectionCategory(err),
		"reason":    rejectionReason(err),
	})
	return err
}

func (s *SavingsService) committed(operation string, result *LedgerResult) {
	s.metrics.IncrementCounter(MetricOperation, map[string]string{"operation": operation})
	if result.InterestPaid.IsPositive() {
		s.metrics.RecordGauge(MetricInterestPaid, result.InterestPaid.InexactFloat64(), map[string]string{"operation": operation})
	}
}

func (s *SavingsService) timed(operation string) func() {
	start := time.Now()
	return func() {
		s.metrics.RecordProcessingTime(operation, time.Since(start))
	}
}

func toOperationResult(result *LedgerResult) *OperationResult {
	return &OperationResult{
		Account:      result.Account,
		Transaction:  result.Transaction,
		InterestPaid: result.InterestPaid,
	}
}

func rejectionReason(err error) string {
	reasons := []struct {
		err    error
		reason string
	}{
		{ErrInvalidArgument, "invalid_argument"},
		{ErrBelowMinimumAmount, "below_minimum_amount"},
		{ErrAccountClosed, "account_closed"},
		{ErrUnsupportedAccountType, "unsupported_account_type"},
		{ErrHoldingPeriodNotMet, "holding_period_not_met"},
		{ErrPrematureWithdrawal, "premature_withdrawal"},
		{ErrInsufficientBalance, "insufficient_balance"},
		{ErrPartialWithdrawalNotAllowed, "partial_withdrawal_not_allowed"},
		{ErrSavingsTypeInactive, "savings_type_inactive"},
	}
	for _, r := range reasons {
		if errors.Is(err, r.err) {
			return r.reason
		}
	}
	return "other"
}

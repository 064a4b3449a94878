package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"savingsbook/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type correlationKey struct{}

// WithCorrelationID stores the request trace id for audit records
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationKey{}, id)
}

type AuditLogger struct {
	logger *slog.Logger
}

func NewAuditLogger(logger *slog.Logger) AuditLoggerInterface {
	return &AuditLogger{
		logger: logger,
	}
}

func (al *AuditLogger) LogAccountOpened(ctx context.Context, account *models.Account, transactionID uuid.UUID, performedBy string) {
	attrs := []any{
		slog.String("event_type", "account_opened"),
		slog.String("account_id", account.ID.String()),
		slog.String("customer_ref", account.CustomerRef),
		slog.String("savings_type_id", account.SavingsTypeID.String()),
		slog.String("initial_deposit", account.Balance.String()),
		slog.String("transaction_id", transactionID.String()),
		slog.String("performed_by", performedBy),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	}
	if account.MaturityDate != nil {
		attrs = append(attrs, slog.Time("maturity_date", *account.MaturityDate))
	}
	al.logger.InfoContext(ctx, "account opened", attrs...)
}

func (al *AuditLogger) LogDepositApplied(ctx context.Context, tx *models.Transaction) {
	al.logger.InfoContext(ctx, "deposit applied",
		slog.String("event_type", "deposit_applied"),
		slog.String("account_id", tx.AccountID.String()),
		slog.String("transaction_id", tx.ID.String()),
		slog.String("amount", tx.Amount.String()),
		slog.String("balance_after", tx.BalanceAfter.String()),
		slog.String("performed_by", tx.PerformedBy),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogWithdrawalApplied(ctx context.Context, tx *models.Transaction) {
	al.logger.InfoContext(ctx, "withdrawal applied",
		slog.String("event_type", "withdrawal_applied"),
		slog.String("account_id", tx.AccountID.String()),
		slog.String("transaction_id", tx.ID.String()),
		slog.String("amount", tx.Amount.String()),
		slog.String("interest_paid", tx.InterestPaid.String()),
		slog.String("balance_after", tx.BalanceAfter.String()),
		slog.String("performed_by", tx.PerformedBy),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogAccountClosed(ctx context.Context, tx *models.Transaction) {
	al.logger.InfoContext(ctx, "account closed",
		slog.String("event_type", "account_closed"),
		slog.String("account_id", tx.AccountID.String()),
		slog.String("transaction_id", tx.ID.String()),
		slog.String("principal", tx.Amount.String()),
		slog.String("interest_paid", tx.InterestPaid.String()),
		slog.String("payout", tx.Payout().String()),
		slog.String("performed_by", tx.PerformedBy),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogOperationRejected(ctx context.Context, operation string, accountID uuid.UUID, err error) {
	attrs := []any{
		slog.String("event_type", "operation_rejected"),
		slog.String("operation", operation),
		slog.String("category", rejectionCategory(err)),
		slog.String("error", err.Error()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	}
	if accountID != uuid.Nil {
		attrs = append(attrs, slog.String("account_id", accountID.String()))
	}

	var violation *RuleViolationError
	if errors.As(err, &violation) {
		if violation.State != "" {
			attrs = append(attrs, slog.String("state", string(violation.State)))
		}
		attrs = append(attrs, slog.String("constraint", violation.Constraint))
	}

	al.logger.WarnContext(ctx, "operation rejected", attrs...)
}

func (al *AuditLogger) LogRegulationUpdated(ctx context.Context, regulation *models.Regulation, changes []models.RegulationHistoryEntry) {
	fields := make([]string, 0, len(changes))
	for _, c := range changes {
		fields = append(fields, c.Field)
	}

	al.logger.InfoContext(ctx, "regulation updated",
		slog.String("event_type", "regulation_updated"),
		slog.Int("version", regulation.Version),
		slog.String("minimum_deposit_amount", regulation.MinimumDepositAmount.String()),
		slog.Int("minimum_term_days", regulation.MinimumTermDays),
		slog.Any("changed_fields", fields),
		slog.String("changed_by", regulation.CreatedBy),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogOptimisticLockConflict(ctx context.Context, entityType string, entityID uuid.UUID, expectedVersion int) {
	al.logger.WarnContext(ctx, "optimistic lock conflict",
		slog.String("event_type", "lock_conflict"),
		slog.String("entity_type", entityType),
		slog.String("entity_id", entityID.String()),
		slog.Int("expected_version", expectedVersion),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogReconciliation(ctx context.Context, accountID uuid.UUID, balance, ledgerBalance decimal.Decimal) {
	level := slog.LevelInfo
	if !balance.Equal(ledgerBalance) {
		level = slog.LevelError
	}
	al.logger.Log(ctx, level, "account reconciled",
		slog.String("event_type", "account_reconciled"),
		slog.String("account_id", accountID.String()),
		slog.String("balance", balance.String()),
		slog.String("ledger_balance", ledgerBalance.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

// CorrelationID returns the trace id stored by WithCorrelationID
func CorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if correlationID, ok := ctx.Value(correlationKey{}).(string); ok {
		return correlationID
	}

	return ""
}

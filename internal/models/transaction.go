package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionKindOpen     = "open"
	TransactionKindDeposit  = "deposit"
	TransactionKindWithdraw = "withdraw"
	TransactionKindClose    = "close"
)

var (
	ErrInvalidTransactionKind = errors.New("invalid transaction kind")
	ErrInvalidAmount          = errors.New("transaction amount must be positive")
	ErrInvalidInterestPaid    = errors.New("interest paid cannot be negative")
)

// Transaction is an immutable ledger record. Rows are only ever inserted.
type Transaction struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	AccountID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"account_id"`
	SavingsTypeID uuid.UUID       `gorm:"type:uuid;not null;index" json:"savings_type_id"`
	Kind          string          `gorm:"type:varchar(20);not null;index" json:"kind"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	InterestPaid  decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"interest_paid"`
	BalanceAfter  decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"balance_after"`
	PerformedBy   string          `gorm:"type:varchar(100);not null" json:"performed_by"`
	Note          string          `gorm:"type:text" json:"note,omitempty"`
	CreatedAt     time.Time       `gorm:"not null;index" json:"created_at"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}
	return t.Validate()
}

// BeforeUpdate rejects any attempt to rewrite history.
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	return errors.New("transactions are append-only")
}

// BeforeDelete rejects any attempt to remove history.
func (t *Transaction) BeforeDelete(tx *gorm.DB) error {
	return errors.New("transactions are append-only")
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.AccountID == uuid.Nil {
		return errors.New("account ID is required")
	}

	if !IsValidTransactionKind(t.Kind) {
		return ErrInvalidTransactionKind
	}

	// A close on an already emptied no-term account settles a zero principal.
	if t.Amount.IsNegative() || (t.Amount.IsZero() && t.Kind != TransactionKindClose) {
		return ErrInvalidAmount
	}

	if t.InterestPaid.IsNegative() {
		return ErrInvalidInterestPaid
	}

	if t.BalanceAfter.IsNegative() {
		return ErrInvalidBalance
	}

	return nil
}

// IsCredit reports whether the transaction adds principal to the account.
func (t *Transaction) IsCredit() bool {
	return t.Kind == TransactionKindOpen || t.Kind == TransactionKindDeposit
}

// IsDebit reports whether the transaction removes principal from the account.
func (t *Transaction) IsDebit() bool {
	return t.Kind == TransactionKindWithdraw || t.Kind == TransactionKindClose
}

// Payout is the cash handed to the customer: principal plus interest for debits.
func (t *Transaction) Payout() decimal.Decimal {
	if !t.IsDebit() {
		return decimal.Zero
	}
	return t.Amount.Add(t.InterestPaid)
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// IsValidTransactionKind checks if the transaction kind is valid
func IsValidTransactionKind(kind string) bool {
	switch kind {
	case TransactionKindOpen, TransactionKindDeposit, TransactionKindWithdraw, TransactionKindClose:
		return true
	default:
		return false
	}
}

// SumPrincipal folds a transaction log into the balance it implies.
func SumPrincipal(transactions []Transaction) decimal.Decimal {
	balance := decimal.Zero
	for i := range transactions {
		switch {
		case transactions[i].IsCredit():
			balance = balance.Add(transactions[i].Amount)
		case transactions[i].IsDebit():
			balance = balance.Sub(transactions[i].Amount)
		}
	}
	return balance
}

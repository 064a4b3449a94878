package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	AccountStatusActive = "active"
	AccountStatusClosed = "closed"
)

// AccountState is the lifecycle state of an account derived from its status,
// its savings type and the current date. It is never persisted.
type AccountState string

const (
	StateActiveNoTerm               AccountState = "active_no_term"
	StateActiveFixedTermPreMaturity AccountState = "active_fixed_term_pre_maturity"
	StateActiveFixedTermMatured     AccountState = "active_fixed_term_matured"
	StateClosed                     AccountState = "closed"
)

var (
	ErrInvalidAccountStatus = errors.New("invalid account status")
	ErrInvalidBalance       = errors.New("balance cannot be negative")
	ErrCustomerRefRequired  = errors.New("customer reference is required")
)

// Account is a savings book. Balance only changes through ledger transactions.
type Account struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	CustomerRef   string          `gorm:"type:varchar(50);not null;index" json:"customer_ref"`
	SavingsTypeID uuid.UUID       `gorm:"type:uuid;not null;index" json:"savings_type_id"`
	Balance       decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"balance"`
	OpenDate      time.Time       `gorm:"not null;index" json:"open_date"`
	MaturityDate  *time.Time      `json:"maturity_date,omitempty"`
	Status        string          `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	ClosedAt      *time.Time      `gorm:"index" json:"closed_at,omitempty"`
	Version       int             `gorm:"not null;default:1" json:"version"`
	CreatedAt     time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null" json:"updated_at"`

	// State is derived from the clock when the account is read
	State AccountState `gorm:"-" json:"state,omitempty"`

	SavingsType  *SavingsType  `gorm:"foreignKey:SavingsTypeID" json:"savings_type,omitempty"`
	Transactions []Transaction `gorm:"foreignKey:AccountID" json:"-"`
}

// BeforeCreate hook for Account
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	if a.Status == "" {
		a.Status = AccountStatusActive
	}

	if a.Version == 0 {
		a.Version = 1
	}

	now := time.Now()
	if a.OpenDate.IsZero() {
		a.OpenDate = now
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = now
	}

	return a.Validate()
}

// Validate validates the account fields
func (a *Account) Validate() error {
	if strings.TrimSpace(a.CustomerRef) == "" {
		return ErrCustomerRefRequired
	}

	if a.SavingsTypeID == uuid.Nil {
		return errors.New("savings type ID is required")
	}

	if !IsValidAccountStatus(a.Status) {
		return ErrInvalidAccountStatus
	}

	if a.Balance.IsNegative() {
		return ErrInvalidBalance
	}

	return nil
}

// IsClosed returns true once the account has been settled.
func (a *Account) IsClosed() bool {
	return a.Status == AccountStatusClosed
}

// IsFixedTerm reports whether the account carries a maturity date.
func (a *Account) IsFixedTerm() bool {
	return a.MaturityDate != nil
}

// IsMatured reports whether the calendar date of today, in today's location,
// is on or after the maturity date.
func (a *Account) IsMatured(today time.Time) bool {
	if a.MaturityDate == nil {
		return false
	}
	return DaysBetween(today, *a.MaturityDate) == 0
}

// StateAt derives the lifecycle state for the given instant.
func (a *Account) StateAt(now time.Time) AccountState {
	switch {
	case a.IsClosed():
		return StateClosed
	case !a.IsFixedTerm():
		return StateActiveNoTerm
	case a.IsMatured(now):
		return StateActiveFixedTermMatured
	default:
		return StateActiveFixedTermPreMaturity
	}
}

// DaysHeld returns the number of whole days between the open date and now.
func (a *Account) DaysHeld(now time.Time) int {
	return DaysBetween(a.OpenDate.In(now.Location()), now)
}

// TermDays returns the number of days between open date and maturity, 0 for no-term accounts.
func (a *Account) TermDays() int {
	if a.MaturityDate == nil {
		return 0
	}
	return DaysBetween(a.OpenDate, *a.MaturityDate)
}

// TableName returns the table name for Account
func (a *Account) TableName() string {
	return "accounts"
}

// IsValidAccountStatus checks if the account status is valid
func IsValidAccountStatus(status string) bool {
	switch status {
	case AccountStatusActive, AccountStatusClosed:
		return true
	default:
		return false
	}
}

// DaysBetween counts calendar days from start to end using start's location.
// Negative spans return 0.
func DaysBetween(start, end time.Time) int {
	loc := start.Location()
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc)
	e := end.In(loc)
	e = time.Date(e.Year(), e.Month(), e.Day(), 0, 0, 0, 0, loc)
	if !e.After(s) {
		return 0
	}
	return int(e.Sub(s).Hours()/24 + 0.5)
}

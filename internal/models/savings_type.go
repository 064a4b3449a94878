package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrSavingsTypeNameRequired = errors.New("savings type name is required")
	ErrInvalidTermMonths       = errors.New("term months cannot be negative")
	ErrInvalidInterestRate     = errors.New("monthly interest rate must be greater than 0")
)

// SavingsType is a product a customer can open a savings book under.
// TermMonths == 0 means no fixed term.
type SavingsType struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name                string          `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	TermMonths          int             `gorm:"not null;default:0" json:"term_months"`
	MonthlyInterestRate decimal.Decimal `gorm:"type:decimal(9,6);not null" json:"monthly_interest_rate"`
	IsActive            bool            `gorm:"not null;default:true" json:"is_active"`
	CreatedAt           time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt           time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for SavingsType
func (s *SavingsType) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}

	now := time.Now()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	if s.UpdatedAt.IsZero() {
		s.UpdatedAt = now
	}

	return s.Validate()
}

// BeforeUpdate hook for SavingsType
func (s *SavingsType) BeforeUpdate(tx *gorm.DB) error {
	s.UpdatedAt = time.Now()
	return s.Validate()
}

// Validate validates the savings type fields
func (s *SavingsType) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return ErrSavingsTypeNameRequired
	}
	if s.TermMonths < 0 {
		return ErrInvalidTermMonths
	}
	if !s.MonthlyInterestRate.IsPositive() {
		return ErrInvalidInterestRate
	}
	return nil
}

// IsFixedTerm reports whether accounts of this type have a maturity date.
func (s *SavingsType) IsFixedTerm() bool {
	return s.TermMonths > 0
}

// MaturityDate returns openDate + TermMonths, or nil for no-term products.
func (s *SavingsType) MaturityDate(openDate time.Time) *time.Time {
	if !s.IsFixedTerm() {
		return nil
	}
	maturity := openDate.AddDate(0, s.TermMonths, 0)
	return &maturity
}

// TableName returns the table name for SavingsType
func (s *SavingsType) TableName() string {
	return "savings_types"
}

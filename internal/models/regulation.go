package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	RegulationFieldMinimumDeposit  = "minimum_deposit_amount"
	RegulationFieldMinimumTermDays = "minimum_term_days"
	// RegulationFieldInterestRatePrefix is followed by the savings type id.
	RegulationFieldInterestRatePrefix = "monthly_interest_rate:"
)

var (
	ErrNegativeMinimumDeposit  = errors.New("minimum deposit amount cannot be negative")
	ErrNegativeMinimumTermDays = errors.New("minimum term days cannot be negative")
)

// Regulation is one version of the branch rules. Versions are append-only;
// the highest version is the current one.
type Regulation struct {
	ID                   uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Version              int             `gorm:"not null;uniqueIndex" json:"version"`
	MinimumDepositAmount decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"minimum_deposit_amount"`
	MinimumTermDays      int             `gorm:"not null" json:"minimum_term_days"`
	EffectiveFrom        time.Time       `gorm:"not null;index" json:"effective_from"`
	CreatedBy            string          `gorm:"type:varchar(100);not null" json:"created_by"`

	// InterestRates is the per savings type monthly rate table captured with this snapshot.
	InterestRates map[uuid.UUID]decimal.Decimal `gorm:"-" json:"interest_rates,omitempty"`
}

// BeforeCreate hook for Regulation
func (r *Regulation) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.EffectiveFrom.IsZero() {
		r.EffectiveFrom = time.Now()
	}
	return r.Validate()
}

// Validate validates the regulation fields
func (r *Regulation) Validate() error {
	if r.MinimumDepositAmount.IsNegative() {
		return ErrNegativeMinimumDeposit
	}
	if r.MinimumTermDays < 0 {
		return ErrNegativeMinimumTermDays
	}
	return nil
}

// InterestRateFor returns the snapshot rate for a savings type, falling back
// to the provided rate when the table has no entry.
func (r *Regulation) InterestRateFor(savingsTypeID uuid.UUID, fallback decimal.Decimal) decimal.Decimal {
	if rate, ok := r.InterestRates[savingsTypeID]; ok {
		return rate
	}
	return fallback
}

// Clone returns a deep copy so published snapshots are never mutated.
func (r *Regulation) Clone() *Regulation {
	cp := *r
	if r.InterestRates != nil {
		cp.InterestRates = make(map[uuid.UUID]decimal.Decimal, len(r.InterestRates))
		for k, v := range r.InterestRates {
			cp.InterestRates[k] = v
		}
	}
	return &cp
}

// TableName returns the table name for Regulation
func (r *Regulation) TableName() string {
	return "regulations"
}

// RegulationHistoryEntry records one field change made by a regulation update.
type RegulationHistoryEntry struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	RegulationVersion int       `gorm:"not null;index" json:"regulation_version"`
	Timestamp         time.Time `gorm:"not null;index" json:"timestamp"`
	ChangedBy         string    `gorm:"type:varchar(100);not null" json:"changed_by"`
	Field             string    `gorm:"type:varchar(100);not null" json:"field"`
	OldValue          string    `gorm:"type:varchar(100)" json:"old_value"`
	NewValue          string    `gorm:"type:varchar(100)" json:"new_value"`
}

// BeforeCreate hook for RegulationHistoryEntry
func (h *RegulationHistoryEntry) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	if h.Timestamp.IsZero() {
		h.Timestamp = time.Now()
	}
	return nil
}

// TableName returns the table name for RegulationHistoryEntry
func (h *RegulationHistoryEntry) TableName() string {
	return "regulation_history"
}

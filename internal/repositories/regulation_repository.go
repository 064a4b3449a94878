package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"savingsbook/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrRegulationNotFound     = errors.New("no regulation has been stored")
	ErrRegulationVersionTaken = errors.New("regulation version already exists")
)

type regulationRepository struct {
	db *gorm.DB
}

// NewRegulationRepository creates a new regulation repository
func NewRegulationRepository(db *gorm.DB) RegulationRepositoryInterface {
	return &regulationRepository{db: db}
}

// Latest returns the highest regulation version with the current per type rate table
func (r *regulationRepository) Latest(ctx context.Context) (*models.Regulation, error) {
	var regulation models.Regulation
	if err := r.db.WithContext(ctx).Order("version DESC").First(&regulation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRegulationNotFound
		}
		return nil, fmt.Errorf("failed to get latest regulation: %w", err)
	}

	var savingsTypes []models.SavingsType
	if err := r.db.WithContext(ctx).Find(&savingsTypes).Error; err != nil {
		return nil, fmt.Errorf("failed to load interest rate table: %w", err)
	}

	regulation.InterestRates = make(map[uuid.UUID]decimal.Decimal, len(savingsTypes))
	for _, st := range savingsTypes {
		regulation.InterestRates[st.ID] = st.MonthlyInterestRate
	}

	return &regulation, nil
}

// SaveVersion stores the regulation, its history and rate changes atomically
func (r *regulationRepository) SaveVersion(ctx context.Context, regulation *models.Regulation, history []models.RegulationHistoryEntry, rateChanges map[uuid.UUID]decimal.Decimal) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(regulation).Error; err != nil {
			if isDuplicateKey(err) {
				return ErrRegulationVersionTaken
			}
			return fmt.Errorf("failed to create regulation version: %w", err)
		}

		if len(history) > 0 {
			if err := tx.Create(&history).Error; err != nil {
				return fmt.Errorf("failed to record regulation history: %w", err)
			}
		}

		for id, rate := range rateChanges {
			// UpdateColumns skips the model hooks, which would validate an empty struct
			result := tx.Model(&models.SavingsType{}).
				Where("id = ?", id).
				UpdateColumns(map[string]interface{}{
					"monthly_interest_rate": rate,
					"updated_at":            time.Now(),
				})
			if result.Error != nil {
				return fmt.Errorf("failed to update interest rate: %w", result.Error)
			}
			if result.RowsAffected == 0 {
				return ErrSavingsTypeNotFound
			}
		}

		return nil
	})
}

// History returns regulation changes, most recent first. A limit <= 0 returns everything.
func (r *regulationRepository) History(ctx context.Context, limit int) ([]models.RegulationHistoryEntry, error) {
	var entries []models.RegulationHistoryEntry

	query := r.db.WithContext(ctx).Order("regulation_version DESC, field ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to get regulation history: %w", err)
	}
	return entries, nil
}

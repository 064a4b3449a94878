package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"savingsbook/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrSavingsTypeNotFound   = errors.New("savings type not found")
	ErrSavingsTypeNameExists = errors.New("savings type name already exists")
)

type savingsTypeRepository struct {
	db *gorm.DB
}

// NewSavingsTypeRepository creates a new savings type repository
func NewSavingsTypeRepository(db *gorm.DB) SavingsTypeRepositoryInterface {
	return &savingsTypeRepository{db: db}
}

// Create creates a new savings type
func (r *savingsTypeRepository) Create(ctx context.Context, savingsType *models.SavingsType) error {
	if err := r.db.WithContext(ctx).Create(savingsType).Error; err != nil {
		if isDuplicateKey(err) {
			return ErrSavingsTypeNameExists
		}
		return fmt.Errorf("failed to create savings type: %w", err)
	}
	return nil
}

// GetByID retrieves a savings type by ID
func (r *savingsTypeRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.SavingsType, error) {
	var savingsType models.SavingsType
	if err := r.db.WithContext(ctx).First(&savingsType, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSavingsTypeNotFound
		}
		return nil, fmt.Errorf("failed to get savings type: %w", err)
	}
	return &savingsType, nil
}

// List returns savings types ordered by term then name
func (r *savingsTypeRepository) List(ctx context.Context, activeOnly bool) ([]models.SavingsType, error) {
	var savingsTypes []models.SavingsType

	query := r.db.WithContext(ctx).Model(&models.SavingsType{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	if err := query.Order("term_months ASC, name ASC").Find(&savingsTypes).Error; err != nil {
		return nil, fmt.Errorf("failed to list savings types: %w", err)
	}
	return savingsTypes, nil
}

// Update saves all fields of a savings type
func (r *savingsTypeRepository) Update(ctx context.Context, savingsType *models.SavingsType) error {
	result := r.db.WithContext(ctx).Model(savingsType).Select("*").Omit("created_at").Updates(savingsType)
	if result.Error != nil {
		if isDuplicateKey(result.Error) {
			return ErrSavingsTypeNameExists
		}
		return fmt.Errorf("failed to update savings type: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrSavingsTypeNotFound
	}
	return nil
}

// Count returns the number of savings types
func (r *savingsTypeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.SavingsType{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count savings types: %w", err)
	}
	return count, nil
}

// isDuplicateKey matches unique violations from both PostgreSQL and SQLite
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value") || strings.Contains(msg, "UNIQUE constraint failed")
}

package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"savingsbook/internal/models"
	"savingsbook/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SavingsTypeInput describes a new savings product
type SavingsTypeInput struct {
	Name                string
	TermMonths          int
	MonthlyInterestRate decimal.Decimal
}

// SavingsTypeUpdate changes a product. TermMonths is fixed at creation since
// open accounts derive their maturity date from it.
type SavingsTypeUpdate struct {
	Name                *string
	MonthlyInterestRate *decimal.Decimal
	IsActive            *bool
}

// DefaultSavingsTypes are seeded into an empty catalogue
var DefaultSavingsTypes = []SavingsTypeInput{
	{Name: "No term", TermMonths: 0, MonthlyInterestRate: decimal.RequireFromString("0.0015")},
	{Name: "3 months", TermMonths: 3, MonthlyInterestRate: decimal.RequireFromString("0.005")},
	{Name: "6 months", TermMonths: 6, MonthlyInterestRate: decimal.RequireFromString("0.0055")},
}

type SavingsTypeService struct {
	repo        repositories.SavingsTypeRepositoryInterface
	regulations RegulationStoreInterface
	logger      *slog.Logger
}

func NewSavingsTypeService(repo repositories.SavingsTypeRepositoryInterface, regulations RegulationStoreInterface, logger *slog.Logger) SavingsTypeServiceInterface {
	return &SavingsTypeService{
		repo:        repo,
		regulations: regulations,
		logger:      logger,
	}
}

// Create stores a new savings type and refreshes the regulation rate table
func (s *SavingsTypeService) Create(ctx context.Context, actor string, input SavingsTypeInput) (*models.SavingsType, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, invalidArgument("name", "name is required")
	}
	if input.TermMonths < 0 {
		return nil, invalidArgument("term_months", "term months cannot be negative")
	}
	if !input.MonthlyInterestRate.IsPositive() {
		return nil, invalidArgument("monthly_interest_rate", "monthly interest rate must be greater than 0")
	}

	savingsType := &models.SavingsType{
		Name:                name,
		TermMonths:          input.TermMonths,
		MonthlyInterestRate: input.MonthlyInterestRate,
		IsActive:            true,
	}
	if err := s.repo.Create(ctx, savingsType); err != nil {
		return nil, err
	}

	if err := s.regulations.Reload(ctx); err != nil {
		return nil, fmt.Errorf("savings type created but regulation reload failed: %w", err)
	}

	s.logger.InfoContext(ctx, "savings type created",
		"event_type", "savings_type_created",
		"savings_type_id", savingsType.ID,
		"name", savingsType.Name,
		"term_months", savingsType.TermMonths,
		"monthly_interest_rate", savingsType.MonthlyInterestRate.String(),
		"performed_by", actor,
	)

	return savingsType, nil
}

// Update renames, re-rates or toggles a savings type. Rate changes are
// versioned through the regulation store.
func (s *SavingsTypeService) Update(ctx context.Context, actor string, id uuid.UUID, input SavingsTypeUpdate) (*models.SavingsType, error) {
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return nil, invalidArgument("name", "name cannot be empty")
	}
	if input.MonthlyInterestRate != nil && !input.MonthlyInterestRate.IsPositive() {
		return nil, invalidArgument("monthly_interest_rate", "monthly interest rate must be greater than 0")
	}

	savingsType, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.MonthlyInterestRate != nil && !input.MonthlyInterestRate.Equal(savingsType.MonthlyInterestRate) {
		if _, err := s.regulations.Update(ctx, actor, RegulationUpdate{
			InterestRates: map[uuid.UUID]decimal.Decimal{id: *input.MonthlyInterestRate},
		}); err != nil {
			return nil, err
		}
		if savingsType, err = s.repo.GetByID(ctx, id); err != nil {
			return nil, err
		}
	}

	changed := false
	if input.Name != nil && strings.TrimSpace(*input.Name) != savingsType.Name {
		savingsType.Name = strings.TrimSpace(*input.Name)
		changed = true
	}
	if input.IsActive != nil && *input.IsActive != savingsType.IsActive {
		savingsType.IsActive = *input.IsActive
		changed = true
	}

	if changed {
		if err := s.repo.Update(ctx, savingsType); err != nil {
			return nil, err
		}
		s.logger.InfoContext(ctx, "savings type updated",
			"event_type", "savings_type_updated",
			"savings_type_id", savingsType.ID,
			"name", savingsType.Name,
			"is_active", savingsType.IsActive,
			"performed_by", actor,
		)
	}

	return savingsType, nil
}

// Deactivate stops new accounts from being opened under the type. Existing accounts are unaffected.
func (s *SavingsTypeService) Deactivate(ctx context.Context, actor string, id uuid.UUID) (*models.SavingsType, error) {
	inactive := false
	return s.Update(ctx, actor, id, SavingsTypeUpdate{IsActive: &inactive})
}

func (s *SavingsTypeService) Get(ctx context.Context, id uuid.UUID) (*models.SavingsType, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *SavingsTypeService) List(ctx context.Context, activeOnly bool) ([]models.SavingsType, error) {
	return s.repo.List(ctx, activeOnly)
}

// SeedDefaults creates DefaultSavingsTypes when the catalogue is empty
func (s *SavingsTypeService) SeedDefaults(ctx context.Context) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, input := range DefaultSavingsTypes {
		if _, err := s.Create(ctx, systemActor, input); err != nil {
			return fmt.Errorf("failed to seed savings type %q: %w", input.Name, err)
		}
	}

	s.logger.InfoContext(ctx, "seeded default savings types", "count", len(DefaultSavingsTypes))
	return nil
}

package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"sync"
	"sync/atomic"

	"savingsbook/internal/models"
	"savingsbook/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const systemActor = "system"

// RegulationUpdate holds the fields an administrator wants to change. Nil means unchanged.
type RegulationUpdate struct {
	MinimumDepositAmount *decimal.Decimal
	MinimumTermDays      *int
	InterestRates        map[uuid.UUID]decimal.Decimal
}

// RegulationDefaults seed the first regulation version
type RegulationDefaults struct {
	MinimumDepositAmount decimal.Decimal
	MinimumTermDays      int
}

// RegulationStore publishes the regulation in effect. Reads are lock-free
// snapshot loads; writers are serialised and every version is persisted
// before it becomes visible.
type RegulationStore struct {
	repo     repositories.RegulationRepositoryInterface
	clock    Clock
	defaults RegulationDefaults
	audit    AuditLoggerInterface
	metrics  MetricsRecorderInterface
	logger   *slog.Logger

	current atomic.Pointer[models.Regulation]
	mu      sync.Mutex
}

func NewRegulationStore(repo repositories.RegulationRepositoryInterface, clock Clock, defaults RegulationDefaults, audit AuditLoggerInterface, metrics MetricsRecorderInterface, logger *slog.Logger) *RegulationStore {
	s := &RegulationStore{
		repo:     repo,
		clock:    clock,
		defaults: defaults,
		audit:    audit,
		metrics:  metrics,
		logger:   logger,
	}
	// Version 0 stands in until Reload reads the persisted state
	s.current.Store(&models.Regulation{
		MinimumDepositAmount: defaults.MinimumDepositAmount,
		MinimumTermDays:      defaults.MinimumTermDays,
		EffectiveFrom:        clock.Now(),
		CreatedBy:            systemActor,
		InterestRates:        map[uuid.UUID]decimal.Decimal{},
	})
	return s
}

// Current returns the snapshot in effect. The returned value must not be modified.
func (s *RegulationStore) Current() *models.Regulation {
	return s.current.Load()
}

// Reload publishes the latest persisted version, seeding version 1 from the
// defaults when nothing has been stored yet.
func (s *RegulationStore) Reload(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	latest, err := s.repo.Latest(ctx)
	if errors.Is(err, repositories.ErrRegulationNotFound) {
		latest, err = s.seedLocked(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to load regulation: %w", err)
	}

	s.publishLocked(latest)
	return nil
}

func (s *RegulationStore) seedLocked(ctx context.Context) (*models.Regulation, error) {
	if s.defaults.MinimumDepositAmount.IsNegative() || s.defaults.MinimumTermDays < 0 {
		return nil, violation(ErrInvalidRegulation, "", "defaults must be non-negative", nil)
	}

	seed := &models.Regulation{
		Version:              1,
		MinimumDepositAmount: s.defaults.MinimumDepositAmount,
		MinimumTermDays:      s.defaults.MinimumTermDays,
		EffectiveFrom:        s.clock.Now(),
		CreatedBy:            systemActor,
	}
	history := []models.RegulationHistoryEntry{
		s.historyEntry(seed, models.RegulationFieldMinimumDeposit, "", seed.MinimumDepositAmount.String()),
		s.historyEntry(seed, models.RegulationFieldMinimumTermDays, "", strconv.Itoa(seed.MinimumTermDays)),
	}

	if err := s.repo.SaveVersion(ctx, seed, history, nil); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "seeded default regulation",
		"minimum_deposit_amount", seed.MinimumDepositAmount.String(),
		"minimum_term_days", seed.MinimumTermDays,
	)

	return s.repo.Latest(ctx)
}

// Update validates and persists a new regulation version, then publishes it.
// Fields equal to the current values are ignored; an update that changes
// nothing returns the current snapshot without creating a version.
func (s *RegulationStore) Update(ctx context.Context, actor string, update RegulationUpdate) (*models.Regulation, error) {
	if err := validateRegulationUpdate(update); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.current.Load()
	next := current.Clone()
	next.ID = uuid.Nil
	next.Version = current.Version + 1
	next.EffectiveFrom = s.clock.Now()
	next.CreatedBy = actor
	if next.InterestRates == nil {
		next.InterestRates = map[uuid.UUID]decimal.Decimal{}
	}

	var history []models.RegulationHistoryEntry

	if update.MinimumDepositAmount != nil && !update.MinimumDepositAmount.Equal(current.MinimumDepositAmount) {
		history = append(history, s.historyEntry(next, models.RegulationFieldMinimumDeposit,
			current.MinimumDepositAmount.String(), update.MinimumDepositAmount.String()))
		next.MinimumDepositAmount = *update.MinimumDepositAmount
	}

	if update.MinimumTermDays != nil && *update.MinimumTermDays != current.MinimumTermDays {
		history = append(history, s.historyEntry(next, models.RegulationFieldMinimumTermDays,
			strconv.Itoa(current.MinimumTermDays), strconv.Itoa(*update.MinimumTermDays)))
		next.MinimumTermDays = *update.MinimumTermDays
	}

	rateChanges := make(map[uuid.UUID]decimal.Decimal)
	for _, id := range sortedRateIDs(update.InterestRates) {
		rate := update.InterestRates[id]
		old, known := current.InterestRates[id]
		if known && old.Equal(rate) {
			continue
		}
		oldValue := ""
		if known {
			oldValue = old.String()
		}
		history = append(history, s.historyEntry(next, models.RegulationFieldInterestRatePrefix+id.String(), oldValue, rate.String()))
		rateChanges[id] = rate
		next.InterestRates[id] = rate
	}

	if len(history) == 0 {
		return current, nil
	}

	if err := s.repo.SaveVersion(ctx, next, history, rateChanges); err != nil {
		return nil, fmt.Errorf("failed to persist regulation version %d: %w", next.Version, err)
	}

	s.publishLocked(next)

	s.audit.LogRegulationUpdated(ctx, next, history)
	s.metrics.IncrementCounter(MetricRegulationUpdated, nil)

	return next, nil
}

// History returns regulation changes, most recent first
func (s *RegulationStore) History(ctx context.Context, limit int) ([]models.RegulationHistoryEntry, error) {
	if limit < 0 {
		return nil, invalidArgument("limit", "limit cannot be negative")
	}
	return s.repo.History(ctx, limit)
}

func (s *RegulationStore) publishLocked(regulation *models.Regulation) {
	s.current.Store(regulation)
	s.metrics.RecordGauge(MetricRegulationVersion, float64(regulation.Version), nil)
}

func (s *RegulationStore) historyEntry(next *models.Regulation, field, oldValue, newValue string) models.RegulationHistoryEntry {
	return models.RegulationHistoryEntry{
		RegulationVersion: next.Version,
		Timestamp:         next.EffectiveFrom,
		ChangedBy:         next.CreatedBy,
		Field:             field,
		OldValue:          oldValue,
		NewValue:          newValue,
	}
}

func validateRegulationUpdate(update RegulationUpdate) error {
	if update.MinimumDepositAmount != nil && update.MinimumDepositAmount.IsNegative() {
		return violation(ErrInvalidRegulation, "", "minimum_deposit_amount >= 0", map[string]interface{}{
			"field": models.RegulationFieldMinimumDeposit,
			"value": update.MinimumDepositAmount.String(),
		})
	}
	if update.MinimumTermDays != nil && *update.MinimumTermDays < 0 {
		return violation(ErrInvalidRegulation, "", "minimum_term_days >= 0", map[string]interface{}{
			"field": models.RegulationFieldMinimumTermDays,
			"value": *update.MinimumTermDays,
		})
	}
	for id, rate := range update.InterestRates {
		if !rate.IsPositive() {
			return violation(ErrInvalidRegulation, "", "monthly_interest_rate > 0", map[string]interface{}{
				"field": models.RegulationFieldInterestRatePrefix + id.String(),
				"value": rate.String(),
			})
		}
	}
	return nil
}

func sortedRateIDs(rates map[uuid.UUID]decimal.Decimal) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(rates))
	for id := range rates {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	return ids
}

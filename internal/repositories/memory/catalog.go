package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"savingsbook/internal/models"
	"savingsbook/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SavingsTypes is the in-memory savings type catalog. It also backs the
// interest rate table read by Regulations.
type SavingsTypes struct {
	mu    sync.RWMutex
	items map[uuid.UUID]models.SavingsType
}

// NewSavingsTypes creates an empty catalog
func NewSavingsTypes() *SavingsTypes {
	return &SavingsTypes{items: make(map[uuid.UUID]models.SavingsType)}
}

var _ repositories.SavingsTypeRepositoryInterface = (*SavingsTypes)(nil)

func (s *SavingsTypes) Create(ctx context.Context, savingsType *models.SavingsType) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.nameTakenLocked(savingsType.Name, uuid.Nil) {
		return repositories.ErrSavingsTypeNameExists
	}
	if err := savingsType.BeforeCreate(nil); err != nil {
		return err
	}

	s.items[savingsType.ID] = *savingsType
	return nil
}

func (s *SavingsTypes) GetByID(ctx context.Context, id uuid.UUID) (*models.SavingsType, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	savingsType, ok := s.items[id]
	if !ok {
		return nil, repositories.ErrSavingsTypeNotFound
	}
	return &savingsType, nil
}

func (s *SavingsTypes) List(ctx context.Context, activeOnly bool) ([]models.SavingsType, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	savingsTypes := make([]models.SavingsType, 0, len(s.items))
	for _, st := range s.items {
		if activeOnly && !st.IsActive {
			continue
		}
		savingsTypes = append(savingsTypes, st)
	}
	sort.Slice(savingsTypes, func(i, j int) bool {
		if savingsTypes[i].TermMonths != savingsTypes[j].TermMonths {
			return savingsTypes[i].TermMonths < savingsTypes[j].TermMonths
		}
		return savingsTypes[i].Name < savingsTypes[j].Name
	})
	return savingsTypes, nil
}

func (s *SavingsTypes) Update(ctx context.Context, savingsType *models.SavingsType) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.items[savingsType.ID]
	if !ok {
		return repositories.ErrSavingsTypeNotFound
	}
	if s.nameTakenLocked(savingsType.Name, savingsType.ID) {
		return repositories.ErrSavingsTypeNameExists
	}
	if err := savingsType.BeforeUpdate(nil); err != nil {
		return err
	}

	savingsType.CreatedAt = existing.CreatedAt
	s.items[savingsType.ID] = *savingsType
	return nil
}

func (s *SavingsTypes) Count(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.items)), nil
}

func (s *SavingsTypes) nameTakenLocked(name string, except uuid.UUID) bool {
	for id, st := range s.items {
		if id != except && strings.EqualFold(st.Name, name) {
			return true
		}
	}
	return false
}

func (s *SavingsTypes) rates() map[uuid.UUID]decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rates := make(map[uuid.UUID]decimal.Decimal, len(s.items))
	for id, st := range s.items {
		rates[id] = st.MonthlyInterestRate
	}
	return rates
}

// Regulations keeps regulation versions and their change history in memory
type Regulations struct {
	mu       sync.RWMutex
	versions []models.Regulation
	history  []models.RegulationHistoryEntry
	types    *SavingsTypes
}

// NewRegulations creates an empty regulation log reading rates from types
func NewRegulations(types *SavingsTypes) *Regulations {
	return &Regulations{types: types}
}

var _ repositories.RegulationRepositoryInterface = (*Regulations)(nil)

func (r *Regulations) Latest(ctx context.Context) (*models.Regulation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.versions) == 0 {
		return nil, repositories.ErrRegulationNotFound
	}

	latest := r.versions[len(r.versions)-1].Clone()
	latest.InterestRates = r.types.rates()
	return latest, nil
}

func (r *Regulations) SaveVersion(ctx context.Context, regulation *models.Regulation, history []models.RegulationHistoryEntry, rateChanges map[uuid.UUID]decimal.Decimal) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, v := range r.versions {
		if v.Version == regulation.Version {
			return repositories.ErrRegulationVersionTaken
		}
	}
	if err := regulation.BeforeCreate(nil); err != nil {
		return err
	}

	r.types.mu.Lock()
	defer r.types.mu.Unlock()

	for id := range rateChanges {
		if _, ok := r.types.items[id]; !ok {
			return repositories.ErrSavingsTypeNotFound
		}
	}

	now := time.Now()
	for id, rate := range rateChanges {
		st := r.types.items[id]
		st.MonthlyInterestRate = rate
		st.UpdatedAt = now
		r.types.items[id] = st
	}

	for i := range history {
		if err := history[i].BeforeCreate(nil); err != nil {
			return err
		}
	}

	stored := regulation.Clone()
	stored.InterestRates = nil
	r.versions = append(r.versions, *stored)
	r.history = append(r.history, history...)
	return nil
}

func (r *Regulations) History(ctx context.Context, limit int) ([]models.RegulationHistoryEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]models.RegulationHistoryEntry, len(r.history))
	copy(entries, r.history)
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].RegulationVersion != entries[j].RegulationVersion {
			return entries[i].RegulationVersion > entries[j].RegulationVersion
		}
		return entries[i].Field < entries[j].Field
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

package repositories

import (
	"context"
	"testing"

	"savingsbook/internal/database"
	"savingsbook/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type CatalogRepositorySuite struct {
	suite.Suite
	db          *database.DB
	types       SavingsTypeRepositoryInterface
	regulations RegulationRepositoryInterface
	ctx         context.Context
}

func (s *CatalogRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.types = NewSavingsTypeRepository(s.db.DB)
	s.regulations = NewRegulationRepository(s.db.DB)
	s.ctx = context.Background()
}

func (s *CatalogRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestCatalogRepositorySuite(t *testing.T) {
	suite.Run(t, new(CatalogRepositorySuite))
}

func (s *CatalogRepositorySuite) createType(name string, term int, rate string) *models.SavingsType {
	st := &models.SavingsType{
		Name:                name,
		TermMonths:          term,
		MonthlyInterestRate: decimal.RequireFromString(rate),
		IsActive:            true,
	}
	s.Require().NoError(s.types.Create(s.ctx, st))
	return st
}

func (s *CatalogRepositorySuite) TestSavingsType_CreateAndGet() {
	st := s.createType("No term", 0, "0.0015")

	found, err := s.types.GetByID(s.ctx, st.ID)
	s.NoError(err)
	s.Equal("No term", found.Name)
	s.True(found.MonthlyInterestRate.Equal(decimal.RequireFromString("0.0015")))
	s.False(found.IsFixedTerm())

	_, err = s.types.GetByID(s.ctx, uuid.New())
	s.ErrorIs(err, ErrSavingsTypeNotFound)
}

func (s *CatalogRepositorySuite) TestSavingsType_DuplicateName() {
	s.createType("3 months", 3, "0.005")

	err := s.types.Create(s.ctx, &models.SavingsType{
		Name:                "3 months",
		TermMonths:          3,
		MonthlyInterestRate: decimal.RequireFromString("0.006"),
	})
	s.ErrorIs(err, ErrSavingsTypeNameExists)
}

func (s *CatalogRepositorySuite) TestSavingsType_InvalidRateRejected() {
	err := s.types.Create(s.ctx, &models.SavingsType{Name: "Broken", MonthlyInterestRate: decimal.Zero})
	s.ErrorIs(err, models.ErrInvalidInterestRate)
}

func (s *CatalogRepositorySuite) TestSavingsType_ListAndUpdate() {
	six := s.createType("6 months", 6, "0.0055")
	s.createType("No term", 0, "0.0015")
	s.createType("3 months", 3, "0.005")

	six.IsActive = false
	s.NoError(s.types.Update(s.ctx, six))

	all, err := s.types.List(s.ctx, false)
	s.NoError(err)
	s.Len(all, 3)
	s.Equal("No term", all[0].Name)
	s.Equal("6 months", all[2].Name)

	active, err := s.types.List(s.ctx, true)
	s.NoError(err)
	s.Len(active, 2)

	count, err := s.types.Count(s.ctx)
	s.NoError(err)
	s.Equal(int64(3), count)
}

func (s *CatalogRepositorySuite) TestRegulation_LatestEmpty() {
	_, err := s.regulations.Latest(s.ctx)
	s.ErrorIs(err, ErrRegulationNotFound)
}

func (s *CatalogRepositorySuite) TestRegulation_SaveVersionAndHistory() {
	st := s.createType("3 months", 3, "0.005")

	first := &models.Regulation{Version: 1, MinimumDepositAmount: decimal.NewFromInt(100000), MinimumTermDays: 15, CreatedBy: "system"}
	s.NoError(s.regulations.SaveVersion(s.ctx, first, nil, nil))

	second := &models.Regulation{Version: 2, MinimumDepositAmount: decimal.NewFromInt(200000), MinimumTermDays: 15, CreatedBy: "admin"}
	history := []models.RegulationHistoryEntry{
		{RegulationVersion: 2, ChangedBy: "admin", Field: models.RegulationFieldMinimumDeposit, OldValue: "100000", NewValue: "200000"},
		{RegulationVersion: 2, ChangedBy: "admin", Field: models.RegulationFieldInterestRatePrefix + st.ID.String(), OldValue: "0.005", NewValue: "0.006"},
	}
	rates := map[uuid.UUID]decimal.Decimal{st.ID: decimal.RequireFromString("0.006")}
	s.NoError(s.regulations.SaveVersion(s.ctx, second, history, rates))

	latest, err := s.regulations.Latest(s.ctx)
	s.NoError(err)
	s.Equal(2, latest.Version)
	s.True(latest.MinimumDepositAmount.Equal(decimal.NewFromInt(200000)))
	s.True(latest.InterestRates[st.ID].Equal(decimal.RequireFromString("0.006")))

	entries, err := s.regulations.History(s.ctx, 0)
	s.NoError(err)
	s.Len(entries, 2)

	limited, err := s.regulations.History(s.ctx, 1)
	s.NoError(err)
	s.Len(limited, 1)
}

func (s *CatalogRepositorySuite) TestRegulation_RollsBackOnUnknownType() {
	reg := &models.Regulation{Version: 1, MinimumDepositAmount: decimal.NewFromInt(100000), MinimumTermDays: 15, CreatedBy: "admin"}
	err := s.regulations.SaveVersion(s.ctx, reg, nil, map[uuid.UUID]decimal.Decimal{uuid.New(): decimal.RequireFromString("0.01")})
	s.ErrorIs(err, ErrSavingsTypeNotFound)

	_, err = s.regulations.Latest(s.ctx)
	s.ErrorIs(err, ErrRegulationNotFound)
}

func (s *CatalogRepositorySuite) TestRegulation_DuplicateVersion() {
	reg := &models.Regulation{Version: 1, MinimumDepositAmount: decimal.NewFromInt(100000), MinimumTermDays: 15, CreatedBy: "admin"}
	s.NoError(s.regulations.SaveVersion(s.ctx, reg, nil, nil))

	dup := &models.Regulation{Version: 1, MinimumDepositAmount: decimal.NewFromInt(1), MinimumTermDays: 1, CreatedBy: "admin"}
	s.ErrorIs(s.regulations.SaveVersion(s.ctx, dup, nil, nil), ErrRegulationVersionTaken)
}

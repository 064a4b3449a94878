package services

import (
	"errors"
	"testing"
	"time"

	"savingsbook/internal/models"
	"savingsbook/internal/repositories"
	"savingsbook/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// ReportAggregatorSuite defines the test suite for ReportAggregator
type ReportAggregatorSuite struct {
	suite.Suite
	e *engine
}

func (s *ReportAggregatorSuite) SetupTest() {
	s.e = newMemoryEngine(s.T())
}

func TestReportAggregatorSuite(t *testing.T) {
	suite.Run(t, new(ReportAggregatorSuite))
}

func (s *ReportAggregatorSuite) day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, branchZone)
}

// seed opens three accounts on 2025-01-01, tops up the no-term one, then
// withdraws on 2025-01-21 and closes the 3 month account on 2025-04-01.
func (s *ReportAggregatorSuite) seed() {
	noTerm := s.e.open(s.T(), "No term", 500000)
	s.e.open(s.T(), "6 months", 1000000)
	threeMonths := s.e.open(s.T(), "3 months", 200000)

	_, err := s.e.savings.Deposit(s.e.ctx, noTerm.ID, money(150000), "teller-01")
	s.Require().NoError(err)

	s.e.clock.Advance(20)
	_, err = s.e.savings.Withdraw(s.e.ctx, noTerm.ID, money(100000), "teller-02")
	s.Require().NoError(err)

	s.e.clock.Advance(70)
	_, err = s.e.savings.CloseAtMaturity(s.e.ctx, threeMonths.ID, "teller-02")
	s.Require().NoError(err)
}

func (s *ReportAggregatorSuite) TestDailyReport_GroupsByType() {
	s.seed()

	report, err := s.e.reports.DailyReport(s.e.ctx, s.day(2025, time.January, 1))
	s.Require().NoError(err)

	s.Equal("2025-01-01", report.Date)
	s.Require().Len(report.ByType, 3)
	s.Equal("3 months", report.ByType[0].SavingsTypeName)
	s.Equal("6 months", report.ByType[1].SavingsTypeName)
	s.Equal("No term", report.ByType[2].SavingsTypeName)

	s.True(report.ByType[0].TotalDeposits.Equal(money(200000)))
	s.True(report.ByType[1].TotalDeposits.Equal(money(1000000)))
	s.True(report.ByType[2].TotalDeposits.Equal(money(650000)))
	s.Equal(2, report.ByType[2].TransactionCount)
	s.True(report.ByType[2].TotalWithdrawals.IsZero())

	s.True(report.Summary.TotalDeposits.Equal(money(1850000)))
	s.True(report.Summary.Difference.Equal(money(1850000)))
	s.Equal(4, report.Summary.TransactionCount)
}

func (s *ReportAggregatorSuite) TestDailyReport_Withdrawals() {
	s.seed()

	report, err := s.e.reports.DailyReport(s.e.ctx, s.day(2025, time.January, 21))
	s.Require().NoError(err)
	s.Require().Len(report.ByType, 1)
	s.Equal("No term", report.ByType[0].SavingsTypeName)
	s.True(report.ByType[0].TotalWithdrawals.Equal(money(100000)))
	s.True(report.ByType[0].Difference.Equal(money(-100000)))

	closing, err := s.e.reports.DailyReport(s.e.ctx, s.day(2025, time.April, 1))
	s.Require().NoError(err)
	s.Require().Len(closing.ByType, 1)
	s.Equal("3 months", closing.ByType[0].SavingsTypeName)
	s.True(closing.ByType[0].TotalWithdrawals.Equal(money(200000)))
}

func (s *ReportAggregatorSuite) TestDailyReport_EmptyDay() {
	s.seed()

	report, err := s.e.reports.DailyReport(s.e.ctx, s.day(2025, time.February, 14))
	s.Require().NoError(err)
	s.Empty(report.ByType)
	s.True(report.Summary.TotalDeposits.IsZero())
	s.Equal(0, report.Summary.TransactionCount)
}

func (s *ReportAggregatorSuite) TestDailyReport_UsesBranchCalendarDay() {
	s.seed()

	// 2024-12-31 20:00 UTC is already 2025-01-01 in the branch
	report, err := s.e.reports.DailyReport(s.e.ctx, time.Date(2024, time.December, 31, 20, 0, 0, 0, time.UTC))
	s.Require().NoError(err)
	s.Equal("2025-01-01", report.Date)
	s.Len(report.ByType, 3)
}

func (s *ReportAggregatorSuite) TestReportsAreRepeatable() {
	s.seed()

	first, err := s.e.reports.DailyReport(s.e.ctx, s.day(2025, time.January, 1))
	s.Require().NoError(err)
	second, err := s.e.reports.DailyReport(s.e.ctx, s.day(2025, time.January, 1))
	s.Require().NoError(err)
	s.Equal(first, second)

	monthly, err := s.e.reports.MonthlyOpenCloseReport(s.e.ctx, 1, 2025, nil)
	s.Require().NoError(err)
	again, err := s.e.reports.MonthlyOpenCloseReport(s.e.ctx, 1, 2025, nil)
	s.Require().NoError(err)
	s.Equal(monthly, again)

	s.Equal(float64(4), metricValue(s.T(), s.e.registry, "reports_generated_total"))
}

func (s *ReportAggregatorSuite) TestMonthlyOpenCloseReport() {
	s.seed()

	january, err := s.e.reports.MonthlyOpenCloseReport(s.e.ctx, 1, 2025, nil)
	s.Require().NoError(err)
	s.Len(january.Days, 31)
	s.Equal(1, january.Days[0].Day)
	s.Equal("2025-01-01", january.Days[0].Date)
	s.Equal(3, january.Days[0].Opened)
	s.Equal(0, january.Days[0].Closed)
	s.Equal(3, january.Days[0].Difference)
	s.Equal(0, january.Days[20].Opened)
	s.Equal(3, january.Summary.TotalOpened)
	s.Equal(3, january.Summary.Difference)

	april, err := s.e.reports.MonthlyOpenCloseReport(s.e.ctx, 4, 2025, nil)
	s.Require().NoError(err)
	s.Len(april.Days, 30)
	s.Equal(1, april.Days[0].Closed)
	s.Equal(-1, april.Days[0].Difference)
	s.Equal(-1, april.Summary.Difference)

	february, err := s.e.reports.MonthlyOpenCloseReport(s.e.ctx, 2, 2025, nil)
	s.Require().NoError(err)
	s.Len(february.Days, 28)
	s.Equal(0, february.Summary.TotalOpened)
}

func (s *ReportAggregatorSuite) TestMonthlyOpenCloseReport_FilterByType() {
	s.seed()
	sixMonths := s.e.savingsType(s.T(), "6 months")

	report, err := s.e.reports.MonthlyOpenCloseReport(s.e.ctx, 1, 2025, &sixMonths.ID)
	s.Require().NoError(err)
	s.Equal(&sixMonths.ID, report.SavingsTypeID)
	s.Equal(1, report.Days[0].Opened)
	s.Equal(1, report.Summary.TotalOpened)

	unknown := uuid.New()
	_, err = s.e.reports.MonthlyOpenCloseReport(s.e.ctx, 1, 2025, &unknown)
	s.ErrorIs(err, repositories.ErrSavingsTypeNotFound)
}

func (s *ReportAggregatorSuite) TestMonthlyOpenCloseReport_InvalidPeriod() {
	tests := []struct {
		name  string
		month int
		year  int
	}{
		{"month zero", 0, 2025},
		{"month thirteen", 13, 2025},
		{"year zero", 6, 0},
		{"year too large", 6, 10000},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.e.reports.MonthlyOpenCloseReport(s.e.ctx, tt.month, tt.year, nil)
			s.ErrorIs(err, ErrInvalidArgument)
		})
	}
}

func (s *ReportAggregatorSuite) TestStoreFailure() {
	ctrl := gomock.NewController(s.T())
	store := repository_mocks.NewMockLedgerStore(ctrl)
	store.EXPECT().QueryTransactions(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))

	reports := NewReportAggregator(store, s.e.types, branchZone, NewPrometheusMetrics(nil))
	_, err := reports.DailyReport(s.e.ctx, s.day(2025, time.January, 1))
	s.Require().Error(err)
	s.Contains(err.Error(), "2025-01-01")
}

func (s *ReportAggregatorSuite) TestWeeklyDashboard_ComparesWithPreviousWeek() {
	s.e.open(s.T(), "No term", 500000)
	noTerm := s.e.open(s.T(), "No term", 1000000)

	s.e.clock.Advance(7)
	_, err := s.e.savings.Deposit(s.e.ctx, noTerm.ID, money(300000), "teller-01")
	s.Require().NoError(err)

	dashboard, err := s.e.reports.WeeklyDashboard(s.e.ctx, s.day(2025, time.January, 8))
	s.Require().NoError(err)

	s.Equal("2025-01-08", dashboard.Today)
	s.True(dashboard.CurrentWeek.Deposits.Equal(money(300000)))
	s.Equal(1, dashboard.CurrentWeek.TransactionCount)
	s.Equal(0, dashboard.CurrentWeek.Opened)
	s.True(dashboard.PreviousWeek.Deposits.Equal(money(1500000)))
	s.Equal(2, dashboard.PreviousWeek.Opened)

	s.True(dashboard.Growth.Deposits.Equal(money(-80)), "deposit growth %s", dashboard.Growth.Deposits)
	s.True(dashboard.Growth.Withdrawals.IsZero())
	s.True(dashboard.Growth.ActiveAccounts.IsZero())

	s.Require().Len(dashboard.Days, 7)
	s.Equal("2025-01-02", dashboard.Days[0].Date)
	s.Equal("02.01", dashboard.Days[0].Label)
	s.True(dashboard.Days[0].Deposits.IsZero())
	s.Equal("2025-01-08", dashboard.Days[6].Date)
	s.True(dashboard.Days[6].Deposits.Equal(money(300000)))

	s.Equal(2, dashboard.ActiveAccounts)
	s.Require().Len(dashboard.ByType, 1)
	s.Equal("No term", dashboard.ByType[0].SavingsTypeName)
	s.Equal(2, dashboard.ByType[0].ActiveAccounts)
}

func (s *ReportAggregatorSuite) TestWeeklyDashboard_ClosuresReduceActiveGrowth() {
	s.seed()

	dashboard, err := s.e.reports.WeeklyDashboard(s.e.ctx, s.day(2025, time.April, 1))
	s.Require().NoError(err)

	s.Equal(1, dashboard.CurrentWeek.Closed)
	s.True(dashboard.CurrentWeek.Withdrawals.Equal(money(200000)))
	s.Equal(0, dashboard.PreviousWeek.TransactionCount)

	// Three accounts were active a week ago, two are now
	s.Equal(2, dashboard.ActiveAccounts)
	s.True(dashboard.Growth.ActiveAccounts.Equal(decimal.RequireFromString("-33.3")), "active growth %s", dashboard.Growth.ActiveAccounts)
	s.True(dashboard.Growth.Withdrawals.Equal(money(100)))
	s.True(dashboard.Growth.Deposits.IsZero())

	s.Equal("01.04", dashboard.Days[6].Label)
	s.True(dashboard.Days[6].Withdrawals.Equal(money(200000)))

	s.Require().Len(dashboard.ByType, 2)
	s.Equal("6 months", dashboard.ByType[0].SavingsTypeName)
	s.Equal("No term", dashboard.ByType[1].SavingsTypeName)
}

func (s *ReportAggregatorSuite) TestWeeklyDashboard_UsesBranchCalendarDay() {
	s.e.open(s.T(), "No term", 500000)

	// 2025-01-07 20:00 UTC is already 2025-01-08 in the branch
	dashboard, err := s.e.reports.WeeklyDashboard(s.e.ctx, time.Date(2025, time.January, 7, 20, 0, 0, 0, time.UTC))
	s.Require().NoError(err)
	s.Equal("2025-01-08", dashboard.Today)
	s.Equal(0, dashboard.CurrentWeek.TransactionCount)
	s.Equal(1, dashboard.PreviousWeek.Opened)
}

func (s *ReportAggregatorSuite) TestRecentTransactions() {
	s.seed()

	recent, err := s.e.reports.RecentTransactions(s.e.ctx, 2)
	s.Require().NoError(err)
	s.Require().Len(recent, 2)

	s.Equal(models.TransactionKindClose, recent[0].Kind)
	s.Equal(models.TransactionKindWithdraw, recent[1].Kind)
	s.True(recent[1].Amount.Equal(money(100000)))
	s.Equal("CUS-0001", recent[0].CustomerRef)

	all, err := s.e.reports.RecentTransactions(s.e.ctx, MaxRecentTransactions)
	s.Require().NoError(err)
	s.Len(all, 6)
	for i := 1; i < len(all); i++ {
		s.False(all[i].CreatedAt.After(all[i-1].CreatedAt))
	}

	for _, limit := range []int{0, -1, MaxRecentTransactions + 1} {
		_, err := s.e.reports.RecentTransactions(s.e.ctx, limit)
		s.ErrorIs(err, ErrInvalidArgument, "limit %d", limit)
	}
}

func (s *ReportAggregatorSuite) TestGrowthPercent() {
	tests := []struct {
		name              string
		current, previous int64
		want              string
	}{
		{"from zero", 5, 0, "100"},
		{"both zero", 0, 0, "0"},
		{"doubled", 4, 2, "100"},
		{"one decimal", 1, 3, "-66.7"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			got := growthPercent(decimal.NewFromInt(tt.current), decimal.NewFromInt(tt.previous))
			s.True(got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
		})
	}
}

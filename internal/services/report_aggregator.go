package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"savingsbook/internal/models"
	"savingsbook/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	reportDaily     = "daily_report"
	reportMonthly   = "monthly_report"
	reportDashboard = "dashboard"
	reportRecent    = "recent_transactions"
)

const (
	DefaultRecentTransactions = 5
	MaxRecentTransactions     = 50
)

// ReportAggregator projects the committed transaction log into reports.
// Calendar days are taken in the branch location.
type ReportAggregator struct {
	store    repositories.LedgerStore
	types    repositories.SavingsTypeRepositoryInterface
	location *time.Location
	metrics  MetricsRecorderInterface
}

func NewReportAggregator(store repositories.LedgerStore, types repositories.SavingsTypeRepositoryInterface, location *time.Location, metrics MetricsRecorderInterface) ReportAggregatorInterface {
	if location == nil {
		location = time.UTC
	}
	return &ReportAggregator{
		store:    store,
		types:    types,
		location: location,
		metrics:  metrics,
	}
}

// DailyReport sums principal movements per savings type for one calendar day.
// Open and deposit count as deposits; withdraw and close principal as withdrawals.
func (r *ReportAggregator) DailyReport(ctx context.Context, date time.Time) (*models.DailyReport, error) {
	defer r.timed(reportDaily)()

	local := date.In(r.location)
	from := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, r.location)
	to := from.AddDate(0, 0, 1)

	transactions, err := r.store.QueryTransactions(ctx, repositories.TransactionQuery{From: from, To: to})
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for %s: %w", from.Format(time.DateOnly), err)
	}

	names, err := r.typeNames(ctx)
	if err != nil {
		return nil, err
	}

	groups := make(map[uuid.UUID]*models.DailyReportRow)
	for i := range transactions {
		t := &transactions[i]
		row, ok := groups[t.SavingsTypeID]
		if !ok {
			row = &models.DailyReportRow{
				SavingsTypeID:    t.SavingsTypeID,
				SavingsTypeName:  names[t.SavingsTypeID],
				TotalDeposits:    decimal.Zero,
				TotalWithdrawals: decimal.Zero,
			}
			groups[t.SavingsTypeID] = row
		}
		switch {
		case t.IsCredit():
			row.TotalDeposits = row.TotalDeposits.Add(t.Amount)
		case t.IsDebit():
			row.TotalWithdrawals = row.TotalWithdrawals.Add(t.Amount)
		}
		row.TransactionCount++
	}

	report := &models.DailyReport{
		Date:   from.Format(time.DateOnly),
		ByType: make([]models.DailyReportRow, 0, len(groups)),
		Summary: models.DailyReportSummary{
			TotalDeposits:    decimal.Zero,
			TotalWithdrawals: decimal.Zero,
			Difference:       decimal.Zero,
		},
	}

	for _, row := range groups {
		row.Difference = row.TotalDeposits.Sub(row.TotalWithdrawals)
		report.ByType = append(report.ByType, *row)

		report.Summary.TotalDeposits = report.Summary.TotalDeposits.Add(row.TotalDeposits)
		report.Summary.TotalWithdrawals = report.Summary.TotalWithdrawals.Add(row.TotalWithdrawals)
		report.Summary.TransactionCount += row.TransactionCount
	}
	report.Summary.Difference = report.Summary.TotalDeposits.Sub(report.Summary.TotalWithdrawals)

	sort.Slice(report.ByType, func(i, j int) bool {
		a, b := report.ByType[i], report.ByType[j]
		if a.SavingsTypeName != b.SavingsTypeName {
			return a.SavingsTypeName < b.SavingsTypeName
		}
		return a.SavingsTypeID.String() < b.SavingsTypeID.String()
	})

	r.metrics.IncrementCounter(MetricReportGenerated, map[string]string{"report": reportDaily})
	return report, nil
}

// MonthlyOpenCloseReport counts account openings and closures per calendar day
func (r *ReportAggregator) MonthlyOpenCloseReport(ctx context.Context, month, year int, savingsTypeID *uuid.UUID) (*models.MonthlyOpenCloseReport, error) {
	if month < 1 || month > 12 {
		return nil, invalidArgument("month", "month must be between 1 and 12")
	}
	if year < 1 || year > 9999 {
		return nil, invalidArgument("year", "year must be between 1 and 9999")
	}

	defer r.timed(reportMonthly)()

	if savingsTypeID != nil {
		if _, err := r.types.GetByID(ctx, *savingsTypeID); err != nil {
			return nil, err
		}
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, r.location)
	to := from.AddDate(0, 1, 0)

	transactions, err := r.store.QueryTransactions(ctx, repositories.TransactionQuery{
		From:          from,
		To:            to,
		SavingsTypeID: savingsTypeID,
		Kinds:         []string{models.TransactionKindOpen, models.TransactionKindClose},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for %04d-%02d: %w", year, month, err)
	}

	daysInMonth := to.AddDate(0, 0, -1).Day()
	report := &models.MonthlyOpenCloseReport{
		Month:         month,
		Year:          year,
		SavingsTypeID: savingsTypeID,
		Days:          make([]models.MonthlyReportRow, daysInMonth),
	}
	for i := range report.Days {
		day := from.AddDate(0, 0, i)
		report.Days[i] = models.MonthlyReportRow{Day: i + 1, Date: day.Format(time.DateOnly)}
	}

	for i := range transactions {
		t := &transactions[i]
		idx := t.CreatedAt.In(r.location).Day() - 1
		if idx < 0 || idx >= daysInMonth {
			continue
		}
		switch t.Kind {
		case models.TransactionKindOpen:
			report.Days[idx].Opened++
			report.Summary.TotalOpened++
		case models.TransactionKindClose:
			report.Days[idx].Closed++
			report.Summary.TotalClosed++
		}
	}

	for i := range report.Days {
		report.Days[i].Difference = report.Days[i].Opened - report.Days[i].Closed
	}
	report.Summary.Difference = report.Summary.TotalOpened - report.Summary.TotalClosed

	r.metrics.IncrementCounter(MetricReportGenerated, map[string]string{"report": reportMonthly})
	return report, nil
}

// WeeklyDashboard compares the seven calendar days ending on today with the
// seven before them. The active account count a week ago is derived from
// today's count less this week's openings plus this week's closures.
func (r *ReportAggregator) WeeklyDashboard(ctx context.Context, today time.Time) (*models.Dashboard, error) {
	defer r.timed(reportDashboard)()

	local := today.In(r.location)
	end := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, r.location).AddDate(0, 0, 1)
	weekStart := end.AddDate(0, 0, -7)
	previousStart := end.AddDate(0, 0, -14)

	transactions, err := r.store.QueryTransactions(ctx, repositories.TransactionQuery{From: previousStart, To: end})
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions since %s: %w", previousStart.Format(time.DateOnly), err)
	}

	active, err := r.store.CountActiveAccounts(ctx)
	if err != nil {
		return nil, err
	}

	names, err := r.typeNames(ctx)
	if err != nil {
		return nil, err
	}

	dashboard := &models.Dashboard{
		Today:        local.Format(time.DateOnly),
		CurrentWeek:  emptyWeek(),
		PreviousWeek: emptyWeek(),
		Days:         make([]models.DashboardDay, 7),
		ByType:       make([]models.AccountTypeShare, 0, len(active)),
	}
	for i := range dashboard.Days {
		day := weekStart.AddDate(0, 0, i)
		dashboard.Days[i] = models.DashboardDay{
			Date:        day.Format(time.DateOnly),
			Label:       day.Format("02.01"),
			Deposits:    decimal.Zero,
			Withdrawals: decimal.Zero,
		}
	}

	for i := range transactions {
		t := &transactions[i]
		at := t.CreatedAt.In(r.location)

		week := &dashboard.PreviousWeek
		var day *models.DashboardDay
		if !at.Before(weekStart) {
			week = &dashboard.CurrentWeek
			if idx := models.DaysBetween(weekStart, at); idx < len(dashboard.Days) {
				day = &dashboard.Days[idx]
			}
		}

		week.TransactionCount++
		switch {
		case t.IsCredit():
			week.Deposits = week.Deposits.Add(t.Amount)
			if day != nil {
				day.Deposits = day.Deposits.Add(t.Amount)
			}
		case t.IsDebit():
			week.Withdrawals = week.Withdrawals.Add(t.Amount)
			if day != nil {
				day.Withdrawals = day.Withdrawals.Add(t.Amount)
			}
		}
		switch t.Kind {
		case models.TransactionKindOpen:
			week.Opened++
		case models.TransactionKindClose:
			week.Closed++
		}
	}

	for id, count := range active {
		dashboard.ActiveAccounts += count
		dashboard.ByType = append(dashboard.ByType, models.AccountTypeShare{
			SavingsTypeID:   id,
			SavingsTypeName: names[id],
			ActiveAccounts:  count,
		})
	}
	sort.Slice(dashboard.ByType, func(i, j int) bool {
		a, b := dashboard.ByType[i], dashboard.ByType[j]
		if a.SavingsTypeName != b.SavingsTypeName {
			return a.SavingsTypeName < b.SavingsTypeName
		}
		return a.SavingsTypeID.String() < b.SavingsTypeID.String()
	})

	weekAgo := dashboard.ActiveAccounts - dashboard.CurrentWeek.Opened + dashboard.CurrentWeek.Closed
	dashboard.Growth = models.DashboardGrowth{
		ActiveAccounts: growthPercent(decimal.NewFromInt(int64(dashboard.ActiveAccounts)), decimal.NewFromInt(int64(weekAgo))),
		Deposits:       growthPercent(dashboard.CurrentWeek.Deposits, dashboard.PreviousWeek.Deposits),
		Withdrawals:    growthPercent(dashboard.CurrentWeek.Withdrawals, dashboard.PreviousWeek.Withdrawals),
	}

	r.metrics.IncrementCounter(MetricReportGenerated, map[string]string{"report": reportDashboard})
	return dashboard, nil
}

// RecentTransactions lists the latest ledger entries across all accounts,
// newest first, with each account's customer reference.
func (r *ReportAggregator) RecentTransactions(ctx context.Context, limit int) ([]models.RecentTransaction, error) {
	if limit < 1 || limit > MaxRecentTransactions {
		return nil, invalidArgument("limit", fmt.Sprintf("limit must be between 1 and %d", MaxRecentTransactions))
	}

	defer r.timed(reportRecent)()

	transactions, err := r.store.RecentTransactions(ctx, limit)
	if err != nil {
		return nil, err
	}

	customers := make(map[uuid.UUID]string)
	recent := make([]models.RecentTransaction, 0, len(transactions))
	for _, t := range transactions {
		ref, ok := customers[t.AccountID]
		if !ok {
			account, err := r.store.GetAccount(ctx, t.AccountID)
			if err != nil {
				return nil, fmt.Errorf("failed to load account %s: %w", t.AccountID, err)
			}
			ref = account.CustomerRef
			customers[t.AccountID] = ref
		}
		recent = append(recent, models.RecentTransaction{Transaction: t, CustomerRef: ref})
	}

	r.metrics.IncrementCounter(MetricReportGenerated, map[string]string{"report": reportRecent})
	return recent, nil
}

func emptyWeek() models.WeekTotals {
	return models.WeekTotals{Deposits: decimal.Zero, Withdrawals: decimal.Zero}
}

// growthPercent is (current - previous) / previous in percent, one decimal
func growthPercent(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		if current.IsPositive() {
			return decimal.NewFromInt(100)
		}
		return decimal.Zero
	}
	return current.Sub(previous).Mul(decimal.NewFromInt(100)).Div(previous).Round(1)
}

func (r *ReportAggregator) typeNames(ctx context.Context) (map[uuid.UUID]string, error) {
	types, err := r.types.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to load savings types: %w", err)
	}
	names := make(map[uuid.UUID]string, len(types))
	for _, t := range types {
		names[t.ID] = t.Name
	}
	return names, nil
}

func (r *ReportAggregator) timed(report string) func() {
	start := time.Now()
	return func() {
		r.metrics.RecordProcessingTime(report, time.Since(start))
	}
}

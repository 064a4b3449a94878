package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DailyReportRow aggregates one savings type's principal movements for a day
type DailyReportRow struct {
	SavingsTypeID    uuid.UUID       `json:"savings_type_id"`
	SavingsTypeName  string          `json:"savings_type_name"`
	TotalDeposits    decimal.Decimal `json:"total_deposits"`
	TotalWithdrawals decimal.Decimal `json:"total_withdrawals"`
	Difference       decimal.Decimal `json:"difference"`
	TransactionCount int             `json:"transaction_count"`
}

type DailyReportSummary struct {
	TotalDeposits    decimal.Decimal `json:"total_deposits"`
	TotalWithdrawals decimal.Decimal `json:"total_withdrawals"`
	Difference       decimal.Decimal `json:"difference"`
	TransactionCount int             `json:"transaction_count"`
}

// DailyReport lists only savings types with activity on Date, ordered by name then id
type DailyReport struct {
	Date    string             `json:"date"`
	ByType  []DailyReportRow   `json:"by_type"`
	Summary DailyReportSummary `json:"summary"`
}

type MonthlyReportRow struct {
	Day        int    `json:"day"`
	Date       string `json:"date"`
	Opened     int    `json:"opened"`
	Closed     int    `json:"closed"`
	Difference int    `json:"difference"`
}

type MonthlyReportSummary struct {
	TotalOpened int `json:"total_opened"`
	TotalClosed int `json:"total_closed"`
	Difference  int `json:"difference"`
}

// MonthlyOpenCloseReport has one row per calendar day of the month
type MonthlyOpenCloseReport struct {
	Month         int                  `json:"month"`
	Year          int                  `json:"year"`
	SavingsTypeID *uuid.UUID           `json:"savings_type_id,omitempty"`
	Days          []MonthlyReportRow   `json:"days"`
	Summary       MonthlyReportSummary `json:"summary"`
}

// WeekTotals sums principal movements over seven calendar days
type WeekTotals struct {
	Deposits         decimal.Decimal `json:"deposits"`
	Withdrawals      decimal.Decimal `json:"withdrawals"`
	Opened           int             `json:"opened"`
	Closed           int             `json:"closed"`
	TransactionCount int             `json:"transaction_count"`
}

// DashboardGrowth holds week-over-week changes in percent, rounded to one
// decimal. Growth from zero is 100 when the current value is positive.
type DashboardGrowth struct {
	ActiveAccounts decimal.Decimal `json:"active_accounts"`
	Deposits       decimal.Decimal `json:"deposits"`
	Withdrawals    decimal.Decimal `json:"withdrawals"`
}

type DashboardDay struct {
	Date        string          `json:"date"`
	Label       string          `json:"label"`
	Deposits    decimal.Decimal `json:"deposits"`
	Withdrawals decimal.Decimal `json:"withdrawals"`
}

type AccountTypeShare struct {
	SavingsTypeID   uuid.UUID `json:"savings_type_id"`
	SavingsTypeName string    `json:"savings_type_name"`
	ActiveAccounts  int       `json:"active_accounts"`
}

// Dashboard compares the seven days ending on Today with the seven before.
// Days has one row per day of the current week, oldest first.
type Dashboard struct {
	Today          string             `json:"today"`
	ActiveAccounts int                `json:"active_accounts"`
	CurrentWeek    WeekTotals         `json:"current_week"`
	PreviousWeek   WeekTotals         `json:"previous_week"`
	Growth         DashboardGrowth    `json:"growth"`
	Days           []DashboardDay     `json:"days"`
	ByType         []AccountTypeShare `json:"by_type"`
}

// RecentTransaction is a ledger entry with the account's customer reference
type RecentTransaction struct {
	Transaction
	CustomerRef string `json:"customer_ref"`
}

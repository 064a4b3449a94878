package dto

import "savingsbook/internal/models"

// UpdateRegulationRequest changes any subset of the regulation. Omitted fields keep their value.
type UpdateRegulationRequest struct {
	MinimumDepositAmount *string           `json:"minimum_deposit_amount,omitempty" validate:"omitempty,money"`
	MinimumTermDays      *int              `json:"minimum_term_days,omitempty" validate:"omitempty,min=0,max=3650"`
	InterestRates        map[string]string `json:"interest_rates,omitempty" validate:"omitempty,dive,keys,uuid,endkeys,rate"`
}

// RegulationHistoryQuery limits the history listing. Zero returns everything.
type RegulationHistoryQuery struct {
	Limit int `query:"limit" validate:"min=0,max=1000"`
}

// RegulationHistoryResponse lists history entries, newest first
type RegulationHistoryResponse struct {
	Entries []models.RegulationHistoryEntry `json:"entries"`
	Total   int                             `json:"total"`
}

// Savings type DTOs

// CreateSavingsTypeRequest represents the request payload for a new savings product
type CreateSavingsTypeRequest struct {
	Name                string `json:"name" validate:"required,min=1,max=100"`
	TermMonths          int    `json:"term_months" validate:"min=0,max=120"`
	MonthlyInterestRate string `json:"monthly_interest_rate" validate:"required,rate"`
}

// UpdateSavingsTypeRequest renames, re-rates or toggles a savings product
type UpdateSavingsTypeRequest struct {
	Name                *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	MonthlyInterestRate *string `json:"monthly_interest_rate,omitempty" validate:"omitempty,rate"`
	IsActive            *bool   `json:"is_active,omitempty"`
}

// SavingsTypeListQuery filters the catalogue
type SavingsTypeListQuery struct {
	ActiveOnly bool `query:"activeOnly"`
}

// SavingsTypeListResponse lists savings products ordered by name
type SavingsTypeListResponse struct {
	SavingsTypes []models.SavingsType `json:"savings_types"`
	Total        int                  `json:"total"`
}

// Report DTOs

// DailyReportQuery selects the calendar day of a daily report
type DailyReportQuery struct {
	Date string `query:"date" validate:"required,isodate"`
}

// MonthlyReportQuery selects a month either by month and year or by period (YYYY-MM)
type MonthlyReportQuery struct {
	Month         int    `query:"month" validate:"omitempty,min=1,max=12"`
	Year          int    `query:"year" validate:"omitempty,min=1,max=9999"`
	Period        string `query:"period" validate:"omitempty,yearmonth"`
	SavingsTypeID string `query:"savingsTypeId" validate:"omitempty,uuid"`
}

// DashboardQuery selects the last day of the dashboard week, today when empty
type DashboardQuery struct {
	Date string `query:"date" validate:"omitempty,isodate"`
}

type RecentTransactionsQuery struct {
	Limit int `query:"limit" validate:"omitempty,min=1,max=50"`
}

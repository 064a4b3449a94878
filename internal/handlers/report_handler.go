package handlers

import (
	"net/http"
	"time"

	"savingsbook/internal/dto"
	"savingsbook/internal/errors"
	"savingsbook/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ReportHandler serves the daily, monthly and dashboard reports
type ReportHandler struct {
	reports  services.ReportAggregatorInterface
	location *time.Location
}

// NewReportHandler creates a report handler. Dates in requests are read in location.
func NewReportHandler(reports services.ReportAggregatorInterface, location *time.Location) *ReportHandler {
	if location == nil {
		location = time.UTC
	}
	return &ReportHandler{
		reports:  reports,
		location: location,
	}
}

// DailyReport sums deposits and withdrawals per savings type for one day
// @Summary Daily turnover report
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Param date query string true "Calendar day (YYYY-MM-DD)"
// @Success 200 {object} models.DailyReport "Report for the day"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Missing or malformed date"
// @Failure 403 {object} errors.ErrorResponse "AUTH_004 - Accountant or admin role required"
// @Router /reports/daily [get]
func (h *ReportHandler) DailyReport(c echo.Context) error {
	var query dto.DailyReportQuery
	if handled, ok := bindAndValidate(c, &query); !ok {
		return handled
	}

	date, err := time.ParseInLocation(time.DateOnly, query.Date, h.location)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate)
	}

	report, err := h.reports.DailyReport(c.Request().Context(), date)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, report)
}

// MonthlyReport counts openings and closures per day of a month
// @Summary Monthly open/close report
// @Description Select the month with month and year, or with period=YYYY-MM.
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Param month query int false "Month (1-12)"
// @Param year query int false "Year"
// @Param period query string false "Month as YYYY-MM"
// @Param savingsTypeId query string false "Restrict to one savings type"
// @Success 200 {object} models.MonthlyOpenCloseReport "Report for the month"
// @Failure 400 {object} errors.ErrorResponse "REPORT_001 - Month not specified"
// @Failure 404 {object} errors.ErrorResponse "SAVINGS_TYPE_001 - Savings type not found"
// @Router /reports/monthly [get]
func (h *ReportHandler) MonthlyReport(c echo.Context) error {
	var query dto.MonthlyReportQuery
	if handled, ok := bindAndValidate(c, &query); !ok {
		return handled
	}

	month, year := query.Month, query.Year
	if query.Period != "" {
		period, err := time.Parse("2006-01", query.Period)
		if err != nil {
			return SendError(c, errors.ValidationInvalidDate)
		}
		month, year = int(period.Month()), period.Year()
	}
	if month == 0 || year == 0 {
		return SendError(c, errors.ReportInvalidPeriod, errors.WithDetails("month and year, or period, are required"))
	}

	var savingsTypeID *uuid.UUID
	if query.SavingsTypeID != "" {
		id, err := uuid.Parse(query.SavingsTypeID)
		if err != nil {
			return SendError(c, errors.SavingsTypeInvalidID)
		}
		savingsTypeID = &id
	}

	report, err := h.reports.MonthlyOpenCloseReport(c.Request().Context(), month, year, savingsTypeID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, report)
}

// Dashboard compares this week's activity with the week before
// @Summary Weekly dashboard
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Param date query string false "Last day of the week (YYYY-MM-DD), defaults to today"
// @Success 200 {object} models.Dashboard "Dashboard for the week"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Malformed date"
// @Failure 403 {object} errors.ErrorResponse "AUTH_004 - Accountant or admin role required"
// @Router /reports/dashboard [get]
func (h *ReportHandler) Dashboard(c echo.Context) error {
	var query dto.DashboardQuery
	if handled, ok := bindAndValidate(c, &query); !ok {
		return handled
	}

	today := time.Now().In(h.location)
	if query.Date != "" {
		date, err := time.ParseInLocation(time.DateOnly, query.Date, h.location)
		if err != nil {
			return SendError(c, errors.ValidationInvalidDate)
		}
		today = date
	}

	dashboard, err := h.reports.WeeklyDashboard(c.Request().Context(), today)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dashboard)
}

// RecentTransactions lists the latest transactions across all accounts
// @Summary Recent transactions
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Number of transactions (1-50), defaults to 5"
// @Success 200 {array} models.RecentTransaction "Newest first"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Limit out of range"
// @Router /reports/recent-transactions [get]
func (h *ReportHandler) RecentTransactions(c echo.Context) error {
	var query dto.RecentTransactionsQuery
	if handled, ok := bindAndValidate(c, &query); !ok {
		return handled
	}

	limit := query.Limit
	if limit == 0 {
		limit = services.DefaultRecentTransactions
	}

	recent, err := h.reports.RecentTransactions(c.Request().Context(), limit)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, recent)
}

package handlers

import (
	"net/http"

	"savingsbook/internal/dto"
	"savingsbook/internal/errors"
	"savingsbook/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// RegulationHandler exposes the versioned branch regulation
type RegulationHandler struct {
	regulations services.RegulationStoreInterface
}

// NewRegulationHandler creates a new regulation handler
func NewRegulationHandler(regulations services.RegulationStoreInterface) *RegulationHandler {
	return &RegulationHandler{
		regulations: regulations,
	}
}

// GetCurrent returns the regulation in effect
// @Summary Current regulation
// @Tags Regulations
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Regulation "Regulation in effect"
// @Failure 503 {object} errors.ErrorResponse "REGULATION_002 - No regulation loaded"
// @Router /regulations [get]
func (h *RegulationHandler) GetCurrent(c echo.Context) error {
	current := h.regulations.Current()
	if current == nil {
		return SendError(c, errors.RegulationUnavailable)
	}
	return c.JSON(http.StatusOK, current)
}

// UpdateRegulation publishes a new regulation version
// @Summary Update the regulation
// @Description Any subset of minimum deposit, minimum term days and per-type monthly rates.
// @Description Operations already in flight keep the version they started with.
// @Tags Regulations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UpdateRegulationRequest true "Regulation changes"
// @Success 200 {object} models.Regulation "New regulation version"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 / REGULATION_001 - Invalid regulation"
// @Failure 403 {object} errors.ErrorResponse "AUTH_004 - Admin role required"
// @Failure 404 {object} errors.ErrorResponse "SAVINGS_TYPE_001 - Rate given for an unknown savings type"
// @Router /regulations [put]
func (h *RegulationHandler) UpdateRegulation(c echo.Context) error {
	staffID, err := getStaffIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.UpdateRegulationRequest
	if handled, ok := bindAndValidate(c, &req); !ok {
		return handled
	}

	update, err := toRegulationUpdate(req)
	if err != nil {
		return SendError(c, errors.RegulationInvalid, errors.WithDetails(err.Error()))
	}

	regulation, err := h.regulations.Update(c.Request().Context(), staffID, update)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, regulation)
}

// History lists regulation changes, newest first
// @Summary Regulation change history
// @Tags Regulations
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Maximum entries (0 for all)"
// @Success 200 {object} dto.RegulationHistoryResponse "History entries"
// @Router /regulations/history [get]
func (h *RegulationHandler) History(c echo.Context) error {
	var query dto.RegulationHistoryQuery
	if handled, ok := bindAndValidate(c, &query); !ok {
		return handled
	}

	entries, err := h.regulations.History(c.Request().Context(), query.Limit)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.RegulationHistoryResponse{
		Entries: entries,
		Total:   len(entries),
	})
}

func toRegulationUpdate(req dto.UpdateRegulationRequest) (services.RegulationUpdate, error) {
	var update services.RegulationUpdate

	if req.MinimumDepositAmount != nil {
		amount, err := decimal.NewFromString(*req.MinimumDepositAmount)
		if err != nil {
			return update, err
		}
		update.MinimumDepositAmount = &amount
	}

	update.MinimumTermDays = req.MinimumTermDays

	if len(req.InterestRates) > 0 {
		update.InterestRates = make(map[uuid.UUID]decimal.Decimal, len(req.InterestRates))
		for key, value := range req.InterestRates {
			id, err := uuid.Parse(key)
			if err != nil {
				return update, err
			}
			rate, err := decimal.NewFromString(value)
			if err != nil {
				return update, err
			}
			update.InterestRates[id] = rate
		}
	}

	return update, nil
}

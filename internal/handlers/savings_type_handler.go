package handlers

import (
	"net/http"

	"savingsbook/internal/dto"
	"savingsbook/internal/errors"
	"savingsbook/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// SavingsTypeHandler manages the catalogue of savings products
type SavingsTypeHandler struct {
	savingsTypes services.SavingsTypeServiceInterface
}

// NewSavingsTypeHandler creates a new savings type handler
func NewSavingsTypeHandler(savingsTypes services.SavingsTypeServiceInterface) *SavingsTypeHandler {
	return &SavingsTypeHandler{
		savingsTypes: savingsTypes,
	}
}

// ListSavingsTypes returns the catalogue ordered by name
// @Summary List savings types
// @Tags SavingsTypes
// @Security BearerAuth
// @Produce json
// @Param activeOnly query bool false "Only types accepting new accounts"
// @Success 200 {object} dto.SavingsTypeListResponse "Savings types"
// @Router /savings-types [get]
func (h *SavingsTypeHandler) ListSavingsTypes(c echo.Context) error {
	var query dto.SavingsTypeListQuery
	if handled, ok := bindAndValidate(c, &query); !ok {
		return handled
	}

	savingsTypes, err := h.savingsTypes.List(c.Request().Context(), query.ActiveOnly)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.SavingsTypeListResponse{
		SavingsTypes: savingsTypes,
		Total:        len(savingsTypes),
	})
}

// GetSavingsType returns one savings type
// @Summary Get savings type by ID
// @Tags SavingsTypes
// @Security BearerAuth
// @Produce json
// @Param savingsTypeId path string true "Savings type ID (UUID)"
// @Success 200 {object} models.SavingsType "Savings type"
// @Failure 404 {object} errors.ErrorResponse "SAVINGS_TYPE_001 - Savings type not found"
// @Router /savings-types/{savingsTypeId} [get]
func (h *SavingsTypeHandler) GetSavingsType(c echo.Context) error {
	id, err := parseUUIDParam(c, "savingsTypeId", errors.SavingsTypeInvalidID)
	if err != nil {
		return err
	}

	savingsType, err := h.savingsTypes.Get(c.Request().Context(), id)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, savingsType)
}

// CreateSavingsType adds a product and registers its rate in a new regulation version
// @Summary Create savings type
// @Tags SavingsTypes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateSavingsTypeRequest true "Savings type"
// @Success 201 {object} models.SavingsType "Created savings type"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid savings type"
// @Failure 409 {object} errors.ErrorResponse "SAVINGS_TYPE_002 - Name already exists"
// @Router /savings-types [post]
func (h *SavingsTypeHandler) CreateSavingsType(c echo.Context) error {
	staffID, err := getStaffIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateSavingsTypeRequest
	if handled, ok := bindAndValidate(c, &req); !ok {
		return handled
	}

	rate, err := decimal.NewFromString(req.MonthlyInterestRate)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("monthly_interest_rate must be a decimal"))
	}

	savingsType, err := h.savingsTypes.Create(c.Request().Context(), staffID, services.SavingsTypeInput{
		Name:                req.Name,
		TermMonths:          req.TermMonths,
		MonthlyInterestRate: rate,
	})
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, savingsType)
}

// UpdateSavingsType renames, re-rates or toggles a product. The term is fixed at creation.
// @Summary Update savings type
// @Tags SavingsTypes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param savingsTypeId path string true "Savings type ID (UUID)"
// @Param request body dto.UpdateSavingsTypeRequest true "Changes"
// @Success 200 {object} models.SavingsType "Updated savings type"
// @Failure 404 {object} errors.ErrorResponse "SAVINGS_TYPE_001 - Savings type not found"
// @Failure 409 {object} errors.ErrorResponse "SAVINGS_TYPE_002 - Name already exists"
// @Router /savings-types/{savingsTypeId} [patch]
func (h *SavingsTypeHandler) UpdateSavingsType(c echo.Context) error {
	staffID, err := getStaffIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	id, err := parseUUIDParam(c, "savingsTypeId", errors.SavingsTypeInvalidID)
	if err != nil {
		return err
	}

	var req dto.UpdateSavingsTypeRequest
	if handled, ok := bindAndValidate(c, &req); !ok {
		return handled
	}

	update := services.SavingsTypeUpdate{
		Name:     req.Name,
		IsActive: req.IsActive,
	}
	if req.MonthlyInterestRate != nil {
		rate, err := decimal.NewFromString(*req.MonthlyInterestRate)
		if err != nil {
			return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("monthly_interest_rate must be a decimal"))
		}
		update.MonthlyInterestRate = &rate
	}

	savingsType, err := h.savingsTypes.Update(c.Request().Context(), staffID, id, update)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, savingsType)
}

// DeactivateSavingsType stops new accounts from opening under the type
// @Summary Deactivate savings type
// @Tags SavingsTypes
// @Security BearerAuth
// @Produce json
// @Param savingsTypeId path string true "Savings type ID (UUID)"
// @Success 200 {object} models.SavingsType "Deactivated savings type"
// @Failure 404 {object} errors.ErrorResponse "SAVINGS_TYPE_001 - Savings type not found"
// @Router /savings-types/{savingsTypeId} [delete]
func (h *SavingsTypeHandler) DeactivateSavingsType(c echo.Context) error {
	staffID, err := getStaffIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	id, err := parseUUIDParam(c, "savingsTypeId", errors.SavingsTypeInvalidID)
	if err != nil {
		return err
	}

	savingsType, err := h.savingsTypes.Deactivate(c.Request().Context(), staffID, id)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, savingsType)
}

package handlers

import (
	"context"
	"net/http"

	"savingsbook/internal/dto"
	"savingsbook/internal/errors"
	"savingsbook/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// TransactionHandler handles money movements on an open account
type TransactionHandler struct {
	savingsService services.SavingsServiceInterface
}

type amountOperation func(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal, performedBy string) (*services.OperationResult, error)

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(savingsService services.SavingsServiceInterface) *TransactionHandler {
	return &TransactionHandler{
		savingsService: savingsService,
	}
}

// Deposit adds money to a no-term account
// @Summary Deposit into an account
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param accountId path string true "Account ID (UUID)"
// @Param request body dto.AmountRequest true "Deposit amount"
// @Success 200 {object} dto.OperationResponse "Deposit applied"
// @Failure 400 {object} errors.ErrorResponse "TRANSACTION_002 - Amount below the regulation minimum"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Failure 409 {object} errors.ErrorResponse "ACCOUNT_006 - Concurrent update, retry"
// @Failure 422 {object} errors.ErrorResponse "ACCOUNT_002 / ACCOUNT_004 - Account closed or fixed-term"
// @Router /accounts/{accountId}/deposits [post]
func (h *TransactionHandler) Deposit(c echo.Context) error {
	return h.move(c, h.savingsService.Deposit)
}

// Withdraw takes money out of an account, paying interest where due
// @Summary Withdraw from an account
// @Description No-term accounts allow partial withdrawals after the holding period.
// @Description Fixed-term accounts must be matured and withdrawn in full, which closes them.
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param accountId path string true "Account ID (UUID)"
// @Param request body dto.AmountRequest true "Withdrawal amount"
// @Success 200 {object} dto.OperationResponse "Withdrawal applied"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Failure 409 {object} errors.ErrorResponse "ACCOUNT_006 - Concurrent update, retry"
// @Failure 422 {object} errors.ErrorResponse "TRANSACTION_003..006 - Rule violation"
// @Router /accounts/{accountId}/withdrawals [post]
func (h *TransactionHandler) Withdraw(c echo.Context) error {
	return h.move(c, h.savingsService.Withdraw)
}

// CloseAtMaturity settles and closes an account
// @Summary Close an account
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param accountId path string true "Account ID (UUID)"
// @Success 200 {object} dto.OperationResponse "Account closed, principal and interest paid out"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Failure 422 {object} errors.ErrorResponse "TRANSACTION_004 / TRANSACTION_005 - Not yet closable"
// @Router /accounts/{accountId}/close [post]
func (h *TransactionHandler) CloseAtMaturity(c echo.Context) error {
	staffID, err := getStaffIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	accountID, err := parseUUIDParam(c, "accountId", errors.AccountInvalidID)
	if err != nil {
		return err
	}

	result, err := h.savingsService.CloseAtMaturity(c.Request().Context(), accountID, staffID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, toOperationResponse(result))
}

func (h *TransactionHandler) move(c echo.Context, op amountOperation) error {
	staffID, err := getStaffIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	accountID, err := parseUUIDParam(c, "accountId", errors.AccountInvalidID)
	if err != nil {
		return err
	}

	var req dto.AmountRequest
	if handled, ok := bindAndValidate(c, &req); !ok {
		return handled
	}

	amount, err := parseMoney(req.Amount)
	if err != nil {
		return SendError(c, errors.TransactionInvalidAmount)
	}

	result, err := op(c.Request().Context(), accountID, amount, staffID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, toOperationResponse(result))
}

package handlers

import (
	"net/http"

	"savingsbook/internal/dto"
	"savingsbook/internal/errors"
	"savingsbook/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AccountHandler handles savings book opening and account queries
type AccountHandler struct {
	savingsService services.SavingsServiceInterface
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(savingsService services.SavingsServiceInterface) *AccountHandler {
	return &AccountHandler{
		savingsService: savingsService,
	}
}

// OpenAccount opens a savings book with its initial deposit
// @Summary Open a savings book
// @Description Open an account of the given savings type. The initial deposit must meet the regulation minimum.
// @Tags Accounts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.OpenAccountRequest true "Account opening details"
// @Success 201 {object} dto.OperationResponse "Account opened"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 / TRANSACTION_002 - Invalid request or deposit below minimum"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "SAVINGS_TYPE_001 - Savings type not found"
// @Failure 422 {object} errors.ErrorResponse "ACCOUNT_008 - Savings type inactive"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /accounts [post]
func (h *AccountHandler) OpenAccount(c echo.Context) error {
	staffID, err := getStaffIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.OpenAccountRequest
	if handled, ok := bindAndValidate(c, &req); !ok {
		return handled
	}

	savingsTypeID, err := uuid.Parse(req.SavingsTypeID)
	if err != nil {
		return SendError(c, errors.SavingsTypeInvalidID)
	}

	initialDeposit, err := parseMoney(req.InitialDeposit)
	if err != nil {
		return SendError(c, errors.TransactionInvalidAmount)
	}

	result, err := h.savingsService.OpenAccount(c.Request().Context(), req.CustomerRef, savingsTypeID, initialDeposit, staffID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, toOperationResponse(result))
}

// GetAccount retrieves an account with its derived state
// @Summary Get account by ID
// @Tags Accounts
// @Security BearerAuth
// @Produce json
// @Param accountId path string true "Account ID (UUID)"
// @Success 200 {object} models.Account "Account details"
// @Failure 400 {object} errors.ErrorResponse "ACCOUNT_003 - Invalid account ID format"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Router /accounts/{accountId} [get]
func (h *AccountHandler) GetAccount(c echo.Context) error {
	accountID, err := parseUUIDParam(c, "accountId", errors.AccountInvalidID)
	if err != nil {
		return err
	}

	account, err := h.savingsService.GetAccount(c.Request().Context(), accountID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, account)
}

// SearchAccounts lists the accounts of one customer
// @Summary Search accounts by customer reference
// @Tags Accounts
// @Security BearerAuth
// @Produce json
// @Param customerRef query string true "Customer reference"
// @Success 200 {object} dto.AccountListResponse "Accounts of the customer"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Missing or invalid customer reference"
// @Router /accounts [get]
func (h *AccountHandler) SearchAccounts(c echo.Context) error {
	var query dto.AccountSearchQuery
	if handled, ok := bindAndValidate(c, &query); !ok {
		return handled
	}

	accounts, err := h.savingsService.SearchAccounts(c.Request().Context(), query.CustomerRef)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.AccountListResponse{
		Accounts: accounts,
		Total:    len(accounts),
	})
}

// ListTransactions returns an account's ledger, oldest first
// @Summary List account transactions
// @Tags Accounts
// @Security BearerAuth
// @Produce json
// @Param accountId path string true "Account ID (UUID)"
// @Success 200 {object} dto.TransactionListResponse "Account ledger"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Router /accounts/{accountId}/transactions [get]
func (h *AccountHandler) ListTransactions(c echo.Context) error {
	accountID, err := parseUUIDParam(c, "accountId", errors.AccountInvalidID)
	if err != nil {
		return err
	}

	transactions, err := h.savingsService.ListTransactions(c.Request().Context(), accountID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.TransactionListResponse{
		Transactions: transactions,
		Total:        len(transactions),
	})
}

// Reconcile compares the stored balance with the sum of the ledger
// @Summary Reconcile an account
// @Tags Accounts
// @Security BearerAuth
// @Produce json
// @Param accountId path string true "Account ID (UUID)"
// @Success 200 {object} services.ReconciliationResult "Balance matches the ledger"
// @Failure 500 {object} errors.ErrorResponse "ACCOUNT_005 - Balance does not match the ledger"
// @Router /accounts/{accountId}/reconcile [get]
func (h *AccountHandler) Reconcile(c echo.Context) error {
	accountID, err := parseUUIDParam(c, "accountId", errors.AccountInvalidID)
	if err != nil {
		return err
	}

	result, err := h.savingsService.Reconcile(c.Request().Context(), accountID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

func toOperationResponse(result *services.OperationResult) dto.OperationResponse {
	resp := dto.OperationResponse{
		Account:      result.Account,
		Transaction:  result.Transaction,
		InterestPaid: result.InterestPaid,
	}
	if result.Transaction != nil {
		resp.Payout = result.Transaction.Payout()
	}
	return resp
}

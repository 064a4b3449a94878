package dto

import (
	"savingsbook/internal/models"

	"github.com/shopspring/decimal"
)

// Account Request DTOs

// OpenAccountRequest represents the request payload for opening a savings book
type OpenAccountRequest struct {
	CustomerRef    string `json:"customer_ref" validate:"required,customer_ref"`
	SavingsTypeID  string `json:"savings_type_id" validate:"required,uuid"`
	InitialDeposit string `json:"initial_deposit" validate:"required,money"`
}

// AmountRequest represents the request payload for deposits and withdrawals
type AmountRequest struct {
	Amount string `json:"amount" validate:"required,money"`
}

// AccountSearchQuery selects accounts by customer reference
type AccountSearchQuery struct {
	CustomerRef string `query:"customerRef" validate:"required,customer_ref"`
}

// Account Response DTOs

// OperationResponse represents the committed outcome of an account operation
type OperationResponse struct {
	Account      *models.Account     `json:"account"`
	Transaction  *models.Transaction `json:"transaction"`
	InterestPaid decimal.Decimal     `json:"interest_paid"`
	Payout       decimal.Decimal     `json:"payout"`
}

// AccountListResponse represents the accounts of one customer
type AccountListResponse struct {
	Accounts []models.Account `json:"accounts"`
	Total    int              `json:"total"`
}

// TransactionListResponse represents an account's ledger, oldest first
type TransactionListResponse struct {
	Transactions []models.Transaction `json:"transactions"`
	Total        int                  `json:"total"`
}

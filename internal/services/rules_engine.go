package services

import (
	"time"

	"savingsbook/internal/models"

	"github.com/shopspring/decimal"
)

// TransactionRulesEngine decides whether an operation is legal under a
// regulation snapshot. It reads nothing itself: callers pass the account
// state and the snapshot captured at the start of the operation.
//
// When several rules are violated the first one in this order is reported:
// closed, holding period, premature, insufficient balance, partial withdrawal,
// below minimum.
type TransactionRulesEngine struct{}

func NewTransactionRulesEngine() *TransactionRulesEngine {
	return &TransactionRulesEngine{}
}

// ValidateOpen checks a new account request against the savings type and regulation
func (e *TransactionRulesEngine) ValidateOpen(savingsType *models.SavingsType, amount decimal.Decimal, regulation *models.Regulation) error {
	if !amount.IsPositive() {
		return invalidArgument("initial_deposit", "initial deposit must be greater than 0")
	}

	if !savingsType.IsActive {
		return violation(ErrSavingsTypeInactive, "", "savings type must be active", map[string]interface{}{
			"savings_type_id": savingsType.ID.String(),
		})
	}

	if amount.LessThan(regulation.MinimumDepositAmount) {
		return belowMinimum("", amount, regulation)
	}

	return nil
}

// ValidateDeposit checks a deposit against the account state and regulation
func (e *TransactionRulesEngine) ValidateDeposit(account *models.Account, amount decimal.Decimal, regulation *models.Regulation, today time.Time) error {
	if !amount.IsPositive() {
		return invalidArgument("amount", "deposit amount must be greater than 0")
	}

	state := account.StateAt(today)

	if state == models.StateClosed {
		return violation(ErrAccountClosed, state, "account must be active", nil)
	}

	if account.IsFixedTerm() {
		return violation(ErrUnsupportedAccountType, state, "deposits are only accepted on no-term accounts", map[string]interface{}{
			"savings_type_id": account.SavingsTypeID.String(),
		})
	}

	if amount.LessThan(regulation.MinimumDepositAmount) {
		return belowMinimum(state, amount, regulation)
	}

	return nil
}

// ValidateWithdrawal checks a withdrawal against the account state and regulation.
// The minimum holding period applies to no-term accounts; fixed-term accounts
// are governed by their maturity date instead.
func (e *TransactionRulesEngine) ValidateWithdrawal(account *models.Account, amount decimal.Decimal, regulation *models.Regulation, today time.Time) error {
	if !amount.IsPositive() {
		return invalidArgument("amount", "withdrawal amount must be greater than 0")
	}

	state := account.StateAt(today)

	if err := e.checkWithdrawable(account, state, regulation, today); err != nil {
		return err
	}

	if amount.GreaterThan(account.Balance) {
		return violation(ErrInsufficientBalance, state, "amount <= balance", map[string]interface{}{
			"amount":  amount.String(),
			"balance": account.Balance.String(),
		})
	}

	if account.IsFixedTerm() && !amount.Equal(account.Balance) {
		return violation(ErrPartialWithdrawalNotAllowed, state, "amount == balance", map[string]interface{}{
			"amount":  amount.String(),
			"balance": account.Balance.String(),
		})
	}

	return nil
}

// ValidateClose checks a closure, which always withdraws the full balance
func (e *TransactionRulesEngine) ValidateClose(account *models.Account, regulation *models.Regulation, today time.Time) error {
	return e.checkWithdrawable(account, account.StateAt(today), regulation, today)
}

func (e *TransactionRulesEngine) checkWithdrawable(account *models.Account, state models.AccountState, regulation *models.Regulation, today time.Time) error {
	if state == models.StateClosed {
		return violation(ErrAccountClosed, state, "account must be active", nil)
	}

	if !account.IsFixedTerm() {
		if held := account.DaysHeld(today); held < regulation.MinimumTermDays {
			return violation(ErrHoldingPeriodNotMet, state, "days held >= minimum_term_days", map[string]interface{}{
				"days_held":         held,
				"minimum_term_days": regulation.MinimumTermDays,
			})
		}
	}

	if state == models.StateActiveFixedTermPreMaturity {
		return violation(ErrPrematureWithdrawal, state, "today >= maturity_date", map[string]interface{}{
			"maturity_date": account.MaturityDate.In(today.Location()).Format(time.DateOnly),
		})
	}

	return nil
}

func belowMinimum(state models.AccountState, amount decimal.Decimal, regulation *models.Regulation) error {
	return violation(ErrBelowMinimumAmount, state, "amount >= minimum_deposit_amount", map[string]interface{}{
		"amount":                 amount.String(),
		"minimum_deposit_amount": regulation.MinimumDepositAmount.String(),
		"regulation_version":     regulation.Version,
	})
}

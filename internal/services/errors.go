package services

import (
	"errors"
	"fmt"

	"savingsbook/internal/models"
)

// Validation errors: the request itself is wrong.
var (
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrInvalidRegulation  = errors.New("invalid regulation")
	ErrBelowMinimumAmount = errors.New("amount is below the regulation minimum")
)

// State-conflict errors: the request is well formed but the account or
// regulation state forbids it. Retrying with the same input fails again.
var (
	ErrAccountClosed               = errors.New("account is closed")
	ErrUnsupportedAccountType      = errors.New("operation not supported for this savings type")
	ErrHoldingPeriodNotMet         = errors.New("minimum holding period not met")
	ErrPrematureWithdrawal         = errors.New("fixed-term account has not matured")
	ErrInsufficientBalance         = errors.New("insufficient balance")
	ErrPartialWithdrawalNotAllowed = errors.New("fixed-term account must be withdrawn in full")
	ErrSavingsTypeInactive         = errors.New("savings type is not accepting new accounts")
	ErrIllegalStateTransition      = errors.New("illegal account state transition")
)

// ErrBalanceMismatch signals that an account balance diverged from its ledger.
var ErrBalanceMismatch = errors.New("account balance does not match transaction log")

// RuleViolationError carries the context a caller needs to correct a rejected
// request. It matches its sentinel through errors.Is.
type RuleViolationError struct {
	Err        error
	State      models.AccountState
	Constraint string
	Details    map[string]interface{}
}

func (e *RuleViolationError) Error() string {
	if e.Constraint == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Constraint)
}

func (e *RuleViolationError) Unwrap() error {
	return e.Err
}

// Fields flattens the violation for API error details
func (e *RuleViolationError) Fields() map[string]interface{} {
	fields := make(map[string]interface{}, len(e.Details)+2)
	for k, v := range e.Details {
		fields[k] = v
	}
	if e.State != "" {
		fields["state"] = string(e.State)
	}
	if e.Constraint != "" {
		fields["constraint"] = e.Constraint
	}
	return fields
}

func violation(err error, state models.AccountState, constraint string, details map[string]interface{}) *RuleViolationError {
	return &RuleViolationError{Err: err, State: state, Constraint: constraint, Details: details}
}

func invalidArgument(field, message string) *RuleViolationError {
	return &RuleViolationError{
		Err:        ErrInvalidArgument,
		Constraint: message,
		Details:    map[string]interface{}{"field": field},
	}
}

// IsValidationError reports caller mistakes that no state change can fix
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidArgument) ||
		errors.Is(err, ErrInvalidRegulation) ||
		errors.Is(err, ErrBelowMinimumAmount)
}

// IsStateConflict reports business rule violations against the current state
func IsStateConflict(err error) bool {
	return errors.Is(err, ErrAccountClosed) ||
		errors.Is(err, ErrUnsupportedAccountType) ||
		errors.Is(err, ErrHoldingPeriodNotMet) ||
		errors.Is(err, ErrPrematureWithdrawal) ||
		errors.Is(err, ErrInsufficientBalance) ||
		errors.Is(err, ErrPartialWithdrawalNotAllowed) ||
		errors.Is(err, ErrSavingsTypeInactive) ||
		errors.Is(err, ErrIllegalStateTransition)
}

// rejectionCategory buckets a rejected operation for audit and metrics
func rejectionCategory(err error) string {
	switch {
	case IsValidationError(err):
		return "validation"
	case IsStateConflict(err):
		return "state_conflict"
	default:
		return "other"
	}
}

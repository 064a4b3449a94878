package handlers

import (
	"context"
	stderrors "errors"
	"log/slog"

	"savingsbook/internal/errors"
	"savingsbook/internal/repositories"
	"savingsbook/internal/services"

	"github.com/labstack/echo/v4"
)

// domainCodes maps service and repository sentinels to API error codes.
// Order matters: the first match wins.
var domainCodes = []struct {
	err  error
	code errors.ErrorCode
}{
	{repositories.ErrAccountNotFound, errors.AccountNotFound},
	{repositories.ErrSavingsTypeNotFound, errors.SavingsTypeNotFound},
	{repositories.ErrSavingsTypeNameExists, errors.SavingsTypeNameExists},
	{repositories.ErrConcurrentModification, errors.AccountConcurrentUpdate},
	{repositories.ErrStoreUnavailable, errors.SystemServiceUnavailable},
	{repositories.ErrRegulationNotFound, errors.RegulationUnavailable},

	{services.ErrInvalidRegulation, errors.RegulationInvalid},
	{services.ErrBelowMinimumAmount, errors.TransactionBelowMinimum},
	{services.ErrInvalidArgument, errors.ValidationGeneral},

	{services.ErrAccountClosed, errors.AccountClosed},
	{services.ErrUnsupportedAccountType, errors.AccountUnsupportedType},
	{services.ErrHoldingPeriodNotMet, errors.TransactionHoldingPeriod},
	{services.ErrPrematureWithdrawal, errors.TransactionPrematureWithdrawal},
	{services.ErrInsufficientBalance, errors.TransactionInsufficientBalance},
	{services.ErrPartialWithdrawalNotAllowed, errors.TransactionPartialWithdrawal},
	{services.ErrSavingsTypeInactive, errors.AccountSavingsTypeInactive},
	{services.ErrIllegalStateTransition, errors.AccountIllegalStateChange},
	{services.ErrBalanceMismatch, errors.AccountBalanceMismatch},

	{context.DeadlineExceeded, errors.SystemServiceUnavailable},
	{context.Canceled, errors.SystemServiceUnavailable},
}

// ClassifyError returns the API code for a domain error and the options that
// describe it. ok is false for errors with no domain meaning.
func ClassifyError(err error) (code errors.ErrorCode, opts []errors.ErrorOption, ok bool) {
	for _, m := range domainCodes {
		if !stderrors.Is(err, m.err) {
			continue
		}

		var violation *services.RuleViolationError
		if stderrors.As(err, &violation) {
			opts = append(opts, errors.WithFields(violation.Fields()))
		}
		return m.code, opts, true
	}
	return "", nil, false
}

// SendServiceError writes the response for an error returned by a service.
// Unknown errors become a 500 without leaking their text.
func SendServiceError(c echo.Context, err error) error {
	code, opts, ok := ClassifyError(err)
	if !ok {
		slog.ErrorContext(c.Request().Context(), "unhandled service error",
			"trace_id", getTraceID(c),
			"path", c.Request().URL.Path,
			"error", err.Error(),
		)
		return SendSystemError(c, err)
	}

	if errors.GetHTTPStatus(code) >= 500 {
		slog.ErrorContext(c.Request().Context(), "service error",
			"trace_id", getTraceID(c),
			"error_code", code,
			"error", err.Error(),
		)
	}
	return SendError(c, code, opts...)
}

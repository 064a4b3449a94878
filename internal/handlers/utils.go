package handlers

import (
	"fmt"

	"savingsbook/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// ErrUnauthorized is returned when staff context is invalid
var ErrUnauthorized = fmt.Errorf("unauthorized")

// getStaffIDFromContext extracts the acting staff id set by the auth middleware
func getStaffIDFromContext(c echo.Context) (string, error) {
	staffID, ok := c.Get(StaffIDContextKey).(string)
	if !ok || staffID == "" {
		return "", ErrUnauthorized
	}
	return staffID, nil
}

// parseUUIDParam reads a path parameter as a UUID, sending invalidCode on failure
func parseUUIDParam(c echo.Context, name string, invalidCode errors.ErrorCode) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, SendError(c, invalidCode, errors.WithDetails(fmt.Sprintf("%s must be a valid UUID", name)))
	}
	return id, nil
}

// bindAndValidate binds the request into req and runs the registered validator.
// A non-nil handled error means the response has already been written.
func bindAndValidate(c echo.Context, req interface{}) (handled error, ok bool) {
	if err := c.Bind(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body")), false
	}
	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(ValidationDetails(err)...)), false
	}
	return nil, true
}

// parseMoney converts a validated amount string
func parseMoney(value string) (decimal.Decimal, error) {
	return decimal.NewFromString(value)
}

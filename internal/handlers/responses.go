package handlers

import (
	"net/http"

	"savingsbook/internal/errors"

	"github.com/labstack/echo/v4"
)

// STANDARDIZED ERROR HANDLING PATTERNS
//
// All handlers must use the following standardized error response functions:
//
// 1. SendError - For request errors caught in the handler (4xx responses)
//    - Validation errors: SendError(c, errors.ValidationGeneral, errors.WithDetails("..."))
//    - Malformed ids: SendError(c, errors.AccountInvalidID)
//
// 2. SendServiceError - For errors returned by a service
//    Maps domain sentinels to their API code and HTTP status, and renders
//    rule violation context (state, constraint) as details.
//
// 3. SendSystemError - For internal errors (500 responses)
//    Never exposes the internal error text to the client.
//
// DO NOT USE:
//    - echo.NewHTTPError() - Use SendError or SendServiceError instead
//    - Direct c.JSON() for errors - Use the helper functions

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
	// StaffIDContextKey holds the acting staff member set by the auth middleware
	StaffIDContextKey = "staff_id"
	// RoleContextKey holds the acting staff member's role
	RoleContextKey = "user_role"
)

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError wraps a system error with generic message
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, _ := errors.WrapSystemError(err, traceID)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"savingsbook/internal/errors"
	"savingsbook/internal/handlers"
	"savingsbook/internal/services"

	"github.com/labstack/echo/v4"
)

// PanicRecovery turns a panicking handler into a SYSTEM_001 response. The
// panic is logged as a panic_recovered event under the request's correlation
// id and counted in api_errors_total like any other 500.
func PanicRecovery(logger *slog.Logger) echo.MiddlewareFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if r == http.ErrAbortHandler {
					panic(r)
				}

				ctx := c.Request().Context()
				traceID := GetTraceID(c)
				if traceID == "" {
					traceID = "unknown"
				}

				attrs := []any{
					slog.String("event_type", "panic_recovered"),
					slog.String("correlation_id", services.CorrelationID(ctx)),
					slog.String("trace_id", traceID),
					slog.String("method", c.Request().Method),
					slog.String("path", c.Request().URL.Path),
					slog.String("panic", fmt.Sprint(r)),
					slog.String("stack_trace", string(debug.Stack())),
				}
				if staffID, ok := c.Get(handlers.StaffIDContextKey).(string); ok {
					attrs = append(attrs, slog.String("staff_id", staffID))
				}
				logger.ErrorContext(ctx, "handler panicked", attrs...)

				apiErrorsTotal.WithLabelValues(
					string(errors.SystemInternalError),
					c.Path(),
					fmt.Sprintf("%d", http.StatusInternalServerError),
				).Inc()

				// Headers already sent; nothing more can reach the client
				if c.Response().Committed {
					return
				}
				err = c.JSON(http.StatusInternalServerError, errors.NewErrorResponse(errors.SystemInternalError, traceID))
			}()

			return next(c)
		}
	}
}

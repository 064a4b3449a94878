package middleware

import (
	stderrors "errors"

	"savingsbook/internal/errors"
	"savingsbook/internal/handlers"
	"savingsbook/internal/models"
	"savingsbook/internal/services"

	"github.com/labstack/echo/v4"
)

// RequireAuth creates a middleware that requires a valid staff access token.
// The staff id and role are stored on the context for handlers and RequireRole.
func RequireAuth(tokenService services.TokenServiceInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return handlers.SendError(c, errors.AuthMissingToken)
			}

			token, err := tokenService.ExtractTokenFromHeader(authHeader)
			if err != nil {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			claims, err := tokenService.ValidateAccessToken(token)
			if err != nil {
				if stderrors.Is(err, services.ErrExpiredToken) {
					return handlers.SendError(c, errors.AuthExpiredToken)
				}
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			staffID := claims.StaffID
			if staffID == "" {
				staffID = claims.Subject
			}
			if staffID == "" {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat, errors.WithDetails("Staff ID missing from token"))
			}

			c.Set(handlers.StaffIDContextKey, staffID)
			c.Set(handlers.RoleContextKey, claims.Role)
			c.Set("token_jti", claims.ID)

			return next(c)
		}
	}
}

// RequireRole creates a middleware that requires one of the given roles
func RequireRole(requiredRoles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userRole, ok := c.Get(handlers.RoleContextKey).(string)
			if !ok {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat, errors.WithDetails("User role not found in token"))
			}

			for _, role := range requiredRoles {
				if userRole == role {
					return next(c)
				}
			}

			return handlers.SendError(c, errors.AuthInsufficientPermission)
		}
	}
}

// RequireAdmin is a convenience middleware that requires admin role
func RequireAdmin() echo.MiddlewareFunc {
	return RequireRole(models.RoleAdmin)
}

// RequireTeller allows tellers and admins to move money
func RequireTeller() echo.MiddlewareFunc {
	return RequireRole(models.RoleTeller, models.RoleAdmin)
}

// RequireAccountant allows accountants and admins to read reports
func RequireAccountant() echo.MiddlewareFunc {
	return RequireRole(models.RoleAccountant, models.RoleAdmin)
}

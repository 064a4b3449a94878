package models

import "github.com/golang-jwt/jwt/v5"

// Staff roles carried in access tokens
const (
	RoleTeller     = "teller"
	RoleAccountant = "accountant"
	RoleAdmin      = "admin"
)

// CustomClaims represents the custom claims in our JWT tokens
type CustomClaims struct {
	jwt.RegisteredClaims
	StaffID   string `json:"staff_id"`
	Role      string `json:"role,omitempty"`
	TokenType string `json:"token_type"`
}

// IsValidRole checks if a role is one of the staff roles
func IsValidRole(role string) bool {
	switch role {
	case RoleTeller, RoleAccountant, RoleAdmin:
		return true
	default:
		return false
	}
}

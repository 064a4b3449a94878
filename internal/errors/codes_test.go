package errors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

// CodesTestSuite defines the test suite for error codes
type CodesTestSuite struct {
	suite.Suite
}

// TestCodesTestSuite runs the test suite
func TestCodesTestSuite(t *testing.T) {
	suite.Run(t, new(CodesTestSuite))
}

// allCodes lists every registered code grouped by prefix
var allCodes = map[string][]ErrorCode{
	"AUTH_": {
		AuthMissingToken,
		AuthExpiredToken,
		AuthInvalidTokenFormat,
		AuthInsufficientPermission,
	},
	"VALIDATION_": {
		ValidationGeneral,
		ValidationRequiredField,
		ValidationInvalidFormat,
		ValidationOutOfRange,
		ValidationInvalidDate,
	},
	"ACCOUNT_": {
		AccountNotFound,
		AccountClosed,
		AccountInvalidID,
		AccountUnsupportedType,
		AccountBalanceMismatch,
		AccountConcurrentUpdate,
		AccountIllegalStateChange,
		AccountSavingsTypeInactive,
	},
	"TRANSACTION_": {
		TransactionInvalidAmount,
		TransactionBelowMinimum,
		TransactionInsufficientBalance,
		TransactionHoldingPeriod,
		TransactionPrematureWithdrawal,
		TransactionPartialWithdrawal,
	},
	"REGULATION_": {
		RegulationInvalid,
		RegulationUnavailable,
	},
	"SAVINGS_TYPE_": {
		SavingsTypeNotFound,
		SavingsTypeNameExists,
		SavingsTypeInvalidID,
	},
	"REPORT_": {
		ReportInvalidPeriod,
	},
	"SYSTEM_": {
		SystemInternalError,
		SystemDatabaseError,
		SystemServiceUnavailable,
		SystemConfigurationError,
		SystemUnexpectedError,
		SystemRateLimitExceeded,
		SystemNotFound,
	},
}

// TestGetErrorMessage_ValidCode tests getting message for valid error codes
func (s *CodesTestSuite) TestGetErrorMessage_ValidCode() {
	testCases := []struct {
		name     string
		code     ErrorCode
		expected string
	}{
		{
			name:     "Auth Missing Token",
			code:     AuthMissingToken,
			expected: "Authorization token is required",
		},
		{
			name:     "Validation General",
			code:     ValidationGeneral,
			expected: "Validation failed",
		},
		{
			name:     "Account Closed",
			code:     AccountClosed,
			expected: "Account is closed",
		},
		{
			name:     "Transaction Holding Period",
			code:     TransactionHoldingPeriod,
			expected: "Minimum holding period has not been met",
		},
		{
			name:     "Regulation Invalid",
			code:     RegulationInvalid,
			expected: "Invalid regulation values",
		},
		{
			name:     "System Internal Error",
			code:     SystemInternalError,
			expected: "An unexpected error occurred. Please contact support with trace ID",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			message := GetErrorMessage(tc.code)
			s.Equal(tc.expected, message)
		})
	}
}

// TestGetErrorMessage_InvalidCode tests getting message for invalid error code
func (s *CodesTestSuite) TestGetErrorMessage_InvalidCode() {
	message := GetErrorMessage("INVALID_CODE")
	s.Equal("An error occurred", message)
}

// TestIsValidErrorCode_InvalidCode tests validation of invalid error code
func (s *CodesTestSuite) TestIsValidErrorCode_InvalidCode() {
	invalidCodes := []ErrorCode{
		"INVALID_001",
		"UNKNOWN_CODE",
		"",
		"AUTH_999",
	}

	for _, code := range invalidCodes {
		s.Run(string(code), func() {
			s.False(IsValidErrorCode(code), "Expected %s to be invalid", code)
		})
	}
}

// TestErrorCodeConstants ensures codes are unique, prefixed and registered with a message
func (s *CodesTestSuite) TestErrorCodeConstants() {
	seen := make(map[ErrorCode]bool)

	for prefix, codes := range allCodes {
		s.Run(prefix, func() {
			for _, code := range codes {
				s.True(strings.HasPrefix(string(code), prefix), "Error code %s should start with %s", code, prefix)
				s.False(seen[code], "Duplicate error code found: %s", code)
				seen[code] = true

				s.True(IsValidErrorCode(code), "Expected %s to be valid", code)
				s.NotEqual("An error occurred", GetErrorMessage(code), "Error code %s should have a specific message", code)
			}
		})
	}

	s.Len(seen, len(errorMessages))
}

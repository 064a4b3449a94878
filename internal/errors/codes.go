package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthMissingToken           ErrorCode = "AUTH_001"
	AuthExpiredToken           ErrorCode = "AUTH_002"
	AuthInvalidTokenFormat     ErrorCode = "AUTH_003"
	AuthInsufficientPermission ErrorCode = "AUTH_004"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
)

// Account error codes (ACCOUNT_*)
const (
	AccountNotFound            ErrorCode = "ACCOUNT_001"
	AccountClosed              ErrorCode = "ACCOUNT_002"
	AccountInvalidID           ErrorCode = "ACCOUNT_003"
	AccountUnsupportedType     ErrorCode = "ACCOUNT_004"
	AccountBalanceMismatch     ErrorCode = "ACCOUNT_005"
	AccountConcurrentUpdate    ErrorCode = "ACCOUNT_006"
	AccountIllegalStateChange  ErrorCode = "ACCOUNT_007"
	AccountSavingsTypeInactive ErrorCode = "ACCOUNT_008"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionInvalidAmount       ErrorCode = "TRANSACTION_001"
	TransactionBelowMinimum        ErrorCode = "TRANSACTION_002"
	TransactionInsufficientBalance ErrorCode = "TRANSACTION_003"
	TransactionHoldingPeriod       ErrorCode = "TRANSACTION_004"
	TransactionPrematureWithdrawal ErrorCode = "TRANSACTION_005"
	TransactionPartialWithdrawal   ErrorCode = "TRANSACTION_006"
)

// Regulation error codes (REGULATION_*)
const (
	RegulationInvalid     ErrorCode = "REGULATION_001"
	RegulationUnavailable ErrorCode = "REGULATION_002"
)

// Savings type error codes (SAVINGS_TYPE_*)
const (
	SavingsTypeNotFound   ErrorCode = "SAVINGS_TYPE_001"
	SavingsTypeNameExists ErrorCode = "SAVINGS_TYPE_002"
	SavingsTypeInvalidID  ErrorCode = "SAVINGS_TYPE_003"
)

// Report error codes (REPORT_*)
const (
	ReportInvalidPeriod ErrorCode = "REPORT_001"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemNotFound           ErrorCode = "SYSTEM_007"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthMissingToken:           "Authorization token is required",
	AuthExpiredToken:           "Authorization token has expired",
	AuthInvalidTokenFormat:     "Invalid authorization token format",
	AuthInsufficientPermission: "Insufficient permissions to access this resource",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format or range",

	// Account errors
	AccountNotFound:            "Account not found",
	AccountClosed:              "Account is closed",
	AccountInvalidID:           "Invalid account ID format",
	AccountUnsupportedType:     "Operation is not supported for this savings type",
	AccountBalanceMismatch:     "Account balance does not match its transaction log",
	AccountConcurrentUpdate:    "Account was modified by another operation. Please retry",
	AccountIllegalStateChange:  "Operation is not allowed in the current account state",
	AccountSavingsTypeInactive: "Savings type is not accepting new accounts",

	// Transaction errors
	TransactionInvalidAmount:       "Invalid transaction amount",
	TransactionBelowMinimum:        "Amount is below the regulation minimum",
	TransactionInsufficientBalance: "Insufficient account balance",
	TransactionHoldingPeriod:       "Minimum holding period has not been met",
	TransactionPrematureWithdrawal: "Fixed-term account has not matured",
	TransactionPartialWithdrawal:   "Fixed-term account must be withdrawn in full",

	// Regulation errors
	RegulationInvalid:     "Invalid regulation values",
	RegulationUnavailable: "Regulation could not be loaded",

	// Savings type errors
	SavingsTypeNotFound:   "Savings type not found",
	SavingsTypeNameExists: "A savings type with this name already exists",
	SavingsTypeInvalidID:  "Invalid savings type ID format",

	// Report errors
	ReportInvalidPeriod: "Invalid report period",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemNotFound:           "Resource not found",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}

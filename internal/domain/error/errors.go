package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInsufficientPoints    = 4001
	CodeInvalidAmount         = 4002
	CodeInvalidUserID         = 4003
	CodeBelowMinimum          = 4004
	CodeConstraintViolation   = 4005
	CodeInvalidRate           = 4006
	CodeUsernameTaken         = 4007
	CodeSlugTaken             = 4008
	CodeInvalidInput          = 4009
	CodeDeletionNotConfirmed  = 4010
	CodeEmailInUse            = 4011
	CodeInvalidCredentials    = 4012
	CodeUnauthenticated       = 4013
	CodeInvalidAssertion      = 4014
	CodeForbidden             = 4030
	CodeUserNotFound          = 4040
	CodeProfileNotFound       = 4041
	CodeArticleNotFound       = 4042
	CodeStagedProfileNotFound = 4043
	CodeConflict              = 4090

	// 5xxx - Server errors
	CodeInternalServer         = 5000
	CodePoolStatusNotFound     = 5001
	CodeSettlementNotAvailable = 5010
	CodeDatabaseUnavailable    = 5030
	CodeServiceUnavailable     = 5031
	CodeDependencyUnavailable  = 5032
)

// Validation errors: recoverable, shown to the user
var (
	// ErrInsufficientPoints is returned when a user does not hold enough points for a conversion
	ErrInsufficientPoints = errors.New("insufficient points")

	// ErrBelowMinimumConversion is returned when a conversion request is smaller than the pool minimum
	ErrBelowMinimumConversion = errors.New("points amount is below the minimum conversion")

	// ErrInvalidAmount is returned when an amount is malformed or not positive
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrNegativeAmount is returned when an amount is negative
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrAmountOverflow is returned when an amount would overflow its storage type
	ErrAmountOverflow = errors.New("amount is too large and would cause overflow")

	// ErrInvalidRate is returned when a conversion rate is not strictly positive
	ErrInvalidRate = errors.New("conversion rate must be greater than zero")

	// ErrInvalidUserID is returned when the user identifier is empty
	ErrInvalidUserID = errors.New("user ID cannot be empty")

	// ErrUsernameTaken is returned when the chosen username already belongs to another user
	ErrUsernameTaken = errors.New("this username is already taken, please choose another one")

	// ErrSlugTaken is returned when an article slug is already in use
	ErrSlugTaken = errors.New("this slug is already used by another article")

	// ErrReferralCodeTaken is returned when a generated referral code collides with an existing one
	ErrReferralCodeTaken = errors.New("referral code already exists")

	// ErrInvalidInput is returned when a request is missing required fields
	ErrInvalidInput = errors.New("invalid input")

	// ErrDeletionNotConfirmed is returned when a delete is requested without explicit confirmation
	ErrDeletionNotConfirmed = errors.New("deletion must be explicitly confirmed")

	// ErrEmailInUse is returned when an account already exists for the email
	ErrEmailInUse = errors.New("an account already exists for this email")

	// ErrInvalidCredentials is returned when email/password sign in fails
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Missing-prerequisite errors: unrecoverable for the current operation
var (
	// ErrUserNotFound is returned when a user record cannot be found
	ErrUserNotFound = errors.New("user not found")

	// ErrProfileNotFound is returned when an authenticated identity has no user record yet
	ErrProfileNotFound = errors.New("user profile data not found")

	// ErrPoolStatusNotFound is returned when the pool status singleton is missing
	ErrPoolStatusNotFound = errors.New("pool status record not found")

	// ErrArticleNotFound is returned when an article cannot be found
	ErrArticleNotFound = errors.New("article not found")

	// ErrStagedProfileNotFound is returned when no staged federated profile exists
	ErrStagedProfileNotFound = errors.New("staged profile not found")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// Provider and infrastructure errors
var (
	// ErrUnauthenticated is returned when a session is missing, expired or revoked
	ErrUnauthenticated = errors.New("authentication required")

	// ErrForbidden is returned when the session's role may not access a resource
	ErrForbidden = errors.New("access denied")

	// ErrInvalidAssertion is returned when a federated sign-in assertion cannot be verified
	ErrInvalidAssertion = errors.New("federated sign-in assertion is invalid")

	// ErrConcurrentUpdate is returned when a storage transaction keeps conflicting with others
	ErrConcurrentUpdate = errors.New("record was modified by a concurrent operation")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrDuplicateUser is returned when trying to create a user that already exists
	ErrDuplicateUser = errors.New("user already exists")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrShuttingDown is returned for work submitted after shutdown started
	ErrShuttingDown = errors.New("service is shutting down")

	// ErrServiceUnavailable is returned when a backing service other than the database cannot be reached
	ErrServiceUnavailable = errors.New("a required service is temporarily unavailable")

	// ErrSettlementNotImplemented is returned when settlement execution is requested
	ErrSettlementNotImplemented = errors.New("settlement is executed by an external job and is not available here")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientPoints):
		return CodeInsufficientPoints
	case errors.Is(err, ErrBelowMinimumConversion):
		return CodeBelowMinimum
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrNegativeAmount), errors.Is(err, ErrAmountOverflow):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidRate):
		return CodeInvalidRate
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrUsernameTaken):
		return CodeUsernameTaken
	case errors.Is(err, ErrSlugTaken):
		return CodeSlugTaken
	case errors.Is(err, ErrInvalidInput):
		return CodeInvalidInput
	case errors.Is(err, ErrDeletionNotConfirmed):
		return CodeDeletionNotConfirmed
	case errors.Is(err, ErrEmailInUse):
		return CodeEmailInUse
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredentials
	case errors.Is(err, ErrUnauthenticated):
		return CodeUnauthenticated
	case errors.Is(err, ErrInvalidAssertion):
		return CodeInvalidAssertion
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrProfileNotFound):
		return CodeProfileNotFound
	case errors.Is(err, ErrArticleNotFound):
		return CodeArticleNotFound
	case errors.Is(err, ErrStagedProfileNotFound):
		return CodeStagedProfileNotFound
	case errors.Is(err, ErrConcurrentUpdate):
		return CodeConflict
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	case errors.Is(err, ErrPoolStatusNotFound):
		return CodePoolStatusNotFound
	case errors.Is(err, ErrSettlementNotImplemented):
		return CodeSettlementNotAvailable
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabaseUnavailable
	case errors.Is(err, ErrShuttingDown):
		return CodeServiceUnavailable
	case errors.Is(err, ErrServiceUnavailable):
		return CodeDependencyUnavailable
	default:
		return CodeInternalServer
	}
}

// InsufficientPointsError provides detailed error information for a conversion that exceeds the balance
type InsufficientPointsError struct {
	UserID    string
	Requested int64
	Available int64
}

// Error implements the error interface
func (e *InsufficientPointsError) Error() string {
	return fmt.Sprintf("insufficient points for user %s: requested %d, available %d",
		e.UserID, e.Requested, e.Available)
}

// Is checks if the target error is an ErrInsufficientPoints
func (e *InsufficientPointsError) Is(target error) bool {
	return target == ErrInsufficientPoints
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientPointsError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_points",
		"user_id":    e.UserID,
		"requested":  e.Requested,
		"available":  e.Available,
		"error_code": CodeInsufficientPoints,
	}
}

// NewInsufficientPointsError creates a new detailed insufficient points error
func NewInsufficientPointsError(userID string, requested, available int64) error {
	return &InsufficientPointsError{
		UserID:    userID,
		Requested: requested,
		Available: available,
	}
}

// MinimumConversionError reports a request below the pool minimum
type MinimumConversionError struct {
	Requested int64
	Minimum   int64
}

// Error implements the error interface
func (e *MinimumConversionError) Error() string {
	return fmt.Sprintf("minimum conversion is %d points, requested %d", e.Minimum, e.Requested)
}

// Is checks if the target error is an ErrBelowMinimumConversion
func (e *MinimumConversionError) Is(target error) bool {
	return target == ErrBelowMinimumConversion
}

// NewMinimumConversionError creates a new below-minimum error
func NewMinimumConversionError(requested, minimum int64) error {
	return &MinimumConversionError{Requested: requested, Minimum: minimum}
}

// ConversionError represents a failure while submitting points to the conversion pool
type ConversionError struct {
	UserID       string
	PointsAmount int64
	Reason       string
	Err          error
}

// Error implements the error interface for ConversionError
func (e *ConversionError) Error() string {
	return fmt.Sprintf("conversion failed for user %s (points: %d): %s - %v",
		e.UserID, e.PointsAmount, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *ConversionError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *ConversionError) LogFields() map[string]any {
	return map[string]any{
		"error_type":    "conversion_error",
		"user_id":       e.UserID,
		"points_amount": e.PointsAmount,
		"reason":        e.Reason,
		"error":         e.Err.Error(),
		"error_code":    ErrorCode(e.Err),
	}
}

// NewConversionError creates a detailed conversion error
func NewConversionError(userID string, pointsAmount int64, reason string, err error) error {
	return &ConversionError{
		UserID:       userID,
		PointsAmount: pointsAmount,
		Reason:       reason,
		Err:          err,
	}
}

// FieldError reports a single invalid request field
type FieldError struct {
	Field  string
	Reason string
}

// Error implements the error interface
func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Is checks if the target error is an ErrInvalidInput
func (e *FieldError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewFieldError creates a new field validation error
func NewFieldError(field, reason string) error {
	return &FieldError{Field: field, Reason: reason}
}

// IsValidationError reports whether err is a recoverable, user-facing validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInsufficientPoints) ||
		errors.Is(err, ErrBelowMinimumConversion) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrNegativeAmount) ||
		errors.Is(err, ErrAmountOverflow) ||
		errors.Is(err, ErrInvalidRate) ||
		errors.Is(err, ErrInvalidUserID) ||
		errors.Is(err, ErrUsernameTaken) ||
		errors.Is(err, ErrSlugTaken) ||
		errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrDeletionNotConfirmed) ||
		errors.Is(err, ErrEmailInUse) ||
		errors.Is(err, ErrInvalidCredentials)
}

// IsMissingPrerequisite reports whether err is caused by an expected record being absent
func IsMissingPrerequisite(err error) bool {
	return errors.Is(err, ErrPoolStatusNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrProfileNotFound) ||
		errors.Is(err, ErrStagedProfileNotFound)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrProfileNotFound) ||
		errors.Is(err, ErrArticleNotFound) ||
		errors.Is(err, ErrStagedProfileNotFound)
}

// IsInsufficientPointsError checks if the error is related to insufficient points
func IsInsufficientPointsError(err error) bool {
	return errors.Is(err, ErrInsufficientPoints)
}

// IsUserNotFoundError checks if the error is a user not found error
func IsUserNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}

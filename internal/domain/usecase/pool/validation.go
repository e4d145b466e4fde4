package pool

import (
	"strings"

	errs "github.com/amirhossein-jamali/rewards-pool/internal/domain/error"
)

// MinimumConversionPoints is the smallest amount accepted by the pool
const MinimumConversionPoints int64 = 1000

// ConversionValidator checks submissions before any storage access
type ConversionValidator struct {
	minimum int64
}

// NewConversionValidator creates a validator. A non-positive minimum uses MinimumConversionPoints.
func NewConversionValidator(minimum int64) *ConversionValidator {
	if minimum <= 0 {
		minimum = MinimumConversionPoints
	}
	return &ConversionValidator{minimum: minimum}
}

// Minimum returns the configured minimum
func (v *ConversionValidator) Minimum() int64 {
	return v.minimum
}

// ValidateConversion validates the user and the amount
func (v *ConversionValidator) ValidateConversion(userID string, points int64) error {
	if strings.TrimSpace(userID) == "" {
		return errs.ErrInvalidUserID
	}
	if points <= 0 {
		return errs.ErrInvalidAmount
	}
	if points < v.minimum {
		return errs.NewMinimumConversionError(points, v.minimum)
	}
	return nil
}

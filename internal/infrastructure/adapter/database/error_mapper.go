package database

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	domainErr "github.com/amirhossein-jamali/rewards-pool/internal/domain/error"
	"github.com/amirhossein-jamali/rewards-pool/internal/infrastructure/adapter/repository"
)

// ErrorMapper maps raw database errors that escape the repositories, such as commit failures,
// to domain errors. Errors that already are domain errors pass through unchanged.
type ErrorMapper struct {
	classifier *repository.ErrorClassifier
}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{classifier: repository.NewErrorClassifier()}
}

// MapError maps a database error to a domain error
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if isDomainError(err) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainErr.ErrNotFound
	}

	switch {
	case m.classifier.IsLockError(err):
		return fmt.Errorf("%w: %w", domainErr.ErrConcurrentUpdate, err)
	case m.classifier.DuplicateColumn(err, "username") != "":
		return domainErr.ErrUsernameTaken
	case m.classifier.DuplicateColumn(err, "slug") != "":
		return domainErr.ErrSlugTaken
	case m.classifier.DuplicateColumn(err, "email") != "":
		return domainErr.ErrEmailInUse
	case m.classifier.IsConstraintError(err):
		return fmt.Errorf("%w: %w", domainErr.ErrConstraintViolation, err)
	case m.classifier.IsConnectionError(err):
		return fmt.Errorf("%w: %s failed: %w", domainErr.ErrDatabaseConnection, operation, err)
	default:
		return fmt.Errorf("%w: %s failed: %w", domainErr.ErrInternalServer, operation, err)
	}
}

// isDomainError reports whether err already carries a domain error
func isDomainError(err error) bool {
	return domainErr.ErrorCode(err) != domainErr.CodeInternalServer ||
		errors.Is(err, domainErr.ErrInternalServer) ||
		errors.Is(err, domainErr.ErrReferralCodeTaken) ||
		errors.Is(err, domainErr.ErrNotFound)
}

package database

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	errs "github.com/amirhossein-jamali/rewards-pool/internal/domain/error"
)

func TestErrorMapper(t *testing.T) {
	mapper := NewErrorMapper()

	t.Run("should pass domain errors through", func(t *testing.T) {
		err := errs.NewConversionError("user-1", 1000, "user record missing", errs.ErrUserNotFound)
		assert.Same(t, err, mapper.MapError(err, "transaction"))
		assert.Equal(t, errs.ErrReferralCodeTaken, mapper.MapError(errs.ErrReferralCodeTaken, "transaction"))
	})

	t.Run("should map driver errors", func(t *testing.T) {
		testCases := []struct {
			name     string
			err      error
			expected error
		}{
			{"serialization failure", &pgconn.PgError{Code: "40001", Message: "could not serialize access"}, errs.ErrConcurrentUpdate},
			{"postgres username index", &pgconn.PgError{Code: "23505", ConstraintName: "idx_users_username"}, errs.ErrUsernameTaken},
			{"sqlite slug index", errors.New("UNIQUE constraint failed: articles.slug"), errs.ErrSlugTaken},
			{"credential email index", errors.New("UNIQUE constraint failed: credentials.email"), errs.ErrEmailInUse},
			{"check constraint", errors.New("CHECK constraint failed: chk_users_points_non_negative"), errs.ErrConstraintViolation},
			{"refused connection", errors.New("dial tcp: connection refused"), errs.ErrDatabaseConnection},
			{"unknown", errors.New("something odd"), errs.ErrInternalServer},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				assert.ErrorIs(t, mapper.MapError(tc.err, "op"), tc.expected)
			})
		}
	})
}

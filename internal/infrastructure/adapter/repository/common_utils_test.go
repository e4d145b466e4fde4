package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	errs "github.com/amirhossein-jamali/rewards-pool/internal/domain/error"
)

func TestErrorClassifier(t *testing.T) {
	classifier := NewErrorClassifier()

	t.Run("should classify postgres errors by SQLSTATE", func(t *testing.T) {
		testCases := []struct {
			code     string
			expected ErrorType
		}{
			{"23505", DuplicateKeyError},
			{"40001", LockError},
			{"40P01", LockError},
			{"55P03", LockError},
			{"23514", ConstraintError},
			{"23503", ConstraintError},
		}

		for _, tc := range testCases {
			t.Run(tc.code, func(t *testing.T) {
				err := fmt.Errorf("query failed: %w", &pgconn.PgError{Code: tc.code})
				assert.Equal(t, tc.expected, classifier.Classify(err))
			})
		}
	})

	t.Run("should classify sqlite messages", func(t *testing.T) {
		assert.Equal(t, DuplicateKeyError, classifier.Classify(errors.New("UNIQUE constraint failed: users.username")))
		assert.Equal(t, LockError, classifier.Classify(errors.New("database is locked")))
		assert.Equal(t, ConstraintError, classifier.Classify(errors.New("CHECK constraint failed: chk_users_points_non_negative")))
		assert.Equal(t, ErrorType(""), classifier.Classify(nil))
	})

	t.Run("should name the duplicated column", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "idx_users_referral_code"}
		assert.Equal(t, "referral_code", classifier.DuplicateColumn(pgErr, "username", "referral_code"))

		sqliteErr := errors.New("UNIQUE constraint failed: users.username")
		assert.Equal(t, "username", classifier.DuplicateColumn(sqliteErr, "username", "referral_code"))

		assert.Empty(t, classifier.DuplicateColumn(errors.New("UNIQUE constraint failed: articles.slug"), "username"))
		assert.Empty(t, classifier.DuplicateColumn(errors.New("timeout"), "username"))
	})

	t.Run("should map unhandled errors by their classification", func(t *testing.T) {
		testCases := []struct {
			name     string
			err      error
			expected error
		}{
			{"busy sqlite database", errors.New("database is locked"), errs.ErrConcurrentUpdate},
			{"postgres deadlock", &pgconn.PgError{Code: "40P01"}, errs.ErrConcurrentUpdate},
			{"foreign key", &pgconn.PgError{Code: "23503"}, errs.ErrConstraintViolation},
			{"unique index", errors.New("UNIQUE constraint failed: referral_earnings.id"), errs.ErrConstraintViolation},
			{"refused connection", errors.New("dial tcp: connection refused"), errs.ErrDatabaseConnection},
			{"unknown", errors.New("something odd"), errs.ErrDatabaseConnection},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				assert.ErrorIs(t, classifier.ToDomainError(tc.err), tc.expected)
			})
		}
	})
}

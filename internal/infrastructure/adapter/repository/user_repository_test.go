package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/rewards-pool/internal/domain/entity"
	errs "github.com/amirhossein-jamali/rewards-pool/internal/domain/error"
	"github.com/amirhossein-jamali/rewards-pool/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/rewards-pool/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/rewards-pool/internal/infrastructure/adapter/repository"
)

func newUser(id, username, code string) *entity.User {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return &entity.User{
		ID:           id,
		Email:        username + "@example.com",
		Username:     username,
		FullName:     "Test " + username,
		Country:      "DE",
		Role:         entity.RoleUser,
		ReferralCode: code,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) *repository.UserRepository {
		db := database.NewTestDBManager(t, logger.NewNoopLogger())
		return repository.NewUserRepository(db.Manager.DB(), logger.NewNoopLogger())
	}

	t.Run("should create and read back a user", func(t *testing.T) {
		// Arrange
		repo := setup(t)
		user := newUser("user-1", "alice", "ABC123")
		referrer := "ZZZ999"
		user.ReferredBy = &referrer

		// Act
		err := repo.Create(ctx, user)

		// Assert
		require.NoError(t, err)
		stored, err := repo.GetByID(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, "alice", stored.Username)
		assert.Equal(t, entity.RoleUser, stored.Role)
		assert.Equal(t, "ABC123", stored.ReferralCode)
		require.NotNil(t, stored.ReferredBy)
		assert.Equal(t, "ZZZ999", *stored.ReferredBy)
		assert.Zero(t, stored.Points)
	})

	t.Run("should report a missing user", func(t *testing.T) {
		repo := setup(t)

		_, err := repo.GetByID(ctx, "ghost")
		assert.ErrorIs(t, err, errs.ErrUserNotFound)

		_, err = repo.GetByIDForUpdate(ctx, "ghost")
		assert.ErrorIs(t, err, errs.ErrUserNotFound)

		err = repo.Update(ctx, newUser("ghost", "ghost", "GHOST1"))
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("should reject a duplicate username", func(t *testing.T) {
		// Arrange
		repo := setup(t)
		require.NoError(t, repo.Create(ctx, newUser("user-1", "alice", "AAA111")))

		// Act
		err := repo.Create(ctx, newUser("user-2", "alice", "BBB222"))

		// Assert
		assert.ErrorIs(t, err, errs.ErrUsernameTaken)
	})

	t.Run("should treat usernames as case sensitive", func(t *testing.T) {
		// Arrange
		repo := setup(t)
		require.NoError(t, repo.Create(ctx, newUser("user-1", "alice", "AAA111")))

		// Act
		exact, err := repo.UsernameExists(ctx, "alice")
		require.NoError(t, err)
		other, err := repo.UsernameExists(ctx, "Alice")
		require.NoError(t, err)

		// Assert
		assert.True(t, exact)
		assert.False(t, other)
	})

	t.Run("should reject a duplicate referral code", func(t *testing.T) {
		// Arrange
		repo := setup(t)
		require.NoError(t, repo.Create(ctx, newUser("user-1", "alice", "AAA111")))

		// Act
		err := repo.Create(ctx, newUser("user-2", "bob", "AAA111"))

		// Assert
		assert.ErrorIs(t, err, errs.ErrReferralCodeTaken)
		exists, err := repo.ReferralCodeExists(ctx, "AAA111")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("should persist ledger fields on update", func(t *testing.T) {
		// Arrange
		repo := setup(t)
		user := newUser("user-1", "alice", "AAA111")
		require.NoError(t, repo.Create(ctx, user))

		submittedAt := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
		user.Points = 700
		user.PointsPendingPool = 1300
		user.BalanceCents = 1050
		user.TotalReferralEarnings = 40
		user.LastPoolSubmissionAt = &submittedAt

		// Act
		err := repo.Update(ctx, user)

		// Assert
		require.NoError(t, err)
		stored, err := repo.GetByID(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, int64(700), stored.Points)
		assert.Equal(t, int64(1300), stored.PointsPendingPool)
		assert.Equal(t, "10.50", stored.Balance())
		assert.Equal(t, int64(40), stored.TotalReferralEarnings)
		require.NotNil(t, stored.LastPoolSubmissionAt)
		assert.True(t, submittedAt.Equal(*stored.LastPoolSubmissionAt))
	})

	t.Run("should refuse a negative point balance", func(t *testing.T) {
		// Arrange
		repo := setup(t)
		user := newUser("user-1", "alice", "AAA111")
		require.NoError(t, repo.Create(ctx, user))
		user.Points = -1

		// Act
		err := repo.Update(ctx, user)

		// Assert
		assert.ErrorIs(t, err, errs.ErrConstraintViolation)
	})
}

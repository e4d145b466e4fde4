package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/rewards-pool/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/rewards-pool/mocks/port/core"
)

func TestNewUser(t *testing.T) {
	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid user creation", func(t *testing.T) {
		user, err := NewUser(NewUserParams{
			ID:           "u-1",
			Email:        "jane@example.com",
			Username:     "jane",
			FullName:     "Jane Doe",
			Country:      "NL",
			ReferralCode: "AB12CD",
			ReferredBy:   "ZZ99ZZ",
		}, mockTime)

		require.NoError(t, err)
		assert.Equal(t, "u-1", user.ID)
		assert.Equal(t, RoleUser, user.Role)
		assert.Equal(t, int64(0), user.Points)
		assert.Equal(t, int64(0), user.PointsPendingPool)
		assert.Equal(t, "0.00", user.Balance())
		require.NotNil(t, user.ReferredBy)
		assert.Equal(t, "ZZ99ZZ", *user.ReferredBy)
		assert.Equal(t, fixedTime, user.CreatedAt)
		assert.Nil(t, user.LastPoolSubmissionAt)
	})

	t.Run("Empty referrer is stored as nil", func(t *testing.T) {
		user, err := NewUser(NewUserParams{ID: "u-1", Username: "jane", ReferralCode: "AB12CD", ReferredBy: "  "}, mockTime)

		require.NoError(t, err)
		assert.Nil(t, user.ReferredBy)
	})

	t.Run("Email is stored in normalized form", func(t *testing.T) {
		user, err := NewUser(NewUserParams{ID: "u-1", Email: " Jane@Example.COM ", Username: "jane", ReferralCode: "AB12CD"}, mockTime)

		require.NoError(t, err)
		assert.Equal(t, "jane@example.com", user.Email)
		assert.Equal(t, NormalizeEmail(" Jane@Example.COM "), user.Email)
	})

	t.Run("Empty ID should return error", func(t *testing.T) {
		user, err := NewUser(NewUserParams{Username: "jane", ReferralCode: "AB12CD"}, mockTime)

		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
		assert.Nil(t, user)
	})

	t.Run("Empty username should return error", func(t *testing.T) {
		user, err := NewUser(NewUserParams{ID: "u-1", ReferralCode: "AB12CD"}, mockTime)

		assert.ErrorIs(t, err, errs.ErrInvalidInput)
		assert.Nil(t, user)
	})
}

func TestUserReservePointsForPool(t *testing.T) {
	now := time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC)

	t.Run("should debit points and credit pending pool", func(t *testing.T) {
		user := &User{ID: "u-1", Points: 5000}

		err := user.ReservePointsForPool(1500, now)

		require.NoError(t, err)
		assert.Equal(t, int64(3500), user.Points)
		assert.Equal(t, int64(1500), user.PointsPendingPool)
		require.NotNil(t, user.LastPoolSubmissionAt)
		assert.Equal(t, now, *user.LastPoolSubmissionAt)
	})

	t.Run("should allow spending the whole balance", func(t *testing.T) {
		user := &User{ID: "u-1", Points: 1000}

		require.NoError(t, user.ReservePointsForPool(1000, now))
		assert.Equal(t, int64(0), user.Points)
	})

	t.Run("should leave user unchanged when balance is insufficient", func(t *testing.T) {
		user := &User{ID: "u-1", Points: 500}
		before := *user

		err := user.ReservePointsForPool(1000, now)

		assert.ErrorIs(t, err, errs.ErrInsufficientPoints)
		assert.Equal(t, before, *user)
	})

	t.Run("should reject non-positive amounts", func(t *testing.T) {
		user := &User{ID: "u-1", Points: 500}

		assert.ErrorIs(t, user.ReservePointsForPool(0, now), errs.ErrInvalidAmount)
		assert.ErrorIs(t, user.ReservePointsForPool(-5, now), errs.ErrInvalidAmount)
	})

	t.Run("should leave user unchanged when the pending bucket would overflow", func(t *testing.T) {
		user := &User{ID: "u-1", Points: 1000, PointsPendingPool: maxInt64 - 10}
		before := *user

		err := user.ReservePointsForPool(11, now)

		assert.ErrorIs(t, err, errs.ErrAmountOverflow)
		assert.Equal(t, before, *user)
	})
}

func TestUserDisplayName(t *testing.T) {
	assert.Equal(t, "jane", (&User{Username: "jane", FullName: "Jane Doe"}).DisplayName())
	assert.Equal(t, "Jane Doe", (&User{FullName: "Jane Doe"}).DisplayName())
}

func TestUserCreditReferralEarning(t *testing.T) {
	now := time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC)
	user := &User{ID: "u-1", TotalReferralEarnings: 10}

	require.NoError(t, user.CreditReferralEarning(25, now))
	assert.Equal(t, int64(35), user.TotalReferralEarnings)
	assert.ErrorIs(t, user.CreditReferralEarning(0, now), errs.ErrInvalidAmount)

	user.TotalReferralEarnings = maxInt64
	assert.ErrorIs(t, user.CreditReferralEarning(1, now), errs.ErrAmountOverflow)
	assert.Equal(t, maxInt64, user.TotalReferralEarnings)
}

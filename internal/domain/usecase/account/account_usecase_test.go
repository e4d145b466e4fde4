package account

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/rewards-pool/internal/domain/entity"
	errs "github.com/amirhossein-jamali/rewards-pool/internal/domain/error"
	"github.com/amirhossein-jamali/rewards-pool/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/rewards-pool/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/rewards-pool/internal/domain/usecase/access"
	mockcore "github.com/amirhossein-jamali/rewards-pool/mocks/port/core"
	mockidentity "github.com/amirhossein-jamali/rewards-pool/mocks/port/identity"
	mockpersistence "github.com/amirhossein-jamali/rewards-pool/mocks/port/persistence"
)

var fixedTime = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

type testDeps struct {
	uow       *mockpersistence.MockUnitOfWork
	users     *mockpersistence.MockUserRepository
	referrals *mockpersistence.MockReferralRepository
	staging   *mockpersistence.MockProfileStagingStore
	identity  *mockidentity.MockProvider
	ids       *mockcore.MockIDGenerator
	useCase   *AccountUseCase
}

func newTestDeps(t *testing.T) *testDeps {
	d := &testDeps{
		uow:       mockpersistence.NewMockUnitOfWork(t),
		users:     mockpersistence.NewMockUserRepository(t),
		referrals: mockpersistence.NewMockReferralRepository(t),
		staging:   mockpersistence.NewMockProfileStagingStore(t),
		identity:  mockidentity.NewMockProvider(t),
		ids:       mockcore.NewMockIDGenerator(t),
	}

	logger := mockcore.NewMockLogger(t)
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	timeProvider := mockcore.NewMockTimeProvider(t)
	timeProvider.EXPECT().Now().Return(fixedTime).Maybe()

	d.uow.EXPECT().GetUserRepository(mock.Anything).Return(d.users).Maybe()
	d.uow.EXPECT().GetReferralRepository(mock.Anything).Return(d.referrals).Maybe()
	d.uow.EXPECT().RunInTransaction(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn persistence.TxFunc) error { return fn(ctx) }).Maybe()

	d.useCase = NewAccountUseCase(
		d.uow, d.identity, d.staging,
		access.NewService(d.users, logger),
		d.ids, timeProvider, logger,
		Options{ReferralLinkBase: "https://rewards.example/auth.html"},
	)
	d.useCase.referralCodes = func() (string, error) { return "AB12CD", nil }
	return d
}

func validSignUp() usecase.SignUpInput {
	return usecase.SignUpInput{
		Email:        "jane@example.com",
		Password:     "secret123",
		FullName:     "Jane Doe",
		Username:     "jane",
		Country:      "NL",
		ReferralCode: "ZZ99ZZ",
	}
}

func TestSignUp(t *testing.T) {
	ctx := context.Background()

	t.Run("should create credentials and a zeroed user record", func(t *testing.T) {
		// Arrange
		d := newTestDeps(t)
		d.users.EXPECT().UsernameExists(mock.Anything, "jane").Return(false, nil).Once()
		d.identity.EXPECT().CreateAccount(mock.Anything, "jane@example.com", "secret123", "Jane Doe").
			Return(&entity.Session{UserID: "u-1", Email: "jane@example.com", Token: "tok"}, nil).Once()
		d.users.EXPECT().ReferralCodeExists(mock.Anything, "AB12CD").Return(false, nil).Once()
		d.users.EXPECT().Create(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.ID == "u-1" && u.Role == entity.RoleUser && u.Points == 0 &&
				u.ReferralCode == "AB12CD" && u.ReferredBy != nil && *u.ReferredBy == "ZZ99ZZ"
		})).Return(nil).Once()

		// Act
		result, err := d.useCase.SignUp(ctx, validSignUp())

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "tok", result.Session.Token)
		assert.Equal(t, entity.RedirectTo(entity.PageDashboard), result.Decision)
		assert.Equal(t, "Jane Doe", result.User.FullName)
	})

	t.Run("should store the email in the same form as the credentials", func(t *testing.T) {
		// Arrange
		d := newTestDeps(t)
		in := validSignUp()
		in.Email = "  Jane@Example.COM "
		d.users.EXPECT().UsernameExists(mock.Anything, "jane").Return(false, nil).Once()
		d.identity.EXPECT().CreateAccount(mock.Anything, "jane@example.com", "secret123", "Jane Doe").
			Return(&entity.Session{UserID: "u-1", Email: "jane@example.com", Token: "tok"}, nil).Once()
		d.users.EXPECT().ReferralCodeExists(mock.Anything, "AB12CD").Return(false, nil).Once()
		d.users.EXPECT().Create(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.Email == "jane@example.com"
		})).Return(nil).Once()

		// Act
		result, err := d.useCase.SignUp(ctx, in)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, result.Session.Email, result.User.Email)
	})

	t.Run("should reject a taken username before creating an account", func(t *testing.T) {
		d := newTestDeps(t)
		d.users.EXPECT().UsernameExists(mock.Anything, "jane").Return(true, nil).Once()

		result, err := d.useCase.SignUp(ctx, validSignUp())

		assert.ErrorIs(t, err, errs.ErrUsernameTaken)
		assert.Nil(t, result)
	})

	t.Run("should remove credentials when a concurrent signup took the username", func(t *testing.T) {
		d := newTestDeps(t)
		d.users.EXPECT().UsernameExists(mock.Anything, "jane").Return(false, nil).Once()
		d.identity.EXPECT().CreateAccount(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(&entity.Session{UserID: "u-2"}, nil).Once()
		d.users.EXPECT().ReferralCodeExists(mock.Anything, mock.Anything).Return(false, nil).Once()
		d.users.EXPECT().Create(mock.Anything, mock.Anything).Return(errs.ErrUsernameTaken).Once()
		d.identity.EXPECT().DeleteAccount(mock.Anything, "u-2").Return(nil).Once()

		_, err := d.useCase.SignUp(ctx, validSignUp())

		assert.ErrorIs(t, err, errs.ErrUsernameTaken)
	})

	t.Run("should regenerate colliding referral codes", func(t *testing.T) {
		d := newTestDeps(t)
		codes := []string{"AAAAAA", "BBBBBB", "CCCCCC"}
		d.useCase.referralCodes = func() (string, error) {
			code := codes[0]
			codes = codes[1:]
			return code, nil
		}
		d.users.EXPECT().UsernameExists(mock.Anything, "jane").Return(false, nil).Once()
		d.identity.EXPECT().CreateAccount(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(&entity.Session{UserID: "u-1"}, nil).Once()
		d.users.EXPECT().ReferralCodeExists(mock.Anything, "AAAAAA").Return(true, nil).Once()
		d.users.EXPECT().ReferralCodeExists(mock.Anything, "BBBBBB").Return(false, nil).Once()
		d.users.EXPECT().Create(mock.Anything, mock.MatchedBy(func(u *entity.User) bool { return u.ReferralCode == "BBBBBB" })).
			Return(errs.ErrReferralCodeTaken).Once()
		d.users.EXPECT().ReferralCodeExists(mock.Anything, "CCCCCC").Return(false, nil).Once()
		d.users.EXPECT().Create(mock.Anything, mock.MatchedBy(func(u *entity.User) bool { return u.ReferralCode == "CCCCCC" })).
			Return(nil).Once()

		result, err := d.useCase.SignUp(ctx, validSignUp())

		require.NoError(t, err)
		assert.Equal(t, "CCCCCC", result.User.ReferralCode)
	})

	t.Run("should surface identity provider failures", func(t *testing.T) {
		d := newTestDeps(t)
		d.users.EXPECT().UsernameExists(mock.Anything, "jane").Return(false, nil).Once()
		d.identity.EXPECT().CreateAccount(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errs.ErrEmailInUse).Once()

		_, err := d.useCase.SignUp(ctx, validSignUp())

		assert.ErrorIs(t, err, errs.ErrEmailInUse)
	})

	t.Run("should validate the form", func(t *testing.T) {
		d := newTestDeps(t)

		in := validSignUp()
		in.Password = "123"
		_, err := d.useCase.SignUp(ctx, in)
		assert.ErrorIs(t, err, errs.ErrInvalidInput)

		in = validSignUp()
		in.Email = "not-an-email"
		_, err = d.useCase.SignUp(ctx, in)
		assert.ErrorIs(t, err, errs.ErrInvalidInput)
	})
}

func TestSignInFederated(t *testing.T) {
	ctx := context.Background()
	session := &entity.Session{UserID: "u-9", Email: "fed@example.com", DisplayName: "Fed User"}

	t.Run("should stage the profile and send new users to onboarding", func(t *testing.T) {
		d := newTestDeps(t)
		d.identity.EXPECT().SignInFederated(mock.Anything, "assertion").Return(session, nil).Once()
		d.users.EXPECT().GetByID(mock.Anything, "u-9").Return(nil, errs.ErrUserNotFound).Once()
		d.staging.EXPECT().Stage(mock.Anything, "u-9", entity.StagedProfile{FullName: "Fed User", Email: "fed@example.com"}).
			Return(nil).Once()

		result, err := d.useCase.SignInFederated(ctx, "assertion")

		require.NoError(t, err)
		assert.Equal(t, entity.RedirectTo(entity.PageOnboarding), result.Decision)
	})

	t.Run("should send known users to their dashboard", func(t *testing.T) {
		d := newTestDeps(t)
		d.identity.EXPECT().SignInFederated(mock.Anything, "assertion").Return(session, nil).Once()
		d.users.EXPECT().GetByID(mock.Anything, "u-9").Return(&entity.User{ID: "u-9", Role: entity.RoleAdmin}, nil).Once()

		result, err := d.useCase.SignInFederated(ctx, "assertion")

		require.NoError(t, err)
		assert.Equal(t, entity.RedirectTo(entity.PageAdminDashboard), result.Decision)
	})

	t.Run("should reject invalid assertions", func(t *testing.T) {
		d := newTestDeps(t)
		d.identity.EXPECT().SignInFederated(mock.Anything, "forged").Return(nil, errs.ErrInvalidAssertion).Once()

		_, err := d.useCase.SignInFederated(ctx, "forged")

		assert.ErrorIs(t, err, errs.ErrInvalidAssertion)
	})
}

func TestSignIn(t *testing.T) {
	d := newTestDeps(t)
	d.identity.EXPECT().SignIn(mock.Anything, "mod@example.com", "pw").Return(&entity.Session{UserID: "u-3"}, nil).Once()
	d.users.EXPECT().GetByID(mock.Anything, "u-3").Return(&entity.User{ID: "u-3", Role: entity.RoleModerator}, nil).Once()

	result, err := d.useCase.SignIn(context.Background(), " mod@example.com ", "pw")

	require.NoError(t, err)
	assert.Equal(t, entity.RedirectTo(entity.PageModeratorDashboard), result.Decision)
}

func TestCompleteOnboarding(t *testing.T) {
	ctx := context.Background()
	session := &entity.Session{UserID: "u-9", Email: "fed@example.com", DisplayName: "Session Name"}

	t.Run("should consume the staged profile", func(t *testing.T) {
		d := newTestDeps(t)
		d.users.EXPECT().GetByID(mock.Anything, "u-9").Return(nil, errs.ErrUserNotFound).Once()
		d.users.EXPECT().UsernameExists(mock.Anything, "fed").Return(false, nil).Once()
		d.staging.EXPECT().Get(mock.Anything, "u-9").Return(&entity.StagedProfile{FullName: "Staged Name", Email: "staged@example.com"}, nil).Once()
		d.users.EXPECT().ReferralCodeExists(mock.Anything, "AB12CD").Return(false, nil).Once()
		d.users.EXPECT().Create(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.FullName == "Staged Name" && u.Email == "staged@example.com" && u.ReferredBy == nil
		})).Return(nil).Once()
		d.staging.EXPECT().Clear(mock.Anything, "u-9").Return(nil).Once()

		result, err := d.useCase.CompleteOnboarding(ctx, session, usecase.OnboardingInput{Username: "fed", Country: "DE"})

		require.NoError(t, err)
		assert.Equal(t, entity.RedirectTo(entity.PageDashboard), result.Decision)
	})

	t.Run("should fall back to session fields and then a placeholder name", func(t *testing.T) {
		d := newTestDeps(t)
		bare := &entity.Session{UserID: "u-9"}
		d.users.EXPECT().GetByID(mock.Anything, "u-9").Return(nil, errs.ErrUserNotFound).Once()
		d.users.EXPECT().UsernameExists(mock.Anything, "fed").Return(false, nil).Once()
		d.staging.EXPECT().Get(mock.Anything, "u-9").Return(nil, errs.ErrStagedProfileNotFound).Once()
		d.users.EXPECT().ReferralCodeExists(mock.Anything, mock.Anything).Return(false, nil).Once()
		d.users.EXPECT().Create(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.FullName == entity.DefaultFullName
		})).Return(nil).Once()
		d.staging.EXPECT().Clear(mock.Anything, "u-9").Return(nil).Once()

		_, err := d.useCase.CompleteOnboarding(ctx, bare, usecase.OnboardingInput{Username: "fed"})

		require.NoError(t, err)
	})

	t.Run("should keep staged state when the username is taken", func(t *testing.T) {
		d := newTestDeps(t)
		d.users.EXPECT().GetByID(mock.Anything, "u-9").Return(nil, errs.ErrUserNotFound).Once()
		d.users.EXPECT().UsernameExists(mock.Anything, "taken").Return(true, nil).Once()

		_, err := d.useCase.CompleteOnboarding(ctx, session, usecase.OnboardingInput{Username: "taken"})

		assert.ErrorIs(t, err, errs.ErrUsernameTaken)
	})

	t.Run("should require a session", func(t *testing.T) {
		d := newTestDeps(t)

		_, err := d.useCase.CompleteOnboarding(ctx, nil, usecase.OnboardingInput{Username: "fed"})

		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})
}

func TestGetDashboard(t *testing.T) {
	ctx := context.Background()

	t.Run("should assemble the dashboard", func(t *testing.T) {
		// Arrange
		d := newTestDeps(t)
		user := &entity.User{
			ID: "u-1", Username: "jane", FullName: "Jane Doe",
			BalanceCents: 12345, ReservedForOffersCents: 500, Points: 4200, PointsPendingPool: 1000,
			PrimeLevel: 2, StakedAmountCents: 100000, ReferralCode: "AB12CD", TotalReferralEarnings: 75,
		}
		d.users.EXPECT().GetByID(mock.Anything, "u-1").Return(user, nil).Once()
		d.referrals.EXPECT().ListByReferrer(mock.Anything, "u-1").Return([]*entity.ReferralEarning{
			{ReferredUsername: "bob", AmountEarned: 50, EarnedAt: fixedTime.Add(time.Hour)},
			{ReferredUsername: "bob", AmountEarned: 25, EarnedAt: fixedTime},
		}, nil).Once()

		// Act
		dashboard, err := d.useCase.GetDashboard(ctx, "u-1")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "jane", dashboard.Greeting)
		assert.Equal(t, "123.45", dashboard.Balance)
		assert.Equal(t, "5.00", dashboard.ReservedForOffers)
		assert.Equal(t, "1000.00", dashboard.StakedAmount)
		assert.Equal(t, "https://rewards.example/auth.html?ref=AB12CD", dashboard.ReferralLink)
		require.Len(t, dashboard.Referrals, 1)
		assert.Equal(t, int64(75), dashboard.Referrals[0].TotalEarned)
		assert.Equal(t, fixedTime, dashboard.Referrals[0].JoinedAt)
	})

	t.Run("should report a missing profile", func(t *testing.T) {
		d := newTestDeps(t)
		d.users.EXPECT().GetByID(mock.Anything, "u-1").Return(nil, errs.ErrUserNotFound).Once()

		_, err := d.useCase.GetDashboard(ctx, "u-1")

		assert.ErrorIs(t, err, errs.ErrProfileNotFound)
	})

	t.Run("should return lookup failures", func(t *testing.T) {
		d := newTestDeps(t)
		dbErr := errors.New("connection refused")
		d.users.EXPECT().GetByID(mock.Anything, "u-1").Return(nil, dbErr).Once()

		_, err := d.useCase.GetDashboard(ctx, "u-1")

		assert.ErrorIs(t, err, dbErr)
	})
}

func TestCreditReferralEarning(t *testing.T) {
	ctx := context.Background()

	t.Run("should append an earning and raise the total", func(t *testing.T) {
		d := newTestDeps(t)
		d.users.EXPECT().GetByIDForUpdate(mock.Anything, "u-1").Return(&entity.User{ID: "u-1", TotalReferralEarnings: 10}, nil).Once()
		d.users.EXPECT().Update(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.TotalReferralEarnings == 35
		})).Return(nil).Once()
		d.ids.EXPECT().NewID().Return("e-1").Once()
		d.referrals.EXPECT().Create(mock.Anything, mock.MatchedBy(func(e *entity.ReferralEarning) bool {
			return e.ID == "e-1" && e.ReferredUsername == "bob" && e.AmountEarned == 25
		})).Return(nil).Once()

		earning, err := d.useCase.CreditReferralEarning(ctx, usecase.ReferralCreditInput{
			ReferrerID: "u-1", ReferredUsername: "bob", Amount: 25,
		})

		require.NoError(t, err)
		assert.Equal(t, fixedTime, earning.EarnedAt)
	})

	t.Run("should reject invalid input without touching storage", func(t *testing.T) {
		d := newTestDeps(t)

		_, err := d.useCase.CreditReferralEarning(ctx, usecase.ReferralCreditInput{ReferrerID: "u-1", ReferredUsername: "bob"})
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)

		_, err = d.useCase.CreditReferralEarning(ctx, usecase.ReferralCreditInput{ReferredUsername: "bob", Amount: 5})
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})
}

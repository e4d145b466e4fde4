package identity_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	errs "github.com/amirhossein-jamali/rewards-pool/internal/domain/error"
	"github.com/amirhossein-jamali/rewards-pool/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/rewards-pool/internal/infrastructure/adapter/id"
	"github.com/amirhossein-jamali/rewards-pool/internal/infrastructure/adapter/identity"
	"github.com/amirhossein-jamali/rewards-pool/internal/infrastructure/adapter/logger"
	mockcore "github.com/amirhossein-jamali/rewards-pool/mocks/port/core"
)

const (
	sessionKey   = "session-signing-key-for-tests-0123456789"
	federatedKey = "federated-signing-key-for-tests-0123456789"
)

type providerFixture struct {
	provider *identity.Provider
	now      time.Time
}

func newProviderFixture(t *testing.T) *providerFixture {
	t.Helper()

	db := database.NewTestDBManager(t, logger.NewNoopLogger())
	f := &providerFixture{now: time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)}

	clock := mockcore.NewMockTimeProvider(t)
	clock.EXPECT().Now().RunAndReturn(func() time.Time { return f.now }).Maybe()

	f.provider = identity.NewProvider(db.Manager.DB(), id.NewUUIDGenerator(), clock, logger.NewNoopLogger(), identity.Options{
		Issuer:            "rewards-pool",
		SessionTTL:        time.Hour,
		FederatedIssuer:   "https://idp.example",
		FederatedAudience: "rewards-pool",
		Secrets:           identity.Secrets{SessionSigningKey: sessionKey, FederatedSigningKey: federatedKey},
		BcryptCost:        bcrypt.MinCost,
	})
	return f
}

func (f *providerFixture) assertion(t *testing.T, claims jwt.MapClaims, key string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	require.NoError(t, err)
	return token
}

func TestProvider_Accounts(t *testing.T) {
	ctx := context.Background()

	t.Run("should create an account and resolve its session", func(t *testing.T) {
		// Arrange
		f := newProviderFixture(t)

		// Act
		session, err := f.provider.CreateAccount(ctx, " Jane@Example.com ", "secret123", "Jane Doe")

		// Assert
		require.NoError(t, err)
		assert.NotEmpty(t, session.UserID)
		assert.Equal(t, "jane@example.com", session.Email)
		assert.Equal(t, f.now.Add(time.Hour), session.ExpiresAt)

		resolved, err := f.provider.ResolveSession(ctx, session.Token)
		require.NoError(t, err)
		assert.Equal(t, session.UserID, resolved.UserID)
		assert.Equal(t, "Jane Doe", resolved.DisplayName)
	})

	t.Run("should reject a second account for the same email", func(t *testing.T) {
		f := newProviderFixture(t)
		_, err := f.provider.CreateAccount(ctx, "jane@example.com", "secret123", "Jane")
		require.NoError(t, err)

		_, err = f.provider.CreateAccount(ctx, "JANE@example.com", "other-secret", "Jane")

		assert.ErrorIs(t, err, errs.ErrEmailInUse)
	})

	t.Run("should sign in with the right password only", func(t *testing.T) {
		// Arrange
		f := newProviderFixture(t)
		created, err := f.provider.CreateAccount(ctx, "jane@example.com", "secret123", "Jane")
		require.NoError(t, err)

		// Act
		session, err := f.provider.SignIn(ctx, "jane@example.com", "secret123")
		require.NoError(t, err)
		_, wrongPassword := f.provider.SignIn(ctx, "jane@example.com", "nope")
		_, unknownEmail := f.provider.SignIn(ctx, "nobody@example.com", "secret123")

		// Assert
		assert.Equal(t, created.UserID, session.UserID)
		assert.ErrorIs(t, wrongPassword, errs.ErrInvalidCredentials)
		assert.ErrorIs(t, unknownEmail, errs.ErrInvalidCredentials)
	})

	t.Run("should free the email after the account is deleted", func(t *testing.T) {
		f := newProviderFixture(t)
		created, err := f.provider.CreateAccount(ctx, "jane@example.com", "secret123", "Jane")
		require.NoError(t, err)

		require.NoError(t, f.provider.DeleteAccount(ctx, created.UserID))

		_, err = f.provider.SignIn(ctx, "jane@example.com", "secret123")
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
		_, err = f.provider.CreateAccount(ctx, "jane@example.com", "secret123", "Jane")
		assert.NoError(t, err)
	})
}

func TestProvider_Sessions(t *testing.T) {
	ctx := context.Background()

	t.Run("should reject a session after sign out", func(t *testing.T) {
		// Arrange
		f := newProviderFixture(t)
		session, err := f.provider.CreateAccount(ctx, "jane@example.com", "secret123", "Jane")
		require.NoError(t, err)

		// Act
		require.NoError(t, f.provider.SignOut(ctx, session.Token))
		require.NoError(t, f.provider.SignOut(ctx, session.Token))

		// Assert
		_, err = f.provider.ResolveSession(ctx, session.Token)
		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})

	t.Run("should reject an expired session", func(t *testing.T) {
		f := newProviderFixture(t)
		session, err := f.provider.CreateAccount(ctx, "jane@example.com", "secret123", "Jane")
		require.NoError(t, err)

		f.now = f.now.Add(2 * time.Hour)

		_, err = f.provider.ResolveSession(ctx, session.Token)
		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})

	t.Run("should reject tampered and foreign tokens", func(t *testing.T) {
		f := newProviderFixture(t)
		session, err := f.provider.CreateAccount(ctx, "jane@example.com", "secret123", "Jane")
		require.NoError(t, err)

		foreign := f.assertion(t, jwt.MapClaims{
			"iss": "rewards-pool", "sub": "intruder", "jti": "x",
			"exp": f.now.Add(time.Hour).Unix(),
		}, "some-other-key-that-is-long-enough-000")

		for _, token := range []string{"", "garbage", session.Token + "x", foreign} {
			_, err := f.provider.ResolveSession(ctx, token)
			assert.ErrorIs(t, err, errs.ErrUnauthenticated)
		}
	})

	t.Run("should purge only expired revocations", func(t *testing.T) {
		// Arrange
		f := newProviderFixture(t)
		session, err := f.provider.CreateAccount(ctx, "jane@example.com", "secret123", "Jane")
		require.NoError(t, err)
		require.NoError(t, f.provider.SignOut(ctx, session.Token))

		// Act
		kept, err := f.provider.PurgeExpiredRevocations(ctx)
		require.NoError(t, err)
		f.now = f.now.Add(2 * time.Hour)
		purged, err := f.provider.PurgeExpiredRevocations(ctx)
		require.NoError(t, err)

		// Assert
		assert.Zero(t, kept)
		assert.Equal(t, int64(1), purged)
	})
}

func TestProvider_SignInFederated(t *testing.T) {
	ctx := context.Background()

	t.Run("should open a session for a valid assertion", func(t *testing.T) {
		// Arrange
		f := newProviderFixture(t)
		assertion := f.assertion(t, jwt.MapClaims{
			"iss":   "https://idp.example",
			"aud":   "rewards-pool",
			"sub":   "google-123",
			"email": "Fed@Example.com",
			"name":  "Fed User",
			"exp":   f.now.Add(5 * time.Minute).Unix(),
		}, federatedKey)

		// Act
		session, err := f.provider.SignInFederated(ctx, assertion)

		// Assert
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(session.UserID, "google-123"))
		assert.Equal(t, "fed@example.com", session.Email)
		assert.Equal(t, "Fed User", session.DisplayName)

		resolved, err := f.provider.ResolveSession(ctx, session.Token)
		require.NoError(t, err)
		assert.Equal(t, session.UserID, resolved.UserID)
	})

	t.Run("should reject invalid assertions", func(t *testing.T) {
		f := newProviderFixture(t)
		valid := jwt.MapClaims{
			"iss": "https://idp.example",
			"aud": "rewards-pool",
			"sub": "google-123",
			"exp": f.now.Add(5 * time.Minute).Unix(),
		}
		with := func(key string, value any) jwt.MapClaims {
			claims := jwt.MapClaims{}
			for k, v := range valid {
				claims[k] = v
			}
			claims[key] = value
			return claims
		}

		testCases := map[string]string{
			"wrong key":      f.assertion(t, valid, sessionKey),
			"wrong issuer":   f.assertion(t, with("iss", "https://evil.example"), federatedKey),
			"wrong audience": f.assertion(t, with("aud", "someone-else"), federatedKey),
			"expired":        f.assertion(t, with("exp", f.now.Add(-time.Minute).Unix()), federatedKey),
			"no subject":     f.assertion(t, with("sub", ""), federatedKey),
			"empty":          "",
		}

		for name, assertion := range testCases {
			t.Run(name, func(t *testing.T) {
				_, err := f.provider.SignInFederated(ctx, assertion)
				assert.ErrorIs(t, err, errs.ErrInvalidAssertion)
			})
		}
	})
}

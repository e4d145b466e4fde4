package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/rewards-pool/internal/domain/entity"
	errs "github.com/amirhossein-jamali/rewards-pool/internal/domain/error"
	"github.com/amirhossein-jamali/rewards-pool/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/rewards-pool/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/rewards-pool/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/rewards-pool/internal/infrastructure/adapter/api/middleware"
	mockidentity "github.com/amirhossein-jamali/rewards-pool/mocks/port/identity"
	mockusecase "github.com/amirhossein-jamali/rewards-pool/mocks/port/usecase"
)

func newUserRouter(t *testing.T) (*gin.Engine, *mockusecase.MockAccountUseCase, *mockidentity.MockProvider) {
	accounts := mockusecase.NewMockAccountUseCase(t)
	provider := mockidentity.NewMockProvider(t)
	h := handler.NewUserHandler(accounts, testLogger)

	router := gin.New()
	me := router.Group("/me", middleware.Authenticate(provider, testLogger))
	me.GET("/dashboard", h.GetDashboard)
	me.GET("/referrals", h.ListReferrals)
	router.POST("/admin/referral-earnings", h.CreditReferral)
	return router, accounts, provider
}

func TestUserHandler_GetDashboard(t *testing.T) {
	t.Run("should return the dashboard", func(t *testing.T) {
		// Arrange
		router, accounts, provider := newUserRouter(t)
		expectSession(provider, "user-1")
		accounts.EXPECT().GetDashboard(mock.Anything, "user-1").Return(&usecase.Dashboard{
			UserID:       "user-1",
			Greeting:     "Hi, ada",
			Balance:      "12.50",
			Points:       4200,
			ReferralCode: "ABCD1234",
			ReferralLink: "https://rewards.example.com/signup?ref=ABCD1234",
		}, nil).Once()

		// Act
		rec := performRequest(t, router, http.MethodGet, "/me/dashboard", nil, testToken)

		// Assert
		require.Equal(t, http.StatusOK, rec.Code)
		var resp dto.DashboardResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Hi, ada", resp.Greeting)
		assert.Equal(t, int64(4200), resp.Points)
		assert.NotNil(t, resp.Referrals)
	})

	t.Run("should sign out a session without a user record", func(t *testing.T) {
		// Arrange
		router, accounts, provider := newUserRouter(t)
		expectSession(provider, "ghost")
		accounts.EXPECT().GetDashboard(mock.Anything, "ghost").Return(nil, errs.ErrProfileNotFound).Once()
		accounts.EXPECT().SignOut(mock.Anything, testToken).Return(nil).Once()

		// Act
		rec := performRequest(t, router, http.MethodGet, "/me/dashboard", nil, testToken)

		// Assert
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("should reject a revoked session", func(t *testing.T) {
		// Arrange
		router, _, provider := newUserRouter(t)
		provider.EXPECT().ResolveSession(mock.Anything, testToken).Return(nil, errs.ErrUnauthenticated).Once()

		// Act
		rec := performRequest(t, router, http.MethodGet, "/me/dashboard", nil, testToken)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestUserHandler_ListReferrals(t *testing.T) {
	// Arrange
	router, accounts, provider := newUserRouter(t)
	expectSession(provider, "user-1")
	joined := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	accounts.EXPECT().ListReferralSummaries(mock.Anything, "user-1").Return([]entity.ReferralSummary{
		{Username: "bob", TotalEarned: 300, JoinedAt: joined},
	}, nil).Once()

	// Act
	rec := performRequest(t, router, http.MethodGet, "/me/referrals", nil, testToken)

	// Assert
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"username":"bob","totalEarned":300,"joinedAt":"2026-01-05T00:00:00Z"}]`, rec.Body.String())
}

func TestUserHandler_CreditReferral(t *testing.T) {
	t.Run("should credit the referrer", func(t *testing.T) {
		// Arrange
		router, accounts, _ := newUserRouter(t)
		in := usecase.ReferralCreditInput{ReferrerID: "user-1", ReferredUsername: "bob", Amount: 50}
		accounts.EXPECT().CreditReferralEarning(mock.Anything, in).Return(&entity.ReferralEarning{
			ID:               "earn-1",
			ReferrerID:       "user-1",
			ReferredUsername: "bob",
			AmountEarned:     50,
		}, nil).Once()

		// Act
		rec := performRequest(t, router, http.MethodPost, "/admin/referral-earnings",
			dto.ReferralCreditRequest{ReferrerID: "user-1", ReferredUsername: "bob", Amount: 50}, "")

		// Assert
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"amountEarned":50`)
	})

	t.Run("should reject a non-positive amount", func(t *testing.T) {
		// Arrange
		router, _, _ := newUserRouter(t)

		// Act
		rec := performRequest(t, router, http.MethodPost, "/admin/referral-earnings",
			`{"referrerId":"user-1","referredUsername":"bob","amount":-5}`, "")

		// Assert
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

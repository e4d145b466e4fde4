package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
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

func newPoolRouter(t *testing.T) (*gin.Engine, *mockusecase.MockPoolUseCase, *mockidentity.MockProvider) {
	pool := mockusecase.NewMockPoolUseCase(t)
	provider := mockidentity.NewMockProvider(t)
	h := handler.NewPoolHandler(pool, testLogger)

	router := gin.New()
	group := router.Group("/pool", middleware.Authenticate(provider, testLogger))
	group.POST("/conversions", h.SubmitConversion)
	group.GET("/conversions", h.ListConversions)
	group.GET("/status", h.GetPoolStatus)
	return router, pool, provider
}

func TestPoolHandler_SubmitConversion(t *testing.T) {
	t.Run("should return the committed request", func(t *testing.T) {
		// Arrange
		router, pool, provider := newPoolRouter(t)
		expectSession(provider, "user-1")

		now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		result := &usecase.ConversionResult{
			Request: entity.NewConversionRequest("conv-1", "user-1", 1500, decimal.RequireFromString("1.5"), now),
			User:    &entity.User{ID: "user-1", Points: 3500, PointsPendingPool: 1500},
			Pool:    &entity.PoolStatus{ConversionRate: decimal.NewFromInt(1000), TotalPointsPending: 1500},
		}
		pool.EXPECT().SubmitConversion(mock.Anything, "user-1", int64(1500)).Return(result, nil).Once()

		// Act
		rec := performRequest(t, router, http.MethodPost, "/pool/conversions", dto.ConversionSubmitRequest{Points: 1500}, testToken)

		// Assert
		require.Equal(t, http.StatusCreated, rec.Code)
		var resp dto.ConversionSubmitResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "conv-1", resp.Request.ID)
		assert.Equal(t, "1.50", resp.Request.USDEquivalent)
		assert.Equal(t, "pending", resp.Request.Status)
		assert.Equal(t, int64(3500), resp.PointsLeft)
		assert.Equal(t, int64(1500), resp.PointsPendingPool)
	})

	t.Run("should map domain rejections to 422", func(t *testing.T) {
		testCases := []struct {
			name string
			err  error
			code int
		}{
			{"below minimum", errs.NewMinimumConversionError(999, 1000), errs.CodeBelowMinimum},
			{"insufficient points", errs.NewInsufficientPointsError("user-1", 5000, 10), errs.CodeInsufficientPoints},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				// Arrange
				router, pool, provider := newPoolRouter(t)
				expectSession(provider, "user-1")
				pool.EXPECT().SubmitConversion(mock.Anything, "user-1", mock.Anything).Return(nil, tc.err).Once()

				// Act
				rec := performRequest(t, router, http.MethodPost, "/pool/conversions", dto.ConversionSubmitRequest{Points: 5000}, testToken)

				// Assert
				assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
				assert.Equal(t, tc.code, decodeError(t, rec).Code)
			})
		}
	})

	t.Run("should reject a missing token before reaching the pool", func(t *testing.T) {
		// Arrange
		router, _, _ := newPoolRouter(t)

		// Act
		rec := performRequest(t, router, http.MethodPost, "/pool/conversions", dto.ConversionSubmitRequest{Points: 1500}, "")

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("should reject malformed JSON", func(t *testing.T) {
		// Arrange
		router, _, provider := newPoolRouter(t)
		expectSession(provider, "user-1")

		// Act
		rec := performRequest(t, router, http.MethodPost, "/pool/conversions", `{"points": "lots"}`, testToken)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, errs.CodeInvalidInput, decodeError(t, rec).Code)
	})

	t.Run("should report a missing pool record as a server error", func(t *testing.T) {
		// Arrange
		router, pool, provider := newPoolRouter(t)
		expectSession(provider, "user-1")
		pool.EXPECT().SubmitConversion(mock.Anything, "user-1", int64(2000)).Return(nil, errs.ErrPoolStatusNotFound).Once()

		// Act
		rec := performRequest(t, router, http.MethodPost, "/pool/conversions", dto.ConversionSubmitRequest{Points: 2000}, testToken)

		// Assert
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, decodeError(t, rec).Message, "pool is not available")
	})
}

func TestPoolHandler_ListConversions(t *testing.T) {
	testCases := []struct {
		name  string
		query string
		limit int
	}{
		{"should default the limit", "", 20},
		{"should honor an explicit limit", "?limit=5", 5},
		{"should clamp an oversized limit", "?limit=500", 100},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			router, pool, provider := newPoolRouter(t)
			expectSession(provider, "user-1")
			pool.EXPECT().ListConversions(mock.Anything, "user-1", tc.limit).Return(nil, nil).Once()

			// Act
			rec := performRequest(t, router, http.MethodGet, "/pool/conversions"+tc.query, nil, testToken)

			// Assert
			require.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, `[]`, rec.Body.String())
		})
	}

	t.Run("should reject a non-numeric limit", func(t *testing.T) {
		// Arrange
		router, _, provider := newPoolRouter(t)
		expectSession(provider, "user-1")

		// Act
		rec := performRequest(t, router, http.MethodGet, "/pool/conversions?limit=abc", nil, testToken)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPoolHandler_GetPoolStatus(t *testing.T) {
	// Arrange
	router, pool, provider := newPoolRouter(t)
	expectSession(provider, "user-1")
	pool.EXPECT().GetPoolStatus(mock.Anything).Return(&entity.PoolStatus{
		ConversionRate:     decimal.NewFromInt(1000),
		TotalPointsPending: 4800,
		CurrentPoolCents:   125050,
	}, nil).Once()

	// Act
	rec := performRequest(t, router, http.MethodGet, "/pool/status", nil, testToken)

	// Assert
	require.Equal(t, http.StatusOK, rec.Code)
	var resp dto.PoolStatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "1000", resp.ConversionRate)
	assert.Equal(t, int64(4800), resp.TotalPointsPending)
	assert.Equal(t, "1250.50", resp.CurrentPool)
	assert.Nil(t, resp.NextSettlementAt)
}

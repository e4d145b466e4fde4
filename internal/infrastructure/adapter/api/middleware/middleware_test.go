package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/rewards-pool/internal/domain/entity"
	errs "github.com/amirhossein-jamali/rewards-pool/internal/domain/error"
	"github.com/amirhossein-jamali/rewards-pool/internal/domain/port/core"
	"github.com/amirhossein-jamali/rewards-pool/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/rewards-pool/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/rewards-pool/internal/infrastructure/adapter/logger"
	mockcore "github.com/amirhossein-jamali/rewards-pool/mocks/port/core"
	mockidentity "github.com/amirhossein-jamali/rewards-pool/mocks/port/identity"
	mockusecase "github.com/amirhossein-jamali/rewards-pool/mocks/port/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRequestID(t *testing.T) {
	newRouter := func(seen *string) *gin.Engine {
		router := gin.New()
		router.Use(middleware.RequestID())
		router.GET("/", func(c *gin.Context) {
			*seen = logger.RequestIDFromContext(c.Request.Context())
			c.Status(http.StatusOK)
		})
		return router
	}

	t.Run("should reuse the caller's request id", func(t *testing.T) {
		// Arrange
		var seen string
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.RequestIDHeader, "abc-123")

		// Act
		rec := serve(newRouter(&seen), req)

		// Assert
		assert.Equal(t, "abc-123", seen)
		assert.Equal(t, "abc-123", rec.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("should issue an id when missing or oversized", func(t *testing.T) {
		for _, header := range []string{"", strings.Repeat("x", 65)} {
			// Arrange
			var seen string
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if header != "" {
				req.Header.Set(middleware.RequestIDHeader, header)
			}

			// Act
			rec := serve(newRouter(&seen), req)

			// Assert
			assert.Len(t, seen, 36)
			assert.Equal(t, seen, rec.Header().Get(middleware.RequestIDHeader))
		}
	})
}

func TestErrorHandler(t *testing.T) {
	t.Run("should turn a panic into a 500", func(t *testing.T) {
		// Arrange
		log := mockcore.NewMockLogger(t)
		log.EXPECT().Error("Panic recovered in API request", mock.MatchedBy(func(fields map[string]any) bool {
			return fields["error"] == "boom" && fields["path"] == "/explode"
		})).Once()

		router := gin.New()
		router.Use(middleware.ErrorHandler(log))
		router.GET("/explode", func(*gin.Context) { panic("boom") })

		// Act
		rec := serve(router, httptest.NewRequest(http.MethodGet, "/explode", nil))

		// Assert
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"code":5000,"message":"Internal server error"}`, rec.Body.String())
	})
}

func TestLogger(t *testing.T) {
	start := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	newRouter := func(t *testing.T, log *mockcore.MockLogger, status int) *gin.Engine {
		clock := mockcore.NewMockTimeProvider(t)
		clock.EXPECT().Now().Return(start).Once()
		clock.EXPECT().Since(start).Return(core.Duration(42 * time.Millisecond)).Once()

		provider := mockidentity.NewMockProvider(t)
		provider.EXPECT().ResolveSession(mock.Anything, "tok").Return(&entity.Session{UserID: "user-1"}, nil).Maybe()

		router := gin.New()
		router.Use(middleware.RequestID(), middleware.Logger(log, clock), middleware.OptionalAuthenticate(provider))
		router.GET("/things/:id", func(c *gin.Context) { c.Status(status) })
		return router
	}

	t.Run("should log the route, latency and user", func(t *testing.T) {
		// Arrange
		log := mockcore.NewMockLogger(t)
		log.EXPECT().Info("Request processed", mock.MatchedBy(func(fields map[string]any) bool {
			return fields["route"] == "/things/:id" &&
				fields["latency_ms"] == int64(42) &&
				fields["user_id"] == "user-1" &&
				fields["request_id"] == "req-1" &&
				fields["status"] == http.StatusOK
		})).Once()

		req := httptest.NewRequest(http.MethodGet, "/things/7", nil)
		req.Header.Set("Authorization", "Bearer tok")
		req.Header.Set(middleware.RequestIDHeader, "req-1")

		// Act
		rec := serve(newRouter(t, log, http.StatusOK), req)

		// Assert
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("should warn on server errors", func(t *testing.T) {
		// Arrange
		log := mockcore.NewMockLogger(t)
		log.EXPECT().Warn("Request processed", mock.Anything).Once()

		// Act
		rec := serve(newRouter(t, log, http.StatusServiceUnavailable), httptest.NewRequest(http.MethodGet, "/things/7", nil))

		// Assert
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestCORS(t *testing.T) {
	t.Run("should answer preflight for an allowed origin", func(t *testing.T) {
		// Arrange
		router := gin.New()
		router.Use(middleware.CORS([]string{"https://app.example.com"}))
		router.POST("/pool/conversions", func(c *gin.Context) { c.Status(http.StatusCreated) })

		req := httptest.NewRequest(http.MethodOptions, "/pool/conversions", nil)
		req.Header.Set("Origin", "https://app.example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		req.Header.Set("Access-Control-Request-Headers", "Authorization")

		// Act
		rec := serve(router, req)

		// Assert
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("should refuse an unknown origin", func(t *testing.T) {
		// Arrange
		router := gin.New()
		router.Use(middleware.CORS([]string{"https://app.example.com"}))
		router.GET("/articles", func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest(http.MethodGet, "/articles", nil)
		req.Header.Set("Origin", "https://evil.example.com")

		// Act
		rec := serve(router, req)

		// Assert
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestAuthenticate(t *testing.T) {
	testCases := []struct {
		name   string
		header string
		token  string
		err    error
		status int
	}{
		{"should accept a valid bearer token", "Bearer good", "good", nil, http.StatusOK},
		{"should accept a lowercase scheme", "bearer good", "good", nil, http.StatusOK},
		{"should reject a revoked token", "Bearer revoked", "revoked", errs.ErrUnauthenticated, http.StatusUnauthorized},
		{"should reject a missing token", "", "", nil, http.StatusUnauthorized},
		{"should reject another scheme", "Basic Zm9vOmJhcg==", "", nil, http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			provider := mockidentity.NewMockProvider(t)
			if tc.token != "" {
				var session *entity.Session
				if tc.err == nil {
					session = &entity.Session{UserID: "user-1", Token: tc.token}
				}
				provider.EXPECT().ResolveSession(mock.Anything, tc.token).Return(session, tc.err).Once()
			}

			router := gin.New()
			router.GET("/me", middleware.Authenticate(provider, logger.NewNoopLogger()), func(c *gin.Context) {
				session, ok := middleware.SessionFromContext(c)
				require.True(t, ok)
				c.String(http.StatusOK, session.UserID)
			})

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}

			// Act
			rec := serve(router, req)

			// Assert
			assert.Equal(t, tc.status, rec.Code)
		})
	}
}

func TestAuthenticate_HidesTokenParserDetails(t *testing.T) {
	// Arrange
	provider := mockidentity.NewMockProvider(t)
	parserErr := errors.New("token has invalid claims: token is expired")
	provider.EXPECT().ResolveSession(mock.Anything, "stale").
		Return(nil, errors.Join(errs.ErrUnauthenticated, parserErr)).
		Once()

	router := gin.New()
	router.GET("/me", middleware.Authenticate(provider, logger.NewNoopLogger()), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer stale")

	// Act
	rec := serve(router, req)

	// Assert
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, errs.ErrUnauthenticated.Error(), body.Message)
	assert.NotContains(t, rec.Body.String(), "expired")
}

func TestRequireRole(t *testing.T) {
	newRouter := func(t *testing.T, user *entity.User, err error) *gin.Engine {
		provider := mockidentity.NewMockProvider(t)
		provider.EXPECT().ResolveSession(mock.Anything, "tok").Return(&entity.Session{UserID: "user-1"}, nil).Once()

		access := mockusecase.NewMockAccessUseCase(t)
		access.EXPECT().RequireRole(mock.Anything, "user-1", entity.RoleAdmin).Return(user, err).Once()

		noop := logger.NewNoopLogger()
		router := gin.New()
		router.GET("/admin/pool",
			middleware.Authenticate(provider, noop),
			middleware.RequireRole(access, noop, entity.RoleAdmin),
			func(c *gin.Context) {
				user, ok := middleware.UserFromContext(c)
				require.True(t, ok)
				c.String(http.StatusOK, string(user.Role))
			})
		return router
	}

	t.Run("should let an admin through", func(t *testing.T) {
		// Arrange
		router := newRouter(t, &entity.User{ID: "user-1", Role: entity.RoleAdmin}, nil)
		req := httptest.NewRequest(http.MethodGet, "/admin/pool", nil)
		req.Header.Set("Authorization", "Bearer tok")

		// Act
		rec := serve(router, req)

		// Assert
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "admin", rec.Body.String())
	})

	t.Run("should forbid other roles", func(t *testing.T) {
		// Arrange
		router := newRouter(t, nil, errs.ErrForbidden)
		req := httptest.NewRequest(http.MethodGet, "/admin/pool", nil)
		req.Header.Set("Authorization", "Bearer tok")

		// Act
		rec := serve(router, req)

		// Assert
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

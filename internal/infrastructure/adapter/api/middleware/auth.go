package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/rewards-pool/internal/domain/entity"
	errs "github.com/amirhossein-jamali/rewards-pool/internal/domain/error"
	coreport "github.com/amirhossein-jamali/rewards-pool/internal/domain/port/core"
	"github.com/amirhossein-jamali/rewards-pool/internal/domain/port/identity"
	"github.com/amirhossein-jamali/rewards-pool/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/rewards-pool/internal/infrastructure/adapter/api/response"
)

// Context keys
const (
	sessionKey = "session"
	userKey    = "user"
)

// BearerToken extracts the token from the Authorization header
func BearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if len(header) < 7 || !strings.EqualFold(header[:7], "Bearer ") {
		return ""
	}
	return strings.TrimSpace(header[7:])
}

// Authenticate requires a valid session and stores it in the context
func Authenticate(provider identity.Provider, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		if token == "" {
			response.Error(c, logger, errs.ErrUnauthenticated)
			return
		}

		session, err := provider.ResolveSession(c.Request.Context(), token)
		if err != nil {
			response.Error(c, logger, err)
			return
		}

		c.Set(sessionKey, session)
		c.Next()
	}
}

// OptionalAuthenticate stores the session when a valid token is present and continues either way
func OptionalAuthenticate(provider identity.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := BearerToken(c); token != "" {
			if session, err := provider.ResolveSession(c.Request.Context(), token); err == nil {
				c.Set(sessionKey, session)
			}
		}
		c.Next()
	}
}

// RequireRole loads the signed-in user and allows only the given roles. Must run after Authenticate.
func RequireRole(access usecase.AccessUseCase, logger coreport.Logger, roles ...entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := SessionFromContext(c)
		if !ok {
			response.Error(c, logger, errs.ErrUnauthenticated)
			return
		}

		user, err := access.RequireRole(c.Request.Context(), session.UserID, roles...)
		if err != nil {
			response.Error(c, logger, err)
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// SessionFromContext returns the session stored by Authenticate
func SessionFromContext(c *gin.Context) (*entity.Session, bool) {
	value, ok := c.Get(sessionKey)
	if !ok {
		return nil, false
	}
	session, ok := value.(*entity.Session)
	return session, ok && session != nil
}

// UserFromContext returns the user stored by RequireRole
func UserFromContext(c *gin.Context) (*entity.User, bool) {
	value, ok := c.Get(userKey)
	if !ok {
		return nil, false
	}
	user, ok := value.(*entity.User)
	return user, ok && user != nil
}

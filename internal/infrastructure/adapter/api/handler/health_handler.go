package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/rewards-pool/internal/domain/port/core"
	"github.com/amirhossein-jamali/rewards-pool/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/rewards-pool/internal/infrastructure/adapter/database"
)

// HealthChecker reports the database connection pool state
type HealthChecker interface {
	Health(ctx context.Context) (database.ConnectionPoolMetrics, error)
}

// HealthHandler serves the liveness endpoint
type HealthHandler struct {
	checker HealthChecker
	logger  coreport.Logger
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(checker HealthChecker, logger coreport.Logger) *HealthHandler {
	return &HealthHandler{checker: checker, logger: logger}
}

// Health handles GET /health
//
//	@Summary	Service health
//	@Tags		system
//	@Produce	json
//	@Success	200	{object}	dto.HealthResponse
//	@Failure	503	{object}	dto.HealthResponse
//	@Router		/health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	metrics, err := h.checker.Health(c.Request.Context())
	if err != nil {
		h.logger.Error("Health check failed", map[string]any{"error": err.Error()})
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "unavailable"})
		return
	}
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", Database: metrics})
}

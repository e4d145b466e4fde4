package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	errs "github.com/amirhossein-jamali/rewards-pool/internal/domain/error"
	coreport "github.com/amirhossein-jamali/rewards-pool/internal/domain/port/core"
	"github.com/amirhossein-jamali/rewards-pool/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/rewards-pool/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/rewards-pool/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/rewards-pool/internal/infrastructure/adapter/api/response"
)

// PoolHandler handles conversion submissions of the signed-in user
type PoolHandler struct {
	pool   usecase.PoolUseCase
	logger coreport.Logger
}

// NewPoolHandler creates a new pool handler instance
func NewPoolHandler(pool usecase.PoolUseCase, logger coreport.Logger) *PoolHandler {
	return &PoolHandler{pool: pool, logger: logger}
}

// SubmitConversion handles POST /pool/conversions
//
//	@Summary	Convert points into a pending pool request
//	@Tags		pool
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		dto.ConversionSubmitRequest	true	"Points to convert"
//	@Success	201		{object}	dto.ConversionSubmitResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	422		{object}	dto.ErrorResponse
//	@Router		/pool/conversions [post]
func (h *PoolHandler) SubmitConversion(c *gin.Context) {
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		response.Error(c, h.logger, errs.ErrUnauthenticated)
		return
	}

	var req dto.ConversionSubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.pool.SubmitConversion(c.Request.Context(), session.UserID, req.Points)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewConversionSubmitResponse(result))
}

// ListConversions handles GET /pool/conversions?limit=<n>
//
//	@Summary	Most recent conversion requests of the signed-in user
//	@Tags		pool
//	@Produce	json
//	@Security	BearerAuth
//	@Param		limit	query	int	false	"Maximum number of requests"
//	@Success	200		{array}	dto.ConversionResponse
//	@Router		/pool/conversions [get]
func (h *PoolHandler) ListConversions(c *gin.Context) {
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		response.Error(c, h.logger, errs.ErrUnauthenticated)
		return
	}

	limit, err := parseLimit(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	requests, err := h.pool.ListConversions(c.Request.Context(), session.UserID, limit)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewConversionList(requests))
}

// GetPoolStatus handles GET /pool/status
//
//	@Summary	Current pool aggregates
//	@Tags		pool
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	dto.PoolStatusResponse
//	@Router		/pool/status [get]
func (h *PoolHandler) GetPoolStatus(c *gin.Context) {
	status, err := h.pool.GetPoolStatus(c.Request.Context())
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPoolStatusResponse(status))
}

// parseLimit reads the optional limit query parameter
func parseLimit(c *gin.Context) (int, error) {
	raw := c.Query("limit")
	if raw == "" {
		return usecase.DefaultListLimit, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return 0, errs.NewFieldError("limit", "must be a positive integer")
	}
	if limit > usecase.MaxListLimit {
		limit = usecase.MaxListLimit
	}
	return limit, nil
}

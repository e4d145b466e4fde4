package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/rewards-pool/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/rewards-pool/internal/domain/port/core"
	"github.com/amirhossein-jamali/rewards-pool/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/rewards-pool/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/rewards-pool/internal/infrastructure/adapter/api/response"
)

// SettlementHandler is the admin control surface over the pool
type SettlementHandler struct {
	settlement usecase.SettlementUseCase
	logger     coreport.Logger
}

// NewSettlementHandler creates a new settlement handler instance
func NewSettlementHandler(settlement usecase.SettlementUseCase, logger coreport.Logger) *SettlementHandler {
	return &SettlementHandler{settlement: settlement, logger: logger}
}

// GetPoolStatus handles GET /admin/pool
//
//	@Summary	Pool aggregates for administrators
//	@Tags		admin
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	dto.PoolStatusResponse
//	@Router		/admin/pool [get]
func (h *SettlementHandler) GetPoolStatus(c *gin.Context) {
	status, err := h.settlement.GetPoolStatus(c.Request.Context())
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPoolStatusResponse(status))
}

// SetNextSettlementTime handles PUT /admin/pool/settlement
//
//	@Summary	Schedule the next settlement
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		dto.SettlementTimeRequest	true	"Settlement time"
//	@Success	200		{object}	dto.PoolStatusResponse
//	@Router		/admin/pool/settlement [put]
func (h *SettlementHandler) SetNextSettlementTime(c *gin.Context) {
	var req dto.SettlementTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	status, err := h.settlement.SetNextSettlementTime(c.Request.Context(), req.NextSettlementAt)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPoolStatusResponse(status))
}

// SetConversionRate handles PUT /admin/pool/rate
//
//	@Summary	Replace the conversion rate
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		dto.ConversionRateRequest	true	"Points per currency unit"
//	@Success	200		{object}	dto.PoolStatusResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Router		/admin/pool/rate [put]
func (h *SettlementHandler) SetConversionRate(c *gin.Context) {
	var req dto.ConversionRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	rate, err := entity.ParseConversionRate(req.Rate)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	status, err := h.settlement.SetConversionRate(c.Request.Context(), rate)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPoolStatusResponse(status))
}

// ListPendingConversions handles GET /admin/pool/pending?limit=<n>
//
//	@Summary	Pending conversion requests, oldest first
//	@Tags		admin
//	@Produce	json
//	@Security	BearerAuth
//	@Param		limit	query	int	false	"Maximum number of requests"
//	@Success	200		{array}	dto.ConversionResponse
//	@Router		/admin/pool/pending [get]
func (h *SettlementHandler) ListPendingConversions(c *gin.Context) {
	limit, err := parseLimit(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	requests, err := h.settlement.ListPendingConversions(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewConversionList(requests))
}

// TriggerSettlement handles POST /admin/pool/settle
//
//	@Summary	Run a settlement
//	@Tags		admin
//	@Security	BearerAuth
//	@Failure	501	{object}	dto.ErrorResponse
//	@Router		/admin/pool/settle [post]
func (h *SettlementHandler) TriggerSettlement(c *gin.Context) {
	if err := h.settlement.TriggerSettlement(c.Request.Context()); err != nil {
		response.Error(c, h.logger, err)
		return
	}
	c.Status(http.StatusAccepted)
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/rewards-pool/internal/domain/entity"
	"github.com/amirhossein-jamali/rewards-pool/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/rewards-pool/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/rewards-pool/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/rewards-pool/internal/infrastructure/adapter/api/response"
)

// AccessHandler answers page access checks for the browser client
type AccessHandler struct {
	access usecase.AccessUseCase
}

// NewAccessHandler creates a new access handler instance
func NewAccessHandler(access usecase.AccessUseCase) *AccessHandler {
	return &AccessHandler{access: access}
}

// Check handles GET /access?page=<page>
//
//	@Summary	Decide whether the caller may view a page
//	@Tags		access
//	@Produce	json
//	@Param		page	query		string	true	"Page name"
//	@Success	200		{object}	dto.AccessResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Router		/access [get]
func (h *AccessHandler) Check(c *gin.Context) {
	page, ok := entity.ParsePage(c.Query("page"))
	if !ok {
		response.BadRequest(c, "unknown page")
		return
	}

	var session *entity.Session
	if s, found := middleware.SessionFromContext(c); found {
		session = s
	}

	decision := h.access.Authorize(c.Request.Context(), session, page)
	c.JSON(http.StatusOK, dto.NewAccessResponse(decision))
}

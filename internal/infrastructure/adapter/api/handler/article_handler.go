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

// ArticleHandler serves the CMS for editors and published articles for readers
type ArticleHandler struct {
	content usecase.ContentUseCase
	logger  coreport.Logger
}

// NewArticleHandler creates a new article handler instance
func NewArticleHandler(content usecase.ContentUseCase, logger coreport.Logger) *ArticleHandler {
	return &ArticleHandler{content: content, logger: logger}
}

// List handles GET /admin/articles
//
//	@Summary	All articles, newest first
//	@Tags		cms
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}	dto.ArticleResponse
//	@Router		/admin/articles [get]
func (h *ArticleHandler) List(c *gin.Context) {
	articles, err := h.content.List(c.Request.Context())
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewArticleList(articles))
}

// Get handles GET /admin/articles/:id
//
//	@Summary	One article with its body
//	@Tags		cms
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Article ID"
//	@Success	200	{object}	dto.ArticleResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/admin/articles/{id} [get]
func (h *ArticleHandler) Get(c *gin.Context) {
	article, err := h.content.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewArticleResponse(article, true))
}

// Create handles POST /admin/articles
//
//	@Summary	Create an article
//	@Tags		cms
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		dto.ArticleRequest	true	"Article"
//	@Success	201		{object}	dto.ArticleResponse
//	@Failure	409		{object}	dto.ErrorResponse
//	@Router		/admin/articles [post]
func (h *ArticleHandler) Create(c *gin.Context) {
	author, ok := authorFromContext(c)
	if !ok {
		response.Error(c, h.logger, errs.ErrUnauthenticated)
		return
	}

	var req dto.ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	session := h.content.NewSession(author)
	article, err := h.content.Save(c.Request.Context(), session, req.ToInput())
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewArticleResponse(article, true))
}

// Update handles PUT /admin/articles/:id
//
//	@Summary	Update an article
//	@Tags		cms
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string				true	"Article ID"
//	@Param		request	body		dto.ArticleRequest	true	"Article"
//	@Success	200		{object}	dto.ArticleResponse
//	@Failure	404		{object}	dto.ErrorResponse
//	@Router		/admin/articles/{id} [put]
func (h *ArticleHandler) Update(c *gin.Context) {
	author, ok := authorFromContext(c)
	if !ok {
		response.Error(c, h.logger, errs.ErrUnauthenticated)
		return
	}

	var req dto.ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	session, _, err := h.content.OpenForEdit(c.Request.Context(), author, c.Param("id"))
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	article, err := h.content.Save(c.Request.Context(), session, req.ToInput())
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewArticleResponse(article, true))
}

// Delete handles DELETE /admin/articles/:id?confirm=true
//
//	@Summary	Delete an article
//	@Tags		cms
//	@Security	BearerAuth
//	@Param		id		path	string	true	"Article ID"
//	@Param		confirm	query	bool	true	"Must be true"
//	@Success	204
//	@Failure	400	{object}	dto.ErrorResponse
//	@Router		/admin/articles/{id} [delete]
func (h *ArticleHandler) Delete(c *gin.Context) {
	confirmed, _ := strconv.ParseBool(c.Query("confirm"))

	if err := h.content.Delete(c.Request.Context(), c.Param("id"), confirmed); err != nil {
		response.Error(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListPublished handles GET /articles
//
//	@Summary	Published articles
//	@Tags		learning
//	@Produce	json
//	@Success	200	{array}	dto.ArticleResponse
//	@Router		/articles [get]
func (h *ArticleHandler) ListPublished(c *gin.Context) {
	articles, err := h.content.ListPublished(c.Request.Context())
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewArticleList(articles))
}

// GetPublished handles GET /articles/:slug
//
//	@Summary	One published article
//	@Tags		learning
//	@Produce	json
//	@Param		slug	path		string	true	"Article slug"
//	@Success	200		{object}	dto.ArticleResponse
//	@Failure	404		{object}	dto.ErrorResponse
//	@Router		/articles/{slug} [get]
func (h *ArticleHandler) GetPublished(c *gin.Context) {
	article, err := h.content.GetPublishedBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewArticleResponse(article, true))
}

func authorFromContext(c *gin.Context) (usecase.Author, bool) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		return usecase.Author{}, false
	}
	return usecase.Author{ID: user.ID, Name: user.DisplayName()}, true
}

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

type articleFixture struct {
	router   *gin.Engine
	content  *mockusecase.MockContentUseCase
	access   *mockusecase.MockAccessUseCase
	provider *mockidentity.MockProvider
}

func newArticleFixture(t *testing.T) *articleFixture {
	f := &articleFixture{
		content:  mockusecase.NewMockContentUseCase(t),
		access:   mockusecase.NewMockAccessUseCase(t),
		provider: mockidentity.NewMockProvider(t),
	}
	h := handler.NewArticleHandler(f.content, testLogger)

	f.router = gin.New()
	f.router.GET("/articles", h.ListPublished)
	f.router.GET("/articles/:slug", h.GetPublished)

	cms := f.router.Group("/admin",
		middleware.Authenticate(f.provider, testLogger),
		middleware.RequireRole(f.access, testLogger, entity.RoleAdmin, entity.RoleAuthor),
	)
	cms.GET("/articles", h.List)
	cms.GET("/articles/:id", h.Get)
	cms.POST("/articles", h.Create)
	cms.PUT("/articles/:id", h.Update)
	cms.DELETE("/articles/:id", h.Delete)
	return f
}

// signInAs resolves testToken to an editor with the given role
func (f *articleFixture) signInAs(role entity.Role) {
	expectSession(f.provider, "editor-1")
	call := f.access.EXPECT().RequireRole(mock.Anything, "editor-1", entity.RoleAdmin, entity.RoleAuthor).Maybe()
	if role == entity.RoleAdmin || role == entity.RoleAuthor {
		call.Return(&entity.User{ID: "editor-1", Username: "ada", Role: role}, nil)
		return
	}
	call.Return(nil, errs.ErrForbidden)
}

func sampleArticle(status entity.ArticleStatus) *entity.Article {
	now := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	return &entity.Article{
		ID:         "art-1",
		Title:      "Staking 101",
		Category:   "basics",
		Slug:       "staking-101",
		Body:       "<p>hello</p>",
		AuthorID:   "editor-1",
		AuthorName: "ada",
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestArticleHandler_Create(t *testing.T) {
	t.Run("should save through a new editor session", func(t *testing.T) {
		// Arrange
		f := newArticleFixture(t)
		f.signInAs(entity.RoleAuthor)

		session := &usecase.EditorSession{Author: usecase.Author{ID: "editor-1", Name: "ada"}}
		f.content.EXPECT().NewSession(usecase.Author{ID: "editor-1", Name: "ada"}).Return(session).Once()
		f.content.EXPECT().
			Save(mock.Anything, session, usecase.ArticleInput{Title: "Staking 101", Slug: "staking-101", Status: "draft"}).
			Return(sampleArticle(entity.ArticleDraft), nil).
			Once()

		// Act
		rec := performRequest(t, f.router, http.MethodPost, "/admin/articles",
			dto.ArticleRequest{Title: "Staking 101", Slug: "staking-101", Status: "draft"}, testToken)

		// Assert
		require.Equal(t, http.StatusCreated, rec.Code)
		var resp dto.ArticleResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "art-1", resp.ID)
		assert.Equal(t, "<p>hello</p>", resp.Body)
		assert.Equal(t, "ada", resp.AuthorName)
	})

	t.Run("should report a taken slug as a conflict", func(t *testing.T) {
		// Arrange
		f := newArticleFixture(t)
		f.signInAs(entity.RoleAdmin)
		session := &usecase.EditorSession{}
		f.content.EXPECT().NewSession(mock.Anything).Return(session).Once()
		f.content.EXPECT().Save(mock.Anything, session, mock.Anything).Return(nil, errs.ErrSlugTaken).Once()

		// Act
		rec := performRequest(t, f.router, http.MethodPost, "/admin/articles", dto.ArticleRequest{Title: "Dup"}, testToken)

		// Assert
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("should forbid regular users", func(t *testing.T) {
		// Arrange
		f := newArticleFixture(t)
		f.signInAs(entity.RoleUser)

		// Act
		rec := performRequest(t, f.router, http.MethodPost, "/admin/articles", dto.ArticleRequest{Title: "Nope"}, testToken)

		// Assert
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestArticleHandler_Update(t *testing.T) {
	t.Run("should save through the opened session", func(t *testing.T) {
		// Arrange
		f := newArticleFixture(t)
		f.signInAs(entity.RoleAdmin)

		session := &usecase.EditorSession{ArticleID: "art-1", Author: usecase.Author{ID: "editor-1", Name: "ada"}}
		f.content.EXPECT().OpenForEdit(mock.Anything, session.Author, "art-1").Return(session, sampleArticle(entity.ArticleDraft), nil).Once()
		f.content.EXPECT().Save(mock.Anything, session, mock.Anything).Return(sampleArticle(entity.ArticlePublished), nil).Once()

		// Act
		rec := performRequest(t, f.router, http.MethodPut, "/admin/articles/art-1",
			dto.ArticleRequest{Title: "Staking 101", Status: "published"}, testToken)

		// Assert
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"published"`)
	})

	t.Run("should answer not found for an unknown article", func(t *testing.T) {
		// Arrange
		f := newArticleFixture(t)
		f.signInAs(entity.RoleAdmin)
		f.content.EXPECT().OpenForEdit(mock.Anything, mock.Anything, "missing").Return(nil, nil, errs.ErrArticleNotFound).Once()

		// Act
		rec := performRequest(t, f.router, http.MethodPut, "/admin/articles/missing", dto.ArticleRequest{Title: "x"}, testToken)

		// Assert
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestArticleHandler_Delete(t *testing.T) {
	testCases := []struct {
		name      string
		query     string
		confirmed bool
		err       error
		status    int
	}{
		{"should delete when confirmed", "?confirm=true", true, nil, http.StatusNoContent},
		{"should refuse without confirmation", "", false, errs.ErrDeletionNotConfirmed, http.StatusBadRequest},
		{"should treat garbage as unconfirmed", "?confirm=maybe", false, errs.ErrDeletionNotConfirmed, http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			f := newArticleFixture(t)
			f.signInAs(entity.RoleAdmin)
			f.content.EXPECT().Delete(mock.Anything, "art-1", tc.confirmed).Return(tc.err).Once()

			// Act
			rec := performRequest(t, f.router, http.MethodDelete, "/admin/articles/art-1"+tc.query, nil, testToken)

			// Assert
			assert.Equal(t, tc.status, rec.Code)
		})
	}
}

func TestArticleHandler_Public(t *testing.T) {
	t.Run("should list published articles without bodies", func(t *testing.T) {
		// Arrange
		f := newArticleFixture(t)
		f.content.EXPECT().ListPublished(mock.Anything).Return([]*entity.Article{sampleArticle(entity.ArticlePublished)}, nil).Once()

		// Act
		rec := performRequest(t, f.router, http.MethodGet, "/articles", nil, "")

		// Assert
		require.Equal(t, http.StatusOK, rec.Code)
		var resp []dto.ArticleResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp, 1)
		assert.Empty(t, resp[0].Body)
	})

	t.Run("should hide unpublished articles", func(t *testing.T) {
		// Arrange
		f := newArticleFixture(t)
		f.content.EXPECT().GetPublishedBySlug(mock.Anything, "draft-post").Return(nil, errs.ErrArticleNotFound).Once()

		// Act
		rec := performRequest(t, f.router, http.MethodGet, "/articles/draft-post", nil, "")

		// Assert
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

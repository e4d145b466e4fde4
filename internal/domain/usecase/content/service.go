package content

import (
	"context"
	"strings"
	"time"

	"github.com/amirhossein-jamali/rewards-pool/internal/domain/entity"
	errs "github.com/amirhossein-jamali/rewards-pool/internal/domain/error"
	coreport "github.com/amirhossein-jamali/rewards-pool/internal/domain/port/core"
	"github.com/amirhossein-jamali/rewards-pool/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/rewards-pool/internal/domain/port/usecase"
)

// Service implements CRUD over CMS articles
type Service struct {
	articles     persistence.ArticleRepository
	ids          coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ usecase.ContentUseCase = (*Service)(nil)

// NewService creates a new content service
func NewService(
	articles persistence.ArticleRepository,
	ids coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		articles:     articles,
		ids:          ids,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// NewSession starts an editor session for a new article
func (s *Service) NewSession(author usecase.Author) *usecase.EditorSession {
	return &usecase.EditorSession{Author: author}
}

// OpenForEdit loads an article and binds an editor session to it
func (s *Service) OpenForEdit(ctx context.Context, author usecase.Author, articleID string) (*usecase.EditorSession, *entity.Article, error) {
	article, err := s.articles.GetByID(ctx, articleID)
	if err != nil {
		return nil, nil, err
	}
	return &usecase.EditorSession{ArticleID: article.ID, Author: author}, article, nil
}

// Save creates the article when the session has none, and updates it otherwise
func (s *Service) Save(ctx context.Context, session *usecase.EditorSession, in usecase.ArticleInput) (*entity.Article, error) {
	if session == nil {
		return nil, errs.NewFieldError("session", "is required")
	}

	fields, err := normalizeInput(in)
	if err != nil {
		return nil, err
	}

	taken, err := s.articles.SlugExists(ctx, fields.Slug, session.ArticleID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errs.ErrSlugTaken
	}

	now := s.timeProvider.Now()
	if session.ArticleID == "" {
		return s.create(ctx, session, fields, now)
	}
	return s.update(ctx, session, fields, now)
}

func (s *Service) create(ctx context.Context, session *usecase.EditorSession, fields entity.Article, now time.Time) (*entity.Article, error) {
	article := fields
	article.ID = s.ids.NewID()
	article.AuthorID = session.Author.ID
	article.AuthorName = session.Author.Name
	article.CreatedAt = now
	article.UpdatedAt = now

	if err := s.articles.Create(ctx, &article); err != nil {
		s.logger.Error("Failed to create article", map[string]any{"slug": article.Slug, "error": err.Error()})
		return nil, err
	}

	session.ArticleID = article.ID
	s.logger.Info("Article created", map[string]any{
		"article_id": article.ID,
		"slug":       article.Slug,
		"author_id":  article.AuthorID,
		"status":     string(article.Status),
	})
	return &article, nil
}

func (s *Service) update(ctx context.Context, session *usecase.EditorSession, fields entity.Article, now time.Time) (*entity.Article, error) {
	article, err := s.articles.GetByID(ctx, session.ArticleID)
	if err != nil {
		return nil, err
	}

	article.Title = fields.Title
	article.Category = fields.Category
	article.Slug = fields.Slug
	article.Body = fields.Body
	article.Status = fields.Status
	article.UpdatedAt = now

	if err := s.articles.Update(ctx, article); err != nil {
		s.logger.Error("Failed to update article", map[string]any{"article_id": article.ID, "error": err.Error()})
		return nil, err
	}

	s.logger.Info("Article updated", map[string]any{
		"article_id": article.ID,
		"slug":       article.Slug,
		"editor_id":  session.Author.ID,
		"status":     string(article.Status),
	})
	return article, nil
}

// Delete removes an article once the caller confirmed it
func (s *Service) Delete(ctx context.Context, articleID string, confirmed bool) error {
	if !confirmed {
		return errs.ErrDeletionNotConfirmed
	}
	if err := s.articles.Delete(ctx, articleID); err != nil {
		return err
	}
	s.logger.Info("Article deleted", map[string]any{"article_id": articleID})
	return nil
}

// List returns every article, newest first
func (s *Service) List(ctx context.Context) ([]*entity.Article, error) {
	return s.articles.List(ctx, false)
}

// Get returns any article by id
func (s *Service) Get(ctx context.Context, articleID string) (*entity.Article, error) {
	return s.articles.GetByID(ctx, articleID)
}

// ListPublished returns published articles, newest first
func (s *Service) ListPublished(ctx context.Context) ([]*entity.Article, error) {
	return s.articles.List(ctx, true)
}

// GetPublishedBySlug hides drafts behind ErrArticleNotFound
func (s *Service) GetPublishedBySlug(ctx context.Context, slug string) (*entity.Article, error) {
	article, err := s.articles.GetBySlug(ctx, entity.NormalizeSlug(slug))
	if err != nil {
		return nil, err
	}
	if !article.IsPublished() {
		return nil, errs.ErrArticleNotFound
	}
	return article, nil
}

// normalizeInput validates the form and returns the editable fields as an article
func normalizeInput(in usecase.ArticleInput) (entity.Article, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return entity.Article{}, errs.NewFieldError("title", "is required")
	}

	slug := entity.NormalizeSlug(in.Slug)
	if slug == "" {
		slug = entity.NormalizeSlug(title)
	}
	if slug == "" {
		return entity.Article{}, errs.NewFieldError("slug", "must contain letters or digits")
	}

	status, err := entity.ParseArticleStatus(in.Status)
	if err != nil {
		return entity.Article{}, err
	}

	return entity.Article{
		Title:    title,
		Category: strings.TrimSpace(in.Category),
		Slug:     slug,
		Body:     in.Body,
		Status:   status,
	}, nil
}

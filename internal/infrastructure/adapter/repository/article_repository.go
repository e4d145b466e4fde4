package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/rewards-pool/internal/domain/entity"
	errs "github.com/amirhossein-jamali/rewards-pool/internal/domain/error"
	coreport "github.com/amirhossein-jamali/rewards-pool/internal/domain/port/core"
	"github.com/amirhossein-jamali/rewards-pool/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/rewards-pool/internal/infrastructure/adapter/model"
)

// ArticleRepository stores CMS articles using GORM
type ArticleRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

var _ persistence.ArticleRepository = (*ArticleRepository)(nil)

// NewArticleRepository creates a new ArticleRepository instance
func NewArticleRepository(db *gorm.DB, logger coreport.Logger) *ArticleRepository {
	return &ArticleRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *ArticleRepository) handleDatabaseError(operation string, err error, articleID string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrArticleNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"article_id": articleID,
		"error":      err.Error(),
		"error_type": string(r.errorClassifier.Classify(err)),
	})

	if r.errorClassifier.DuplicateColumn(err, "slug") != "" {
		return errs.ErrSlugTaken
	}
	return r.errorClassifier.ToDomainError(err)
}

// GetByID retrieves an article
func (r *ArticleRepository) GetByID(ctx context.Context, id string) (*entity.Article, error) {
	var row model.Article
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error; err != nil {
		return nil, r.handleDatabaseError("getting article", err, id)
	}
	return row.ToEntity(), nil
}

// GetBySlug retrieves an article by its slug
func (r *ArticleRepository) GetBySlug(ctx context.Context, slug string) (*entity.Article, error) {
	var row model.Article
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).Take(&row).Error; err != nil {
		return nil, r.handleDatabaseError("getting article by slug", err, "")
	}
	return row.ToEntity(), nil
}

// SlugExists checks for an exact slug match, ignoring the article with excludeID
func (r *ArticleRepository) SlugExists(ctx context.Context, slug string, excludeID string) (bool, error) {
	query := r.db.WithContext(ctx).Model(&model.Article{}).Where("slug = ?", slug)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, r.handleDatabaseError("checking slug", err, excludeID)
	}
	return count > 0, nil
}

// Create saves a new article
func (r *ArticleRepository) Create(ctx context.Context, article *entity.Article) error {
	if err := r.db.WithContext(ctx).Create(model.ArticleFromEntity(article)).Error; err != nil {
		return r.handleDatabaseError("creating article", err, article.ID)
	}

	r.logger.Info("Article created", map[string]any{
		"article_id": article.ID,
		"slug":       article.Slug,
		"status":     string(article.Status),
	})
	return nil
}

// Update overwrites the editable fields of an article
func (r *ArticleRepository) Update(ctx context.Context, article *entity.Article) error {
	result := r.db.WithContext(ctx).Model(&model.Article{}).
		Where("id = ?", article.ID).
		Updates(map[string]any{
			"title":      article.Title,
			"category":   article.Category,
			"slug":       article.Slug,
			"body":       article.Body,
			"status":     string(article.Status),
			"updated_at": article.UpdatedAt,
		})
	if result.Error != nil {
		return r.handleDatabaseError("updating article", result.Error, article.ID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrArticleNotFound
	}

	r.logger.Info("Article updated", map[string]any{
		"article_id": article.ID,
		"slug":       article.Slug,
		"status":     string(article.Status),
	})
	return nil
}

// Delete removes an article
func (r *ArticleRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Article{})
	if result.Error != nil {
		return r.handleDatabaseError("deleting article", result.Error, id)
	}
	if result.RowsAffected == 0 {
		return errs.ErrArticleNotFound
	}

	r.logger.Info("Article deleted", map[string]any{"article_id": id})
	return nil
}

// List returns articles ordered by creation time descending
func (r *ArticleRepository) List(ctx context.Context, publishedOnly bool) ([]*entity.Article, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if publishedOnly {
		query = query.Where("status = ?", string(entity.ArticlePublished))
	}

	var rows []model.Article
	if err := query.Find(&rows).Error; err != nil {
		return nil, r.handleDatabaseError("listing articles", err, "")
	}

	articles := make([]*entity.Article, 0, len(rows))
	for i := range rows {
		articles = append(articles, rows[i].ToEntity())
	}
	return articles, nil
}

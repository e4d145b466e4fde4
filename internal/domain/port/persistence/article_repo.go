package persistence

import (
	"context"

	"github.com/amirhossein-jamali/rewards-pool/internal/domain/entity"
)

// ArticleRepository defines methods to interact with CMS articles
type ArticleRepository interface {
	// GetByID retrieves an article.
	// Returns ErrArticleNotFound when it does not exist.
	GetByID(ctx context.Context, id string) (*entity.Article, error)

	// GetBySlug retrieves an article by its slug
	GetBySlug(ctx context.Context, slug string) (*entity.Article, error)

	// SlugExists checks for an exact slug match, ignoring the article with excludeID
	SlugExists(ctx context.Context, slug string, excludeID string) (bool, error)

	// Create saves a new article.
	// Returns ErrSlugTaken when the unique slug index rejects the write.
	Create(ctx context.Context, article *entity.Article) error

	// Update overwrites the editable fields of an article
	Update(ctx context.Context, article *entity.Article) error

	// Delete removes an article
	Delete(ctx context.Context, id string) error

	// List returns articles ordered by creation time descending
	List(ctx context.Context, publishedOnly bool) ([]*entity.Article, error)
}

package usecase

import (
	"context"

	"github.com/amirhossein-jamali/rewards-pool/internal/domain/entity"
)

// Author identifies who is editing content
type Author struct {
	ID   string
	Name string
}

// EditorSession tracks which article an editor is working on.
// An empty ArticleID means the next save creates a new article.
type EditorSession struct {
	ArticleID string
	Author    Author
}

// ArticleInput holds the editable article fields
type ArticleInput struct {
	Title    string
	Category string
	Slug     string
	Body     string
	Status   string
}

// ContentUseCase is CRUD over CMS articles
type ContentUseCase interface {
	NewSession(author Author) *EditorSession
	OpenForEdit(ctx context.Context, author Author, articleID string) (*EditorSession, *entity.Article, error)
	Save(ctx context.Context, session *EditorSession, in ArticleInput) (*entity.Article, error)

	// Delete refuses with ErrDeletionNotConfirmed unless confirmed is true
	Delete(ctx context.Context, articleID string, confirmed bool) error

	List(ctx context.Context) ([]*entity.Article, error)
	Get(ctx context.Context, articleID string) (*entity.Article, error)
	ListPublished(ctx context.Context) ([]*entity.Article, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*entity.Article, error)
}

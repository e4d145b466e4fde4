package entity

import (
	"strings"
	"time"
	"unicode"

	errs "github.com/amirhossein-jamali/rewards-pool/internal/domain/error"
)

// ArticleStatus is the publication state of an article
type ArticleStatus string

// Article statuses
const (
	ArticleDraft     ArticleStatus = "draft"
	ArticlePublished ArticleStatus = "published"
)

// ParseArticleStatus accepts draft or published, defaulting to draft when empty
func ParseArticleStatus(raw string) (ArticleStatus, error) {
	switch s := ArticleStatus(strings.ToLower(strings.TrimSpace(raw))); s {
	case "":
		return ArticleDraft, nil
	case ArticleDraft, ArticlePublished:
		return s, nil
	default:
		return "", errs.NewFieldError("status", "must be draft or published")
	}
}

// Article is a CMS content record
type Article struct {
	ID         string
	Title      string
	Category   string
	Slug       string
	Body       string // Rich-text HTML, stored as-is
	AuthorID   string
	AuthorName string
	Status     ArticleStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsPublished reports whether the article is visible to the public
func (a *Article) IsPublished() bool {
	return a.Status == ArticlePublished
}

// NormalizeSlug lowercases the input and collapses anything that is not a letter or digit into single dashes
func NormalizeSlug(raw string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(raw)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

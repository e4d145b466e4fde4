package dto

import (
	"time"

	"github.com/amirhossein-jamali/rewards-pool/internal/domain/entity"
	"github.com/amirhossein-jamali/rewards-pool/internal/domain/port/usecase"
)

// ArticleRequest holds the editable article fields
type ArticleRequest struct {
	Title    string `json:"title" binding:"required"`
	Category string `json:"category"`
	Slug     string `json:"slug"`
	Body     string `json:"body"`
	Status   string `json:"status"`
}

// ArticleResponse represents a CMS article
type ArticleResponse struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Category   string    `json:"category"`
	Slug       string    `json:"slug"`
	Body       string    `json:"body,omitempty"`
	AuthorID   string    `json:"authorId"`
	AuthorName string    `json:"authorName"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// ToInput converts the request to the use case input
func (r ArticleRequest) ToInput() usecase.ArticleInput {
	return usecase.ArticleInput{
		Title:    r.Title,
		Category: r.Category,
		Slug:     r.Slug,
		Body:     r.Body,
		Status:   r.Status,
	}
}

// NewArticleResponse maps an article, optionally without its body
func NewArticleResponse(a *entity.Article, withBody bool) ArticleResponse {
	resp := ArticleResponse{
		ID:         a.ID,
		Title:      a.Title,
		Category:   a.Category,
		Slug:       a.Slug,
		AuthorID:   a.AuthorID,
		AuthorName: a.AuthorName,
		Status:     string(a.Status),
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
	if withBody {
		resp.Body = a.Body
	}
	return resp
}

// NewArticleList maps articles without bodies
func NewArticleList(articles []*entity.Article) []ArticleResponse {
	out := make([]ArticleResponse, 0, len(articles))
	for _, a := range articles {
		out = append(out, NewArticleResponse(a, false))
	}
	return out
}

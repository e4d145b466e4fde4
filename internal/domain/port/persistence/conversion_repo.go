package persistence

import (
	"context"

	"github.com/amirhossein-jamali/rewards-pool/internal/domain/entity"
)

// ConversionRepository stores conversion requests
type ConversionRepository interface {
	// Create saves a new conversion request
	Create(ctx context.Context, request *entity.ConversionRequest) error

	// ListByUser returns the user's requests, newest first
	ListByUser(ctx context.Context, userID string, limit int) ([]*entity.ConversionRequest, error)

	// ListPending returns pending requests, oldest first
	ListPending(ctx context.Context, limit int) ([]*entity.ConversionRequest, error)
}

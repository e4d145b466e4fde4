package persistence

import (
	"context"

	"github.com/amirhossein-jamali/rewards-pool/internal/domain/entity"
)

// PoolRepository accesses the singleton pool status record
type PoolRepository interface {
	// Get returns the pool status.
	// Returns ErrPoolStatusNotFound when the record was never seeded.
	Get(ctx context.Context) (*entity.PoolStatus, error)

	// GetForUpdate returns the pool status and locks it for the surrounding transaction
	GetForUpdate(ctx context.Context) (*entity.PoolStatus, error)

	// Save writes the pool status
	Save(ctx context.Context, status *entity.PoolStatus) error
}

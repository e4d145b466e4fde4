package persistence

import (
	"context"

	"github.com/amirhossein-jamali/rewards-pool/internal/domain/entity"
)

// ProfileStagingStore is transient scratch space for profile fields captured
// between a federated sign-in and onboarding
type ProfileStagingStore interface {
	Stage(ctx context.Context, userID string, profile entity.StagedProfile) error

	// Get returns ErrStagedProfileNotFound when nothing is staged or the entry expired
	Get(ctx context.Context, userID string) (*entity.StagedProfile, error)

	Clear(ctx context.Context, userID string) error
}

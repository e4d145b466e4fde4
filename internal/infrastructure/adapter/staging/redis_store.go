package staging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/amirhossein-jamali/rewards-pool/internal/domain/entity"
	errs "github.com/amirhossein-jamali/rewards-pool/internal/domain/error"
	coreport "github.com/amirhossein-jamali/rewards-pool/internal/domain/port/core"
	"github.com/amirhossein-jamali/rewards-pool/internal/domain/port/persistence"
)

// DefaultTTL bounds how long a staged profile waits for onboarding
const DefaultTTL = 30 * time.Minute

const keyPrefix = "rewards:staged_profile:"

// Client is the subset of the redis client the store needs
type Client interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisProfileStore keeps federated sign-in profiles in redis until onboarding completes
type RedisProfileStore struct {
	client Client
	ttl    time.Duration
	logger coreport.Logger
}

var _ persistence.ProfileStagingStore = (*RedisProfileStore)(nil)

// NewRedisProfileStore creates a new RedisProfileStore
func NewRedisProfileStore(client Client, ttl time.Duration, logger coreport.Logger) *RedisProfileStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisProfileStore{client: client, ttl: ttl, logger: logger}
}

func key(userID string) string {
	return keyPrefix + userID
}

// Stage stores the profile, replacing an earlier one
func (s *RedisProfileStore) Stage(ctx context.Context, userID string, profile entity.StagedProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal staged profile: %w", err)
	}

	if err := s.client.Set(ctx, key(userID), data, s.ttl).Err(); err != nil {
		s.logger.Error("Failed to stage profile", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return fmt.Errorf("%w: staging profile: %w", errs.ErrServiceUnavailable, err)
	}
	return nil
}

// Get returns the staged profile or ErrStagedProfileNotFound
func (s *RedisProfileStore) Get(ctx context.Context, userID string) (*entity.StagedProfile, error) {
	data, err := s.client.Get(ctx, key(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, errs.ErrStagedProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading staged profile: %w", errs.ErrServiceUnavailable, err)
	}

	var profile entity.StagedProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		s.logger.Warn("Discarding unreadable staged profile", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, errs.ErrStagedProfileNotFound
	}
	return &profile, nil
}

// Clear removes the staged profile. Clearing a missing entry is not an error.
func (s *RedisProfileStore) Clear(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, key(userID)).Err(); err != nil {
		return fmt.Errorf("%w: clearing staged profile: %w", errs.ErrServiceUnavailable, err)
	}
	return nil
}

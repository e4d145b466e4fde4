package staging

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/rewards-pool/internal/domain/entity"
	errs "github.com/amirhossein-jamali/rewards-pool/internal/domain/error"
	"github.com/amirhossein-jamali/rewards-pool/internal/infrastructure/adapter/logger"
)

type mockClient struct {
	mock.Mock
}

func (m *mockClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	args := m.Called(ctx, key, value, expiration)
	return redis.NewStatusResult(args.String(0), args.Error(1))
}

func (m *mockClient) Get(ctx context.Context, key string) *redis.StringCmd {
	args := m.Called(ctx, key)
	return redis.NewStringResult(args.String(0), args.Error(1))
}

func (m *mockClient) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	args := m.Called(ctx, keys)
	return redis.NewIntResult(int64(args.Int(0)), args.Error(1))
}

func TestRedisProfileStore(t *testing.T) {
	ctx := context.Background()
	profile := entity.StagedProfile{FullName: "Fed User", Email: "fed@example.com"}

	t.Run("should store the profile as json with the ttl", func(t *testing.T) {
		// Arrange
		client := new(mockClient)
		client.On("Set", ctx, "rewards:staged_profile:u-1", []byte(`{"fullName":"Fed User","email":"fed@example.com"}`), 10*time.Minute).
			Return("OK", nil).Once()
		store := NewRedisProfileStore(client, 10*time.Minute, logger.NewNoopLogger())

		// Act
		err := store.Stage(ctx, "u-1", profile)

		// Assert
		require.NoError(t, err)
		client.AssertExpectations(t)
	})

	t.Run("should read a staged profile", func(t *testing.T) {
		client := new(mockClient)
		client.On("Get", ctx, "rewards:staged_profile:u-1").
			Return(`{"fullName":"Fed User","email":"fed@example.com"}`, nil).Once()
		store := NewRedisProfileStore(client, 0, logger.NewNoopLogger())

		staged, err := store.Get(ctx, "u-1")

		require.NoError(t, err)
		assert.Equal(t, profile, *staged)
	})

	t.Run("should report a missing or unreadable entry as not found", func(t *testing.T) {
		client := new(mockClient)
		client.On("Get", ctx, "rewards:staged_profile:missing").Return("", redis.Nil).Once()
		client.On("Get", ctx, "rewards:staged_profile:broken").Return("{not json", nil).Once()
		store := NewRedisProfileStore(client, 0, logger.NewNoopLogger())

		_, err := store.Get(ctx, "missing")
		assert.ErrorIs(t, err, errs.ErrStagedProfileNotFound)

		_, err = store.Get(ctx, "broken")
		assert.ErrorIs(t, err, errs.ErrStagedProfileNotFound)
	})

	t.Run("should surface redis failures as unavailable", func(t *testing.T) {
		client := new(mockClient)
		down := errors.New("dial tcp: connection refused")
		client.On("Get", ctx, mock.Anything).Return("", down).Once()
		client.On("Set", ctx, mock.Anything, mock.Anything, DefaultTTL).Return("", down).Once()
		client.On("Del", ctx, []string{"rewards:staged_profile:u-1"}).Return(0, down).Once()
		store := NewRedisProfileStore(client, 0, logger.NewNoopLogger())

		_, err := store.Get(ctx, "u-1")
		assert.ErrorIs(t, err, errs.ErrServiceUnavailable)
		assert.ErrorIs(t, store.Stage(ctx, "u-1", profile), errs.ErrServiceUnavailable)
		assert.ErrorIs(t, store.Clear(ctx, "u-1"), errs.ErrServiceUnavailable)
	})

	t.Run("should clear an entry", func(t *testing.T) {
		client := new(mockClient)
		client.On("Del", ctx, []string{"rewards:staged_profile:u-1"}).Return(1, nil).Once()
		store := NewRedisProfileStore(client, 0, logger.NewNoopLogger())

		assert.NoError(t, store.Clear(ctx, "u-1"))
		client.AssertExpectations(t)
	})
}

package pool

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/rewards-pool/internal/domain/entity"
	errs "github.com/amirhossein-jamali/rewards-pool/internal/domain/error"
	"github.com/amirhossein-jamali/rewards-pool/internal/domain/port/usecase"
	mockcore "github.com/amirhossein-jamali/rewards-pool/mocks/port/core"
)

func quietLogger(t *testing.T) *mockcore.MockLogger {
	l := mockcore.NewMockLogger(t)
	l.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	l.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	l.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	return l
}

func resultFor(id string) *usecase.ConversionResult {
	return &usecase.ConversionResult{Request: &entity.ConversionRequest{ID: id}}
}

func TestUserQueue_Submit(t *testing.T) {
	t.Run("should return the job result", func(t *testing.T) {
		q := NewUserQueue(quietLogger(t), 0)
		defer q.Shutdown()

		result, err := q.Submit(context.Background(), "u-1", func(ctx context.Context) (*usecase.ConversionResult, error) {
			return resultFor("r-1"), nil
		})

		require.NoError(t, err)
		assert.Equal(t, "r-1", result.Request.ID)
	})

	t.Run("should never run two jobs of the same user at once", func(t *testing.T) {
		q := NewUserQueue(quietLogger(t), 10)
		defer q.Shutdown()

		var mu sync.Mutex
		running, maxRunning := 0, 0
		job := func(ctx context.Context) (*usecase.ConversionResult, error) {
			mu.Lock()
			running++
			if running > maxRunning {
				maxRunning = running
			}
			mu.Unlock()

			time.Sleep(2 * time.Millisecond)

			mu.Lock()
			running--
			mu.Unlock()
			return resultFor("r"), nil
		}

		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := q.Submit(context.Background(), "u-1", job)
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, maxRunning)
	})

	t.Run("should run different users concurrently", func(t *testing.T) {
		q := NewUserQueue(quietLogger(t), 10)
		defer q.Shutdown()

		started := make(chan struct{}, 2)
		release := make(chan struct{})
		job := func(ctx context.Context) (*usecase.ConversionResult, error) {
			started <- struct{}{}
			<-release
			return resultFor("r"), nil
		}

		var wg sync.WaitGroup
		for _, user := range []string{"u-1", "u-2"} {
			wg.Add(1)
			go func(user string) {
				defer wg.Done()
				_, _ = q.Submit(context.Background(), user, job)
			}(user)
		}

		for i := 0; i < 2; i++ {
			select {
			case <-started:
			case <-time.After(2 * time.Second):
				t.Fatal("jobs of different users did not run concurrently")
			}
		}
		close(release)
		wg.Wait()
	})

	t.Run("should stop idle workers", func(t *testing.T) {
		q := NewUserQueue(quietLogger(t), 10)
		defer q.Shutdown()

		_, err := q.Submit(context.Background(), "u-1", func(ctx context.Context) (*usecase.ConversionResult, error) {
			return resultFor("r"), nil
		})
		require.NoError(t, err)

		assert.Eventually(t, func() bool {
			q.mu.Lock()
			defer q.mu.Unlock()
			return len(q.queues) == 0
		}, time.Second, 5*time.Millisecond)
	})

	t.Run("should return context errors to canceled callers", func(t *testing.T) {
		q := NewUserQueue(quietLogger(t), 10)
		defer q.Shutdown()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := q.Submit(ctx, "u-1", func(ctx context.Context) (*usecase.ConversionResult, error) {
			return resultFor("r"), nil
		})

		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("should reject submissions after shutdown", func(t *testing.T) {
		q := NewUserQueue(quietLogger(t), 10)
		q.Shutdown()

		_, err := q.Submit(context.Background(), "u-1", func(ctx context.Context) (*usecase.ConversionResult, error) {
			return resultFor("r"), nil
		})

		assert.ErrorIs(t, err, errs.ErrShuttingDown)
	})
}

package database

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/rewards-pool/internal/domain/entity"
	errs "github.com/amirhossein-jamali/rewards-pool/internal/domain/error"
	"github.com/amirhossein-jamali/rewards-pool/internal/domain/usecase/pool"
	"github.com/amirhossein-jamali/rewards-pool/internal/infrastructure/adapter/id"
	"github.com/amirhossein-jamali/rewards-pool/internal/infrastructure/adapter/logger"
)

func newPoolService(t *testing.T, db *TestDBManager) *pool.Service {
	t.Helper()

	svc := pool.NewService(
		db.Manager.CreateUnitOfWork(),
		id.NewUUIDGenerator(),
		db.TimeProvider,
		db.Logger,
		pool.Options{},
	)
	t.Cleanup(svc.Shutdown)
	return svc
}

func TestSubmitConversionAgainstDatabase(t *testing.T) {
	ctx := context.Background()

	t.Run("should move points into the pool and store a pending request", func(t *testing.T) {
		// Arrange
		db := NewTestDBManager(t, logger.NewNoopLogger())
		db.CreateTestUser(t, "user-1", "alice", 5000)
		svc := newPoolService(t, db)
		users := db.Manager.UserRepository()

		// Act
		result, err := svc.SubmitConversion(ctx, "user-1", 1500)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(3500), result.User.Points)

		stored, err := users.GetByID(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, int64(3500), stored.Points)
		assert.Equal(t, int64(1500), stored.PointsPendingPool)
		require.NotNil(t, stored.LastPoolSubmissionAt)

		status, err := svc.GetPoolStatus(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1500), status.TotalPointsPending)

		requests, err := svc.ListConversions(ctx, "user-1", 10)
		require.NoError(t, err)
		require.Len(t, requests, 1)
		assert.Equal(t, entity.ConversionPending, requests[0].Status)
		assert.True(t, requests[0].USDEquivalent.Equal(decimal.RequireFromString("1.5")))
		assert.Nil(t, requests[0].USDReceived)
	})

	t.Run("should write nothing when the balance is insufficient", func(t *testing.T) {
		// Arrange
		db := NewTestDBManager(t, logger.NewNoopLogger())
		db.CreateTestUser(t, "user-1", "alice", 500)
		svc := newPoolService(t, db)

		// Act
		_, err := svc.SubmitConversion(ctx, "user-1", 1000)

		// Assert
		assert.ErrorIs(t, err, errs.ErrInsufficientPoints)

		stored, err := db.Manager.UserRepository().GetByID(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, int64(500), stored.Points)
		assert.Zero(t, stored.PointsPendingPool)
		assert.Nil(t, stored.LastPoolSubmissionAt)

		status, err := svc.GetPoolStatus(ctx)
		require.NoError(t, err)
		assert.Zero(t, status.TotalPointsPending)

		requests, err := svc.ListConversions(ctx, "user-1", 10)
		require.NoError(t, err)
		assert.Empty(t, requests)
	})

	t.Run("should report a missing pool record and leave the user untouched", func(t *testing.T) {
		// Arrange
		db := NewTestDBManager(t, logger.NewNoopLogger())
		db.CreateTestUser(t, "user-1", "alice", 5000)
		db.DeletePoolStatus(t)
		svc := newPoolService(t, db)

		// Act
		_, err := svc.SubmitConversion(ctx, "user-1", 1000)

		// Assert
		assert.ErrorIs(t, err, errs.ErrPoolStatusNotFound)

		stored, err := db.Manager.UserRepository().GetByID(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, int64(5000), stored.Points)
	})

	t.Run("should report a missing user record", func(t *testing.T) {
		db := NewTestDBManager(t, logger.NewNoopLogger())
		svc := newPoolService(t, db)

		_, err := svc.SubmitConversion(ctx, "ghost", 1000)

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("should queue concurrent submissions of one user behind each other", func(t *testing.T) {
		// Arrange
		db := NewTestDBManager(t, logger.NewNoopLogger())
		db.CreateTestUser(t, "user-1", "alice", 1500)
		svc := newPoolService(t, db)

		const submissions = 10
		var (
			wg        sync.WaitGroup
			mu        sync.Mutex
			succeeded int
			rejected  int
		)

		// Act
		for i := 0; i < submissions; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := svc.SubmitConversion(ctx, "user-1", 1000)

				mu.Lock()
				defer mu.Unlock()
				switch {
				case err == nil:
					succeeded++
				case errors.Is(err, errs.ErrInsufficientPoints):
					rejected++
				default:
					t.Errorf("unexpected error: %v", err)
				}
			}()
		}
		wg.Wait()

		// Assert
		assert.Equal(t, 1, succeeded)
		assert.Equal(t, submissions-1, rejected)

		stored, err := db.Manager.UserRepository().GetByID(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, int64(500), stored.Points)
		assert.Equal(t, int64(1000), stored.PointsPendingPool)

		status, err := svc.GetPoolStatus(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1000), status.TotalPointsPending)
	})

	t.Run("should not let services with separate queues spend the same points twice", func(t *testing.T) {
		// Arrange
		db := NewFileTestDBManager(t, logger.NewNoopLogger(), 4)
		db.CreateTestUser(t, "user-1", "alice", 1500)
		services := []*pool.Service{newPoolService(t, db), newPoolService(t, db)}

		start := make(chan struct{})
		results := make(chan error, len(services))
		var wg sync.WaitGroup

		// Act
		for _, svc := range services {
			wg.Add(1)
			go func(svc *pool.Service) {
				defer wg.Done()
				<-start
				_, err := svc.SubmitConversion(ctx, "user-1", 1000)
				results <- err
			}(svc)
		}
		close(start)
		wg.Wait()
		close(results)

		// Assert
		succeeded, rejected := 0, 0
		for err := range results {
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, errs.ErrInsufficientPoints):
				rejected++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}
		assert.Equal(t, 1, succeeded)
		assert.Equal(t, 1, rejected)

		stored, err := db.Manager.UserRepository().GetByID(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, int64(500), stored.Points)
		assert.Equal(t, int64(1000), stored.PointsPendingPool)

		status, err := services[0].GetPoolStatus(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1000), status.TotalPointsPending)

		pending, err := services[0].ListPendingConversions(ctx, 10)
		require.NoError(t, err)
		assert.Len(t, pending, 1)
	})

	t.Run("should keep the pool total equal to the sum of accepted submissions across users", func(t *testing.T) {
		// Arrange
		db := NewTestDBManager(t, logger.NewNoopLogger())
		db.CreateTestUser(t, "user-1", "alice", 3000)
		db.CreateTestUser(t, "user-2", "bob", 3000)
		svc := newPoolService(t, db)

		// Act
		var wg sync.WaitGroup
		for _, userID := range []string{"user-1", "user-2", "user-1", "user-2"} {
			wg.Add(1)
			go func(userID string) {
				defer wg.Done()
				_, err := svc.SubmitConversion(ctx, userID, 1200)
				assert.NoError(t, err)
			}(userID)
		}
		wg.Wait()

		// Assert
		status, err := svc.GetPoolStatus(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(4800), status.TotalPointsPending)
	})
}

func TestUnitOfWork(t *testing.T) {
	ctx := context.Background()

	t.Run("should roll back every write when the body fails", func(t *testing.T) {
		// Arrange
		db := NewTestDBManager(t, logger.NewNoopLogger())
		db.CreateTestUser(t, "user-1", "alice", 2000)
		uow := db.Manager.CreateUnitOfWork()
		boom := errors.New("boom")

		// Act
		err := uow.RunInTransaction(ctx, func(txCtx context.Context) error {
			users := uow.GetUserRepository(txCtx)
			user, err := users.GetByIDForUpdate(txCtx, "user-1")
			if err != nil {
				return err
			}
			user.Points = 0
			if err := users.Update(txCtx, user); err != nil {
				return err
			}
			return boom
		})

		// Assert
		assert.ErrorIs(t, err, boom)
		stored, err := db.Manager.UserRepository().GetByID(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, int64(2000), stored.Points)
	})

	t.Run("should join an already open transaction", func(t *testing.T) {
		// Arrange
		db := NewTestDBManager(t, logger.NewNoopLogger())
		uow := db.Manager.CreateUnitOfWork()
		var inner, outer context.Context

		// Act
		err := uow.RunInTransaction(ctx, func(txCtx context.Context) error {
			outer = txCtx
			return uow.RunInTransaction(txCtx, func(nested context.Context) error {
				inner = nested
				return nil
			})
		})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, outer, inner)
	})

	t.Run("should rerun a transaction that lost a lock conflict", func(t *testing.T) {
		// Arrange
		db := NewFileTestDBManager(t, logger.NewNoopLogger(), 2)
		db.CreateTestUser(t, "user-1", "alice", 2000)
		uow := db.Manager.CreateUnitOfWork()

		locked := make(chan struct{})
		release := make(chan struct{})
		var lockOnce, releaseOnce sync.Once
		holderErr := make(chan error, 1)

		debit := func(txCtx context.Context, points int64) error {
			users := uow.GetUserRepository(txCtx)
			user, err := users.GetByIDForUpdate(txCtx, "user-1")
			if err != nil {
				return err
			}
			user.Points -= points
			return users.Update(txCtx, user)
		}

		go func() {
			holderErr <- uow.RunInTransaction(ctx, func(txCtx context.Context) error {
				if err := debit(txCtx, 500); err != nil {
					return err
				}
				lockOnce.Do(func() { close(locked) })
				<-release
				return nil
			})
		}()
		<-locked

		// Act
		attempts := 0
		err := uow.RunInTransaction(ctx, func(txCtx context.Context) error {
			attempts++
			err := debit(txCtx, 300)
			if err != nil {
				releaseOnce.Do(func() { close(release) })
			}
			return err
		})
		releaseOnce.Do(func() { close(release) })

		// Assert
		require.NoError(t, <-holderErr)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, attempts, 2)

		stored, err := db.Manager.UserRepository().GetByID(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, int64(1200), stored.Points)
	})

	t.Run("should bound each transaction by the query timeout", func(t *testing.T) {
		// Arrange
		db := NewTestDBManager(t, logger.NewNoopLogger())
		uow := db.Manager.CreateUnitOfWork()
		var deadline time.Time
		var hasDeadline bool

		// Act
		err := uow.RunInTransaction(ctx, func(txCtx context.Context) error {
			deadline, hasDeadline = txCtx.Deadline()
			return nil
		})

		// Assert
		require.NoError(t, err)
		require.True(t, hasDeadline)
		assert.WithinDuration(t, time.Now().Add(db.Config.QueryTimeout), deadline, time.Second)
	})
}

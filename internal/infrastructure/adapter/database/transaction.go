package database

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/rewards-pool/internal/domain/port/core"
	"github.com/amirhossein-jamali/rewards-pool/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/rewards-pool/internal/infrastructure/adapter/repository"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

// Context keys
const txKey contextKey = "tx"

// UnitOfWork implements the unit of work pattern for database transactions
type UnitOfWork struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	retry        RetryConfig
	queryTimeout time.Duration
	classifier   *repository.ErrorClassifier
	errorMapper  *ErrorMapper
	metrics      *MetricsCollector
}

var _ persistence.UnitOfWork = (*UnitOfWork)(nil)

// NewUnitOfWork creates a new UnitOfWork instance. A positive queryTimeout bounds each transaction attempt.
func NewUnitOfWork(
	db *gorm.DB,
	logger coreport.Logger,
	timeProvider coreport.TimeProvider,
	retry RetryConfig,
	queryTimeout time.Duration,
	metrics *MetricsCollector,
) *UnitOfWork {
	return &UnitOfWork{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
		retry:        retry,
		queryTimeout: queryTimeout,
		classifier:   repository.NewErrorClassifier(),
		errorMapper:  NewErrorMapper(),
		metrics:      metrics,
	}
}

// RunInTransaction runs fn in one database transaction. PostgreSQL transactions use SERIALIZABLE
// isolation. Conflicting transactions are rolled back and fn is run again from the start.
// A call made while a transaction is already open joins it.
func (u *UnitOfWork) RunInTransaction(ctx context.Context, fn persistence.TxFunc) error {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok && tx != nil {
		return fn(ctx)
	}

	err := RetryOnConflict(ctx, u.retry, func() error {
		_, err := u.metrics.Measure(ctx, "transaction", func() error {
			return u.runOnce(ctx, fn)
		})
		return err
	}, u.classifier, u.timeProvider, u.logger)

	return u.errorMapper.MapError(err, "transaction")
}

func (u *UnitOfWork) runOnce(ctx context.Context, fn persistence.TxFunc) error {
	var opts []*sql.TxOptions
	if u.db.Dialector.Name() == DriverPostgres {
		opts = append(opts, &sql.TxOptions{Isolation: sql.LevelSerializable})
	}

	if u.queryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = u.timeProvider.WithTimeout(ctx, coreport.Duration(u.queryTimeout))
		defer cancel()
	}

	u.logger.Debug("Beginning database transaction", map[string]any{
		"dialect": u.db.Dialector.Name(),
	})

	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey, tx))
	}, opts...)
}

// GetUserRepository returns a user repository in the current transaction
func (u *UnitOfWork) GetUserRepository(ctx context.Context) persistence.UserRepository {
	return repository.NewUserRepository(u.getDbFromContext(ctx), u.logger)
}

// GetPoolRepository returns a pool repository in the current transaction
func (u *UnitOfWork) GetPoolRepository(ctx context.Context) persistence.PoolRepository {
	return repository.NewPoolRepository(u.getDbFromContext(ctx), u.logger)
}

// GetConversionRepository returns a conversion repository in the current transaction
func (u *UnitOfWork) GetConversionRepository(ctx context.Context) persistence.ConversionRepository {
	return repository.NewConversionRepository(u.getDbFromContext(ctx), u.logger)
}

// GetReferralRepository returns a referral repository in the current transaction
func (u *UnitOfWork) GetReferralRepository(ctx context.Context) persistence.ReferralRepository {
	return repository.NewReferralRepository(u.getDbFromContext(ctx), u.logger)
}

// getDbFromContext retrieves the database instance from context
func (u *UnitOfWork) getDbFromContext(ctx context.Context) *gorm.DB {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if ok && tx != nil {
		return tx
	}
	return u.db.WithContext(ctx)
}

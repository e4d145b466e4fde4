package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amirhossein-jamali/rewards-pool/internal/domain/entity"
	errs "github.com/amirhossein-jamali/rewards-pool/internal/domain/error"
	coreport "github.com/amirhossein-jamali/rewards-pool/internal/domain/port/core"
	"github.com/amirhossein-jamali/rewards-pool/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/rewards-pool/internal/infrastructure/adapter/model"
)

// PoolRepository reads and writes the singleton pool status row
type PoolRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

var _ persistence.PoolRepository = (*PoolRepository)(nil)

// NewPoolRepository creates a new PoolRepository instance
func NewPoolRepository(db *gorm.DB, logger coreport.Logger) *PoolRepository {
	return &PoolRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *PoolRepository) handleDatabaseError(operation string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Error("Pool status record is missing", map[string]any{
			"pool_id": entity.PoolStatusID,
		})
		return errs.ErrPoolStatusNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"pool_id":    entity.PoolStatusID,
		"error":      err.Error(),
		"error_type": string(r.errorClassifier.Classify(err)),
	})
	return r.errorClassifier.ToDomainError(err)
}

// Get returns the pool status
func (r *PoolRepository) Get(ctx context.Context) (*entity.PoolStatus, error) {
	var status model.PoolStatus
	if err := r.db.WithContext(ctx).Where("id = ?", entity.PoolStatusID).Take(&status).Error; err != nil {
		return nil, r.handleDatabaseError("reading pool status", err)
	}
	return status.ToEntity(), nil
}

// GetForUpdate returns the pool status and locks the row for the surrounding transaction
func (r *PoolRepository) GetForUpdate(ctx context.Context) (*entity.PoolStatus, error) {
	var status model.PoolStatus
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("id = ?", entity.PoolStatusID).
		Take(&status).Error
	if err != nil {
		return nil, r.handleDatabaseError("locking pool status", err)
	}
	return status.ToEntity(), nil
}

// Save writes the pool status
func (r *PoolRepository) Save(ctx context.Context, status *entity.PoolStatus) error {
	r.logger.Debug("Saving pool status", map[string]any{
		"total_points_pending": status.TotalPointsPending,
		"conversion_rate":      status.ConversionRate.String(),
	})

	result := r.db.WithContext(ctx).Model(&model.PoolStatus{}).
		Where("id = ?", status.ID).
		Updates(map[string]any{
			"conversion_rate":      status.ConversionRate,
			"total_points_pending": status.TotalPointsPending,
			"current_pool_cents":   status.CurrentPoolCents,
			"next_settlement_at":   status.NextSettlementAt,
			"updated_at":           status.UpdatedAt,
		})
	if result.Error != nil {
		return r.handleDatabaseError("saving pool status", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrPoolStatusNotFound
	}
	return nil
}

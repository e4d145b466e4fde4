package migration

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amirhossein-jamali/rewards-pool/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/rewards-pool/internal/domain/port/core"
	"github.com/amirhossein-jamali/rewards-pool/internal/infrastructure/adapter/model"
)

// SeedPoolStatus inserts the singleton pool status row unless it already exists
func SeedPoolStatus(ctx context.Context, db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) error {
	status := model.PoolStatus{
		ID:             entity.PoolStatusID,
		ConversionRate: decimal.NewFromInt(entity.DefaultConversionRate),
		UpdatedAt:      timeProvider.Now(),
	}

	result := db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&status)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected > 0 {
		logger.Info("Seeded pool status", map[string]any{
			"pool_id":         entity.PoolStatusID,
			"conversion_rate": status.ConversionRate.String(),
		})
	}
	return nil
}

package migration

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/amirhossein-jamali/rewards-pool/internal/domain/entity"
	"github.com/amirhossein-jamali/rewards-pool/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/rewards-pool/internal/infrastructure/adapter/model"
	timeprovider "github.com/amirhossein-jamali/rewards-pool/internal/infrastructure/adapter/time"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:migration_test?mode=memory&cache=private"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

func TestMigrateAll(t *testing.T) {
	ctx := context.Background()

	t.Run("should create the schema and seed the pool once", func(t *testing.T) {
		// Arrange
		db := openTestDB(t)
		manager := NewMigrationManager(db, logger.NewNoopLogger(), timeprovider.NewRealTimeProvider())

		// Act
		require.NoError(t, manager.MigrateAll(ctx))
		require.NoError(t, manager.MigrateAll(ctx))

		// Assert
		version, err := manager.GetCurrentVersion(ctx)
		require.NoError(t, err)
		assert.Equal(t, CurrentSchemaVersion, version)

		var applied int64
		require.NoError(t, db.Model(&model.MigrationVersion{}).Count(&applied).Error)
		assert.Equal(t, int64(3), applied)

		var pools []model.PoolStatus
		require.NoError(t, db.Find(&pools).Error)
		require.Len(t, pools, 1)
		assert.Equal(t, entity.PoolStatusID, pools[0].ID)
		assert.True(t, pools[0].ConversionRate.Equal(decimal.NewFromInt(entity.DefaultConversionRate)))
		assert.Zero(t, pools[0].TotalPointsPending)

		for _, table := range []any{&model.User{}, &model.ConversionRequest{}, &model.ReferralEarning{}, &model.Article{}, &model.Credential{}, &model.RevokedSession{}} {
			assert.True(t, db.Migrator().HasTable(table))
		}
	})

	t.Run("should keep an edited pool when seeding again", func(t *testing.T) {
		// Arrange
		db := openTestDB(t)
		timeProvider := timeprovider.NewRealTimeProvider()
		manager := NewMigrationManager(db, logger.NewNoopLogger(), timeProvider)
		require.NoError(t, manager.MigrateAll(ctx))
		require.NoError(t, db.Model(&model.PoolStatus{}).
			Where("id = ?", entity.PoolStatusID).
			Update("total_points_pending", 4200).Error)

		// Act
		err := SeedPoolStatus(ctx, db, timeProvider, logger.NewNoopLogger())

		// Assert
		require.NoError(t, err)
		var pool model.PoolStatus
		require.NoError(t, db.Take(&pool, "id = ?", entity.PoolStatusID).Error)
		assert.Equal(t, int64(4200), pool.TotalPointsPending)
	})
}

package migration

import (
	"context"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/rewards-pool/internal/domain/port/core"
)

// AdvancedIndexManager manages PostgreSQL-specific indexes. Other dialects skip them.
type AdvancedIndexManager struct {
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{logger: logger}
}

var advancedIndexes = []struct {
	name string
	sql  string
}{
	{
		// Settlement scans pending requests in submission order
		name: "idx_conversion_requests_pending",
		sql: `CREATE INDEX IF NOT EXISTS idx_conversion_requests_pending
			ON conversion_requests (submitted_at)
			WHERE status = 'pending'`,
	},
	{
		name: "idx_conversion_requests_submitted_brin",
		sql: `CREATE INDEX IF NOT EXISTS idx_conversion_requests_submitted_brin
			ON conversion_requests USING BRIN (submitted_at)
			WITH (pages_per_range = 32)`,
	},
	{
		name: "idx_referral_earnings_referrer_time",
		sql: `CREATE INDEX IF NOT EXISTS idx_referral_earnings_referrer_time
			ON referral_earnings (referrer_id, earned_at DESC)`,
	},
	{
		name: "idx_articles_published",
		sql: `CREATE INDEX IF NOT EXISTS idx_articles_published
			ON articles (created_at DESC)
			WHERE status = 'published'`,
	},
}

// Apply creates the indexes and storage tweaks when running on PostgreSQL
func (m *AdvancedIndexManager) Apply(ctx context.Context, tx *gorm.DB) error {
	if tx.Dialector.Name() != "postgres" {
		m.logger.Info("Skipping PostgreSQL indexes", map[string]any{
			"dialect": tx.Dialector.Name(),
		})
		return nil
	}

	m.logger.Info("Creating advanced PostgreSQL indexes", nil)
	for _, idx := range advancedIndexes {
		if err := tx.WithContext(ctx).Exec(idx.sql).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": idx.name,
				"error": err.Error(),
			})
			return err
		}
	}

	// Users and the pool row are updated on every conversion
	for _, stmt := range []string{
		`ALTER TABLE users SET (fillfactor = 90)`,
		`ALTER TABLE pool_status SET (fillfactor = 50)`,
	} {
		if err := tx.WithContext(ctx).Exec(stmt).Error; err != nil {
			m.logger.Warn("Failed to apply storage tweak", map[string]any{
				"statement": stmt,
				"error":     err.Error(),
			})
			return err
		}
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", nil)
	return nil
}

package migration

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/rewards-pool/internal/domain/port/core"
	"github.com/amirhossein-jamali/rewards-pool/internal/infrastructure/adapter/model"
)

const (
	// CurrentSchemaVersion represents the current database schema version
	CurrentSchemaVersion = "1.1.0"
)

// step is one versioned schema change. Steps run in order inside their own transaction.
type step struct {
	version     string
	description string
	run         func(ctx context.Context, tx *gorm.DB) error
}

// MigrationManager manages database migrations
type MigrationManager struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	steps        []step
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *MigrationManager {
	m := &MigrationManager{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
	}
	indexes := NewAdvancedIndexManager(logger)

	m.steps = []step{
		{version: "1.0.0", description: "Base schema", run: m.autoMigrateModels},
		{version: "1.0.1", description: "Seed pool status", run: func(ctx context.Context, tx *gorm.DB) error {
			return SeedPoolStatus(ctx, tx, timeProvider, logger)
		}},
		{version: "1.1.0", description: "PostgreSQL indexes and storage tweaks", run: indexes.Apply},
	}
	return m
}

// MigrateAll applies every step that has not been recorded yet
func (m *MigrationManager) MigrateAll(ctx context.Context) error {
	m.logger.Info("Starting database migrations", map[string]any{
		"target_version": CurrentSchemaVersion,
		"dialect":        m.db.Dialector.Name(),
	})

	// Create migration version table first
	if err := m.db.WithContext(ctx).AutoMigrate(&model.MigrationVersion{}); err != nil {
		m.logger.Error("Failed to create migration version table", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	applied, err := m.appliedVersions(ctx)
	if err != nil {
		m.logger.Error("Failed to read applied schema versions", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	for _, s := range m.steps {
		if applied[s.version] {
			continue
		}

		m.logger.Info("Applying migration", map[string]any{
			"version":     s.version,
			"description": s.description,
		})

		err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := s.run(ctx, tx); err != nil {
				return err
			}
			return tx.Create(&model.MigrationVersion{
				Version:   s.version,
				AppliedAt: m.timeProvider.Now(),
				Details:   s.description,
			}).Error
		})
		if err != nil {
			m.logger.Error("Migration failed", map[string]any{
				"version": s.version,
				"error":   err.Error(),
			})
			return fmt.Errorf("migration %s: %w", s.version, err)
		}
	}

	m.logger.Info("Database migrations completed successfully", map[string]any{
		"version": CurrentSchemaVersion,
	})
	return nil
}

// GetCurrentVersion gets the latest applied migration version
func (m *MigrationManager) GetCurrentVersion(ctx context.Context) (string, error) {
	applied, err := m.appliedVersions(ctx)
	if err != nil {
		return "", err
	}

	current := ""
	for _, s := range m.steps {
		if applied[s.version] {
			current = s.version
		}
	}
	return current, nil
}

func (m *MigrationManager) appliedVersions(ctx context.Context) (map[string]bool, error) {
	var versions []model.MigrationVersion
	if err := m.db.WithContext(ctx).Find(&versions).Error; err != nil {
		return nil, err
	}

	applied := make(map[string]bool, len(versions))
	for _, v := range versions {
		applied[v.Version] = true
	}
	return applied, nil
}

// autoMigrateModels creates or updates the tables of every model
func (m *MigrationManager) autoMigrateModels(ctx context.Context, tx *gorm.DB) error {
	m.logger.Info("Auto-migrating database models", nil)

	return tx.WithContext(ctx).AutoMigrate(
		&model.User{},
		&model.PoolStatus{},
		&model.ConversionRequest{},
		&model.ReferralEarning{},
		&model.Article{},
		&model.Credential{},
		&model.RevokedSession{},
	)
}

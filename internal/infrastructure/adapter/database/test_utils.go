package database

import (
	"context"
	"fmt"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/rewards-pool/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/rewards-pool/internal/domain/port/core"
	"github.com/amirhossein-jamali/rewards-pool/internal/infrastructure/adapter/model"
	timeprovider "github.com/amirhossein-jamali/rewards-pool/internal/infrastructure/adapter/time"
)

var testDBCounter atomic.Int64

// TestDBManager provides utilities for testing against a migrated in-memory SQLite database
type TestDBManager struct {
	Manager      *Manager
	Config       *Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// NewTestDBManager connects to a fresh in-memory database and migrates it.
// The connection is closed when the test ends.
func NewTestDBManager(t *testing.T, logger coreport.Logger) *TestDBManager {
	t.Helper()

	// Each test gets its own named shared-cache database; a single connection serializes writers
	return newTestDBManager(t, logger, testConfig(
		fmt.Sprintf("file:rewards_test_%d?mode=memory&cache=shared", testDBCounter.Add(1)), 1,
	))
}

// NewFileTestDBManager migrates a database file in the test's temp dir and opens it with
// maxOpenConns connections, so concurrent transactions really contend for SQLite's locks.
func NewFileTestDBManager(t *testing.T, logger coreport.Logger, maxOpenConns int) *TestDBManager {
	t.Helper()

	path := filepath.Join(t.TempDir(), "rewards.db")
	return newTestDBManager(t, logger, testConfig("file:"+path+"?_busy_timeout=5000", maxOpenConns))
}

func testConfig(path string, maxOpenConns int) *Config {
	return &Config{
		Driver:          DriverSQLite,
		Path:            path,
		MaxOpenConns:    maxOpenConns,
		MaxIdleConns:    maxOpenConns,
		ConnMaxLifetime: time.Hour,
		ConnMaxIdleTime: time.Hour,
		QueryTimeout:    5 * time.Second,
		LogLevel:        "silent",
		RetryAttempts:   1,
		TxRetry:         DefaultRetryConfig(),
	}
}

func newTestDBManager(t *testing.T, logger coreport.Logger, config *Config) *TestDBManager {
	t.Helper()

	timeProvider := timeprovider.NewRealTimeProvider()
	manager := NewManager(config, logger, timeProvider)
	if _, err := manager.Connect(context.Background()); err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(func() {
		if err := manager.Close(); err != nil {
			t.Logf("Warning: Failed to close test database connection: %v", err)
		}
	})

	if err := manager.Migrate(context.Background()); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return &TestDBManager{
		Manager:      manager,
		Config:       config,
		Logger:       logger,
		TimeProvider: timeProvider,
	}
}

// CreateTestUser inserts a user holding the given points
func (m *TestDBManager) CreateTestUser(t *testing.T, id, username string, points int64) {
	t.Helper()

	now := m.TimeProvider.Now()
	user := model.User{
		ID:           id,
		Email:        username + "@example.com",
		Username:     username,
		FullName:     username,
		Role:         string(entity.RoleUser),
		Points:       points,
		ReferralCode: fmt.Sprintf("T%05d", testDBCounter.Add(1)%100000),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := m.Manager.DB().Create(&user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
}

// SetConversionRate overwrites the seeded pool rate
func (m *TestDBManager) SetConversionRate(t *testing.T, rate int64) {
	t.Helper()

	err := m.Manager.DB().Model(&model.PoolStatus{}).
		Where("id = ?", entity.PoolStatusID).
		Update("conversion_rate", decimal.NewFromInt(rate)).Error
	if err != nil {
		t.Fatalf("Failed to set conversion rate: %v", err)
	}
}

// DeletePoolStatus removes the pool singleton to simulate an unseeded database
func (m *TestDBManager) DeletePoolStatus(t *testing.T) {
	t.Helper()

	if err := m.Manager.DB().Where("id = ?", entity.PoolStatusID).Delete(&model.PoolStatus{}).Error; err != nil {
		t.Fatalf("Failed to delete pool status: %v", err)
	}
}

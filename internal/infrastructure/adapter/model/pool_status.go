package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PoolStatus represents the singleton pool aggregate row
type PoolStatus struct {
	ID                 string          `gorm:"primaryKey;size:32"`
	ConversionRate     decimal.Decimal `gorm:"type:numeric(24,8);not null"`
	TotalPointsPending int64           `gorm:"not null;default:0"`
	CurrentPoolCents   int64           `gorm:"not null;default:0"`
	NextSettlementAt   *time.Time
	UpdatedAt          time.Time `gorm:"not null"`
}

// TableName specifies the table name for PoolStatus
func (PoolStatus) TableName() string {
	return "pool_status"
}

package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ConversionRequest represents the database model for pool submissions
type ConversionRequest struct {
	ID            string           `gorm:"primaryKey;size:64"`
	UserID        string           `gorm:"size:128;not null;index:idx_conversion_requests_user_submitted,priority:1"`
	PointsAmount  int64            `gorm:"not null;check:chk_conversion_requests_points_positive,points_amount > 0"`
	USDEquivalent decimal.Decimal  `gorm:"column:usd_equivalent;type:numeric(24,8);not null"`
	Status        string           `gorm:"size:16;not null;index"`
	SubmittedAt   time.Time        `gorm:"not null;index:idx_conversion_requests_user_submitted,priority:2"`
	USDReceived   *decimal.Decimal `gorm:"column:usd_received;type:numeric(24,8)"`

	User User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for ConversionRequest
func (ConversionRequest) TableName() string {
	return "conversion_requests"
}

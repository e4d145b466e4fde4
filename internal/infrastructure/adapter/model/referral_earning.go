package model

import (
	"time"
)

// ReferralEarning represents one append-only referral credit
type ReferralEarning struct {
	ID               string    `gorm:"primaryKey;size:64"`
	ReferrerID       string    `gorm:"size:128;not null;index"`
	ReferredUsername string    `gorm:"size:64;not null"`
	AmountEarned     int64     `gorm:"not null"`
	EarnedAt         time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for ReferralEarning
func (ReferralEarning) TableName() string {
	return "referral_earnings"
}

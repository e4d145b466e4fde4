package model

import (
	"time"
)

// User represents the database model for the account ledger
type User struct {
	ID       string `gorm:"primaryKey;size:128"`
	Email    string `gorm:"size:320;index"`
	Username string `gorm:"size:64;not null;uniqueIndex:idx_users_username"`
	FullName string `gorm:"size:255"`
	Country  string `gorm:"size:64"`
	Role     string `gorm:"size:32;not null;default:user"`

	BalanceCents           int64 `gorm:"not null;default:0"` // Balance in cents
	Points                 int64 `gorm:"not null;default:0;check:chk_users_points_non_negative,points >= 0"`
	ReservedForOffersCents int64 `gorm:"not null;default:0"`
	PointsPendingPool      int64 `gorm:"not null;default:0;check:chk_users_pending_non_negative,points_pending_pool >= 0"`
	PrimeLevel             int   `gorm:"not null;default:0"`
	StakedAmountCents      int64 `gorm:"not null;default:0"`
	UnstakeRequestedAt     *time.Time

	ReferralCode          string  `gorm:"size:16;not null;uniqueIndex:idx_users_referral_code"`
	ReferredBy            *string `gorm:"size:16;index"`
	TotalReferralEarnings int64   `gorm:"not null;default:0"`

	LastPoolSubmissionAt *time.Time
	CreatedAt            time.Time `gorm:"not null"`
	UpdatedAt            time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}

package entity

import (
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/rewards-pool/internal/domain/error"
	coreport "github.com/amirhossein-jamali/rewards-pool/internal/domain/port/core"
)

// User is the per-user account ledger record
type User struct {
	ID       string // Identity key issued by the identity provider
	Email    string
	Username string // Globally unique, compared case-sensitively
	FullName string
	Country  string
	Role     Role

	BalanceCents           int64 // Currency balance in cents
	Points                 int64
	ReservedForOffersCents int64
	PointsPendingPool      int64 // Points submitted to the pool and not yet settled
	PrimeLevel             int
	StakedAmountCents      int64
	UnstakeRequestedAt     *time.Time

	ReferralCode          string
	ReferredBy            *string
	TotalReferralEarnings int64

	LastPoolSubmissionAt *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// NewUserParams holds the profile fields collected by signup or onboarding
type NewUserParams struct {
	ID           string
	Email        string
	Username     string
	FullName     string
	Country      string
	ReferralCode string
	ReferredBy   string
}

// NormalizeEmail is the canonical form shared by credentials and user records
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NewUser creates a user with the default role and zeroed balances
func NewUser(params NewUserParams, timeProvider coreport.TimeProvider) (*User, error) {
	if strings.TrimSpace(params.ID) == "" {
		return nil, errs.ErrInvalidUserID
	}
	if strings.TrimSpace(params.Username) == "" {
		return nil, errs.NewFieldError("username", "is required")
	}
	if params.ReferralCode == "" {
		return nil, errs.NewFieldError("referralCode", "must be generated before creating the user")
	}

	var referredBy *string
	if code := strings.TrimSpace(params.ReferredBy); code != "" {
		referredBy = &code
	}

	now := timeProvider.Now()
	return &User{
		ID:           params.ID,
		Email:        NormalizeEmail(params.Email),
		Username:     params.Username,
		FullName:     params.FullName,
		Country:      params.Country,
		Role:         RoleUser,
		ReferralCode: params.ReferralCode,
		ReferredBy:   referredBy,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// DisplayName is the name used to greet the user
func (u *User) DisplayName() string {
	if u.Username != "" {
		return u.Username
	}
	return u.FullName
}

// Balance returns the currency balance with 2 decimal places
func (u *User) Balance() string {
	return CentsToString(u.BalanceCents)
}

// CanConvert checks if the user holds enough points for a conversion
func (u *User) CanConvert(points int64) bool {
	return points > 0 && u.Points >= points
}

// ReservePointsForPool moves points into the pending pool bucket.
// The user is left untouched when the balance is insufficient.
func (u *User) ReservePointsForPool(points int64, now time.Time) error {
	if points <= 0 {
		return errs.ErrInvalidAmount
	}
	if !u.CanConvert(points) {
		return errs.NewInsufficientPointsError(u.ID, points, u.Points)
	}
	if u.PointsPendingPool > maxInt64-points {
		return errs.ErrAmountOverflow
	}

	u.Points -= points
	u.PointsPendingPool += points
	u.LastPoolSubmissionAt = &now
	u.UpdatedAt = now
	return nil
}

// CreditReferralEarning adds referral points to the running total
func (u *User) CreditReferralEarning(amount int64, now time.Time) error {
	if amount <= 0 {
		return errs.ErrInvalidAmount
	}
	if u.TotalReferralEarnings > maxInt64-amount {
		return errs.ErrAmountOverflow
	}
	u.TotalReferralEarnings += amount
	u.UpdatedAt = now
	return nil
}

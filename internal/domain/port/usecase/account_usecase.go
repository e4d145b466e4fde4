package usecase

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/rewards-pool/internal/domain/entity"
)

// SignUpInput is the email/password signup form
type SignUpInput struct {
	Email        string
	Password     string
	FullName     string
	Username     string
	Country      string
	ReferralCode string // Code of the referring user, optional
}

// OnboardingInput is the form completed after a first federated sign-in
type OnboardingInput struct {
	Username     string
	Country      string
	ReferralCode string
}

// AuthResult is returned by every sign-in path
type AuthResult struct {
	Session  *entity.Session
	User     *entity.User // Set by signup and onboarding
	Decision entity.AccessDecision
}

// Dashboard is the signed-in user's overview
type Dashboard struct {
	UserID                string
	Greeting              string
	Balance               string
	ReservedForOffers     string
	Points                int64
	PointsPendingPool     int64
	PrimeLevel            int
	StakedAmount          string
	UnstakeRequestedAt    *time.Time
	ReferralCode          string
	ReferralLink          string
	TotalReferralEarnings int64
	Referrals             []entity.ReferralSummary
}

// ReferralCreditInput credits a referrer for activity of a referred user
type ReferralCreditInput struct {
	ReferrerID       string
	ReferredUsername string
	Amount           int64
}

// AccountUseCase covers signup, sign-in, onboarding and the account ledger views
type AccountUseCase interface {
	SignUp(ctx context.Context, in SignUpInput) (*AuthResult, error)
	SignIn(ctx context.Context, email, password string) (*AuthResult, error)
	SignInFederated(ctx context.Context, assertion string) (*AuthResult, error)
	CompleteOnboarding(ctx context.Context, session *entity.Session, in OnboardingInput) (*AuthResult, error)
	SignOut(ctx context.Context, token string) error

	// GetDashboard returns ErrProfileNotFound when the signed-in user has no record
	GetDashboard(ctx context.Context, userID string) (*Dashboard, error)
	ListReferralSummaries(ctx context.Context, userID string) ([]entity.ReferralSummary, error)
	CreditReferralEarning(ctx context.Context, in ReferralCreditInput) (*entity.ReferralEarning, error)
}

package account

import (
	"github.com/amirhossein-jamali/rewards-pool/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/rewards-pool/internal/domain/port/core"
	"github.com/amirhossein-jamali/rewards-pool/internal/domain/port/identity"
	"github.com/amirhossein-jamali/rewards-pool/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/rewards-pool/internal/domain/port/usecase"
)

// DefaultReferralCodeAttempts bounds referral code regeneration on collisions
const DefaultReferralCodeAttempts = 5

// MinPasswordLength is the shortest password accepted at signup
const MinPasswordLength = 6

// Options tunes the account use case
type Options struct {
	ReferralLinkBase     string // Sign-up page URL that referral codes are appended to
	ReferralCodeAttempts int
}

// AccountUseCase implements signup, sign-in, onboarding and the account ledger views
type AccountUseCase struct {
	uow          persistence.UnitOfWork
	identity     identity.Provider
	staging      persistence.ProfileStagingStore
	access       usecase.AccessUseCase
	ids          coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger

	referralLinkBase     string
	referralCodeAttempts int
	referralCodes        func() (string, error)
}

var _ usecase.AccountUseCase = (*AccountUseCase)(nil)

// NewAccountUseCase creates a new account use case instance
func NewAccountUseCase(
	uow persistence.UnitOfWork,
	identityProvider identity.Provider,
	staging persistence.ProfileStagingStore,
	access usecase.AccessUseCase,
	ids coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	opts Options,
) *AccountUseCase {
	attempts := opts.ReferralCodeAttempts
	if attempts <= 0 {
		attempts = DefaultReferralCodeAttempts
	}

	return &AccountUseCase{
		uow:                  uow,
		identity:             identityProvider,
		staging:              staging,
		access:               access,
		ids:                  ids,
		timeProvider:         timeProvider,
		logger:               logger,
		referralLinkBase:     opts.ReferralLinkBase,
		referralCodeAttempts: attempts,
		referralCodes:        entity.NewReferralCode,
	}
}

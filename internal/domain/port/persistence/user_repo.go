package persistence

import (
	"context"

	"github.com/amirhossein-jamali/rewards-pool/internal/domain/entity"
)

// UserRepository defines methods to interact with user records
type UserRepository interface {
	// GetByID retrieves a user by identity key
	//
	// Possible errors:
	// - ErrUserNotFound: If no user record exists for the id
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id string) (*entity.User, error)

	// GetByIDForUpdate retrieves a user and locks the row until the surrounding transaction ends.
	// Must be called with a transactional context.
	//
	// Possible errors:
	// - ErrUserNotFound: If no user record exists for the id
	// - ErrDatabaseConnection: If database connection fails
	GetByIDForUpdate(ctx context.Context, id string) (*entity.User, error)

	// UsernameExists checks for an exact, case-sensitive username match
	UsernameExists(ctx context.Context, username string) (bool, error)

	// ReferralCodeExists checks whether a referral code is already allocated
	ReferralCodeExists(ctx context.Context, code string) (bool, error)

	// Create saves a new user record
	//
	// Possible errors:
	// - ErrDuplicateUser: If a record with the same id already exists
	// - ErrUsernameTaken: If the username is already used
	// - ErrReferralCodeTaken: If the referral code collides
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, user *entity.User) error

	// Update writes the mutable ledger fields of the user
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	// - ErrConstraintViolation: If a balance would become negative
	// - ErrDatabaseConnection: If database connection fails
	Update(ctx context.Context, user *entity.User) error
}

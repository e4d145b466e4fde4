package persistence

import (
	"context"
)

// TxFunc is the body of a transactional unit of work
type TxFunc func(ctx context.Context) error

// UnitOfWork defines an interface for coordinating transaction operations
// across multiple repositories to maintain data consistency
type UnitOfWork interface {
	// RunInTransaction runs fn inside a single storage transaction.
	// The transaction commits when fn returns nil and rolls back otherwise.
	// Serialization conflicts are retried by re-running fn from the start,
	// so fn must not have side effects outside the transaction.
	RunInTransaction(ctx context.Context, fn TxFunc) error

	// GetUserRepository returns a user repository bound to the current transaction
	GetUserRepository(ctx context.Context) UserRepository

	// GetPoolRepository returns a pool repository bound to the current transaction
	GetPoolRepository(ctx context.Context) PoolRepository

	// GetConversionRepository returns a conversion repository bound to the current transaction
	GetConversionRepository(ctx context.Context) ConversionRepository

	// GetReferralRepository returns a referral repository bound to the current transaction
	GetReferralRepository(ctx context.Context) ReferralRepository
}

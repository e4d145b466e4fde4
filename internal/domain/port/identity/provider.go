package identity

import (
	"context"

	"github.com/amirhossein-jamali/rewards-pool/internal/domain/entity"
)

// Provider is the authentication provider
type Provider interface {
	// CreateAccount registers email/password credentials and opens a session.
	// Returns ErrEmailInUse when the email is already registered.
	CreateAccount(ctx context.Context, email, password, displayName string) (*entity.Session, error)

	// DeleteAccount removes credentials created by CreateAccount when the profile could not be stored
	DeleteAccount(ctx context.Context, userID string) error

	// SignIn opens a session. Returns ErrInvalidCredentials on a bad email or password.
	SignIn(ctx context.Context, email, password string) (*entity.Session, error)

	// SignInFederated verifies a signed assertion from a federated identity provider and opens a session
	SignInFederated(ctx context.Context, assertion string) (*entity.Session, error)

	// SignOut revokes the session carried by token
	SignOut(ctx context.Context, token string) error

	// ResolveSession returns the session for a token, or ErrUnauthenticated
	ResolveSession(ctx context.Context, token string) (*entity.Session, error)
}

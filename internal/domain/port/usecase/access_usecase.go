package usecase

import (
	"context"

	"github.com/amirhossein-jamali/rewards-pool/internal/domain/entity"
)

// AccessUseCase decides page access from session presence and role
type AccessUseCase interface {
	// Authorize is evaluated at every protected entry point. A nil session means signed out.
	Authorize(ctx context.Context, session *entity.Session, page entity.Page) entity.AccessDecision

	// ResolveDashboard returns the landing page for a signed-in user.
	// Never fails: lookup errors fall back to the general dashboard.
	ResolveDashboard(ctx context.Context, userID string) entity.Page

	// RequireRole loads the user and checks the role is one of roles
	//
	// Possible errors:
	// - ErrProfileNotFound: If the user has no record yet
	// - ErrForbidden: If the role is not allowed
	RequireRole(ctx context.Context, userID string, roles ...entity.Role) (*entity.User, error)
}

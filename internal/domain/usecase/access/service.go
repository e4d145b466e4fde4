package access

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/rewards-pool/internal/domain/entity"
	errs "github.com/amirhossein-jamali/rewards-pool/internal/domain/error"
	coreport "github.com/amirhossein-jamali/rewards-pool/internal/domain/port/core"
	"github.com/amirhossein-jamali/rewards-pool/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/rewards-pool/internal/domain/port/usecase"
)

// Service implements page access control
type Service struct {
	userRepo persistence.UserRepository
	logger   coreport.Logger
}

var _ usecase.AccessUseCase = (*Service)(nil)

// NewService creates a new access service
func NewService(userRepo persistence.UserRepository, logger coreport.Logger) *Service {
	return &Service{userRepo: userRepo, logger: logger}
}

// Authorize decides whether the caller may view page
func (s *Service) Authorize(ctx context.Context, session *entity.Session, page entity.Page) entity.AccessDecision {
	if session == nil {
		if page.IsProtected() {
			return entity.RedirectTo(entity.PageAuth)
		}
		return entity.Allow()
	}

	if page.IsSignIn() {
		return entity.RedirectTo(s.ResolveDashboard(ctx, session.UserID))
	}
	return entity.Allow()
}

// ResolveDashboard picks the landing page from the user's role.
// A user without a record goes to onboarding. Lookup failures fall back to the general dashboard.
func (s *Service) ResolveDashboard(ctx context.Context, userID string) entity.Page {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return entity.PageOnboarding
		}
		s.logger.Error("Failed to resolve dashboard, using default", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return entity.PageDashboard
	}
	return user.Role.Dashboard()
}

// RequireRole loads the user and checks its role
func (s *Service) RequireRole(ctx context.Context, userID string, roles ...entity.Role) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return nil, errs.ErrProfileNotFound
		}
		return nil, err
	}

	for _, role := range roles {
		if user.Role == role {
			return user, nil
		}
	}

	s.logger.Warn("Role check failed", map[string]any{
		"user_id": userID,
		"role":    string(user.Role),
	})
	return nil, errs.ErrForbidden
}

package account

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/rewards-pool/internal/domain/entity"
	"github.com/amirhossein-jamali/rewards-pool/internal/domain/port/usecase"
)

// SignIn opens a session and picks the landing page
func (u *AccountUseCase) SignIn(ctx context.Context, email, password string) (*usecase.AuthResult, error) {
	session, err := u.identity.SignIn(ctx, strings.TrimSpace(email), password)
	if err != nil {
		return nil, err
	}

	return &usecase.AuthResult{
		Session:  session,
		Decision: entity.RedirectTo(u.access.ResolveDashboard(ctx, session.UserID)),
	}, nil
}

// SignInFederated opens a session from a federated assertion.
// First-time users get their name and email staged and are sent to onboarding.
func (u *AccountUseCase) SignInFederated(ctx context.Context, assertion string) (*usecase.AuthResult, error) {
	session, err := u.identity.SignInFederated(ctx, assertion)
	if err != nil {
		return nil, err
	}

	target := u.access.ResolveDashboard(ctx, session.UserID)
	if target == entity.PageOnboarding {
		staged := entity.StagedProfile{FullName: session.DisplayName, Email: session.Email}
		if err := u.staging.Stage(ctx, session.UserID, staged); err != nil {
			// Onboarding falls back to the session fields
			u.logger.Warn("Failed to stage federated profile", map[string]any{
				"user_id": session.UserID,
				"error":   err.Error(),
			})
		}
	}

	return &usecase.AuthResult{
		Session:  session,
		Decision: entity.RedirectTo(target),
	}, nil
}

// SignOut revokes the session
func (u *AccountUseCase) SignOut(ctx context.Context, token string) error {
	return u.identity.SignOut(ctx, token)
}

package account

import (
	"context"
	"errors"
	"strings"

	"github.com/amirhossein-jamali/rewards-pool/internal/domain/entity"
	errs "github.com/amirhossein-jamali/rewards-pool/internal/domain/error"
	"github.com/amirhossein-jamali/rewards-pool/internal/domain/port/usecase"
)

// SignUp creates credentials and the user record for an email/password signup.
// The username is checked before any account is created.
func (u *AccountUseCase) SignUp(ctx context.Context, in usecase.SignUpInput) (*usecase.AuthResult, error) {
	in.Email = entity.NormalizeEmail(in.Email)
	in.Username = strings.TrimSpace(in.Username)
	if err := validateSignUp(in); err != nil {
		return nil, err
	}

	if err := u.ensureUsernameFree(ctx, in.Username); err != nil {
		return nil, err
	}

	session, err := u.identity.CreateAccount(ctx, in.Email, in.Password, in.FullName)
	if err != nil {
		u.logger.Warn("Account creation failed", map[string]any{
			"email": in.Email,
			"error": err.Error(),
		})
		return nil, err
	}

	user, err := u.createProfile(ctx, entity.NewUserParams{
		ID:         session.UserID,
		Email:      in.Email,
		Username:   in.Username,
		FullName:   strings.TrimSpace(in.FullName),
		Country:    strings.TrimSpace(in.Country),
		ReferredBy: in.ReferralCode,
	})
	if err != nil {
		// Roll back the credentials so the email can sign up again
		if delErr := u.identity.DeleteAccount(ctx, session.UserID); delErr != nil {
			u.logger.Error("Failed to remove credentials after profile creation failed", map[string]any{
				"user_id": session.UserID,
				"error":   delErr.Error(),
			})
		}
		return nil, err
	}

	return &usecase.AuthResult{
		Session:  session,
		User:     user,
		Decision: entity.RedirectTo(user.Role.Dashboard()),
	}, nil
}

// CompleteOnboarding creates the user record after a first federated sign-in
func (u *AccountUseCase) CompleteOnboarding(ctx context.Context, session *entity.Session, in usecase.OnboardingInput) (*usecase.AuthResult, error) {
	if session == nil {
		return nil, errs.ErrUnauthenticated
	}
	in.Username = strings.TrimSpace(in.Username)
	if in.Username == "" {
		return nil, errs.NewFieldError("username", "is required")
	}

	users := u.uow.GetUserRepository(ctx)
	if existing, err := users.GetByID(ctx, session.UserID); err == nil {
		return &usecase.AuthResult{
			Session:  session,
			User:     existing,
			Decision: entity.RedirectTo(existing.Role.Dashboard()),
		}, nil
	} else if !errors.Is(err, errs.ErrUserNotFound) {
		return nil, err
	}

	if err := u.ensureUsernameFree(ctx, in.Username); err != nil {
		return nil, err
	}

	fullName, email := u.onboardingIdentity(ctx, session)
	user, err := u.createProfile(ctx, entity.NewUserParams{
		ID:         session.UserID,
		Email:      email,
		Username:   in.Username,
		FullName:   fullName,
		Country:    strings.TrimSpace(in.Country),
		ReferredBy: in.ReferralCode,
	})
	if err != nil {
		return nil, err
	}

	if err := u.staging.Clear(ctx, session.UserID); err != nil {
		u.logger.Warn("Failed to clear staged profile", map[string]any{
			"user_id": session.UserID,
			"error":   err.Error(),
		})
	}

	return &usecase.AuthResult{
		Session:  session,
		User:     user,
		Decision: entity.RedirectTo(user.Role.Dashboard()),
	}, nil
}

// onboardingIdentity prefers the staged profile, then the session, then a placeholder name
func (u *AccountUseCase) onboardingIdentity(ctx context.Context, session *entity.Session) (string, string) {
	var staged entity.StagedProfile
	if profile, err := u.staging.Get(ctx, session.UserID); err == nil {
		staged = *profile
	} else if !errors.Is(err, errs.ErrStagedProfileNotFound) {
		u.logger.Warn("Failed to read staged profile", map[string]any{
			"user_id": session.UserID,
			"error":   err.Error(),
		})
	}

	fullName := firstNonEmpty(staged.FullName, session.DisplayName, entity.DefaultFullName)
	email := firstNonEmpty(staged.Email, session.Email)
	return fullName, email
}

func (u *AccountUseCase) ensureUsernameFree(ctx context.Context, username string) error {
	taken, err := u.uow.GetUserRepository(ctx).UsernameExists(ctx, username)
	if err != nil {
		return err
	}
	if taken {
		return errs.ErrUsernameTaken
	}
	return nil
}

// createProfile stores a new user with a fresh referral code.
// Colliding codes are regenerated a bounded number of times.
func (u *AccountUseCase) createProfile(ctx context.Context, params entity.NewUserParams) (*entity.User, error) {
	users := u.uow.GetUserRepository(ctx)

	for attempt := 1; attempt <= u.referralCodeAttempts; attempt++ {
		code, err := u.referralCodes()
		if err != nil {
			return nil, err
		}

		exists, err := users.ReferralCodeExists(ctx, code)
		if err != nil {
			return nil, err
		}
		if exists {
			continue
		}

		params.ReferralCode = code
		user, err := entity.NewUser(params, u.timeProvider)
		if err != nil {
			return nil, err
		}

		err = users.Create(ctx, user)
		if errors.Is(err, errs.ErrReferralCodeTaken) {
			continue
		}
		if err != nil {
			u.logger.Error("Failed to create user", map[string]any{
				"user_id":  params.ID,
				"username": params.Username,
				"error":    err.Error(),
			})
			return nil, err
		}

		u.logger.Info("User created", map[string]any{
			"user_id":       user.ID,
			"username":      user.Username,
			"referral_code": user.ReferralCode,
			"referred":      user.ReferredBy != nil,
		})
		return user, nil
	}

	u.logger.Error("Could not allocate a unique referral code", map[string]any{
		"user_id":  params.ID,
		"attempts": u.referralCodeAttempts,
	})
	return nil, errs.ErrReferralCodeTaken
}

func validateSignUp(in usecase.SignUpInput) error {
	if in.Email == "" || !strings.Contains(in.Email, "@") {
		return errs.NewFieldError("email", "must be a valid email address")
	}
	if len(in.Password) < MinPasswordLength {
		return errs.NewFieldError("password", "must be at least 6 characters")
	}
	if in.Username == "" {
		return errs.NewFieldError("username", "is required")
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

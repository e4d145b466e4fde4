package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amirhossein-jamali/rewards-pool/internal/domain/entity"
	errs "github.com/amirhossein-jamali/rewards-pool/internal/domain/error"
	coreport "github.com/amirhossein-jamali/rewards-pool/internal/domain/port/core"
	identityport "github.com/amirhossein-jamali/rewards-pool/internal/domain/port/identity"
	"github.com/amirhossein-jamali/rewards-pool/internal/infrastructure/adapter/model"
	"github.com/amirhossein-jamali/rewards-pool/internal/infrastructure/adapter/repository"
)

// federatedUserPrefix namespaces identity keys of federated accounts
const federatedUserPrefix = "fed_"

// Options configures the provider
type Options struct {
	Issuer            string
	SessionTTL        time.Duration
	FederatedIssuer   string
	FederatedAudience string
	Secrets           Secrets
	BcryptCost        int
}

// Provider is the built-in identity provider. Credentials and revoked sessions live in the
// application database, sessions are stateless HS256 tokens.
type Provider struct {
	db           *gorm.DB
	ids          coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	classifier   *repository.ErrorClassifier
	options      Options
}

var _ identityport.Provider = (*Provider)(nil)

// NewProvider creates a new Provider
func NewProvider(db *gorm.DB, ids coreport.IDGenerator, timeProvider coreport.TimeProvider, logger coreport.Logger, options Options) *Provider {
	if options.SessionTTL <= 0 {
		options.SessionTTL = 24 * time.Hour
	}
	if options.BcryptCost == 0 {
		options.BcryptCost = bcrypt.DefaultCost
	}
	return &Provider{
		db:           db,
		ids:          ids,
		timeProvider: timeProvider,
		logger:       logger,
		classifier:   repository.NewErrorClassifier(),
		options:      options,
	}
}

// CreateAccount registers email/password credentials and opens a session
func (p *Provider) CreateAccount(ctx context.Context, email, password, displayName string) (*entity.Session, error) {
	email = entity.NormalizeEmail(email)
	if email == "" {
		return nil, errs.NewFieldError("email", "is required")
	}
	if password == "" {
		return nil, errs.NewFieldError("password", "is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), p.options.BcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, errs.NewFieldError("password", "is too long")
		}
		return nil, fmt.Errorf("%w: hashing password: %w", errs.ErrInternalServer, err)
	}

	credential := model.Credential{
		UserID:       p.ids.NewID(),
		Email:        email,
		PasswordHash: string(hash),
		DisplayName:  strings.TrimSpace(displayName),
		CreatedAt:    p.timeProvider.Now(),
	}
	if err := p.db.WithContext(ctx).Create(&credential).Error; err != nil {
		if p.classifier.DuplicateColumn(err, "email") != "" {
			return nil, errs.ErrEmailInUse
		}
		p.logger.Error("Failed to store credentials", map[string]any{
			"email": email,
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: %w", errs.ErrDatabaseConnection, err)
	}

	p.logger.Info("Account created", map[string]any{"user_id": credential.UserID})
	return p.issueSession(credential.UserID, credential.Email, credential.DisplayName)
}

// DeleteAccount removes credentials created by CreateAccount
func (p *Provider) DeleteAccount(ctx context.Context, userID string) error {
	if err := p.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.Credential{}).Error; err != nil {
		return fmt.Errorf("%w: %w", errs.ErrDatabaseConnection, err)
	}
	p.logger.Info("Account removed", map[string]any{"user_id": userID})
	return nil
}

// SignIn checks the password and opens a session
func (p *Provider) SignIn(ctx context.Context, email, password string) (*entity.Session, error) {
	var credential model.Credential
	err := p.db.WithContext(ctx).Where("email = ?", entity.NormalizeEmail(email)).Take(&credential).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrDatabaseConnection, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(credential.PasswordHash), []byte(password)); err != nil {
		p.logger.Warn("Password mismatch", map[string]any{"user_id": credential.UserID})
		return nil, errs.ErrInvalidCredentials
	}

	return p.issueSession(credential.UserID, credential.Email, credential.DisplayName)
}

// SignInFederated verifies the assertion and opens a session for its subject
func (p *Provider) SignInFederated(ctx context.Context, assertion string) (*entity.Session, error) {
	claims, err := parseAssertion(assertion, []byte(p.options.Secrets.FederatedSigningKey),
		p.options.FederatedIssuer, p.options.FederatedAudience, p.timeProvider.Now)
	if err != nil {
		p.logger.Warn("Rejected federated assertion", map[string]any{"error": err.Error()})
		return nil, err
	}

	userID := federatedUserPrefix + strings.TrimSpace(claims.Subject)
	return p.issueSession(userID, entity.NormalizeEmail(claims.Email), strings.TrimSpace(claims.Name))
}

// SignOut revokes the session. Signing out with an invalid or expired token is a no-op.
func (p *Provider) SignOut(ctx context.Context, token string) error {
	claims, err := parseSession(token, []byte(p.options.Secrets.SessionSigningKey), p.options.Issuer, p.timeProvider.Now)
	if err != nil {
		return nil
	}

	revoked := model.RevokedSession{
		TokenID:   claims.ID,
		UserID:    claims.Subject,
		ExpiresAt: claims.ExpiresAt.Time,
		RevokedAt: p.timeProvider.Now(),
	}
	err = p.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&revoked).Error
	if err != nil {
		return fmt.Errorf("%w: %w", errs.ErrDatabaseConnection, err)
	}

	p.logger.Info("Session revoked", map[string]any{"user_id": claims.Subject})
	return nil
}

// ResolveSession verifies the token and checks it was not revoked
func (p *Provider) ResolveSession(ctx context.Context, token string) (*entity.Session, error) {
	claims, err := parseSession(token, []byte(p.options.Secrets.SessionSigningKey), p.options.Issuer, p.timeProvider.Now)
	if err != nil {
		return nil, err
	}

	var count int64
	if err := p.db.WithContext(ctx).Model(&model.RevokedSession{}).Where("token_id = ?", claims.ID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrDatabaseConnection, err)
	}
	if count > 0 {
		return nil, errs.ErrUnauthenticated
	}

	return &entity.Session{
		UserID:      claims.Subject,
		Email:       claims.Email,
		DisplayName: claims.Name,
		Token:       strings.TrimSpace(token),
		ExpiresAt:   claims.ExpiresAt.Time,
	}, nil
}

// PurgeExpiredRevocations drops revocations of tokens that have expired anyway
func (p *Provider) PurgeExpiredRevocations(ctx context.Context) (int64, error) {
	result := p.db.WithContext(ctx).Where("expires_at < ?", p.timeProvider.Now()).Delete(&model.RevokedSession{})
	if result.Error != nil {
		return 0, fmt.Errorf("%w: %w", errs.ErrDatabaseConnection, result.Error)
	}
	return result.RowsAffected, nil
}

func (p *Provider) issueSession(userID, email, displayName string) (*entity.Session, error) {
	now := p.timeProvider.Now()
	expiresAt := now.Add(p.options.SessionTTL)

	token, err := signSession(sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    p.options.Issuer,
			Subject:   userID,
			ID:        p.ids.NewID(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Email: email,
		Name:  displayName,
	}, []byte(p.options.Secrets.SessionSigningKey))
	if err != nil {
		return nil, fmt.Errorf("%w: signing session: %w", errs.ErrInternalServer, err)
	}

	return &entity.Session{
		UserID:      userID,
		Email:       email,
		DisplayName: displayName,
		Token:       token,
		ExpiresAt:   expiresAt,
	}, nil
}

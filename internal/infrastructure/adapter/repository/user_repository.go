package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amirhossein-jamali/rewards-pool/internal/domain/entity"
	errs "github.com/amirhossein-jamali/rewards-pool/internal/domain/error"
	coreport "github.com/amirhossein-jamali/rewards-pool/internal/domain/port/core"
	"github.com/amirhossein-jamali/rewards-pool/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/rewards-pool/internal/infrastructure/adapter/model"
)

// UserRepository implements UserRepository interface using GORM
type UserRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

var _ persistence.UserRepository = (*UserRepository)(nil)

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, userID string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Debug("User not found", map[string]any{
			"user_id": userID,
		})
		return errs.ErrUserNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"user_id":    userID,
		"error":      err.Error(),
		"error_type": string(r.errorClassifier.Classify(err)),
	})

	switch r.errorClassifier.DuplicateColumn(err, "username", "referral_code") {
	case "username":
		return errs.ErrUsernameTaken
	case "referral_code":
		return errs.ErrReferralCodeTaken
	}

	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrDuplicateUser
	}

	if r.errorClassifier.IsLockError(err) {
		r.logger.Warn("User row is held by a concurrent transaction", map[string]any{
			"user_id": userID,
		})
	}
	return r.errorClassifier.ToDomainError(err)
}

// GetByID retrieves a user by identity key
func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.logger.Debug("Getting user by ID", map[string]any{
		"user_id": id,
	})

	var userModel model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&userModel).Error; err != nil {
		return nil, r.handleDatabaseError("getting user", err, id)
	}

	return userModel.ToEntity(), nil
}

// GetByIDForUpdate retrieves a user and takes a row lock for the surrounding transaction
func (r *UserRepository) GetByIDForUpdate(ctx context.Context, id string) (*entity.User, error) {
	r.logger.Debug("Locking user row", map[string]any{
		"user_id": id,
	})

	var userModel model.User
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("id = ?", id).
		Take(&userModel).Error
	if err != nil {
		return nil, r.handleDatabaseError("locking user", err, id)
	}

	return userModel.ToEntity(), nil
}

// UsernameExists checks for an exact, case-sensitive username match
func (r *UserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return false, r.handleDatabaseError("checking username", err, "")
	}
	return count > 0, nil
}

// ReferralCodeExists checks whether a referral code is already allocated
func (r *UserRepository) ReferralCodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.User{}).Where("referral_code = ?", code).Count(&count).Error; err != nil {
		return false, r.handleDatabaseError("checking referral code", err, "")
	}
	return count > 0, nil
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	r.logger.Debug("Creating new user", map[string]any{
		"user_id":  user.ID,
		"username": user.Username,
	})

	if err := r.db.WithContext(ctx).Create(model.UserFromEntity(user)).Error; err != nil {
		return r.handleDatabaseError("creating user", err, user.ID)
	}

	r.logger.Info("User created successfully", map[string]any{
		"user_id":       user.ID,
		"username":      user.Username,
		"referral_code": user.ReferralCode,
	})
	return nil
}

// Update writes the mutable ledger fields of the user
func (r *UserRepository) Update(ctx context.Context, user *entity.User) error {
	r.logger.Debug("Updating user", map[string]any{
		"user_id":             user.ID,
		"points":              user.Points,
		"points_pending_pool": user.PointsPendingPool,
	})

	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"balance_cents":             user.BalanceCents,
			"points":                    user.Points,
			"reserved_for_offers_cents": user.ReservedForOffersCents,
			"points_pending_pool":       user.PointsPendingPool,
			"prime_level":               user.PrimeLevel,
			"staked_amount_cents":       user.StakedAmountCents,
			"unstake_requested_at":      user.UnstakeRequestedAt,
			"total_referral_earnings":   user.TotalReferralEarnings,
			"last_pool_submission_at":   user.LastPoolSubmissionAt,
			"updated_at":                user.UpdatedAt,
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating user", result.Error, user.ID)
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("User not found during update", map[string]any{
			"user_id": user.ID,
		})
		return errs.ErrUserNotFound
	}

	return nil
}

package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amirhossein-jamali/rewards-pool/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/rewards-pool/internal/domain/port/core"
	"github.com/amirhossein-jamali/rewards-pool/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/rewards-pool/internal/infrastructure/adapter/model"
)

// ConversionRepository stores conversion requests using GORM
type ConversionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

var _ persistence.ConversionRepository = (*ConversionRepository)(nil)

// NewConversionRepository creates a new ConversionRepository instance
func NewConversionRepository(db *gorm.DB, logger coreport.Logger) *ConversionRepository {
	return &ConversionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *ConversionRepository) mapError(operation string, err error) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"error":      err.Error(),
		"error_type": string(r.errorClassifier.Classify(err)),
	})
	return r.errorClassifier.ToDomainError(err)
}

// Create saves a new conversion request
func (r *ConversionRepository) Create(ctx context.Context, request *entity.ConversionRequest) error {
	row := model.ConversionRequestFromEntity(request)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(row).Error; err != nil {
		return r.mapError("creating conversion request", err)
	}

	r.logger.Debug("Conversion request stored", map[string]any{
		"request_id":    request.ID,
		"user_id":       request.UserID,
		"points_amount": request.PointsAmount,
	})
	return nil
}

// ListByUser returns the user's requests, newest first
func (r *ConversionRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.ConversionRequest, error) {
	var rows []model.ConversionRequest
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("submitted_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, r.mapError("listing user conversion requests", err)
	}
	return toConversionEntities(rows), nil
}

// ListPending returns pending requests, oldest first
func (r *ConversionRepository) ListPending(ctx context.Context, limit int) ([]*entity.ConversionRequest, error) {
	var rows []model.ConversionRequest
	err := r.db.WithContext(ctx).
		Where("status = ?", string(entity.ConversionPending)).
		Order("submitted_at ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, r.mapError("listing pending conversion requests", err)
	}
	return toConversionEntities(rows), nil
}

func toConversionEntities(rows []model.ConversionRequest) []*entity.ConversionRequest {
	out := make([]*entity.ConversionRequest, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToEntity())
	}
	return out
}

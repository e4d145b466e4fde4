package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/rewards-pool/internal/domain/entity"
)

// Listing limits shared by the pool listings and their HTTP handlers
const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// ConversionResult is the committed outcome of a conversion submission
type ConversionResult struct {
	Request *entity.ConversionRequest
	User    *entity.User
	Pool    *entity.PoolStatus
}

// PoolUseCase is the user-facing conversion pool
type PoolUseCase interface {
	// SubmitConversion converts points into a pending pool request
	//
	// Possible errors:
	// - ErrBelowMinimumConversion: If points is below the minimum (no storage access happens)
	// - ErrInsufficientPoints: If the user holds fewer points
	// - ErrUserNotFound, ErrPoolStatusNotFound: If a record is missing
	SubmitConversion(ctx context.Context, userID string, points int64) (*ConversionResult, error)

	ListConversions(ctx context.Context, userID string, limit int) ([]*entity.ConversionRequest, error)
	GetPoolStatus(ctx context.Context) (*entity.PoolStatus, error)
}

// SettlementUseCase is the admin control surface over the pool
type SettlementUseCase interface {
	GetPoolStatus(ctx context.Context) (*entity.PoolStatus, error)
	SetNextSettlementTime(ctx context.Context, at time.Time) (*entity.PoolStatus, error)
	SetConversionRate(ctx context.Context, rate decimal.Decimal) (*entity.PoolStatus, error)
	ListPendingConversions(ctx context.Context, limit int) ([]*entity.ConversionRequest, error)

	// TriggerSettlement always returns ErrSettlementNotImplemented; settlement runs as an external job
	TriggerSettlement(ctx context.Context) error
}

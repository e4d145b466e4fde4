package pool

import (
	coreport "github.com/amirhossein-jamali/rewards-pool/internal/domain/port/core"
	"github.com/amirhossein-jamali/rewards-pool/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/rewards-pool/internal/domain/port/usecase"
)

// Options tunes the pool service
type Options struct {
	MinimumPoints int64
	QueueSize     int
}

// Service implements the conversion pool and its admin surface
type Service struct {
	uow          persistence.UnitOfWork
	ids          coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	validator    *ConversionValidator
	queue        *UserQueue
}

var (
	_ usecase.PoolUseCase       = (*Service)(nil)
	_ usecase.SettlementUseCase = (*Service)(nil)
)

// NewService creates a new pool service
func NewService(
	uow persistence.UnitOfWork,
	ids coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	opts Options,
) *Service {
	return &Service{
		uow:          uow,
		ids:          ids,
		timeProvider: timeProvider,
		logger:       logger,
		validator:    NewConversionValidator(opts.MinimumPoints),
		queue:        NewUserQueue(logger, opts.QueueSize),
	}
}

// Shutdown waits for queued conversions to finish. Used for graceful shutdown.
func (s *Service) Shutdown() {
	s.queue.Shutdown()
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return usecase.DefaultListLimit
	}
	if limit > usecase.MaxListLimit {
		return usecase.MaxListLimit
	}
	return limit
}

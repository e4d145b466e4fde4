package database

import (
	"context"
	"time"

	coreport "github.com/amirhossein-jamali/rewards-pool/internal/domain/port/core"
	"github.com/amirhossein-jamali/rewards-pool/internal/infrastructure/adapter/logger"
)

// QueryMetrics holds metrics about a database operation
type QueryMetrics struct {
	Operation    string
	Duration     time.Duration
	Failed       bool
	ErrorMessage string
}

// MetricsCollector measures database operations and reports slow ones
type MetricsCollector struct {
	logger        coreport.Logger
	timeProvider  coreport.TimeProvider
	slowThreshold time.Duration
}

// NewMetricsCollector creates a new metrics collector
func NewMetricsCollector(logger coreport.Logger, timeProvider coreport.TimeProvider, slowThreshold time.Duration) *MetricsCollector {
	return &MetricsCollector{
		logger:        logger,
		timeProvider:  timeProvider,
		slowThreshold: slowThreshold,
	}
}

// Measure runs fn and records how long it took
func (c *MetricsCollector) Measure(ctx context.Context, operation string, fn func() error) (*QueryMetrics, error) {
	start := c.timeProvider.Now()

	err := fn()

	metrics := &QueryMetrics{
		Operation: operation,
		Duration:  c.timeProvider.Since(start).Std(),
		Failed:    err != nil,
	}
	if err != nil {
		metrics.ErrorMessage = err.Error()
	}

	if c.slowThreshold > 0 && metrics.Duration > c.slowThreshold {
		fields := map[string]any{
			"operation":     operation,
			"duration_ms":   metrics.Duration.Milliseconds(),
			"failed":        metrics.Failed,
			"error_message": metrics.ErrorMessage,
		}
		if requestID := logger.RequestIDFromContext(ctx); requestID != "" {
			fields["request_id"] = requestID
		}
		c.logger.Warn("Slow database operation detected", fields)
	}

	return metrics, err
}

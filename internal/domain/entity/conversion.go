package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ConversionStatus is the settlement state of a conversion request
type ConversionStatus string

// Conversion statuses
const (
	ConversionPending   ConversionStatus = "pending"
	ConversionProcessed ConversionStatus = "processed"
)

// ConversionRequest records a user's request to convert points into currency
type ConversionRequest struct {
	ID            string
	UserID        string
	PointsAmount  int64
	USDEquivalent decimal.Decimal // PointsAmount / rate at submission time
	Status        ConversionStatus
	SubmittedAt   time.Time
	USDReceived   *decimal.Decimal // Set by the settlement job once processed
}

// NewConversionRequest creates a pending request
func NewConversionRequest(id, userID string, points int64, usd decimal.Decimal, now time.Time) *ConversionRequest {
	return &ConversionRequest{
		ID:            id,
		UserID:        userID,
		PointsAmount:  points,
		USDEquivalent: usd,
		Status:        ConversionPending,
		SubmittedAt:   now,
	}
}

// IsPending reports whether the request is waiting for settlement
func (c *ConversionRequest) IsPending() bool {
	return c.Status == ConversionPending
}

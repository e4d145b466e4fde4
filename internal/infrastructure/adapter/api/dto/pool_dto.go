package dto

import (
	"time"

	"github.com/amirhossein-jamali/rewards-pool/internal/domain/entity"
	"github.com/amirhossein-jamali/rewards-pool/internal/domain/port/usecase"
)

// ConversionSubmitRequest represents the API request for converting points
type ConversionSubmitRequest struct {
	Points int64 `json:"points" binding:"required"`
}

// ConversionResponse represents a stored conversion request
type ConversionResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	PointsAmount  int64     `json:"pointsAmount"`
	USDEquivalent string    `json:"usdEquivalent"`
	Status        string    `json:"status"`
	SubmittedAt   time.Time `json:"submittedAt"`
	USDReceived   *string   `json:"usdReceived,omitempty"`
}

// ConversionSubmitResponse is returned once a conversion is committed
type ConversionSubmitResponse struct {
	Request           ConversionResponse `json:"request"`
	PointsLeft        int64              `json:"pointsLeft"`
	PointsPendingPool int64              `json:"pointsPendingPool"`
	Message           string             `json:"message"`
}

// PoolStatusResponse represents the pool aggregates
type PoolStatusResponse struct {
	ConversionRate     string     `json:"conversionRate"`
	TotalPointsPending int64      `json:"totalPointsPending"`
	CurrentPool        string     `json:"currentPool"`
	NextSettlementAt   *time.Time `json:"nextSettlementAt,omitempty"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

// SettlementTimeRequest schedules the next settlement
type SettlementTimeRequest struct {
	NextSettlementAt time.Time `json:"nextSettlementAt" binding:"required"`
}

// ConversionRateRequest replaces the conversion rate. The rate is a decimal string.
type ConversionRateRequest struct {
	Rate string `json:"rate" binding:"required"`
}

// NewConversionResponse maps a conversion request
func NewConversionResponse(r *entity.ConversionRequest) ConversionResponse {
	resp := ConversionResponse{
		ID:            r.ID,
		UserID:        r.UserID,
		PointsAmount:  r.PointsAmount,
		USDEquivalent: r.USDEquivalent.StringFixed(2),
		Status:        string(r.Status),
		SubmittedAt:   r.SubmittedAt,
	}
	if r.USDReceived != nil {
		received := r.USDReceived.StringFixed(2)
		resp.USDReceived = &received
	}
	return resp
}

// NewConversionList maps conversion requests, never returning nil
func NewConversionList(requests []*entity.ConversionRequest) []ConversionResponse {
	out := make([]ConversionResponse, 0, len(requests))
	for _, r := range requests {
		out = append(out, NewConversionResponse(r))
	}
	return out
}

// NewConversionSubmitResponse maps a committed conversion
func NewConversionSubmitResponse(r *usecase.ConversionResult) ConversionSubmitResponse {
	return ConversionSubmitResponse{
		Request:           NewConversionResponse(r.Request),
		PointsLeft:        r.User.Points,
		PointsPendingPool: r.User.PointsPendingPool,
		Message:           "Points submitted to the pool, you will receive about $" + r.Request.USDEquivalent.StringFixed(2),
	}
}

// NewPoolStatusResponse maps the pool status
func NewPoolStatusResponse(p *entity.PoolStatus) PoolStatusResponse {
	return PoolStatusResponse{
		ConversionRate:     p.ConversionRate.String(),
		TotalPointsPending: p.TotalPointsPending,
		CurrentPool:        entity.CentsToString(p.CurrentPoolCents),
		NextSettlementAt:   p.NextSettlementAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

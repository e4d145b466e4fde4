package dto

import (
	"time"

	"github.com/amirhossein-jamali/rewards-pool/internal/domain/entity"
	"github.com/amirhossein-jamali/rewards-pool/internal/domain/port/usecase"
)

// DashboardResponse represents the signed-in user's overview
type DashboardResponse struct {
	UserID                string                    `json:"userId"`
	Greeting              string                    `json:"greeting"`
	Balance               string                    `json:"balance"`
	ReservedForOffers     string                    `json:"reservedForOffers"`
	Points                int64                     `json:"points"`
	PointsPendingPool     int64                     `json:"pointsPendingPool"`
	PrimeLevel            int                       `json:"primeLevel"`
	StakedAmount          string                    `json:"stakedAmount"`
	UnstakeRequestedAt    *time.Time                `json:"unstakeRequestedAt,omitempty"`
	ReferralCode          string                    `json:"referralCode"`
	ReferralLink          string                    `json:"referralLink"`
	TotalReferralEarnings int64                     `json:"totalReferralEarnings"`
	Referrals             []ReferralSummaryResponse `json:"referrals"`
}

// ReferralSummaryResponse aggregates earnings from one referred user
type ReferralSummaryResponse struct {
	Username    string    `json:"username"`
	TotalEarned int64     `json:"totalEarned"`
	JoinedAt    time.Time `json:"joinedAt"`
}

// ReferralCreditRequest credits a referrer for a referred user's activity
type ReferralCreditRequest struct {
	ReferrerID       string `json:"referrerId" binding:"required"`
	ReferredUsername string `json:"referredUsername" binding:"required"`
	Amount           int64  `json:"amount" binding:"required,gt=0"`
}

// ReferralEarningResponse is a stored referral earning
type ReferralEarningResponse struct {
	ID               string    `json:"id"`
	ReferrerID       string    `json:"referrerId"`
	ReferredUsername string    `json:"referredUsername"`
	AmountEarned     int64     `json:"amountEarned"`
	EarnedAt         time.Time `json:"earnedAt"`
}

// NewReferralSummaries maps referral summaries, never returning nil
func NewReferralSummaries(summaries []entity.ReferralSummary) []ReferralSummaryResponse {
	out := make([]ReferralSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, ReferralSummaryResponse{
			Username:    s.Username,
			TotalEarned: s.TotalEarned,
			JoinedAt:    s.JoinedAt,
		})
	}
	return out
}

// NewDashboardResponse maps the dashboard view
func NewDashboardResponse(d *usecase.Dashboard) DashboardResponse {
	return DashboardResponse{
		UserID:                d.UserID,
		Greeting:              d.Greeting,
		Balance:               d.Balance,
		ReservedForOffers:     d.ReservedForOffers,
		Points:                d.Points,
		PointsPendingPool:     d.PointsPendingPool,
		PrimeLevel:            d.PrimeLevel,
		StakedAmount:          d.StakedAmount,
		UnstakeRequestedAt:    d.UnstakeRequestedAt,
		ReferralCode:          d.ReferralCode,
		ReferralLink:          d.ReferralLink,
		TotalReferralEarnings: d.TotalReferralEarnings,
		Referrals:             NewReferralSummaries(d.Referrals),
	}
}

// NewReferralEarningResponse maps a referral earning
func NewReferralEarningResponse(e *entity.ReferralEarning) ReferralEarningResponse {
	return ReferralEarningResponse{
		ID:               e.ID,
		ReferrerID:       e.ReferrerID,
		ReferredUsername: e.ReferredUsername,
		AmountEarned:     e.AmountEarned,
		EarnedAt:         e.EarnedAt,
	}
}

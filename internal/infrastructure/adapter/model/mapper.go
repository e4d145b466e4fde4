package model

import (
	"github.com/amirhossein-jamali/rewards-pool/internal/domain/entity"
)

// UserFromEntity converts a user entity to its database model
func UserFromEntity(u *entity.User) *User {
	return &User{
		ID:                     u.ID,
		Email:                  u.Email,
		Username:               u.Username,
		FullName:               u.FullName,
		Country:                u.Country,
		Role:                   string(u.Role),
		BalanceCents:           u.BalanceCents,
		Points:                 u.Points,
		ReservedForOffersCents: u.ReservedForOffersCents,
		PointsPendingPool:      u.PointsPendingPool,
		PrimeLevel:             u.PrimeLevel,
		StakedAmountCents:      u.StakedAmountCents,
		UnstakeRequestedAt:     u.UnstakeRequestedAt,
		ReferralCode:           u.ReferralCode,
		ReferredBy:             u.ReferredBy,
		TotalReferralEarnings:  u.TotalReferralEarnings,
		LastPoolSubmissionAt:   u.LastPoolSubmissionAt,
		CreatedAt:              u.CreatedAt,
		UpdatedAt:              u.UpdatedAt,
	}
}

// ToEntity converts the model to a user entity
func (m *User) ToEntity() *entity.User {
	return &entity.User{
		ID:                     m.ID,
		Email:                  m.Email,
		Username:               m.Username,
		FullName:               m.FullName,
		Country:                m.Country,
		Role:                   entity.ParseRole(m.Role),
		BalanceCents:           m.BalanceCents,
		Points:                 m.Points,
		ReservedForOffersCents: m.ReservedForOffersCents,
		PointsPendingPool:      m.PointsPendingPool,
		PrimeLevel:             m.PrimeLevel,
		StakedAmountCents:      m.StakedAmountCents,
		UnstakeRequestedAt:     m.UnstakeRequestedAt,
		ReferralCode:           m.ReferralCode,
		ReferredBy:             m.ReferredBy,
		TotalReferralEarnings:  m.TotalReferralEarnings,
		LastPoolSubmissionAt:   m.LastPoolSubmissionAt,
		CreatedAt:              m.CreatedAt,
		UpdatedAt:              m.UpdatedAt,
	}
}

// PoolStatusFromEntity converts the pool status entity to its database model
func PoolStatusFromEntity(p *entity.PoolStatus) *PoolStatus {
	return &PoolStatus{
		ID:                 p.ID,
		ConversionRate:     p.ConversionRate,
		TotalPointsPending: p.TotalPointsPending,
		CurrentPoolCents:   p.CurrentPoolCents,
		NextSettlementAt:   p.NextSettlementAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

// ToEntity converts the model to a pool status entity
func (m *PoolStatus) ToEntity() *entity.PoolStatus {
	return &entity.PoolStatus{
		ID:                 m.ID,
		ConversionRate:     m.ConversionRate,
		TotalPointsPending: m.TotalPointsPending,
		CurrentPoolCents:   m.CurrentPoolCents,
		NextSettlementAt:   m.NextSettlementAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

// ConversionRequestFromEntity converts a conversion request entity to its database model
func ConversionRequestFromEntity(c *entity.ConversionRequest) *ConversionRequest {
	return &ConversionRequest{
		ID:            c.ID,
		UserID:        c.UserID,
		PointsAmount:  c.PointsAmount,
		USDEquivalent: c.USDEquivalent,
		Status:        string(c.Status),
		SubmittedAt:   c.SubmittedAt,
		USDReceived:   c.USDReceived,
	}
}

// ToEntity converts the model to a conversion request entity
func (m *ConversionRequest) ToEntity() *entity.ConversionRequest {
	return &entity.ConversionRequest{
		ID:            m.ID,
		UserID:        m.UserID,
		PointsAmount:  m.PointsAmount,
		USDEquivalent: m.USDEquivalent,
		Status:        entity.ConversionStatus(m.Status),
		SubmittedAt:   m.SubmittedAt,
		USDReceived:   m.USDReceived,
	}
}

// ReferralEarningFromEntity converts a referral earning entity to its database model
func ReferralEarningFromEntity(e *entity.ReferralEarning) *ReferralEarning {
	return &ReferralEarning{
		ID:               e.ID,
		ReferrerID:       e.ReferrerID,
		ReferredUsername: e.ReferredUsername,
		AmountEarned:     e.AmountEarned,
		EarnedAt:         e.EarnedAt,
	}
}

// ToEntity converts the model to a referral earning entity
func (m *ReferralEarning) ToEntity() *entity.ReferralEarning {
	return &entity.ReferralEarning{
		ID:               m.ID,
		ReferrerID:       m.ReferrerID,
		ReferredUsername: m.ReferredUsername,
		AmountEarned:     m.AmountEarned,
		EarnedAt:         m.EarnedAt,
	}
}

// ArticleFromEntity converts an article entity to its database model
func ArticleFromEntity(a *entity.Article) *Article {
	return &Article{
		ID:         a.ID,
		Title:      a.Title,
		Category:   a.Category,
		Slug:       a.Slug,
		Body:       a.Body,
		AuthorID:   a.AuthorID,
		AuthorName: a.AuthorName,
		Status:     string(a.Status),
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

// ToEntity converts the model to an article entity
func (m *Article) ToEntity() *entity.Article {
	return &entity.Article{
		ID:         m.ID,
		Title:      m.Title,
		Category:   m.Category,
		Slug:       m.Slug,
		Body:       m.Body,
		AuthorID:   m.AuthorID,
		AuthorName: m.AuthorName,
		Status:     entity.ArticleStatus(m.Status),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

package entity

import (
	"sort"
	"time"
)

// ReferralEarning is an append-only record of points earned from a referred user
type ReferralEarning struct {
	ID               string
	ReferrerID       string
	ReferredUsername string
	AmountEarned     int64
	EarnedAt         time.Time
}

// ReferralSummary aggregates earnings from one referred user
type ReferralSummary struct {
	Username    string
	TotalEarned int64
	JoinedAt    time.Time // Earliest earning from this user
}

// SummarizeReferrals groups earnings by referred username.
// The result keeps the order in which usernames first appear in earnings.
func SummarizeReferrals(earnings []*ReferralEarning) []ReferralSummary {
	index := make(map[string]int, len(earnings))
	summaries := make([]ReferralSummary, 0, len(earnings))

	for _, e := range earnings {
		i, ok := index[e.ReferredUsername]
		if !ok {
			index[e.ReferredUsername] = len(summaries)
			summaries = append(summaries, ReferralSummary{
				Username:    e.ReferredUsername,
				TotalEarned: e.AmountEarned,
				JoinedAt:    e.EarnedAt,
			})
			continue
		}
		summaries[i].TotalEarned += e.AmountEarned
		if e.EarnedAt.Before(summaries[i].JoinedAt) {
			summaries[i].JoinedAt = e.EarnedAt
		}
	}

	return summaries
}

// SortEarningsNewestFirst orders earnings by timestamp descending
func SortEarningsNewestFirst(earnings []*ReferralEarning) {
	sort.SliceStable(earnings, func(i, j int) bool {
		return earnings[i].EarnedAt.After(earnings[j].EarnedAt)
	})
}

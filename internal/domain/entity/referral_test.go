package entity

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeReferrals(t *testing.T) {
	t1 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := t1.Add(24 * time.Hour)
	t3 := t2.Add(24 * time.Hour)

	earnings := []*ReferralEarning{
		{ReferredUsername: "bob", AmountEarned: 10, EarnedAt: t3},
		{ReferredUsername: "alice", AmountEarned: 5, EarnedAt: t2},
		{ReferredUsername: "bob", AmountEarned: 20, EarnedAt: t1},
	}

	summaries := SummarizeReferrals(earnings)

	require.Len(t, summaries, 2)
	assert.Equal(t, ReferralSummary{Username: "bob", TotalEarned: 30, JoinedAt: t1}, summaries[0])
	assert.Equal(t, ReferralSummary{Username: "alice", TotalEarned: 5, JoinedAt: t2}, summaries[1])
	assert.Empty(t, SummarizeReferrals(nil))
}

func TestSortEarningsNewestFirst(t *testing.T) {
	t1 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	earnings := []*ReferralEarning{
		{ID: "a", EarnedAt: t1},
		{ID: "b", EarnedAt: t1.Add(time.Hour)},
	}

	SortEarningsNewestFirst(earnings)

	assert.Equal(t, "b", earnings[0].ID)
	assert.Equal(t, "a", earnings[1].ID)
}

func TestNewReferralCode(t *testing.T) {
	pattern := regexp.MustCompile(`^[0-9A-Z]{6}$`)

	for i := 0; i < 50; i++ {
		code, err := NewReferralCode()
		require.NoError(t, err)
		assert.Regexp(t, pattern, code)
	}

	assert.Equal(t, "https://example.com/auth.html?ref=AB12CD", ReferralLink("https://example.com/auth.html", "AB12CD"))
}

package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/rewards-pool/internal/domain/error"
)

func TestCentsToString(t *testing.T) {
	testCases := []struct {
		cents    int64
		expected string
	}{
		{10000, "100.00"},
		{1, "0.01"},
		{10, "0.10"},
		{150, "1.50"},
		{0, "0.00"},
		{-10000, "-100.00"},
		{-1, "-0.01"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, CentsToString(tc.cents))
		})
	}
}

func TestParseConversionRate(t *testing.T) {
	rate, err := ParseConversionRate(" 1000 ")
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.NewFromInt(1000)))

	rate, err = ParseConversionRate("12.5")
	require.NoError(t, err)
	assert.Equal(t, "12.5", rate.String())

	for _, bad := range []string{"0", "-3", "abc", ""} {
		t.Run(bad, func(t *testing.T) {
			_, err := ParseConversionRate(bad)
			assert.ErrorIs(t, err, errs.ErrInvalidRate)
		})
	}
}

func TestPointsToUSD(t *testing.T) {
	usd, err := PointsToUSD(1500, decimal.NewFromInt(1000))
	require.NoError(t, err)
	assert.True(t, usd.Equal(decimal.RequireFromString("1.5")))

	usd, err = PointsToUSD(1000, decimal.NewFromInt(3))
	require.NoError(t, err)
	assert.Equal(t, "333.33333333", usd.String())

	_, err = PointsToUSD(1000, decimal.Zero)
	assert.ErrorIs(t, err, errs.ErrInvalidRate)
}

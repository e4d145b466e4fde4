package entity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	errs "github.com/amirhossein-jamali/rewards-pool/internal/domain/error"
)

// CentsToString converts an amount in cents to a string with exactly two decimal places
// - 1015 becomes "10.15"
// - -1 becomes "-0.01"
func CentsToString(cents int64) string {
	negative := cents < 0
	if negative {
		cents = -cents
	}

	digits := strconv.FormatInt(cents, 10)
	for len(digits) < 3 {
		digits = "0" + digits
	}

	split := len(digits) - 2
	formatted := digits[:split] + "." + digits[split:]
	if negative {
		return "-" + formatted
	}
	return formatted
}

// ParseConversionRate parses a points-per-currency-unit rate, which must be strictly positive
func ParseConversionRate(raw string) (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s", errs.ErrInvalidRate, err.Error())
	}
	if !rate.IsPositive() {
		return decimal.Zero, errs.ErrInvalidRate
	}
	return rate, nil
}

// usdScale is the precision kept for converted currency amounts
const usdScale = 8

// PointsToUSD converts points to currency at the given points-per-unit rate
func PointsToUSD(points int64, rate decimal.Decimal) (decimal.Decimal, error) {
	if !rate.IsPositive() {
		return decimal.Zero, errs.ErrInvalidRate
	}
	return decimal.NewFromInt(points).DivRound(rate, usdScale), nil
}

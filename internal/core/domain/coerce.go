package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// maxMagnitude is the largest number of integer digits a cell may
	// carry. Every accepted amount stays below 1e18, which fits an int64
	// count and keeps ratios finite.
	maxMagnitude = 18
	// maxScale is the number of fractional digits kept. Smaller values
	// coerce to zero.
	maxScale = 30
)

// ParseAmount coerces a report cell into a non-negative decimal. Empty,
// non-numeric and negative cells become zero, as do values of 1e18 and
// above or below 1e-30. The range is checked on digits and exponent before
// any rescaling, so exponents such as "1e99999999" are cheap to reject.
func ParseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.Sign() <= 0 {
		return decimal.Zero
	}
	mag := int64(d.NumDigits()) + int64(d.Exponent())
	if mag > maxMagnitude || mag <= -maxScale {
		return decimal.Zero
	}
	if d.Exponent() < -maxScale {
		d = d.Round(maxScale)
	}
	return d
}

// ParseCount coerces a report cell into a non-negative integer count.
// Fractional values are truncated.
func ParseCount(s string) int64 {
	return ParseAmount(s).IntPart()
}

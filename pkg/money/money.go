package money

import "github.com/shopspring/decimal"

// Monetary values carry 2 decimal places, interest rates 4.
// All rounding is half-up (decimal.Round rounds half away from zero,
// which is half-up for the non-negative amounts handled here).

func Round2(d decimal.Decimal) decimal.Decimal { return d.Round(2) }

func Round4(d decimal.Decimal) decimal.Decimal { return d.Round(4) }

// MustParse parses a fixed-point literal; panics on malformed input.
// Intended for constants and test fixtures only.
func MustParse(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

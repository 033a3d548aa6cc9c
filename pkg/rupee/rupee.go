// Package rupee provides the engine's single monetary value type: a signed
// whole-rupee integer amount (ClampNonNegative clamps it to zero at the use
// sites that need a non-negative value), plus the rational (fractional)
// decimal arithmetic that feeds it before a rounding site.
package rupee

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Amount is an integer number of rupees. Every user-visible monetary field
// in the engine is an Amount; fractional rupees only ever exist transiently
// as decimal.Decimal "rationals" between a computation and its rounding site.
type Amount int64

// Zero is the additive identity.
var Zero Amount = 0

// FromInt builds an Amount directly from a whole-rupee integer.
func FromInt(v int64) Amount { return Amount(v) }

// Decimal returns the rational form of the amount, for use as an operand in
// further decimal arithmetic (e.g. multiplying a deduction gap by a rate).
func (a Amount) Decimal() decimal.Decimal { return decimal.NewFromInt(int64(a)) }

// Add returns a + b.
func (a Amount) Add(b Amount) Amount { return a + b }

// Sub returns a - b.
func (a Amount) Sub(b Amount) Amount { return a - b }

// ClampNonNegative returns 0 if the amount is negative, else the amount
// unchanged. Negative amounts clamp to zero at use sites.
func (a Amount) ClampNonNegative() Amount {
	if a < 0 {
		return 0
	}
	return a
}

// Min returns the smaller of a and b.
func Min(a, b Amount) Amount {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max(a, b Amount) Amount {
	if a > b {
		return a
	}
	return b
}

// IsZero reports whether the amount is zero.
func (a Amount) IsZero() bool { return a == 0 }

// IsPositive reports whether the amount is strictly positive.
func (a Amount) IsPositive() bool { return a > 0 }

// String renders the amount as a plain integer (no currency symbol; callers
// that want "₹" prefix the symbol themselves — see internal/output).
func (a Amount) String() string { return fmt.Sprintf("%d", int64(a)) }

// RoundHalfAwayFromZero converts a rational decimal amount into a whole-rupee
// Amount using commercial (half-away-from-zero) rounding.
//
// decimal.Decimal's own Round() uses round-half-away-from-zero for positive
// ties in recent shopspring/decimal releases but the exact tie-breaking rule
// has changed across versions of that library; every rounding site in this
// engine is statutorily significant (cess, surcharge, savings), so the rule
// is pinned here explicitly rather than left to the dependency's default.
func RoundHalfAwayFromZero(d decimal.Decimal) Amount {
	half := decimal.NewFromFloat(0.5)
	if d.IsNegative() {
		return Amount(d.Sub(half).Ceil().IntPart())
	}
	return Amount(d.Add(half).Floor().IntPart())
}

// ClampDecimalNonNegative returns zero if d is negative, else d.
func ClampDecimalNonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

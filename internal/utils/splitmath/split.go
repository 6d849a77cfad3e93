// Package splitmath holds the pure money math for trips: equal-split share
// calculation, balance aggregation, settlement generation and itinerary
// grouping. Everything here is a deterministic function of its inputs so it
// can be unit tested without any storage or network involvement.
package splitmath

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// sharePrecision is the number of decimal places of the smallest currency
// unit. All shares and balances are rounded to it.
const sharePrecision = 2

// Epsilon is the threshold below which a balance is considered settled.
// One cent: rounding drift smaller than this is silently dropped.
var Epsilon = decimal.New(1, -2)

// EqualShares divides amount into n shares rounded to the smallest currency
// unit, rounding half away from zero. Rounding drift is folded into the first
// share so the shares always sum exactly to amount.
func EqualShares(amount decimal.Decimal, n int) ([]decimal.Decimal, error) {
	if n <= 0 {
		return nil, fmt.Errorf("cannot split between %d participants", n)
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("amount must be positive, got %s", amount.String())
	}

	nDec := decimal.NewFromInt(int64(n))
	share := amount.DivRound(nDec, sharePrecision)

	shares := make([]decimal.Decimal, n)
	for i := range shares {
		shares[i] = share
	}

	// Fold the rounding drift into the first share. For example 100.01 split
	// two ways rounds to 50.01 each; the first share becomes 50.00 so the sum
	// stays 100.01.
	drift := amount.Sub(share.Mul(nDec))
	shares[0] = shares[0].Add(drift)

	if shares[0].IsNegative() {
		return nil, fmt.Errorf("amount %s is too small to split %d ways", amount.String(), n)
	}
	return shares, nil
}

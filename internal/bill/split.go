package bill

import (
	"math"
	"strconv"
)

// ComputeShare returns the participant's monetary share of the bill.
//
// Custom splits take the participant's own entry, parsed leniently: a missing
// or non-numeric value counts as a zero share rather than an error. Every
// other case falls back to an even division of the amount; an empty
// participant list yields the full amount.
func ComputeShare(b *Bill, participant string) float64 {
	if b.SplitType == SplitTypeCustom && b.CustomSplitAmounts != nil {
		if raw, ok := b.CustomSplitAmounts[participant]; ok {
			value, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return 0
			}
			return value
		}
		return 0
	}

	if len(b.SplitBetween) == 0 {
		return b.Amount
	}
	return b.Amount / float64(len(b.SplitBetween))
}

// roundToTwoDecimals rounds a float to 2 decimal places
func roundToTwoDecimals(value float64) float64 {
	return math.Round(value*100) / 100
}

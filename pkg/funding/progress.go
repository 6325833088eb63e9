package funding

import (
	"math/bits"

	"github.com/utaipei/fundraising/pkg/sanitizer"
)

// PercentFunded returns raised/goal as a whole percentage, rounded half up
// and capped to [0, 100]. A goal of zero or less has no measurable progress
// and yields 0.
//
// Rounding uses integer arithmetic, so 1/200 is exactly 0.5% and rounds to 1.
// The numerator (200*raised + goal) is carried in 128 bits, so every
// non-negative int64 pair is exact.
func PercentFunded(raised, goal int64) int {
	if goal <= 0 || raised <= 0 {
		return 0
	}
	if raised >= goal {
		return 100
	}
	// 0 < raised < goal, so hi < 2*goal and Div64 cannot panic; 2*goal fits
	// in a uint64 because goal <= MaxInt64.
	hi, lo := bits.Mul64(200, uint64(raised))
	lo, carry := bits.Add64(lo, uint64(goal), 0)
	pct, _ := bits.Div64(hi+carry, lo, 2*uint64(goal))
	return int(sanitizer.Clamp(int64(pct), 0, 100))
}

// Progress bundles the numbers a progress bar needs.
type Progress struct {
	Goal      int64 `json:"goal"`
	Raised    int64 `json:"raised"`
	Percent   int   `json:"percent"`
	Remaining int64 `json:"remaining"`
	Funded    bool  `json:"funded"`
}

// NewProgress computes the progress of raised towards goal. Remaining never
// goes below zero for over-funded projects.
func NewProgress(raised, goal int64) Progress {
	return Progress{
		Goal:      goal,
		Raised:    raised,
		Percent:   PercentFunded(raised, goal),
		Remaining: sanitizer.ClampMin(goal-raised, 0),
		Funded:    goal > 0 && raised >= goal,
	}
}

// ImpactUnits reports how many whole impact units a gift of amount covers,
// e.g. a NT$ 100,000 gift to a project whose unit costs NT$ 50,000 covers 2.
func ImpactUnits(amount, unitCost int64) int64 {
	if unitCost <= 0 || amount <= 0 {
		return 0
	}
	return amount / unitCost
}

package funding_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/utaipei/fundraising/pkg/funding"
)

func TestPercentFunded(t *testing.T) {
	tests := []struct {
		name     string
		raised   int64
		goal     int64
		expected int
	}{
		{name: "nothing raised", raised: 0, goal: 5_000_000, expected: 0},
		{name: "typical project", raised: 3_850_000, goal: 5_000_000, expected: 77},
		{name: "rounds up above half", raised: 2_150_000, goal: 3_000_000, expected: 72},
		{name: "rounds half up", raised: 1, goal: 200, expected: 1},
		{name: "just under half", raised: 1, goal: 201, expected: 0},
		{name: "exactly funded", raised: 1_500_000, goal: 1_500_000, expected: 100},
		{name: "over funded is capped", raised: 9_000_000, goal: 1_000_000, expected: 100},
		{name: "rounding never reaches 100 early", raised: 994, goal: 1000, expected: 99},
		{name: "rounding to 100 below goal", raised: 996, goal: 1000, expected: 100},
		{name: "zero goal", raised: 500, goal: 0, expected: 0},
		{name: "zero goal and raised", raised: 0, goal: 0, expected: 0},
		{name: "negative goal", raised: 10, goal: -1, expected: 0},
		{name: "large goal", raised: 50_000_000_000_000_000, goal: 90_000_000_000_000_000, expected: 56},
		{name: "half of a huge goal", raised: 4_000_000_000_000_000_000, goal: 8_000_000_000_000_000_000, expected: 50},
		{name: "max goal nearly funded", raised: math.MaxInt64 - 1, goal: math.MaxInt64, expected: 100},
		{name: "max goal tiny raise", raised: 1, goal: math.MaxInt64, expected: 0},
		{name: "max raised", raised: math.MaxInt64, goal: 1, expected: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, funding.PercentFunded(tt.raised, tt.goal))
		})
	}
}

func TestPercentFunded_Monotonic(t *testing.T) {
	goals := []int64{1, 3, 7, 200, 1_000, 1_500_000, 1 << 40, 1 << 60, math.MaxInt64 / 3, math.MaxInt64 - 1, math.MaxInt64}
	for _, goal := range goals {
		steps := min(goal, 500)
		step := goal / steps
		prev := 0
		for i := int64(0); i <= steps; i++ {
			raised := step * i
			got := funding.PercentFunded(raised, goal)
			assert.GreaterOrEqual(t, got, prev, "goal=%d raised=%d", goal, raised)
			assert.LessOrEqual(t, got, 100)
			prev = got
		}
		assert.GreaterOrEqual(t, funding.PercentFunded(goal-1, goal), prev, "goal=%d", goal)
		assert.Equal(t, 100, funding.PercentFunded(goal, goal))
		if goal < math.MaxInt64 {
			assert.Equal(t, 100, funding.PercentFunded(goal+1, goal))
		}
	}
}

func TestPercentFunded_Idempotent(t *testing.T) {
	assert.Equal(t, funding.PercentFunded(1_320_000, 1_500_000), funding.PercentFunded(1_320_000, 1_500_000))
}

func TestNewProgress(t *testing.T) {
	p := funding.NewProgress(1_320_000, 1_500_000)
	assert.Equal(t, funding.Progress{
		Goal:      1_500_000,
		Raised:    1_320_000,
		Percent:   88,
		Remaining: 180_000,
		Funded:    false,
	}, p)

	over := funding.NewProgress(2_000_000, 1_500_000)
	assert.Equal(t, int64(0), over.Remaining)
	assert.Equal(t, 100, over.Percent)
	assert.True(t, over.Funded)

	none := funding.NewProgress(0, 0)
	assert.False(t, none.Funded)
	assert.Equal(t, 0, none.Percent)
}

func TestImpactUnits(t *testing.T) {
	assert.Equal(t, int64(2), funding.ImpactUnits(100_000, 50_000))
	assert.Equal(t, int64(0), funding.ImpactUnits(49_999, 50_000))
	assert.Equal(t, int64(0), funding.ImpactUnits(1_000, 0))
	assert.Equal(t, int64(0), funding.ImpactUnits(-5, 10))
}

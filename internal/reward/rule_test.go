package reward

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/obsidianstack/rewardcheck/internal/table"
)

// --- Rule.Reward table-driven tests ---

func TestRule_Reward(t *testing.T) {
	tests := []struct {
		name string
		rec  table.Record
		want string
	}{
		{
			name: "age alone satisfies",
			rec:  table.Record{Age: 95, TimeInBed: 0, PercentSleeping: 0.0, FavoriteFood: "+pizza", HateFood: "-eggs"},
			want: "+pizza",
		},
		{
			name: "bed and sleep satisfy",
			rec:  table.Record{Age: 20, TimeInBed: 5, PercentSleeping: 0.5, FavoriteFood: "+tacos", HateFood: "-potato"},
			want: "+tacos",
		},
		{
			name: "nothing satisfied",
			rec:  table.Record{Age: 20, TimeInBed: 0, PercentSleeping: 0.0, FavoriteFood: "+ice-cream", HateFood: "-brocolli"},
			want: "-brocolli",
		},
		{
			name: "time_in_bed exactly 1 is not enough",
			rec:  table.Record{Age: 89, TimeInBed: 1, PercentSleeping: 0.99, FavoriteFood: "+pizza", HateFood: "-eggs"},
			want: "-eggs",
		},
		{
			name: "time_in_bed 2 with enough sleep",
			rec:  table.Record{Age: 0, TimeInBed: 2, PercentSleeping: 0.11, FavoriteFood: "+pizza", HateFood: "-eggs"},
			want: "+pizza",
		},
		{
			name: "percent_sleeping exactly 0.1 is not enough",
			rec:  table.Record{Age: 40, TimeInBed: 8, PercentSleeping: 0.1, FavoriteFood: "+tacos", HateFood: "-potato"},
			want: "-potato",
		},
		{
			name: "age exactly 90 always rewarded",
			rec:  table.Record{Age: 90, TimeInBed: 0, PercentSleeping: 0.0, FavoriteFood: "+ice-cream", HateFood: "-potato"},
			want: "+ice-cream",
		},
		{
			name: "age 89 without sleep",
			rec:  table.Record{Age: 89, TimeInBed: 0, PercentSleeping: 0.0, FavoriteFood: "+ice-cream", HateFood: "-potato"},
			want: "-potato",
		},
	}

	rl := DefaultRule()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, rl.Reward(tc.rec))
		})
	}
}

func TestRule_AgeNinetyIgnoresOtherFields(t *testing.T) {
	rl := DefaultRule()
	for bed := 0; bed < table.MaxTimeInBed; bed++ {
		for _, pct := range []float64{0, 0.05, 0.1, 0.5, 0.999} {
			rec := table.Record{Age: 90, TimeInBed: bed, PercentSleeping: pct, FavoriteFood: "+pizza", HateFood: "-eggs"}
			assert.True(t, rl.Holds(rec), "bed=%d pct=%.3f", bed, pct)
		}
	}
}

func TestRule_CustomThresholds(t *testing.T) {
	rl := Rule{MinTimeInBed: 4, MinPercentSleeping: 0.5, SeniorAge: 70}
	assert.True(t, rl.Holds(table.Record{Age: 70}))
	assert.False(t, rl.Holds(table.Record{Age: 30, TimeInBed: 4, PercentSleeping: 0.9}))
	assert.True(t, rl.Holds(table.Record{Age: 30, TimeInBed: 5, PercentSleeping: 0.51}))
}

func TestDefaultRule(t *testing.T) {
	assert.Equal(t, Rule{MinTimeInBed: 1, MinPercentSleeping: 0.1, SeniorAge: 90}, DefaultRule())
}

package reward

import "github.com/obsidianstack/rewardcheck/internal/table"

// Default thresholds of the reward condition.
const (
	DefaultMinTimeInBed       = 1
	DefaultMinPercentSleeping = 0.1
	DefaultSeniorAge          = 90
)

// Rule holds the thresholds of the reward condition.
type Rule struct {
	// MinTimeInBed is exclusive: time_in_bed must be strictly greater.
	MinTimeInBed int

	// MinPercentSleeping is exclusive: percent_sleeping must be strictly greater.
	MinPercentSleeping float64

	// SeniorAge is inclusive: anyone this old or older is always rewarded.
	SeniorAge int
}

// DefaultRule returns the standard reward thresholds.
func DefaultRule() Rule {
	return Rule{
		MinTimeInBed:       DefaultMinTimeInBed,
		MinPercentSleeping: DefaultMinPercentSleeping,
		SeniorAge:          DefaultSeniorAge,
	}
}

// Holds reports whether r earns its favourite food.
func (rl Rule) Holds(r table.Record) bool {
	slept := r.TimeInBed > rl.MinTimeInBed && r.PercentSleeping > rl.MinPercentSleeping
	return slept || r.Age >= rl.SeniorAge
}

// Reward returns the food r receives under rl.
func (rl Rule) Reward(r table.Record) string {
	if rl.Holds(r) {
		return r.FavoriteFood
	}
	return r.HateFood
}

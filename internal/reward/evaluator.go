package reward

import (
	"fmt"

	"github.com/obsidianstack/rewardcheck/internal/table"
)

// ApplyLoop attaches the reward column to t by evaluating rl on one row at a
// time, in table order.
func ApplyLoop(t *table.Table, rl Rule) error {
	if err := t.Validate(); err != nil {
		return fmt.Errorf("reward: loop: %w", err)
	}
	if err := t.SetRewards(make([]string, t.Len())); err != nil {
		return fmt.Errorf("reward: loop: %w", err)
	}
	for i := 0; i < t.Len(); i++ {
		t.SetReward(i, rl.Reward(t.Row(i)))
	}
	return nil
}

// Condition returns the reward mask of t under rl, computed column-wise as
// (time_in_bed > min AND percent_sleeping > min) OR age >= senior.
func Condition(t *table.Table, rl Rule) Mask {
	slept := And(
		GreaterInt(t.TimeInBed, rl.MinTimeInBed),
		GreaterFloat(t.PercentSleeping, rl.MinPercentSleeping),
	)
	return Or(slept, AtLeastInt(t.Age, rl.SeniorAge))
}

// ApplyVector attaches the reward column to t using whole-column operations:
// every row starts with its hated food, then rows selected by Condition are
// switched to their favourite food.
func ApplyVector(t *table.Table, rl Rule) error {
	if err := t.Validate(); err != nil {
		return fmt.Errorf("reward: vector: %w", err)
	}
	mask := Condition(t, rl)

	col := make([]string, t.Len())
	copy(col, t.HateFood)
	Where(col, t.FavoriteFood, mask)

	if err := t.SetRewards(col); err != nil {
		return fmt.Errorf("reward: vector: %w", err)
	}
	return nil
}

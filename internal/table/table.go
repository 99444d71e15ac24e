package table

import (
	"errors"
	"fmt"
)

// ErrMalformed is wrapped by Validate when a table's columns do not line up.
var ErrMalformed = errors.New("malformed table")

// Column names, in table order.
const (
	ColAge             = "age"
	ColTimeInBed       = "time_in_bed"
	ColPercentSleeping = "percent_sleeping"
	ColFavoriteFood    = "favorite_food"
	ColHateFood        = "hate_food"
	ColReward          = "reward"
)

// Columns lists every column name in table order.
var Columns = []string{
	ColAge, ColTimeInBed, ColPercentSleeping, ColFavoriteFood, ColHateFood, ColReward,
}

// Record is one row of the table: a single person's attributes.
type Record struct {
	Age             int
	TimeInBed       int     // hours, [0, 9)
	PercentSleeping float64 // fraction of time in bed spent asleep, [0, 1)
	FavoriteFood    string
	HateFood        string

	// Reward is empty until an evaluator has run.
	Reward string
}

// Table is an ordered, fixed-size collection of Records stored column-wise.
// Row i is made of element i of every column.
type Table struct {
	Age             []int
	TimeInBed       []int
	PercentSleeping []float64
	FavoriteFood    []string
	HateFood        []string

	// Reward is the derived column. Nil until attached.
	Reward []string
}

// New returns an empty table with capacity for n rows.
func New(n int) *Table {
	return &Table{
		Age:             make([]int, 0, n),
		TimeInBed:       make([]int, 0, n),
		PercentSleeping: make([]float64, 0, n),
		FavoriteFood:    make([]string, 0, n),
		HateFood:        make([]string, 0, n),
	}
}

// FromRecords builds a table from records. The reward column is attached only
// if at least one record carries a non-empty Reward.
func FromRecords(recs []Record) *Table {
	t := New(len(recs))
	withReward := false
	for _, r := range recs {
		t.Append(r)
		if r.Reward != "" {
			withReward = true
		}
	}
	if withReward {
		t.Reward = make([]string, len(recs))
		for i, r := range recs {
			t.Reward[i] = r.Reward
		}
	}
	return t
}

// Append adds r as the last row. The reward field of r is ignored; rewards
// are only ever attached by evaluators.
func (t *Table) Append(r Record) {
	t.Age = append(t.Age, r.Age)
	t.TimeInBed = append(t.TimeInBed, r.TimeInBed)
	t.PercentSleeping = append(t.PercentSleeping, r.PercentSleeping)
	t.FavoriteFood = append(t.FavoriteFood, r.FavoriteFood)
	t.HateFood = append(t.HateFood, r.HateFood)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Age)
}

// HasReward reports whether the reward column is attached.
func (t *Table) HasReward() bool {
	return t.Reward != nil
}

// Row returns row i as a Record. It panics if i is out of range.
func (t *Table) Row(i int) Record {
	r := Record{
		Age:             t.Age[i],
		TimeInBed:       t.TimeInBed[i],
		PercentSleeping: t.PercentSleeping[i],
		FavoriteFood:    t.FavoriteFood[i],
		HateFood:        t.HateFood[i],
	}
	if t.Reward != nil {
		r.Reward = t.Reward[i]
	}
	return r
}

// Records returns every row in order.
func (t *Table) Records() []Record {
	out := make([]Record, t.Len())
	for i := range out {
		out[i] = t.Row(i)
	}
	return out
}

// SetReward writes the reward of row i, attaching an empty reward column
// first if none exists yet.
func (t *Table) SetReward(i int, v string) {
	if t.Reward == nil {
		t.Reward = make([]string, t.Len())
	}
	t.Reward[i] = v
}

// SetRewards attaches col as the reward column, replacing any existing one.
func (t *Table) SetRewards(col []string) error {
	if len(col) != t.Len() {
		return fmt.Errorf("%w: reward column has %d rows, table has %d", ErrMalformed, len(col), t.Len())
	}
	t.Reward = col
	return nil
}

// Clone returns a deep copy of t. Nothing is shared between t and the copy.
func (t *Table) Clone() *Table {
	c := &Table{
		Age:             append([]int(nil), t.Age...),
		TimeInBed:       append([]int(nil), t.TimeInBed...),
		PercentSleeping: append([]float64(nil), t.PercentSleeping...),
		FavoriteFood:    append([]string(nil), t.FavoriteFood...),
		HateFood:        append([]string(nil), t.HateFood...),
	}
	if t.Reward != nil {
		c.Reward = make([]string, len(t.Reward))
		copy(c.Reward, t.Reward)
	}
	return c
}

// Validate checks that every column has the same number of rows.
func (t *Table) Validate() error {
	if t == nil {
		return fmt.Errorf("%w: nil table", ErrMalformed)
	}
	n := t.Len()
	lens := map[string]int{
		ColTimeInBed:       len(t.TimeInBed),
		ColPercentSleeping: len(t.PercentSleeping),
		ColFavoriteFood:    len(t.FavoriteFood),
		ColHateFood:        len(t.HateFood),
	}
	if t.Reward != nil {
		lens[ColReward] = len(t.Reward)
	}
	// Iterate Columns rather than the map so the reported column is stable.
	for _, col := range Columns {
		l, ok := lens[col]
		if ok && l != n {
			return fmt.Errorf("%w: column %q has %d rows, %q has %d", ErrMalformed, col, l, ColAge, n)
		}
	}
	return nil
}

package table

import "fmt"

// Mismatch describes one cell that differs between two tables.
// Row is -1 when the tables differ in shape rather than content.
type Mismatch struct {
	Row    int
	Column string
	Left   string
	Right  string
}

func (m Mismatch) String() string {
	if m.Row < 0 {
		return fmt.Sprintf("%s: %s != %s", m.Column, m.Left, m.Right)
	}
	return fmt.Sprintf("row %d %s: %s != %s", m.Row, m.Column, m.Left, m.Right)
}

// Equal reports whether a and b hold the same columns with the same values in
// the same order. A table with a reward column never equals one without.
func Equal(a, b *Table) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Len() != b.Len() || a.HasReward() != b.HasReward() {
		return false
	}
	return equalSlice(a.Age, b.Age) &&
		equalSlice(a.TimeInBed, b.TimeInBed) &&
		equalSlice(a.PercentSleeping, b.PercentSleeping) &&
		equalSlice(a.FavoriteFood, b.FavoriteFood) &&
		equalSlice(a.HateFood, b.HateFood) &&
		equalSlice(a.Reward, b.Reward)
}

// Diff lists every differing cell between a and b, row by row in column
// order. Tables of different lengths, or where only one has a reward column,
// produce a single shape mismatch.
func Diff(a, b *Table) []Mismatch {
	if a.Len() != b.Len() {
		return []Mismatch{{Row: -1, Column: "len", Left: fmt.Sprint(a.Len()), Right: fmt.Sprint(b.Len())}}
	}
	if a.HasReward() != b.HasReward() {
		return []Mismatch{{Row: -1, Column: ColReward, Left: presence(a), Right: presence(b)}}
	}

	var out []Mismatch
	add := func(i int, col string, l, r any) {
		out = append(out, Mismatch{Row: i, Column: col, Left: fmt.Sprint(l), Right: fmt.Sprint(r)})
	}
	for i := 0; i < a.Len(); i++ {
		if a.Age[i] != b.Age[i] {
			add(i, ColAge, a.Age[i], b.Age[i])
		}
		if a.TimeInBed[i] != b.TimeInBed[i] {
			add(i, ColTimeInBed, a.TimeInBed[i], b.TimeInBed[i])
		}
		if a.PercentSleeping[i] != b.PercentSleeping[i] {
			add(i, ColPercentSleeping, a.PercentSleeping[i], b.PercentSleeping[i])
		}
		if a.FavoriteFood[i] != b.FavoriteFood[i] {
			add(i, ColFavoriteFood, a.FavoriteFood[i], b.FavoriteFood[i])
		}
		if a.HateFood[i] != b.HateFood[i] {
			add(i, ColHateFood, a.HateFood[i], b.HateFood[i])
		}
		if a.HasReward() && a.Reward[i] != b.Reward[i] {
			add(i, ColReward, a.Reward[i], b.Reward[i])
		}
	}
	return out
}

func presence(t *Table) string {
	if t.HasReward() {
		return "present"
	}
	return "absent"
}

func equalSlice[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

package table

import (
	"math/rand"
	"time"
)

// DefaultSize is the number of rows Generate is normally asked for.
const DefaultSize = 10_000

// Domain bounds for the sampled integer fields (exclusive upper bounds).
const (
	MaxAge       = 100
	MaxTimeInBed = 9
)

// Menu holds the candidate values for the two food columns.
type Menu struct {
	Favorite []string
	Hate     []string
}

// DefaultMenu returns the standard food sets. Favourites are tagged with a
// leading "+", hated foods with a leading "-".
func DefaultMenu() Menu {
	return Menu{
		Favorite: []string{"+pizza", "+tacos", "+ice-cream"},
		Hate:     []string{"-brocolli", "-potato", "-eggs"},
	}
}

// NewRand returns a random source seeded with seed, or with the current time
// when seed is 0.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Generate returns a table of exactly size rows with every field sampled
// independently and uniformly from its domain. Both menu lists must be
// non-empty.
func Generate(rng *rand.Rand, size int, menu Menu) *Table {
	t := &Table{
		Age:             make([]int, size),
		TimeInBed:       make([]int, size),
		PercentSleeping: make([]float64, size),
		FavoriteFood:    make([]string, size),
		HateFood:        make([]string, size),
	}
	// One column at a time, the same order the fields are declared in.
	for i := range t.Age {
		t.Age[i] = rng.Intn(MaxAge)
	}
	for i := range t.TimeInBed {
		t.TimeInBed[i] = rng.Intn(MaxTimeInBed)
	}
	for i := range t.PercentSleeping {
		t.PercentSleeping[i] = rng.Float64()
	}
	for i := range t.FavoriteFood {
		t.FavoriteFood[i] = menu.Favorite[rng.Intn(len(menu.Favorite))]
	}
	for i := range t.HateFood {
		t.HateFood[i] = menu.Hate[rng.Intn(len(menu.Hate))]
	}
	return t
}

// Package table holds the synthetic population that rewards are derived from.
//
// table.go defines Record, the fixed-schema view of one person, and Table,
// the column-wise store evaluators read and write. Columns are kept as
// parallel slices so bulk evaluation can work on a whole column at once while
// Row(i) still gives per-row code a typed Record.
//
// generate.go provides Generate(rng, size, menu), which samples every field
// independently and uniformly:
//
//	age              Intn(100)   -> [0, 100)
//	time_in_bed      Intn(9)     -> [0, 9)
//	percent_sleeping Float64()   -> [0.0, 1.0)
//	favorite_food    menu.Favorite[Intn(len)]
//	hate_food        menu.Hate[Intn(len)]
//
// diff.go provides Equal and Diff for comparing two tables column by column.
//
// The reward column is nil until an evaluator attaches it with SetRewards or
// SetReward.
package table

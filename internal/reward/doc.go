// Package reward derives the reward column of a table and checks that two
// independent ways of deriving it agree.
//
// rule.go provides the pure per-record condition:
//
//	(time_in_bed > 1 AND percent_sleeping > 0.1) OR age >= 90
//
// A record that satisfies it is rewarded with its favourite food, any other
// record with its hated food. The three thresholds live in Rule so a config
// file can move them; DefaultRule holds the values above.
//
// evaluator.go provides the two evaluation methods:
//   - ApplyLoop walks the table row by row and evaluates Rule.Holds on each
//     Record.
//   - ApplyVector builds a Mask from whole-column comparisons, starts from a
//     copy of hate_food and overwrites it with favorite_food where the mask
//     is set. The column primitives live in mask.go.
//
// engine.go provides Engine.Compare, which runs both methods on separate deep
// copies of the same input, times them, records Prometheus metrics in a
// per-engine registry and reports whether the two results are identical.
// The input table is never modified.
package reward

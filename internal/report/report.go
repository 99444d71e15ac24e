package report

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/obsidianstack/rewardcheck/internal/reward"
)

// Line returns the result line for equal.
func Line(equal bool) string {
	verdict := "False"
	if equal {
		verdict = "True"
	}
	return "Are the two DataFrames equal?  " + verdict
}

// Print writes the result line for res to w.
func Print(w io.Writer, res *reward.Result) error {
	if _, err := fmt.Fprintln(w, Line(res.Equal)); err != nil {
		return fmt.Errorf("report: print: %w", err)
	}
	return nil
}

// LogMismatches logs up to limit of the cells that differ between the two
// results, then a summary if some were left out. It does nothing when the
// results are equal or limit is 0.
func LogMismatches(res *reward.Result, limit int) {
	if res.Equal || limit <= 0 {
		return
	}
	for i, m := range res.Mismatches {
		if i == limit {
			slog.Warn("report: mismatch listing truncated",
				"run_id", res.RunID, "shown", limit, "total", len(res.Mismatches))
			return
		}
		slog.Warn("report: methods disagree",
			"run_id", res.RunID,
			"row", m.Row,
			"column", m.Column,
			reward.MethodLoop, m.Left,
			reward.MethodVector, m.Right,
		)
	}
}

package reward

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/obsidianstack/rewardcheck/internal/table"
)

// Method labels used in metrics and logs.
const (
	MethodLoop   = "loop"
	MethodVector = "vector"
)

// Result is the outcome of one Compare run.
type Result struct {
	RunID string
	Rows  int

	// Equal is true when both methods produced identical tables.
	Equal bool

	// Loop and Vector are the two evaluated copies of the input.
	Loop   *table.Table
	Vector *table.Table

	LoopDuration   time.Duration
	VectorDuration time.Duration

	// Favorites is the number of rows rewarded with their favourite food,
	// counted on the loop result.
	Favorites int

	// Mismatches is nil when Equal is true.
	Mismatches []table.Mismatch
}

// Engine runs both evaluation methods against the same input and keeps
// Prometheus metrics about every run in its own registry.
//
// An Engine is not safe for concurrent use.
type Engine struct {
	rule     Rule
	now      func() time.Time
	registry *prometheus.Registry
	metrics  engineMetrics
}

type engineMetrics struct {
	rows      *prometheus.CounterVec
	favorites *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	equal     prometheus.Gauge
	runs      prometheus.Counter
}

// NewEngine returns an Engine evaluating with rule.
func NewEngine(rule Rule) *Engine {
	reg := prometheus.NewRegistry()
	m := engineMetrics{
		rows: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rewardcheck_rows_evaluated_total",
				Help: "Rows evaluated, by method.",
			},
			[]string{"method"},
		),
		favorites: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rewardcheck_favorite_rewards_total",
				Help: "Rows rewarded with their favourite food, by method.",
			},
			[]string{"method"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "rewardcheck_eval_duration_seconds",
				Help:    "Wall time of one evaluation pass, by method.",
				Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12), // 1µs to ~4s
			},
			[]string{"method"},
		),
		equal: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "rewardcheck_tables_equal",
			Help: "1 if the last run produced identical tables, 0 otherwise.",
		}),
		runs: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rewardcheck_runs_total",
			Help: "Compare runs completed.",
		}),
	}
	reg.MustRegister(m.rows, m.favorites, m.duration, m.equal, m.runs)

	return &Engine{
		rule:     rule,
		now:      time.Now,
		registry: reg,
		metrics:  m,
	}
}

// Rule returns the rule the engine evaluates with.
func (e *Engine) Rule() Rule {
	return e.rule
}

// Compare evaluates in with ApplyLoop and ApplyVector, each on its own deep
// copy, and compares the results. in is left untouched.
func (e *Engine) Compare(in *table.Table) (*Result, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("reward: compare: %w", err)
	}

	res := &Result{
		RunID:  uuid.New().String(),
		Rows:   in.Len(),
		Loop:   in.Clone(),
		Vector: in.Clone(),
	}

	var err error
	if res.LoopDuration, err = e.timed(func() error { return ApplyLoop(res.Loop, e.rule) }); err != nil {
		return nil, err
	}
	if res.VectorDuration, err = e.timed(func() error { return ApplyVector(res.Vector, e.rule) }); err != nil {
		return nil, err
	}

	res.Equal = table.Equal(res.Loop, res.Vector)
	if !res.Equal {
		res.Mismatches = table.Diff(res.Loop, res.Vector)
	}
	res.Favorites = countFavorites(res.Loop)

	e.record(MethodLoop, res.Rows, res.Favorites, res.LoopDuration)
	e.record(MethodVector, res.Rows, countFavorites(res.Vector), res.VectorDuration)
	if res.Equal {
		e.metrics.equal.Set(1)
	} else {
		e.metrics.equal.Set(0)
	}
	e.metrics.runs.Inc()

	slog.Debug("reward: compare done",
		"run_id", res.RunID,
		"rows", res.Rows,
		"equal", res.Equal,
		"loop", res.LoopDuration,
		"vector", res.VectorDuration,
	)
	return res, nil
}

// Gather returns the engine's metric families, sorted by name.
func (e *Engine) Gather() ([]*dto.MetricFamily, error) {
	mfs, err := e.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("reward: gather metrics: %w", err)
	}
	return mfs, nil
}

func (e *Engine) timed(fn func() error) (time.Duration, error) {
	start := e.now()
	if err := fn(); err != nil {
		return 0, err
	}
	d := e.now().Sub(start)
	if d < 0 {
		d = 0 // clock stepped backwards
	}
	return d, nil
}

func (e *Engine) record(method string, rows, favorites int, d time.Duration) {
	e.metrics.rows.WithLabelValues(method).Add(float64(rows))
	e.metrics.favorites.WithLabelValues(method).Add(float64(favorites))
	e.metrics.duration.WithLabelValues(method).Observe(d.Seconds())
}

// countFavorites counts rows whose reward is their favourite food.
func countFavorites(t *table.Table) int {
	var n int
	for i, r := range t.Reward {
		if r == t.FavoriteFood[i] {
			n++
		}
	}
	return n
}

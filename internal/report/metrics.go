package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
)

// EncodeMetrics writes mfs to w in Prometheus text exposition format.
func EncodeMetrics(w io.Writer, mfs []*dto.MetricFamily) error {
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range mfs {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("encode %s: %w", mf.GetName(), err)
		}
	}
	return nil
}

// WriteMetrics replaces the file at path with mfs in text exposition format.
func WriteMetrics(path string, mfs []*dto.MetricFamily) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("report: write metrics: %w", err)
	}
	// No-op once the rename below succeeds.
	defer os.Remove(tmp.Name())

	if err := EncodeMetrics(tmp, mfs); err != nil {
		tmp.Close()
		return fmt.Errorf("report: write metrics: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("report: write metrics: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("report: write metrics: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("report: write metrics: %w", err)
	}
	return nil
}

// ReadMetrics parses a text exposition file written by WriteMetrics.
func ReadMetrics(path string) (map[string]*dto.MetricFamily, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("report: read metrics: %w", err)
	}
	defer f.Close()
	return parseMetrics(f)
}

// parseMetrics decodes a Prometheus text exposition from r into metric families.
// A partial result with a non-fatal parse warning is still returned successfully.
func parseMetrics(r io.Reader) (map[string]*dto.MetricFamily, error) {
	var parser expfmt.TextParser
	mfs, err := parser.TextToMetricFamilies(r)
	if err != nil && len(mfs) == 0 {
		return nil, fmt.Errorf("report: parse prometheus text: %w", err)
	}
	return mfs, nil
}

// SumFamily adds up all counter, gauge or untyped values in a MetricFamily,
// optionally restricted to series whose label name equals value. Histograms
// contribute their sample count. Returns 0 if mf is nil.
func SumFamily(mf *dto.MetricFamily, name, value string) float64 {
	if mf == nil {
		return 0
	}
	var total float64
	for _, m := range mf.GetMetric() {
		if name != "" && !hasLabel(m, name, value) {
			continue
		}
		switch {
		case m.Counter != nil:
			total += m.Counter.GetValue()
		case m.Gauge != nil:
			total += m.Gauge.GetValue()
		case m.Untyped != nil:
			total += m.Untyped.GetValue()
		case m.Histogram != nil:
			total += float64(m.Histogram.GetSampleCount())
		}
	}
	return total
}

func hasLabel(m *dto.Metric, name, value string) bool {
	for _, lp := range m.GetLabel() {
		if lp.GetName() == name {
			return lp.GetValue() == value
		}
	}
	return false
}

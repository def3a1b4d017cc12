package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metric names emitted by the decoder.
const (
	MetricDecodeTime   = "glyphscan_decode_seconds"
	MetricLineCount    = "glyphscan_lines_total"
	MetricSymbolCount  = "glyphscan_symbols_total"
	MetricUnknownCount = "glyphscan_unknown_total"
)

// Metrics receives decoder measurements.
type Metrics interface {
	// ObserveDuration records one timing sample for name.
	ObserveDuration(name string, d time.Duration)
	// Add increments the counter name by n.
	Add(name string, n int)
}

// NopMetrics discards every measurement.
type NopMetrics struct{}

func (NopMetrics) ObserveDuration(string, time.Duration) {}
func (NopMetrics) Add(string, int)                       {}

// PrometheusMetrics records decoder metrics in a Prometheus registry.
type PrometheusMetrics struct {
	durations map[string]prometheus.Histogram
	counters  map[string]prometheus.Counter
}

// NewPrometheusMetrics registers the decoder collectors with reg.
func NewPrometheusMetrics(reg prometheus.Registerer) (*PrometheusMetrics, error) {
	m := &PrometheusMetrics{
		durations: map[string]prometheus.Histogram{
			MetricDecodeTime: prometheus.NewHistogram(prometheus.HistogramOpts{
				Name:    MetricDecodeTime,
				Help:    "Time spent decoding one image.",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
			}),
		},
		counters: map[string]prometheus.Counter{
			MetricLineCount:    prometheus.NewCounter(prometheus.CounterOpts{Name: MetricLineCount, Help: "Lines segmented."}),
			MetricSymbolCount:  prometheus.NewCounter(prometheus.CounterOpts{Name: MetricSymbolCount, Help: "Symbols decoded, unknown included."}),
			MetricUnknownCount: prometheus.NewCounter(prometheus.CounterOpts{Name: MetricUnknownCount, Help: "Glyphs missing from the symbol table."}),
		},
	}
	for _, h := range m.durations {
		if err := reg.Register(h); err != nil {
			return nil, err
		}
	}
	for _, c := range m.counters {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// ObserveDuration records d in the histogram registered under name. Unknown
// names are ignored.
func (m *PrometheusMetrics) ObserveDuration(name string, d time.Duration) {
	if h, ok := m.durations[name]; ok {
		h.Observe(d.Seconds())
	}
}

// Add increments the counter registered under name by n. Unknown names are
// ignored.
func (m *PrometheusMetrics) Add(name string, n int) {
	if c, ok := m.counters[name]; ok {
		c.Add(float64(n))
	}
}

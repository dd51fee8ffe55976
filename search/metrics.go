package search

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricsNamespace = "wordladder"
	metricsSubsystem = "search"
)

// Metrics records finished searches in Prometheus collectors.
type Metrics struct {
	// SearchesTotal counts searches by strategy and outcome.
	SearchesTotal *prometheus.CounterVec

	// DurationSeconds observes wall time per search by strategy.
	DurationSeconds *prometheus.HistogramVec

	// ExpandedWords observes expanded words per search by strategy.
	ExpandedWords *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered. Collectors already registered by an
// earlier call on the same registry are reused.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		SearchesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "searches_total",
				Help:      "Finished word ladder searches by strategy and outcome",
			},
			[]string{"strategy", "outcome"},
		),
		DurationSeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "duration_seconds",
				Help:      "Wall time of word ladder searches",
				Buckets:   []float64{0.0001, 0.001, 0.01, 0.05, 0.25, 1, 5},
			},
			[]string{"strategy"},
		),
		ExpandedWords: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "expanded_words",
				Help:      "Words expanded per word ladder search",
				Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
			},
			[]string{"strategy"},
		),
	}
	if reg == nil {
		return m, nil
	}

	var err error
	if m.SearchesTotal, err = register(reg, m.SearchesTotal); err != nil {
		return nil, err
	}
	if m.DurationSeconds, err = register(reg, m.DurationSeconds); err != nil {
		return nil, err
	}
	if m.ExpandedWords, err = register(reg, m.ExpandedWords); err != nil {
		return nil, err
	}
	return m, nil
}

// register registers c or returns the collector already registered under
// the same descriptor.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// Observe records res. It is safe to call on a nil *Metrics.
func (m *Metrics) Observe(res Result) {
	if m == nil {
		return
	}
	s := res.Strategy.String()
	m.SearchesTotal.WithLabelValues(s, res.Outcome.String()).Inc()
	m.DurationSeconds.WithLabelValues(s).Observe(res.Elapsed.Seconds())
	m.ExpandedWords.WithLabelValues(s).Observe(float64(res.Expanded))
}

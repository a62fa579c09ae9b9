// SPDX-License-Identifier: MIT

package experiment

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"

	"github.com/HarrisonGreenlee/isohash/compare"
)

// Namespace for all metrics
const metricsNamespace = "isohash"

// Metrics holds the Prometheus collectors of one run.
//
// # Fields
//
//   - CompareDuration: engine call latency. Labels: kind
//   - CompareTotal: engine calls by outcome. Labels: kind, match
//   - TrialsTotal: finished trials. Labels: scenario
//
// # Thread Safety
//
// All operations are thread-safe.
type Metrics struct {
	reg *prometheus.Registry

	CompareDuration *prometheus.HistogramVec
	CompareTotal    *prometheus.CounterVec
	TrialsTotal     *prometheus.CounterVec
}

// NewMetrics registers a fresh set of collectors on a private registry, so
// concurrent runs and tests never share counters.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		reg: reg,
		CompareDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "compare_duration_seconds",
			Help:      "Wall time of one engine comparison.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 16), // 0.1ms to ~3s
		}, []string{"kind"}),
		CompareTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "compare_total",
			Help:      "Engine comparisons by kind and outcome.",
		}, []string{"kind", "match"}),
		TrialsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "trials_total",
			Help:      "Completed trials by scenario.",
		}, []string{"scenario"}),
	}
}

// ObserveCompare records one engine call.
func (m *Metrics) ObserveCompare(kind compare.Kind, match bool, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.CompareDuration.WithLabelValues(kind.String()).Observe(elapsed.Seconds())
	m.CompareTotal.WithLabelValues(kind.String(), strconv.FormatBool(match)).Inc()
}

// ObserveTrial records one finished trial.
func (m *Metrics) ObserveTrial(scenario string) {
	if m == nil {
		return
	}
	m.TrialsTotal.WithLabelValues(scenario).Inc()
}

// WriteText writes every gathered family in the Prometheus text format.
func (m *Metrics) WriteText(w io.Writer) error {
	families, err := m.reg.Gather()
	if err != nil {
		return fmt.Errorf("WriteText: gather: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("WriteText: %s: %w", mf.GetName(), err)
		}
	}
	return nil
}

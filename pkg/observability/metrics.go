package observability

import (
	"fmt"
	"slices"
	"strings"

	"github.com/aretw0/cipherkit/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Outcome label values of the transforms counter.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Metrics holds the collectors fed by lifecycle hooks.
type Metrics struct {
	registry *prometheus.Registry

	transforms *prometheus.CounterVec
	inputBytes prometheus.Histogram
	history    *prometheus.CounterVec
}

// Option configures Metrics.
type Option func(*options)

type options struct {
	registry *prometheus.Registry
}

// WithRegistry registers the collectors on reg instead of a private registry.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(o *options) {
		if reg != nil {
			o.registry = reg
		}
	}
}

// New creates and registers the collectors under namespace.
func New(namespace string, opts ...Option) (*Metrics, error) {
	o := options{registry: prometheus.NewRegistry()}
	for _, opt := range opts {
		opt(&o)
	}

	m := &Metrics{
		registry: o.registry,
		transforms: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "transforms_total",
				Help:      "Total number of transformations by method, mode and outcome",
			},
			[]string{"method", "mode", "outcome"},
		),
		inputBytes: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "transform_input_bytes",
				Help:      "Size of transformation inputs",
				Buckets:   prometheus.ExponentialBuckets(16, 4, 6),
			},
		),
		history: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "history_events_total",
				Help:      "History appends and evictions",
			},
			[]string{"event"},
		),
	}

	for _, c := range []prometheus.Collector{m.transforms, m.inputBytes, m.history} {
		if err := m.registry.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
	}
	return m, nil
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Hooks returns lifecycle hooks that record into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTransform: func(e *domain.TransformEvent) {
			outcome := OutcomeOK
			if e.Failed() {
				outcome = OutcomeError
			}
			m.transforms.WithLabelValues(string(e.Method), string(e.Mode), outcome).Inc()
			m.inputBytes.Observe(float64(e.InputBytes))
		},
		OnHistoryAppend: func(e *domain.HistoryEvent) {
			m.history.WithLabelValues(string(e.Type)).Inc()
		},
		OnHistoryEvict: func(e *domain.HistoryEvent) {
			m.history.WithLabelValues(string(e.Type)).Inc()
		},
	}
}

// Row is one sample of the summary.
type Row struct {
	Name   string  `json:"name"`
	Labels string  `json:"labels,omitempty"`
	Value  float64 `json:"value"`
}

// Summary gathers the registry into sorted rows. Histograms contribute their
// sample count and sum.
func (m *Metrics) Summary() ([]Row, error) {
	families, err := m.registry.Gather()
	if err != nil {
		return nil, err
	}

	var rows []Row
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			labels := formatLabels(metric.GetLabel())
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				rows = append(rows, Row{Name: mf.GetName(), Labels: labels, Value: metric.GetCounter().GetValue()})
			case dto.MetricType_GAUGE:
				rows = append(rows, Row{Name: mf.GetName(), Labels: labels, Value: metric.GetGauge().GetValue()})
			case dto.MetricType_HISTOGRAM:
				h := metric.GetHistogram()
				rows = append(rows,
					Row{Name: mf.GetName() + "_count", Labels: labels, Value: float64(h.GetSampleCount())},
					Row{Name: mf.GetName() + "_sum", Labels: labels, Value: h.GetSampleSum()},
				)
			}
		}
	}

	slices.SortStableFunc(rows, func(a, b Row) int {
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return strings.Compare(a.Labels, b.Labels)
	})
	return rows, nil
}

func formatLabels(pairs []*dto.LabelPair) string {
	if len(pairs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, fmt.Sprintf("%s=%q", p.GetName(), p.GetValue()))
	}
	return "{" + strings.Join(parts, ",") + "}"
}

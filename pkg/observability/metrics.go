package observability

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/tessera"
	"github.com/aretw0/tessera/pkg/layout"
)

// Render results, used as the "result" label.
const (
	ResultHit     = "hit"
	ResultMiss    = "miss"
	ResultInvalid = "invalid"
	ResultError   = "error"
)

// Metrics holds the render counters.
type Metrics struct {
	renders  *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		renders: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tessera_renders_total",
				Help: "Total number of layout renders, by result",
			},
			[]string{"result"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tessera_render_duration_seconds",
				Help:    "Duration of layout renders",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
			[]string{"result"},
		),
	}
	reg.MustRegister(m.renders, m.duration)
	return m
}

// Hooks returns engine hooks that record every render.
func (m *Metrics) Hooks() tessera.Hooks {
	return tessera.Hooks{OnRender: m.Observe}
}

// Observe records one render.
func (m *Metrics) Observe(_ context.Context, ev tessera.RenderEvent) {
	result := Result(ev)
	m.renders.WithLabelValues(result).Inc()
	m.duration.WithLabelValues(result).Observe(ev.Duration.Seconds())
}

// Result classifies a render. Documents the caller got wrong are "invalid",
// anything else that failed is an "error".
func Result(ev tessera.RenderEvent) string {
	switch {
	case ev.Err == nil && ev.Cached:
		return ResultHit
	case ev.Err == nil:
		return ResultMiss
	case IsInvalid(ev.Err):
		return ResultInvalid
	default:
		return ResultError
	}
}

// IsInvalid reports whether err was caused by the document itself.
func IsInvalid(err error) bool {
	var aggr *layout.AggregateError
	var node *layout.NodeError
	return errors.As(err, &aggr) ||
		errors.As(err, &node) ||
		errors.Is(err, layout.ErrNoLayout) ||
		errors.Is(err, layout.ErrUnsupportedFormat) ||
		errors.Is(err, layout.ErrParse)
}

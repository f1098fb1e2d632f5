package server

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/brdgme/markup/pkg/observability"
)

// Metrics records pipeline, cache and HTTP events as Prometheus metrics.
// It implements the observability hook interfaces; call Install to start
// receiving events.
type Metrics struct {
	stageDuration *prometheus.HistogramVec
	outputBytes   *prometheus.HistogramVec
	errorsTotal   *prometheus.CounterVec
	cacheTotal    *prometheus.CounterVec
	cacheBytes    prometheus.Counter
	httpTotal     *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
	inFlight      prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		stageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "markup_stage_duration_seconds",
			Help:    "Duration of pipeline stages.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"stage"}),
		outputBytes: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "markup_output_bytes",
			Help:    "Size of rendered output.",
			Buckets: prometheus.ExponentialBuckets(64, 4, 8),
		}, []string{"format"}),
		errorsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "markup_stage_errors_total",
			Help: "Pipeline stage failures.",
		}, []string{"stage"}),
		cacheTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "markup_cache_requests_total",
			Help: "Cache lookups by key type and result.",
		}, []string{"type", "result"}),
		cacheBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "markup_cache_written_bytes_total",
			Help: "Bytes written to the cache.",
		}),
		httpTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "markup_http_requests_total",
			Help: "HTTP requests by route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "markup_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "markup_http_requests_in_flight",
			Help: "Requests currently being served.",
		}),
	}
	reg.MustRegister(
		m.stageDuration, m.outputBytes, m.errorsTotal,
		m.cacheTotal, m.cacheBytes,
		m.httpTotal, m.httpDuration, m.inFlight,
	)
	return m
}

// Install registers m as the global pipeline, cache and HTTP hooks.
func (m *Metrics) Install() {
	observability.SetPipelineHooks(m)
	observability.SetCacheHooks(m)
	observability.SetHTTPHooks(m)
}

func (m *Metrics) OnParseStart(context.Context, int) {}

func (m *Metrics) OnParseComplete(_ context.Context, _ int, d time.Duration, err error) {
	m.stageDuration.WithLabelValues("parse").Observe(d.Seconds())
	if err != nil {
		m.errorsTotal.WithLabelValues("parse").Inc()
	}
}

func (m *Metrics) OnTransformStart(context.Context, int) {}

func (m *Metrics) OnTransformComplete(_ context.Context, _ int, d time.Duration) {
	m.stageDuration.WithLabelValues("transform").Observe(d.Seconds())
}

func (m *Metrics) OnRenderStart(context.Context, string) {}

func (m *Metrics) OnRenderComplete(_ context.Context, format string, size int, d time.Duration, err error) {
	m.stageDuration.WithLabelValues("render").Observe(d.Seconds())
	if err != nil {
		m.errorsTotal.WithLabelValues("render").Inc()
		return
	}
	m.outputBytes.WithLabelValues(format).Observe(float64(size))
}

func (m *Metrics) OnCacheHit(_ context.Context, keyType string) {
	m.cacheTotal.WithLabelValues(keyType, "hit").Inc()
}

func (m *Metrics) OnCacheMiss(_ context.Context, keyType string) {
	m.cacheTotal.WithLabelValues(keyType, "miss").Inc()
}

func (m *Metrics) OnCacheSet(_ context.Context, _ string, size int) {
	m.cacheBytes.Add(float64(size))
}

func (m *Metrics) OnRequest(context.Context, string, string) {
	m.inFlight.Inc()
}

func (m *Metrics) OnResponse(_ context.Context, method, route string, status int, d time.Duration) {
	m.inFlight.Dec()
	m.httpTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

var (
	_ observability.PipelineHooks = (*Metrics)(nil)
	_ observability.CacheHooks    = (*Metrics)(nil)
	_ observability.HTTPHooks     = (*Metrics)(nil)
)

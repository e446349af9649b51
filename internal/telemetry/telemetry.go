// Package telemetry provides OpenTelemetry instrumentation for the emotion
// engine. It exports Prometheus metrics and provides tracing capabilities.
package telemetry

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "emotion-engine"

// Metrics holds all emotion engine Prometheus metrics.
type Metrics struct {
	// Analysis metrics
	AnalysesTotal    *prometheus.CounterVec
	AnalysesFailed   *prometheus.CounterVec
	AnalysisDuration *prometheus.HistogramVec
	LowSignalTotal   prometheus.Counter
	MixedStateTotal  prometheus.Counter
	DominantTotal    *prometheus.CounterVec

	// Safety metrics
	RiskLevelTotal *prometheus.CounterVec

	// Lexicon metrics
	LexiconEntries       prometheus.Gauge
	LexiconSnapshotSwaps prometheus.Counter
	LexiconRowsRejected  prometheus.Counter

	// Expansion metrics
	ExpansionLookups   *prometheus.CounterVec
	ExpansionCacheHits prometheus.Counter
	ExpansionDuration  prometheus.Histogram
}

// Provider wraps telemetry providers.
type Provider struct {
	Tracer  trace.Tracer
	Metrics *Metrics
}

// NewProvider initializes telemetry with Prometheus metrics.
func NewProvider() *Provider {
	return &Provider{
		Tracer:  otel.Tracer(serviceName),
		Metrics: initMetrics(),
	}
}

// Handler returns the Prometheus HTTP handler for the /metrics endpoint.
func (p *Provider) Handler() http.Handler {
	return promhttp.Handler()
}

func initMetrics() *Metrics {
	m := &Metrics{}
	initAnalysisMetrics(m)
	initSafetyMetrics(m)
	initLexiconMetrics(m)
	initExpansionMetrics(m)
	return m
}

func initAnalysisMetrics(m *Metrics) {
	m.AnalysesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "emotion_analyses_total",
		Help: "Total analysis requests completed, by resolved language",
	}, []string{"language"})

	m.AnalysesFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "emotion_analyses_failed_total",
		Help: "Total analysis requests rejected, by error kind",
	}, []string{"kind"})

	m.AnalysisDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "emotion_analysis_duration_seconds",
		Help:    "Time to analyze a single text",
		Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5},
	}, []string{"language"})

	m.LowSignalTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "emotion_low_signal_total",
		Help: "Analyses that resolved to an all-zero mixture",
	})

	m.MixedStateTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "emotion_mixed_state_total",
		Help: "Analyses with ambiguous top-two dominance",
	})

	m.DominantTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "emotion_dominant_total",
		Help: "Dominant emotion distribution across analyses",
	}, []string{"emotion"})
}

func initSafetyMetrics(m *Metrics) {
	m.RiskLevelTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "emotion_risk_level_total",
		Help: "Safety classification outcomes by level",
	}, []string{"level"})
}

func initLexiconMetrics(m *Metrics) {
	m.LexiconEntries = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "emotion_lexicon_entries",
		Help: "Entries in the active lexicon snapshot",
	})

	m.LexiconSnapshotSwaps = promauto.NewCounter(prometheus.CounterOpts{
		Name: "emotion_lexicon_snapshot_swaps_total",
		Help: "Lexicon snapshot publishes",
	})

	m.LexiconRowsRejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "emotion_lexicon_rows_rejected_total",
		Help: "Malformed lexicon rows rejected during load",
	})
}

func initExpansionMetrics(m *Metrics) {
	m.ExpansionLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "emotion_expansion_lookups_total",
		Help: "External definition lookups by provider and outcome",
	}, []string{"provider", "outcome"})

	m.ExpansionCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "emotion_expansion_cache_hits_total",
		Help: "Expansion lookups served from cache",
	})

	m.ExpansionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "emotion_expansion_duration_seconds",
		Help:    "External definition lookup latency",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
	})
}

// RecordAnalysis records metrics for one completed analysis.
func (p *Provider) RecordAnalysis(ctx context.Context, language, dominant string, lowSignal, mixed bool, duration time.Duration) {
	p.Metrics.AnalysesTotal.WithLabelValues(language).Inc()
	p.Metrics.AnalysisDuration.WithLabelValues(language).Observe(duration.Seconds())
	if lowSignal {
		p.Metrics.LowSignalTotal.Inc()
	} else {
		p.Metrics.DominantTotal.WithLabelValues(dominant).Inc()
	}
	if mixed {
		p.Metrics.MixedStateTotal.Inc()
	}
}

// RecordAnalysisFailure records a rejected analysis request.
func (p *Provider) RecordAnalysisFailure(ctx context.Context, kind string) {
	p.Metrics.AnalysesFailed.WithLabelValues(kind).Inc()
}

// RecordRiskLevel records a safety classification outcome.
func (p *Provider) RecordRiskLevel(ctx context.Context, level string) {
	p.Metrics.RiskLevelTotal.WithLabelValues(level).Inc()
}

// RecordLexiconLoad records the outcome of a snapshot publish.
func (p *Provider) RecordLexiconLoad(entries, rejected int) {
	p.Metrics.LexiconEntries.Set(float64(entries))
	p.Metrics.LexiconSnapshotSwaps.Inc()
	p.Metrics.LexiconRowsRejected.Add(float64(rejected))
}

// RecordExpansionLookup records one external definition lookup.
func (p *Provider) RecordExpansionLookup(provider, outcome string, duration time.Duration) {
	p.Metrics.ExpansionLookups.WithLabelValues(provider, outcome).Inc()
	p.Metrics.ExpansionDuration.Observe(duration.Seconds())
}

// RecordExpansionCacheHit records a lookup served without an external call.
func (p *Provider) RecordExpansionCacheHit() {
	p.Metrics.ExpansionCacheHits.Inc()
}

// StartSpan starts a new trace span.
// The caller is responsible for ending the span with span.End().
//
//nolint:spancheck // Caller is responsible for ending the span
func (p *Provider) StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	ctx, span := p.Tracer.Start(ctx, name, trace.WithAttributes(attrs...))
	return ctx, span
}

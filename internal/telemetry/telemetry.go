// Package telemetry provides OpenTelemetry instrumentation for the guide
// service. It exports Prometheus metrics and provides tracing capabilities.
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

const serviceName = "guide"

// Metrics holds all guide Prometheus metrics
type Metrics struct {
	// Request metrics
	QuestionsTotal   *prometheus.CounterVec
	QuestionDuration *prometheus.HistogramVec
	InvalidQuestions prometheus.Counter
	InternalErrors   prometheus.Counter

	// Classifier metrics
	ClassifyDuration prometheus.Histogram
	KeywordsMatched  prometheus.Histogram

	// Enhancer metrics
	EnhancerAttempts prometheus.Counter
	EnhancerFailures *prometheus.CounterVec
	EnhancerDuration prometheus.Histogram
}

// Provider wraps telemetry providers
type Provider struct {
	Tracer  trace.Tracer
	Metrics *Metrics
}

// NewProvider initializes telemetry with Prometheus metrics
func NewProvider() *Provider {
	return &Provider{
		Tracer:  otel.Tracer(serviceName),
		Metrics: initMetrics(),
	}
}

// Handler returns the Prometheus HTTP handler for /metrics endpoint
func (p *Provider) Handler() http.Handler {
	return promhttp.Handler()
}

func initMetrics() *Metrics {
	m := &Metrics{}
	initRequestMetrics(m)
	initClassifierMetrics(m)
	initEnhancerMetrics(m)
	return m
}

func initRequestMetrics(m *Metrics) {
	m.QuestionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "guide_questions_total",
		Help: "Total questions answered, by classified intent",
	}, []string{"intent"})

	m.QuestionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "guide_question_duration_seconds",
		Help:    "Time to answer a single question end to end",
		Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 2.5, 5.0, 10.0},
	}, []string{"intent"})

	m.InvalidQuestions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "guide_invalid_questions_total",
		Help: "Requests rejected for a missing or empty question",
	})

	m.InternalErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "guide_internal_errors_total",
		Help: "Requests that ended in a 500 response",
	})
}

func initClassifierMetrics(m *Metrics) {
	m.ClassifyDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "guide_classify_duration_seconds",
		Help:    "Time spent in keyword matching (Aho-Corasick)",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05},
	})

	m.KeywordsMatched = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "guide_keywords_matched",
		Help:    "Keyword hits per classified question",
		Buckets: []float64{0, 1, 2, 3, 5, 8, 13},
	})
}

func initEnhancerMetrics(m *Metrics) {
	m.EnhancerAttempts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "guide_enhancer_attempts_total",
		Help: "Enhancement calls attempted",
	})

	m.EnhancerFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "guide_enhancer_failures_total",
		Help: "Enhancement calls that fell back to the rule-based answer",
	}, []string{"reason"})

	m.EnhancerDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "guide_enhancer_duration_seconds",
		Help:    "Time spent waiting on the external model",
		Buckets: []float64{0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 8.0, 10.0},
	})
}

// RecordQuestion records metrics for one answered question
func (p *Provider) RecordQuestion(ctx context.Context, intent string, duration time.Duration) {
	p.Metrics.QuestionsTotal.WithLabelValues(intent).Inc()
	p.Metrics.QuestionDuration.WithLabelValues(intent).Observe(duration.Seconds())
}

// RecordClassification records classifier timing and hit count
func (p *Provider) RecordClassification(ctx context.Context, duration time.Duration, keywordsMatched int) {
	p.Metrics.ClassifyDuration.Observe(duration.Seconds())
	p.Metrics.KeywordsMatched.Observe(float64(keywordsMatched))
}

// RecordEnhancerAttempt records one enhancement call
func (p *Provider) RecordEnhancerAttempt(ctx context.Context, duration time.Duration) {
	p.Metrics.EnhancerAttempts.Inc()
	p.Metrics.EnhancerDuration.Observe(duration.Seconds())
}

// RecordEnhancerFailure records a fallback to the rule-based answer
func (p *Provider) RecordEnhancerFailure(ctx context.Context, reason string) {
	if reason == "" {
		reason = "unknown"
	}
	p.Metrics.EnhancerFailures.WithLabelValues(reason).Inc()
}

// IncrementInvalidQuestions counts a 400 rejection
func (p *Provider) IncrementInvalidQuestions() {
	p.Metrics.InvalidQuestions.Inc()
}

// IncrementInternalErrors counts a 500 response
func (p *Provider) IncrementInternalErrors() {
	p.Metrics.InternalErrors.Inc()
}

// StartSpan starts a new trace span.
// The caller is responsible for ending the span with span.End().
//
//nolint:spancheck // Caller is responsible for ending the span
func (p *Provider) StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	ctx, span := p.Tracer.Start(ctx, name, trace.WithAttributes(attrs...))
	return ctx, span
}

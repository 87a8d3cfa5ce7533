package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder exposes Prometheus counters for the domain-level events of the API.
type Recorder struct {
	predictionsTotal *prometheus.CounterVec
	predictedLength  *prometheus.HistogramVec
	confidenceScore  prometheus.Histogram
	inferenceLatency *prometheus.HistogramVec
	chatTotal        *prometheus.CounterVec
	errorsTotal      *prometheus.CounterVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		predictionsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "codebloom_predictions_total",
				Help: "Total number of cycle predictions served",
			},
			[]string{"mode"},
		),
		predictedLength: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "codebloom_predicted_cycle_length_days",
				Help:    "Distribution of predicted cycle lengths in days",
				Buckets: prometheus.LinearBuckets(21, 3, 9),
			},
			[]string{"mode"},
		),
		confidenceScore: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "codebloom_confidence_score",
				Help:    "Distribution of prediction confidence scores",
				Buckets: prometheus.LinearBuckets(0, 10, 11),
			},
		),
		inferenceLatency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "codebloom_inference_duration_seconds",
				Help:    "Duration of the prediction pipeline in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"mode"},
		),
		chatTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "codebloom_chat_requests_total",
				Help: "Total number of chatbot requests by outcome",
			},
			[]string{"outcome"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "codebloom_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
	}
}

// RecordPrediction records a served prediction for a mode (basic|enhanced).
func (r *Recorder) RecordPrediction(mode string, lengthDays int, confidence float64) {
	r.predictionsTotal.WithLabelValues(mode).Inc()
	r.predictedLength.WithLabelValues(mode).Observe(float64(lengthDays))
	r.confidenceScore.Observe(confidence)
}

// RecordInferenceLatency records the prediction pipeline latency in seconds.
func (r *Recorder) RecordInferenceLatency(mode string, seconds float64) {
	r.inferenceLatency.WithLabelValues(mode).Observe(seconds)
}

// RecordChat records a chatbot request outcome (answered|safety|off_topic|error).
func (r *Recorder) RecordChat(outcome string) {
	r.chatTotal.WithLabelValues(outcome).Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

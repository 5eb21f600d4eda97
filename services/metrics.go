package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PredictionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "windpower_predictions_total",
		Help: "Total number of successful predictions served.",
	})
	PredictionFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "windpower_prediction_failures_total",
		Help: "Total number of prediction requests that failed.",
	})
	BatchRequestsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "windpower_batch_requests_total",
		Help: "Total number of batch prediction requests served.",
	})
	InferenceDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "windpower_inference_duration_seconds",
		Help:    "Duration of a single model inference.",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
	})
)

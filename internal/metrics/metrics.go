// Package metrics exposes Prometheus collectors for interviews and document
// scoring.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "cv_assistant"

var (
	Replies = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "replies_total",
			Help:      "Total number of assistant replies by classified intent and session state",
		},
		[]string{"intent", "state"},
	)

	InterviewsStarted = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "interviews_started_total",
			Help:      "Total number of interviews started",
		},
	)

	InvalidAnswers = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invalid_answers_total",
			Help:      "Total number of answers rejected by the strict validator",
		},
		[]string{"field"},
	)

	DocumentsSynthesized = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "documents_synthesized_total",
			Help:      "Total number of resume documents synthesized",
		},
	)

	SynthesisDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "synthesis_duration_seconds",
			Help:      "Duration of document synthesis in seconds",
		},
	)

	DocumentScore = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "document_score",
			Help:      "Distribution of document scores by source",
			Buckets:   prometheus.LinearBuckets(10, 10, 10),
		},
		[]string{"source"},
	)

	UploadsRejected = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "uploads_rejected_total",
			Help:      "Total number of uploads rejected for an unsupported format",
		},
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_sessions",
			Help:      "Number of sessions held by the server",
		},
	)
)

// Score sources.
const (
	SourceSynthesized = "synthesized"
	SourceDraft       = "draft"
	SourceUpload      = "upload"
)

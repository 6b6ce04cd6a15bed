// Package metrics holds the process-wide Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Pipeline
	AnalysesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "callinsights_analyses_total",
		Help: "Calls analyzed, by primary intent and disposition",
	}, []string{"intent", "disposition"})

	AnalysisLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "callinsights_analysis_latency_seconds",
		Help:    "Time spent running the analysis pipeline on one call",
		Buckets: prometheus.DefBuckets,
	})

	ConversionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "callinsights_conversions_total",
		Help: "Analyzed calls that ended in a conversion",
	})

	OverallScore = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "callinsights_overall_score",
		Help:    "Distribution of agent overall scores",
		Buckets: prometheus.LinearBuckets(0, 10, 11),
	})

	// Upstream providers
	ProviderRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "callinsights_provider_requests_total",
		Help: "Requests to transcription and LLM providers",
	}, []string{"provider", "status"})

	ProviderLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "callinsights_provider_latency_seconds",
		Help:    "Provider request latency including retries",
		Buckets: []float64{0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
	}, []string{"provider"})

	DownloadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "callinsights_recording_downloads_total",
		Help: "Recording download attempts, by strategy and result",
	}, []string{"strategy", "status"})

	// Infrastructure
	CacheLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "callinsights_cache_lookups_total",
		Help: "Analysis cache lookups, by result",
	}, []string{"result"})

	QueueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "callinsights_queue_depth",
		Help: "Calls waiting in the auto-transcription queue",
	})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "callinsights_http_requests_total",
		Help: "HTTP requests served, by route and status code",
	}, []string{"route", "code"})
)

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ClassificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "qprism_classifications_total",
			Help: "Total number of classified questions by category and path",
		},
		[]string{"category", "path"},
	)

	KeywordOverridesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "qprism_keyword_overrides_total",
			Help: "Total number of labels forced by a keyword rule",
		},
		[]string{"rule"},
	)

	SearchRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "qprism_search_requests_total",
			Help: "Total number of web search calls by provider and outcome",
		},
		[]string{"provider", "outcome"},
	)

	StageDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "qprism_stage_duration_seconds",
			Help:    "Duration of pipeline stages in seconds",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
		},
		[]string{"stage"},
	)

	BatchRowsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "qprism_batch_rows_total",
			Help: "Total number of processed batch rows by outcome",
		},
		[]string{"outcome"},
	)
)

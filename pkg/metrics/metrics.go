package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	StrategyBatched  = "batched"
	StrategyFallback = "fallback"

	OutcomeSuccess = "success"
	OutcomeError   = "error"

	LevelCampaign = "campaign"
	LevelAdSet    = "adset"
)

var (
	HierarchyFetch = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "meta_hierarchy_fetch_total",
		Help: "Hierarchy fetches by strategy and outcome.",
	}, []string{"strategy", "outcome"})

	PaginationTruncated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "meta_pagination_truncated_total",
		Help: "Paginated reads stopped early because a follow-up page failed.",
	}, []string{"edge"})

	FallbackEntityFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "meta_fallback_entity_failures_total",
		Help: "Per-entity child fetch failures tolerated by the fallback assembler.",
	}, []string{"level"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "agent_http_request_duration_seconds",
		Help:    "Agent API request latency by method and status code.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "status"})
)

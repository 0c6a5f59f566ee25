package recommendation

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	recommendationsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_generations_total",
			Help: "Total number of recommendation set generations",
		},
		[]string{"trigger"},
	)

	recommendationCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_cache_requests_total",
			Help: "Recommendation cache lookups by outcome",
		},
		[]string{"outcome"},
	)

	recommendationScores = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommendation_scores",
			Help:    "Distribution of recommendation scores",
			Buckets: prometheus.LinearBuckets(50, 5, 11),
		},
		[]string{"kind"},
	)

	behaviorEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_behavior_events_total",
			Help: "Behavior events tracked by action",
		},
		[]string{"action"},
	)

	profileConflictsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommendation_profile_conflicts_total",
			Help: "Concurrent profile save conflicts detected",
		},
	)
)

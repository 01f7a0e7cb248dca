package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SwipeDecisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "carmatch_swipe_decisions_total",
			Help: "Total number of like/pass decisions",
		},
		[]string{"decision", "source"},
	)

	GestureOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "carmatch_gesture_outcomes_total",
			Help: "Replayed gestures by final phase",
		},
		[]string{"phase"},
	)

	ListingsFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "carmatch_listings_fetch_duration_seconds",
			Help:    "Duration of listings bounds queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"source"},
	)

	ListingsCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "carmatch_listings_cache_lookups_total",
			Help: "Listings cache lookups by result",
		},
		[]string{"result"},
	)

	ListingClicks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "carmatch_listing_clicks_total",
			Help: "Total number of map marker clicks",
		},
	)

	Logins = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "carmatch_logins_total",
			Help: "Total number of successful logins",
		},
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "carmatch_active_sessions",
			Help: "Number of users with in-memory session state",
		},
	)
)

// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	LookupsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nibblecheck_lookups_completed_total",
			Help: "Total number of lookups that returned items",
		},
		[]string{"operation"},
	)

	LookupsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nibblecheck_lookups_failed_total",
			Help: "Total number of lookups that failed, by classified kind",
		},
		[]string{"operation", "error_kind"},
	)

	LookupDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "nibblecheck_lookup_duration_seconds",
			Help: "Duration of lookup round trips in seconds",
		},
		[]string{"operation"},
	)
)

package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// Stamp assignments that reached the movement log, by movement kind
	StampsAssigned = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "stamps_assigned_total",
		Help: "Total stamp assignments recorded, by movement kind",
	}, []string{"kind"})

	// Failed assignments, by the step of the chain that failed
	StampAssignmentFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "stamp_assignment_failures_total",
		Help: "Stamp assignments that failed, by step",
	}, []string{"step"})

	IdentitiesCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "identities_created_total",
		Help: "Customers created implicitly on first stamp assignment",
	})

	IdentitySearchDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "identity_search_duration_seconds",
		Help:    "Latency of the combined customer and restaurant search",
		Buckets: prometheus.DefBuckets,
	})
)

var once sync.Once

func Init() {
	once.Do(func() {
		prometheus.MustRegister(
			StampsAssigned,
			StampAssignmentFailures,
			IdentitiesCreated,
			IdentitySearchDuration,
		)
	})
}

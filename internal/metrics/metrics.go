package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	bookingsAdmitted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "barberclub",
			Name:      "bookings_admitted_total",
			Help:      "Bookings admitted, by outcome (created/reused).",
		},
		[]string{"outcome"},
	)

	bookingsRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "barberclub",
			Name:      "bookings_rejected_total",
			Help:      "Booking requests rejected, by reason.",
		},
		[]string{"reason"},
	)

	availabilityCache = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "barberclub",
			Name:      "availability_cache_total",
			Help:      "Availability cache lookups, by result (hit/miss).",
		},
		[]string{"result"},
	)
)

// Register registra as métricas no registry default. Idempotente.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(bookingsAdmitted, bookingsRejected, availabilityCache)
	})
}

func IncAdmitted(outcome string) {
	bookingsAdmitted.WithLabelValues(outcome).Inc()
}

func IncRejected(reason string) {
	bookingsRejected.WithLabelValues(reason).Inc()
}

func IncCache(result string) {
	availabilityCache.WithLabelValues(result).Inc()
}

package metrics

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	once sync.Once

	bookingsCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "ranahan",
		Name:      "bookings_created_total",
		Help:      "Count of bookings created.",
	})

	bookingConflicts = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "ranahan",
		Name:      "booking_conflicts_total",
		Help:      "Count of booking attempts rejected because the table was not available.",
	})

	bookingsCancelled = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "ranahan",
		Name:      "bookings_cancelled_total",
		Help:      "Count of bookings cancelled.",
	})

	tableStatusChanges = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ranahan",
			Name:      "table_status_changes_total",
			Help:      "Count of table status transitions by target status.",
		},
		[]string{"status"},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ranahan",
			Name:      "http_requests_total",
			Help:      "Count of HTTP requests by method, route and status code.",
		},
		[]string{"method", "route", "status"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(bookingsCreated, bookingConflicts, bookingsCancelled, tableStatusChanges, httpRequests)
	})
}

func Handler() http.Handler {
	return promhttp.Handler()
}

func IncBookingCreated() {
	bookingsCreated.Inc()
}

func IncBookingConflict() {
	bookingConflicts.Inc()
}

func IncBookingCancelled() {
	bookingsCancelled.Inc()
}

func IncTableStatusChange(status string) {
	tableStatusChanges.WithLabelValues(status).Inc()
}

func ObserveHTTPRequest(method, route string, status int) {
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}

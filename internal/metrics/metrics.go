package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ReservationsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "milliers_reservations_created_total",
		Help: "Total number of reservations successfully created.",
	})

	ReservationsRejectedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "milliers_reservations_rejected_total",
		Help: "Total number of reservation attempts rejected, by reason.",
	},
		[]string{"reason"},
	)

	StatusTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "milliers_reservation_transitions_total",
		Help: "Total number of reservation status transitions, by target status.",
	},
		[]string{"to"},
	)

	CapacityCompensationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "milliers_capacity_compensations_total",
		Help: "Total number of slot decrements rolled back after a failed insert.",
	})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "milliers_http_requests_total",
		Help: "Total number of HTTP requests, by method, route and status code.",
	},
		[]string{"method", "route", "code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "milliers_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	},
		[]string{"method", "route"},
	)
)

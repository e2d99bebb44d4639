package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Own registry so /metrics carries only digest metrics, not the default
// Go collector noise.
var registry = prometheus.NewRegistry()

var (
	fetchTotal = promauto.With(registry).NewCounter(prometheus.CounterOpts{
		Namespace: "olysched",
		Name:      "fetch_total",
		Help:      "Successful schedule fetches.",
	})

	fetchErrors = promauto.With(registry).NewCounter(prometheus.CounterOpts{
		Namespace: "olysched",
		Name:      "fetch_errors_total",
		Help:      "Failed schedule fetches.",
	})

	connectedClients = promauto.With(registry).NewGauge(prometheus.GaugeOpts{
		Namespace: "olysched",
		Name:      "connected_clients",
		Help:      "Currently connected websocket subscribers.",
	})

	lastRefreshUnix = promauto.With(registry).NewGauge(prometheus.GaugeOpts{
		Namespace: "olysched",
		Name:      "last_refresh_timestamp_seconds",
		Help:      "Unix time of the last successful refresh.",
	})

	relevantUnits = promauto.With(registry).NewGauge(prometheus.GaugeOpts{
		Namespace: "olysched",
		Name:      "relevant_units",
		Help:      "Event units involving the target team in the current day.",
	})
)

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hvacpro_http_requests_total",
		Help: "HTTP requests served, by method, route and status code.",
	}, []string{"method", "path", "status"})

	SheetsCallDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "hvacpro_sheets_call_duration_seconds",
		Help:    "Latency of calls against the remote spreadsheet endpoint.",
		Buckets: prometheus.DefBuckets,
	}, []string{"action", "sheet", "outcome"})
)

// ObserveSheetsCall records one gateway round trip.
func ObserveSheetsCall(action, sheet, outcome string, d time.Duration) {
	if action == "" {
		action = "unknown"
	}
	SheetsCallDuration.WithLabelValues(action, sheet, outcome).Observe(d.Seconds())
}

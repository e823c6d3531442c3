// Package metrics serves the Prometheus scrape endpoint.
//
// The exposition below is a fixed payload, not a live registry. Every byte
// of it (HELP/TYPE lines, label sets, blank separators, the baked-in
// app_info labels) is part of the scrape contract.
package metrics

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

const exposition = `# HELP app_requests_total Total application requests
# TYPE app_requests_total counter
app_requests_total{method="GET",path="/health"} 100
app_requests_total{method="GET",path="/ready"} 50
app_requests_total{method="GET",path="/api/v1/status"} 30

# HELP app_request_duration_seconds Request latency
# TYPE app_request_duration_seconds histogram
app_request_duration_seconds_bucket{le="0.1"} 95
app_request_duration_seconds_bucket{le="0.5"} 98
app_request_duration_seconds_bucket{le="1.0"} 100

# HELP app_info Application info
# TYPE app_info gauge
app_info{app="kubernetes-platform-stack",version="1.0.0",environment="unknown"} 1
`

func Routes() *chi.Mux {
	router := chi.NewRouter()
	router.Get("/", GetMetrics)
	return router
}

// GetMetrics godoc
// @Summary Prometheus metrics
// @Tags metrics
// @Produce plain
// @Success 200 {string} string "Prometheus exposition format"
// @Router /metrics [get]
func GetMetrics(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(exposition))
}

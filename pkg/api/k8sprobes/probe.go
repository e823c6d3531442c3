// Package k8sprobes serves the liveness and readiness endpoints polled by
// the kubelet. Both always succeed: process up means alive and ready.
package k8sprobes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/vietcgi/kubernetes-platform-stack/pkg/api/respond"
)

// HealthStatus is the liveness probe response body.
type HealthStatus struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// ReadyStatus is the readiness probe response body.
type ReadyStatus struct {
	Ready     bool   `json:"ready"`
	Timestamp string `json:"timestamp"`
}

func Routes() *chi.Mux {
	router := chi.NewRouter()
	router.Get("/health", GetLiveness)
	router.Get("/ready", GetReadiness)
	return router
}

// GetLiveness godoc
// @Summary Liveness probe
// @Tags probes
// @Produce json
// @Success 200 {object} k8sprobes.HealthStatus
// @Router /health [get]
func GetLiveness(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, HealthStatus{
		Status:    "healthy",
		Timestamp: respond.Timestamp(),
	})
}

// GetReadiness godoc
// @Summary Readiness probe
// @Tags probes
// @Produce json
// @Success 200 {object} k8sprobes.ReadyStatus
// @Router /ready [get]
func GetReadiness(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, ReadyStatus{
		Ready:     true,
		Timestamp: respond.Timestamp(),
	})
}

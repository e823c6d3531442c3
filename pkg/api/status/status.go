// Package status serves the introspection endpoints of the versioned API:
// application status and effective configuration.
package status

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/vietcgi/kubernetes-platform-stack/pkg/api/respond"
	"github.com/vietcgi/kubernetes-platform-stack/pkg/config"
)

// Info is the /api/v1/status response body.
type Info struct {
	App         string `json:"app"`
	Version     string `json:"version"`
	Environment string `json:"environment"`
	Timestamp   string `json:"timestamp"`
}

// ConfigInfo is the /api/v1/config response body. It reports the static
// configuration the process was started with, never live environment reads.
type ConfigInfo struct {
	App         string `json:"app"`
	Version     string `json:"version"`
	Environment string `json:"environment"`
	Port        int    `json:"port"`
	LogLevel    string `json:"log_level"`
	Timestamp   string `json:"timestamp"`
}

// Handler carries the immutable service configuration into the handlers.
type Handler struct {
	cfg *config.Config
}

func Routes(cfg *config.Config) *chi.Mux {
	h := Handler{cfg: cfg}

	router := chi.NewRouter()
	router.Get("/status", h.GetStatus)
	router.Get("/config", h.GetConfig)
	return router
}

// GetStatus godoc
// @Summary Application status
// @Tags api
// @Produce json
// @Success 200 {object} status.Info
// @Router /api/v1/status [get]
func (h Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, Info{
		App:         h.cfg.AppName,
		Version:     h.cfg.AppVersion,
		Environment: h.cfg.Environment,
		Timestamp:   respond.Timestamp(),
	})
}

// GetConfig godoc
// @Summary Effective configuration
// @Tags api
// @Produce json
// @Success 200 {object} status.ConfigInfo
// @Router /api/v1/config [get]
func (h Handler) GetConfig(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, ConfigInfo{
		App:         h.cfg.AppName,
		Version:     h.cfg.AppVersion,
		Environment: h.cfg.Environment,
		Port:        h.cfg.Port,
		LogLevel:    h.cfg.LogLevel,
		Timestamp:   respond.Timestamp(),
	})
}

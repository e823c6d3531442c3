package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/vietcgi/kubernetes-platform-stack/pkg/api/echo"
	"github.com/vietcgi/kubernetes-platform-stack/pkg/api/k8sprobes"
	"github.com/vietcgi/kubernetes-platform-stack/pkg/api/metrics"
	"github.com/vietcgi/kubernetes-platform-stack/pkg/api/respond"
	"github.com/vietcgi/kubernetes-platform-stack/pkg/api/status"
	"github.com/vietcgi/kubernetes-platform-stack/pkg/config"
)

// Bring together all routes present in any packages.
// Each package which has routes exposes a Routes() function returning its own
// subrouter; this function controls where they are mounted. The route table is
// built once at startup and never changes afterwards.
func Routes(cfg *config.Config) *chi.Mux {
	router := chi.NewRouter()
	router.Use(

		// Log method/path before and status after every request
		RequestLogger(slog.Default()),

		// Redirect slashes to the correct endpoint
		middleware.RedirectSlashes,

		// Turn handler panics into the JSON 500 envelope
		Recoverer,

		// Set request header content type Json
		render.SetContentType(render.ContentTypeJSON),
	)

	// Fixed JSON envelopes for routing misses. Registered before any Mount
	// so chi propagates them into every subrouter.
	router.NotFound(NotFound)
	router.MethodNotAllowed(MethodNotAllowed)

	// Generated API documentation
	router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// Versioned API routes; echo is mounted before the catch-all /api/v1
	// subrouter so its pattern wins the static match
	router.Mount("/api/v1/echo", echo.Routes())
	router.Mount("/api/v1", status.Routes(cfg))

	// Prometheus scrape endpoint
	router.Mount("/metrics", metrics.Routes())

	// Liveness and readiness k8s probes
	router.Mount("/", k8sprobes.Routes())

	return router
}

// NotFound answers any unmatched path.
func NotFound(w http.ResponseWriter, r *http.Request) {
	respond.Error(w, r, http.StatusNotFound, "not found")
}

// MethodNotAllowed answers a matched path hit with the wrong method.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respond.Error(w, r, http.StatusMethodNotAllowed, "method not allowed")
}

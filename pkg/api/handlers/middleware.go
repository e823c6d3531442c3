package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/vietcgi/kubernetes-platform-stack/pkg/api/respond"
)

// RequestLogger logs the method and path of each request at debug level
// before it is handled, and the response status after.
func RequestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger.Debug("request", "method", r.Method, "path", r.URL.Path)

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)

			logger.Debug("response",
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
			)
		})
	}
}

// Recoverer converts a handler panic into the fixed JSON 500 envelope when
// nothing has been written yet. The panic value is logged server-side and
// never reaches the client.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			if rvr := recover(); rvr != nil {
				if rvr == http.ErrAbortHandler {
					// the client is gone; let net/http unwind as usual
					panic(rvr)
				}

				slog.Error("panic while serving request",
					"method", r.Method,
					"path", r.URL.Path,
					"panic", rvr,
				)

				// A committed response cannot be rewritten into the envelope.
				if ww.Status() == 0 {
					respond.Error(ww, r, http.StatusInternalServerError, "internal server error")
				}
			}
		}()

		next.ServeHTTP(ww, r)
	})
}

// Package echo serves the request/response testing endpoint. The request
// body is kept as raw JSON so arbitrary client payloads round-trip without
// reshaping: key order, number literals and nesting come back as posted.
package echo

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/vietcgi/kubernetes-platform-stack/pkg/api/respond"
)

// Response is the /api/v1/echo response body.
type Response struct {
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data" swaggertype:"object"`
	Timestamp string          `json:"timestamp"`
}

func Routes() *chi.Mux {
	router := chi.NewRouter()
	router.Post("/", Echo)
	return router
}

// Echo godoc
// @Summary Echo a JSON payload
// @Tags api
// @Accept json
// @Produce json
// @Param payload body object true "arbitrary JSON value"
// @Success 200 {object} echo.Response
// @Failure 400 {object} respond.ErrorResponse
// @Router /api/v1/echo [post]
func Echo(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		respond.Error(w, r, http.StatusBadRequest, err.Error())
		return
	}

	// Unmarshal validates the payload; RawMessage keeps its bytes.
	var data json.RawMessage
	if err := json.Unmarshal(body, &data); err != nil {
		slog.Debug("echo rejected invalid payload", "error", err)
		respond.Error(w, r, http.StatusBadRequest, err.Error())
		return
	}

	slog.Debug("echo request received", "bytes", len(data))

	render.JSON(w, r, Response{
		Message:   "echo received",
		Data:      data,
		Timestamp: respond.Timestamp(),
	})
}

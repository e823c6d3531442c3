// Package respond holds the response conventions shared by every handler:
// the timestamp format and the JSON error envelope.
package respond

import (
	"net/http"
	"time"

	"github.com/go-chi/render"
)

// TimestampFormat is ISO-8601 UTC with microsecond precision and no zone
// suffix. Consumers parse exactly this layout, so it is part of the wire
// contract.
const TimestampFormat = "2006-01-02T15:04:05.000000"

// Timestamp returns the current UTC time in the wire format.
func Timestamp() string {
	return time.Now().UTC().Format(TimestampFormat)
}

// ErrorResponse is the envelope for every non-2xx JSON body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error writes the JSON error envelope with the given status code.
func Error(w http.ResponseWriter, r *http.Request, status int, message string) {
	render.Status(r, status)
	render.JSON(w, r, ErrorResponse{Error: message})
}

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/donmikel/mediarelay/applications/server/domain"
)

// Every response carries the {success, data|error} envelope; this is the one
// wire-format invariant of the service.
type successResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func writeData(w http.ResponseWriter, status int, data interface{}) {
	writeJSON(w, status, successResponse{Success: true, Data: data})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Success: false, Error: message})
}

// writeErr maps a tagged domain error to its HTTP status; anything untyped is
// an internal error.
func writeErr(w http.ResponseWriter, err error) {
	var derr *domain.Error
	if errors.As(err, &derr) {
		writeError(w, statusFor(derr.Kind), derr.Error())
		return
	}

	writeError(w, http.StatusInternalServerError, err.Error())
}

func statusFor(kind domain.Kind) int {
	switch kind {
	case domain.KindBadRequest, domain.KindUnsupportedMediaType, domain.KindPayloadTooLarge:
		return http.StatusBadRequest
	case domain.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

package interfaces

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/yair/groupie-tracker/pkg/domain"
)

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// statusForError maps a handler error to a status code and message.
func statusForError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrFetchFailure), errors.Is(err, domain.ErrParseFailure):
		return http.StatusBadGateway, "upstream service unavailable"
	case errors.Is(err, domain.ErrNotLoaded):
		return http.StatusServiceUnavailable, "artists not loaded"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/basejump/basejump-go/internal/apperr"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) map[string]string {
	return map[string]string{"error": msg}
}

// respondError is the single place a domain error becomes an HTTP response.
// Anything that is not an apperr.Error is logged and hidden behind a 500.
func respondError(w http.ResponseWriter, err error) {
	var de *apperr.Error
	if errors.As(err, &de) {
		writeJSON(w, de.Status(), errorResponse(de.Message))
		return
	}

	slog.Error("unhandled error", "error", err)
	writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
}

package handlers

import (
	"encoding/json"
	"errors"
	"navigation-service/internal/domain"
	"navigation-service/internal/platform/obs"
	"net/http"

	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logFor(r).Warn("encode failed", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// writeDomainError maps navigation failures onto HTTP statuses.
// Only range errors and unknown places echo their message to the client.
func writeDomainError(w http.ResponseWriter, r *http.Request, op string, err error) {
	var pe *domain.ProviderError
	switch {
	case domain.IsRangeError(err):
		writeError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrPlaceNotFound):
		writeError(w, r, http.StatusNotFound, "place not found")
	case errors.As(err, &pe):
		logFor(r).Error(op+" failed", zap.Error(err))
		writeError(w, r, http.StatusBadGateway, "upstream provider failure")
	default:
		logFor(r).Error(op+" failed", zap.Error(err))
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request, allow string) {
	w.Header().Set("Allow", allow)
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
}

func logFor(r *http.Request) *zap.Logger {
	return obs.L().With(
		zap.String("req_id", obs.RequestID(r.Context())),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)
}

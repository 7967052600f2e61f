package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"dreamfund/internal/core/port"
)

// writeJSON encodes v with the given status. Encoding failures are logged;
// headers are already written at that point.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps usecase errors to HTTP status codes. Unknown errors are
// logged and reported as a generic 500 to avoid leaking internals.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, port.ErrZeroAmount):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, port.ErrInvalidCampaign):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, port.ErrNotCampaignCreator), errors.Is(err, port.ErrNotController):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, port.ErrCampaignExpired),
		errors.Is(err, port.ErrZeroBalance),
		errors.Is(err, port.ErrUpkeepNotNeeded):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, port.ErrTransferFailed),
		errors.Is(err, port.ErrStateQueryFailed),
		errors.Is(err, port.ErrHandoffFailed):
		http.Error(w, err.Error(), http.StatusBadGateway)
	default:
		h.logger.Error("internal error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

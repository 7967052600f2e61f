package httpadapter

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type allowlistAddRequest struct {
	Caller string `json:"caller"`
	Wallet string `json:"wallet"`
}

// handleAllowlistAdd adds an approved payout wallet (controller only).
func (h *Handler) handleAllowlistAdd(w http.ResponseWriter, r *http.Request) {
	var req allowlistAddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.Wallet == "" {
		http.Error(w, "wallet is required", http.StatusBadRequest)
		return
	}
	if err := h.admin.AddAllowedWallet(r.Context(), req.Caller, req.Wallet); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleAllowlistRemove removes an approved payout wallet (controller only).
// The caller arrives as a query parameter since DELETE carries no body.
func (h *Handler) handleAllowlistRemove(w http.ResponseWriter, r *http.Request) {
	wallet := chi.URLParam(r, "wallet")
	caller := r.URL.Query().Get("caller")
	if err := h.admin.RemoveAllowedWallet(r.Context(), caller, wallet); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleAllowlistList returns the approved payout wallets.
func (h *Handler) handleAllowlistList(w http.ResponseWriter, r *http.Request) {
	wallets, err := h.admin.ListAllowedWallets(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	if wallets == nil {
		wallets = []string{}
	}
	h.writeJSON(w, http.StatusOK, wallets)
}

// handleNotifications returns the newest feed entries. An optional `limit`
// query parameter caps the page size (default 50, max 500).
func (h *Handler) handleNotifications(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		if n > 500 {
			n = 500
		}
		limit = n
	}
	feed, err := h.admin.Notifications(r.Context(), limit)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, feed)
}

package httpadapter

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"dreamfund/internal/core/domain"
	"dreamfund/internal/core/port"
)

type createCampaignRequest struct {
	Creator      string `json:"creator"`
	PayoutWallet string `json:"payout_wallet"`
	Description  string `json:"description"`
	Goal         int64  `json:"goal"`
	DurationDays int    `json:"duration_days"`
}

type campaignResponse struct {
	ID           int64     `json:"id"`
	Creator      string    `json:"creator"`
	PayoutWallet string    `json:"payout_wallet"`
	Deadline     time.Time `json:"deadline"`
	Goal         int64     `json:"goal"`
	TotalRaised  int64     `json:"total_raised"`
	Balance      int64     `json:"balance"`
	Description  string    `json:"description"`
	Active       bool      `json:"active"`
	Promoted     bool      `json:"promoted"`
	CreatedAt    time.Time `json:"created_at"`
}

func toCampaignResponse(c *domain.Campaign) campaignResponse {
	return campaignResponse{
		ID:           c.ID,
		Creator:      c.Creator,
		PayoutWallet: c.PayoutWallet,
		Deadline:     c.Deadline,
		Goal:         c.Goal,
		TotalRaised:  c.TotalRaised,
		Balance:      c.Balance,
		Description:  c.Description,
		Active:       c.Active,
		Promoted:     c.Promoted,
		CreatedAt:    c.CreatedAt,
	}
}

// campaignID extracts the {id} path parameter. ok is false after an error
// response has been written.
func (h *Handler) campaignID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// handleCreateCampaign creates a campaign from the posted parameters. The
// creator and payout wallet arrive in the body; authentication is assumed to
// happen upstream.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.Creator == "" || req.PayoutWallet == "" {
		http.Error(w, "creator and payout_wallet are required", http.StatusBadRequest)
		return
	}

	c, err := h.ledger.CreateCampaign(r.Context(), port.CreateCampaignReq{
		Creator:      req.Creator,
		PayoutWallet: req.PayoutWallet,
		Description:  req.Description,
		Goal:         req.Goal,
		DurationDays: req.DurationDays,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toCampaignResponse(c))
}

// handleGetCampaign returns one campaign by id.
func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := h.campaignID(w, r)
	if !ok {
		return
	}
	c, err := h.ledger.GetCampaign(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(c))
}

// handleListCampaigns returns all campaigns in ascending id order.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.ledger.ListCampaigns(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	resp := make([]campaignResponse, 0, len(campaigns))
	for i := range campaigns {
		resp = append(resp, toCampaignResponse(&campaigns[i]))
	}
	h.writeJSON(w, http.StatusOK, resp)
}

type withdrawRequest struct {
	Caller string `json:"caller"`
}

type withdrawResponse struct {
	Amount int64 `json:"amount"`
}

// handleWithdraw pays out the full campaign balance to its payout wallet.
// The caller must be the campaign creator.
func (h *Handler) handleWithdraw(w http.ResponseWriter, r *http.Request) {
	id, ok := h.campaignID(w, r)
	if !ok {
		return
	}
	var req withdrawRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.Caller == "" {
		http.Error(w, "caller is required", http.StatusBadRequest)
		return
	}
	amount, err := h.ledger.Withdraw(r.Context(), id, req.Caller)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, withdrawResponse{Amount: amount})
}

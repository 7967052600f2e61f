package httpadapter

import (
	"encoding/json"
	"net/http"
)

type pledgeRequest struct {
	Pledger string `json:"pledger"`
	Amount  int64  `json:"amount"`
}

type pledgeResponse struct {
	CampaignID *int64 `json:"campaign_id,omitempty"`
	Donation   int64  `json:"donation"`
	Fee        int64  `json:"fee"`
}

// handlePledge applies a pledge to a campaign.
func (h *Handler) handlePledge(w http.ResponseWriter, r *http.Request) {
	id, ok := h.campaignID(w, r)
	if !ok {
		return
	}
	var req pledgeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.Pledger == "" {
		http.Error(w, "pledger is required", http.StatusBadRequest)
		return
	}
	receipt, err := h.funding.Pledge(r.Context(), id, req.Pledger, req.Amount)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, pledgeResponse{
		CampaignID: receipt.CampaignID,
		Donation:   receipt.Donation,
		Fee:        receipt.Fee,
	})
}

// handlePlatformPledge applies a pledge directly to the platform operator.
func (h *Handler) handlePlatformPledge(w http.ResponseWriter, r *http.Request) {
	var req pledgeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.Pledger == "" {
		http.Error(w, "pledger is required", http.StatusBadRequest)
		return
	}
	receipt, err := h.funding.PledgeToPlatform(r.Context(), req.Pledger, req.Amount)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, pledgeResponse{
		Donation: receipt.Donation,
		Fee:      receipt.Fee,
	})
}

// handlePlatformWithdraw pays the raiser balance out to the controller.
func (h *Handler) handlePlatformWithdraw(w http.ResponseWriter, r *http.Request) {
	var req withdrawRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	amount, err := h.admin.WithdrawPlatform(r.Context(), req.Caller)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, withdrawResponse{Amount: amount})
}

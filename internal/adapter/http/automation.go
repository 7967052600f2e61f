package httpadapter

import (
	"net/http"
	"time"
)

type dueCheckResponse struct {
	Due bool `json:"due"`
}

type executeResponse struct {
	Expired   []int64 `json:"expired"`
	Handoffs  int     `json:"handoffs"`
	HandedOff int64   `json:"handed_off"`
}

type automationStatusResponse struct {
	Due              bool      `json:"due"`
	PrizePool        int64     `json:"prize_pool"`
	RaiserBalance    int64     `json:"raiser_balance"`
	LastScanTime     time.Time `json:"last_scan_time"`
	CoordinatorState string    `json:"coordinator_state"`
	CampaignCount    int64     `json:"campaign_count"`
	PledgerCount     int64     `json:"pledger_count"`
}

// handleDueCheck exposes the side-effect-free due predicate for the external
// polling agent.
func (h *Handler) handleDueCheck(w http.ResponseWriter, r *http.Request) {
	due, err := h.coordinator.DueCheck(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, dueCheckResponse{Due: due})
}

// handleExecute runs one automated expiration-and-settlement cycle.
func (h *Handler) handleExecute(w http.ResponseWriter, r *http.Request) {
	report, err := h.coordinator.Execute(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	resp := executeResponse{
		Expired:   report.Expired,
		Handoffs:  report.Handoffs,
		HandedOff: report.HandedOff,
	}
	if resp.Expired == nil {
		resp.Expired = []int64{}
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// handleAutomationStatus returns the coordinator's read-only view.
func (h *Handler) handleAutomationStatus(w http.ResponseWriter, r *http.Request) {
	st, err := h.coordinator.Status(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, automationStatusResponse{
		Due:              st.Due,
		PrizePool:        st.Treasury.PrizePool,
		RaiserBalance:    st.Treasury.RaiserBalance,
		LastScanTime:     st.Treasury.LastScanTime,
		CoordinatorState: string(st.Treasury.CoordinatorState),
		CampaignCount:    st.CampaignCount,
		PledgerCount:     st.PledgerCount,
	})
}

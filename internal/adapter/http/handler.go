package httpadapter

import (
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"

	"dreamfund/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. Routes are registered on a chi.Router for convenient method
// handling.
type Handler struct {
	ledger      port.LedgerUseCase
	funding     port.FundingUseCase
	coordinator port.CoordinatorUseCase
	admin       port.AdminUseCase
	logger      *slog.Logger
	metrics     http.Handler
	router      chi.Router
}

// NewHandler creates a handler with all routes configured. metrics may be
// nil, in which case no /metrics endpoint is registered.
func NewHandler(
	ledger port.LedgerUseCase,
	funding port.FundingUseCase,
	coordinator port.CoordinatorUseCase,
	admin port.AdminUseCase,
	metrics http.Handler,
	logger *slog.Logger,
) *Handler {
	h := &Handler{
		ledger:      ledger,
		funding:     funding,
		coordinator: coordinator,
		admin:       admin,
		logger:      logger,
		metrics:     metrics,
	}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/campaigns", h.handleCreateCampaign)
		r.Get("/campaigns", h.handleListCampaigns)
		r.Get("/campaigns/{id}", h.handleGetCampaign)
		r.Post("/campaigns/{id}/pledges", h.handlePledge)
		r.Post("/campaigns/{id}/withdraw", h.handleWithdraw)

		r.Post("/platform/pledges", h.handlePlatformPledge)
		r.Post("/platform/withdraw", h.handlePlatformWithdraw)

		r.Get("/automation/due", h.handleDueCheck)
		r.Post("/automation/execute", h.handleExecute)
		r.Get("/automation/status", h.handleAutomationStatus)

		r.Post("/allowlist", h.handleAllowlistAdd)
		r.Delete("/allowlist/{wallet}", h.handleAllowlistRemove)
		r.Get("/allowlist", h.handleAllowlistList)

		r.Get("/notifications", h.handleNotifications)
	})
	r.Get("/healthz", h.handleHealth)
	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics)
	}
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

package port

import (
	"context"

	"dreamfund/internal/core/domain"
)

// DistributionClient talks to the external prize-distribution service. The
// service draws rewards from the handed-off pool; this system only queries
// its busy/idle state and pushes the accumulated pool to it.
type DistributionClient interface {
	// State returns the service's current state. Any transport or decoding
	// failure must surface as an error (the coordinator maps it to
	// ErrStateQueryFailed).
	State(ctx context.Context) (domain.DistributionState, error)
	// Update transfers the entire prize pool together with the full pledger
	// registry. It must report success or failure synchronously.
	Update(ctx context.Context, amount int64, pledgers []string) error
}

// TransferClient is the external value-transfer primitive used by
// withdrawals. It must report success or failure synchronously.
type TransferClient interface {
	Transfer(ctx context.Context, to string, amount int64) error
}

// Notifier emits an observable notification record. Emission is best-effort:
// implementations log failures instead of propagating them, so business
// operations never fail because of the feed.
type Notifier interface {
	Notify(ctx context.Context, n domain.Notification)
}

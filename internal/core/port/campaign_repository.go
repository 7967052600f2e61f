package port

import (
	"context"
	"time"

	"dreamfund/internal/core/domain"
)

// CampaignRepository defines the persistence layer for the campaign ledger.
// It is an outbound port in hexagonal architecture. Implementations must be
// concurrency-safe and apply every money mutation atomically.
type CampaignRepository interface {
	// Create stores a new campaign and returns its assigned identifier.
	// Identifiers are monotonically increasing and never reused.
	Create(ctx context.Context, c *domain.Campaign) (int64, error)
	// Get returns a campaign by id, or nil when the id was never assigned.
	Get(ctx context.Context, id int64) (*domain.Campaign, error)
	// List returns all campaigns in ascending id order.
	List(ctx context.Context) ([]domain.Campaign, error)
	// Count returns the number of campaigns ever created.
	Count(ctx context.Context) (int64, error)

	// ApplyPledge atomically credits donation to the campaign balance and
	// total raised, credits fee to the shared prize pool and appends the
	// pledger to the registry. Returns ErrInvalidCampaign for unassigned ids
	// and ErrCampaignExpired for inactive campaigns.
	ApplyPledge(ctx context.Context, id, donation, fee int64, pledger string) error
	// DeductBalance subtracts a completed withdrawal from the campaign
	// balance. Pledges applied while the withdrawal's external transfer was
	// in flight stay on the balance. A balance lower than amount is reported
	// as an error and leaves the row untouched.
	DeductBalance(ctx context.Context, id, amount int64) error

	// HasExpirable reports whether any active campaign is past its deadline.
	HasExpirable(ctx context.Context, now time.Time) (bool, error)
	// ListPastDeadline returns the ids of every campaign whose deadline is
	// before now, active or not, in ascending id order.
	ListPastDeadline(ctx context.Context, now time.Time) ([]int64, error)
	// Expire deactivates a campaign. It reports whether the campaign actually
	// transitioned (false when it was already inactive).
	Expire(ctx context.Context, id int64) (bool, error)
}

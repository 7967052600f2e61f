package port

import (
	"context"
	"time"

	"dreamfund/internal/core/domain"
)

// TreasuryRepository persists the single shared treasury row and the
// append-only pledger registry. Only the funding engine (additive) and the
// coordinator (reset on handoff) write through it.
type TreasuryRepository interface {
	// Snapshot returns the current treasury row.
	Snapshot(ctx context.Context) (*domain.Treasury, error)
	// PledgerCount returns the number of registry entries awaiting handoff.
	PledgerCount(ctx context.Context) (int64, error)
	// Pledgers returns the registry in append order, one entry per pledge.
	Pledgers(ctx context.Context) ([]string, error)

	// ApplyPlatformPledge atomically credits donation to the raiser balance,
	// fee to the prize pool and appends the pledger to the registry.
	ApplyPlatformPledge(ctx context.Context, donation, fee int64, pledger string) error
	// DeductRaiserBalance subtracts a completed platform withdrawal from the
	// raiser balance, preserving pledges applied while the external transfer
	// was in flight. A balance lower than amount is reported as an error.
	DeductRaiserBalance(ctx context.Context, amount int64) error

	// SetCoordinatorState mirrors the distribution service state.
	SetCoordinatorState(ctx context.Context, st domain.DistributionState) error
	// SetLastScanTime stamps the last successful automated execution.
	SetLastScanTime(ctx context.Context, t time.Time) error
	// ResetPool atomically zeroes the prize pool and clears the pledger
	// registry after a successful handoff.
	ResetPool(ctx context.Context) error
}

// AllowlistRepository stores the approved payout wallets consulted once at
// campaign creation time.
type AllowlistRepository interface {
	Add(ctx context.Context, wallet string) error
	Remove(ctx context.Context, wallet string) error
	Contains(ctx context.Context, wallet string) (bool, error)
	List(ctx context.Context) ([]string, error)
}

// NotificationRepository appends and reads the observable notification feed.
type NotificationRepository interface {
	Record(ctx context.Context, n domain.Notification) error
	Recent(ctx context.Context, limit int) ([]domain.Notification, error)
}

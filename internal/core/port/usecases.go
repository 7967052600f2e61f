package port

import (
	"context"

	"dreamfund/internal/core/domain"
)

// CreateCampaignReq carries the caller-supplied campaign parameters. The
// deadline is computed as now + DurationDays; zero and negative durations are
// accepted as-is and simply produce an immediately expirable campaign.
type CreateCampaignReq struct {
	Creator      string
	PayoutWallet string
	Description  string
	Goal         int64
	DurationDays int
}

// PledgeReceipt reports how a pledge was split. CampaignID is nil for
// pledges made directly to the platform.
type PledgeReceipt struct {
	CampaignID *int64
	Donation   int64
	Fee        int64
}

// ExecuteReport summarises one successful automated execution cycle.
type ExecuteReport struct {
	// Expired lists the ids that transitioned active -> inactive this cycle,
	// in ascending order.
	Expired []int64
	// Handoffs counts the distribution service update calls performed.
	Handoffs int
	// HandedOff is the total pool value transferred across those calls.
	HandedOff int64
}

// AutomationStatus is the read-only coordinator view exposed to operators
// and the polling agent.
type AutomationStatus struct {
	Due           bool
	Treasury      domain.Treasury
	CampaignCount int64
	PledgerCount  int64
}

// LedgerUseCase owns the durable campaign records: creation, queries,
// withdrawal. Expiration is internal to the coordinator and not exposed here.
type LedgerUseCase interface {
	CreateCampaign(ctx context.Context, req CreateCampaignReq) (*domain.Campaign, error)
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
	// Withdraw transfers the full current balance to the campaign's payout
	// wallet and deducts it. The caller must equal the campaign creator.
	// It returns the withdrawn amount.
	Withdraw(ctx context.Context, id int64, caller string) (int64, error)
}

// FundingUseCase validates and applies pledges, enforcing the fee split.
type FundingUseCase interface {
	Pledge(ctx context.Context, campaignID int64, pledger string, amount int64) (*PledgeReceipt, error)
	PledgeToPlatform(ctx context.Context, pledger string, amount int64) (*PledgeReceipt, error)
}

// CoordinatorUseCase is the automated expiration-and-settlement protocol.
// DueCheck is side-effect-free; Execute is the only mutating entry point and
// is intended to be invoked by the polling agent when DueCheck reports true.
type CoordinatorUseCase interface {
	DueCheck(ctx context.Context) (bool, error)
	Execute(ctx context.Context) (*ExecuteReport, error)
	Status(ctx context.Context) (*AutomationStatus, error)
}

// AdminUseCase groups the controller-gated operations and the observable
// feed.
type AdminUseCase interface {
	// WithdrawPlatform transfers the raiser balance to the controller's
	// wallet and deducts it. Returns the withdrawn amount.
	WithdrawPlatform(ctx context.Context, caller string) (int64, error)
	AddAllowedWallet(ctx context.Context, caller, wallet string) error
	RemoveAllowedWallet(ctx context.Context, caller, wallet string) error
	ListAllowedWallets(ctx context.Context) ([]string, error)
	Notifications(ctx context.Context, limit int) ([]domain.Notification, error)
}

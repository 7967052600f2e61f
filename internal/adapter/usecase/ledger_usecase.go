package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"dreamfund/internal/core/domain"
	"dreamfund/internal/core/port"
	"dreamfund/internal/metrics"
)

// LedgerUseCase owns the durable campaign records. It implements
// port.LedgerUseCase.
type LedgerUseCase struct {
	campaigns port.CampaignRepository
	allowlist port.AllowlistRepository
	transfer  port.TransferClient
	notifier  port.Notifier
	metrics   *metrics.Metrics
	logger    *slog.Logger

	// withdrawMu is the re-entrancy guard around withdrawal: no second
	// withdrawal may observe the pre-deduction balance while the external
	// transfer of the first is in flight.
	withdrawMu sync.Mutex

	now func() time.Time
}

// NewLedgerUseCase creates the ledger usecase. metrics may be nil.
func NewLedgerUseCase(
	campaigns port.CampaignRepository,
	allowlist port.AllowlistRepository,
	transfer port.TransferClient,
	notifier port.Notifier,
	m *metrics.Metrics,
	logger *slog.Logger,
) *LedgerUseCase {
	return &LedgerUseCase{
		campaigns: campaigns,
		allowlist: allowlist,
		transfer:  transfer,
		notifier:  notifier,
		metrics:   m,
		logger:    logger,
		now:       time.Now,
	}
}

// CreateCampaign stores a new campaign. The payout wallet is checked against
// the allow-list at this instant only; later allow-list changes never alter
// the promoted flag.
func (u *LedgerUseCase) CreateCampaign(ctx context.Context, req port.CreateCampaignReq) (*domain.Campaign, error) {
	now := u.now().UTC()

	promoted, err := u.allowlist.Contains(ctx, req.PayoutWallet)
	if err != nil {
		return nil, fmt.Errorf("allow-list lookup: %w", err)
	}

	c := &domain.Campaign{
		Creator:      req.Creator,
		PayoutWallet: req.PayoutWallet,
		Deadline:     now.Add(time.Duration(req.DurationDays) * 24 * time.Hour),
		Goal:         req.Goal,
		Description:  req.Description,
		Active:       true,
		Promoted:     promoted,
		CreatedAt:    now,
	}

	id, err := u.campaigns.Create(ctx, c)
	if err != nil {
		return nil, err
	}
	c.ID = id

	u.metrics.RecordCampaignCreated()
	u.notifier.Notify(ctx, domain.Notification{
		Type:       domain.NotifyCampaignCreated,
		CampaignID: &c.ID,
		Payload: map[string]any{
			"creator":       c.Creator,
			"payout_wallet": c.PayoutWallet,
			"goal":          c.Goal,
			"deadline":      c.Deadline,
		},
	})
	if promoted {
		u.notifier.Notify(ctx, domain.Notification{
			Type:       domain.NotifyCampaignPromoted,
			CampaignID: &c.ID,
			Payload:    map[string]any{"payout_wallet": c.PayoutWallet},
		})
	}

	u.logger.Info("campaign created",
		slog.Int64("id", c.ID),
		slog.Bool("promoted", c.Promoted),
		slog.Time("deadline", c.Deadline),
	)
	return c, nil
}

// GetCampaign returns a campaign by id.
func (u *LedgerUseCase) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	c, err := u.campaigns.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, port.ErrInvalidCampaign
	}
	return c, nil
}

// ListCampaigns returns all campaigns in ascending id order.
func (u *LedgerUseCase) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	return u.campaigns.List(ctx)
}

// Withdraw transfers the full current balance to the campaign's payout
// wallet, then deducts it. Authorization is checked against the creator, not
// the payout wallet. Withdrawal is not gated on the active flag: an expired
// campaign can still be drained as balance accumulates.
func (u *LedgerUseCase) Withdraw(ctx context.Context, id int64, caller string) (int64, error) {
	u.withdrawMu.Lock()
	defer u.withdrawMu.Unlock()

	c, err := u.campaigns.Get(ctx, id)
	if err != nil {
		return 0, err
	}
	if c == nil {
		return 0, port.ErrInvalidCampaign
	}
	if c.Creator != caller {
		return 0, port.ErrNotCampaignCreator
	}
	if c.Balance <= 0 {
		return 0, port.ErrZeroBalance
	}

	amount := c.Balance
	if err = u.transfer.Transfer(ctx, c.PayoutWallet, amount); err != nil {
		return 0, fmt.Errorf("%w: %s", port.ErrTransferFailed, err)
	}
	// Deduct only after the transfer completed, and exactly the transferred
	// amount, so pledges that landed while the transfer was in flight stay
	// on the balance.
	if err = u.campaigns.DeductBalance(ctx, id, amount); err != nil {
		return 0, err
	}

	u.metrics.RecordWithdrawal()
	u.notifier.Notify(ctx, domain.Notification{
		Type:       domain.NotifyWithdrawal,
		CampaignID: &id,
		Payload:    map[string]any{"amount": amount, "to": c.PayoutWallet},
	})

	u.logger.Info("campaign withdrawn",
		slog.Int64("id", id),
		slog.Int64("amount", amount),
		slog.String("to", c.PayoutWallet),
	)
	return amount, nil
}

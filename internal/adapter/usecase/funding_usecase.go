package usecase

import (
	"context"
	"log/slog"

	"dreamfund/internal/core/domain"
	"dreamfund/internal/core/port"
	"dreamfund/internal/metrics"
)

// FundingUseCase validates and applies pledges against the ledger. The fee
// is taken identically regardless of destination so the shared prize pool
// receives a uniform cut of all value flowing through the system.
type FundingUseCase struct {
	campaigns port.CampaignRepository
	treasury  port.TreasuryRepository
	notifier  port.Notifier
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

// NewFundingUseCase creates the funding usecase. metrics may be nil.
func NewFundingUseCase(
	campaigns port.CampaignRepository,
	treasury port.TreasuryRepository,
	notifier port.Notifier,
	m *metrics.Metrics,
	logger *slog.Logger,
) *FundingUseCase {
	return &FundingUseCase{
		campaigns: campaigns,
		treasury:  treasury,
		notifier:  notifier,
		metrics:   m,
		logger:    logger,
	}
}

// Pledge credits a campaign. The donation share goes to the campaign balance
// and total raised, the fee share to the shared prize pool, and the pledger
// is appended to the registry, all in one atomic repository operation.
func (u *FundingUseCase) Pledge(ctx context.Context, campaignID int64, pledger string, amount int64) (*port.PledgeReceipt, error) {
	if amount <= 0 {
		return nil, port.ErrZeroAmount
	}
	donation, fee := domain.SplitPledge(amount)

	if err := u.campaigns.ApplyPledge(ctx, campaignID, donation, fee, pledger); err != nil {
		return nil, err
	}

	u.metrics.RecordPledge("campaign", donation, fee)
	u.notifier.Notify(ctx, domain.Notification{
		Type:       domain.NotifyCampaignFunded,
		CampaignID: &campaignID,
		Payload: map[string]any{
			"pledger":  pledger,
			"donation": donation,
			"fee":      fee,
		},
	})

	u.logger.Info("pledge accepted",
		slog.Int64("campaign_id", campaignID),
		slog.Int64("donation", donation),
		slog.Int64("fee", fee),
	)
	return &port.PledgeReceipt{CampaignID: &campaignID, Donation: donation, Fee: fee}, nil
}

// PledgeToPlatform credits the platform operator directly. Validation and
// fee split are identical to campaign pledges.
func (u *FundingUseCase) PledgeToPlatform(ctx context.Context, pledger string, amount int64) (*port.PledgeReceipt, error) {
	if amount <= 0 {
		return nil, port.ErrZeroAmount
	}
	donation, fee := domain.SplitPledge(amount)

	if err := u.treasury.ApplyPlatformPledge(ctx, donation, fee, pledger); err != nil {
		return nil, err
	}

	u.metrics.RecordPledge("platform", donation, fee)
	u.notifier.Notify(ctx, domain.Notification{
		Type: domain.NotifyPlatformFunded,
		Payload: map[string]any{
			"pledger":  pledger,
			"donation": donation,
			"fee":      fee,
		},
	})

	u.logger.Info("platform pledge accepted",
		slog.Int64("donation", donation),
		slog.Int64("fee", fee),
	)
	return &port.PledgeReceipt{Donation: donation, Fee: fee}, nil
}

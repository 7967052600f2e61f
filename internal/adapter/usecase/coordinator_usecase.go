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

// HandoffCadence selects how often the prize pool is handed off within one
// execute cycle that expires campaigns.
type HandoffCadence string

const (
	// HandoffPerCampaign hands off after every past-deadline campaign
	// processed in the cycle. This is the faithful default: a cycle that
	// walks N past-deadline campaigns performs N handoffs, with every
	// handoff after the first transferring whatever accumulated in between
	// (usually zero).
	HandoffPerCampaign HandoffCadence = "per-campaign"
	// HandoffPerCycle performs a single handoff after all expirations.
	HandoffPerCycle HandoffCadence = "per-cycle"
)

// CoordinatorUseCase is the automated expiration scanner and the settlement
// handoff protocol with the external distribution service. It implements
// port.CoordinatorUseCase.
type CoordinatorUseCase struct {
	campaigns    port.CampaignRepository
	treasury     port.TreasuryRepository
	distribution port.DistributionClient
	notifier     port.Notifier
	metrics      *metrics.Metrics
	logger       *slog.Logger

	interval time.Duration
	cadence  HandoffCadence

	// execMu is the re-entrancy guard around Execute: the handoff performs
	// an external call, and no overlapping execution may observe the pool
	// before it is reset.
	execMu sync.Mutex

	now func() time.Time
}

// NewCoordinatorUseCase creates the coordinator. interval is the minimum
// time between automated executions; cadence defaults to HandoffPerCampaign
// when empty. metrics may be nil.
func NewCoordinatorUseCase(
	campaigns port.CampaignRepository,
	treasury port.TreasuryRepository,
	distribution port.DistributionClient,
	notifier port.Notifier,
	m *metrics.Metrics,
	logger *slog.Logger,
	interval time.Duration,
	cadence HandoffCadence,
) *CoordinatorUseCase {
	if cadence == "" {
		cadence = HandoffPerCampaign
	}
	return &CoordinatorUseCase{
		campaigns:    campaigns,
		treasury:     treasury,
		distribution: distribution,
		notifier:     notifier,
		metrics:      m,
		logger:       logger,
		interval:     interval,
		cadence:      cadence,
		now:          time.Now,
	}
}

// DueCheck is the side-effect-free predicate the polling agent evaluates.
// Work is due only when all four conditions hold: the interval elapsed since
// the last scan, at least one campaign exists, at least one pledger is
// registered, and the prize pool is non-empty.
func (u *CoordinatorUseCase) DueCheck(ctx context.Context) (bool, error) {
	due, _, err := u.dueCheck(ctx, u.now().UTC())
	return due, err
}

func (u *CoordinatorUseCase) dueCheck(ctx context.Context, now time.Time) (bool, *domain.Treasury, error) {
	t, err := u.treasury.Snapshot(ctx)
	if err != nil {
		return false, nil, err
	}
	if t.PrizePool <= 0 {
		return false, t, nil
	}
	if now.Sub(t.LastScanTime) <= u.interval {
		return false, t, nil
	}
	campaigns, err := u.campaigns.Count(ctx)
	if err != nil {
		return false, t, err
	}
	if campaigns == 0 {
		return false, t, nil
	}
	pledgers, err := u.treasury.PledgerCount(ctx)
	if err != nil {
		return false, t, err
	}
	return pledgers > 0, t, nil
}

// Execute runs one automated cycle: re-check preconditions, mirror the
// distribution service state, expire past-deadline campaigns in ascending id
// order and hand the prize pool off. Campaigns expired before a failing
// handoff stay expired; the polling agent retries the rest on its own
// schedule.
func (u *CoordinatorUseCase) Execute(ctx context.Context) (*port.ExecuteReport, error) {
	u.execMu.Lock()
	defer u.execMu.Unlock()

	start := u.now().UTC()
	defer func() {
		u.metrics.ObserveExecute(u.now().UTC().Sub(start).Seconds())
	}()

	due, _, err := u.dueCheck(ctx, start)
	if err != nil {
		return nil, err
	}

	state, err := u.distribution.State(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", port.ErrStateQueryFailed, err)
	}
	if err = u.treasury.SetCoordinatorState(ctx, state); err != nil {
		return nil, err
	}

	if !due || state != domain.StateOpen {
		return nil, port.ErrUpkeepNotNeeded
	}

	// Stamped once per invocation, before scanning, so it holds even when a
	// later handoff in this same invocation fails.
	if err = u.treasury.SetLastScanTime(ctx, start); err != nil {
		return nil, err
	}

	report := &port.ExecuteReport{}

	hasExpirable, err := u.campaigns.HasExpirable(ctx, start)
	if err != nil {
		return nil, err
	}
	if !hasExpirable {
		// Nothing to expire: drain the pool with exactly one handoff.
		if err = u.handoff(ctx, report); err != nil {
			return nil, err
		}
		u.logger.Info("execute completed", slog.Int("expired", 0), slog.Int("handoffs", report.Handoffs))
		return report, nil
	}

	// The loop walks every past-deadline campaign, not only the active ones
	// found by the existence check. Expire is idempotent for the already
	// inactive; under per-campaign cadence each of them still triggers a
	// handoff.
	ids, err := u.campaigns.ListPastDeadline(ctx, start)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		changed, err := u.campaigns.Expire(ctx, id)
		if err != nil {
			return nil, err
		}
		if changed {
			report.Expired = append(report.Expired, id)
			u.metrics.RecordExpiration()
			u.notifier.Notify(ctx, domain.Notification{
				Type:       domain.NotifyCampaignExpired,
				CampaignID: &id,
			})
		}
		if u.cadence == HandoffPerCampaign {
			if err = u.handoff(ctx, report); err != nil {
				return nil, err
			}
		}
	}
	if u.cadence == HandoffPerCycle {
		if err = u.handoff(ctx, report); err != nil {
			return nil, err
		}
	}

	u.logger.Info("execute completed",
		slog.Int("expired", len(report.Expired)),
		slog.Int("handoffs", report.Handoffs),
		slog.Int64("handed_off", report.HandedOff),
	)
	return report, nil
}

// handoff transfers the entire current pool and pledger registry to the
// distribution service, then resets both. The reset happens only after the
// external call reported success.
func (u *CoordinatorUseCase) handoff(ctx context.Context, report *port.ExecuteReport) error {
	t, err := u.treasury.Snapshot(ctx)
	if err != nil {
		return err
	}
	pledgers, err := u.treasury.Pledgers(ctx)
	if err != nil {
		return err
	}

	if err = u.distribution.Update(ctx, t.PrizePool, pledgers); err != nil {
		u.metrics.RecordHandoff(false, 0)
		return fmt.Errorf("%w: %s", port.ErrHandoffFailed, err)
	}

	u.metrics.RecordHandoff(true, t.PrizePool)
	u.notifier.Notify(ctx, domain.Notification{
		Type: domain.NotifyHandoff,
		Payload: map[string]any{
			"amount":   t.PrizePool,
			"pledgers": len(pledgers),
		},
	})

	if err = u.treasury.ResetPool(ctx); err != nil {
		return err
	}

	report.Handoffs++
	report.HandedOff += t.PrizePool
	return nil
}

// Status returns the read-only coordinator view for operators and the
// polling agent.
func (u *CoordinatorUseCase) Status(ctx context.Context) (*port.AutomationStatus, error) {
	now := u.now().UTC()
	due, t, err := u.dueCheck(ctx, now)
	if err != nil {
		return nil, err
	}
	campaigns, err := u.campaigns.Count(ctx)
	if err != nil {
		return nil, err
	}
	pledgers, err := u.treasury.PledgerCount(ctx)
	if err != nil {
		return nil, err
	}
	return &port.AutomationStatus{
		Due:           due,
		Treasury:      *t,
		CampaignCount: campaigns,
		PledgerCount:  pledgers,
	}, nil
}

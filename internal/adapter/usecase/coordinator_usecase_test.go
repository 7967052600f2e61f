package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"dreamfund/internal/core/domain"
	"dreamfund/internal/core/port"
	"dreamfund/internal/core/port/mocks"

	"github.com/stretchr/testify/mock"
)

func newCoordinator(
	t *testing.T,
	campaigns *mocks.MockCampaignRepository,
	treasury *mocks.MockTreasuryRepository,
	distribution *mocks.MockDistributionClient,
	notifier *mocks.MockNotifier,
	cadence HandoffCadence,
	now time.Time,
) *CoordinatorUseCase {
	t.Helper()
	svc := NewCoordinatorUseCase(campaigns, treasury, distribution, notifier, nil, testLogger(), time.Hour, cadence)
	svc.now = func() time.Time { return now }
	return svc
}

// TestDueCheck walks the four preconditions: interval elapsed, at least one
// campaign, at least one pledger, non-empty pool. All must hold.
func TestDueCheck(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name      string
		pool      int64
		sinceScan time.Duration
		campaigns int64
		pledgers  int64
		want      bool
	}{
		{"all conditions hold", 100, 2 * time.Hour, 3, 5, true},
		{"empty pool", 0, 2 * time.Hour, 3, 5, false},
		{"interval not elapsed", 100, 30 * time.Minute, 3, 5, false},
		{"interval exactly elapsed", 100, time.Hour, 3, 5, false},
		{"no campaigns", 100, 2 * time.Hour, 0, 5, false},
		{"no pledgers", 100, 2 * time.Hour, 3, 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			campaigns := mocks.NewMockCampaignRepository(t)
			treasury := mocks.NewMockTreasuryRepository(t)
			distribution := mocks.NewMockDistributionClient(t)
			notifier := mocks.NewMockNotifier(t)

			treasury.EXPECT().Snapshot(mock.Anything).Return(&domain.Treasury{
				PrizePool:    c.pool,
				LastScanTime: now.Add(-c.sinceScan),
			}, nil)
			if c.pool > 0 && c.sinceScan > time.Hour {
				campaigns.EXPECT().Count(mock.Anything).Return(c.campaigns, nil)
				if c.campaigns > 0 {
					treasury.EXPECT().PledgerCount(mock.Anything).Return(c.pledgers, nil)
				}
			}

			svc := newCoordinator(t, campaigns, treasury, distribution, notifier, HandoffPerCampaign, now)

			due, err := svc.DueCheck(context.Background())
			if err != nil {
				t.Fatalf("DueCheck error: %v", err)
			}
			if due != c.want {
				t.Fatalf("expected due=%v, got %v", c.want, due)
			}
		})
	}
}

// TestExecuteMirrorsStateWhenNotDue ensures every execute attempt refreshes
// the coordinator's mirror of the distribution state, even when no work runs.
func TestExecuteMirrorsStateWhenNotDue(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	campaigns := mocks.NewMockCampaignRepository(t)
	treasury := mocks.NewMockTreasuryRepository(t)
	distribution := mocks.NewMockDistributionClient(t)
	notifier := mocks.NewMockNotifier(t)

	treasury.EXPECT().Snapshot(mock.Anything).Return(&domain.Treasury{PrizePool: 0}, nil)
	distribution.EXPECT().State(mock.Anything).Return(domain.StateOpen, nil)
	treasury.EXPECT().SetCoordinatorState(mock.Anything, domain.StateOpen).Return(nil)

	svc := newCoordinator(t, campaigns, treasury, distribution, notifier, HandoffPerCampaign, now)

	if _, err := svc.Execute(context.Background()); !errors.Is(err, port.ErrUpkeepNotNeeded) {
		t.Fatalf("expected ErrUpkeepNotNeeded, got %v", err)
	}
}

// TestExecuteSkipsWhileCalculating ensures a busy distribution service blocks
// the cycle without stamping the scan time.
func TestExecuteSkipsWhileCalculating(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	campaigns := mocks.NewMockCampaignRepository(t)
	treasury := mocks.NewMockTreasuryRepository(t)
	distribution := mocks.NewMockDistributionClient(t)
	notifier := mocks.NewMockNotifier(t)

	treasury.EXPECT().Snapshot(mock.Anything).Return(&domain.Treasury{
		PrizePool:    100,
		LastScanTime: now.Add(-2 * time.Hour),
	}, nil)
	campaigns.EXPECT().Count(mock.Anything).Return(int64(1), nil)
	treasury.EXPECT().PledgerCount(mock.Anything).Return(int64(1), nil)
	distribution.EXPECT().State(mock.Anything).Return(domain.StateCalculating, nil)
	treasury.EXPECT().SetCoordinatorState(mock.Anything, domain.StateCalculating).Return(nil)

	svc := newCoordinator(t, campaigns, treasury, distribution, notifier, HandoffPerCampaign, now)

	if _, err := svc.Execute(context.Background()); !errors.Is(err, port.ErrUpkeepNotNeeded) {
		t.Fatalf("expected ErrUpkeepNotNeeded, got %v", err)
	}
}

// TestExecuteStateQueryFailure ensures a transport failure surfaces as
// ErrStateQueryFailed before any mutation.
func TestExecuteStateQueryFailure(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	campaigns := mocks.NewMockCampaignRepository(t)
	treasury := mocks.NewMockTreasuryRepository(t)
	distribution := mocks.NewMockDistributionClient(t)
	notifier := mocks.NewMockNotifier(t)

	treasury.EXPECT().Snapshot(mock.Anything).Return(&domain.Treasury{PrizePool: 0}, nil)
	distribution.EXPECT().State(mock.Anything).Return(domain.DistributionState(""), errors.New("connection refused"))

	svc := newCoordinator(t, campaigns, treasury, distribution, notifier, HandoffPerCampaign, now)

	if _, err := svc.Execute(context.Background()); !errors.Is(err, port.ErrStateQueryFailed) {
		t.Fatalf("expected ErrStateQueryFailed, got %v", err)
	}
}

// TestExecuteExpiresAndHandsOff walks a full cycle with two past-deadline
// campaigns under per-campaign cadence: both expire in ascending id order,
// the first handoff drains the pool and the second transfers the zero that
// accumulated in between.
func TestExecuteExpiresAndHandsOff(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	campaigns := mocks.NewMockCampaignRepository(t)
	treasury := mocks.NewMockTreasuryRepository(t)
	distribution := mocks.NewMockDistributionClient(t)
	notifier := mocks.NewMockNotifier(t)
	notifier.EXPECT().Notify(mock.Anything, mock.Anything).Maybe()

	lastScan := now.Add(-2 * time.Hour)
	treasury.EXPECT().Snapshot(mock.Anything).Return(&domain.Treasury{
		PrizePool:    100,
		LastScanTime: lastScan,
	}, nil).Twice()
	treasury.EXPECT().Snapshot(mock.Anything).Return(&domain.Treasury{
		PrizePool:    0,
		LastScanTime: lastScan,
	}, nil).Once()

	campaigns.EXPECT().Count(mock.Anything).Return(int64(2), nil)
	treasury.EXPECT().PledgerCount(mock.Anything).Return(int64(3), nil)
	distribution.EXPECT().State(mock.Anything).Return(domain.StateOpen, nil)
	treasury.EXPECT().SetCoordinatorState(mock.Anything, domain.StateOpen).Return(nil)
	treasury.EXPECT().SetLastScanTime(mock.Anything, now).Return(nil)

	campaigns.EXPECT().HasExpirable(mock.Anything, now).Return(true, nil)
	campaigns.EXPECT().ListPastDeadline(mock.Anything, now).Return([]int64{1, 2}, nil)
	campaigns.EXPECT().Expire(mock.Anything, int64(1)).Return(true, nil)
	campaigns.EXPECT().Expire(mock.Anything, int64(2)).Return(true, nil)

	treasury.EXPECT().Pledgers(mock.Anything).Return([]string{"a", "b", "c"}, nil).Once()
	treasury.EXPECT().Pledgers(mock.Anything).Return([]string{}, nil).Once()
	distribution.EXPECT().Update(mock.Anything, int64(100), []string{"a", "b", "c"}).Return(nil).Once()
	distribution.EXPECT().Update(mock.Anything, int64(0), mock.Anything).Return(nil).Once()
	treasury.EXPECT().ResetPool(mock.Anything).Return(nil).Twice()

	svc := newCoordinator(t, campaigns, treasury, distribution, notifier, HandoffPerCampaign, now)

	report, err := svc.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if len(report.Expired) != 2 || report.Expired[0] != 1 || report.Expired[1] != 2 {
		t.Fatalf("expected campaigns 1 and 2 expired, got %v", report.Expired)
	}
	if report.Handoffs != 2 {
		t.Fatalf("expected 2 handoffs, got %d", report.Handoffs)
	}
	if report.HandedOff != 100 {
		t.Fatalf("expected 100 handed off in total, got %d", report.HandedOff)
	}
}

// TestExecutePerCycleCadence ensures the per-cycle setting collapses the
// handoffs into a single transfer after all expirations.
func TestExecutePerCycleCadence(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	campaigns := mocks.NewMockCampaignRepository(t)
	treasury := mocks.NewMockTreasuryRepository(t)
	distribution := mocks.NewMockDistributionClient(t)
	notifier := mocks.NewMockNotifier(t)
	notifier.EXPECT().Notify(mock.Anything, mock.Anything).Maybe()

	treasury.EXPECT().Snapshot(mock.Anything).Return(&domain.Treasury{
		PrizePool:    100,
		LastScanTime: now.Add(-2 * time.Hour),
	}, nil).Twice()
	campaigns.EXPECT().Count(mock.Anything).Return(int64(2), nil)
	treasury.EXPECT().PledgerCount(mock.Anything).Return(int64(3), nil)
	distribution.EXPECT().State(mock.Anything).Return(domain.StateOpen, nil)
	treasury.EXPECT().SetCoordinatorState(mock.Anything, domain.StateOpen).Return(nil)
	treasury.EXPECT().SetLastScanTime(mock.Anything, now).Return(nil)

	campaigns.EXPECT().HasExpirable(mock.Anything, now).Return(true, nil)
	campaigns.EXPECT().ListPastDeadline(mock.Anything, now).Return([]int64{1, 2}, nil)
	campaigns.EXPECT().Expire(mock.Anything, int64(1)).Return(true, nil)
	campaigns.EXPECT().Expire(mock.Anything, int64(2)).Return(true, nil)

	treasury.EXPECT().Pledgers(mock.Anything).Return([]string{"a", "b", "c"}, nil).Once()
	distribution.EXPECT().Update(mock.Anything, int64(100), []string{"a", "b", "c"}).Return(nil).Once()
	treasury.EXPECT().ResetPool(mock.Anything).Return(nil).Once()

	svc := newCoordinator(t, campaigns, treasury, distribution, notifier, HandoffPerCycle, now)

	report, err := svc.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if report.Handoffs != 1 || report.HandedOff != 100 {
		t.Fatalf("expected single handoff of 100, got %d handoffs of %d", report.Handoffs, report.HandedOff)
	}
}

// TestExecuteNoExpirableStillDrains ensures a due cycle with nothing past
// deadline performs exactly one handoff.
func TestExecuteNoExpirableStillDrains(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	campaigns := mocks.NewMockCampaignRepository(t)
	treasury := mocks.NewMockTreasuryRepository(t)
	distribution := mocks.NewMockDistributionClient(t)
	notifier := mocks.NewMockNotifier(t)
	notifier.EXPECT().Notify(mock.Anything, mock.Anything).Maybe()

	treasury.EXPECT().Snapshot(mock.Anything).Return(&domain.Treasury{
		PrizePool:    100,
		LastScanTime: now.Add(-2 * time.Hour),
	}, nil).Twice()
	campaigns.EXPECT().Count(mock.Anything).Return(int64(1), nil)
	treasury.EXPECT().PledgerCount(mock.Anything).Return(int64(1), nil)
	distribution.EXPECT().State(mock.Anything).Return(domain.StateOpen, nil)
	treasury.EXPECT().SetCoordinatorState(mock.Anything, domain.StateOpen).Return(nil)
	treasury.EXPECT().SetLastScanTime(mock.Anything, now).Return(nil)

	campaigns.EXPECT().HasExpirable(mock.Anything, now).Return(false, nil)

	treasury.EXPECT().Pledgers(mock.Anything).Return([]string{"a"}, nil).Once()
	distribution.EXPECT().Update(mock.Anything, int64(100), []string{"a"}).Return(nil).Once()
	treasury.EXPECT().ResetPool(mock.Anything).Return(nil).Once()

	svc := newCoordinator(t, campaigns, treasury, distribution, notifier, HandoffPerCampaign, now)

	report, err := svc.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if len(report.Expired) != 0 || report.Handoffs != 1 || report.HandedOff != 100 {
		t.Fatalf("unexpected report: %+v", report)
	}
}

// TestExecuteHandoffFailureKeepsExpirations ensures a failing handoff aborts
// the cycle but the expirations already applied stay applied and the scan
// time keeps its stamp.
func TestExecuteHandoffFailureKeepsExpirations(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	campaigns := mocks.NewMockCampaignRepository(t)
	treasury := mocks.NewMockTreasuryRepository(t)
	distribution := mocks.NewMockDistributionClient(t)
	notifier := mocks.NewMockNotifier(t)
	notifier.EXPECT().Notify(mock.Anything, mock.Anything).Maybe()

	treasury.EXPECT().Snapshot(mock.Anything).Return(&domain.Treasury{
		PrizePool:    100,
		LastScanTime: now.Add(-2 * time.Hour),
	}, nil).Twice()
	campaigns.EXPECT().Count(mock.Anything).Return(int64(1), nil)
	treasury.EXPECT().PledgerCount(mock.Anything).Return(int64(2), nil)
	distribution.EXPECT().State(mock.Anything).Return(domain.StateOpen, nil)
	treasury.EXPECT().SetCoordinatorState(mock.Anything, domain.StateOpen).Return(nil)
	treasury.EXPECT().SetLastScanTime(mock.Anything, now).Return(nil)

	campaigns.EXPECT().HasExpirable(mock.Anything, now).Return(true, nil)
	campaigns.EXPECT().ListPastDeadline(mock.Anything, now).Return([]int64{5}, nil)
	campaigns.EXPECT().Expire(mock.Anything, int64(5)).Return(true, nil)

	treasury.EXPECT().Pledgers(mock.Anything).Return([]string{"a", "b"}, nil).Once()
	distribution.EXPECT().
		Update(mock.Anything, int64(100), []string{"a", "b"}).
		Return(errors.New("service unavailable"))

	svc := newCoordinator(t, campaigns, treasury, distribution, notifier, HandoffPerCampaign, now)

	if _, err := svc.Execute(context.Background()); !errors.Is(err, port.ErrHandoffFailed) {
		t.Fatalf("expected ErrHandoffFailed, got %v", err)
	}
}

package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"dreamfund/internal/core/port"
	"dreamfund/internal/core/port/mocks"

	"github.com/stretchr/testify/mock"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TestPledgeFeeSplit ensures the donation lands on the campaign and the fee
// on the prize pool, with the 49/50 : 1/50 floor split.
func TestPledgeFeeSplit(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	treasury := mocks.NewMockTreasuryRepository(t)
	notifier := mocks.NewMockNotifier(t)
	notifier.EXPECT().Notify(mock.Anything, mock.Anything).Maybe()

	campaigns.EXPECT().
		ApplyPledge(mock.Anything, int64(7), int64(980), int64(20), "alice").
		Return(nil)

	svc := NewFundingUseCase(campaigns, treasury, notifier, nil, testLogger())

	receipt, err := svc.Pledge(context.Background(), 7, "alice", 1000)
	if err != nil {
		t.Fatalf("Pledge error: %v", err)
	}
	if receipt.Donation != 980 || receipt.Fee != 20 {
		t.Fatalf("expected 980/20 split, got %d/%d", receipt.Donation, receipt.Fee)
	}
	if receipt.CampaignID == nil || *receipt.CampaignID != 7 {
		t.Fatalf("expected campaign id 7 on receipt, got %v", receipt.CampaignID)
	}
}

// TestPledgeRejectsNonPositiveAmount ensures validation happens before any
// repository access.
func TestPledgeRejectsNonPositiveAmount(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	treasury := mocks.NewMockTreasuryRepository(t)
	notifier := mocks.NewMockNotifier(t)

	svc := NewFundingUseCase(campaigns, treasury, notifier, nil, testLogger())

	for _, amount := range []int64{0, -5} {
		if _, err := svc.Pledge(context.Background(), 1, "alice", amount); !errors.Is(err, port.ErrZeroAmount) {
			t.Fatalf("amount %d: expected ErrZeroAmount, got %v", amount, err)
		}
		if _, err := svc.PledgeToPlatform(context.Background(), "alice", amount); !errors.Is(err, port.ErrZeroAmount) {
			t.Fatalf("platform amount %d: expected ErrZeroAmount, got %v", amount, err)
		}
	}
}

// TestPledgeExpiredCampaign ensures repository rejection surfaces unchanged.
func TestPledgeExpiredCampaign(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	treasury := mocks.NewMockTreasuryRepository(t)
	notifier := mocks.NewMockNotifier(t)

	campaigns.EXPECT().
		ApplyPledge(mock.Anything, int64(3), int64(98), int64(2), "bob").
		Return(port.ErrCampaignExpired)

	svc := NewFundingUseCase(campaigns, treasury, notifier, nil, testLogger())

	if _, err := svc.Pledge(context.Background(), 3, "bob", 100); !errors.Is(err, port.ErrCampaignExpired) {
		t.Fatalf("expected ErrCampaignExpired, got %v", err)
	}
}

// TestPlatformPledge ensures the platform path takes the identical fee cut.
func TestPlatformPledge(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	treasury := mocks.NewMockTreasuryRepository(t)
	notifier := mocks.NewMockNotifier(t)
	notifier.EXPECT().Notify(mock.Anything, mock.Anything).Maybe()

	treasury.EXPECT().
		ApplyPlatformPledge(mock.Anything, int64(490), int64(10), "bob").
		Return(nil)

	svc := NewFundingUseCase(campaigns, treasury, notifier, nil, testLogger())

	receipt, err := svc.PledgeToPlatform(context.Background(), "bob", 500)
	if err != nil {
		t.Fatalf("PledgeToPlatform error: %v", err)
	}
	if receipt.Donation != 490 || receipt.Fee != 10 {
		t.Fatalf("expected 490/10 split, got %d/%d", receipt.Donation, receipt.Fee)
	}
	if receipt.CampaignID != nil {
		t.Fatalf("platform receipt must not carry a campaign id")
	}
}

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

// TestCreateCampaignPromotion ensures the allow-list is consulted exactly at
// creation time and the deadline derives from the duration.
func TestCreateCampaignPromotion(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	allowlist := mocks.NewMockAllowlistRepository(t)
	transfer := mocks.NewMockTransferClient(t)
	notifier := mocks.NewMockNotifier(t)
	notifier.EXPECT().Notify(mock.Anything, mock.Anything).Maybe()

	allowlist.EXPECT().Contains(mock.Anything, "wallet-1").Return(true, nil)
	campaigns.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*domain.Campaign")).
		Return(int64(42), nil)

	svc := NewLedgerUseCase(campaigns, allowlist, transfer, notifier, nil, testLogger())
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return created }

	c, err := svc.CreateCampaign(context.Background(), port.CreateCampaignReq{
		Creator:      "alice",
		PayoutWallet: "wallet-1",
		DurationDays: 30,
		Goal:         100_000,
	})
	if err != nil {
		t.Fatalf("CreateCampaign error: %v", err)
	}
	if c.ID != 42 {
		t.Fatalf("expected id 42, got %d", c.ID)
	}
	if !c.Promoted {
		t.Fatalf("expected promoted campaign for allow-listed wallet")
	}
	if want := created.Add(30 * 24 * time.Hour); !c.Deadline.Equal(want) {
		t.Fatalf("expected deadline %v, got %v", want, c.Deadline)
	}
}

// TestGetCampaignUnassigned ensures an unassigned id maps to
// ErrInvalidCampaign rather than a nil campaign.
func TestGetCampaignUnassigned(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	allowlist := mocks.NewMockAllowlistRepository(t)
	transfer := mocks.NewMockTransferClient(t)
	notifier := mocks.NewMockNotifier(t)

	campaigns.EXPECT().Get(mock.Anything, int64(99)).Return(nil, nil)

	svc := NewLedgerUseCase(campaigns, allowlist, transfer, notifier, nil, testLogger())

	if _, err := svc.GetCampaign(context.Background(), 99); !errors.Is(err, port.ErrInvalidCampaign) {
		t.Fatalf("expected ErrInvalidCampaign, got %v", err)
	}
}

// TestWithdrawAuthorization ensures only the creator may withdraw, not the
// payout wallet holder.
func TestWithdrawAuthorization(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	allowlist := mocks.NewMockAllowlistRepository(t)
	transfer := mocks.NewMockTransferClient(t)
	notifier := mocks.NewMockNotifier(t)

	campaigns.EXPECT().Get(mock.Anything, int64(1)).Return(&domain.Campaign{
		ID:           1,
		Creator:      "alice",
		PayoutWallet: "wallet-1",
		Balance:      500,
	}, nil)

	svc := NewLedgerUseCase(campaigns, allowlist, transfer, notifier, nil, testLogger())

	if _, err := svc.Withdraw(context.Background(), 1, "wallet-1"); !errors.Is(err, port.ErrNotCampaignCreator) {
		t.Fatalf("expected ErrNotCampaignCreator, got %v", err)
	}
}

// TestWithdrawZeroBalance ensures a drained campaign rejects withdrawal.
func TestWithdrawZeroBalance(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	allowlist := mocks.NewMockAllowlistRepository(t)
	transfer := mocks.NewMockTransferClient(t)
	notifier := mocks.NewMockNotifier(t)

	campaigns.EXPECT().Get(mock.Anything, int64(1)).Return(&domain.Campaign{
		ID:      1,
		Creator: "alice",
		Balance: 0,
	}, nil)

	svc := NewLedgerUseCase(campaigns, allowlist, transfer, notifier, nil, testLogger())

	if _, err := svc.Withdraw(context.Background(), 1, "alice"); !errors.Is(err, port.ErrZeroBalance) {
		t.Fatalf("expected ErrZeroBalance, got %v", err)
	}
}

// TestWithdrawTransferThenDeduct ensures the balance is deducted only after
// the external transfer completed, and for the full pre-transfer amount.
func TestWithdrawTransferThenDeduct(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	allowlist := mocks.NewMockAllowlistRepository(t)
	transfer := mocks.NewMockTransferClient(t)
	notifier := mocks.NewMockNotifier(t)
	notifier.EXPECT().Notify(mock.Anything, mock.Anything).Maybe()

	var transferred bool
	campaigns.EXPECT().Get(mock.Anything, int64(1)).Return(&domain.Campaign{
		ID:           1,
		Creator:      "alice",
		PayoutWallet: "wallet-1",
		Balance:      750,
	}, nil)
	transfer.EXPECT().
		Transfer(mock.Anything, "wallet-1", int64(750)).
		Run(func(ctx context.Context, to string, amount int64) { transferred = true }).
		Return(nil)
	campaigns.EXPECT().
		DeductBalance(mock.Anything, int64(1), int64(750)).
		Run(func(ctx context.Context, id, amount int64) {
			if !transferred {
				t.Fatalf("balance deducted before transfer completed")
			}
		}).
		Return(nil)

	svc := NewLedgerUseCase(campaigns, allowlist, transfer, notifier, nil, testLogger())

	amount, err := svc.Withdraw(context.Background(), 1, "alice")
	if err != nil {
		t.Fatalf("Withdraw error: %v", err)
	}
	if amount != 750 {
		t.Fatalf("expected amount 750, got %d", amount)
	}
}

// TestWithdrawConcurrentPledgePreserved ensures a pledge that lands while
// the external transfer is in flight survives the withdrawal: the deduction
// removes exactly the transferred amount, never the whole balance.
func TestWithdrawConcurrentPledgePreserved(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	allowlist := mocks.NewMockAllowlistRepository(t)
	transfer := mocks.NewMockTransferClient(t)
	notifier := mocks.NewMockNotifier(t)
	notifier.EXPECT().Notify(mock.Anything, mock.Anything).Maybe()

	// balance observed before the transfer; a concurrent pledge raises it to
	// 848 while the transfer is running.
	balance := int64(750)
	campaigns.EXPECT().Get(mock.Anything, int64(1)).Return(&domain.Campaign{
		ID:           1,
		Creator:      "alice",
		PayoutWallet: "wallet-1",
		Balance:      balance,
	}, nil)
	transfer.EXPECT().
		Transfer(mock.Anything, "wallet-1", int64(750)).
		Run(func(ctx context.Context, to string, amount int64) { balance += 98 }).
		Return(nil)
	campaigns.EXPECT().
		DeductBalance(mock.Anything, int64(1), int64(750)).
		Run(func(ctx context.Context, id, amount int64) { balance -= amount }).
		Return(nil)

	svc := NewLedgerUseCase(campaigns, allowlist, transfer, notifier, nil, testLogger())

	amount, err := svc.Withdraw(context.Background(), 1, "alice")
	if err != nil {
		t.Fatalf("Withdraw error: %v", err)
	}
	if amount != 750 {
		t.Fatalf("expected amount 750, got %d", amount)
	}
	if balance != 98 {
		t.Fatalf("expected concurrent pledge to remain on balance, got %d", balance)
	}
}

// TestWithdrawTransferFailure ensures a failed transfer leaves the balance
// untouched.
func TestWithdrawTransferFailure(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	allowlist := mocks.NewMockAllowlistRepository(t)
	transfer := mocks.NewMockTransferClient(t)
	notifier := mocks.NewMockNotifier(t)

	campaigns.EXPECT().Get(mock.Anything, int64(1)).Return(&domain.Campaign{
		ID:           1,
		Creator:      "alice",
		PayoutWallet: "wallet-1",
		Balance:      750,
	}, nil)
	transfer.EXPECT().
		Transfer(mock.Anything, "wallet-1", int64(750)).
		Return(errors.New("gateway down"))

	svc := NewLedgerUseCase(campaigns, allowlist, transfer, notifier, nil, testLogger())

	if _, err := svc.Withdraw(context.Background(), 1, "alice"); !errors.Is(err, port.ErrTransferFailed) {
		t.Fatalf("expected ErrTransferFailed, got %v", err)
	}
}

package usecase

import (
	"context"
	"errors"
	"testing"

	"dreamfund/internal/core/domain"
	"dreamfund/internal/core/port"
	"dreamfund/internal/core/port/mocks"

	"github.com/stretchr/testify/mock"
)

// TestWithdrawPlatformRequiresController ensures controller-gated operations
// reject every other caller, including the empty one.
func TestWithdrawPlatformRequiresController(t *testing.T) {
	treasury := mocks.NewMockTreasuryRepository(t)
	allowlist := mocks.NewMockAllowlistRepository(t)
	notifications := mocks.NewMockNotificationRepository(t)
	transfer := mocks.NewMockTransferClient(t)
	notifier := mocks.NewMockNotifier(t)

	svc := NewAdminUseCase(treasury, allowlist, notifications, transfer, notifier, testLogger(), "ctrl")

	for _, caller := range []string{"", "alice"} {
		if _, err := svc.WithdrawPlatform(context.Background(), caller); !errors.Is(err, port.ErrNotController) {
			t.Fatalf("caller %q: expected ErrNotController, got %v", caller, err)
		}
		if err := svc.AddAllowedWallet(context.Background(), caller, "w"); !errors.Is(err, port.ErrNotController) {
			t.Fatalf("caller %q: expected ErrNotController on add, got %v", caller, err)
		}
		if err := svc.RemoveAllowedWallet(context.Background(), caller, "w"); !errors.Is(err, port.ErrNotController) {
			t.Fatalf("caller %q: expected ErrNotController on remove, got %v", caller, err)
		}
	}
}

// TestWithdrawPlatform ensures the raiser balance is transferred to the
// controller wallet and the transferred amount deducted afterwards.
func TestWithdrawPlatform(t *testing.T) {
	treasury := mocks.NewMockTreasuryRepository(t)
	allowlist := mocks.NewMockAllowlistRepository(t)
	notifications := mocks.NewMockNotificationRepository(t)
	transfer := mocks.NewMockTransferClient(t)
	notifier := mocks.NewMockNotifier(t)
	notifier.EXPECT().Notify(mock.Anything, mock.Anything).Maybe()

	treasury.EXPECT().Snapshot(mock.Anything).Return(&domain.Treasury{RaiserBalance: 500}, nil)
	transfer.EXPECT().Transfer(mock.Anything, "ctrl", int64(500)).Return(nil)
	treasury.EXPECT().DeductRaiserBalance(mock.Anything, int64(500)).Return(nil)

	svc := NewAdminUseCase(treasury, allowlist, notifications, transfer, notifier, testLogger(), "ctrl")

	amount, err := svc.WithdrawPlatform(context.Background(), "ctrl")
	if err != nil {
		t.Fatalf("WithdrawPlatform error: %v", err)
	}
	if amount != 500 {
		t.Fatalf("expected amount 500, got %d", amount)
	}
}

// TestWithdrawPlatformZeroBalance ensures an empty raiser balance rejects
// withdrawal without touching the transfer client.
func TestWithdrawPlatformZeroBalance(t *testing.T) {
	treasury := mocks.NewMockTreasuryRepository(t)
	allowlist := mocks.NewMockAllowlistRepository(t)
	notifications := mocks.NewMockNotificationRepository(t)
	transfer := mocks.NewMockTransferClient(t)
	notifier := mocks.NewMockNotifier(t)

	treasury.EXPECT().Snapshot(mock.Anything).Return(&domain.Treasury{RaiserBalance: 0}, nil)

	svc := NewAdminUseCase(treasury, allowlist, notifications, transfer, notifier, testLogger(), "ctrl")

	if _, err := svc.WithdrawPlatform(context.Background(), "ctrl"); !errors.Is(err, port.ErrZeroBalance) {
		t.Fatalf("expected ErrZeroBalance, got %v", err)
	}
}

// TestAllowlistManagement exercises the add/remove/list round trip.
func TestAllowlistManagement(t *testing.T) {
	treasury := mocks.NewMockTreasuryRepository(t)
	allowlist := mocks.NewMockAllowlistRepository(t)
	notifications := mocks.NewMockNotificationRepository(t)
	transfer := mocks.NewMockTransferClient(t)
	notifier := mocks.NewMockNotifier(t)
	notifier.EXPECT().Notify(mock.Anything, mock.Anything).Maybe()

	allowlist.EXPECT().Add(mock.Anything, "wallet-1").Return(nil)
	allowlist.EXPECT().Remove(mock.Anything, "wallet-1").Return(nil)
	allowlist.EXPECT().List(mock.Anything).Return([]string{"wallet-2"}, nil)

	svc := NewAdminUseCase(treasury, allowlist, notifications, transfer, notifier, testLogger(), "ctrl")

	if err := svc.AddAllowedWallet(context.Background(), "ctrl", "wallet-1"); err != nil {
		t.Fatalf("AddAllowedWallet error: %v", err)
	}
	if err := svc.RemoveAllowedWallet(context.Background(), "ctrl", "wallet-1"); err != nil {
		t.Fatalf("RemoveAllowedWallet error: %v", err)
	}
	wallets, err := svc.ListAllowedWallets(context.Background())
	if err != nil {
		t.Fatalf("ListAllowedWallets error: %v", err)
	}
	if len(wallets) != 1 || wallets[0] != "wallet-2" {
		t.Fatalf("unexpected allow-list: %v", wallets)
	}
}

package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"dreamfund/internal/core/domain"
	"dreamfund/internal/core/port"
)

// AdminUseCase groups the controller-gated operations: platform withdrawal
// and allow-list management. The controller identity and its payout wallet
// come from configuration.
type AdminUseCase struct {
	treasury      port.TreasuryRepository
	allowlist     port.AllowlistRepository
	notifications port.NotificationRepository
	transfer      port.TransferClient
	notifier      port.Notifier
	logger        *slog.Logger

	controller string

	withdrawMu sync.Mutex
}

func NewAdminUseCase(
	treasury port.TreasuryRepository,
	allowlist port.AllowlistRepository,
	notifications port.NotificationRepository,
	transfer port.TransferClient,
	notifier port.Notifier,
	logger *slog.Logger,
	controller string,
) *AdminUseCase {
	return &AdminUseCase{
		treasury:      treasury,
		allowlist:     allowlist,
		notifications: notifications,
		transfer:      transfer,
		notifier:      notifier,
		logger:        logger,
		controller:    controller,
	}
}

func (u *AdminUseCase) requireController(caller string) error {
	if caller == "" || caller != u.controller {
		return port.ErrNotController
	}
	return nil
}

// WithdrawPlatform transfers the raiser balance to the controller wallet and
// deducts it, with the same transfer-then-deduct ordering and re-entrancy
// guard as campaign withdrawals.
func (u *AdminUseCase) WithdrawPlatform(ctx context.Context, caller string) (int64, error) {
	if err := u.requireController(caller); err != nil {
		return 0, err
	}

	u.withdrawMu.Lock()
	defer u.withdrawMu.Unlock()

	t, err := u.treasury.Snapshot(ctx)
	if err != nil {
		return 0, err
	}
	if t.RaiserBalance <= 0 {
		return 0, port.ErrZeroBalance
	}

	amount := t.RaiserBalance
	if err = u.transfer.Transfer(ctx, u.controller, amount); err != nil {
		return 0, fmt.Errorf("%w: %s", port.ErrTransferFailed, err)
	}
	if err = u.treasury.DeductRaiserBalance(ctx, amount); err != nil {
		return 0, err
	}

	u.notifier.Notify(ctx, domain.Notification{
		Type:    domain.NotifyPlatformWithdrawal,
		Payload: map[string]any{"amount": amount, "to": u.controller},
	})
	u.logger.Info("platform withdrawn", slog.Int64("amount", amount))
	return amount, nil
}

// AddAllowedWallet adds a payout wallet to the allow-list. Campaigns created
// from then on with this wallet are flagged promoted; existing campaigns are
// never retroactively altered.
func (u *AdminUseCase) AddAllowedWallet(ctx context.Context, caller, wallet string) error {
	if err := u.requireController(caller); err != nil {
		return err
	}
	if err := u.allowlist.Add(ctx, wallet); err != nil {
		return err
	}
	u.notifier.Notify(ctx, domain.Notification{
		Type:    domain.NotifyAllowlistChanged,
		Payload: map[string]any{"action": "added", "wallet": wallet},
	})
	return nil
}

// RemoveAllowedWallet removes a payout wallet from the allow-list.
func (u *AdminUseCase) RemoveAllowedWallet(ctx context.Context, caller, wallet string) error {
	if err := u.requireController(caller); err != nil {
		return err
	}
	if err := u.allowlist.Remove(ctx, wallet); err != nil {
		return err
	}
	u.notifier.Notify(ctx, domain.Notification{
		Type:    domain.NotifyAllowlistChanged,
		Payload: map[string]any{"action": "removed", "wallet": wallet},
	})
	return nil
}

// ListAllowedWallets returns the current allow-list.
func (u *AdminUseCase) ListAllowedWallets(ctx context.Context) ([]string, error) {
	return u.allowlist.List(ctx)
}

// Notifications returns the most recent feed entries, newest first.
func (u *AdminUseCase) Notifications(ctx context.Context, limit int) ([]domain.Notification, error) {
	return u.notifications.Recent(ctx, limit)
}

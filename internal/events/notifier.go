package events

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"dreamfund/internal/core/domain"
	"dreamfund/internal/core/port"
)

// Notifier records notifications in the durable feed and publishes them on
// the pub/sub channel. Both sides are best-effort: a failure is logged and
// never propagated to the emitting operation.
type Notifier struct {
	repo      port.NotificationRepository
	publisher Publisher
	logger    *slog.Logger
}

func NewNotifier(repo port.NotificationRepository, publisher Publisher, logger *slog.Logger) *Notifier {
	if publisher == nil {
		publisher = NopPublisher{}
	}
	return &Notifier{repo: repo, publisher: publisher, logger: logger}
}

func (n *Notifier) Notify(ctx context.Context, notif domain.Notification) {
	if notif.ID == "" {
		notif.ID = uuid.NewString()
	}
	if notif.CreatedAt.IsZero() {
		notif.CreatedAt = time.Now().UTC()
	}
	if err := n.repo.Record(ctx, notif); err != nil {
		n.logger.Error("record notification", slog.String("type", notif.Type), slog.Any("error", err))
	}
	if err := n.publisher.Publish(ctx, Channel, notif); err != nil {
		n.logger.Error("publish notification", slog.String("type", notif.Type), slog.Any("error", err))
	}
}

package events

import (
	"context"

	"dreamfund/internal/core/domain"
)

// Channel is the pub/sub channel notifications are published on.
const Channel = "dreamfund.notifications"

// Publisher pushes notifications to off-system consumers.
type Publisher interface {
	Publish(ctx context.Context, channel string, n domain.Notification) error
}

// NopPublisher drops every notification. Used when pub/sub is disabled.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, domain.Notification) error { return nil }

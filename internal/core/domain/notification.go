package domain

import "time"

// Notification types emitted by the service. Notifications are append-only
// observable records for off-system consumers and carry no behavioral
// contract beyond being emitted.
const (
	NotifyCampaignCreated    = "campaign_created"
	NotifyCampaignPromoted   = "campaign_promoted"
	NotifyCampaignFunded     = "campaign_funded"
	NotifyCampaignExpired    = "campaign_expired"
	NotifyWithdrawal         = "withdrawal"
	NotifyPlatformFunded     = "platform_funded"
	NotifyPlatformWithdrawal = "platform_withdrawal"
	NotifyHandoff            = "handoff"
	NotifyAllowlistChanged   = "allowlist_changed"
)

// Notification is a single observable record.
type Notification struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	CampaignID *int64         `json:"campaign_id,omitempty"`
	Payload    map[string]any `json:"payload,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

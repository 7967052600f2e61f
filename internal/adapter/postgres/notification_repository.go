package postgres

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"dreamfund/internal/core/domain"
)

// NotificationRepository implements port.NotificationRepository as an
// append-only feed.
type NotificationRepository struct {
	pool *pgxpool.Pool
}

// NewNotificationRepository returns a new repository instance.
func NewNotificationRepository(pool *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{pool: pool}
}

// Record appends a notification.
func (r *NotificationRepository) Record(ctx context.Context, n domain.Notification) error {
	var payload []byte
	if n.Payload != nil {
		var err error
		payload, err = json.Marshal(n.Payload)
		if err != nil {
			return err
		}
	}
	_, err := r.pool.Exec(ctx, `INSERT INTO notifications (id, type, campaign_id, payload, created_at)
VALUES ($1,$2,$3,$4,$5)`, n.ID, n.Type, n.CampaignID, payload, n.CreatedAt)
	return err
}

// Recent returns the newest notifications first.
func (r *NotificationRepository) Recent(ctx context.Context, limit int) ([]domain.Notification, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, type, campaign_id, payload, created_at
FROM notifications ORDER BY created_at DESC, id LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Notification, error) {
		var (
			n       domain.Notification
			payload []byte
		)
		if err := row.Scan(&n.ID, &n.Type, &n.CampaignID, &payload, &n.CreatedAt); err != nil {
			return domain.Notification{}, err
		}
		if len(payload) > 0 {
			if err := json.Unmarshal(payload, &n.Payload); err != nil {
				return domain.Notification{}, err
			}
		}
		return n, nil
	})
}

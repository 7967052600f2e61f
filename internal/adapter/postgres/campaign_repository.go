package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"dreamfund/internal/core/domain"
	"dreamfund/internal/core/port"
)

// CampaignRepository implements port.CampaignRepository using pgxpool.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

const campaignColumns = `id, creator, payout_wallet, deadline, goal, total_raised, balance, description, active, promoted, created_at`

func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(
		&c.ID,
		&c.Creator,
		&c.PayoutWallet,
		&c.Deadline,
		&c.Goal,
		&c.TotalRaised,
		&c.Balance,
		&c.Description,
		&c.Active,
		&c.Promoted,
		&c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create stores a new campaign and returns its assigned id.
func (r *CampaignRepository) Create(ctx context.Context, c *domain.Campaign) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `INSERT INTO campaigns
    (creator, payout_wallet, deadline, goal, description, active, promoted, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8) RETURNING id`,
		c.Creator, c.PayoutWallet, c.Deadline, c.Goal, c.Description, c.Active, c.Promoted, c.CreatedAt).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Get returns a campaign by id, or nil when the id was never assigned.
func (r *CampaignRepository) Get(ctx context.Context, id int64) (*domain.Campaign, error) {
	c, err := scanCampaign(r.pool.QueryRow(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// List returns all campaigns in ascending id order.
func (r *CampaignRepository) List(ctx context.Context) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		c, err := scanCampaign(row)
		if err != nil {
			return domain.Campaign{}, err
		}
		return *c, nil
	})
}

// Count returns the number of campaigns ever created.
func (r *CampaignRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM campaigns`).Scan(&n)
	return n, err
}

// ApplyPledge credits the campaign, the prize pool and the pledger registry
// in a single serializable transaction. The campaign row is locked first so
// the expired check and the credit cannot interleave with expiration.
func (r *CampaignRepository) ApplyPledge(ctx context.Context, id, donation, fee int64, pledger string) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer func() { err = finishTx(ctx, tx, err) }()

	var active bool
	err = tx.QueryRow(ctx, `SELECT active FROM campaigns WHERE id = $1 FOR UPDATE`, id).Scan(&active)
	if errors.Is(err, pgx.ErrNoRows) {
		err = port.ErrInvalidCampaign
		return err
	}
	if err != nil {
		return err
	}
	if !active {
		err = port.ErrCampaignExpired
		return err
	}

	_, err = tx.Exec(ctx, `UPDATE campaigns
SET balance = balance + $1, total_raised = total_raised + $1 WHERE id = $2`, donation, id)
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, `UPDATE treasury SET prize_pool = prize_pool + $1 WHERE id = 1`, fee)
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, `INSERT INTO pledgers (address, pledged_at) VALUES ($1, $2)`,
		pledger, time.Now().UTC())
	return err
}

// DeductBalance subtracts a completed withdrawal from the campaign balance.
// Subtracting instead of zeroing keeps pledges that were applied while the
// withdrawal's external transfer was in flight. The guard keeps the balance
// non-negative; a zero affected count means the balance dropped below the
// withdrawn amount, which no normal interleaving produces.
func (r *CampaignRepository) DeductBalance(ctx context.Context, id, amount int64) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE campaigns SET balance = balance - $2 WHERE id = $1 AND balance >= $2`, id, amount)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("campaign %d: balance lower than withdrawn amount", id)
	}
	return nil
}

// HasExpirable reports whether any active campaign is past its deadline.
func (r *CampaignRepository) HasExpirable(ctx context.Context, now time.Time) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM campaigns WHERE active AND deadline < $1)`, now).Scan(&exists)
	return exists, err
}

// ListPastDeadline returns every campaign past its deadline, active or not,
// in ascending id order.
func (r *CampaignRepository) ListPastDeadline(ctx context.Context, now time.Time) ([]int64, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id FROM campaigns WHERE deadline < $1 ORDER BY id`, now)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[int64])
}

// Expire deactivates a campaign, reporting whether the row transitioned.
func (r *CampaignRepository) Expire(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE campaigns SET active = FALSE WHERE id = $1 AND active`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

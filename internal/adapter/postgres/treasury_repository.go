package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"dreamfund/internal/core/domain"
)

// TreasuryRepository implements port.TreasuryRepository over the singleton
// treasury row and the pledgers table.
type TreasuryRepository struct {
	pool *pgxpool.Pool
}

// NewTreasuryRepository returns a new repository instance.
func NewTreasuryRepository(pool *pgxpool.Pool) *TreasuryRepository {
	return &TreasuryRepository{pool: pool}
}

// Snapshot returns the current treasury row.
func (r *TreasuryRepository) Snapshot(ctx context.Context) (*domain.Treasury, error) {
	var t domain.Treasury
	var state string
	err := r.pool.QueryRow(ctx,
		`SELECT prize_pool, raiser_balance, last_scan_time, coordinator_state FROM treasury WHERE id = 1`).
		Scan(&t.PrizePool, &t.RaiserBalance, &t.LastScanTime, &state)
	if err != nil {
		return nil, err
	}
	t.CoordinatorState = domain.DistributionState(state)
	return &t, nil
}

// PledgerCount returns the number of registry entries awaiting handoff.
func (r *TreasuryRepository) PledgerCount(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM pledgers`).Scan(&n)
	return n, err
}

// Pledgers returns the registry in append order.
func (r *TreasuryRepository) Pledgers(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT address FROM pledgers ORDER BY position`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

// ApplyPlatformPledge credits the raiser balance and prize pool and appends
// the pledger, atomically.
func (r *TreasuryRepository) ApplyPlatformPledge(ctx context.Context, donation, fee int64, pledger string) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer func() { err = finishTx(ctx, tx, err) }()

	_, err = tx.Exec(ctx, `UPDATE treasury
SET raiser_balance = raiser_balance + $1, prize_pool = prize_pool + $2 WHERE id = 1`, donation, fee)
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, `INSERT INTO pledgers (address, pledged_at) VALUES ($1, $2)`,
		pledger, time.Now().UTC())
	return err
}

// DeductRaiserBalance subtracts a completed platform withdrawal from the
// raiser balance, preserving pledges applied while the external transfer was
// in flight.
func (r *TreasuryRepository) DeductRaiserBalance(ctx context.Context, amount int64) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE treasury SET raiser_balance = raiser_balance - $1 WHERE id = 1 AND raiser_balance >= $1`, amount)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("raiser balance lower than withdrawn amount")
	}
	return nil
}

// SetCoordinatorState mirrors the distribution service state.
func (r *TreasuryRepository) SetCoordinatorState(ctx context.Context, st domain.DistributionState) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE treasury SET coordinator_state = $1 WHERE id = 1`, string(st))
	return err
}

// SetLastScanTime stamps the last automated execution.
func (r *TreasuryRepository) SetLastScanTime(ctx context.Context, t time.Time) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE treasury SET last_scan_time = $1 WHERE id = 1`, t)
	return err
}

// ResetPool zeroes the prize pool and clears the pledger registry in one
// transaction.
func (r *TreasuryRepository) ResetPool(ctx context.Context) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer func() { err = finishTx(ctx, tx, err) }()

	_, err = tx.Exec(ctx, `UPDATE treasury SET prize_pool = 0 WHERE id = 1`)
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, `DELETE FROM pledgers`)
	return err
}

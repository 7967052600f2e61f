package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AllowlistRepository implements port.AllowlistRepository.
type AllowlistRepository struct {
	pool *pgxpool.Pool
}

// NewAllowlistRepository returns a new repository instance.
func NewAllowlistRepository(pool *pgxpool.Pool) *AllowlistRepository {
	return &AllowlistRepository{pool: pool}
}

// Add inserts a wallet; adding an already listed wallet is a no-op.
func (r *AllowlistRepository) Add(ctx context.Context, wallet string) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO allowed_wallets (wallet) VALUES ($1) ON CONFLICT DO NOTHING`, wallet)
	return err
}

// Remove deletes a wallet; removing an unlisted wallet is a no-op.
func (r *AllowlistRepository) Remove(ctx context.Context, wallet string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM allowed_wallets WHERE wallet = $1`, wallet)
	return err
}

// Contains reports whether the wallet is currently listed.
func (r *AllowlistRepository) Contains(ctx context.Context, wallet string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM allowed_wallets WHERE wallet = $1)`, wallet).Scan(&exists)
	return exists, err
}

// List returns all listed wallets.
func (r *AllowlistRepository) List(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT wallet FROM allowed_wallets ORDER BY wallet`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

package postgres

import "context"

// txFinisher is the part of pgx.Tx the transaction epilogue needs.
type txFinisher interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// finishTx completes a transaction: rollback when the operation failed,
// commit otherwise. Serializable transactions can fail at commit time, so
// the commit error must reach the caller instead of being discarded.
func finishTx(ctx context.Context, tx txFinisher, err error) error {
	if err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}

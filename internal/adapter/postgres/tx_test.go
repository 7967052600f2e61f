package postgres

import (
	"context"
	"errors"
	"testing"
)

type stubTx struct {
	commitErr  error
	committed  bool
	rolledBack bool
}

func (s *stubTx) Commit(context.Context) error   { s.committed = true; return s.commitErr }
func (s *stubTx) Rollback(context.Context) error { s.rolledBack = true; return nil }

func TestFinishTxCommitSuccess(t *testing.T) {
	tx := &stubTx{}
	if err := finishTx(context.Background(), tx, nil); err != nil {
		t.Fatalf("finishTx error: %v", err)
	}
	if !tx.committed || tx.rolledBack {
		t.Fatalf("expected commit without rollback, got committed=%v rolledBack=%v", tx.committed, tx.rolledBack)
	}
}

// TestFinishTxPropagatesCommitError ensures a commit-time failure (e.g. a
// serialization conflict under the serializable isolation level) surfaces to
// the caller instead of reporting a successful mutation.
func TestFinishTxPropagatesCommitError(t *testing.T) {
	commitErr := errors.New("SQLSTATE 40001")
	tx := &stubTx{commitErr: commitErr}
	if err := finishTx(context.Background(), tx, nil); !errors.Is(err, commitErr) {
		t.Fatalf("expected commit error to propagate, got %v", err)
	}
}

func TestFinishTxRollsBackOnError(t *testing.T) {
	opErr := errors.New("operation failed")
	tx := &stubTx{commitErr: errors.New("must not be returned")}
	if err := finishTx(context.Background(), tx, opErr); !errors.Is(err, opErr) {
		t.Fatalf("expected original error, got %v", err)
	}
	if !tx.rolledBack || tx.committed {
		t.Fatalf("expected rollback without commit, got committed=%v rolledBack=%v", tx.committed, tx.rolledBack)
	}
}

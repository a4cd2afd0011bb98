package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type txKey struct{}

// TxRunner wraps repository calls in one *sql.Tx carried through context.
// Repositories pick the transaction up via the exec/query helpers below, so
// the same method works both inside and outside a transaction.
type TxRunner struct {
	db *dbpg.DB
}

func NewTxRunner(db *dbpg.DB) *TxRunner {
	return &TxRunner{db: db}
}

func (r *TxRunner) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if txFromContext(ctx) != nil {
		return fn(ctx)
	}

	tx, err := r.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	txCtx := context.WithValue(ctx, txKey{}, tx)
	if err := fn(txCtx); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

func txFromContext(ctx context.Context) *sql.Tx {
	tx, _ := ctx.Value(txKey{}).(*sql.Tx)
	return tx
}

func execQuery(ctx context.Context, db *dbpg.DB, strategy retry.Strategy, query string, args ...any) (sql.Result, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return db.ExecWithRetry(ctx, strategy, query, args...)
}

func queryRow(ctx context.Context, db *dbpg.DB, strategy retry.Strategy, query string, args ...any) (*sql.Row, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.QueryRowContext(ctx, query, args...), nil
	}
	return db.QueryRowWithRetry(ctx, strategy, query, args...)
}

func queryRows(ctx context.Context, db *dbpg.DB, strategy retry.Strategy, query string, args ...any) (*sql.Rows, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.QueryContext(ctx, query, args...)
	}
	return db.QueryWithRetry(ctx, strategy, query, args...)
}

func defaultStrategy() retry.Strategy {
	return retry.Strategy{
		Attempts: 3,
		Delay:    500 * time.Millisecond,
		Backoff:  2,
	}
}

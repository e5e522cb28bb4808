// Package store wraps db.Querier with transaction support and owns the
// conversion between published reference datasets and their table rows.
//
// Dependency rule: store imports db and reference only. It never imports api,
// rpc, engine or scoring.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/humanparadigm/nice-engine/internal/db"
)

// Store holds a *sql.DB for starting transactions and a db.Querier for
// executing queries outside of transactions.
type Store struct {
	// pool is the raw connection pool, used only to begin transactions.
	// It may be nil for read-only stores built over a stub Querier.
	pool *sql.DB

	q db.Querier
}

// New creates a Store from a live connection pool. The pool must already be
// open and verified (e.g. via PingContext) before calling New.
func New(pool *sql.DB, q db.Querier) *Store {
	return &Store{pool: pool, q: q}
}

// Q exposes the underlying Querier for single-query reads.
func (s *Store) Q() db.Querier {
	return s.q
}

// txQuerier is a function that receives a transactional Querier and returns an
// error. Returning a non-nil error causes withTx to roll back automatically.
type txQuerier func(ctx context.Context, q db.Querier) error

// withTx begins a transaction, passes a Querier scoped to that transaction to
// fn, and commits on success or rolls back on any error (including panics).
//
// Serializable isolation is used because publishing is a read-then-write
// (check the version is free, then insert it and its rows).
func (s *Store) withTx(ctx context.Context, fn txQuerier) error {
	if s.pool == nil {
		return fmt.Errorf("store: no connection pool for transaction")
	}

	tx, err := s.pool.BeginTx(ctx, &sql.TxOptions{
		Isolation: sql.LevelSerializable,
	})
	if err != nil {
		return fmt.Errorf("store: begin transaction: %w", err)
	}

	// Roll back on panic so the connection is never left in a broken state.
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	txQ, ok := s.q.(*db.Queries)
	if !ok {
		_ = tx.Rollback()
		return fmt.Errorf("store: querier %T cannot join a transaction", s.q)
	}

	if err := fn(ctx, txQ.WithTx(tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("store: fn error: %w; rollback error: %v", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("store: commit transaction: %w", err)
	}
	return nil
}

package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq" // postgres driver
)

// Open opens a Postgres connection pool of at most maxConns connections and
// verifies it is reachable within the context deadline.
func Open(ctx context.Context, dsn string, maxConns int) (*sql.DB, error) {
	if maxConns < 1 {
		return nil, fmt.Errorf("db: max connections must be at least 1, got %d", maxConns)
	}
	pool, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("db: open: %w", err)
	}

	pool.SetMaxOpenConns(maxConns)
	pool.SetMaxIdleConns(min(2, maxConns))
	pool.SetConnMaxLifetime(5 * time.Minute)
	pool.SetConnMaxIdleTime(2 * time.Minute)

	if err := pool.PingContext(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("db: ping: %w", err)
	}
	return pool, nil
}

package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// ErrNotInitialized is returned when the pool was never connected or is closed.
var ErrNotInitialized = errors.New("database pool is not initialized")

// Ping verifies the database is reachable within 5 seconds.
func (db *PostgresDB) Ping(ctx context.Context) error {
	if db == nil || db.Pool == nil {
		return ErrNotInitialized
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.Pool.Ping(pingCtx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// Close shuts the pool down. Safe to call more than once.
func (db *PostgresDB) Close() {
	if db.Pool == nil {
		return
	}

	log.Info().Msg("[DATABASE] Closing connection pool")
	db.Pool.Close()
	db.Pool = nil
}

// PoolStats is a JSON-friendly snapshot of pgxpool statistics.
type PoolStats struct {
	TotalConns    int32 `json:"total_conns"`
	IdleConns     int32 `json:"idle_conns"`
	AcquiredConns int32 `json:"acquired_conns"`
	MaxConns      int32 `json:"max_conns"`
	AcquireCount  int64 `json:"acquire_count"`
	NewConnsCount int64 `json:"new_conns_count"`
}

// Stats returns the current pool statistics.
func (db *PostgresDB) Stats() (*PoolStats, error) {
	if db == nil || db.Pool == nil {
		return nil, ErrNotInitialized
	}

	raw := db.Pool.Stat()
	return &PoolStats{
		TotalConns:    raw.TotalConns(),
		IdleConns:     raw.IdleConns(),
		AcquiredConns: raw.AcquiredConns(),
		MaxConns:      raw.MaxConns(),
		AcquireCount:  raw.AcquireCount(),
		NewConnsCount: raw.NewConnsCount(),
	}, nil
}

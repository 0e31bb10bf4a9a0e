package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/claude/weekplan/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore keeps planner state in PostgreSQL, for deployments where
// the planner runs on a host that already has a database around.
type PostgresStore struct {
	Pool *pgxpool.Pool
}

// OpenPostgres creates a connection pool and verifies connectivity.
func OpenPostgres(ctx context.Context, dsn string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("creating pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return &PostgresStore{Pool: pool}, nil
}

// LoadSessions reads and decodes the stored session list.
func (s *PostgresStore) LoadSessions(ctx context.Context) ([]models.WorkoutSession, error) {
	var value []byte
	err := s.Pool.QueryRow(ctx,
		`SELECT value FROM planner_state WHERE key = $1`, StateKey,
	).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying planner state: %w", err)
	}
	return decodeSessions(value)
}

// SaveSessions serializes and upserts the full session list.
func (s *PostgresStore) SaveSessions(ctx context.Context, sessions []models.WorkoutSession) error {
	value, err := encodeSessions(sessions)
	if err != nil {
		return err
	}
	_, err = s.Pool.Exec(ctx,
		`INSERT INTO planner_state (key, value, updated_at) VALUES ($1, $2, now())
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		StateKey, value)
	if err != nil {
		return fmt.Errorf("saving planner state: %w", err)
	}
	return nil
}

// Close closes the connection pool.
func (s *PostgresStore) Close() error {
	s.Pool.Close()
	return nil
}

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/claude/weekplan/internal/models"
	_ "modernc.org/sqlite"
)

// SQLiteStore keeps planner state in a local SQLite file. This is the
// default backend: no external services, one file on disk.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the planner database at path, creating
// parent directories as needed.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating state dir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening planner db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging planner db: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// LoadSessions reads and decodes the stored session list.
func (s *SQLiteStore) LoadSessions(ctx context.Context) ([]models.WorkoutSession, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM planner_state WHERE key = ?`, StateKey,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying planner state: %w", err)
	}
	return decodeSessions(value)
}

// SaveSessions serializes and upserts the full session list.
func (s *SQLiteStore) SaveSessions(ctx context.Context, sessions []models.WorkoutSession) error {
	value, err := encodeSessions(sessions)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO planner_state (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		StateKey, value)
	if err != nil {
		return fmt.Errorf("saving planner state: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Package storage persists the planner's session list. The whole list
// is serialized as one JSON array and written under a fixed key after
// every mutation; the planner reads it back once at startup.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/claude/weekplan/internal/models"
)

// StateKey is the fixed key the session list is stored under.
const StateKey = "weekplan:sessions"

// ErrNotFound is returned when no value has been stored yet. Callers
// treat it as an empty planner, not a failure.
var ErrNotFound = errors.New("storage: key not found")

// Store abstracts session persistence. Both SQLiteStore (local, the
// default) and PostgresStore (shared deployments) satisfy it.
type Store interface {
	LoadSessions(ctx context.Context) ([]models.WorkoutSession, error)
	SaveSessions(ctx context.Context, sessions []models.WorkoutSession) error
	Close() error
}

func encodeSessions(sessions []models.WorkoutSession) ([]byte, error) {
	if sessions == nil {
		sessions = []models.WorkoutSession{}
	}
	data, err := json.Marshal(sessions)
	if err != nil {
		return nil, fmt.Errorf("encoding sessions: %w", err)
	}
	return data, nil
}

func decodeSessions(data []byte) ([]models.WorkoutSession, error) {
	var sessions []models.WorkoutSession
	if err := json.Unmarshal(data, &sessions); err != nil {
		return nil, fmt.Errorf("decoding sessions: %w", err)
	}
	return sessions, nil
}

package mcp

import (
	"context"

	"github.com/claude/weekplan/internal/models"
	"github.com/claude/weekplan/internal/planner"
)

// PlanSource abstracts the session store for MCP tools, so tests can
// swap in a canned implementation.
type PlanSource interface {
	Sessions() []models.WorkoutSession
	Commit(ctx context.Context, draft models.SessionDraft) (models.WorkoutSession, error)
	Remove(ctx context.Context, id string)
	Duplicate(ctx context.Context, id string) (models.WorkoutSession, bool)
	Clear(ctx context.Context)
}

// Compile-time check: *planner.Store satisfies PlanSource.
var _ PlanSource = (*planner.Store)(nil)

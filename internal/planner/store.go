package planner

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/claude/weekplan/internal/models"
	"github.com/claude/weekplan/internal/storage"
)

// ErrDraftIncomplete is returned by Commit when the draft's title or
// focus is empty after trimming.
var ErrDraftIncomplete = errors.New("planner: draft needs a title and a focus")

// Store owns the ordered list of committed sessions. It is the single
// source of truth while the process runs; the storage collaborator is
// written after every mutation and only read back at startup. A write
// failure is logged and never rolls back the in-memory list.
//
// The list is always kept sorted by (weekday index, start time) after
// every mutation.
type Store struct {
	mu       sync.Mutex
	sessions []models.WorkoutSession
	persist  storage.Store
	newID    IDGenerator
	log      *slog.Logger
}

// NewStore creates an empty Store. Call Load to pull persisted sessions.
func NewStore(persist storage.Store, newID IDGenerator, log *slog.Logger) *Store {
	if newID == nil {
		newID = NewID
	}
	return &Store{persist: persist, newID: newID, log: log}
}

// Load initializes the store from persisted state. An absent key or
// unreadable value degrades to an empty store with a warning; Load never
// fails the startup.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessions, err := s.persist.LoadSessions(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		return
	}
	if err != nil {
		s.log.Warn("failed to load sessions, starting empty", "error", err)
		return
	}
	s.sessions = sessions
	s.sortLocked()
}

// Commit validates the draft, creates a session with a fresh id, and
// inserts it in sorted position. Title and focus are trimmed; if either
// is empty the store is left untouched and ErrDraftIncomplete returned.
func (s *Store) Commit(ctx context.Context, draft models.SessionDraft) (models.WorkoutSession, error) {
	title := strings.TrimSpace(draft.Title)
	focus := strings.TrimSpace(draft.Focus)
	if title == "" || focus == "" {
		return models.WorkoutSession{}, ErrDraftIncomplete
	}

	sess := models.WorkoutSession{
		ID:        s.newID(),
		Title:     title,
		Focus:     focus,
		Day:       draft.Day,
		Start:     draft.Start,
		Duration:  draft.Duration,
		Intensity: draft.Intensity,
		Notes:     strings.TrimSpace(draft.Notes),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = append(s.sessions, sess)
	s.sortLocked()
	s.persistLocked(ctx)
	return sess, nil
}

// Remove deletes the session with the given id. An absent id is a no-op.
func (s *Store) Remove(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, sess := range s.sessions {
		if sess.ID == id {
			s.sessions = append(s.sessions[:i], s.sessions[i+1:]...)
			s.persistLocked(ctx)
			return
		}
	}
}

// Duplicate copies the session with the given id, assigning a fresh id
// and the next free slot on the same day (computed against the list
// before insertion). Returns false if the id is absent.
func (s *Store) Duplicate(ctx context.Context, id string) (models.WorkoutSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sess := range s.sessions {
		if sess.ID != id {
			continue
		}
		clone := sess
		clone.ID = s.newID()
		clone.Start = SuggestNextSlot(s.sessions, sess.Day)
		s.sessions = append(s.sessions, clone)
		s.sortLocked()
		s.persistLocked(ctx)
		return clone, true
	}
	return models.WorkoutSession{}, false
}

// Clear empties the store. There is no undo.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = nil
	s.persistLocked(ctx)
}

// Replace swaps the full session list, used by the import endpoint. The
// list is re-sorted and persisted.
func (s *Store) Replace(ctx context.Context, sessions []models.WorkoutSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = append([]models.WorkoutSession(nil), sessions...)
	s.sortLocked()
	s.persistLocked(ctx)
}

// Sessions returns a copy of the session list in stored order.
func (s *Store) Sessions() []models.WorkoutSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.WorkoutSession(nil), s.sessions...)
}

// sortLocked re-sorts by weekday index, then start time. Start times all
// share the zero-padded HH:MM format, so string comparison orders them
// chronologically. The sort is stable: same-slot sessions keep their
// insertion order.
func (s *Store) sortLocked() {
	sort.SliceStable(s.sessions, func(i, j int) bool {
		a, b := s.sessions[i], s.sessions[j]
		if d := models.DayIndex(a.Day) - models.DayIndex(b.Day); d != 0 {
			return d < 0
		}
		return a.Start < b.Start
	})
}

// persistLocked mirrors the in-memory list to storage. Failures are
// logged; the in-memory mutation stands regardless.
func (s *Store) persistLocked(ctx context.Context) {
	if err := s.persist.SaveSessions(ctx, s.sessions); err != nil {
		s.log.Error("failed to persist sessions", "error", err)
	}
}

package planner

import (
	"sync"

	"github.com/claude/weekplan/internal/models"
)

// DraftUpdate is a partial patch of draft fields. Nil fields are left
// untouched. Updating any field other than Notes clears the selected
// template marker, since the draft has diverged from the template.
type DraftUpdate struct {
	Title     *string           `json:"title,omitempty"`
	Focus     *string           `json:"focus,omitempty"`
	Day       *string           `json:"day,omitempty"`
	Start     *string           `json:"start,omitempty"`
	Duration  *int              `json:"duration,omitempty"`
	Intensity *models.Intensity `json:"intensity,omitempty"`
	Notes     *string           `json:"notes,omitempty"`
}

// Editor holds the single in-progress session draft and the id of the
// template it was populated from, if any. Field updates are not
// validated here; validation happens at commit time.
type Editor struct {
	mu       sync.Mutex
	draft    models.SessionDraft
	template string
}

// NewEditor returns an editor holding the default draft.
func NewEditor() *Editor {
	return &Editor{draft: models.DefaultDraft()}
}

// Update applies a partial field patch to the draft.
func (e *Editor) Update(u DraftUpdate) {
	e.mu.Lock()
	defer e.mu.Unlock()

	diverged := false
	if u.Title != nil {
		e.draft.Title = *u.Title
		diverged = true
	}
	if u.Focus != nil {
		e.draft.Focus = *u.Focus
		diverged = true
	}
	if u.Day != nil {
		e.draft.Day = *u.Day
		diverged = true
	}
	if u.Start != nil {
		e.draft.Start = *u.Start
		diverged = true
	}
	if u.Duration != nil {
		e.draft.Duration = *u.Duration
		diverged = true
	}
	if u.Intensity != nil {
		e.draft.Intensity = *u.Intensity
		diverged = true
	}
	if u.Notes != nil {
		e.draft.Notes = *u.Notes
	}
	if diverged {
		e.template = ""
	}
}

// ApplyTemplate copies the template's default field values into the
// draft, leaving day and start untouched, and records the selection.
func (e *Editor) ApplyTemplate(tpl models.Template) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.draft.Title = tpl.Title
	e.draft.Focus = tpl.Focus
	e.draft.Duration = tpl.Duration
	e.draft.Intensity = tpl.Intensity
	e.draft.Notes = tpl.Notes
	e.template = tpl.ID
}

// SetDay is the dedicated day-selection path: it sets the day and moves
// the start time to the next free slot for that day, so the draft
// defaults to a non-conflicting placement.
func (e *Editor) SetDay(day string, sessions []models.WorkoutSession) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.draft.Day = day
	e.draft.Start = SuggestNextSlot(sessions, day)
	e.template = ""
}

// Reset restores the default draft and clears the template marker.
func (e *Editor) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft = models.DefaultDraft()
	e.template = ""
}

// ResetAfterCommit restores defaults but keeps the day and recomputes
// the start against the post-commit session list, so the next entry
// lands on a free slot.
func (e *Editor) ResetAfterCommit(sessions []models.WorkoutSession) {
	e.mu.Lock()
	defer e.mu.Unlock()

	day := e.draft.Day
	e.draft = models.DefaultDraft()
	e.draft.Day = day
	e.draft.Start = SuggestNextSlot(sessions, day)
	e.template = ""
}

// Draft returns the current draft.
func (e *Editor) Draft() models.SessionDraft {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.draft
}

// SelectedTemplate returns the id of the template the draft was
// populated from, or "" once the draft has diverged.
func (e *Editor) SelectedTemplate() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.template
}

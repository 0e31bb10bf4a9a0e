package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/claude/weekplan/internal/models"
	"github.com/claude/weekplan/internal/planner"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleTemplates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.Templates())
}

func (s *Server) handleSlots(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.TimeSlots)
}

// sessionView is a session plus its computed end time, for grid
// rendering. The end time is derived, never stored.
type sessionView struct {
	models.WorkoutSession
	End string `json:"end"`
}

func sessionViews(sessions []models.WorkoutSession) []sessionView {
	out := make([]sessionView, len(sessions))
	for i, sess := range sessions {
		out[i] = sessionView{
			WorkoutSession: sess,
			End:            planner.ComputeEndTime(sess.Start, sess.Duration),
		}
	}
	return out
}

// handleOptions returns the fixed vocabularies a session form is built
// from: days, time slots, duration choices, and intensity levels with
// their display copy.
func (s *Server) handleOptions(w http.ResponseWriter, r *http.Request) {
	intensities := make([]map[string]string, 0, len(models.Intensities))
	for _, level := range models.Intensities {
		intensities = append(intensities, map[string]string{
			"level": string(level),
			"copy":  level.Copy(),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"days":        models.Days,
		"slots":       models.TimeSlots,
		"durations":   models.Durations,
		"intensities": intensities,
	})
}

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, sessionViews(s.store.Sessions()))
}

// handleSummary returns the derived weekly views: per-day volume, the
// intensity mix, and total programmed minutes.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	sessions := s.store.Sessions()
	writeJSON(w, http.StatusOK, map[string]any{
		"days":          planner.SummaryByDay(sessions),
		"intensity":     planner.IntensityBreakdown(sessions),
		"total_minutes": planner.TotalMinutes(sessions),
	})
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	day := r.URL.Query().Get("day")
	if !models.ValidDay(day) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "day parameter must be a weekday name"})
		return
	}
	slot := planner.SuggestNextSlot(s.store.Sessions(), day)
	writeJSON(w, http.StatusOK, map[string]string{"day": day, "start": slot})
}

// handleCommit turns the current draft into a committed session. On
// success the draft resets, keeping its day and suggesting the next
// free slot for the follow-up entry.
func (s *Server) handleCommit(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.Commit(r.Context(), s.editor.Draft())
	if errors.Is(err, planner.ErrDraftIncomplete) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	s.editor.ResetAfterCommit(s.store.Sessions())
	writeJSON(w, http.StatusCreated, sess)
}

func (s *Server) handleRemove(w http.ResponseWriter, r *http.Request) {
	s.store.Remove(r.Context(), chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDuplicate(w http.ResponseWriter, r *http.Request) {
	clone, ok := s.store.Duplicate(r.Context(), chi.URLParam(r, "id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "session not found"})
		return
	}
	writeJSON(w, http.StatusCreated, clone)
}

func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	s.store.Clear(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGetDraft(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"draft":    s.editor.Draft(),
		"template": s.editor.SelectedTemplate(),
	})
}

func (s *Server) handleUpdateDraft(w http.ResponseWriter, r *http.Request) {
	var update planner.DraftUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	s.editor.Update(update)
	writeJSON(w, http.StatusOK, s.editor.Draft())
}

func (s *Server) handleApplyTemplate(w http.ResponseWriter, r *http.Request) {
	tpl, ok := models.TemplateByID(chi.URLParam(r, "id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "template not found"})
		return
	}
	s.editor.ApplyTemplate(tpl)
	writeJSON(w, http.StatusOK, s.editor.Draft())
}

// handleSetDay is the dedicated day-selection path: it moves the draft
// to the chosen day and suggests a non-conflicting start time.
func (s *Server) handleSetDay(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Day string `json:"day"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if !models.ValidDay(body.Day) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "day must be a weekday name"})
		return
	}
	s.editor.SetDay(body.Day, s.store.Sessions())
	writeJSON(w, http.StatusOK, s.editor.Draft())
}

func (s *Server) handleResetDraft(w http.ResponseWriter, r *http.Request) {
	s.editor.Reset()
	writeJSON(w, http.StatusOK, s.editor.Draft())
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Sessions())
}

// handleImport replaces the whole schedule with the posted session
// array. Meant for restoring an export; there is no merging.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	var sessions []models.WorkoutSession
	if err := json.NewDecoder(r.Body).Decode(&sessions); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	s.store.Replace(r.Context(), sessions)
	writeJSON(w, http.StatusOK, map[string]int{"imported": len(sessions)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

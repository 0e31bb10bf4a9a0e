// Package planner holds the core scheduling logic: the session store,
// the draft editor, and the pure aggregation functions the weekly views
// are derived from.
package planner

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/claude/weekplan/internal/models"
)

// DaySummary is the per-day line of the weekly volume overview.
type DaySummary struct {
	Day          string `json:"day"`
	TotalMinutes int    `json:"total_minutes"`
	Count        int    `json:"count"`
}

// SummaryByDay aggregates total programmed minutes and session count per
// weekday. Always returns exactly seven entries in weekday order; days
// without sessions report zeros.
func SummaryByDay(sessions []models.WorkoutSession) []DaySummary {
	out := make([]DaySummary, 0, len(models.Days))
	for _, day := range models.Days {
		s := DaySummary{Day: day}
		for _, sess := range sessions {
			if sess.Day == day {
				s.TotalMinutes += sess.Duration
				s.Count++
			}
		}
		out = append(out, s)
	}
	return out
}

// IntensityBreakdown counts sessions per intensity level. All three
// levels are always present in the result, defaulting to zero.
func IntensityBreakdown(sessions []models.WorkoutSession) map[models.Intensity]int {
	counts := map[models.Intensity]int{
		models.IntensityLight:    0,
		models.IntensityModerate: 0,
		models.IntensityIntense:  0,
	}
	for _, sess := range sessions {
		counts[sess.Intensity]++
	}
	return counts
}

// TotalMinutes sums the durations of all sessions.
func TotalMinutes(sessions []models.WorkoutSession) int {
	total := 0
	for _, sess := range sessions {
		total += sess.Duration
	}
	return total
}

// ComputeEndTime adds duration minutes to a zero-padded HH:MM start time.
// The result is plain total-minutes arithmetic: hours past 22 or past
// midnight are produced as-is, never clamped or wrapped.
func ComputeEndTime(start string, duration int) string {
	hour, minute := splitClock(start)
	total := hour*60 + minute + duration
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

func splitClock(s string) (hour, minute int) {
	parts := strings.SplitN(s, ":", 2)
	hour, _ = strconv.Atoi(parts[0])
	if len(parts) > 1 {
		minute, _ = strconv.Atoi(parts[1])
	}
	return hour, minute
}

// SuggestNextSlot returns the first grid slot not already used as a
// start time on the given day. When every slot is taken it falls back
// to the first slot; overlaps are allowed.
func SuggestNextSlot(sessions []models.WorkoutSession, day string) string {
	taken := make(map[string]bool)
	for _, sess := range sessions {
		if sess.Day == day {
			taken[sess.Start] = true
		}
	}
	for _, slot := range models.TimeSlots {
		if !taken[slot] {
			return slot
		}
	}
	return models.TimeSlots[0]
}

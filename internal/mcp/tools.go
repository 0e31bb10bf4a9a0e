package mcp

import (
	"context"

	"github.com/claude/weekplan/internal/models"
	"github.com/claude/weekplan/internal/planner"
	"github.com/mark3labs/mcp-go/mcp"
)

// --- Tool definitions ---

var toolGetSessions = mcp.NewTool("get_sessions",
	mcp.WithDescription("List committed workout sessions in schedule order (weekday, then start time). Optionally filter to one day."),
	mcp.WithString("day", mcp.Description("Filter by weekday name (e.g. 'Monday')"), mcp.Enum(models.Days...)),
)

var toolGetWeeklySummary = mcp.NewTool("get_weekly_summary",
	mcp.WithDescription("Per-day totals for the week: programmed minutes and session count for each of the seven days, plus overall total minutes."),
)

var toolGetIntensityBreakdown = mcp.NewTool("get_intensity_breakdown",
	mcp.WithDescription("Count of sessions per intensity level (Light / Moderate / Intense). All three levels are always present."),
)

var toolSuggestSlot = mcp.NewTool("suggest_slot",
	mcp.WithDescription("Suggest the first free half-hour start slot (05:00-22:00) on a day. Falls back to 05:00 when the day is fully booked."),
	mcp.WithString("day", mcp.Required(), mcp.Description("Weekday name (e.g. 'Monday')"), mcp.Enum(models.Days...)),
)

var toolListTemplates = mcp.NewTool("list_templates",
	mcp.WithDescription("List the five predefined session templates with their default title, focus, duration, intensity, notes, and benefits."),
)

var toolAddSession = mcp.NewTool("add_session",
	mcp.WithDescription("Place a workout session on the weekly grid. Title and focus must be non-empty; overlapping sessions are allowed."),
	mcp.WithString("title", mcp.Required(), mcp.Description("Session headline (e.g. 'Heavy Upper')")),
	mcp.WithString("focus", mcp.Required(), mcp.Description("Primary focus (e.g. 'Strength')")),
	mcp.WithString("day", mcp.Required(), mcp.Description("Weekday name"), mcp.Enum(models.Days...)),
	mcp.WithString("start", mcp.Description("Start time HH:MM on the half-hour grid. Defaults to the first free slot on the day.")),
	mcp.WithNumber("duration", mcp.Description("Duration in minutes. Defaults to 60.")),
	mcp.WithString("intensity", mcp.Description("Intensity level. Defaults to Moderate."), mcp.Enum("Light", "Moderate", "Intense")),
	mcp.WithString("notes", mcp.Description("Coaching notes")),
)

var toolRemoveSession = mcp.NewTool("remove_session",
	mcp.WithDescription("Remove a session by id. Removing an unknown id is a no-op."),
	mcp.WithString("id", mcp.Required(), mcp.Description("Session id")),
)

var toolDuplicateSession = mcp.NewTool("duplicate_session",
	mcp.WithDescription("Duplicate a session onto the next free slot of the same day. All fields except id and start are copied."),
	mcp.WithString("id", mcp.Required(), mcp.Description("Session id")),
)

var toolClearWeek = mcp.NewTool("clear_week",
	mcp.WithDescription("Remove every session from the week. Irreversible."),
)

// --- Tool handlers ---

func (h *handlers) getSessions(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessions := h.store.Sessions()
	if day := req.GetString("day", ""); day != "" {
		filtered := make([]models.WorkoutSession, 0, len(sessions))
		for _, s := range sessions {
			if s.Day == day {
				filtered = append(filtered, s)
			}
		}
		sessions = filtered
	}

	result, err := mcp.NewToolResultJSON(sessions)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getWeeklySummary(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessions := h.store.Sessions()
	result, err := mcp.NewToolResultJSON(map[string]any{
		"days":          planner.SummaryByDay(sessions),
		"total_minutes": planner.TotalMinutes(sessions),
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getIntensityBreakdown(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(planner.IntensityBreakdown(h.store.Sessions()))
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) suggestSlot(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	day, err := req.RequireString("day")
	if err != nil {
		return mcp.NewToolResultError("day parameter is required"), nil
	}
	if !models.ValidDay(day) {
		return mcp.NewToolResultError("unknown day: " + day), nil
	}

	slot := planner.SuggestNextSlot(h.store.Sessions(), day)
	result, err := mcp.NewToolResultJSON(map[string]string{"day": day, "start": slot})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listTemplates(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(models.Templates())
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) addSession(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := req.RequireString("title")
	if err != nil {
		return mcp.NewToolResultError("title parameter is required"), nil
	}
	focus, err := req.RequireString("focus")
	if err != nil {
		return mcp.NewToolResultError("focus parameter is required"), nil
	}
	day, err := req.RequireString("day")
	if err != nil {
		return mcp.NewToolResultError("day parameter is required"), nil
	}
	if !models.ValidDay(day) {
		return mcp.NewToolResultError("unknown day: " + day), nil
	}

	start := req.GetString("start", "")
	if start == "" {
		start = planner.SuggestNextSlot(h.store.Sessions(), day)
	} else if !models.ValidSlot(start) {
		return mcp.NewToolResultError("start must be a half-hour slot between 05:00 and 22:00"), nil
	}
	intensity := models.Intensity(req.GetString("intensity", string(models.IntensityModerate)))
	if !intensity.Valid() {
		return mcp.NewToolResultError("intensity must be Light, Moderate, or Intense"), nil
	}

	draft := models.SessionDraft{
		Title:     title,
		Focus:     focus,
		Day:       day,
		Start:     start,
		Duration:  req.GetInt("duration", 60),
		Intensity: intensity,
		Notes:     req.GetString("notes", ""),
	}

	sess, err := h.store.Commit(ctx, draft)
	if err != nil {
		h.log.Error("mcp add_session", "error", err)
		return mcp.NewToolResultError("commit failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(sess)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) removeSession(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("id parameter is required"), nil
	}
	h.store.Remove(ctx, id)
	return mcp.NewToolResultText("removed (no-op if the id was unknown)"), nil
}

func (h *handlers) duplicateSession(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("id parameter is required"), nil
	}

	clone, ok := h.store.Duplicate(ctx, id)
	if !ok {
		return mcp.NewToolResultError("session not found: " + id), nil
	}

	result, err := mcp.NewToolResultJSON(clone)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) clearWeek(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	h.store.Clear(ctx)
	return mcp.NewToolResultText("week cleared"), nil
}

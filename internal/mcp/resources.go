package mcp

import (
	"context"
	"encoding/json"

	"github.com/claude/weekplan/internal/models"
	"github.com/claude/weekplan/internal/planner"
	"github.com/mark3labs/mcp-go/mcp"
)

func (h *handlers) weeklySummary(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	sessions := h.store.Sessions()

	summary := map[string]any{
		"days":          planner.SummaryByDay(sessions),
		"intensity":     planner.IntensityBreakdown(sessions),
		"total_minutes": planner.TotalMinutes(sessions),
		"session_count": len(sessions),
	}

	data, err := json.Marshal(summary)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func (h *handlers) templateCatalog(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(models.Templates())
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

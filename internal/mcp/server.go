package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all planner tools and resources
// registered.
func New(store PlanSource, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("Weekplan", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("Weekplan workout planner. Query the weekly training schedule, aggregate stats, and session templates, or place, duplicate, and remove sessions on the seven-day grid."),
	)

	h := &handlers{store: store, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolGetSessions, Handler: h.getSessions},
		server.ServerTool{Tool: toolGetWeeklySummary, Handler: h.getWeeklySummary},
		server.ServerTool{Tool: toolGetIntensityBreakdown, Handler: h.getIntensityBreakdown},
		server.ServerTool{Tool: toolSuggestSlot, Handler: h.suggestSlot},
		server.ServerTool{Tool: toolListTemplates, Handler: h.listTemplates},
		server.ServerTool{Tool: toolAddSession, Handler: h.addSession},
		server.ServerTool{Tool: toolRemoveSession, Handler: h.removeSession},
		server.ServerTool{Tool: toolDuplicateSession, Handler: h.duplicateSession},
		server.ServerTool{Tool: toolClearWeek, Handler: h.clearWeek},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resWeeklySummary, Handler: h.weeklySummary},
		server.ServerResource{Resource: resTemplateCatalog, Handler: h.templateCatalog},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	store PlanSource
	log   *slog.Logger
}

// --- Resource definitions ---

var resWeeklySummary = mcp.NewResource(
	"weekplan://weekly_summary",
	"Weekly Summary",
	mcp.WithResourceDescription("Per-day programmed minutes and session counts, intensity mix, and total weekly volume"),
	mcp.WithMIMEType("application/json"),
)

var resTemplateCatalog = mcp.NewResource(
	"weekplan://template_catalog",
	"Template Catalog",
	mcp.WithResourceDescription("The five predefined session templates with default fields and benefit notes"),
	mcp.WithMIMEType("application/json"),
)

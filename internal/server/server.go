package server

import (
	"log/slog"
	"net/http"

	"github.com/claude/weekplan/internal/planner"
	"github.com/go-chi/chi/v5"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	store  *planner.Store
	editor *planner.Editor
	log    *slog.Logger
	apiKey string
	router chi.Router
}

// New creates a new Server with all routes configured. An empty apiKey
// leaves the mutating routes unauthenticated.
func New(store *planner.Store, editor *planner.Editor, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		store:  store,
		editor: editor,
		log:    log,
		apiKey: apiKey,
		router: chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	// Read-only endpoints
	s.router.Get("/api/v1/templates", s.handleTemplates)
	s.router.Get("/api/v1/slots", s.handleSlots)
	s.router.Get("/api/v1/options", s.handleOptions)
	s.router.Get("/api/v1/sessions", s.handleListSessions)
	s.router.Get("/api/v1/summary", s.handleSummary)
	s.router.Get("/api/v1/suggest", s.handleSuggest)
	s.router.Get("/api/v1/draft", s.handleGetDraft)
	s.router.Get("/api/v1/export", s.handleExport)

	// Mutating endpoints (API key required when configured)
	s.router.Group(func(r chi.Router) {
		if s.apiKey != "" {
			r.Use(APIKeyAuth(s.apiKey))
		}
		r.Post("/api/v1/sessions", s.handleCommit)
		r.Delete("/api/v1/sessions", s.handleClear)
		r.Delete("/api/v1/sessions/{id}", s.handleRemove)
		r.Post("/api/v1/sessions/{id}/duplicate", s.handleDuplicate)
		r.Patch("/api/v1/draft", s.handleUpdateDraft)
		r.Post("/api/v1/draft/template/{id}", s.handleApplyTemplate)
		r.Post("/api/v1/draft/day", s.handleSetDay)
		r.Post("/api/v1/draft/reset", s.handleResetDraft)
		r.Post("/api/v1/import", s.handleImport)
	})
}

package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/claude/weekplan/internal/config"
	weekplanmcp "github.com/claude/weekplan/internal/mcp"
	"github.com/claude/weekplan/internal/planner"
	"github.com/claude/weekplan/internal/storage"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// Logs go to stderr: stdout is the MCP transport.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	dsn := cfg.Storage.Path
	if cfg.Storage.Backend == "postgres" {
		dsn = cfg.Storage.DSN()
	}
	if err := storage.RunMigrations(cfg.Storage.Backend, dsn); err != nil {
		log.Error("migration failed", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	persist, err := openStore(ctx, cfg)
	if err != nil {
		log.Error("failed to open storage", "error", err)
		os.Exit(1)
	}
	defer persist.Close()

	store := planner.NewStore(persist, planner.NewID, log)
	store.Load(ctx)

	srv := weekplanmcp.New(store, Version, log)

	log.Info("Weekplan MCP server starting on stdio", "version", Version)
	if err := server.ServeStdio(srv); err != nil {
		log.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}

func openStore(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	if cfg.Storage.Backend == "postgres" {
		return storage.OpenPostgres(ctx, cfg.Storage.DSN())
	}
	return storage.OpenSQLite(cfg.Storage.Path)
}

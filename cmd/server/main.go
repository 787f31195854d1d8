// Package main implements the entry point for the Around API server,
// which backs the photo-sharing application with user accounts and
// likeable photo cards.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/aroundtheus/around-api/internal/config"
	"github.com/aroundtheus/around-api/internal/platform/logger"
)

func main() {
	migrateCmd := flag.String("migrate", "", "run a migration command (up, down, status) and exit")
	migrationsDir := flag.String("migrations-dir", "migrations", "directory containing goose migration files")
	flag.Parse()

	if err := run(*migrateCmd, *migrationsDir); err != nil {
		slog.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

// run loads configuration, wires dependencies, and either executes a
// migration command or starts the HTTP server.
func run(migrateCmd, migrationsDir string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.Setup(cfg.Server.LogLevel)
	log.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"env", cfg.Server.Env)

	db, err := setupDatabase(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to set up database: %w", err)
	}

	if migrateCmd != "" {
		defer func() { _ = db.Close() }()
		return runMigrations(db, migrateCmd, migrationsDir, log)
	}

	app, err := newApplication(cfg, log, db)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(context.Background())
}

package main

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Wintermark/overworld/internal/api"
	"github.com/Wintermark/overworld/internal/catalog"
	"github.com/Wintermark/overworld/internal/config"
	"github.com/Wintermark/overworld/internal/db"
	"github.com/Wintermark/overworld/internal/player"
	"github.com/Wintermark/overworld/internal/viewport"
	"github.com/Wintermark/overworld/internal/world"
	"github.com/charmbracelet/log"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/mattn/go-sqlite3"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Setup logging
	setupLogging(cfg.Logging)
	log.Debug("Configuration loaded", "server_port", cfg.Server.Port, "db_path", cfg.Database.Path, "log_level", cfg.Logging.Level)

	// Initialize database
	log.Debug("Initializing database connection", "path", cfg.Database.Path)
	sqlDB, err := initializeDatabase(cfg.Database)
	if err != nil {
		log.Fatal("Failed to initialize database", "error", err)
	}
	defer sqlDB.Close()

	// Run migrations
	if err := runMigrations(sqlDB, cfg.Database.MigrationsPath); err != nil {
		log.Fatal("Failed to run database migrations", "error", err)
	}

	// Load the catalog
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	queries := db.NewLoggingQueries(sqlDB)
	cat, err := catalog.Load(ctx, queries)
	cancel()
	if err != nil {
		log.Fatal("Failed to load catalog", "error", err)
	}
	log.Info("Catalog loaded", "biomes", len(cat.BiomeIDs()), "enemies", len(cat.Enemies()), "characters", len(cat.Characters()))

	// Build the world
	seed := cfg.World.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Debug("Building world", "seed", seed)
	builder := world.NewBuilder(cat, cfg.World, rand.New(rand.NewSource(seed)))
	w, err := builder.Build()
	if err != nil {
		log.Fatal("Failed to build world", "error", err)
	}

	// Initialize session manager and viewport builder
	sessions := player.NewManager(w, *cfg)
	viewports := viewport.NewBuilder(w, cfg.World.ViewportWidth, cfg.World.ViewportHeight)

	// Initialize API handlers
	handler := api.NewHandler(w, sessions, viewports)
	router := api.SetupRoutes(handler)
	log.Debug("API routes configured")

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Starting overworld server", "port", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", "error", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info("Shutting down server...", "signal", sig.String())

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
	}

	log.Info("Server exited")
}

func setupLogging(cfg config.LoggingConfig) {
	switch cfg.Level {
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "info":
		log.SetLevel(log.InfoLevel)
	case "warn":
		log.SetLevel(log.WarnLevel)
	case "error":
		log.SetLevel(log.ErrorLevel)
	default:
		log.Warn("Invalid log level, using info", "level", cfg.Level)
		log.SetLevel(log.InfoLevel)
	}

	if cfg.Format == "pretty" || !cfg.Structured {
		log.SetReportCaller(true)
		log.SetReportTimestamp(true)
	}

	log.SetPrefix("[overworld] ")
}

func initializeDatabase(cfg config.DatabaseConfig) (*sql.DB, error) {
	sqlDB, err := sql.Open("sqlite3", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info("Database initialized", "path", cfg.Path)
	return sqlDB, nil
}

func runMigrations(sqlDB *sql.DB, migrationsPath string) error {
	driver, err := sqlite3.WithInstance(sqlDB, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://"+migrationsPath,
		"sqlite3",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations completed")
	return nil
}

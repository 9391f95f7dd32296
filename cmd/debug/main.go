package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/log"
	_ "github.com/mattn/go-sqlite3"

	"github.com/Wintermark/overworld/cmd/debug/models"
	"github.com/Wintermark/overworld/internal/catalog"
	"github.com/Wintermark/overworld/internal/config"
	"github.com/Wintermark/overworld/internal/db"
	"github.com/Wintermark/overworld/internal/player"
	"github.com/Wintermark/overworld/internal/viewport"
	"github.com/Wintermark/overworld/internal/world"
)

func main() {
	dbPath := flag.String("db", "./catalog.db", "Path to the SQLite catalog database")
	seed := flag.Int64("seed", 0, "World seed (0 = time-based)")
	columns := flag.Int("columns", 6, "World width in screens")
	rows := flag.Int("rows", 6, "World height in screens")
	logLevel := flag.String("log", "warn", "Log level (debug, info, warn, error)")
	flag.Parse()

	// Setup logging
	switch *logLevel {
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "info":
		log.SetLevel(log.InfoLevel)
	case "warn":
		log.SetLevel(log.WarnLevel)
	case "error":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.WarnLevel)
	}

	// Setup file logging for debug
	if len(os.Getenv("DEBUG")) > 0 {
		f, err := tea.LogToFile("debug.log", "debug")
		if err != nil {
			fmt.Println("fatal:", err)
			os.Exit(1)
		}
		defer f.Close()
	}

	// Initialize database connection
	database, err := sql.Open("sqlite3", *dbPath)
	if err != nil {
		log.Fatal("Failed to open database", "error", err, "path", *dbPath)
	}
	defer database.Close()

	if err := database.Ping(); err != nil {
		log.Fatal("Failed to connect to database", "error", err)
	}

	// Load the catalog
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	cat, err := catalog.Load(ctx, db.New(database))
	cancel()
	if err != nil {
		log.Fatal("Failed to load catalog", "error", err)
	}

	// Build a small world for exploring
	cfg := config.Load()
	cfg.World.Columns = *columns
	cfg.World.Rows = *rows

	worldSeed := *seed
	if worldSeed == 0 {
		worldSeed = time.Now().UnixNano()
	}

	builder := world.NewBuilder(cat, cfg.World, rand.New(rand.NewSource(worldSeed)))
	w, err := builder.Build()
	if err != nil {
		log.Fatal("Failed to build world", "error", err)
	}

	p := player.New("debug", "explorer", player.DefaultStats, w, *cfg)
	viewports := viewport.NewBuilder(w, cfg.World.ViewportWidth, cfg.World.ViewportHeight)

	explorer := models.NewExplorer(w, p, viewports)
	program := tea.NewProgram(explorer, tea.WithAltScreen())

	log.Info("Starting overworld explorer", "db_path", *dbPath, "seed", worldSeed)

	if _, err := program.Run(); err != nil {
		log.Fatal("Error running explorer", "error", err)
	}
}

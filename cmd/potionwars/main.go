package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/user/potion-wars/config"
	"github.com/user/potion-wars/internal/game"
	"github.com/user/potion-wars/internal/save"
	"github.com/user/potion-wars/internal/tui"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	configPath := flag.String("config", defaultConfigPath(), "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load configuration:", err)
		os.Exit(1)
	}

	// Set up logger
	logger := setupLogger(cfg.Log.Level)
	defer logger.Sync()

	// Load world catalog
	catalog, err := game.LoadCatalog(cfg.Game.CatalogPath)
	if err != nil {
		logger.Fatal("Failed to load world catalog", zap.Error(err))
	}

	// Open the save store
	store, err := save.NewStore(cfg.Storage.SaveDir, cfg.Storage.SlotCount)
	if err != nil {
		logger.Fatal("Failed to open save store", zap.Error(err))
	}

	// Build the rule engine and session
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	engine := game.NewEngine(cfg.Game, catalog, game.DefaultRegistry(), rng)
	session := game.NewSession(cfg.Game, engine, store, logger)

	// Run the terminal front end
	program := tea.NewProgram(tui.NewModel(session))
	if _, err := program.Run(); err != nil {
		logger.Fatal("Front end stopped", zap.Error(err))
	}
}

func setupLogger(level string) *zap.Logger {
	zapConfig := zap.NewProductionConfig()
	zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if parsed, err := zapcore.ParseLevel(level); err == nil {
		zapConfig.Level = zap.NewAtomicLevelAt(parsed)
	}
	// Keep the terminal clean for the game itself.
	zapConfig.OutputPaths = []string{filepath.Join(os.TempDir(), "potion-wars.log")}
	logger, err := zapConfig.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./config/config.json"
	}
	return filepath.Join(home, ".config", "potion-wars", "config.json")
}

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config holds all configuration for the application
type Config struct {
	// Game configuration
	Game GameConfig `json:"game"`

	// Storage configuration
	Storage StorageConfig `json:"storage"`

	// Log configuration
	Log LogConfig `json:"log"`
}

// GameConfig holds game specific configuration
type GameConfig struct {
	// Starting cash for a new game
	StartingCash int `json:"starting_cash"`

	// Starting debt for a new game
	StartingDebt int `json:"starting_debt"`

	// Starting health for a new game
	StartingHealth int `json:"starting_health"`

	// Number of days before the game ends
	MaxDays int `json:"max_days"`

	// Daily compounding debt interest in percent
	DebtInterestPercent int `json:"debt_interest_percent"`

	// Maximum number of combat rounds per encounter
	MaxCombatRounds int `json:"max_combat_rounds"`

	// Cap on the persisted message log, oldest entries dropped
	MessageLogCap int `json:"message_log_cap"`

	// Optional path to a YAML world catalog; empty uses built-in data
	CatalogPath string `json:"catalog_path"`
}

// StorageConfig holds persistence specific configuration
type StorageConfig struct {
	// Directory where save slots are stored
	SaveDir string `json:"save_dir"`

	// Number of available save slots
	SlotCount int `json:"slot_count"`
}

// LogConfig holds logging specific configuration
type LogConfig struct {
	// Log level (debug, info, warn, error)
	Level string `json:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Game: GameConfig{
			StartingCash:        2000,
			StartingDebt:        5000,
			StartingHealth:      100,
			MaxDays:             30,
			DebtInterestPercent: 10,
			MaxCombatRounds:     10,
			MessageLogCap:       500,
			CatalogPath:         "",
		},
		Storage: StorageConfig{
			SaveDir:   defaultSaveDir(),
			SlotCount: 3,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

func defaultSaveDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./potion-wars"
	}
	return filepath.Join(home, ".config", "potion-wars")
}

// LoadConfig loads configuration from a file
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return config, err
	}

	// Check if file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		// Create default config file
		if err := SaveConfig(config, path); err != nil {
			return config, err
		}
		return config, nil
	}

	// Read config file
	file, err := os.Open(path)
	if err != nil {
		return config, err
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&config); err != nil {
		return config, err
	}

	return config, nil
}

// SaveConfig saves configuration to a file
func SaveConfig(config Config, path string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	// Create or truncate file
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(config); err != nil {
		return err
	}

	return nil
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	// Setup
	path := filepath.Join(t.TempDir(), "config.json")

	// Test case 1: missing file creates the defaults on disk
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.FileExists(t, path)

	// Test case 2: an existing file overrides defaults field by field
	custom := `{"game": {"starting_cash": 9999, "max_days": 7}}`
	require.NoError(t, os.WriteFile(path, []byte(custom), 0644))

	cfg, err = LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 9999, cfg.Game.StartingCash)
	assert.Equal(t, 7, cfg.Game.MaxDays)
	// Untouched fields keep their defaults.
	assert.Equal(t, 10, cfg.Game.DebtInterestPercent)
	assert.Equal(t, 3, cfg.Storage.SlotCount)
}

func TestSaveConfigRoundTrip(t *testing.T) {
	// Setup
	path := filepath.Join(t.TempDir(), "nested", "config.json")
	cfg := DefaultConfig()
	cfg.Game.MessageLogCap = 42
	cfg.Log.Level = "debug"

	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

package config_test

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/plus3/blockdrop/internal/config"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate keeps the search path away from any real blockdrop.yaml.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	return dir
}

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "blockdrop.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := config.Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, config.Config{
		WellWidth:  10,
		WellHeight: 22,
		CellSize:   32,
		TickRate:   15,
		Randomizer: config.RandomizerUniform,
		LogLevel:   slog.LevelInfo,
	}, cfg)
}

func TestLoadFile(t *testing.T) {
	dir := isolate(t)
	path := writeConfig(t, dir, `
well:
  width: 12
  height: 30
tick_rate: 30
randomizer: bag
seed: 42
debug_ui: true
log_level: debug
`)

	cfg, err := config.Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.WellWidth)
	assert.Equal(t, 30, cfg.WellHeight)
	assert.Equal(t, 32, cfg.CellSize, "unset keys keep their default")
	assert.Equal(t, 30, cfg.TickRate)
	assert.Equal(t, config.RandomizerBag, cfg.Randomizer)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.True(t, cfg.DebugUI)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoadHomeConfig(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, ".config", "blockdrop")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	writeConfig(t, dir, "cell_size: 16\n")

	cfg, err := config.Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.CellSize)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	dir := isolate(t)

	_, err := config.Load(filepath.Join(dir, "nope.yaml"), nil)
	assert.Error(t, err)
}

func TestPrecedence(t *testing.T) {
	dir := isolate(t)
	path := writeConfig(t, dir, "well:\n  width: 12\ntick_rate: 30\nseed: 7\n")

	t.Setenv("BLOCKDROP_WELL_WIDTH", "14")
	t.Setenv("BLOCKDROP_TICK_RATE", "60")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	config.AddFlags(fs)
	require.NoError(t, fs.Parse([]string{"--tick-rate", "20"}))

	cfg, err := config.Load(path, fs)
	require.NoError(t, err)

	assert.Equal(t, 14, cfg.WellWidth, "env beats file")
	assert.Equal(t, 20, cfg.TickRate, "flag beats env")
	assert.Equal(t, uint64(7), cfg.Seed, "unset flag does not shadow the file")
	assert.Equal(t, 22, cfg.WellHeight)
}

func TestValidate(t *testing.T) {
	valid := config.Config{
		WellWidth:  10,
		WellHeight: 22,
		CellSize:   32,
		TickRate:   15,
		Randomizer: config.RandomizerUniform,
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(c *config.Config)
	}{
		{"narrow well", func(c *config.Config) { c.WellWidth = 3 }},
		{"shallow well", func(c *config.Config) { c.WellHeight = 0 }},
		{"tiny cells", func(c *config.Config) { c.CellSize = 2 }},
		{"zero tick rate", func(c *config.Config) { c.TickRate = 0 }},
		{"fast tick rate", func(c *config.Config) { c.TickRate = 121 }},
		{"unknown randomizer", func(c *config.Config) { c.Randomizer = "lucky" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			assert.True(t, errors.Is(err, config.ErrInvalid), "got %v", err)
		})
	}
}

func TestLoadInvalid(t *testing.T) {
	dir := isolate(t)

	_, err := config.Load(writeConfig(t, dir, "log_level: loud\n"), nil)
	assert.ErrorIs(t, err, config.ErrInvalid)

	t.Setenv("BLOCKDROP_RANDOMIZER", "lucky")
	_, err = config.Load("", nil)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

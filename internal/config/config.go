// Package config loads blockdrop settings with Viper. Values come from, in
// increasing precedence: defaults, blockdrop.yaml, BLOCKDROP_* environment
// variables and command line flags.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	configFileName = "blockdrop"
	configFileType = "yaml"
	envPrefix      = "BLOCKDROP"

	KeyWellWidth  = "well.width"
	KeyWellHeight = "well.height"
	KeyCellSize   = "cell_size"
	KeyTickRate   = "tick_rate"
	KeyRandomizer = "randomizer"
	KeySeed       = "seed"
	KeyDebugUI    = "debug_ui"
	KeyLogLevel   = "log_level"
)

const (
	RandomizerUniform = "uniform"
	RandomizerBag     = "bag"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config is the resolved startup configuration. It does not change while the
// game runs.
type Config struct {
	WellWidth  int
	WellHeight int
	CellSize   int
	TickRate   int
	Randomizer string
	// Seed 0 means seed from the clock.
	Seed     uint64
	DebugUI  bool
	LogLevel slog.Level
}

// flagKeys maps command line flag names to config keys.
var flagKeys = map[string]string{
	"width":      KeyWellWidth,
	"height":     KeyWellHeight,
	"cell-size":  KeyCellSize,
	"tick-rate":  KeyTickRate,
	"randomizer": KeyRandomizer,
	"seed":       KeySeed,
	"debug-ui":   KeyDebugUI,
	"log-level":  KeyLogLevel,
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyWellWidth, 10)
	v.SetDefault(KeyWellHeight, 22)
	v.SetDefault(KeyCellSize, 32)
	v.SetDefault(KeyTickRate, 15)
	v.SetDefault(KeyRandomizer, RandomizerUniform)
	v.SetDefault(KeySeed, 0)
	v.SetDefault(KeyDebugUI, false)
	v.SetDefault(KeyLogLevel, "info")
}

// AddFlags registers the override flags on fs. Only flags that are set on the
// command line take precedence over the file and environment.
func AddFlags(fs *pflag.FlagSet) {
	fs.Int("width", 10, "well width in cells")
	fs.Int("height", 22, "well height in cells")
	fs.Int("cell-size", 32, "cell size in pixels")
	fs.Int("tick-rate", 15, "ticks per second")
	fs.String("randomizer", RandomizerUniform, "kind randomizer (uniform|bag)")
	fs.Uint64("seed", 0, "randomizer seed (0 = time based)")
	fs.Bool("debug-ui", false, "draw the ImGui debug overlay")
	fs.String("log-level", "info", "log level (debug|info|warn|error)")
}

// Load reads the configuration. path selects an explicit config file, which
// must exist; when empty, blockdrop.yaml is searched for in the working
// directory and $HOME/.config/blockdrop and may be absent. flags may be nil.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "blockdrop"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	return decode(v)
}

func decode(v *viper.Viper) (Config, error) {
	cfg := Config{
		WellWidth:  v.GetInt(KeyWellWidth),
		WellHeight: v.GetInt(KeyWellHeight),
		CellSize:   v.GetInt(KeyCellSize),
		TickRate:   v.GetInt(KeyTickRate),
		Randomizer: strings.ToLower(v.GetString(KeyRandomizer)),
		Seed:       v.GetUint64(KeySeed),
		DebugUI:    v.GetBool(KeyDebugUI),
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString(KeyLogLevel))); err != nil {
		return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalid, KeyLogLevel, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges. Failures wrap ErrInvalid.
func (c Config) Validate() error {
	switch {
	case c.WellWidth < 4:
		return fmt.Errorf("%w: %s must be at least 4, got %d", ErrInvalid, KeyWellWidth, c.WellWidth)
	case c.WellHeight < 4:
		return fmt.Errorf("%w: %s must be at least 4, got %d", ErrInvalid, KeyWellHeight, c.WellHeight)
	case c.CellSize < 4:
		return fmt.Errorf("%w: %s must be at least 4, got %d", ErrInvalid, KeyCellSize, c.CellSize)
	case c.TickRate < 1 || c.TickRate > 120:
		return fmt.Errorf("%w: %s must be in 1..120, got %d", ErrInvalid, KeyTickRate, c.TickRate)
	}

	switch c.Randomizer {
	case RandomizerUniform, RandomizerBag:
	default:
		return fmt.Errorf("%w: unknown %s %q", ErrInvalid, KeyRandomizer, c.Randomizer)
	}
	return nil
}

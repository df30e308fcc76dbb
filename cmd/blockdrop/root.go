package main

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/plus3/blockdrop/game"
	"github.com/plus3/blockdrop/internal/config"
	"github.com/plus3/blockdrop/well"
	"github.com/spf13/cobra"
)

var (
	// flagConfig is set by the --config flag.
	flagConfig string

	// cfg and logger are resolved by PersistentPreRunE.
	cfg    config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "blockdrop",
	Short: "A falling-block puzzle on a fixed tick",
	Long: `blockdrop drops pieces into a well one row per tick. Full rows are
eliminated; when a new piece has no room the well is cleared and play goes on.

Without a subcommand it opens a window and plays.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cfg, logger)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default: ./blockdrop.yaml or ~/.config/blockdrop/blockdrop.yaml)")
	config.AddFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig resolves the configuration and installs the logger.
func loadConfig(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	loaded, err := config.Load(flagConfig, cmd.Flags())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg = loaded

	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	game.SetLogger(logger)
	return nil
}

// resolveSeed replaces the zero seed with one taken from the clock.
func resolveSeed(seed uint64) uint64 {
	if seed == 0 {
		return uint64(time.Now().UnixNano())
	}
	return seed
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// newSource builds the configured randomizer.
func newSource(randomizer string, seed uint64) well.KindSource {
	switch randomizer {
	case config.RandomizerBag:
		return well.NewBag(newRand(seed))
	default:
		return well.NewUniform(newRand(seed))
	}
}

// blockout is a terminal brick-breaker with a block-world theme.
//
// Usage:
//
//	blockout                 - Play the campaign
//	blockout --endless       - Endless mode: layouts cycle and harden
//	blockout levels          - List the built-in levels
//	blockout config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--config <path> - Use a custom config YAML
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockout/internal/config"
	"github.com/vovakirdan/blockout/internal/core"
	"github.com/vovakirdan/blockout/internal/game"
	"github.com/vovakirdan/blockout/internal/platform/tui"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagConfig string

	// Play flags
	flagDifficulty string
	flagEndless    bool
	flagLevel      int
	flagNoBell     bool
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockout",
	Short: "Blockout - Smash ore bricks in your terminal",
	Long: `Blockout is a terminal brick-breaker. Bounce the ball off your wooden
paddle and mine through layers of dirt, stone, and ore. Rich ores take
several hits and score more. Bedrock does not break; play around it.

Controls:
  Mouse / ←→ / A,D  - Move paddle
  Space             - Launch ball, pause/resume
  R                 - Restart
  Q/Esc/Ctrl+C      - Quit

Difficulty presets:
  easy   - 5 lives, wide paddle, slow serves
  normal - Default tuning
  hard   - 2 lives, narrow paddle, fast serves
  fixed  - No serve-speed progression

Examples:
  blockout
  blockout --difficulty hard
  blockout --endless --seed 42
  blockout --level 5
  blockout --config ./my-blockout.yaml`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")

	rootCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.Flags().BoolVar(&flagEndless, "endless", false, "Endless mode: layouts cycle forever and harden")
	rootCmd.Flags().IntVar(&flagLevel, "level", 0, "Start from a specific level (1-based)")
	rootCmd.Flags().BoolVar(&flagNoBell, "no-bell", false, "Disable the terminal bell on hits")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Verbose startup logging")

	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(configCmd)
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          "blockout",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}

	if flagFPS < 1 || flagFPS > 240 {
		logger.Fatal("invalid tick rate", "fps", flagFPS)
	}
	if flagLevel < 0 || flagLevel > game.LevelCount() {
		logger.Fatal("no such level", "level", flagLevel, "available", game.LevelCount())
	}
	switch flagDifficulty {
	case "", "easy", "normal", "hard", "fixed":
	default:
		logger.Fatal("unknown difficulty preset", "preset", flagDifficulty)
	}
	// An explicit config path must load before the TUI takes the terminal.
	if err := checkConfigFlag(flagConfig); err != nil {
		logger.Fatal("failed to load config", "err", err)
	}

	width, height := 80, 24 // Defaults for non-tty probes
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	} else {
		logger.Debug("terminal size probe failed, using defaults", "err", err)
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height - 1, // Bottom row is the help bar
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	logger.Debug("starting", "screen", fmt.Sprintf("%dx%d", cfg.ScreenW, cfg.ScreenH),
		"fps", cfg.TickRate, "seed", cfg.Seed, "endless", flagEndless)

	game.SetConfigPath(flagConfig)
	game.SetDifficultyPreset(flagDifficulty)
	game.SetStartLevel(flagLevel)

	var g tui.Game
	if flagEndless {
		g = game.NewEndless()
	} else {
		g = game.New()
	}

	if err := tui.Run(g, cfg, tui.Options{NoBell: flagNoBell}); err != nil {
		logger.Fatal("game exited with error", "err", err)
	}
}

// checkConfigFlag verifies that an explicit --config path is readable and
// parses. The default search locations are allowed to fall through to the
// embedded config; a path the player asked for is not.
func checkConfigFlag(path string) error {
	if path == "" {
		return nil
	}
	_, err := config.Load(path)
	return err
}

package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockout/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Resolves the configuration the game would run with and prints it as
YAML. Respects --config and --difficulty, so the output can seed a custom
config file:

  blockout config > blockout.yaml`,
	Run: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runConfig(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          "blockout",
	})

	cfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Fatal("could not load config", "err", err)
	}

	switch flagDifficulty {
	case "":
	case "easy", "normal", "hard", "fixed":
		config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty))
	default:
		logger.Fatal("unknown difficulty preset", "preset", flagDifficulty)
	}

	data, err := config.Dump(cfg)
	if err != nil {
		logger.Fatal("could not serialize config", "err", err)
	}

	fmt.Print(string(data))
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bomber/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick levels interactively",
	Long: `Opens the level picker. Quitting a game brings you back to the picker;
quit the picker to leave.`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	menuCmd.Flags().StringVar(&flagLog, "log", "", "Write logs to this file")
	menuCmd.Flags().BoolVar(&flagDebug, "debug", false, "Log bomb and blast events")
}

func runMenu(_ *cobra.Command, _ []string) error {
	cfg, err := gameConfig(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}

	logger, closeLog, err := fileLogger(flagLog, flagDebug)
	if err != nil {
		return err
	}
	defer closeLog()

	return tui.RunSession(cfg, runtimeConfig(), logger)
}

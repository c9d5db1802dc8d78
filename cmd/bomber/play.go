package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bomber/internal/level"
	"github.com/vovakirdan/tui-bomber/internal/levels"
	"github.com/vovakirdan/tui-bomber/internal/platform/term"
	"github.com/vovakirdan/tui-bomber/internal/platform/tui"
	"github.com/vovakirdan/tui-bomber/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevelFile  string
	flagBackend    string
	flagLog        string
	flagDebug      bool
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Start playing the given level, or the first built-in level.

Controls:
  Arrows/WASD  - Move
  Space/B      - Drop a bomb
  Q/Esc        - Quit
  Ctrl+S       - Save a text screenshot

Difficulty options:
  easy    - More lives, an extra bomb, slow wandering monster
  normal  - Values from the config file
  hard    - Fewer lives, fast monster that chases you

Examples:
  bomber play
  bomber play cellar --difficulty hard
  bomber play --file ./my-level.yaml
  bomber play keep --backend tcell --log bomber.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagLevelFile, "file", "", "Play a level YAML file instead of a registered level")
	playCmd.Flags().StringVar(&flagBackend, "backend", "tea", "Terminal frontend: tea or tcell")
	playCmd.Flags().StringVar(&flagLog, "log", "", "Write logs to this file")
	playCmd.Flags().BoolVar(&flagDebug, "debug", false, "Log bomb and blast events")
}

func runPlay(_ *cobra.Command, args []string) error {
	lvl, err := pickLevel(args)
	if err != nil {
		return err
	}

	cfg, err := gameConfig(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}

	logger, closeLog, err := fileLogger(flagLog, flagDebug)
	if err != nil {
		return err
	}
	defer closeLog()

	rc := runtimeConfig()
	switch flagBackend {
	case "tea":
		return tui.Run(lvl, cfg, rc, logger)
	case "tcell":
		return term.Run(lvl, cfg, rc, logger)
	default:
		return fmt.Errorf("unknown backend %q (want tea or tcell)", flagBackend)
	}
}

func pickLevel(args []string) (*level.Level, error) {
	if flagLevelFile != "" {
		if len(args) > 0 {
			return nil, fmt.Errorf("give either a level id or --file, not both")
		}
		return level.LoadFile(flagLevelFile)
	}

	id := levels.DefaultID
	if len(args) > 0 {
		id = args[0]
	}
	lvl, err := registry.Create(id)
	if err != nil {
		return nil, fmt.Errorf("%w (run 'bomber list' to see available levels)", err)
	}
	return lvl, nil
}

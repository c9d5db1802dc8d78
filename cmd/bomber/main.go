// bomber is a tile-based bomb action game played in the terminal.
//
// Usage:
//
//	bomber list              - List available levels
//	bomber play [level]      - Play a level
//	bomber menu              - Pick levels interactively
//	bomber serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible monsters
//	--levels-dir <path>  - Register extra levels from a directory
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bomber/internal/level"
	// Register built-in levels
	_ "github.com/vovakirdan/tui-bomber/internal/levels"
	"github.com/vovakirdan/tui-bomber/internal/registry"
)

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagLevelsDir string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bomber",
	Short: "Bomber - blow your way to the princess",
	Long: `Bomber is a tile-based action game for the terminal. Drop bombs to
clear boxes, find keys to open doors, avoid the monster and reach the princess.

Available commands:
  list     - Show all available levels
  play     - Play a level directly
  menu     - Interactive level picker
  serve    - Start SSH server for remote play

Examples:
  bomber list
  bomber play courtyard
  bomber play --difficulty hard keep
  bomber menu
  bomber serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: registerExtraLevels,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels-dir", "", "Directory of extra level YAML files")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
}

func registerExtraLevels(_ *cobra.Command, _ []string) error {
	if flagLevelsDir == "" {
		return nil
	}
	lvls, err := level.LoadDir(flagLevelsDir)
	if err != nil {
		return err
	}
	for _, lvl := range lvls {
		if registry.Exists(lvl.ID) {
			return fmt.Errorf("level %q from %s is already registered", lvl.ID, flagLevelsDir)
		}
		registry.RegisterLevel(lvl)
	}
	return nil
}

// platformer is a side-scrolling platformer for the terminal and the desktop.
//
// Usage:
//
//	platformer list              - List available worlds
//	platformer play [world]      - Play in the terminal (menu if no world given)
//	platformer window [world]    - Play in a desktop window
//	platformer serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible worlds
//	--config <path>       - Custom config YAML
//	--level <path>        - Tiled map for the staircase world
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import worlds to register them
	_ "github.com/vovakirdan/platformer/internal/games/platformer"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLevel    string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "Platformer - jump across an endless field of platforms",
	Long: `Platformer is a side-scrolling platformer. Fall onto platforms, jump
between them and walk into either edge band to scroll the world.

Available commands:
  list     - Show all available worlds
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play

Examples:
  platformer list
  platformer play scroller
  platformer window staircase --level ./my-level.tmx
  platformer serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevel, "level", "", "Path to a Tiled .tmx map for the staircase world")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
}

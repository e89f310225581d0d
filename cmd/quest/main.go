// quest is a top-down tile adventure for the terminal: collect keys, open
// doors, find the boots and reach the treasure.
//
// Usage:
//
//	quest play [world]       - Play a world (default from config)
//	quest list               - List available worlds
//	quest check <map-file>   - Validate a map file
//
// Global flags:
//
//	--log-file <path>  - Diagnostics log (default: ~/.tilequest/quest.log)
//	--log-level <lvl>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import worlds to register them
	_ "github.com/vovakirdan/tile-quest/internal/worlds/world01"
)

var (
	// Global flags
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "quest",
	Short: "Tile Quest - a tile adventure in your terminal",
	Long: `Tile Quest is a small top-down adventure played in the terminal.
Walk the map, pick up keys to open doors, grab the boots for extra speed
and find the treasure chest.

Available commands:
  play     - Play a world
  list     - Show all available worlds
  check    - Parse a map file and report its contents

Examples:
  quest play
  quest play world01 --fps 30
  quest play --map ./my-map.txt --mute
  quest check ./my-map.txt`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.tilequest/quest.log", "Path to diagnostics log")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(checkCmd)
}

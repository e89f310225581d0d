package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile-quest/internal/platform/tui"
	"github.com/vovakirdan/tile-quest/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available worlds",
	Long:  `Shows a table of all worlds built into the game.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	worlds := registry.List()

	if len(worlds) == 0 {
		fmt.Println("No worlds available.")
		return
	}

	fmt.Println("Available worlds:")
	fmt.Println()
	fmt.Println(tui.WorldsTable(worlds))
	fmt.Println()
	fmt.Println("Run 'quest play <id>' to play a world.")
}

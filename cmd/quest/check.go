package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile-quest/internal/world"
)

var checkCmd = &cobra.Command{
	Use:   "check <map-file>",
	Short: "Parse a map file and report its contents",
	Long: `Parses a map file the same way the game does and prints its size
and a count of each terrain code. Unknown codes are reported; they are
walkable and not drawn.`,
	Args: cobra.ExactArgs(1),
	Run:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) {
	g, err := world.LoadMap(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Map %s: %d columns x %d rows\n", args[0], g.Width(), g.Height())

	ragged := 0
	for row := 0; row < g.Height(); row++ {
		if g.RowLen(row) != g.Width() {
			ragged++
		}
	}
	if ragged > 0 {
		fmt.Printf("  %d short rows (missing cells are open ground)\n", ragged)
	}

	hist := g.Histogram()
	codes := make([]world.Terrain, 0, len(hist))
	for t := range hist {
		codes = append(codes, t)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })

	fmt.Println()
	fmt.Printf("  %-6s %-8s %-8s %-8s %s\n", "Code", "Terrain", "Blocks", "Drawn", "Cells")
	undrawn := 0
	for _, t := range codes {
		fmt.Printf("  %-6d %-8s %-8s %-8s %d\n", int(t), t, yesNo(world.IsBlocking(t)), yesNo(t.Known()), hist[t])
		if !t.Known() {
			undrawn += hist[t]
		}
	}
	if undrawn > 0 {
		fmt.Printf("\n  %d cells have codes with no sprite\n", undrawn)
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

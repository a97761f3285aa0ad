package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	engine "github.com/vovakirdan/pyramid-arcade/internal/games/pyramid/core"
)

var shapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "Show the shape catalog",
	Long: `Prints every shape the dealer can hand out, with the name used by the
shape_pool setting of the game config.`,
	Run: runShapes,
}

func runShapes(cmd *cobra.Command, args []string) {
	fmt.Println("Shape catalog:")
	fmt.Println()

	for _, s := range engine.Catalog() {
		fmt.Printf("  %s (%d cells)\n", s.Name, engine.CellCount(s.Cells))
		for _, row := range s.Cells {
			var b strings.Builder
			for _, filled := range row {
				if filled {
					b.WriteString("##")
				} else {
					b.WriteString("  ")
				}
			}
			fmt.Printf("    %s\n", strings.TrimRight(b.String(), " "))
		}
		fmt.Println()
	}
}

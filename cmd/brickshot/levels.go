package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all available levels",
	Long:  `Shows the levels from the configured level directory, or the built-in set.`,
	RunE:  runLevels,
}

func runLevels(_ *cobra.Command, _ []string) error {
	_, set, err := loadBoard()
	if err != nil {
		return err
	}

	if set.Count() == 0 {
		fmt.Println("No levels available.")
		return nil
	}

	fmt.Println("Available levels:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, l := range set.All() {
		maxIDLen = max(maxIDLen, len(l.ID))
	}

	fmt.Printf("  %-3s  %-*s  %-5s  %-6s  %s\n", "#", maxIDLen, "ID", "Size", "Bricks", "Name")
	fmt.Printf("  %-3s  %-*s  %-5s  %-6s  %s\n", "-", maxIDLen, "--", "----", "------", "----")

	for i, l := range set.All() {
		size := fmt.Sprintf("%dx%d", l.Rows, l.Cols)
		fmt.Printf("  %-3d  %-*s  %-5s  %-6d  %s\n", i+1, maxIDLen, l.ID, size, l.Count(), l.Name)
	}

	fmt.Println()
	fmt.Println("Run 'brickshot view' to aim at them.")
	return nil
}

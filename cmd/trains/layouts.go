package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var layoutsCmd = &cobra.Command{
	Use:   "layouts",
	Short: "List all layout presets",
	Long: `Shows the layouts built into trains together with any found in the
layouts directory. A file with the same id as a built-in layout replaces it.`,
	Args: cobra.NoArgs,
	Run:  runLayouts,
}

func runLayouts(_ *cobra.Command, _ []string) {
	catalog := loadCatalog()

	if len(catalog) == 0 {
		fmt.Println("No layouts available.")
		return
	}

	fmt.Println("Available layouts:")
	fmt.Println()

	// Calculate column widths
	maxIDLen, maxNameLen := 2, 4 // "ID", "Name" headers
	for _, l := range catalog {
		maxIDLen = max(maxIDLen, len(l.ID))
		maxNameLen = max(maxNameLen, len(l.Name))
	}

	// Print header
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxNameLen, "Name", "Description")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxNameLen, "----", "-----------")

	// Print layouts
	for _, l := range catalog {
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, l.ID, maxNameLen, l.Name, l.Description)
	}

	fmt.Println()
	fmt.Println("Run 'trains play --layout <id>' to edit a layout.")
}

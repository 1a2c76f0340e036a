package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-trains/internal/board"
	"github.com/vovakirdan/tui-trains/internal/layouts"
	"github.com/vovakirdan/tui-trains/internal/render"
)

var flagShowFile string

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Print a layout as resolved track",
	Long: `Replays a layout onto an empty board and prints the result.

Examples:
  trains show loop
  trains show --file ./my-layout.yaml
  trains show junction --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	Run:  runShow,
}

func init() {
	showCmd.Flags().StringVar(&flagShowFile, "file", "", "Layout file to show instead of an id")
}

func runShow(_ *cobra.Command, args []string) {
	cfg := loadConfig()

	var layout layouts.Layout
	switch {
	case flagShowFile != "":
		l, err := layouts.NewLoader(filepath.Dir(flagShowFile)).LoadFile(filepath.Base(flagShowFile))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		layout = l
	case len(args) == 1:
		layout = findLayout(loadCatalog(), args[0])
	default:
		fmt.Fprintln(os.Stderr, "Error: give a layout id or --file")
		os.Exit(1)
	}

	engineOpts, err := cfg.Board.EngineOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	b := board.New(
		board.WithLogger(newLogger(os.Stderr, "trains")),
		board.WithEngineOptions(engineOpts...),
	)
	changed := layout.Replay(b)

	fmt.Printf("%s (%s): %d steps, %d applied, %d cells\n\n",
		layout.Name, layout.ID, len(layout.Steps), changed, b.Len())
	fmt.Println(render.Text(b.Cells(), cfg.UI.CellWidth))
}

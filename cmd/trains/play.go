package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-trains/internal/layouts"
	"github.com/vovakirdan/tui-trains/internal/platform/tui"
)

var (
	flagLayout  string
	flagBlank   bool
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the track editor",
	Long: `Open the track editor in this terminal.

Controls:
  Arrows/hjkl  - Move cursor
  Space/Enter  - Use the selected tool
  X/Delete     - Erase track
  R            - Rotate track (pins its shape)
  1/2/3/Tab    - Track, eraser, rotate tool
  C            - Clear the board
  F            - Jump to the first cell laid
  ?            - Toggle full help
  Esc          - Back to the layout picker
  Q/Ctrl+C     - Quit

Mouse:
  Left click    - Use the selected tool (shift rotates with the track tool)
  Right click   - Erase
  Drag          - Paint or erase a run of cells

Examples:
  trains play
  trains play --layout loop
  trains play --blank
  trains play --log-level debug --log-file trains.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLayout, "layout", "", "Start with this layout instead of the picker")
	playCmd.Flags().BoolVar(&flagBlank, "blank", false, "Start with an empty board instead of the picker")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the terminal is busy with the editor)")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	catalog := loadCatalog()

	var initial *layouts.Layout
	if flagLayout != "" {
		l := findLayout(catalog, flagLayout)
		initial = &l
	}

	var logger *log.Logger
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logger = newLogger(f, "trains")
	}

	// Get terminal size for the first frame
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	err := tui.Run(tui.SessionOptions{
		Config:  cfg,
		Catalog: catalog,
		Initial: initial,
		Blank:   flagBlank,
		Logger:  logger,
		Width:   width,
		Height:  height,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

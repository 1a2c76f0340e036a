// trains is a terminal rail-network editor. Track laid on the grid picks its
// own shape from its neighbours so the network always reads as continuous.
//
// Usage:
//
//	trains play              - Open the editor (layout picker first)
//	trains play --layout id  - Open the editor with a preset layout
//	trains layouts           - List available layouts
//	trains show <id>         - Print a layout as it resolves
//	trains serve             - Start SSH server for remote editing
//
// Global flags:
//
//	--config <path>       - Config file (default search: ~/.trains/config.yaml, ./configs/trains.yaml)
//	--log-level <level>   - debug, info, warn or error (default: info)
//	--layouts-dir <path>  - Extra directory of layout files (default: ~/.trains/layouts)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-trains/internal/config"
	"github.com/vovakirdan/tui-trains/internal/layouts"
)

var (
	// Global flags
	flagConfig     string
	flagLogLevel   string
	flagLayoutsDir string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "trains",
	Short: "Trains - lay rail track in your terminal",
	Long: `Trains is a terminal editor for rail networks. Place track cells on a
grid and each cell picks the shape that connects it to its neighbours.

Available commands:
  play     - Open the editor
  layouts  - Show all layout presets
  show     - Print a layout as text
  serve    - Start SSH server for remote editing

Examples:
  trains play
  trains play --layout loop
  trains layouts
  trains show junction
  trains serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLayoutsDir, "layouts-dir", "", "Extra layouts directory (default ~/.trains/layouts)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(layoutsCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads the configuration or exits with a message.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// loadCatalog returns embedded presets merged with the user's layouts directory.
func loadCatalog() []layouts.Layout {
	dir := flagLayoutsDir
	if dir == "" {
		dir = config.UserPath("layouts")
	}
	catalog, err := layouts.Catalog(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading layouts: %v\n", err)
		os.Exit(1)
	}
	return catalog
}

// newLogger builds a logger at the global level writing to w.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.SetLevel(level)
	return logger
}

// findLayout looks up a layout by id or exits, suggesting a close match.
func findLayout(catalog []layouts.Layout, id string) layouts.Layout {
	l, ok := layouts.Find(catalog, id)
	if ok {
		return l
	}
	fmt.Fprintf(os.Stderr, "Error: unknown layout %q\n", id)
	if suggestion, found := layouts.Suggest(catalog, id); found {
		fmt.Fprintf(os.Stderr, "Did you mean %q?\n", suggestion)
	}
	fmt.Fprintln(os.Stderr, "Run 'trains layouts' to see available layouts.")
	os.Exit(1)
	return layouts.Layout{}
}

package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/IshantPundir/aurora/internal/config"
	"github.com/IshantPundir/aurora/internal/geometry"
	"github.com/IshantPundir/aurora/internal/layout"
)

func main() {
	if len(os.Args) < 2 {
		printMainUsage(os.Stdout)
		os.Exit(0)
	}

	switch os.Args[1] {
	case "run":
		os.Exit(runSession(os.Args[2:]))
	case "simulate":
		os.Exit(runSimulate(os.Args[2:]))
	case "plan":
		os.Exit(runPlan(os.Args[2:]))
	case "config":
		os.Exit(runConfig(os.Args[2:]))
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printMainUsage(os.Stderr)
		os.Exit(2)
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: aurora <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  run                 Manage windows on the current X11 session (foreground)")
	fmt.Fprintln(w, "  simulate            Open the interactive layout simulator")
	fmt.Fprintln(w, "  plan                Print the thumbnail grid plan for N windows")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  config validate     Validate configuration")
	fmt.Fprintln(w, "  config print        Print effective configuration")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'aurora <command> --help' for command-specific options.")
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFromPath(path)
}

func runPlan(args []string) int {
	fs := flag.NewFlagSet("plan", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	count := fs.Int("n", 5, "number of windows")
	width := fs.Int("width", 1920, "output width in logical units")
	height := fs.Int("height", 1080, "output height in logical units")
	padding := fs.Int("padding", layout.DefaultPreviewPadding, "cell padding in logical units")
	columns := fs.Int("columns", layout.DefaultMaxColumns, "maximum grid columns")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: aurora plan [options]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Print the thumbnail grid cells computed for the given window count")
		fmt.Fprintln(os.Stderr, "and output size.")
		fmt.Fprintln(os.Stderr, "")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "plan takes no positional arguments")
		fs.Usage()
		return 2
	}

	cells := layout.PlanThumbnailGrid(*count, geometry.Size{Width: *width, Height: *height}, *padding, *columns)
	if cells == nil {
		fmt.Println("no cells")
		return 0
	}

	cols, rows := layout.GridDimensions(*count, *columns)
	fmt.Printf("windows: %d  grid: %dx%d  output: %dx%d  padding: %d\n",
		*count, cols, rows, *width, *height, *padding)
	for _, cell := range cells {
		fmt.Printf("  cell %d (col %d, row %d): %dx%d at (%d,%d)\n",
			cell.Index, cell.Column, cell.Row,
			cell.Bounds.Width, cell.Bounds.Height, cell.Bounds.X, cell.Bounds.Y)
	}
	return 0
}

func runConfig(args []string) int {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: aurora config <validate|print> [options]")
		return 2
	}

	sub := args[0]
	fs := flag.NewFlagSet("config "+sub, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	configPath := fs.String("config", "", "path to config file (default ~/.config/aurora/config.yaml)")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: aurora config %s [options]\n\n", sub)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args[1:]); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	switch sub {
	case "validate":
		if _, err := loadConfig(*configPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Println("configuration is valid")
		return 0

	case "print":
		cfg, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		data, err := yaml.Marshal(effectiveYAML(cfg))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		os.Stdout.Write(data)
		return 0

	default:
		fmt.Fprintf(os.Stderr, "Unknown config subcommand: %s\n", sub)
		return 2
	}
}

// effectiveYAML shapes the effective config with the same keys the loader
// reads, so printed output can be fed back in.
func effectiveYAML(cfg *config.Config) map[string]any {
	return map[string]any{
		"layout": map[string]any{
			"overview_padding": cfg.Layout.OverviewPadding,
		},
		"preview": map[string]any{
			"enabled":     cfg.Preview.Enabled,
			"padding":     cfg.Preview.Padding,
			"max_columns": cfg.Preview.MaxColumns,
		},
		"render": map[string]any{
			"refresh_fallback": cfg.Render.RefreshFallback,
		},
		"log": map[string]any{
			"level": cfg.Log.Level,
		},
		"hotkeys": map[string]any{
			"fullscreen":     cfg.Hotkeys.Fullscreen,
			"overview":       cfg.Hotkeys.Overview,
			"toggle_preview": cfg.Hotkeys.TogglePreview,
		},
	}
}

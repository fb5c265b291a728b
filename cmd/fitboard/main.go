package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/fitboard/internal/catalog"
	"github.com/alexanderramin/fitboard/internal/cli"
	"github.com/alexanderramin/fitboard/internal/planner"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Catalog source: env var, or the built-in catalog. The --catalog
	// flag, when given, overrides both.
	cat := catalog.Default()
	if path := os.Getenv("FITBOARD_CATALOG"); path != "" {
		loaded, err := catalog.Load(path)
		if err != nil {
			return fmt.Errorf("loading catalog: %w", err)
		}
		cat = loaded
	}

	app := &cli.App{
		Catalog: cat,
		Planner: planner.New(cat),
	}

	// Detect interactive terminal before taking over the screen.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

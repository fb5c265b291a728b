package cli

import (
	"fmt"

	"github.com/alexanderramin/fitboard/internal/catalog"
	"github.com/alexanderramin/fitboard/internal/planner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// App bundles the core state handed to the CLI layer: the immutable block
// catalog and the planner holding the session's log and aggregates.
type App struct {
	Catalog *catalog.Catalog
	Planner *planner.Planner

	// IsInteractive reports whether stdin is an interactive terminal.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "fitboard" command. Running it without a
// subcommand starts the interactive board.
func NewRootCmd(app *App) *cobra.Command {
	var catalogPath string

	root := &cobra.Command{
		Use:   "fitboard",
		Short: "Workout block planner",
		Long: `An interactive planner for building a workout from predefined
blocks. Pick blocks from the catalog, watch the per-block chart grow,
and prune the log entry by entry.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if catalogPath == "" {
				return nil
			}
			cat, err := catalog.Load(catalogPath)
			if err != nil {
				return err
			}
			app.Catalog = cat
			app.Planner = planner.New(cat)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBoard(app)
		},
	}

	root.PersistentFlags().StringVar(&catalogPath, "catalog", "", "path to a catalog YAML file (default: built-in catalog)")

	root.AddCommand(newBlocksCmd(app))

	return root
}

func runBoard(app *App) error {
	if app.IsInteractive != nil && !app.IsInteractive() {
		return fmt.Errorf("the board needs an interactive terminal; try `fitboard blocks` instead")
	}

	p := tea.NewProgram(newAppModel(app), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

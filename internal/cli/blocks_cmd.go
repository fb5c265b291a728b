package cli

import (
	"fmt"

	"github.com/alexanderramin/fitboard/internal/cli/formatter"
	"github.com/alexanderramin/fitboard/internal/domain"
	"github.com/spf13/cobra"
)

// newBlocksCmd lists the catalog without starting the TUI.
func newBlocksCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "blocks",
		Short: "List the workout blocks in the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0, app.Catalog.Len())
			for _, b := range app.Catalog.Blocks() {
				rows = append(rows, []string{
					b.ID,
					b.Name,
					domain.FormatDistance(b.DistanceKm),
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable(
				[]string{"ID", "BLOCK", "DISTANCE"},
				rows,
			))
			return nil
		},
	}
}

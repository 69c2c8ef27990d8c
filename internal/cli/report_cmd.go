package cli

import (
	"fmt"

	"github.com/alexanderramin/wcagcheck/internal/cli/formatter"
	"github.com/alexanderramin/wcagcheck/internal/export"
	"github.com/spf13/cobra"
)

func newReportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Print the report table for the active filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st := app.Store.Snapshot()
			doc := export.BuildReport(app.Memo.FilteredGuidelines(st), st, app.now())
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatReport(doc))
			return nil
		},
	}
}

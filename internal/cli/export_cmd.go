package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/wcagcheck/internal/cli/formatter"
	"github.com/alexanderramin/wcagcheck/internal/domain"
	"github.com/alexanderramin/wcagcheck/internal/service"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:       "export json|pdf",
		Short:     "Write a state backup (json) or a report (pdf)",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"json", "pdf"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if dir == "" {
				dir = app.ExportDir
			}
			ctx := context.Background()

			var res *service.ExportResult
			var err error
			switch domain.ExportKind(args[0]) {
			case domain.ExportJSON:
				res, err = app.Exports.ExportSnapshot(ctx, dir)
			case domain.ExportPDF:
				res, err = app.Exports.ExportReport(ctx, dir)
			default:
				return fmt.Errorf("export format %q (want json or pdf): %w", args[0], domain.ErrInvalidArgument)
			}
			if res != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
					formatter.StyleGreen.Render("Wrote"),
					res.Record.Path,
					formatter.Dim(fmt.Sprintf("(%d%%, %d/%d)", res.Stats.Percent, res.Stats.Completed, res.Stats.Total)),
				)
			}
			return err
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Output directory (default from config)")

	return cmd
}

func newExportsCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "exports",
		Short: "List previous exports, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := app.Exports.ListExports(context.Background(), limit)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatExports(records, app.now()))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of entries (0 for all)")

	return cmd
}

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Restore label, filters and completion from a json export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Exports.ImportSnapshot(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d completed rules from %s\n", res.Completed, res.Path)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatFilters(app.Store.Snapshot()))
			return nil
		},
	}
}

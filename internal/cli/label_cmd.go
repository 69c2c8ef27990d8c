package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/wcagcheck/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newLabelCmd(app *App) *cobra.Command {
	var clearLabel bool

	cmd := &cobra.Command{
		Use:   "label [TEXT]",
		Short: "Show or set the website label",
		Long: "Show or set the website label used for export file names and report titles.\n" +
			"Without TEXT a prompt is shown on a terminal.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			out := cmd.OutOrStdout()

			switch {
			case clearLabel:
				app.Store.SetLabel(ctx, "")
			case len(args) == 1:
				app.Store.SetLabel(ctx, strings.TrimSpace(args[0]))
			case app.interactive():
				value := app.Store.Snapshot().Label
				if err := labelForm(&value).Run(); err != nil {
					return err
				}
				app.Store.SetLabel(ctx, strings.TrimSpace(value))
			}

			label := app.Store.Snapshot().Label
			if label == "" {
				fmt.Fprintln(out, formatter.Dim("(no label)"))
				return nil
			}
			fmt.Fprintln(out, label)
			return nil
		},
	}

	cmd.Flags().BoolVar(&clearLabel, "clear", false, "Remove the label")

	return cmd
}

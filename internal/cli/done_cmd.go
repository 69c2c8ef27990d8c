package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/wcagcheck/internal/cli/formatter"
	"github.com/alexanderramin/wcagcheck/internal/domain"
	"github.com/spf13/cobra"
)

func newDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done ID...",
		Short: "Toggle completion of one or more rules",
		Long: "Toggle completion of one or more rules by id or reference number.\n" +
			"Ids that are not in the catalog are toggled anyway and reported.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]string, 0, len(args))
			for _, arg := range args {
				id := strings.TrimSpace(arg)
				if id == "" {
					return fmt.Errorf("empty rule id: %w", domain.ErrInvalidArgument)
				}
				ids = append(ids, resolveRuleID(app, id))
			}

			ctx := context.Background()
			out := cmd.OutOrStdout()

			for _, id := range ids {
				app.Store.ToggleCompletion(ctx, id)
				done := app.Store.Snapshot().IsCompleted(id)

				if !app.Catalog.Contains(id) {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s %q is not in the catalog\n", formatter.StyleYellow.Render("warning:"), id)
				}
				fmt.Fprintf(out, "%s %s\n", formatter.StatusMark(done), id)
			}

			v := app.view()
			fmt.Fprintf(out, "%s %s\n", formatter.RenderProgress(v.Overall.Percent, 20),
				formatter.Dim(fmt.Sprintf("(%d/%d)", v.Overall.Completed, v.Overall.Total)))
			return nil
		},
	}
}

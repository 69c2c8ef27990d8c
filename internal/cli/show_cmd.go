package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/wcagcheck/internal/cli/formatter"
	"github.com/alexanderramin/wcagcheck/internal/repository"
	"github.com/spf13/cobra"
)

const detailWidth = 80

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a rule in detail and mark it as expanded",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, ok := app.Catalog.Lookup(resolveRuleID(app, args[0]))
			if !ok {
				return fmt.Errorf("rule %q: %w", args[0], repository.ErrNotFound)
			}

			app.Store.SetExpanded(context.Background(), g.ID)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatGuideline(g, app.Store.Snapshot(), detailWidth))
			return nil
		},
	}
}

// resolveRuleID accepts a rule id or its reference number ("1.4.3").
// Unknown input is returned unchanged; callers decide whether that is
// acceptable.
func resolveRuleID(app *App, arg string) string {
	if app.Catalog.Contains(arg) {
		return arg
	}
	for _, g := range app.Catalog.All() {
		if g.RefID == arg {
			return g.ID
		}
	}
	return arg
}

package cli

import (
	"fmt"

	"github.com/alexanderramin/wcagcheck/internal/catalog"
	"github.com/alexanderramin/wcagcheck/internal/cli/formatter"
	"github.com/alexanderramin/wcagcheck/internal/domain"
	"github.com/spf13/cobra"
)

func newResourcesCmd(app *App) *cobra.Command {
	var lang domain.Language
	cmd := &cobra.Command{
		Use:   "resources",
		Short: "List accessibility testing tools and references",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if lang == "" {
				lang = app.Store.Snapshot().Language
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatResources(catalog.Resources(), lang))
			return nil
		},
	}
	addLanguageFlag(cmd.Flags(), &lang)
	return cmd
}

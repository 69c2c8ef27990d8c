package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/wcagcheck/internal/cli/formatter"
	"github.com/alexanderramin/wcagcheck/internal/domain"
	"github.com/spf13/cobra"
)

func newLevelCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:       "level A|AA|AAA...",
		Short:     "Toggle conformance level filters",
		Args:      cobra.MinimumNArgs(1),
		ValidArgs: []string{"A", "AA", "AAA"},
		RunE: func(cmd *cobra.Command, args []string) error {
			levels := make([]domain.Level, 0, len(args))
			for _, a := range args {
				l, err := domain.ParseLevel(a)
				if err != nil {
					return err
				}
				levels = append(levels, l)
			}
			ctx := context.Background()
			for _, l := range levels {
				if err := app.Store.ToggleLevel(ctx, l); err != nil {
					return err
				}
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatFilters(app.Store.Snapshot()))
			return nil
		},
	}
}

func newRoleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:       "role Design|Develop|Content...",
		Short:     "Toggle role filters",
		Args:      cobra.MinimumNArgs(1),
		ValidArgs: []string{"Design", "Develop", "Content"},
		RunE: func(cmd *cobra.Command, args []string) error {
			roles := make([]domain.Role, 0, len(args))
			for _, a := range args {
				r, err := domain.ParseRole(a)
				if err != nil {
					return err
				}
				roles = append(roles, r)
			}
			ctx := context.Background()
			for _, r := range roles {
				if err := app.Store.ToggleRole(ctx, r); err != nil {
					return err
				}
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatFilters(app.Store.Snapshot()))
			return nil
		},
	}
}

func newLangCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:       "lang [en|nl]",
		Short:     "Show or set the display language",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"en", "nl"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				l, err := domain.ParseLanguage(args[0])
				if err != nil {
					return err
				}
				if err := app.Store.SetLanguage(context.Background(), l); err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), app.Store.Snapshot().Language)
			return nil
		},
	}
}

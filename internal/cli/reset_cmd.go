package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newResetCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear every completion mark",
		Long:  "Clear every completion mark. Filters, language and label are kept.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				if !app.interactive() {
					return errors.New("reset needs --yes when not run from a terminal")
				}
				n := len(app.Store.Snapshot().CompletedIDs)
				if err := confirmForm(fmt.Sprintf("Clear %d completed rules?", n), &yes).Run(); err != nil {
					return err
				}
				if !yes {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}
			}

			app.Store.ResetCompletion(context.Background())
			fmt.Fprintln(cmd.OutOrStdout(), "Progress reset.")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")

	return cmd
}

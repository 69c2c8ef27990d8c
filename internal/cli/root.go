package cli

import (
	"time"

	"github.com/alexanderramin/wcagcheck/internal/catalog"
	"github.com/alexanderramin/wcagcheck/internal/projection"
	"github.com/alexanderramin/wcagcheck/internal/service"
	"github.com/alexanderramin/wcagcheck/internal/store"
	"github.com/spf13/cobra"
)

// App holds everything the commands and the TUI act on.
type App struct {
	Catalog *catalog.Catalog
	Memo    *projection.Memo
	Store   *store.Store
	Exports service.ExportService

	// ExportDir is the default --dir for exports.
	ExportDir string

	// IsInteractive reports whether stdin is a terminal. Prompts and the
	// default TUI are only used when it returns true.
	IsInteractive func() bool

	// Now is the clock used for relative timestamps. Nil means time.Now.
	Now func() time.Time
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) view() projection.View {
	return a.Memo.Build(a.Store.Snapshot())
}

// NewRootCmd creates the top-level "wcagcheck" command and registers all
// subcommands against the provided App. Without a subcommand it opens the
// checklist TUI on a terminal and prints help otherwise.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "wcagcheck",
		Short:         "Track WCAG 2.1 accessibility progress",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newStatusCmd(app),
		newListCmd(app),
		newShowCmd(app),
		newDoneCmd(app),
		newLevelCmd(app),
		newRoleCmd(app),
		newLangCmd(app),
		newLabelCmd(app),
		newResetCmd(app),
		newReportCmd(app),
		newExportCmd(app),
		newExportsCmd(app),
		newImportCmd(app),
		newResourcesCmd(app),
		newTUICmd(app),
	)

	return root
}

package cli

import (
	"fmt"

	"github.com/alexanderramin/wcagcheck/internal/cli/formatter"
	"github.com/alexanderramin/wcagcheck/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// languageFlag is a pflag.Value that only accepts supported languages.
type languageFlag struct {
	lang *domain.Language
}

var _ pflag.Value = languageFlag{}

func (f languageFlag) String() string {
	if f.lang == nil {
		return ""
	}
	return string(*f.lang)
}

func (f languageFlag) Set(s string) error {
	l, err := domain.ParseLanguage(s)
	if err != nil {
		return err
	}
	*f.lang = l
	return nil
}

func (languageFlag) Type() string { return "en|nl" }

func addLanguageFlag(fs *pflag.FlagSet, lang *domain.Language) {
	fs.Var(languageFlag{lang: lang}, "lang", "Display language for this command only")
}

func newListCmd(app *App) *cobra.Command {
	var all bool
	var lang domain.Language

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List rules matching the active filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st := app.Store.Snapshot()
			if lang != "" {
				st.Language = lang
			}

			rules := app.Memo.FilteredGuidelines(st)
			if all {
				rules = app.Catalog.All()
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatChecklist(rules, st))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Ignore level and role filters")
	addLanguageFlag(cmd.Flags(), &lang)

	return cmd
}

package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/wcagcheck/internal/domain"
	"github.com/alexanderramin/wcagcheck/internal/export"
	"github.com/alexanderramin/wcagcheck/internal/projection"
)

const (
	statusBarWidth = 20
	levelBarWidth  = 12
	titleMaxWidth  = 60
)

// FormatStatus renders the overall and per-level progress of a view.
func FormatStatus(v projection.View) string {
	lang := v.State.Language
	var b strings.Builder

	if v.State.Label != "" {
		fmt.Fprintf(&b, "%s: %s\n\n", domain.Translate(lang, domain.MsgWebsite), Bold(v.State.Label))
	}

	fmt.Fprintf(&b, "%s  %s  %s\n",
		Bold(domain.Translate(lang, domain.MsgProgress)),
		RenderProgress(v.Overall.Percent, statusBarWidth),
		Dim(fmt.Sprintf("(%d/%d)", v.Overall.Completed, v.Overall.Total)),
	)

	if len(v.ByLevel) > 0 {
		b.WriteString("\n")
		for _, ls := range v.ByLevel {
			fmt.Fprintf(&b, "  %s  %s  %s\n",
				LevelBadge(ls.Level),
				RenderProgress(ls.Percent, levelBarWidth),
				Dim(fmt.Sprintf("(%d/%d)", ls.Completed, ls.Total)),
			)
		}
	}

	b.WriteString("\n")
	b.WriteString(FormatFilters(v.State))
	return RenderBox(domain.Translate(lang, domain.MsgTitle), b.String())
}

// FormatFilters renders the level and role switches on one line each.
func FormatFilters(st domain.ProgressState) string {
	levels := make([]string, len(domain.Levels))
	for i, l := range domain.Levels {
		levels[i] = Toggle(string(l), st.ActiveLevels[l])
	}
	roles := make([]string, len(domain.Roles))
	for i, r := range domain.Roles {
		roles[i] = Toggle(string(r), st.ActiveRoles[r])
	}
	return fmt.Sprintf("%s  %s\n%s  %s\n",
		Dim(padRight(domain.Translate(st.Language, domain.MsgLevel), 8)), strings.Join(levels, "  "),
		Dim(padRight(domain.Translate(st.Language, domain.MsgRoles), 8)), strings.Join(roles, "  "),
	)
}

// FormatChecklist renders rules in the given order as a table with status
// marks. An empty list renders the translated empty-state message.
func FormatChecklist(rules []domain.Guideline, st domain.ProgressState) string {
	lang := st.Language
	if len(rules) == 0 {
		return Dim(domain.Translate(lang, domain.MsgNoRules)) + "\n"
	}

	cols := []Column{
		{Header: ""},
		{Header: "ID"},
		{Header: strings.ToUpper(domain.Translate(lang, domain.MsgRule)), MaxWidth: titleMaxWidth},
		{Header: strings.ToUpper(domain.Translate(lang, domain.MsgLevel))},
		{Header: "KEY"},
	}
	rows := make([][]string, 0, len(rules))
	for _, g := range rules {
		done := st.IsCompleted(g.ID)
		rows = append(rows, []string{
			StatusMark(done),
			g.RefID,
			StyleFg.Render(g.Title.In(lang)),
			LevelBadge(g.Level),
			Dim(g.ID),
		})
	}
	return RenderTable(cols, rows)
}

// FormatGuideline renders one rule with both descriptions wrapped to width.
func FormatGuideline(g domain.Guideline, st domain.ProgressState, width int) string {
	lang := st.Language
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s  %s\n", Bold(g.RefID), LevelBadge(g.Level), StatusText(lang, st.IsCompleted(g.ID)))
	fmt.Fprintf(&b, "%s\n\n", StyleHeader.Render(g.Title.In(lang)))

	roles := make([]string, len(g.Roles))
	for i, r := range g.Roles {
		roles[i] = string(r)
	}
	fmt.Fprintf(&b, "%s %s\n\n", Dim(domain.Translate(lang, domain.MsgRoles)+":"), strings.Join(roles, ", "))

	b.WriteString(Wrap(g.DescriptionSimplified.In(lang), width, 0))
	b.WriteString("\n\n")
	b.WriteString(Dim(domain.Translate(lang, domain.MsgOriginal)+":") + "\n")
	b.WriteString(Dim(Wrap(g.DescriptionOriginal.In(lang), width, 2)))
	b.WriteString("\n")

	if g.ReferenceURL != "" {
		fmt.Fprintf(&b, "\n%s %s\n", Dim(domain.Translate(lang, domain.MsgReference)+":"), StyleBlue.Render(g.ReferenceURL))
	}
	return b.String()
}

// FormatReport renders the report document as a terminal table.
func FormatReport(doc export.ReportDocument) string {
	var b strings.Builder
	b.WriteString(Header(doc.Title) + "\n")
	if doc.Website != "" {
		b.WriteString(doc.Website + "\n")
	}
	b.WriteString(Dim(doc.Date) + "\n\n")
	b.WriteString(Bold(doc.Summary) + "\n\n")

	cols := []Column{
		{Header: doc.Columns[0]},
		{Header: doc.Columns[1], MaxWidth: titleMaxWidth},
		{Header: doc.Columns[2]},
		{Header: doc.Columns[3]},
	}
	rows := make([][]string, len(doc.Rows))
	for i, r := range doc.Rows {
		status := StyleRed.Render(r.Status)
		if r.Completed {
			status = StyleGreen.Render(r.Status)
		}
		rows[i] = []string{r.RefID, r.Title, LevelBadge(r.Level), status}
	}
	b.WriteString(RenderTable(cols, rows))
	return b.String()
}

// FormatExports renders export history, newest first.
func FormatExports(records []*domain.ExportRecord, now time.Time) string {
	if len(records) == 0 {
		return Dim("No exports yet.") + "\n"
	}
	cols := []Column{
		{Header: "WHEN"},
		{Header: "KIND"},
		{Header: "PROGRESS"},
		{Header: "LABEL", MaxWidth: 24},
		{Header: "PATH"},
	}
	rows := make([][]string, len(records))
	for i, r := range records {
		label := r.Label
		if label == "" {
			label = Dim("--")
		}
		rows[i] = []string{
			HumanTimestamp(r.CreatedAt, now),
			strings.ToUpper(string(r.Kind)),
			fmt.Sprintf("%d%% (%d/%d)", projection.Percent(r.Completed, r.Total), r.Completed, r.Total),
			label,
			Dim(r.Path),
		}
	}
	return RenderTable(cols, rows)
}

func padRight(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return s + strings.Repeat(" ", n-len(s))
}

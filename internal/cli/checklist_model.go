package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/wcagcheck/internal/cli/formatter"
	"github.com/alexanderramin/wcagcheck/internal/domain"
	"github.com/alexanderramin/wcagcheck/internal/projection"
	"github.com/alexanderramin/wcagcheck/internal/service"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/truncate"
)

// chromeLines is the number of lines around the rule list: title, progress,
// two filter lines, a blank, the flash line and help.
const chromeLines = 8

// stateChangedMsg follows every store mutation made from the TUI.
type stateChangedMsg struct{ err error }

// exportDoneMsg reports the outcome of an export started from the TUI.
type exportDoneMsg struct {
	res *service.ExportResult
	err error
}

// checklistModel is the bubbletea model for the interactive checklist.
type checklistModel struct {
	app  *App
	keys checklistKeyMap
	help help.Model

	label   textinput.Model
	editing bool

	view   projection.View
	cursor int
	offset int

	width  int
	height int

	flash    string
	err      error
	quitting bool
}

func newChecklistModel(app *App) checklistModel {
	ti := textinput.New()
	ti.Prompt = "Label: "
	ti.Placeholder = "example.org"
	ti.CharLimit = 120

	m := checklistModel{
		app:   app,
		keys:  newChecklistKeyMap(),
		help:  help.New(),
		label: ti,
	}
	m.refresh()
	return m
}

func runTUI(app *App) error {
	_, err := tea.NewProgram(newChecklistModel(app), tea.WithAltScreen()).Run()
	return err
}

func (m checklistModel) Init() tea.Cmd { return nil }

func (m *checklistModel) refresh() {
	m.view = m.app.view()
	if m.cursor >= len(m.view.Filtered) {
		m.cursor = max(len(m.view.Filtered)-1, 0)
	}
	m.scrollToCursor()
}

func (m *checklistModel) current() (domain.Guideline, bool) {
	if m.cursor < 0 || m.cursor >= len(m.view.Filtered) {
		return domain.Guideline{}, false
	}
	return m.view.Filtered[m.cursor], true
}

func (m *checklistModel) listHeight() int {
	if m.height <= 0 {
		return len(m.view.Filtered)
	}
	return max(m.height-chromeLines, 1)
}

func (m *checklistModel) scrollToCursor() {
	h := m.listHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
	m.offset = max(min(m.offset, len(m.view.Filtered)-h), 0)
}

// mutate applies fn to the store and reports back with stateChangedMsg.
func (m checklistModel) mutate(fn func(ctx context.Context) error) tea.Cmd {
	return func() tea.Msg {
		return stateChangedMsg{err: fn(context.Background())}
	}
}

func (m checklistModel) runExport(kind domain.ExportKind) tea.Cmd {
	app := m.app
	return func() tea.Msg {
		ctx := context.Background()
		if kind == domain.ExportPDF {
			res, err := app.Exports.ExportReport(ctx, app.ExportDir)
			return exportDoneMsg{res: res, err: err}
		}
		res, err := app.Exports.ExportSnapshot(ctx, app.ExportDir)
		return exportDoneMsg{res: res, err: err}
	}
}

func (m checklistModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.scrollToCursor()
		return m, nil

	case stateChangedMsg:
		m.err = msg.err
		m.refresh()
		return m, nil

	case exportDoneMsg:
		m.err = msg.err
		if msg.res != nil {
			m.flash = "Wrote " + msg.res.Record.Path
		}
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateLabel(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m checklistModel) updateLabel(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		value := strings.TrimSpace(m.label.Value())
		m.editing = false
		m.label.Blur()
		store := m.app.Store
		return m, m.mutate(func(ctx context.Context) error {
			store.SetLabel(ctx, value)
			return nil
		})
	case tea.KeyEsc:
		m.editing = false
		m.label.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.label, cmd = m.label.Update(msg)
	return m, cmd
}

func (m checklistModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.flash = ""
	store := m.app.Store
	st := m.view.State

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		m.scrollToCursor()

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.view.Filtered)-1 {
			m.cursor++
		}
		m.scrollToCursor()

	case key.Matches(msg, m.keys.Toggle):
		if g, ok := m.current(); ok {
			return m, m.mutate(func(ctx context.Context) error {
				store.ToggleCompletion(ctx, g.ID)
				return nil
			})
		}

	case key.Matches(msg, m.keys.Expand):
		if g, ok := m.current(); ok {
			next := g.ID
			if projection.IsExpanded(st, g.ID) {
				next = ""
			}
			return m, m.mutate(func(ctx context.Context) error {
				store.SetExpanded(ctx, next)
				return nil
			})
		}

	case key.Matches(msg, m.keys.LevelA):
		return m, m.mutate(func(ctx context.Context) error { return store.ToggleLevel(ctx, domain.LevelA) })
	case key.Matches(msg, m.keys.LevelAA):
		return m, m.mutate(func(ctx context.Context) error { return store.ToggleLevel(ctx, domain.LevelAA) })
	case key.Matches(msg, m.keys.LevelAAA):
		return m, m.mutate(func(ctx context.Context) error { return store.ToggleLevel(ctx, domain.LevelAAA) })

	case key.Matches(msg, m.keys.Design):
		return m, m.mutate(func(ctx context.Context) error { return store.ToggleRole(ctx, domain.RoleDesign) })
	case key.Matches(msg, m.keys.Develop):
		return m, m.mutate(func(ctx context.Context) error { return store.ToggleRole(ctx, domain.RoleDevelop) })
	case key.Matches(msg, m.keys.Content):
		return m, m.mutate(func(ctx context.Context) error { return store.ToggleRole(ctx, domain.RoleContent) })

	case key.Matches(msg, m.keys.Language):
		next := st.Language.Other()
		return m, m.mutate(func(ctx context.Context) error { return store.SetLanguage(ctx, next) })

	case key.Matches(msg, m.keys.Label):
		m.editing = true
		m.label.SetValue(st.Label)
		m.label.CursorEnd()
		return m, m.label.Focus()

	case key.Matches(msg, m.keys.ExportJSON):
		return m, m.runExport(domain.ExportJSON)
	case key.Matches(msg, m.keys.ExportPDF):
		return m, m.runExport(domain.ExportPDF)

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m checklistModel) View() string {
	if m.quitting {
		return ""
	}
	st := m.view.State
	lang := st.Language
	var b strings.Builder

	title := formatter.StyleHeader.Render(domain.Translate(lang, domain.MsgTitle))
	if st.Label != "" {
		title += "  " + formatter.Bold(st.Label)
	}
	title += "  " + formatter.Dim("["+strings.ToUpper(string(lang))+"]")
	b.WriteString(title + "\n")

	fmt.Fprintf(&b, "%s %s %s\n",
		domain.Translate(lang, domain.MsgProgress),
		formatter.RenderProgress(m.view.Overall.Percent, 24),
		formatter.Dim(fmt.Sprintf("(%d/%d)", m.view.Overall.Completed, m.view.Overall.Total)),
	)
	b.WriteString(formatter.FormatFilters(st))
	b.WriteString("\n")

	if len(m.view.Filtered) == 0 {
		b.WriteString(formatter.Dim(domain.Translate(lang, domain.MsgNoRules)) + "\n")
	} else {
		end := min(m.offset+m.listHeight(), len(m.view.Filtered))
		for i := m.offset; i < end; i++ {
			b.WriteString(m.renderRow(i))
		}
	}

	switch {
	case m.editing:
		b.WriteString("\n" + m.label.View() + "\n")
	case m.err != nil:
		b.WriteString("\n" + formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n")
	case m.flash != "":
		b.WriteString("\n" + formatter.StyleGreen.Render(m.flash) + "\n")
	default:
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m checklistModel) renderRow(i int) string {
	g := m.view.Filtered[i]
	st := m.view.State

	pointer := "  "
	if i == m.cursor {
		pointer = formatter.StyleHeader.Render("› ")
	}
	title := g.Title.In(st.Language)
	if m.width > 0 {
		title = truncate.StringWithTail(title, uint(max(m.width-20, 10)), "…")
	}
	line := fmt.Sprintf("%s%s %-7s %s %s\n",
		pointer, formatter.StatusMark(st.IsCompleted(g.ID)), g.RefID, formatter.LevelBadge(g.Level), title)

	if !projection.IsExpanded(st, g.ID) {
		return line
	}
	width := m.width
	if width <= 0 {
		width = detailWidth
	}
	detail := formatter.Wrap(g.DescriptionSimplified.In(st.Language), width, 6)
	if g.ReferenceURL != "" {
		detail += "\n" + formatter.Wrap(g.ReferenceURL, width, 6)
	}
	return line + formatter.Dim(detail) + "\n"
}

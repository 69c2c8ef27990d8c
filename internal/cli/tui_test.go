package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexanderramin/wcagcheck/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTUI_InitialView(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	assert.Equal(t, 50, d.Rows())
	assert.Equal(t, "non-text-content", d.Selected())

	view := d.View()
	assert.Contains(t, view, "WCAG Checklist")
	assert.Contains(t, view, "(0/50)")
	assert.Contains(t, view, "Non-text Content")
	assert.Contains(t, view, "[EN]")
}

func TestTUI_CursorMovesAndClamps(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.Keys("up")
	assert.Equal(t, 0, d.Cursor())

	d.Keys("down", "j", "down")
	assert.Equal(t, 3, d.Cursor())

	d.Keys("k")
	assert.Equal(t, 2, d.Cursor())

	for range 100 {
		d.Keys("down")
	}
	assert.Equal(t, 49, d.Cursor())
}

func TestTUI_ScrollsSelectedRowIntoView(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	for range 45 {
		d.Keys("down")
	}
	sel, ok := app.Catalog.Lookup(d.Selected())
	require.True(t, ok)
	assert.Contains(t, d.View(), sel.Title.In(domain.LangEN))
	assert.NotContains(t, d.View(), "Non-text Content")
}

func TestTUI_SpaceTogglesCompletion(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.Keys("space")
	assert.True(t, app.Store.Snapshot().IsCompleted("non-text-content"))
	assert.Contains(t, d.View(), "(1/50)")

	d.Keys("space")
	assert.False(t, app.Store.Snapshot().IsCompleted("non-text-content"))
	assert.Contains(t, d.View(), "(0/50)")
}

func TestTUI_EnterExpandsAndCollapses(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.Keys("enter")
	assert.Equal(t, "non-text-content", app.Store.Snapshot().ExpandedID)
	assert.Contains(t, d.View(), "icons,")

	d.Keys("enter")
	assert.Empty(t, app.Store.Snapshot().ExpandedID)
	assert.NotContains(t, d.View(), "icons,")
}

func TestTUI_LevelKeysFilterRows(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.Keys("3")
	assert.True(t, d.State().ActiveLevels[domain.LevelAAA])
	assert.Equal(t, app.Catalog.Len(), d.Rows())

	d.Keys("1", "2", "3")
	assert.Equal(t, 0, d.Rows())
	assert.Equal(t, "", d.Selected())
	assert.Contains(t, d.View(), "No rules match the current filters.")
}

func TestTUI_CursorClampsWhenListShrinks(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	for range 49 {
		d.Keys("down")
	}
	d.Keys("2")
	assert.Less(t, d.Cursor(), d.Rows())
	assert.Equal(t, d.Rows()-1, d.Cursor())
}

func TestTUI_RoleKeys(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.Keys("d", "v")
	assert.Equal(t, []domain.Role{domain.RoleContent}, app.Store.Snapshot().RoleList())
	for _, g := range d.model().view.Filtered {
		assert.Contains(t, g.Roles, domain.RoleContent)
	}

	d.Keys("c")
	assert.Equal(t, 0, d.Rows())
}

func TestTUI_LanguageSwitch(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.Keys("L")
	assert.Equal(t, domain.LangNL, app.Store.Snapshot().Language)
	view := d.View()
	assert.Contains(t, view, "Voortgang")
	assert.Contains(t, view, "Niet-tekstuele content")
	assert.Contains(t, view, "[NL]")

	d.Keys("L")
	assert.Equal(t, domain.LangEN, app.Store.Snapshot().Language)
}

func TestTUI_EditLabel(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.Keys("n")
	require.True(t, d.Editing())
	d.Type("Acme")
	d.Keys("enter")

	assert.False(t, d.Editing())
	assert.Equal(t, "Acme", app.Store.Snapshot().Label)
	assert.Contains(t, d.View(), "Acme")
}

func TestTUI_EditLabelEscKeepsOldValue(t *testing.T) {
	app := testApp(t)
	app.Store.SetLabel(context.Background(), "Old")
	d := NewTestDriver(t, app)

	d.Keys("n")
	d.Type("New")
	d.Keys("esc")

	assert.False(t, d.Editing())
	assert.Equal(t, "Old", app.Store.Snapshot().Label)
}

func TestTUI_KeysWhileEditingGoToInput(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.Keys("n")
	d.Type("q1")
	assert.False(t, d.Quit)
	assert.True(t, app.Store.Snapshot().ActiveLevels[domain.LevelA])
	d.Keys("enter")
	assert.Equal(t, "q1", app.Store.Snapshot().Label)
}

func TestTUI_ExportJSON(t *testing.T) {
	app := testApp(t)
	app.Store.SetLabel(context.Background(), "Acme")
	d := NewTestDriver(t, app)

	d.Keys("e")
	path := filepath.Join(app.ExportDir, "Acme-export.json")
	assert.FileExists(t, path)
	assert.Contains(t, d.View(), "Wrote "+path)
}

func TestTUI_ExportPDF(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.Keys("p")
	path := filepath.Join(app.ExportDir, "wcag-checklist-checklist.pdf")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF-"))
}

func TestTUI_HelpToggle(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	assert.NotContains(t, d.View(), "export pdf")
	d.Keys("?")
	assert.Contains(t, d.View(), "export pdf")
}

func TestTUI_Quit(t *testing.T) {
	for _, k := range []string{"q", "ctrl+c"} {
		t.Run(k, func(t *testing.T) {
			app := testApp(t)
			d := NewTestDriver(t, app)
			d.Keys(k)
			assert.True(t, d.Quit)
		})
	}
}

func TestTUI_ResizeShrinksWindow(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.Send(tea.WindowSizeMsg{Width: 80, Height: 12})
	lines := strings.Count(d.View(), "\n")
	assert.LessOrEqual(t, lines, 14)
}

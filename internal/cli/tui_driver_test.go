package cli

import (
	"testing"
	"time"

	"github.com/alexanderramin/wcagcheck/internal/domain"
	"github.com/alexanderramin/wcagcheck/internal/teatest"
)

// TestDriver wraps teatest.Driver with access to checklistModel internals.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver builds the checklist model over app at 100x40.
func NewTestDriver(t *testing.T, app *App, opts ...teatest.Option) *TestDriver {
	t.Helper()
	base := []teatest.Option{teatest.WithSize(100, 40), teatest.WithCmdTimeout(2 * time.Second)}
	d := teatest.New(t, newChecklistModel(app), append(base, opts...)...)
	return &TestDriver{Driver: d}
}

func (d *TestDriver) model() checklistModel {
	return d.Model.(checklistModel)
}

// Cursor returns the selected row index.
func (d *TestDriver) Cursor() int {
	return d.model().cursor
}

// Selected returns the id of the selected rule, or "" for an empty list.
func (d *TestDriver) Selected() string {
	m := d.model()
	g, ok := m.current()
	if !ok {
		return ""
	}
	return g.ID
}

// Rows returns the number of rules in the filtered view.
func (d *TestDriver) Rows() int {
	return len(d.model().view.Filtered)
}

// State returns the state the model last rendered from.
func (d *TestDriver) State() domain.ProgressState {
	return d.model().view.State
}

// Editing reports whether the label input has focus.
func (d *TestDriver) Editing() bool {
	return d.model().editing
}

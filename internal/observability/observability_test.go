package observability

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogObserver_ErrorsLoggedAtErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
	obs := NewLogObserver(logger)

	obs.Observe(context.Background(), Event{Name: "store.persist", Success: true})
	assert.Empty(t, buf.String(), "success events are debug level")

	obs.Observe(context.Background(), Event{
		Name:   "store.persist",
		Err:    errors.New("disk full"),
		Fields: map[string]any{"key": "wcag-app-storage"},
	})
	out := buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "op=store.persist")
	assert.Contains(t, out, `error="disk full"`)
	assert.Contains(t, out, "key=wcag-app-storage")
}

func TestNewLogObserver_NilLoggerIsNoop(t *testing.T) {
	assert.IsType(t, Noop{}, NewLogObserver(nil))
}

type countingObserver struct{ events []Event }

func (c *countingObserver) Observe(_ context.Context, e Event) { c.events = append(c.events, e) }

func TestOrNoop(t *testing.T) {
	assert.IsType(t, Noop{}, OrNoop())
	assert.IsType(t, Noop{}, OrNoop(nil))

	c := &countingObserver{}
	assert.Same(t, c, OrNoop(nil, c))
}

func TestTrack_ReportsOutcome(t *testing.T) {
	c := &countingObserver{}
	done := Track(context.Background(), c, "export.snapshot")
	done(nil, map[string]any{"path": "x.json"})

	fail := Track(context.Background(), c, "export.report")
	fail(errors.New("boom"), nil)

	if assert.Len(t, c.events, 2) {
		assert.Equal(t, "export.snapshot", c.events[0].Name)
		assert.True(t, c.events[0].Success)
		assert.Equal(t, "x.json", c.events[0].Fields["path"])
		assert.False(t, c.events[1].Success)
		assert.EqualError(t, c.events[1].Err, "boom")
		assert.False(t, c.events[1].StartedAt.IsZero())
	}
}

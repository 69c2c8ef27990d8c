// Package observability carries lightweight operation telemetry from the
// store and export services to a logging collaborator.
package observability

import (
	"context"
	"log/slog"
	"time"
)

// Event captures the outcome of one operation.
type Event struct {
	Name      string
	Duration  time.Duration
	Success   bool
	Err       error
	Fields    map[string]any
	StartedAt time.Time
}

// Observer receives operation events.
type Observer interface {
	Observe(ctx context.Context, event Event)
}

// Noop ignores all events.
type Noop struct{}

func (Noop) Observe(context.Context, Event) {}

type logObserver struct {
	logger *slog.Logger
}

// NewLogObserver writes events to logger. Failures are logged at error level,
// successes at debug so a default warn-level logger stays quiet.
func NewLogObserver(logger *slog.Logger) Observer {
	if logger == nil {
		return Noop{}
	}
	return &logObserver{logger: logger}
}

func (o *logObserver) Observe(ctx context.Context, event Event) {
	attrs := make([]any, 0, 6+len(event.Fields)*2)
	attrs = append(attrs,
		"op", event.Name,
		"duration_ms", event.Duration.Milliseconds(),
		"success", event.Success,
	)
	for k, v := range event.Fields {
		attrs = append(attrs, k, v)
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.ErrorContext(ctx, "operation", attrs...)
		return
	}
	o.logger.DebugContext(ctx, "operation", attrs...)
}

// OrNoop returns the first non-nil observer, or Noop.
func OrNoop(observers ...Observer) Observer {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return Noop{}
}

// Track starts timing an operation. Call the returned function with the
// final error (nil on success) and any extra fields.
func Track(ctx context.Context, obs Observer, name string) func(err error, fields map[string]any) {
	started := time.Now()
	return func(err error, fields map[string]any) {
		obs.Observe(ctx, Event{
			Name:      name,
			Duration:  time.Since(started),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
			StartedAt: started,
		})
	}
}

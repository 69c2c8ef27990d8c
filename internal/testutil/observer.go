package testutil

import (
	"context"
	"sync"

	"github.com/alexanderramin/wcagcheck/internal/observability"
)

// RecordingObserver collects every event it receives.
type RecordingObserver struct {
	mu     sync.Mutex
	events []observability.Event
}

func (r *RecordingObserver) Observe(_ context.Context, e observability.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

// Events returns a copy of the recorded events.
func (r *RecordingObserver) Events() []observability.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]observability.Event(nil), r.events...)
}

// Failures returns the recorded events that carry an error.
func (r *RecordingObserver) Failures() []observability.Event {
	var out []observability.Event
	for _, e := range r.Events() {
		if e.Err != nil {
			out = append(out, e)
		}
	}
	return out
}

// Package store owns the checklist ProgressState. Every mutation goes through
// a Store method, is applied in memory, and is then written through to the
// Persister before the method returns. A failed write never rolls back the
// in-memory change; it is reported to the observer instead.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/alexanderramin/wcagcheck/internal/domain"
	"github.com/alexanderramin/wcagcheck/internal/observability"
	"github.com/alexanderramin/wcagcheck/internal/repository"
)

// Store is the single writer of ProgressState.
type Store struct {
	// mu is held across the in-memory update and the write, so writes reach
	// the Persister in the order mutations were submitted.
	mu        sync.Mutex
	state     domain.ProgressState
	persister Persister
	observer  observability.Observer
}

// Option configures a Store.
type Option func(*Store)

// WithObserver routes persistence outcomes to obs.
func WithObserver(obs observability.Observer) Option {
	return func(s *Store) { s.observer = observability.OrNoop(obs) }
}

// New loads the persisted state, or the defaults when nothing was saved or
// the saved value cannot be read. Load problems go to the observer.
func New(ctx context.Context, p Persister, opts ...Option) *Store {
	if p == nil {
		p = NopPersister{}
	}
	s := &Store{
		persister: p,
		observer:  observability.Noop{},
	}
	for _, opt := range opts {
		opt(s)
	}

	done := observability.Track(ctx, s.observer, "store.load")
	st, notes, err := p.Load(ctx)
	switch {
	case err == nil:
		s.state = st.Clone()
		done(nil, loadFields(notes))
	case errors.Is(err, repository.ErrNotFound):
		s.state = domain.DefaultProgressState()
		done(nil, map[string]any{"defaults": true})
	default:
		s.state = domain.DefaultProgressState()
		done(err, map[string]any{"defaults": true})
	}
	return s
}

func loadFields(notes []string) map[string]any {
	if len(notes) == 0 {
		return nil
	}
	return map[string]any{"dropped": strings.Join(notes, "; ")}
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() domain.ProgressState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// SetLanguage replaces the display language.
func (s *Store) SetLanguage(ctx context.Context, lang domain.Language) error {
	if !lang.Valid() {
		return fmt.Errorf("set language %q: %w", lang, domain.ErrInvalidArgument)
	}
	s.mutate(ctx, "store.set_language", func(st *domain.ProgressState) {
		st.Language = lang
	})
	return nil
}

// ToggleLevel adds level to the active levels, or removes it if present.
func (s *Store) ToggleLevel(ctx context.Context, level domain.Level) error {
	if !level.Valid() {
		return fmt.Errorf("toggle level %q: %w", level, domain.ErrInvalidArgument)
	}
	s.mutate(ctx, "store.toggle_level", func(st *domain.ProgressState) {
		if st.ActiveLevels[level] {
			delete(st.ActiveLevels, level)
		} else {
			st.ActiveLevels[level] = true
		}
	})
	return nil
}

// ToggleRole adds role to the active roles, or removes it if present.
func (s *Store) ToggleRole(ctx context.Context, role domain.Role) error {
	if !role.Valid() {
		return fmt.Errorf("toggle role %q: %w", role, domain.ErrInvalidArgument)
	}
	s.mutate(ctx, "store.toggle_role", func(st *domain.ProgressState) {
		if st.ActiveRoles[role] {
			delete(st.ActiveRoles, role)
		} else {
			st.ActiveRoles[role] = true
		}
	})
	return nil
}

// ToggleCompletion marks id complete, or clears the mark if present.
// The id is not checked against the catalog. An empty id is ignored.
func (s *Store) ToggleCompletion(ctx context.Context, id string) {
	if id == "" {
		return
	}
	s.mutate(ctx, "store.toggle_completion", func(st *domain.ProgressState) {
		if st.CompletedIDs[id] {
			delete(st.CompletedIDs, id)
		} else {
			st.CompletedIDs[id] = true
		}
	})
}

// SetExpanded replaces the expanded guideline id. Empty collapses.
func (s *Store) SetExpanded(ctx context.Context, id string) {
	s.mutate(ctx, "store.set_expanded", func(st *domain.ProgressState) {
		st.ExpandedID = id
	})
}

// SetLabel replaces the free-text label.
func (s *Store) SetLabel(ctx context.Context, label string) {
	s.mutate(ctx, "store.set_label", func(st *domain.ProgressState) {
		st.Label = label
	})
}

// ResetCompletion clears every completion mark. Filters, language and label
// are left alone.
func (s *Store) ResetCompletion(ctx context.Context) {
	s.mutate(ctx, "store.reset_completion", func(st *domain.ProgressState) {
		st.CompletedIDs = map[string]bool{}
	})
}

// RestoreInput is the subset of state carried by a snapshot document.
type RestoreInput struct {
	Label        string
	CompletedIDs []string
	ActiveLevels []domain.Level
	ActiveRoles  []domain.Role
}

// Restore replaces label, completion marks and filters in one mutation.
// Language and the expanded id are kept.
func (s *Store) Restore(ctx context.Context, in RestoreInput) error {
	for _, l := range in.ActiveLevels {
		if !l.Valid() {
			return fmt.Errorf("restore level %q: %w", l, domain.ErrInvalidArgument)
		}
	}
	for _, r := range in.ActiveRoles {
		if !r.Valid() {
			return fmt.Errorf("restore role %q: %w", r, domain.ErrInvalidArgument)
		}
	}
	s.mutate(ctx, "store.restore", func(st *domain.ProgressState) {
		st.Label = in.Label
		st.ActiveLevels = make(map[domain.Level]bool, len(in.ActiveLevels))
		for _, l := range in.ActiveLevels {
			st.ActiveLevels[l] = true
		}
		st.ActiveRoles = make(map[domain.Role]bool, len(in.ActiveRoles))
		for _, r := range in.ActiveRoles {
			st.ActiveRoles[r] = true
		}
		st.CompletedIDs = make(map[string]bool, len(in.CompletedIDs))
		for _, id := range in.CompletedIDs {
			if id != "" {
				st.CompletedIDs[id] = true
			}
		}
	})
	return nil
}

func (s *Store) mutate(ctx context.Context, op string, fn func(*domain.ProgressState)) {
	s.mu.Lock()
	fn(&s.state)
	snap := s.state.Clone()

	done := observability.Track(ctx, s.observer, "store.persist")
	err := s.persister.Save(ctx, snap)
	s.mu.Unlock()
	done(err, map[string]any{"mutation": op})
}

package store

import (
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/wcagcheck/internal/domain"
)

// persistedState is the on-disk layout under StorageKey. Field names are
// fixed; expandedId is intentionally absent.
type persistedState struct {
	Language       string   `json:"language"`
	ActiveLevels   []string `json:"activeLevels"`
	ActiveRoles    []string `json:"activeRoles"`
	CompletedRules []string `json:"completedRules"`
	WebsiteName    string   `json:"websiteName"`
}

// legacyEnvelope is the {"state": ..., "version": n} wrapper written by
// older releases of the checklist.
type legacyEnvelope struct {
	State   *persistedState `json:"state"`
	Version int             `json:"version"`
}

// EncodeState serializes st into the persisted layout. Lists are emitted in
// a stable order: levels by severity, roles in display order, ids sorted.
func EncodeState(st domain.ProgressState) ([]byte, error) {
	ps := persistedState{
		Language:       string(st.Language),
		ActiveLevels:   make([]string, 0, len(st.ActiveLevels)),
		ActiveRoles:    make([]string, 0, len(st.ActiveRoles)),
		CompletedRules: st.CompletedList(),
		WebsiteName:    st.Label,
	}
	for _, l := range st.LevelList() {
		ps.ActiveLevels = append(ps.ActiveLevels, string(l))
	}
	for _, r := range st.RoleList() {
		ps.ActiveRoles = append(ps.ActiveRoles, string(r))
	}
	data, err := json.Marshal(ps)
	if err != nil {
		return nil, fmt.Errorf("encoding progress state: %w", err)
	}
	return data, nil
}

// DecodeState parses a persisted value. Fields absent from the document keep
// their defaults. Values outside the closed enumerations are dropped and
// described in the returned notes; duplicate ids collapse to one.
func DecodeState(data []byte) (domain.ProgressState, []string, error) {
	st := domain.DefaultProgressState()

	var env legacyEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return st, nil, fmt.Errorf("decoding progress state: %w", err)
	}
	var ps persistedState
	if env.State != nil {
		ps = *env.State
	} else if err := json.Unmarshal(data, &ps); err != nil {
		return st, nil, fmt.Errorf("decoding progress state: %w", err)
	}

	var notes []string

	if ps.Language != "" {
		if lang, err := domain.ParseLanguage(ps.Language); err == nil {
			st.Language = lang
		} else {
			notes = append(notes, fmt.Sprintf("unknown language %q, using %q", ps.Language, st.Language))
		}
	}

	if ps.ActiveLevels != nil {
		st.ActiveLevels = make(map[domain.Level]bool, len(ps.ActiveLevels))
		for _, s := range ps.ActiveLevels {
			l, err := domain.ParseLevel(s)
			if err != nil {
				notes = append(notes, fmt.Sprintf("dropped unknown level %q", s))
				continue
			}
			st.ActiveLevels[l] = true
		}
	}

	if ps.ActiveRoles != nil {
		st.ActiveRoles = make(map[domain.Role]bool, len(ps.ActiveRoles))
		for _, s := range ps.ActiveRoles {
			r, err := domain.ParseRole(s)
			if err != nil {
				notes = append(notes, fmt.Sprintf("dropped unknown role %q", s))
				continue
			}
			st.ActiveRoles[r] = true
		}
	}

	for _, id := range ps.CompletedRules {
		if id == "" {
			continue
		}
		st.CompletedIDs[id] = true
	}

	st.Label = ps.WebsiteName
	return st, notes, nil
}

package domain

import "sort"

// ProgressState is the full mutable checklist state: filters, completion
// marks, language and the free-text label. The maps hold only true values.
type ProgressState struct {
	Language     Language
	ActiveLevels map[Level]bool
	ActiveRoles  map[Role]bool
	CompletedIDs map[string]bool
	// ExpandedID is the guideline shown in detail view; empty means none.
	ExpandedID string
	Label      string
}

// DefaultProgressState returns the state used when nothing was persisted.
func DefaultProgressState() ProgressState {
	return ProgressState{
		Language:     LangEN,
		ActiveLevels: map[Level]bool{LevelA: true, LevelAA: true},
		ActiveRoles:  map[Role]bool{RoleDesign: true, RoleDevelop: true, RoleContent: true},
		CompletedIDs: map[string]bool{},
	}
}

// Clone returns a deep copy that shares no maps with s.
func (s ProgressState) Clone() ProgressState {
	out := s
	out.ActiveLevels = make(map[Level]bool, len(s.ActiveLevels))
	for k, v := range s.ActiveLevels {
		if v {
			out.ActiveLevels[k] = true
		}
	}
	out.ActiveRoles = make(map[Role]bool, len(s.ActiveRoles))
	for k, v := range s.ActiveRoles {
		if v {
			out.ActiveRoles[k] = true
		}
	}
	out.CompletedIDs = make(map[string]bool, len(s.CompletedIDs))
	for k, v := range s.CompletedIDs {
		if v {
			out.CompletedIDs[k] = true
		}
	}
	return out
}

func (s ProgressState) IsCompleted(id string) bool { return s.CompletedIDs[id] }

// LevelList returns the active levels in ascending severity order.
func (s ProgressState) LevelList() []Level {
	out := make([]Level, 0, len(s.ActiveLevels))
	for _, l := range Levels {
		if s.ActiveLevels[l] {
			out = append(out, l)
		}
	}
	return out
}

// RoleList returns the active roles in display order.
func (s ProgressState) RoleList() []Role {
	out := make([]Role, 0, len(s.ActiveRoles))
	for _, r := range Roles {
		if s.ActiveRoles[r] {
			out = append(out, r)
		}
	}
	return out
}

// CompletedList returns the completed ids sorted lexically. The empty id is
// never listed.
func (s ProgressState) CompletedList() []string {
	out := make([]string, 0, len(s.CompletedIDs))
	for id, ok := range s.CompletedIDs {
		if ok && id != "" {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}

// Package projection derives what is visible and what is counted from the
// catalog and a ProgressState snapshot. Every function is pure.
package projection

import (
	"github.com/alexanderramin/wcagcheck/internal/catalog"
	"github.com/alexanderramin/wcagcheck/internal/domain"
)

// Stats is a completion count over a set of guidelines.
type Stats struct {
	Completed int
	Total     int
	Percent   int
}

// LevelStats is Stats restricted to one level.
type LevelStats struct {
	Level domain.Level
	Stats
}

// FilteredGuidelines returns, in catalog order, the guidelines whose level is
// active and which share at least one role with the active roles. An empty
// level or role filter yields an empty result.
func FilteredGuidelines(c *catalog.Catalog, st domain.ProgressState) []domain.Guideline {
	if len(st.ActiveLevels) == 0 || len(st.ActiveRoles) == 0 {
		return []domain.Guideline{}
	}
	out := make([]domain.Guideline, 0, c.Len())
	for _, g := range c.All() {
		if st.ActiveLevels[g.Level] && g.HasAnyRole(st.ActiveRoles) {
			out = append(out, g)
		}
	}
	return out
}

// ProgressStats counts the filtered guidelines whose id is completed.
func ProgressStats(filtered []domain.Guideline, completed map[string]bool) Stats {
	s := Stats{Total: len(filtered)}
	for _, g := range filtered {
		if completed[g.ID] {
			s.Completed++
		}
	}
	s.Percent = Percent(s.Completed, s.Total)
	return s
}

// PerLevelStats returns one entry per level in levels, ordered A, AA, AAA.
// A level with no filtered guidelines reports zero counts.
func PerLevelStats(filtered []domain.Guideline, completed map[string]bool, levels map[domain.Level]bool) []LevelStats {
	out := make([]LevelStats, 0, len(levels))
	for _, l := range domain.Levels {
		if !levels[l] {
			continue
		}
		var subset []domain.Guideline
		for _, g := range filtered {
			if g.Level == l {
				subset = append(subset, g)
			}
		}
		out = append(out, LevelStats{Level: l, Stats: ProgressStats(subset, completed)})
	}
	return out
}

// Percent is round(100*completed/total) with halves rounded up; zero when
// total is zero.
func Percent(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return (200*completed + total) / (2 * total)
}

// IsExpanded reports whether id is the guideline shown in detail view.
func IsExpanded(st domain.ProgressState, id string) bool {
	return id != "" && st.ExpandedID == id
}

// ExpandedGuideline resolves the expanded id against the catalog. A dangling
// id resolves to not found.
func ExpandedGuideline(c *catalog.Catalog, st domain.ProgressState) (domain.Guideline, bool) {
	if st.ExpandedID == "" {
		return domain.Guideline{}, false
	}
	return c.Lookup(st.ExpandedID)
}

// View bundles everything a screen or export needs from one snapshot.
type View struct {
	State    domain.ProgressState
	Filtered []domain.Guideline
	Overall  Stats
	ByLevel  []LevelStats
}

// Build computes a View from the catalog and a snapshot.
func Build(c *catalog.Catalog, st domain.ProgressState) View {
	filtered := FilteredGuidelines(c, st)
	return newView(st, filtered)
}

func newView(st domain.ProgressState, filtered []domain.Guideline) View {
	return View{
		State:    st,
		Filtered: filtered,
		Overall:  ProgressStats(filtered, st.CompletedIDs),
		ByLevel:  PerLevelStats(filtered, st.CompletedIDs, st.ActiveLevels),
	}
}

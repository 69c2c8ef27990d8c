package projection

import (
	"testing"

	"github.com/alexanderramin/wcagcheck/internal/catalog"
	"github.com/alexanderramin/wcagcheck/internal/domain"
	"github.com/alexanderramin/wcagcheck/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allRoles = []domain.Role{domain.RoleDesign, domain.RoleDevelop, domain.RoleContent}

func ids(gs []domain.Guideline) []string {
	out := make([]string, len(gs))
	for i, g := range gs {
		out[i] = g.ID
	}
	return out
}

func TestFilteredGuidelines_ThreeRuleScenario(t *testing.T) {
	c := testutil.ThreeRuleCatalog(t)
	st := testutil.NewState([]domain.Level{domain.LevelA}, []domain.Role{domain.RoleDevelop}, "c")

	filtered := FilteredGuidelines(c, st)
	assert.Equal(t, []string{"c"}, ids(filtered))

	stats := ProgressStats(filtered, st.CompletedIDs)
	assert.Equal(t, Stats{Completed: 1, Total: 1, Percent: 100}, stats)
}

func TestFilteredGuidelines_EmptyFiltersShowNothing(t *testing.T) {
	c := catalog.Default()

	noLevels := testutil.NewState(nil, allRoles)
	assert.Empty(t, FilteredGuidelines(c, noLevels))

	noRoles := testutil.NewState(domain.Levels, nil)
	assert.Empty(t, FilteredGuidelines(c, noRoles))
}

func TestFilteredGuidelines_PreservesCatalogOrder(t *testing.T) {
	c := testutil.NewTestCatalog(t,
		testutil.NewTestGuideline("z", domain.LevelAAA),
		testutil.NewTestGuideline("m", domain.LevelA),
		testutil.NewTestGuideline("a", domain.LevelAA),
	)
	st := testutil.NewState(domain.Levels, allRoles)
	assert.Equal(t, []string{"z", "m", "a"}, ids(FilteredGuidelines(c, st)))
}

func TestFilteredGuidelines_RequiresRoleIntersection(t *testing.T) {
	c := testutil.NewTestCatalog(t,
		testutil.NewTestGuideline("multi", domain.LevelA, testutil.WithRoles(domain.RoleDesign, domain.RoleContent)),
		testutil.NewTestGuideline("dev", domain.LevelA, testutil.WithRoles(domain.RoleDevelop)),
	)
	st := testutil.NewState([]domain.Level{domain.LevelA}, []domain.Role{domain.RoleContent})
	assert.Equal(t, []string{"multi"}, ids(FilteredGuidelines(c, st)))
}

func TestFilteredGuidelines_DefaultStateOnShippedCatalog(t *testing.T) {
	filtered := FilteredGuidelines(catalog.Default(), domain.DefaultProgressState())
	assert.Len(t, filtered, 50, "A and AA criteria")
	for _, g := range filtered {
		assert.NotEqual(t, domain.LevelAAA, g.Level)
	}
}

func TestProgressStats_IgnoresCompletedOutsideFilter(t *testing.T) {
	c := testutil.ThreeRuleCatalog(t)
	st := testutil.NewState([]domain.Level{domain.LevelA}, allRoles, "a", "b", "stale-id")

	stats := ProgressStats(FilteredGuidelines(c, st), st.CompletedIDs)
	assert.Equal(t, Stats{Completed: 1, Total: 2, Percent: 50}, stats)
}

func TestProgressStats_EmptyIsZero(t *testing.T) {
	assert.Equal(t, Stats{}, ProgressStats(nil, map[string]bool{"a": true}))
}

func TestPercent_RoundsHalfUp(t *testing.T) {
	cases := []struct {
		completed, total, want int
	}{
		{0, 0, 0},
		{0, 5, 0},
		{1, 3, 33},
		{2, 3, 67},
		{1, 8, 13},
		{5, 8, 63},
		{1, 200, 1},
		{1, 201, 0},
		{7, 7, 100},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Percent(tc.completed, tc.total), "%d/%d", tc.completed, tc.total)
	}
}

func TestPerLevelStats_OrderedAndZeroFilled(t *testing.T) {
	c := testutil.NewTestCatalog(t,
		testutil.NewTestGuideline("a1", domain.LevelA),
		testutil.NewTestGuideline("a2", domain.LevelA),
		testutil.NewTestGuideline("aa1", domain.LevelAA, testutil.WithRoles(domain.RoleDesign)),
	)
	st := testutil.NewState(
		[]domain.Level{domain.LevelAAA, domain.LevelAA, domain.LevelA},
		[]domain.Role{domain.RoleDevelop},
		"a1",
	)
	filtered := FilteredGuidelines(c, st)

	got := PerLevelStats(filtered, st.CompletedIDs, st.ActiveLevels)
	require.Len(t, got, 3)
	assert.Equal(t, LevelStats{Level: domain.LevelA, Stats: Stats{Completed: 1, Total: 2, Percent: 50}}, got[0])
	assert.Equal(t, LevelStats{Level: domain.LevelAA}, got[1], "aa1 has no Develop role")
	assert.Equal(t, LevelStats{Level: domain.LevelAAA}, got[2])
}

func TestPerLevelStats_OnlyRequestedLevels(t *testing.T) {
	got := PerLevelStats(nil, nil, map[domain.Level]bool{domain.LevelAA: true})
	require.Len(t, got, 1)
	assert.Equal(t, domain.LevelAA, got[0].Level)
}

func TestPerLevelStats_SumsToOverall(t *testing.T) {
	c := catalog.Default()
	st := testutil.NewState(domain.Levels, allRoles, "non-text-content", "contrast-minimum", "contrast-enhanced")
	v := Build(c, st)

	var completed, total int
	for _, ls := range v.ByLevel {
		completed += ls.Completed
		total += ls.Total
	}
	assert.Equal(t, v.Overall.Completed, completed)
	assert.Equal(t, v.Overall.Total, total)
	assert.Equal(t, c.Len(), total)
}

func TestExpandedGuideline_Dangling(t *testing.T) {
	c := testutil.ThreeRuleCatalog(t)
	st := testutil.NewState(domain.Levels, allRoles)
	st.ExpandedID = "removed-in-new-catalog"

	_, ok := ExpandedGuideline(c, st)
	assert.False(t, ok)
	for _, g := range FilteredGuidelines(c, st) {
		assert.False(t, IsExpanded(st, g.ID))
	}
}

func TestExpandedGuideline_Found(t *testing.T) {
	c := testutil.ThreeRuleCatalog(t)
	st := testutil.NewState(domain.Levels, allRoles)
	st.ExpandedID = "b"

	g, ok := ExpandedGuideline(c, st)
	require.True(t, ok)
	assert.Equal(t, "b", g.ID)
	assert.True(t, IsExpanded(st, "b"))
	assert.False(t, IsExpanded(st, "a"))
}

func TestExpandedGuideline_None(t *testing.T) {
	c := testutil.ThreeRuleCatalog(t)
	_, ok := ExpandedGuideline(c, domain.DefaultProgressState())
	assert.False(t, ok)
	assert.False(t, IsExpanded(domain.DefaultProgressState(), ""))
}

func TestBuild_IsDeterministic(t *testing.T) {
	c := catalog.Default()
	st := testutil.NewState([]domain.Level{domain.LevelAA}, []domain.Role{domain.RoleDesign}, "reflow")
	assert.Equal(t, Build(c, st), Build(c, st))
}

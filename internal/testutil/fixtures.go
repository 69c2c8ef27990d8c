package testutil

import (
	"testing"

	"github.com/alexanderramin/wcagcheck/internal/catalog"
	"github.com/alexanderramin/wcagcheck/internal/domain"
)

// Guideline options
type GuidelineOption func(*domain.Guideline)

func WithRoles(roles ...domain.Role) GuidelineOption {
	return func(g *domain.Guideline) {
		g.Roles = roles
	}
}

func WithRefID(ref string) GuidelineOption {
	return func(g *domain.Guideline) {
		g.RefID = ref
	}
}

func WithTitle(en, nl string) GuidelineOption {
	return func(g *domain.Guideline) {
		g.Title = domain.LocalizedText{domain.LangEN: en, domain.LangNL: nl}
	}
}

func WithReferenceURL(url string) GuidelineOption {
	return func(g *domain.Guideline) {
		g.ReferenceURL = url
	}
}

// NewTestGuideline builds a fully translated guideline. RefID defaults to the id
// so that records stay unique; override it with WithRefID.
func NewTestGuideline(id string, level domain.Level, opts ...GuidelineOption) domain.Guideline {
	g := domain.Guideline{
		ID:                    id,
		RefID:                 id,
		Level:                 level,
		Roles:                 []domain.Role{domain.RoleDevelop},
		Title:                 domain.LocalizedText{domain.LangEN: "Title " + id, domain.LangNL: "Titel " + id},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "Easy " + id, domain.LangNL: "Makkelijk " + id},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "Original " + id, domain.LangNL: "Origineel " + id},
		ReferenceURL:          "https://example.test/" + id,
	}
	for _, opt := range opts {
		opt(&g)
	}
	return g
}

// NewTestCatalog builds a validated catalog and fails the test on error.
func NewTestCatalog(t *testing.T, records ...domain.Guideline) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(records)
	if err != nil {
		t.Fatalf("failed to build test catalog: %v", err)
	}
	return c
}

// ThreeRuleCatalog is the a/b/c catalog used across projection and export
// tests: a=A/Design, b=AA/Develop, c=A/Develop.
func ThreeRuleCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	return NewTestCatalog(t,
		NewTestGuideline("a", domain.LevelA, WithRoles(domain.RoleDesign), WithRefID("1.1.1")),
		NewTestGuideline("b", domain.LevelAA, WithRoles(domain.RoleDevelop), WithRefID("1.2.1")),
		NewTestGuideline("c", domain.LevelA, WithRoles(domain.RoleDevelop), WithRefID("1.3.1")),
	)
}

// NewState builds a ProgressState with the given filters and completed ids.
func NewState(levels []domain.Level, roles []domain.Role, completed ...string) domain.ProgressState {
	s := domain.ProgressState{
		Language:     domain.LangEN,
		ActiveLevels: map[domain.Level]bool{},
		ActiveRoles:  map[domain.Role]bool{},
		CompletedIDs: map[string]bool{},
	}
	for _, l := range levels {
		s.ActiveLevels[l] = true
	}
	for _, r := range roles {
		s.ActiveRoles[r] = true
	}
	for _, id := range completed {
		s.CompletedIDs[id] = true
	}
	return s
}

package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/wcagcheck/internal/catalog"
	"github.com/alexanderramin/wcagcheck/internal/domain"
	"github.com/alexanderramin/wcagcheck/internal/export"
	"github.com/alexanderramin/wcagcheck/internal/projection"
	"github.com/alexanderramin/wcagcheck/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestFormatStatus(t *testing.T) {
	st := testutil.NewState([]domain.Level{domain.LevelA, domain.LevelAAA}, domain.Roles, "non-text-content")
	st.Label = "Acme"
	v := projection.Build(catalog.Default(), st)

	got := stripANSI(FormatStatus(v))
	assert.Contains(t, got, "WCAG CHECKLIST")
	assert.Contains(t, got, "Website: Acme")
	assert.Contains(t, got, "Progress")
	assert.Contains(t, got, "(1/58)")
	assert.Contains(t, got, "(1/30)")
	assert.Contains(t, got, "(0/28)")
	assert.Contains(t, got, "[x] A")
	assert.Contains(t, got, "[ ] AA")
	assert.Contains(t, got, "[x] Content")
}

func TestFormatStatus_Dutch(t *testing.T) {
	st := domain.DefaultProgressState()
	st.Language = domain.LangNL
	got := stripANSI(FormatStatus(projection.Build(catalog.Default(), st)))
	assert.Contains(t, got, "Voortgang")
	assert.Contains(t, got, "Niveau")
	assert.NotContains(t, got, "Website:")
}

func TestFormatChecklist(t *testing.T) {
	c := testutil.ThreeRuleCatalog(t)
	st := testutil.NewState(domain.Levels, domain.Roles, "b")

	got := stripANSI(FormatChecklist(projection.FilteredGuidelines(c, st), st))
	assert.Contains(t, got, "RULE")
	assert.Contains(t, got, "✔  1.2.1")
	assert.Contains(t, got, "○  1.1.1")
	assert.Contains(t, got, "Title a")
}

func TestFormatChecklist_Empty(t *testing.T) {
	st := testutil.NewState(nil, nil)
	st.Language = domain.LangNL
	assert.Contains(t, FormatChecklist(nil, st), "Geen regels")
}

func TestFormatGuideline(t *testing.T) {
	g, _ := catalog.Default().Lookup("error-prevention-all")
	st := testutil.NewState(nil, nil, "error-prevention-all")

	got := stripANSI(FormatGuideline(g, st, 60))
	assert.Contains(t, got, "3.3.6")
	assert.Contains(t, got, "Pass")
	assert.Contains(t, got, "Official text:")
	assert.NotContains(t, got, "Reference:", "rule has no reference URL")

	g, _ = catalog.Default().Lookup("non-text-content")
	got = stripANSI(FormatGuideline(g, testutil.NewState(nil, nil), 60))
	assert.Contains(t, got, "Pending")
	assert.Contains(t, got, "https://www.w3.org/WAI/WCAG21/Understanding/non-text-content.html")
	assert.Contains(t, got, "Design")
}

func TestFormatReport(t *testing.T) {
	c := testutil.ThreeRuleCatalog(t)
	st := testutil.NewState(domain.Levels, domain.Roles, "c")
	st.Label = "Acme"
	doc := export.BuildReport(projection.FilteredGuidelines(c, st), st, time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC))

	got := stripANSI(FormatReport(doc))
	assert.Contains(t, got, "WCAG CHECKLIST")
	assert.Contains(t, got, "Website: Acme")
	assert.Contains(t, got, "2026-01-02")
	assert.Contains(t, got, "Progress: 33% (1/3)")
	assert.Contains(t, got, "Pass")
	assert.Contains(t, got, "Pending")
}

func TestFormatExports(t *testing.T) {
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	got := stripANSI(FormatExports([]*domain.ExportRecord{
		{Kind: domain.ExportPDF, Path: "/tmp/a-checklist.pdf", Label: "a", Completed: 1, Total: 3, CreatedAt: now.Add(-2 * time.Minute)},
		{Kind: domain.ExportJSON, Path: "/tmp/x-export.json", CreatedAt: now.Add(-3 * time.Hour)},
	}, now))
	assert.Contains(t, got, "PDF")
	assert.Contains(t, got, "2m ago")
	assert.Contains(t, got, "33% (1/3)")
	assert.Contains(t, got, "0% (0/0)")
	assert.Contains(t, got, "3h ago")

	assert.Contains(t, FormatExports(nil, now), "No exports yet")
}

package export

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/alexanderramin/wcagcheck/internal/domain"
	"github.com/alexanderramin/wcagcheck/internal/projection"
)

const (
	// DefaultFallbackName names artifacts when the label is blank.
	DefaultFallbackName = "wcag-checklist"
	SnapshotSuffix      = "-export.json"
	ReportSuffix        = "-checklist.pdf"

	// ReportDateLayout is the date printed in the report title block.
	ReportDateLayout = "2006-01-02"
)

// ReportRow is one printable table line.
type ReportRow struct {
	RefID     string
	Title     string
	Level     domain.Level
	Status    string
	Completed bool
}

// ToReportRows builds the table rows for filtered, sorted by level and then
// by reference number compared segment by segment.
func ToReportRows(filtered []domain.Guideline, completed map[string]bool, lang domain.Language) []ReportRow {
	rows := make([]ReportRow, 0, len(filtered))
	for _, g := range filtered {
		done := completed[g.ID]
		rows = append(rows, ReportRow{
			RefID:     g.RefID,
			Title:     g.Title.In(lang),
			Level:     g.Level,
			Status:    domain.StatusLabel(lang, done),
			Completed: done,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if ri, rj := rows[i].Level.Rank(), rows[j].Level.Rank(); ri != rj {
			return ri < rj
		}
		return CompareRefID(rows[i].RefID, rows[j].RefID) < 0
	})
	return rows
}

// CompareRefID orders dotted reference numbers numerically, so "1.4.2"
// precedes "1.4.10". Non-numeric segments compare as text. A prefix sorts
// first.
func CompareRefID(a, b string) int {
	as, bs := strings.Split(a, "."), strings.Split(b, ".")
	for i := 0; i < len(as) && i < len(bs); i++ {
		if c := compareSegment(as[i], bs[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(as) < len(bs):
		return -1
	case len(as) > len(bs):
		return 1
	default:
		return 0
	}
}

func compareSegment(a, b string) int {
	an, aerr := strconv.Atoi(a)
	bn, berr := strconv.Atoi(b)
	switch {
	case aerr == nil && berr == nil:
		switch {
		case an < bn:
			return -1
		case an > bn:
			return 1
		}
		return 0
	case aerr == nil:
		return -1
	case berr == nil:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

// ReportDocument is everything the renderer draws.
type ReportDocument struct {
	Language domain.Language
	Title    string
	Website  string
	Date     string
	Summary  string
	Stats    projection.Stats
	Columns  [4]string
	Rows     []ReportRow
}

// BuildReport assembles the report for the filtered view of st. The summary
// and the rows come from the same filtered sequence.
func BuildReport(filtered []domain.Guideline, st domain.ProgressState, now time.Time) ReportDocument {
	lang := st.Language
	if !lang.Valid() {
		lang = domain.LangEN
	}
	stats := projection.ProgressStats(filtered, st.CompletedIDs)

	doc := ReportDocument{
		Language: lang,
		Title:    domain.Translate(lang, domain.MsgTitle),
		Date:     now.Format(ReportDateLayout),
		Summary:  SummaryLine(lang, stats),
		Stats:    stats,
		Columns: [4]string{
			"ID",
			domain.Translate(lang, domain.MsgRule),
			domain.Translate(lang, domain.MsgLevel),
			domain.Translate(lang, domain.MsgStatus),
		},
		Rows: ToReportRows(filtered, st.CompletedIDs, lang),
	}
	if strings.TrimSpace(st.Label) != "" {
		doc.Website = fmt.Sprintf("%s: %s", domain.Translate(lang, domain.MsgWebsite), st.Label)
	}
	return doc
}

// SummaryLine renders "<label>: <percent>% (<completed>/<total>)".
func SummaryLine(lang domain.Language, s projection.Stats) string {
	return fmt.Sprintf("%s: %d%% (%d/%d)", domain.Translate(lang, domain.MsgProgress), s.Percent, s.Completed, s.Total)
}

// FileName builds an artifact name from the label, or from fallback when
// the label is blank. Path separators and control characters become "-".
func FileName(label, fallback, suffix string) string {
	base := SanitizeLabel(label)
	if base == "" {
		base = SanitizeLabel(fallback)
	}
	if base == "" {
		base = DefaultFallbackName
	}
	return base + suffix
}

// SanitizeLabel makes label safe to use as a file name stem.
func SanitizeLabel(label string) string {
	cleaned := strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || unicode.IsControl(r) {
			return '-'
		}
		return r
	}, strings.TrimSpace(label))
	if strings.Trim(cleaned, ".") == "" {
		return ""
	}
	return cleaned
}

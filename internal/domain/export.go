package domain

import "time"

// ExportKind identifies the artifact format of an export.
type ExportKind string

const (
	ExportJSON ExportKind = "json"
	ExportPDF  ExportKind = "pdf"
)

func (k ExportKind) Valid() bool {
	return k == ExportJSON || k == ExportPDF
}

// ExportRecord is one entry of the export history.
type ExportRecord struct {
	ID        string
	Kind      ExportKind
	Path      string
	Label     string
	Completed int
	Total     int
	CreatedAt time.Time
}

package service

import (
	"context"

	"github.com/alexanderramin/wcagcheck/internal/domain"
	"github.com/alexanderramin/wcagcheck/internal/projection"
	"github.com/alexanderramin/wcagcheck/internal/store"
)

// StateStore is the part of the progress store the services read and restore.
type StateStore interface {
	Snapshot() domain.ProgressState
	Restore(ctx context.Context, in store.RestoreInput) error
}

// ExportResult describes one written artifact.
type ExportResult struct {
	Record *domain.ExportRecord
	Stats  projection.Stats
}

// ImportResult summarizes a restored snapshot.
type ImportResult struct {
	Path      string
	Label     string
	Completed int
	Levels    []domain.Level
	Roles     []domain.Role
}

type ExportService interface {
	// ExportSnapshot writes the full-state JSON backup into dir.
	ExportSnapshot(ctx context.Context, dir string) (*ExportResult, error)
	// ExportReport writes the filtered PDF report into dir.
	ExportReport(ctx context.Context, dir string) (*ExportResult, error)
	ListExports(ctx context.Context, limit int) ([]*domain.ExportRecord, error)
	ImportSnapshot(ctx context.Context, path string) (*ImportResult, error)
}

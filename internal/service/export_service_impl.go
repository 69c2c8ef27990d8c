package service

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alexanderramin/wcagcheck/internal/domain"
	"github.com/alexanderramin/wcagcheck/internal/export"
	"github.com/alexanderramin/wcagcheck/internal/observability"
	"github.com/alexanderramin/wcagcheck/internal/projection"
	"github.com/alexanderramin/wcagcheck/internal/repository"
	"github.com/natefinch/atomic"
)

type exportService struct {
	state    StateStore
	memo     *projection.Memo
	exports  repository.ExportLogRepo
	renderer export.Renderer
	fallback string
	now      func() time.Time
	observer observability.Observer
}

// ExportOption configures the export service.
type ExportOption func(*exportService)

// WithRenderer replaces the PDF renderer.
func WithRenderer(r export.Renderer) ExportOption {
	return func(s *exportService) { s.renderer = r }
}

// WithFallbackName sets the file stem used when the label is blank.
func WithFallbackName(name string) ExportOption {
	return func(s *exportService) { s.fallback = name }
}

// WithClock sets the time source for timestamps and report dates.
func WithClock(now func() time.Time) ExportOption {
	return func(s *exportService) { s.now = now }
}

// WithObserver routes export outcomes to obs.
func WithObserver(obs observability.Observer) ExportOption {
	return func(s *exportService) { s.observer = observability.OrNoop(obs) }
}

func NewExportService(
	state StateStore,
	memo *projection.Memo,
	exports repository.ExportLogRepo,
	opts ...ExportOption,
) ExportService {
	s := &exportService{
		state:    state,
		memo:     memo,
		exports:  exports,
		renderer: export.PDFRenderer{},
		fallback: export.DefaultFallbackName,
		now:      time.Now,
		observer: observability.Noop{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *exportService) ExportSnapshot(ctx context.Context, dir string) (result *ExportResult, err error) {
	done := observability.Track(ctx, s.observer, "export.snapshot")
	defer func() { done(err, resultFields(result)) }()

	st := s.state.Snapshot()
	data, err := export.ToSnapshotDocument(st, s.now()).Encode()
	if err != nil {
		return nil, err
	}

	path, err := s.write(dir, export.FileName(st.Label, s.fallback, export.SnapshotSuffix), data)
	if err != nil {
		return nil, err
	}

	stats := s.memo.Build(st).Overall
	return s.record(ctx, domain.ExportJSON, path, st.Label, stats)
}

func (s *exportService) ExportReport(ctx context.Context, dir string) (result *ExportResult, err error) {
	done := observability.Track(ctx, s.observer, "export.report")
	defer func() { done(err, resultFields(result)) }()

	st := s.state.Snapshot()
	filtered := s.memo.FilteredGuidelines(st)
	doc := export.BuildReport(filtered, st, s.now())

	var buf bytes.Buffer
	if err := s.renderer.Render(&buf, doc); err != nil {
		return nil, err
	}

	path, err := s.write(dir, export.FileName(st.Label, s.fallback, export.ReportSuffix), buf.Bytes())
	if err != nil {
		return nil, err
	}
	return s.record(ctx, domain.ExportPDF, path, st.Label, doc.Stats)
}

func (s *exportService) ListExports(ctx context.Context, limit int) ([]*domain.ExportRecord, error) {
	return s.exports.ListRecent(ctx, limit)
}

func (s *exportService) ImportSnapshot(ctx context.Context, path string) (result *ImportResult, err error) {
	done := observability.Track(ctx, s.observer, "export.import")
	defer func() { done(err, map[string]any{"path": path}) }()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	doc, err := export.ParseSnapshot(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	in := doc.RestoreInput()
	if err := s.state.Restore(ctx, in); err != nil {
		return nil, fmt.Errorf("restoring snapshot: %w", err)
	}
	return &ImportResult{
		Path:      path,
		Label:     in.Label,
		Completed: len(in.CompletedIDs),
		Levels:    in.ActiveLevels,
		Roles:     in.ActiveRoles,
	}, nil
}

func (s *exportService) write(dir, name string, data []byte) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating export dir: %w", err)
	}
	path := filepath.Join(dir, name)
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// record logs the export in history. The artifact is already on disk, so a
// history failure is returned alongside a usable result.
func (s *exportService) record(ctx context.Context, kind domain.ExportKind, path, label string, stats projection.Stats) (*ExportResult, error) {
	rec := &domain.ExportRecord{
		Kind:      kind,
		Path:      path,
		Label:     label,
		Completed: stats.Completed,
		Total:     stats.Total,
		CreatedAt: s.now().UTC(),
	}
	result := &ExportResult{Record: rec, Stats: stats}
	if err := s.exports.Create(ctx, rec); err != nil {
		return result, fmt.Errorf("recording export: %w", err)
	}
	return result, nil
}

func resultFields(r *ExportResult) map[string]any {
	if r == nil || r.Record == nil {
		return nil
	}
	return map[string]any{
		"kind":      string(r.Record.Kind),
		"path":      r.Record.Path,
		"completed": r.Stats.Completed,
		"total":     r.Stats.Total,
	}
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/wcagcheck/internal/db"
	"github.com/alexanderramin/wcagcheck/internal/domain"
	"github.com/google/uuid"
)

// SQLiteExportLogRepo implements ExportLogRepo using a SQLite database.
type SQLiteExportLogRepo struct {
	db db.DBTX
}

// NewSQLiteExportLogRepo creates a new SQLiteExportLogRepo.
func NewSQLiteExportLogRepo(conn db.DBTX) *SQLiteExportLogRepo {
	return &SQLiteExportLogRepo{db: conn}
}

// Create inserts rec, assigning an ID and CreatedAt when they are empty.
func (r *SQLiteExportLogRepo) Create(ctx context.Context, rec *domain.ExportRecord) error {
	if !rec.Kind.Valid() {
		return fmt.Errorf("export kind %q: %w", rec.Kind, domain.ErrInvalidArgument)
	}
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	query := `INSERT INTO export_log (id, kind, path, label, completed, total, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		rec.ID,
		string(rec.Kind),
		rec.Path,
		rec.Label,
		rec.Completed,
		rec.Total,
		rec.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting export record: %w", err)
	}
	return nil
}

func (r *SQLiteExportLogRepo) GetByID(ctx context.Context, id string) (*domain.ExportRecord, error) {
	query := `SELECT id, kind, path, label, completed, total, created_at
		FROM export_log WHERE id = ?`
	rec, err := r.scanRecord(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("export record %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning export record: %w", err)
	}
	return rec, nil
}

func (r *SQLiteExportLogRepo) ListRecent(ctx context.Context, limit int) ([]*domain.ExportRecord, error) {
	query := `SELECT id, kind, path, label, completed, total, created_at
		FROM export_log ORDER BY created_at DESC, rowid DESC`
	var args []any
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing export records: %w", err)
	}
	defer rows.Close()

	var out []*domain.ExportRecord
	for rows.Next() {
		rec, err := r.scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning export record: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func (r *SQLiteExportLogRepo) scanRecord(s scanner) (*domain.ExportRecord, error) {
	var rec domain.ExportRecord
	var kind, createdAt string
	if err := s.Scan(&rec.ID, &kind, &rec.Path, &rec.Label, &rec.Completed, &rec.Total, &createdAt); err != nil {
		return nil, err
	}
	rec.Kind = domain.ExportKind(kind)
	rec.CreatedAt = parseTime(createdAt)
	return &rec, nil
}

package repository

import (
	"context"

	"github.com/alexanderramin/wcagcheck/internal/domain"
)

// KVRepo stores opaque string values by key.
type KVRepo interface {
	// Get returns ErrNotFound when the key has never been written.
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

type ExportLogRepo interface {
	Create(ctx context.Context, rec *domain.ExportRecord) error
	GetByID(ctx context.Context, id string) (*domain.ExportRecord, error)
	// ListRecent returns the newest records first. limit <= 0 means no limit.
	ListRecent(ctx context.Context, limit int) ([]*domain.ExportRecord, error)
}

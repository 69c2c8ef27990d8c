package store

import (
	"context"
	"fmt"

	"github.com/alexanderramin/wcagcheck/internal/domain"
	"github.com/alexanderramin/wcagcheck/internal/repository"
)

// StorageKey is the single key the checklist state is stored under.
const StorageKey = "wcag-app-storage"

// Persister is the durable storage port of the Store.
type Persister interface {
	// Load returns repository.ErrNotFound when nothing was saved yet.
	// Notes describe values that were dropped while decoding.
	Load(ctx context.Context) (st domain.ProgressState, notes []string, err error)
	Save(ctx context.Context, st domain.ProgressState) error
}

// KVPersister stores the state as one JSON value in a KVRepo.
type KVPersister struct {
	kv  repository.KVRepo
	key string
}

// NewKVPersister returns a Persister writing under StorageKey.
func NewKVPersister(kv repository.KVRepo) *KVPersister {
	return &KVPersister{kv: kv, key: StorageKey}
}

func (p *KVPersister) Load(ctx context.Context) (domain.ProgressState, []string, error) {
	raw, err := p.kv.Get(ctx, p.key)
	if err != nil {
		return domain.DefaultProgressState(), nil, err
	}
	st, notes, err := DecodeState([]byte(raw))
	if err != nil {
		return domain.DefaultProgressState(), nil, fmt.Errorf("loading %s: %w", p.key, err)
	}
	return st, notes, nil
}

func (p *KVPersister) Save(ctx context.Context, st domain.ProgressState) error {
	data, err := EncodeState(st)
	if err != nil {
		return err
	}
	return p.kv.Put(ctx, p.key, string(data))
}

// NopPersister discards writes and never has saved state.
type NopPersister struct{}

func (NopPersister) Load(context.Context) (domain.ProgressState, []string, error) {
	return domain.DefaultProgressState(), nil, repository.ErrNotFound
}

func (NopPersister) Save(context.Context, domain.ProgressState) error { return nil }

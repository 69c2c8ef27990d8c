package repository

import (
	"context"
	"fmt"
	"sync"
)

// MemoryKVRepo is an in-process KVRepo. Nothing survives the process.
type MemoryKVRepo struct {
	mu     sync.Mutex
	values map[string]string
	writes int
}

func NewMemoryKVRepo() *MemoryKVRepo {
	return &MemoryKVRepo{values: make(map[string]string)}
}

func (r *MemoryKVRepo) Get(_ context.Context, key string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.values[key]
	if !ok {
		return "", fmt.Errorf("kv key %q: %w", key, ErrNotFound)
	}
	return v, nil
}

func (r *MemoryKVRepo) Put(_ context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[key] = value
	r.writes++
	return nil
}

func (r *MemoryKVRepo) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.values, key)
	return nil
}

// Writes returns how many Put calls succeeded.
func (r *MemoryKVRepo) Writes() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.writes
}

package testutil

import (
	"context"
	"sync/atomic"

	"github.com/alexanderramin/wcagcheck/internal/repository"
)

// FailingKVRepo wraps a KVRepo and fails every Put while Fail is set.
// Reads pass through, so tests can check what was durably written.
type FailingKVRepo struct {
	repository.KVRepo
	Err  error
	Fail atomic.Bool

	attempts atomic.Int32
}

// NewFailingKVRepo returns a repo that fails writes with err from the start.
func NewFailingKVRepo(inner repository.KVRepo, err error) *FailingKVRepo {
	f := &FailingKVRepo{KVRepo: inner, Err: err}
	f.Fail.Store(true)
	return f
}

func (f *FailingKVRepo) Put(ctx context.Context, key, value string) error {
	f.attempts.Add(1)
	if f.Fail.Load() {
		return f.Err
	}
	return f.KVRepo.Put(ctx, key, value)
}

// Attempts returns how many Put calls were made, failed or not.
func (f *FailingKVRepo) Attempts() int {
	return int(f.attempts.Load())
}

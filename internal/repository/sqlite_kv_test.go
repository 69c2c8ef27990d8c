package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/wcagcheck/internal/repository"
	"github.com/alexanderramin/wcagcheck/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKVRepo_Get_MissingKey(t *testing.T) {
	repo := repository.NewSQLiteKVRepo(testutil.NewTestDB(t))

	_, err := repo.Get(context.Background(), "wcag-app-storage")
	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestKVRepo_PutThenGet(t *testing.T) {
	repo := repository.NewSQLiteKVRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, "k", `{"a":1}`))
	got, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, got)
}

func TestKVRepo_Put_OverwritesLastWins(t *testing.T) {
	repo := repository.NewSQLiteKVRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, "k", "first"))
	require.NoError(t, repo.Put(ctx, "k", "second"))

	got, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "second", got)
}

func TestKVRepo_Delete(t *testing.T) {
	repo := repository.NewSQLiteKVRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, "k", "v"))
	require.NoError(t, repo.Delete(ctx, "k"))

	_, err := repo.Get(ctx, "k")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	// Deleting a missing key is not an error.
	assert.NoError(t, repo.Delete(ctx, "k"))
}

func TestKVRepo_RunsInsideTransaction(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	tx, err := database.BeginTx(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, repository.NewSQLiteKVRepo(tx).Put(ctx, "k", "in-tx"))
	require.NoError(t, tx.Rollback())

	_, err = repository.NewSQLiteKVRepo(database).Get(ctx, "k")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestMemoryKVRepo(t *testing.T) {
	repo := repository.NewMemoryKVRepo()
	ctx := context.Background()

	_, err := repo.Get(ctx, "k")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, repo.Put(ctx, "k", "v1"))
	require.NoError(t, repo.Put(ctx, "k", "v2"))
	got, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v2", got)
	assert.Equal(t, 2, repo.Writes())

	require.NoError(t, repo.Delete(ctx, "k"))
	_, err = repo.Get(ctx, "k")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

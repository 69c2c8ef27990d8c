package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/wcagcheck/internal/domain"
	"github.com/alexanderramin/wcagcheck/internal/repository"
	"github.com/alexanderramin/wcagcheck/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportLogRepo_CreateAssignsIDAndTimestamp(t *testing.T) {
	repo := repository.NewSQLiteExportLogRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	rec := &domain.ExportRecord{Kind: domain.ExportJSON, Path: "/tmp/site-export.json", Label: "site"}
	require.NoError(t, repo.Create(ctx, rec))

	_, err := uuid.Parse(rec.ID)
	assert.NoError(t, err, "id should be a uuid")
	assert.False(t, rec.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ExportJSON, got.Kind)
	assert.Equal(t, "/tmp/site-export.json", got.Path)
	assert.Equal(t, "site", got.Label)
}

func TestExportLogRepo_RoundTripsProgress(t *testing.T) {
	repo := repository.NewSQLiteExportLogRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	rec := &domain.ExportRecord{Kind: domain.ExportPDF, Path: "a.pdf", Completed: 3, Total: 7, CreatedAt: at}
	require.NoError(t, repo.Create(ctx, rec))

	got, err := repo.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Completed)
	assert.Equal(t, 7, got.Total)
	assert.True(t, at.Equal(got.CreatedAt))
}

func TestExportLogRepo_RejectsUnknownKind(t *testing.T) {
	repo := repository.NewSQLiteExportLogRepo(testutil.NewTestDB(t))

	err := repo.Create(context.Background(), &domain.ExportRecord{Kind: "docx", Path: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestExportLogRepo_GetByID_NotFound(t *testing.T) {
	repo := repository.NewSQLiteExportLogRepo(testutil.NewTestDB(t))

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestExportLogRepo_ListRecent_NewestFirstWithLimit(t *testing.T) {
	repo := repository.NewSQLiteExportLogRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		require.NoError(t, repo.Create(ctx, &domain.ExportRecord{
			Kind:      domain.ExportJSON,
			Path:      "p",
			Label:     string(rune('a' + i)),
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}

	recs, err := repo.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "d", recs[0].Label)
	assert.Equal(t, "c", recs[1].Label)

	all, err := repo.ListRecent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

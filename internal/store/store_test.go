package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/wcagcheck/internal/domain"
	"github.com/alexanderramin/wcagcheck/internal/repository"
	"github.com/alexanderramin/wcagcheck/internal/store"
	"github.com/alexanderramin/wcagcheck/internal/testutil"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemStore(t *testing.T) (*store.Store, *repository.MemoryKVRepo) {
	t.Helper()
	kv := repository.NewMemoryKVRepo()
	return store.New(context.Background(), store.NewKVPersister(kv)), kv
}

func TestNew_DefaultsWhenNothingPersisted(t *testing.T) {
	s, kv := newMemStore(t)

	if diff := cmp.Diff(domain.DefaultProgressState(), s.Snapshot()); diff != "" {
		t.Errorf("initial state mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 0, kv.Writes(), "loading must not write")
}

func TestToggleLevel_TwiceRestoresPriorSet(t *testing.T) {
	ctx := context.Background()
	for _, l := range domain.Levels {
		s, _ := newMemStore(t)
		before := s.Snapshot().ActiveLevels

		require.NoError(t, s.ToggleLevel(ctx, l))
		assert.NotEqual(t, before[l], s.Snapshot().ActiveLevels[l])
		require.NoError(t, s.ToggleLevel(ctx, l))

		assert.Equal(t, before, s.Snapshot().ActiveLevels, "level %s", l)
	}
}

func TestToggleRole_TwiceRestoresPriorSet(t *testing.T) {
	ctx := context.Background()
	for _, r := range domain.Roles {
		s, _ := newMemStore(t)
		before := s.Snapshot().ActiveRoles

		require.NoError(t, s.ToggleRole(ctx, r))
		require.NoError(t, s.ToggleRole(ctx, r))

		assert.Equal(t, before, s.Snapshot().ActiveRoles, "role %s", r)
	}
}

func TestToggleCompletion_TwiceRestoresPriorSet(t *testing.T) {
	s, _ := newMemStore(t)
	ctx := context.Background()

	s.ToggleCompletion(ctx, "keep")
	before := s.Snapshot().CompletedIDs

	s.ToggleCompletion(ctx, "non-text-content")
	assert.True(t, s.Snapshot().IsCompleted("non-text-content"))
	s.ToggleCompletion(ctx, "non-text-content")

	assert.Equal(t, before, s.Snapshot().CompletedIDs)
}

func TestToggleCompletion_AcceptsUnknownIDs(t *testing.T) {
	s, _ := newMemStore(t)
	s.ToggleCompletion(context.Background(), "not-in-any-catalog")
	assert.True(t, s.Snapshot().IsCompleted("not-in-any-catalog"))
}

func TestInvalidEnumerations_Rejected(t *testing.T) {
	s, kv := newMemStore(t)
	ctx := context.Background()
	before := s.Snapshot()

	assert.ErrorIs(t, s.ToggleLevel(ctx, "AAAA"), domain.ErrInvalidArgument)
	assert.ErrorIs(t, s.ToggleRole(ctx, "Manage"), domain.ErrInvalidArgument)
	assert.ErrorIs(t, s.SetLanguage(ctx, "de"), domain.ErrInvalidArgument)

	if diff := cmp.Diff(before, s.Snapshot()); diff != "" {
		t.Errorf("rejected calls changed state (-want +got):\n%s", diff)
	}
	assert.Equal(t, 0, kv.Writes())
}

func TestSetExpanded_LastWriteWins(t *testing.T) {
	s, _ := newMemStore(t)
	ctx := context.Background()

	s.SetExpanded(ctx, "a")
	s.SetExpanded(ctx, "b")
	assert.Equal(t, "b", s.Snapshot().ExpandedID)

	s.SetExpanded(ctx, "")
	assert.Empty(t, s.Snapshot().ExpandedID)
}

func TestSetLabel_AnyString(t *testing.T) {
	s, _ := newMemStore(t)
	ctx := context.Background()

	s.SetLabel(ctx, "my-site.com / staging ✓")
	assert.Equal(t, "my-site.com / staging ✓", s.Snapshot().Label)
	s.SetLabel(ctx, "")
	assert.Empty(t, s.Snapshot().Label)
}

func TestResetCompletion_LeavesFiltersAndLabel(t *testing.T) {
	s, _ := newMemStore(t)
	ctx := context.Background()

	require.NoError(t, s.ToggleLevel(ctx, domain.LevelAAA))
	require.NoError(t, s.SetLanguage(ctx, domain.LangNL))
	s.SetLabel(ctx, "site")
	s.ToggleCompletion(ctx, "a")
	s.ToggleCompletion(ctx, "b")
	before := s.Snapshot()

	s.ResetCompletion(ctx)
	after := s.Snapshot()

	assert.Empty(t, after.CompletedIDs)
	before.CompletedIDs = map[string]bool{}
	if diff := cmp.Diff(before, after); diff != "" {
		t.Errorf("reset touched more than completion (-want +got):\n%s", diff)
	}
}

func TestSnapshot_IsNotAliased(t *testing.T) {
	s, _ := newMemStore(t)
	snap := s.Snapshot()

	snap.CompletedIDs["x"] = true
	snap.ActiveLevels[domain.LevelAAA] = true
	delete(snap.ActiveRoles, domain.RoleDesign)

	fresh := s.Snapshot()
	assert.False(t, fresh.CompletedIDs["x"])
	assert.False(t, fresh.ActiveLevels[domain.LevelAAA])
	assert.True(t, fresh.ActiveRoles[domain.RoleDesign])
}

func TestEveryMutation_WritesThrough(t *testing.T) {
	s, kv := newMemStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetLanguage(ctx, domain.LangNL))
	require.NoError(t, s.ToggleLevel(ctx, domain.LevelAAA))
	require.NoError(t, s.ToggleRole(ctx, domain.RoleContent))
	s.ToggleCompletion(ctx, "a")
	s.SetExpanded(ctx, "a")
	s.SetLabel(ctx, "x")
	s.ResetCompletion(ctx)

	assert.Equal(t, 7, kv.Writes())
}

func TestPersistenceFailure_KeepsInMemoryChange(t *testing.T) {
	ctx := context.Background()
	kv := testutil.NewFailingKVRepo(repository.NewMemoryKVRepo(), errors.New("quota exceeded"))
	obs := &testutil.RecordingObserver{}
	s := store.New(ctx, store.NewKVPersister(kv), store.WithObserver(obs))

	s.ToggleCompletion(ctx, "a")
	require.NoError(t, s.ToggleLevel(ctx, domain.LevelAAA))

	snap := s.Snapshot()
	assert.True(t, snap.IsCompleted("a"))
	assert.True(t, snap.ActiveLevels[domain.LevelAAA])
	assert.Equal(t, 2, kv.Attempts())

	failures := obs.Failures()
	require.Len(t, failures, 2)
	assert.Equal(t, "store.persist", failures[0].Name)
	assert.EqualError(t, failures[0].Err, "quota exceeded")
	assert.Equal(t, "store.toggle_completion", failures[0].Fields["mutation"])

	// Once storage recovers the next write carries the full state.
	kv.Fail.Store(false)
	s.SetLabel(ctx, "recovered")

	reloaded := store.New(ctx, store.NewKVPersister(kv))
	got := reloaded.Snapshot()
	assert.True(t, got.IsCompleted("a"))
	assert.True(t, got.ActiveLevels[domain.LevelAAA])
	assert.Equal(t, "recovered", got.Label)
}

func TestNew_CorruptValueFallsBackToDefaults(t *testing.T) {
	ctx := context.Background()
	kv := repository.NewMemoryKVRepo()
	require.NoError(t, kv.Put(ctx, store.StorageKey, "{not json"))
	obs := &testutil.RecordingObserver{}

	s := store.New(ctx, store.NewKVPersister(kv), store.WithObserver(obs))

	assert.Equal(t, domain.DefaultProgressState(), s.Snapshot())
	failures := obs.Failures()
	require.Len(t, failures, 1)
	assert.Equal(t, "store.load", failures[0].Name)
}

func TestReload_FromSQLite(t *testing.T) {
	ctx := context.Background()
	kv := repository.NewSQLiteKVRepo(testutil.NewTestDB(t))

	first := store.New(ctx, store.NewKVPersister(kv))
	require.NoError(t, first.SetLanguage(ctx, domain.LangNL))
	require.NoError(t, first.ToggleLevel(ctx, domain.LevelAA))
	require.NoError(t, first.ToggleRole(ctx, domain.RoleContent))
	first.ToggleCompletion(ctx, "captions-prerecorded")
	first.SetLabel(ctx, "example.nl")
	first.SetExpanded(ctx, "captions-prerecorded")

	second := store.New(ctx, store.NewKVPersister(kv))
	want := first.Snapshot()
	want.ExpandedID = "" // transient, never persisted

	if diff := cmp.Diff(want, second.Snapshot()); diff != "" {
		t.Errorf("reloaded state mismatch (-want +got):\n%s", diff)
	}
}

func TestRestore_ReplacesSnapshotFields(t *testing.T) {
	s, _ := newMemStore(t)
	ctx := context.Background()
	require.NoError(t, s.SetLanguage(ctx, domain.LangNL))
	s.SetExpanded(ctx, "x")
	s.ToggleCompletion(ctx, "old")

	err := s.Restore(ctx, store.RestoreInput{
		Label:        "restored",
		CompletedIDs: []string{"a", "b", "a"},
		ActiveLevels: []domain.Level{domain.LevelAAA},
		ActiveRoles:  []domain.Role{},
	})
	require.NoError(t, err)

	got := s.Snapshot()
	assert.Equal(t, "restored", got.Label)
	assert.Equal(t, []string{"a", "b"}, got.CompletedList())
	assert.Equal(t, []domain.Level{domain.LevelAAA}, got.LevelList())
	assert.Empty(t, got.RoleList())
	assert.Equal(t, domain.LangNL, got.Language)
	assert.Equal(t, "x", got.ExpandedID)
}

func TestRestore_RejectsInvalidEnumerations(t *testing.T) {
	s, kv := newMemStore(t)
	err := s.Restore(context.Background(), store.RestoreInput{ActiveLevels: []domain.Level{"B"}})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.Equal(t, 0, kv.Writes())
}

func TestToggleCompletion_IgnoresEmptyID(t *testing.T) {
	s, kv := newMemStore(t)
	ctx := context.Background()

	s.ToggleCompletion(ctx, "")
	assert.Empty(t, s.Snapshot().CompletedIDs)
	assert.Equal(t, 0, kv.Writes())

	s.ToggleCompletion(ctx, "a")
	s.ToggleCompletion(ctx, "")
	assert.Equal(t, []string{"a"}, s.Snapshot().CompletedList())
	assert.Equal(t, 1, kv.Writes())
}

func TestNopPersister_StartsFromDefaults(t *testing.T) {
	s := store.New(context.Background(), nil)
	s.ToggleCompletion(context.Background(), "a")
	assert.True(t, s.Snapshot().IsCompleted("a"))
}

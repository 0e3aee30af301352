package storage_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hakim/wordstress/internal/models"
	"github.com/hakim/wordstress/internal/storage"
)

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.NewStore(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func record(target, path string, at time.Time) *models.Resolution {
	res := models.NewResolution(target, "scans", path)
	res.ResolvedAt = at
	return res
}

func TestSaveAndGetResolution(t *testing.T) {
	t.Parallel()
	store := openStore(t)

	res := record("http://example.com", "scans/example_com/20240307", time.Date(2024, 3, 7, 10, 0, 0, 0, time.UTC))
	res.Name = "example_com"
	res.Stamp = "20240307"
	res.Attempt = 2
	require.NoError(t, store.SaveResolution(res))

	got, err := store.GetResolution(res.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, res.Path, got.Path)
	assert.Equal(t, 2, got.Attempt)
	assert.Equal(t, "example_com", got.Name)
	assert.True(t, res.ResolvedAt.Equal(got.ResolvedAt))
}

func TestGetResolution_Missing(t *testing.T) {
	t.Parallel()
	store := openStore(t)

	got, err := store.GetResolution("does-not-exist")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestListResolutions_NewestFirst(t *testing.T) {
	t.Parallel()
	store := openStore(t)
	base := time.Date(2024, 3, 7, 10, 0, 0, 0, time.UTC)

	older := record("http://example.com", "scans/example_com/20240307", base)
	newer := record("http://example.com", "scans/example_com/20240307_1", base.Add(time.Hour))
	other := record("http://other.org", "scans/other_org/20240307", base.Add(2*time.Hour))
	for _, r := range []*models.Resolution{older, newer, other} {
		require.NoError(t, store.SaveResolution(r))
	}

	list, err := store.ListResolutions("http://example.com")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID, list[0].ID)
	assert.Equal(t, older.ID, list[1].ID)

	latest, err := store.LatestResolution("http://example.com")
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, newer.ID, latest.ID)
}

func TestSaveResolution_Idempotent(t *testing.T) {
	t.Parallel()
	store := openStore(t)

	res := record("http://example.com", "scans/example_com/20240307", time.Now())
	require.NoError(t, store.SaveResolution(res))
	require.NoError(t, store.SaveResolution(res))

	list, err := store.ListResolutions("http://example.com")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestLatestResolution_Empty(t *testing.T) {
	t.Parallel()
	store := openStore(t)

	latest, err := store.LatestResolution("http://nothing.here")
	require.NoError(t, err)
	assert.Nil(t, latest)
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "history.db")

	store, err := storage.NewStore(path)
	require.NoError(t, err)
	res := record("http://example.com", "scans/example_com/20240307", time.Now())
	require.NoError(t, store.SaveResolution(res))
	require.NoError(t, store.Close())

	reopened, err := storage.NewStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.GetResolution(res.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, res.Target, got.Target)
}

func TestEnsureDir(t *testing.T) {
	t.Parallel()
	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	require.NoError(t, storage.EnsureDir(dir))
	require.NoError(t, storage.EnsureDir(dir))
	assert.DirExists(t, dir)
}

package roles

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecord(userID, roleID string) Record {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	return Record{
		UserID:    userID,
		RoleID:    roleID,
		Name:      "VIP",
		Color:     "#ffd700",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom_roles.json")
	fs, err := NewFileStore(path)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = fs.Get(ctx, "user-a")
	assert.ErrorIs(t, err, ErrNotFound)

	rec := testRecord("user-a", "role-1")
	require.NoError(t, fs.Put(ctx, rec))

	got, err := fs.Get(ctx, "user-a")
	require.NoError(t, err)
	assert.Equal(t, rec, got)
}

func TestFileStoreSurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom_roles.json")
	fs, err := NewFileStore(path)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, fs.Put(ctx, testRecord("user-a", "role-1")))
	require.NoError(t, fs.Put(ctx, testRecord("user-b", "role-2")))
	require.NoError(t, fs.Delete(ctx, "user-b"))

	reopened, err := NewFileStore(path)
	require.NoError(t, err)

	got, err := reopened.Get(ctx, "user-a")
	require.NoError(t, err)
	assert.Equal(t, "role-1", got.RoleID)

	_, err = reopened.Get(ctx, "user-b")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStoreDeleteAbsent(t *testing.T) {
	fs, err := NewFileStore(filepath.Join(t.TempDir(), "custom_roles.json"))
	require.NoError(t, err)

	assert.NoError(t, fs.Delete(context.Background(), "nobody"))
}

func TestFileStoreListAllOrdered(t *testing.T) {
	fs, err := NewFileStore(filepath.Join(t.TempDir(), "custom_roles.json"))
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, fs.Put(ctx, testRecord("user-c", "role-3")))
	require.NoError(t, fs.Put(ctx, testRecord("user-a", "role-1")))
	require.NoError(t, fs.Put(ctx, testRecord("user-b", "role-2")))

	records, err := fs.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "user-a", records[0].UserID)
	assert.Equal(t, "user-b", records[1].UserID)
	assert.Equal(t, "user-c", records[2].UserID)
}

func TestFileStoreCreatesDataDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "custom_roles.json")
	fs, err := NewFileStore(path)
	require.NoError(t, err)

	require.NoError(t, fs.Put(context.Background(), testRecord("user-a", "role-1")))

	reopened, err := NewFileStore(path)
	require.NoError(t, err)
	records, err := reopened.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

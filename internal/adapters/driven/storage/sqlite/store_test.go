package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jana0025/IR-PROJECT/internal/core/domain"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, store)
	t.Cleanup(func() { assert.NoError(t, store.Close()) })

	return store
}

func rawDoc(id, title string) domain.Document {
	return domain.Document{
		ID:            id,
		Title:         title,
		Content:       "Body of " + title,
		Date:          "March 3, 1987",
		Georeferences: domain.StringList{"Ghana", "Accra"},
		Authors:       []domain.Author{{FirstName: "Ada", LastName: "Mensah"}},
	}
}

// ==================== Store Creation and Initialization Tests ====================

func TestNewStore_CreatesDatabase(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, filepath.Join(dir, "journal.db"), store.Path())
	_, err = os.Stat(store.Path())
	assert.NoError(t, err)

	version, err := store.SchemaVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, version)
}

func TestNewStore_ReopenKeepsDataAndSchema(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	first, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.Save(ctx, rawDoc("a", "First")))
	require.NoError(t, first.Close())

	second, err := NewStore(dir)
	require.NoError(t, err)
	defer second.Close()

	n, err := second.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	version, err := second.SchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, version)
}

// ==================== Document Journal Tests ====================

func TestStore_SaveGet(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	doc := rawDoc("doc-1", "Cocoa")
	doc.SourceFile = "/data/reut2-000.sgm"
	require.NoError(t, store.Save(ctx, doc))

	got, err := store.Get(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, doc, *got)
}

func TestStore_SaveRequiresID(t *testing.T) {
	store := setupTestStore(t)

	err := store.Save(context.Background(), domain.Document{Title: "no id"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStore_GetMissing(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_ListKeepsInsertionOrder(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, rawDoc("b", "Second")))
	require.NoError(t, store.Save(ctx, rawDoc("a", "First")))
	require.NoError(t, store.Save(ctx, rawDoc("c", "Third")))

	// Replacing does not move the document.
	require.NoError(t, store.Save(ctx, rawDoc("b", "Second, revised")))

	docs, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, "b", docs[0].ID)
	assert.Equal(t, "Second, revised", docs[0].Title)
	assert.Equal(t, "a", docs[1].ID)
	assert.Equal(t, "c", docs[2].ID)
}

func TestStore_DeleteAndCount(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, rawDoc("a", "A")))
	require.NoError(t, store.Save(ctx, rawDoc("b", "B")))

	require.NoError(t, store.Delete(ctx, "a"))
	require.NoError(t, store.Delete(ctx, "missing"))

	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = store.Get(ctx, "a")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_EmptyList(t *testing.T) {
	store := setupTestStore(t)

	docs, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, docs)
}

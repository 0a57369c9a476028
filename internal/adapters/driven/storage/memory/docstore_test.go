package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jana0025/IR-PROJECT/internal/core/domain"
)

func TestNewDocumentStore(t *testing.T) {
	store := NewDocumentStore()
	require.NotNil(t, store)
	assert.NotNil(t, store.documents)
}

func TestDocumentStore_Save_Success(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()

	doc := domain.Document{
		ID:            "doc-1",
		Title:         "Cocoa exports rise",
		Content:       "Ghana cocoa exports rose in March.",
		Georeferences: domain.StringList{"Ghana"},
	}
	require.NoError(t, store.Save(ctx, doc))

	saved, err := store.Get(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "Cocoa exports rise", saved.Title)
	assert.Equal(t, domain.StringList{"Ghana"}, saved.Georeferences)
}

func TestDocumentStore_Save_EmptyID(t *testing.T) {
	store := NewDocumentStore()

	err := store.Save(context.Background(), domain.Document{Title: "no id"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDocumentStore_Save_Update(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domain.Document{ID: "doc-1", Title: "Original"}))
	require.NoError(t, store.Save(ctx, domain.Document{ID: "doc-1", Title: "Updated"}))

	saved, err := store.Get(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "Updated", saved.Title)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestDocumentStore_Save_StoresCopy(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()

	doc := domain.Document{ID: "doc-1", Georeferences: domain.StringList{"Paris"}}
	require.NoError(t, store.Save(ctx, doc))
	doc.Georeferences[0] = "London"

	saved, err := store.Get(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "Paris", saved.Georeferences[0])
}

func TestDocumentStore_Get_NotFound(t *testing.T) {
	store := NewDocumentStore()

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDocumentStore_List_InsertionOrder(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()

	for _, id := range []string{"c", "a", "b"} {
		require.NoError(t, store.Save(ctx, domain.Document{ID: id}))
	}
	require.NoError(t, store.Save(ctx, domain.Document{ID: "a", Title: "again"}))

	docs, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, "c", docs[0].ID)
	assert.Equal(t, "a", docs[1].ID)
	assert.Equal(t, "again", docs[1].Title)
	assert.Equal(t, "b", docs[2].ID)
}

func TestDocumentStore_Delete(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domain.Document{ID: "doc-1"}))
	require.NoError(t, store.Save(ctx, domain.Document{ID: "doc-2"}))
	require.NoError(t, store.Delete(ctx, "doc-1"))

	_, err := store.Get(ctx, "doc-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	docs, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "doc-2", docs[0].ID)
}

func TestDocumentStore_Delete_NonExistent(t *testing.T) {
	store := NewDocumentStore()
	assert.NoError(t, store.Delete(context.Background(), "missing"))
}

func TestDocumentStore_ConcurrentAccess(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := string(rune('a' + n%26))
			_ = store.Save(ctx, domain.Document{ID: id})
			_, _ = store.Get(ctx, id)
			_, _ = store.List(ctx)
		}(i)
	}
	wg.Wait()

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 26, count)
}

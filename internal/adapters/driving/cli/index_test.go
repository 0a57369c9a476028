package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jana0025/IR-PROJECT/internal/core/domain"
)

func TestIndexCmd_File(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()

	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"title":"x"}`), 0o600))

	out, err := executeCommand(context.Background(), "index", path)

	require.NoError(t, err)
	assert.Equal(t, []string{"file"}, ts.ingest.calls)
	assert.Equal(t, path, ts.ingest.lastPath)
	assert.Equal(t, []bool{false}, ts.ensureCalls)
	assert.Contains(t, out, "Indexed 2 of 2 documents")
}

func TestIndexCmd_Directory(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()

	dir := t.TempDir()
	_, err := executeCommand(context.Background(), "index", dir)

	require.NoError(t, err)
	assert.Equal(t, []string{"directory"}, ts.ingest.calls)
	assert.Equal(t, dir, ts.ingest.lastPath)
}

func TestIndexCmd_MissingPath(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()

	_, err := executeCommand(context.Background(), "index", filepath.Join(t.TempDir(), "missing"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Empty(t, ts.ingest.calls)
}

func TestIndexCmd_GeocodeFlags(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()

	_, err := executeCommand(context.Background(), "index", "--geocode", "--geocode-limit", "3", t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, domain.EnrichOptions{Geocode: true, GeocodeLimit: 3}, ts.ingest.lastOpts)
}

func TestIndexCmd_GeocodeDefaultsFromSettings(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	appSettings.Geocoder.Enabled = true
	appSettings.Geocoder.Limit = 7

	_, err := executeCommand(context.Background(), "index", t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, domain.EnrichOptions{Geocode: true, GeocodeLimit: 7}, ts.ingest.lastOpts)
}

func TestIndexCmd_NegativeGeocodeLimit(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, err := executeCommand(context.Background(), "index", "--geocode-limit", "-1", t.TempDir())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "must not be negative")
}

func TestIndexCmd_ReportsFailures(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()

	var errs []string
	for i := range 12 {
		errs = append(errs, fmt.Sprintf("doc %d: bad date", i))
	}
	ts.ingest.result = domain.BulkResult{Total: 14, Success: 2, Failed: 12, Errors: errs}

	out, err := executeCommand(context.Background(), "index", t.TempDir())

	require.NoError(t, err)
	assert.Contains(t, out, "Indexed 2 of 14 documents (12 failed)")
	assert.Contains(t, out, "- doc 9: bad date")
	assert.NotContains(t, out, "- doc 10: bad date")
	assert.Contains(t, out, "... and 2 more")
}

func TestIndexCmd_NotConfigured(t *testing.T) {
	restore := clearServices()
	defer restore()

	_, err := executeCommand(context.Background(), "index", t.TempDir())

	assert.ErrorIs(t, err, errIngestNotConfigured)
}

func TestReindexCmd_Recreate(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()

	out, err := executeCommand(context.Background(), "reindex", "--recreate")

	require.NoError(t, err)
	assert.Equal(t, []bool{true}, ts.ensureCalls)
	assert.Equal(t, []string{"reindex"}, ts.ingest.calls)
	assert.Contains(t, out, "Indexed 2 of 2 documents")
}

func TestReindexCmd_JournalUnavailable(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	ts.ingest.err = domain.ErrJournalUnavailable

	_, err := executeCommand(context.Background(), "reindex")

	assert.ErrorIs(t, err, domain.ErrJournalUnavailable)
}

func TestWatchCmd_InitialThenStopsOnCancel(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dir := t.TempDir()
	out, err := executeCommand(ctx, "watch", "--initial", "--debounce", time.Millisecond.String(), dir)

	require.NoError(t, err)
	assert.Equal(t, []string{"directory"}, ts.ingest.calls)
	assert.Contains(t, out, "Watching "+dir)
}

func TestWatchCmd_RejectsFile(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	path := filepath.Join(t.TempDir(), "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

	_, err := executeCommand(context.Background(), "watch", path)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

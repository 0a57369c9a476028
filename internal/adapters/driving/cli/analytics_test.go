package cli

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jana0025/IR-PROJECT/internal/core/domain"
)

func TestAnalyticsCmd_HasSubcommands(t *testing.T) {
	var names []string
	for _, c := range analyticsCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"top-places", "timeline", "dashboard"}, names)
}

func TestTopPlacesCmd_PrintsBars(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()

	out, err := executeCommand(context.Background(), "analytics", "top-places", "-n", "2")

	require.NoError(t, err)
	assert.Equal(t, 2, ts.analytics.lastSize)
	assert.Contains(t, out, "1. Brazil")
	assert.Contains(t, out, "2. Japan")
	assert.Contains(t, out, bar(4, 4, barWidth))
}

func TestTopPlacesCmd_Empty(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	ts.analytics.terms = nil

	out, err := executeCommand(context.Background(), "analytics", "top-places")

	require.NoError(t, err)
	assert.Contains(t, out, "No places indexed.")
}

func TestTimelineCmd_DefaultsToMonth(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()

	out, err := executeCommand(context.Background(), "analytics", "timeline")

	require.NoError(t, err)
	assert.Equal(t, domain.IntervalMonth, ts.analytics.lastInterval)
	assert.Contains(t, out, "1987-02")
	assert.Contains(t, out, "1987-03")
}

func TestTimelineCmd_Interval(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()

	_, err := executeCommand(context.Background(), "analytics", "timeline", "-i", "year")

	require.NoError(t, err)
	assert.Equal(t, domain.IntervalYear, ts.analytics.lastInterval)
}

func TestTimelineCmd_InvalidInterval(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, err := executeCommand(context.Background(), "analytics", "timeline", "--interval", "fortnight")

	assert.ErrorIs(t, err, domain.ErrInvalidInterval)
}

func TestTimelineCmd_JSON(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	out, err := executeCommand(context.Background(), "analytics", "--json", "timeline")

	require.NoError(t, err)
	var buckets []domain.DateCount
	require.NoError(t, json.Unmarshal([]byte(out), &buckets))
	assert.Len(t, buckets, 2)
}

func TestDashboardCmd(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	out, err := executeCommand(context.Background(), "analytics", "dashboard")

	require.NoError(t, err)
	assert.Contains(t, out, "Documents:         6")
	assert.Contains(t, out, "Distinct places:   2")
	assert.Contains(t, out, "Brazil")
	assert.Contains(t, out, "1987-03")
}

func TestDashboardCmd_JSON(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	out, err := executeCommand(context.Background(), "analytics", "dashboard", "--json")

	require.NoError(t, err)
	var d domain.Dashboard
	require.NoError(t, json.Unmarshal([]byte(out), &d))
	assert.Equal(t, int64(6), d.TotalDocuments)
}

func TestAnalyticsCmd_NotConfigured(t *testing.T) {
	restore := clearServices()
	defer restore()

	for _, sub := range []string{"top-places", "timeline", "dashboard"} {
		_, err := executeCommand(context.Background(), "analytics", sub)
		assert.ErrorIs(t, err, errNoAnalytics, sub)
	}
}

package search

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jana0025/IR-PROJECT/internal/adapters/driving/tui/components/status"
	"github.com/jana0025/IR-PROJECT/internal/adapters/driving/tui/messages"
	"github.com/jana0025/IR-PROJECT/internal/core/domain"
)

// MockSearchService implements driving.SearchService for testing.
type MockSearchService struct {
	SearchFunc func(ctx context.Context, spec domain.QuerySpec) ([]domain.SearchResult, error)
	LastSpec   domain.QuerySpec
}

func (m *MockSearchService) Search(ctx context.Context, spec domain.QuerySpec) ([]domain.SearchResult, error) {
	m.LastSpec = spec
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, spec)
	}
	return []domain.SearchResult{}, nil
}

func (m *MockSearchService) Autocomplete(context.Context, string, int) ([]domain.Suggestion, error) {
	return nil, nil
}

func testSearchResults() []domain.SearchResult {
	return []domain.SearchResult{
		{Document: domain.Document{ID: "1", Title: "Yen falls", Georeferences: domain.StringList{"Japan"}}, Score: 2.5},
		{Document: domain.Document{ID: "2", Title: "Rates steady"}, Score: 1.5},
	}
}

func newReadyView(svc *MockSearchService) *View {
	v := NewView(nil, nil, svc)
	v.SetDimensions(100, 40)
	return v
}

func TestNewView(t *testing.T) {
	v := NewView(nil, nil, &MockSearchService{})

	require.NotNil(t, v)
	assert.True(t, v.InputFocused())
	assert.False(t, v.Ready())
	assert.Equal(t, DefaultLimit, v.limit)
	assert.Equal(t, "Initialising...", v.View())
}

func TestView_WithLimit(t *testing.T) {
	v := NewView(nil, nil, nil).WithLimit(5)
	assert.Equal(t, 5, v.limit)

	v.WithLimit(0)
	assert.Equal(t, 5, v.limit, "non-positive limits are ignored")
}

func TestView_SubmitParsesHints(t *testing.T) {
	svc := &MockSearchService{
		SearchFunc: func(context.Context, domain.QuerySpec) ([]domain.SearchResult, error) {
			return testSearchResults(), nil
		},
	}
	v := newReadyView(svc)
	v.SetQuery(`rates time:1987 geo:"Japan"`)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.False(t, v.InputFocused())
	assert.Equal(t, status.StateSearching, v.StatusBar().State())
	assert.Equal(t, "time:1987 geo:Japan", v.StatusBar().Filters())

	msg := cmd()
	completed, ok := msg.(messages.SearchCompleted)
	require.True(t, ok)
	assert.Equal(t, domain.QuerySpec{Text: "rates", TemporalHint: "1987", GeoHint: "Japan", Limit: DefaultLimit}, svc.LastSpec)
	assert.Len(t, completed.Results, 2)

	v.Update(completed)
	assert.Len(t, v.Results(), 2)
	assert.Equal(t, status.StateResults, v.StatusBar().State())
	assert.Contains(t, v.View(), "Yen falls")
}

func TestView_SubmitEmptyDoesNothing(t *testing.T) {
	v := newReadyView(&MockSearchService{})
	v.SetQuery("   ")

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.True(t, v.InputFocused())
}

func TestView_SearchErrorRefocusesInput(t *testing.T) {
	v := newReadyView(&MockSearchService{})
	v.focusInput = false

	v.Update(messages.SearchCompleted{Err: errors.New("cluster down")})

	assert.EqualError(t, v.Err(), "cluster down")
	assert.True(t, v.InputFocused())
	assert.Equal(t, status.StateError, v.StatusBar().State())
	assert.Contains(t, v.View(), "Error: cluster down")
}

func TestView_NoResultsRefocusesInput(t *testing.T) {
	v := newReadyView(&MockSearchService{})
	v.focusInput = false

	v.Update(messages.SearchCompleted{})

	assert.True(t, v.InputFocused())
}

func TestView_NilServiceReportsError(t *testing.T) {
	v := newReadyView(nil)
	v.searchService = nil
	v.SetQuery("x")

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg, ok := cmd().(messages.ErrorOccurred)
	require.True(t, ok)
	assert.ErrorIs(t, msg.Err, ErrNoSearchService)
}

func TestView_EnterOnResultSelectsIt(t *testing.T) {
	v := newReadyView(&MockSearchService{})
	v.Update(messages.SearchCompleted{Results: testSearchResults()})
	v.Update(tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, 1, v.SelectedIndex())

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg, ok := cmd().(messages.ResultSelected)
	require.True(t, ok)
	assert.Equal(t, "2", msg.Result.Document.ID)
}

func TestView_NewSearchRefocuses(t *testing.T) {
	v := newReadyView(&MockSearchService{})
	v.Update(messages.SearchCompleted{Results: testSearchResults()})
	require.False(t, v.InputFocused())

	v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})

	assert.True(t, v.InputFocused())
}

func TestView_EscReturnsToMenu(t *testing.T) {
	v := newReadyView(&MockSearchService{})

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)

	assert.Equal(t, messages.ViewChanged{View: messages.ViewMenu}, cmd())
}

func TestView_TypingUpdatesQuery(t *testing.T) {
	v := newReadyView(&MockSearchService{})

	v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("oil")})

	assert.Equal(t, "oil", v.Query())
}

func TestView_Reset(t *testing.T) {
	v := newReadyView(&MockSearchService{})
	v.SetQuery("oil")
	v.Update(messages.SearchCompleted{Results: testSearchResults()})

	v.Reset()

	assert.Empty(t, v.Query())
	assert.Empty(t, v.Results())
	assert.True(t, v.InputFocused())
	assert.Nil(t, v.Err())
	assert.Equal(t, status.StateReady, v.StatusBar().State())
}

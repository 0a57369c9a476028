// Package input provides the query line of the TUI.
package input

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jana0025/IR-PROJECT/internal/adapters/driving/tui/styles"
	"github.com/jana0025/IR-PROJECT/internal/core/domain"
)

// SearchInput wraps a bubbles textinput. The line may carry time: and
// geo: hints next to the free text.
type SearchInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	width     int
}

// NewSearchInput creates a new search input component.
func NewSearchInput(s *styles.Styles) *SearchInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "cocoa exports  time:1987  geo:\"New York\""
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	return &SearchInput{
		textinput: ti,
		styles:    s,
		width:     50,
	}
}

// Init initialises the search input.
func (s *SearchInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (s *SearchInput) Update(msg tea.Msg) (*SearchInput, tea.Cmd) {
	var cmd tea.Cmd
	s.textinput, cmd = s.textinput.Update(msg)
	return s, cmd
}

// View renders the search input with the parsed hints underneath.
func (s *SearchInput) View() string {
	label := s.styles.Title.Render("Search: ")
	input := s.styles.InputField.Render(s.textinput.View())
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	line := lipgloss.JoinHorizontal(lipgloss.Center, label, input)

	spec := s.Spec(0)
	var hints []string
	if spec.TemporalHint != "" {
		hints = append(hints, s.styles.Date.Render(TimePrefix+spec.TemporalHint))
	}
	if spec.GeoHint != "" {
		hints = append(hints, s.styles.Place.Render(GeoPrefix+spec.GeoHint))
	}
	if len(hints) == 0 {
		return line
	}
	return lipgloss.JoinVertical(lipgloss.Left, line, "        "+strings.Join(hints, "  "))
}

// Spec parses the current value into a query limited to limit results.
func (s *SearchInput) Spec(limit int) domain.QuerySpec {
	spec := ParseQuery(s.textinput.Value())
	spec.Limit = limit
	return spec
}

// Value returns the current input value.
func (s *SearchInput) Value() string {
	return s.textinput.Value()
}

// SetValue sets the input value.
func (s *SearchInput) SetValue(value string) {
	s.textinput.SetValue(value)
}

// Focus sets focus on the input.
func (s *SearchInput) Focus() tea.Cmd {
	return s.textinput.Focus()
}

// Blur removes focus from the input.
func (s *SearchInput) Blur() {
	s.textinput.Blur()
}

// Focused returns whether the input is focused.
func (s *SearchInput) Focused() bool {
	return s.textinput.Focused()
}

// SetWidth sets the width of the input.
func (s *SearchInput) SetWidth(width int) {
	s.width = width
	// Account for label and padding
	s.textinput.Width = max(width-12, 20)
}

// Width returns the current width.
func (s *SearchInput) Width() int {
	return s.width
}

// Reset clears the input.
func (s *SearchInput) Reset() {
	s.textinput.Reset()
}

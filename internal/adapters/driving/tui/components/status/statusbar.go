// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jana0025/IR-PROJECT/internal/adapters/driving/tui/keymap"
	"github.com/jana0025/IR-PROJECT/internal/adapters/driving/tui/styles"
)

// State is what the bar reports on its left side.
type State string

// Bar states.
const (
	StateReady     State = "ready"
	StateSearching State = "searching"
	StateLoading   State = "loading"
	StateError     State = "error"
	StateResults   State = "results"
)

// Bar shows the search state, the active hints and keybinding help.
type Bar struct {
	styles      *styles.Styles
	keymap      *keymap.KeyMap
	help        help.Model
	state       State
	message     string
	filters     string
	resultCount int
	width       int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	h := help.New()
	h.ShortSeparator = " | "
	h.Styles.ShortKey = s.Normal
	h.Styles.ShortDesc = s.Muted
	h.Styles.ShortSeparator = s.Muted

	return &Bar{
		styles: s,
		keymap: km,
		help:   h,
		state:  StateReady,
		width:  80,
	}
}

// Init implements the component contract; the bar has no commands.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update is a no-op; the owning view drives the bar through its setters.
func (s *Bar) Update(tea.Msg) (*Bar, tea.Cmd) {
	return s, nil
}

// View renders the state on the left and key hints on the right.
func (s *Bar) View() string {
	left, right := s.renderLeft(), s.renderRight()
	gap := max(s.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return s.styles.StatusBar.Width(s.width).Render(left + strings.Repeat(" ", gap) + right)
}

// renderLeft renders the left side of the status bar.
func (s *Bar) renderLeft() string {
	switch s.state {
	case StateSearching:
		return s.styles.Muted.Render("Searching...")
	case StateLoading:
		return s.styles.Muted.Render("Loading...")
	case StateError:
		if s.message != "" {
			return s.styles.Error.Render(fmt.Sprintf("Error: %s", s.message))
		}
		return s.styles.Error.Render("Error")
	case StateResults:
		left := s.styles.Normal.Render(fmt.Sprintf("%d results", s.resultCount))
		if s.resultCount == 0 {
			left = s.styles.Muted.Render("No results")
		}
		if s.filters != "" {
			left += s.styles.Muted.Render(" · " + s.filters)
		}
		if s.message != "" {
			left += s.styles.Muted.Render(" · " + s.message)
		}
		return left
	case StateReady:
		if s.message != "" {
			return s.styles.Muted.Render(s.message)
		}
		return s.styles.Muted.Render("Ready")
	}
	return s.styles.Muted.Render("Ready")
}

// renderRight renders keybinding hints for the current state.
func (s *Bar) renderRight() string {
	bindings := s.keymap.InputHelp()
	if s.state == StateResults && s.resultCount > 0 {
		bindings = s.keymap.ResultsHelp()
	}
	return s.help.ShortHelpView(bindings)
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage sets a custom message.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetFilters sets the description of the active hints.
func (s *Bar) SetFilters(filters string) {
	s.filters = filters
}

// Filters returns the description of the active hints.
func (s *Bar) Filters() string {
	return s.filters
}

// SetResultCount sets the result count.
func (s *Bar) SetResultCount(count int) {
	s.resultCount = count
}

// ResultCount returns the current result count.
func (s *Bar) ResultCount() int {
	return s.resultCount
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear resets the status bar to default state.
func (s *Bar) Clear() {
	s.state = StateReady
	s.message = ""
	s.filters = ""
	s.resultCount = 0
}

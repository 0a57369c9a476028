// Package docdetails shows the enrichment metadata of a search result.
package docdetails

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jana0025/IR-PROJECT/internal/adapters/driving/tui/messages"
	"github.com/jana0025/IR-PROJECT/internal/adapters/driving/tui/styles"
	"github.com/jana0025/IR-PROJECT/internal/core/domain"
)

// maxPoints bounds the coordinates listed.
const maxPoints = 5

// View is the document details view.
type View struct {
	styles *styles.Styles

	result       *domain.SearchResult
	scrollOffset int
	width        int
	height       int
	ready        bool
	err          error
}

// NewView creates a new document details view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles: s,
		width:  80,
		height: 24,
	}
}

// SetResult sets the result to display.
func (v *View) SetResult(result domain.SearchResult) {
	v.result = &result
	v.scrollOffset = 0
	v.err = nil
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the document details view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.ErrorOccurred:
		v.err = msg.Err
		return v, nil
	}

	return v, nil
}

// handleKeyMsg handles key presses.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.scrollOffset > 0 {
			v.scrollOffset--
		}
	case "down", "j":
		if v.scrollOffset < v.maxScrollOffset() {
			v.scrollOffset++
		}
	case "esc", "backspace":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewSearch}
		}
	}

	return v, nil
}

// visibleLines returns the number of lines that can be displayed.
func (v *View) visibleLines() int {
	// Title, separator, help and padding.
	return max(v.height-6, 1)
}

// maxScrollOffset returns the maximum scroll offset.
func (v *View) maxScrollOffset() int {
	return max(len(v.buildContent())-v.visibleLines(), 0)
}

// buildContent builds the content lines for display.
func (v *View) buildContent() []string {
	if v.result == nil {
		return nil
	}
	doc := &v.result.Document

	lines := []string{
		v.formatField("ID", doc.ID),
		v.formatField("Title", doc.Title),
		v.formatField("Score", fmt.Sprintf("%.3f", v.result.Score)),
	}
	if doc.SourceFile != "" {
		lines = append(lines, v.formatField("File", doc.SourceFile))
	}
	if len(doc.Authors) > 0 {
		names := make([]string, 0, len(doc.Authors))
		for _, a := range doc.Authors {
			names = append(names, strings.TrimSpace(a.FirstName+" "+a.LastName))
		}
		lines = append(lines, v.formatField("Authors", strings.Join(names, ", ")))
	}

	lines = append(lines, "", "Time:")
	lines = append(lines, v.formatField("  Date", orNone(doc.Date)))
	lines = append(lines, v.formatField("  Extracted", orNone(strings.Join(doc.ExtractedDates, ", "))))
	lines = append(lines, v.formatField("  Mentions", orNone(strings.Join(doc.TemporalExpressions, "; "))))

	lines = append(lines, "", "Place:")
	lines = append(lines, v.formatField("  Places", orNone(strings.Join(doc.Georeferences, ", "))))
	if doc.LocationSource != "" {
		lines = append(lines, v.formatField("  Source", string(doc.LocationSource)))
	}
	if doc.Geopoint != nil {
		lines = append(lines, v.formatField("  Geopoint", doc.Geopoint.String()))
	}
	for i, p := range doc.GeoPoints {
		if i == maxPoints {
			lines = append(lines, fmt.Sprintf("  ... %d more points", len(doc.GeoPoints)-maxPoints))
			break
		}
		lines = append(lines, v.formatField("  Point", p.String()))
	}

	if doc.Content != "" {
		lines = append(lines, "", "Content:")
		lines = append(lines, wrap(domain.CollapseSpace(doc.Content), max(v.width-4, 20))...)
	}

	return lines
}

// formatField formats a field for display.
func (v *View) formatField(label, value string) string {
	return fmt.Sprintf("%-12s %s", label+":", value)
}

// View renders the document details view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Document Details"))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", max(min(v.width-4, 60), 0)))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	if v.result == nil {
		b.WriteString(v.styles.Muted.Render("No document selected"))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	lines := v.buildContent()
	visible := v.visibleLines()
	for i := v.scrollOffset; i < len(lines) && i < v.scrollOffset+visible; i++ {
		b.WriteString(v.renderLine(lines[i]))
		b.WriteString("\n")
	}

	if len(lines) > visible {
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  [Line %d-%d of %d]",
			v.scrollOffset+1,
			min(v.scrollOffset+visible, len(lines)),
			len(lines))))
	}

	b.WriteString("\n\n")
	b.WriteString(v.renderHelp())

	return b.String()
}

// renderLine styles a content line by its shape.
func (v *View) renderLine(line string) string {
	switch line {
	case "Time:", "Place:", "Content:":
		return v.styles.Subtitle.Render(line)
	}

	label, value, ok := strings.Cut(line, ":")
	if !ok || strings.HasPrefix(line, "    ") {
		return v.styles.Normal.Render(line)
	}

	valueStyle := v.styles.Normal
	switch strings.TrimSpace(label) {
	case "Date", "Extracted", "Mentions":
		valueStyle = v.styles.Date
	case "Places", "Geopoint", "Point":
		valueStyle = v.styles.Place
	case "Score":
		valueStyle = v.styles.Score
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, v.styles.Muted.Render(label+":"), valueStyle.Render(value))
}

// renderHelp renders the help footer.
func (v *View) renderHelp() string {
	return v.styles.Help.Render("[↑/↓] scroll  [esc] back to results")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Result returns the displayed result, or nil.
func (v *View) Result() *domain.SearchResult {
	return v.result
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

// wrap breaks s into lines of at most width runes, indented by four spaces.
func wrap(s string, width int) []string {
	var (
		lines []string
		line  strings.Builder
		n     int
	)
	for _, word := range strings.Fields(s) {
		wl := len([]rune(word))
		if n > 0 && n+1+wl > width {
			lines = append(lines, "    "+line.String())
			line.Reset()
			n = 0
		}
		if n > 0 {
			line.WriteByte(' ')
			n++
		}
		line.WriteString(word)
		n += wl
	}
	if n > 0 {
		lines = append(lines, "    "+line.String())
	}
	return lines
}

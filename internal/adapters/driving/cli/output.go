package cli

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jana0025/IR-PROJECT/internal/adapters/driving/tui/styles"
)

// Palette, shared with the TUI.
var (
	palette = styles.DefaultStyles()

	titleStyle   = palette.Title
	headerStyle  = palette.Subtitle
	mutedStyle   = palette.Muted
	scoreStyle   = palette.Score
	successStyle = palette.Success
	errorStyle   = palette.Error
	barStyle     = palette.Bar
)

const (
	defaultWidth = 80
	snippetRunes = 160
)

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// render applies style only when writing to a terminal.
func render(cmd *cobra.Command, style lipgloss.Style, s string) string {
	if !isTerminal(cmd.OutOrStdout()) {
		return s
	}
	return style.Render(s)
}

// termWidth returns the output width, or defaultWidth when unknown.
func termWidth(cmd *cobra.Command) int {
	f, ok := cmd.OutOrStdout().(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return defaultWidth
	}
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}

// snippet collapses whitespace and truncates to n runes.
func snippet(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

// bar draws a horizontal bar proportional to count/peak.
func bar(count, peak int64, width int) string {
	if peak <= 0 || width <= 0 {
		return ""
	}
	n := int(count * int64(width) / peak)
	if count > 0 && n == 0 {
		n = 1
	}
	return strings.Repeat("█", n)
}

// Package dashboard provides the analytics view of the TUI.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jana0025/IR-PROJECT/internal/adapters/driving/tui/messages"
	"github.com/jana0025/IR-PROJECT/internal/adapters/driving/tui/styles"
	"github.com/jana0025/IR-PROJECT/internal/core/domain"
	"github.com/jana0025/IR-PROJECT/internal/core/ports/driving"
)

// ErrNoAnalyticsService indicates that no analytics service was provided.
var ErrNoAnalyticsService = errors.New("analytics service is required")

const (
	labelWidth  = 22
	maxBarWidth = 40
)

// View shows totals, top places and the monthly timeline.
type View struct {
	styles    *styles.Styles
	analytics driving.AnalyticsService
	ctx       context.Context

	dashboard *domain.Dashboard
	loading   bool
	err       error

	width  int
	height int
	ready  bool
}

// NewView creates a new dashboard view.
func NewView(s *styles.Styles, analytics driving.AnalyticsService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:    s,
		analytics: analytics,
		ctx:       context.Background(),
		width:     80,
		height:    24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the dashboard.
func (v *View) Init() tea.Cmd {
	v.loading = true
	v.err = nil
	return v.load()
}

func (v *View) load() tea.Cmd {
	analytics, ctx := v.analytics, v.ctx
	return func() tea.Msg {
		if analytics == nil {
			return messages.DashboardLoaded{Err: ErrNoAnalyticsService}
		}
		d, err := analytics.Dashboard(ctx)
		return messages.DashboardLoaded{Dashboard: d, Err: err}
	}
}

// Update handles messages for the dashboard view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.DashboardLoaded:
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		d := msg.Dashboard
		v.dashboard = &d
		v.err = nil
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		case "r":
			return v, v.Init()
		}
	}
	return v, nil
}

// View renders the dashboard.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Dashboard"))
	b.WriteString("\n\n")

	switch {
	case v.err != nil:
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
		b.WriteString("\n")
	case v.loading && v.dashboard == nil:
		b.WriteString(v.styles.Muted.Render("Loading..."))
		b.WriteString("\n")
	case v.dashboard != nil:
		v.renderDashboard(&b, v.dashboard)
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[r] refresh  [esc] back to menu"))
	return b.String()
}

func (v *View) renderDashboard(b *strings.Builder, d *domain.Dashboard) {
	fmt.Fprintf(b, "%s %d\n", v.styles.Muted.Render("Documents:      "), d.TotalDocuments)
	fmt.Fprintf(b, "%s %d\n\n", v.styles.Muted.Render("Distinct places:"), d.DistinctGeoreferences)

	barWidth := max(min(v.width-labelWidth-12, maxBarWidth), 5)

	b.WriteString(v.styles.Subtitle.Render("Top places"))
	b.WriteString("\n")
	if len(d.TopGeoreferences) == 0 {
		b.WriteString(v.styles.Muted.Render("  No places indexed."))
		b.WriteString("\n")
	}
	var peak int64
	for _, t := range d.TopGeoreferences {
		peak = max(peak, t.Count)
	}
	for _, t := range d.TopGeoreferences {
		fmt.Fprintf(b, "  %s %6d %s\n",
			v.styles.Place.Render(fmt.Sprintf("%-*s", labelWidth, truncate(t.Key, labelWidth))),
			t.Count, v.styles.Bar.Render(Bar(t.Count, peak, barWidth)))
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Subtitle.Render("Documents per month"))
	b.WriteString("\n")
	if len(d.Timeline) == 0 {
		b.WriteString(v.styles.Muted.Render("  No dated documents."))
		b.WriteString("\n")
	}

	// Keep the most recent buckets that fit.
	buckets := d.Timeline
	if room := max(v.height-len(d.TopGeoreferences)-14, 3); len(buckets) > room {
		buckets = buckets[len(buckets)-room:]
	}
	peak = 0
	for _, c := range buckets {
		peak = max(peak, c.Count)
	}
	for _, c := range buckets {
		fmt.Fprintf(b, "  %s %6d %s\n",
			v.styles.Date.Render(fmt.Sprintf("%-*s", labelWidth, c.Date)),
			c.Count, v.styles.Bar.Render(Bar(c.Count, peak, barWidth)))
	}
}

// Bar draws a horizontal bar proportional to count/peak. Non-zero counts
// get at least one cell.
func Bar(count, peak int64, width int) string {
	if peak <= 0 || width <= 0 {
		return ""
	}
	n := int(count * int64(width) / peak)
	if count > 0 && n == 0 {
		n = 1
	}
	return strings.Repeat("█", n)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Dashboard returns the loaded dashboard, or nil.
func (v *View) Dashboard() *domain.Dashboard {
	return v.dashboard
}

// Loading reports whether a load is in flight.
func (v *View) Loading() bool {
	return v.loading
}

// Err returns the last load error.
func (v *View) Err() error {
	return v.err
}

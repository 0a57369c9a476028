package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jana0025/IR-PROJECT/internal/adapters/driving/tui/messages"
	"github.com/jana0025/IR-PROJECT/internal/adapters/driving/tui/styles"
	"github.com/jana0025/IR-PROJECT/internal/adapters/driving/tui/views/dashboard"
	"github.com/jana0025/IR-PROJECT/internal/adapters/driving/tui/views/docdetails"
	"github.com/jana0025/IR-PROJECT/internal/adapters/driving/tui/views/menu"
	"github.com/jana0025/IR-PROJECT/internal/adapters/driving/tui/views/search"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports *Ports
	ctx   context.Context

	styles *styles.Styles

	menuView       *menu.View
	searchView     *search.View
	docDetailsView *docdetails.View
	dashboardView  *dashboard.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	return &App{
		ports:          ports,
		ctx:            context.Background(),
		styles:         s,
		menuView:       menu.NewView(s),
		searchView:     search.NewView(s, nil, ports.Search),
		docDetailsView: docdetails.NewView(s),
		dashboardView:  dashboard.NewView(s, ports.Analytics),
		currentView:    messages.ViewMenu,
	}, nil
}

// WithContext sets the context passed to service calls.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.searchView.WithContext(ctx)
	a.dashboardView.WithContext(ctx)
	return a
}

// WithSearchLimit sets the number of results requested per search.
func (a *App) WithSearchLimit(limit int) *App {
	a.searchView.WithLimit(limit)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.SetWindowTitle("smartdocs")
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a, a.updateKey(msg)

	case messages.ViewChanged:
		return a, a.switchView(msg.View)

	case messages.SearchCompleted:
		a.searchView, cmd = a.searchView.Update(msg)
		a.err = a.searchView.Err()
		return a, cmd

	case messages.ResultSelected:
		a.docDetailsView.SetResult(msg.Result)
		a.currentView = messages.ViewDocDetails
		return a, nil

	case messages.DashboardLoaded:
		a.dashboardView, cmd = a.dashboardView.Update(msg)
		a.err = a.dashboardView.Err()
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		switch a.currentView {
		case messages.ViewSearch:
			a.searchView, cmd = a.searchView.Update(msg)
		case messages.ViewDocDetails:
			a.docDetailsView, cmd = a.docDetailsView.Update(msg)
		case messages.ViewMenu, messages.ViewDashboard, messages.ViewHelp:
			// Shown through Err only.
		}
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	// Ticks such as cursor blink go to the search input.
	if a.currentView == messages.ViewSearch {
		a.searchView, cmd = a.searchView.Update(msg)
	}
	return a, cmd
}

// updateKey forwards a key press to the active view.
func (a *App) updateKey(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewSearch:
		a.searchView, cmd = a.searchView.Update(msg)
	case messages.ViewDocDetails:
		a.docDetailsView, cmd = a.docDetailsView.Update(msg)
	case messages.ViewDashboard:
		a.dashboardView, cmd = a.dashboardView.Update(msg)
	case messages.ViewHelp:
		if msg.Type == tea.KeyEsc || msg.String() == "q" {
			a.currentView = messages.ViewMenu
		}
	}
	return cmd
}

// switchView activates view. Returning from the details keeps the
// previous results; entering search from the menu starts fresh.
func (a *App) switchView(view messages.ViewType) tea.Cmd {
	prev := a.currentView
	a.currentView = view

	switch view {
	case messages.ViewSearch:
		if prev == messages.ViewDocDetails {
			return nil
		}
		a.searchView.Reset()
		return a.searchView.Init()
	case messages.ViewDashboard:
		return a.dashboardView.Init()
	case messages.ViewMenu, messages.ViewDocDetails, messages.ViewHelp:
	}
	return nil
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewSearch:
		return a.searchView.View()
	case messages.ViewDocDetails:
		return a.docDetailsView.View()
	case messages.ViewDashboard:
		return a.dashboardView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.menuView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return a.styles.Title.Render("Help") + `

Navigation:
  esc         Back
  ctrl+c      Quit

Menu:
  j/k, ↑/↓    Navigate options
  enter       Select option
  q           Quit

Search:
  (type)      Query text with optional hints:
                time:1987  time:"last year"
                geo:Japan  geo:"New York"
  enter       Submit search

Results:
  j/k, ↑/↓    Navigate results
  enter       Show dates, places and content
  n, /        Edit the query

Dashboard:
  r           Refresh

` + a.styles.Help.Render("[esc] back to menu")
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SearchView exposes the search view.
func (a *App) SearchView() *search.View {
	return a.searchView
}

// DetailsView exposes the document details view.
func (a *App) DetailsView() *docdetails.View {
	return a.docDetailsView
}

// DashboardView exposes the dashboard view.
func (a *App) DashboardView() *dashboard.View {
	return a.dashboardView
}

// SetDimensions sets the terminal dimensions on every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.searchView.SetDimensions(width, height)
	a.docDetailsView.SetDimensions(width, height)
	a.dashboardView.SetDimensions(width, height)
}

// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds the bindings shared by the views.
type KeyMap struct {
	Quit      key.Binding
	Back      key.Binding
	Up        key.Binding
	Down      key.Binding
	Submit    key.Binding
	Details   key.Binding
	EditQuery key.Binding
	Refresh   key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "search")),
		Details:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		EditQuery: key.NewBinding(key.WithKeys("n", "/"), key.WithHelp("n", "new search")),
		Refresh:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

// InputHelp is shown while the query line has focus.
func (k *KeyMap) InputHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Back, k.Quit}
}

// ResultsHelp is shown while navigating results.
func (k *KeyMap) ResultsHelp() []key.Binding {
	return []key.Binding{k.EditQuery, k.Up, k.Details, k.Back}
}

// DetailsHelp is shown on the document details view.
func (k *KeyMap) DetailsHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back}
}

// DashboardHelp is shown on the dashboard.
func (k *KeyMap) DashboardHelp() []key.Binding {
	return []key.Binding{k.Refresh, k.Back}
}

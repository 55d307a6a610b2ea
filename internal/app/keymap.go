package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all application keybindings.
type KeyMap struct {
	// Global
	Quit           key.Binding
	CommandPalette key.Binding
	Help           key.Binding
	SignOut        key.Binding

	// Header dropdowns
	Notifications key.Binding
	Profile       key.Binding
	Dismiss       key.Binding

	// Pages
	PageConsole  key.Binding
	PageLogs     key.Binding
	PageSettings key.Binding
}

// DefaultKeyMap returns the default keybinding configuration.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		CommandPalette: key.NewBinding(
			key.WithKeys("ctrl+k"),
			key.WithHelp("ctrl+k", "command palette"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		SignOut: key.NewBinding(
			key.WithKeys("Q"),
			key.WithHelp("Q", "sign out"),
		),
		Notifications: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "notifications"),
		),
		Profile: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "profile"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "dismiss"),
		),
		PageConsole: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "console"),
		),
		PageLogs: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "audit logs"),
		),
		PageSettings: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "settings"),
		),
	}
}

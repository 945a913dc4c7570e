package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds all key bindings for the TUI.
type keyMap struct {
	Quit     key.Binding
	Refresh  key.Binding
	Tab      key.Binding
	ShiftTab key.Binding
	Settings key.Binding
	Dismiss  key.Binding
	Escape   key.Binding
	Help     key.Binding
	PrevPage key.Binding
	NextPage key.Binding
	View1    key.Binding
	View2    key.Binding
	View3    key.Binding
	View4    key.Binding
	View5    key.Binding
}

// keys is the global key map.
var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh now"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next view"),
	),
	ShiftTab: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "prev view"),
	),
	Settings: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "refresh settings"),
	),
	Dismiss: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "dismiss errors"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("left"),
		key.WithHelp("←", "prev page"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("right"),
		key.WithHelp("→", "next page"),
	),
	View1: key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "nodes")),
	View2: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "cluster")),
	View3: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "recovery")),
	View4: key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "snapshots")),
	View5: key.NewBinding(key.WithKeys("5"), key.WithHelp("5", "topology")),
}

// Footer text, collapsed and expanded. The ? binding flips between them.
const (
	footerHint = "? for help"
	helpText   = "q: quit  r: refresh  tab/1-5: switch view  ←/→: page  s: settings  x: dismiss errors  ?: toggle help"
)

package ui

import tea "github.com/charmbracelet/bubbletea"

// View is the unit of composition; implements Bubble Tea's Init/Update/View.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

// Screen is a navigable View bound to REST resources.
type Screen interface {
	View
	Mode() AppMode
	// Refresh reloads every list shown by the screen.
	Refresh() tea.Cmd
	// Sync copies controller state into the screen's widgets.
	Sync()
}

// textCapturer is implemented by screens whose keys go to text inputs, so
// single-key and leader bindings must not fire.
type textCapturer interface {
	CapturesText() bool
}

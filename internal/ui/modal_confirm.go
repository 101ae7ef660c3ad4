package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	confirmYes = key.NewBinding(key.WithKeys("y", "enter"))
	confirmNo  = key.NewBinding(key.WithKeys("n", "esc"))
)

// ConfirmModal asks before a delete. y or Enter runs OnConfirm; n or Esc
// dismisses.
type ConfirmModal struct {
	Title     string
	Label     string // what is about to be deleted
	Hint      string
	OnConfirm tea.Cmd
}

// Ensure ConfirmModal implements View.
var _ View = (*ConfirmModal)(nil)

// NewConfirmModal creates a confirmation for label.
func NewConfirmModal(title, label, hint string, onConfirm tea.Cmd) *ConfirmModal {
	return &ConfirmModal{Title: title, Label: label, Hint: hint, OnConfirm: onConfirm}
}

// Init implements View.
func (m *ConfirmModal) Init() tea.Cmd { return nil }

// Update implements View.
func (m *ConfirmModal) Update(msg tea.Msg) (View, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(k, confirmNo):
		return m, func() tea.Msg { return DismissModalMsg{} }
	case key.Matches(k, confirmYes):
		return m, m.OnConfirm
	}
	return m, nil
}

// View implements View.
func (m *ConfirmModal) View() string {
	s := Styles.TitleWarning.Render(m.Title) + "\n\n" + Styles.Label.Render(m.Label)
	if m.Hint != "" {
		s += "\n\n" + Styles.Hint.Render(m.Hint)
	}
	return Styles.BoxDanger.Render(s)
}

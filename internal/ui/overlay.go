package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// OverlayStack holds the modals drawn over the current screen. Only the top
// modal receives keys.
type OverlayStack struct {
	views []View
}

// Push shows v above every other modal.
func (s *OverlayStack) Push(v View) {
	s.views = append(s.views, v)
}

// Pop removes the top modal and returns it, or nil when there is none.
func (s *OverlayStack) Pop() View {
	top := s.Peek()
	if top != nil {
		s.views = s.views[:len(s.views)-1]
	}
	return top
}

// Peek returns the top modal, or nil.
func (s *OverlayStack) Peek() View {
	if len(s.views) == 0 {
		return nil
	}
	return s.views[len(s.views)-1]
}

// Len returns the number of open modals.
func (s *OverlayStack) Len() int {
	return len(s.views)
}

// Clear closes every modal.
func (s *OverlayStack) Clear() {
	s.views = nil
}

// UpdateTop passes msg to the top modal. ok is false when none is open.
func (s *OverlayStack) UpdateTop(msg tea.Msg) (cmd tea.Cmd, ok bool) {
	if len(s.views) == 0 {
		return nil, false
	}
	i := len(s.views) - 1
	s.views[i], cmd = s.views[i].Update(msg)
	return cmd, true
}

// Render draws the top modal centred in a width×height area, or unplaced
// when the size is unknown.
func (s *OverlayStack) Render(width, height int) string {
	top := s.Peek()
	if top == nil {
		return ""
	}
	if width <= 0 || height <= 0 {
		return top.View()
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, top.View())
}
